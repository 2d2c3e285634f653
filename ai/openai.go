package ai

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

const defaultOpenAIModel = "gpt-4o-mini"

// OpenAIService delegates the assist contract to the OpenAI chat
// completions API. Every operation is a single completion request; failures
// are wrapped and returned, never retried here.
type OpenAIService struct {
	client *openai.Client
	model  string
}

// NewOpenAIService constructs the OpenAI adapter.
func NewOpenAIService(apiKey, model string) (*OpenAIService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("openai: API key is required")
	}
	if model == "" {
		model = defaultOpenAIModel
	}
	return &OpenAIService{
		client: openai.NewClient(apiKey),
		model:  model,
	}, nil
}

func (s *OpenAIService) Name() string { return "openai/" + s.model }

// complete issues one chat completion with a system and user message.
func (s *OpenAIService) complete(ctx context.Context, system, user string, temperature float32, maxTokens int, jsonMode bool) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: user},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}
	if jsonMode {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := s.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("openai: completion request: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: empty response choices")
	}
	return resp.Choices[0].Message.Content, nil
}

func (s *OpenAIService) ImproveText(ctx context.Context, req ImproveRequest) (*ImproveResult, error) {
	improved, err := s.complete(ctx, improveInstruction(req.Tone), improveUserPrompt(req), 0.7, 500, false)
	if err != nil {
		return nil, err
	}
	if improved == "" {
		improved = req.Text
	}
	return &ImproveResult{
		Improved: improved,
		Reason:   improveReason(improved),
		Type:     DetectImprovementType(req.Text, improved),
	}, nil
}

func (s *OpenAIService) SuggestTags(ctx context.Context, title, content string) ([]TagSuggestion, error) {
	raw, err := s.complete(ctx, TAGS_INSTRUCTION, tagsUserPrompt(title, content), 0.5, 300, true)
	if err != nil {
		return nil, err
	}
	return parseTagsResponse("openai", raw)
}

func (s *OpenAIService) GenerateStructure(ctx context.Context, req StructureRequest) (*StructureResult, error) {
	raw, err := s.complete(ctx, STRUCTURE_INSTRUCTION, structureUserPrompt(req), 0.7, 1000, true)
	if err != nil {
		return nil, err
	}
	return parseStructureResponse("openai", raw)
}
