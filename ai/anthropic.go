package ai

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const defaultAnthropicModel = "claude-3-5-sonnet-20241022"

// AnthropicService delegates the assist contract to the Anthropic Messages
// API. Every operation is a single message request; failures are wrapped
// and returned, never retried here.
type AnthropicService struct {
	client *anthropic.Client
	model  string
}

// NewAnthropicService constructs the Anthropic adapter.
func NewAnthropicService(apiKey, model string) (*AnthropicService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("anthropic: API key is required")
	}
	if model == "" {
		model = defaultAnthropicModel
	}
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &AnthropicService{
		client: &client,
		model:  model,
	}, nil
}

func (s *AnthropicService) Name() string { return "anthropic/" + s.model }

// complete issues one messages request with a system prompt and a single
// user turn, returning the concatenated text blocks.
func (s *AnthropicService) complete(ctx context.Context, system, user string, temperature float64, maxTokens int64) (string, error) {
	message, err := s.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(s.model),
		MaxTokens:   maxTokens,
		Temperature: anthropic.Float(temperature),
		System: []anthropic.TextBlockParam{
			{Text: system},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(user)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic: message request: %w", err)
	}

	var text string
	for _, block := range message.Content {
		if block.Type == "text" {
			text += block.Text
		}
	}
	if text == "" {
		return "", fmt.Errorf("anthropic: empty response content")
	}
	return text, nil
}

func (s *AnthropicService) ImproveText(ctx context.Context, req ImproveRequest) (*ImproveResult, error) {
	improved, err := s.complete(ctx, improveInstruction(req.Tone), improveUserPrompt(req), 0.7, 500)
	if err != nil {
		return nil, err
	}
	return &ImproveResult{
		Improved: improved,
		Reason:   improveReason(improved),
		Type:     DetectImprovementType(req.Text, improved),
	}, nil
}

func (s *AnthropicService) SuggestTags(ctx context.Context, title, content string) ([]TagSuggestion, error) {
	raw, err := s.complete(ctx, TAGS_INSTRUCTION, tagsUserPrompt(title, content), 0.5, 300)
	if err != nil {
		return nil, err
	}
	return parseTagsResponse("anthropic", raw)
}

func (s *AnthropicService) GenerateStructure(ctx context.Context, req StructureRequest) (*StructureResult, error) {
	raw, err := s.complete(ctx, STRUCTURE_INSTRUCTION, structureUserPrompt(req), 0.7, 1000)
	if err != nil {
		return nil, err
	}
	return parseStructureResponse("anthropic", raw)
}
