package ai

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-2.0-flash"

// GeminiService delegates the assist contract to the Gemini API.
type GeminiService struct {
	client *genai.Client
	model  string
}

// NewGeminiService constructs the Gemini adapter. Client construction can
// fail, in which case the selector substitutes the mock provider.
func NewGeminiService(apiKey, model string) (*GeminiService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: API key is required")
	}
	if model == "" {
		model = defaultGeminiModel
	}
	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return &GeminiService{client: client, model: model}, nil
}

func (s *GeminiService) Name() string { return "gemini/" + s.model }

// complete issues one generate-content call with a system instruction.
func (s *GeminiService) complete(ctx context.Context, system, user string) (string, error) {
	result, err := s.client.Models.GenerateContent(
		ctx,
		s.model,
		genai.Text(user),
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: system}}},
		},
	)
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}
	text := result.Text()
	if text == "" {
		return "", fmt.Errorf("gemini: empty response")
	}
	return text, nil
}

func (s *GeminiService) ImproveText(ctx context.Context, req ImproveRequest) (*ImproveResult, error) {
	improved, err := s.complete(ctx, improveInstruction(req.Tone), improveUserPrompt(req))
	if err != nil {
		return nil, err
	}
	return &ImproveResult{
		Improved: improved,
		Reason:   improveReason(improved),
		Type:     DetectImprovementType(req.Text, improved),
	}, nil
}

func (s *GeminiService) SuggestTags(ctx context.Context, title, content string) ([]TagSuggestion, error) {
	raw, err := s.complete(ctx, TAGS_INSTRUCTION, tagsUserPrompt(title, content))
	if err != nil {
		return nil, err
	}
	return parseTagsResponse("gemini", raw)
}

func (s *GeminiService) GenerateStructure(ctx context.Context, req StructureRequest) (*StructureResult, error) {
	raw, err := s.complete(ctx, STRUCTURE_INSTRUCTION, structureUserPrompt(req))
	if err != nil {
		return nil, err
	}
	return parseStructureResponse("gemini", raw)
}
