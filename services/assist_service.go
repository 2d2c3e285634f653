package services

import (
	"context"
	"strings"
	"time"

	"studyblog/ai"
	"studyblog/dto"
	"studyblog/logger"
	"studyblog/models"
)

// 태그 제안은 최대 5개까지만 노출합니다.
const maxSuggestedTags = 5

// AILogRecorder persists per-call usage records. The hosted backend writes
// to the ai_logs collection; local mode uses the no-op recorder.
type AILogRecorder interface {
	Record(ctx context.Context, log models.AILog) error
}

// NoopAILogRecorder discards usage records.
type NoopAILogRecorder struct{}

func (NoopAILogRecorder) Record(ctx context.Context, log models.AILog) error { return nil }

// AssistService fronts the AI provider factory for the write-assist
// endpoints. Every call is timed and recorded.
type AssistService struct {
	factory  *ai.Factory
	recorder AILogRecorder
}

func NewAssistService(factory *ai.Factory, recorder AILogRecorder) *AssistService {
	if recorder == nil {
		recorder = NoopAILogRecorder{}
	}
	return &AssistService{factory: factory, recorder: recorder}
}

// ImproveText rewrites a passage via the active provider.
func (s *AssistService) ImproveText(ctx context.Context, in dto.ImproveTextRequest) (*dto.ImproveTextResponse, error) {
	svc := s.factory.Service()
	started := time.Now()

	result, err := svc.ImproveText(ctx, ai.ImproveRequest{
		Text:    in.Text,
		Context: in.Context,
		Tone:    ai.Tone(in.Tone),
	})
	s.record(ctx, "improve_text", svc.Name(), started, err, func() string {
		return result.Improved
	})
	if err != nil {
		return nil, err
	}
	return &dto.ImproveTextResponse{
		ImprovedText: result.Improved,
		Reason:       result.Reason,
		Type:         string(result.Type),
	}, nil
}

// SuggestTags returns at most five tag names for a title/content pair.
func (s *AssistService) SuggestTags(ctx context.Context, in dto.SuggestTagsRequest) (*dto.SuggestTagsResponse, error) {
	svc := s.factory.Service()
	started := time.Now()

	suggestions, err := svc.SuggestTags(ctx, in.Title, in.Content)
	s.record(ctx, "suggest_tags", svc.Name(), started, err, func() string {
		names := make([]string, 0, len(suggestions))
		for _, t := range suggestions {
			names = append(names, t.Tag)
		}
		return strings.Join(names, ", ")
	})
	if err != nil {
		return nil, err
	}

	tags := make([]string, 0, maxSuggestedTags)
	for _, t := range suggestions {
		if len(tags) == maxSuggestedTags {
			break
		}
		tags = append(tags, t.Tag)
	}
	return &dto.SuggestTagsResponse{Tags: tags}, nil
}

// GenerateStructure produces a post outline from a rough idea.
func (s *AssistService) GenerateStructure(ctx context.Context, in dto.GenerateStructureRequest) (*dto.GenerateStructureResponse, error) {
	svc := s.factory.Service()
	started := time.Now()

	result, err := svc.GenerateStructure(ctx, ai.StructureRequest{
		UserInput: in.UserInput,
		Context:   in.Context,
	})
	s.record(ctx, "generate_structure", svc.Name(), started, err, func() string {
		return result.PostType
	})
	if err != nil {
		return nil, err
	}

	sections := make([]dto.StructureSectionDTO, 0, len(result.Sections))
	for _, sec := range result.Sections {
		sections = append(sections, dto.StructureSectionDTO{
			Order:       sec.Order,
			Title:       sec.Title,
			Description: sec.Description,
			Placeholder: sec.Placeholder,
		})
	}
	return &dto.GenerateStructureResponse{
		PostType:  result.PostType,
		Reasoning: result.Reasoning,
		Sections:  sections,
	}, nil
}

// record writes one usage log entry. Recorder failures are logged only so
// observability never breaks the assist path.
func (s *AssistService) record(ctx context.Context, operation, providerName string, started time.Time, callErr error, excerpt func() string) {
	completed := time.Now()
	provider, model := splitProviderName(providerName)

	entry := models.AILog{
		Operation:   operation,
		Provider:    provider,
		ModelName:   model,
		DurationMs:  completed.Sub(started).Milliseconds(),
		Success:     callErr == nil,
		RequestedAt: started,
		CompletedAt: completed,
	}
	if callErr != nil {
		msg := callErr.Error()
		entry.ErrorMessage = &msg
	} else {
		entry.ResponseExcerpt = truncateExcerpt(excerpt(), 200)
	}

	if err := s.recorder.Record(ctx, entry); err != nil {
		logger.Log.Warnf("failed to record ai usage log: %v", err)
	}
}

// splitProviderName separates "openai/gpt-4o-mini" into provider and model.
func splitProviderName(name string) (provider, model string) {
	if i := strings.IndexByte(name, '/'); i >= 0 {
		return name[:i], name[i+1:]
	}
	return name, ""
}

func truncateExcerpt(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
