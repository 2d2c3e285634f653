package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyblog/ai"
	"studyblog/config"
	"studyblog/dto"
	"studyblog/models"
	"studyblog/services"
)

// captureRecorder collects AI usage log entries.
type captureRecorder struct {
	entries []models.AILog
}

func (r *captureRecorder) Record(ctx context.Context, log models.AILog) error {
	r.entries = append(r.entries, log)
	return nil
}

func newAssistService() (*services.AssistService, *captureRecorder) {
	recorder := &captureRecorder{}
	factory := ai.NewFactory(config.AIConfig{Provider: "mock"})
	return services.NewAssistService(factory, recorder), recorder
}

func TestAssistImproveTextRecordsUsage(t *testing.T) {
	svc, recorder := newAssistService()

	resp, err := svc.ImproveText(context.Background(), dto.ImproveTextRequest{
		Text: "저는 파이썬을 배웠어요",
	})
	require.NoError(t, err)
	assert.Contains(t, resp.ImprovedText, "Python")

	require.Len(t, recorder.entries, 1)
	entry := recorder.entries[0]
	assert.Equal(t, "improve_text", entry.Operation)
	assert.Equal(t, "mock", entry.Provider)
	assert.True(t, entry.Success)
	assert.Nil(t, entry.ErrorMessage)
	assert.NotEmpty(t, entry.ResponseExcerpt)
	assert.False(t, entry.CompletedAt.Before(entry.RequestedAt))
}

func TestAssistSuggestTagsCapsAtFive(t *testing.T) {
	svc, recorder := newAssistService()

	// 충분히 많은 키워드를 넣어 5개 초과 후보를 만든다.
	resp, err := svc.SuggestTags(context.Background(), dto.SuggestTagsRequest{
		Title:   "파이썬 자바스크립트 리액트 넥스트 머신러닝",
		Content: "딥러닝 gpt claude 튜토리얼 프로젝트 후기",
	})
	require.NoError(t, err)
	assert.Len(t, resp.Tags, 5)

	require.Len(t, recorder.entries, 1)
	assert.Equal(t, "suggest_tags", recorder.entries[0].Operation)
}

func TestAssistGenerateStructureRecordsUsage(t *testing.T) {
	svc, recorder := newAssistService()

	resp, err := svc.GenerateStructure(context.Background(), dto.GenerateStructureRequest{
		UserInput: "사이드 프로젝트를 만들었다",
	})
	require.NoError(t, err)
	assert.Equal(t, "프로젝트 후기", resp.PostType)
	require.Len(t, resp.Sections, 5)

	require.Len(t, recorder.entries, 1)
	entry := recorder.entries[0]
	assert.Equal(t, "generate_structure", entry.Operation)
	assert.Equal(t, "프로젝트 후기", entry.ResponseExcerpt)
}

func TestAssistNilRecorderIsSafe(t *testing.T) {
	factory := ai.NewFactory(config.AIConfig{Provider: "mock"})
	svc := services.NewAssistService(factory, nil)

	_, err := svc.ImproveText(context.Background(), dto.ImproveTextRequest{Text: "테스트"})
	assert.NoError(t, err)
}
