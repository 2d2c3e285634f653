package services_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyblog/dto"
	"studyblog/events"
	"studyblog/localstore"
	"studyblog/services"
)

// capturePublisher records lifecycle events for assertions.
type capturePublisher struct {
	published []interface{}
}

func (p *capturePublisher) Publish(ctx context.Context, topic string, event interface{}) error {
	p.published = append(p.published, event)
	return nil
}

func (p *capturePublisher) Close() {}

func newTestService(t *testing.T) (*services.PostService, *capturePublisher) {
	t.Helper()
	store, err := localstore.Open(filepath.Join(t.TempDir(), "studyblog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	bus := &capturePublisher{}
	return services.NewPostService(store, store, bus, "local"), bus
}

func TestSavePostCreatesDraft(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	post, err := svc.SavePost(ctx, dto.SavePostRequest{
		AuthorID: "author-1",
		Title:    "Redux 상태 관리 배우기",
		Content:  "오늘은 Redux를 공부했다.",
		Tags:     []string{"React"},
		Status:   "draft",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, post.ID)
	assert.Equal(t, "author-1", post.AuthorID)
	assert.Equal(t, "redux-상태-관리-배우기", post.Slug)
	assert.Equal(t, "오늘은 Redux를 공부했다.", post.Excerpt)
	assert.Equal(t, "draft", post.Status)
	assert.Nil(t, post.PublishedAt)
}

func TestSavePostEmptyStatusDefaultsToDraft(t *testing.T) {
	svc, _ := newTestService(t)

	post, err := svc.SavePost(context.Background(), dto.SavePostRequest{
		Title:   "상태 없는 저장",
		Content: "본문",
	})
	require.NoError(t, err)
	assert.Equal(t, "draft", post.Status)
	assert.Equal(t, "anonymous", post.AuthorID)
}

func TestSavePostRejectsUnknownStatus(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.SavePost(context.Background(), dto.SavePostRequest{
		Title:  "이상한 상태",
		Status: "archived",
	})
	assert.ErrorIs(t, err, services.ErrInvalidStatus)
}

func TestSavePostSlugMatchUpdatesInPlace(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	first, err := svc.SavePost(ctx, dto.SavePostRequest{
		Title:   "Hello World",
		Content: "첫 번째 버전",
		Status:  "draft",
	})
	require.NoError(t, err)

	// id 없이 같은 제목으로 다시 저장하면 기존 포스트가 갱신된다.
	second, err := svc.SavePost(ctx, dto.SavePostRequest{
		Title:   "Hello World",
		Content: "두 번째 버전",
		Status:  "draft",
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "두 번째 버전", second.Content)
	assert.True(t, first.CreatedAt.Equal(second.CreatedAt))

	counts := svc.GetCounts(ctx)
	assert.Equal(t, int64(1), counts.Total)
}

func TestSavePostPublishedAtSetOnce(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	published, err := svc.SavePost(ctx, dto.SavePostRequest{
		Title:   "발행 테스트",
		Content: "본문",
		Status:  "published",
	})
	require.NoError(t, err)
	require.NotNil(t, published.PublishedAt)
	firstPublishedAt := *published.PublishedAt

	// 초안으로 되돌려도 발행 시각은 유지된다.
	reverted, err := svc.SavePost(ctx, dto.SavePostRequest{
		ID:      published.ID,
		Title:   "발행 테스트",
		Content: "수정된 본문",
		Status:  "draft",
	})
	require.NoError(t, err)
	require.NotNil(t, reverted.PublishedAt)
	assert.True(t, firstPublishedAt.Equal(*reverted.PublishedAt))

	// 다시 발행해도 최초 발행 시각이 그대로다.
	republished, err := svc.SavePost(ctx, dto.SavePostRequest{
		ID:      published.ID,
		Title:   "발행 테스트",
		Content: "또 수정된 본문",
		Status:  "published",
	})
	require.NoError(t, err)
	require.NotNil(t, republished.PublishedAt)
	assert.True(t, firstPublishedAt.Equal(*republished.PublishedAt))
}

func TestSavePostWithIDSlugConflict(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.SavePost(ctx, dto.SavePostRequest{
		Title:  "First Post",
		Status: "draft",
	})
	require.NoError(t, err)

	other, err := svc.SavePost(ctx, dto.SavePostRequest{
		Title:  "Second Post",
		Status: "draft",
	})
	require.NoError(t, err)

	// 다른 포스트가 소유한 slug 로 제목을 바꾸면 충돌이다.
	_, err = svc.SavePost(ctx, dto.SavePostRequest{
		ID:     other.ID,
		Title:  "First Post",
		Status: "draft",
	})
	assert.ErrorIs(t, err, services.ErrSlugConflict)
}

func TestSavePostWithIDRenameKeepsOwnSlug(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	post, err := svc.SavePost(ctx, dto.SavePostRequest{
		Title:  "Original Title",
		Status: "draft",
	})
	require.NoError(t, err)

	// 자기 자신의 slug 와의 일치는 충돌이 아니다.
	same, err := svc.SavePost(ctx, dto.SavePostRequest{
		ID:      post.ID,
		Title:   "Original Title",
		Content: "내용 추가",
		Status:  "draft",
	})
	require.NoError(t, err)
	assert.Equal(t, post.ID, same.ID)

	renamed, err := svc.SavePost(ctx, dto.SavePostRequest{
		ID:     post.ID,
		Title:  "Renamed Title",
		Status: "draft",
	})
	require.NoError(t, err)
	assert.Equal(t, "renamed-title", renamed.Slug)
}

func TestSavePostUnknownIDNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.SavePost(context.Background(), dto.SavePostRequest{
		ID:     "no-such-id",
		Title:  "유령 포스트",
		Status: "draft",
	})
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestSavePostDoesNotTouchCounters(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	post, err := svc.SavePost(ctx, dto.SavePostRequest{
		Title:   "조회수 테스트",
		Content: "본문",
		Status:  "published",
	})
	require.NoError(t, err)

	require.NoError(t, svc.IncrementViewCount(ctx, post.ID))
	require.NoError(t, svc.IncrementViewCount(ctx, post.ID))
	_, err = svc.ToggleLike(ctx, post.ID)
	require.NoError(t, err)

	updated, err := svc.SavePost(ctx, dto.SavePostRequest{
		ID:      post.ID,
		Title:   "조회수 테스트",
		Content: "수정된 본문",
		Status:  "published",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated.ViewCount)
	assert.Equal(t, int64(1), updated.LikeCount)
}

func TestToggleLikeFlipsStateAndCount(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	post, err := svc.SavePost(ctx, dto.SavePostRequest{
		Title:  "좋아요 테스트",
		Status: "published",
	})
	require.NoError(t, err)

	state, err := svc.ToggleLike(ctx, post.ID)
	require.NoError(t, err)
	assert.True(t, state.Active)
	assert.Equal(t, int64(1), state.Count)
	assert.Contains(t, svc.LikedPostIDs(ctx), post.ID)

	state, err = svc.ToggleLike(ctx, post.ID)
	require.NoError(t, err)
	assert.False(t, state.Active)
	assert.Equal(t, int64(0), state.Count)
	assert.NotContains(t, svc.LikedPostIDs(ctx), post.ID)
}

func TestToggleBookmarkIsSessionOnly(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	post, err := svc.SavePost(ctx, dto.SavePostRequest{
		Title:  "북마크 테스트",
		Status: "published",
	})
	require.NoError(t, err)

	state, err := svc.ToggleBookmark(ctx, post.ID)
	require.NoError(t, err)
	assert.True(t, state.Active)
	assert.Contains(t, svc.BookmarkedPostIDs(ctx), post.ID)

	// 북마크는 포스트 카운터에 반영되지 않는다.
	got := svc.GetPostByID(ctx, post.ID)
	require.NotNil(t, got)
	assert.Equal(t, int64(0), got.LikeCount)
}

func TestDeletePost(t *testing.T) {
	svc, bus := newTestService(t)
	ctx := context.Background()

	post, err := svc.SavePost(ctx, dto.SavePostRequest{
		Title:  "삭제될 포스트",
		Status: "draft",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeletePost(ctx, post.ID))
	assert.Nil(t, svc.GetPostByID(ctx, post.ID))
	assert.ErrorIs(t, svc.DeletePost(ctx, post.ID), services.ErrNotFound)

	require.Len(t, bus.published, 1)
	deleted, ok := bus.published[0].(events.PostDeletedEvent)
	require.True(t, ok)
	assert.Equal(t, post.ID, deleted.PostID)
}

func TestFirstPublishEmitsEvent(t *testing.T) {
	svc, bus := newTestService(t)
	ctx := context.Background()

	post, err := svc.SavePost(ctx, dto.SavePostRequest{
		Title:  "이벤트 테스트",
		Status: "published",
	})
	require.NoError(t, err)

	require.Len(t, bus.published, 1)
	published, ok := bus.published[0].(events.PostPublishedEvent)
	require.True(t, ok)
	assert.Equal(t, post.ID, published.PostID)
	assert.Equal(t, events.PostPublished, published.Type)

	// 재발행 저장은 이벤트를 다시 발행하지 않는다.
	_, err = svc.SavePost(ctx, dto.SavePostRequest{
		ID:     post.ID,
		Title:  "이벤트 테스트",
		Status: "published",
	})
	require.NoError(t, err)
	assert.Len(t, bus.published, 1)
}

func TestGetPublishedPostsExcludesDrafts(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.SavePost(ctx, dto.SavePostRequest{Title: "공개 글", Status: "published"})
	require.NoError(t, err)
	_, err = svc.SavePost(ctx, dto.SavePostRequest{Title: "초안 글", Status: "draft"})
	require.NoError(t, err)

	posts := svc.GetPublishedPosts(ctx)
	require.Len(t, posts, 1)
	assert.Equal(t, "공개-글", posts[0].Slug)

	counts := svc.GetCounts(ctx)
	assert.Equal(t, int64(2), counts.Total)
	assert.Equal(t, int64(1), counts.Published)
	assert.Equal(t, int64(1), counts.Drafts)
}

func TestGetPostBySlugMissingReturnsNil(t *testing.T) {
	svc, _ := newTestService(t)

	assert.Nil(t, svc.GetPostBySlug(context.Background(), "no-such-slug"))
}
