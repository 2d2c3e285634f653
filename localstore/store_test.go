package localstore

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyblog/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "studyblog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func testPost(id, slug string, status models.PostStatus) models.Post {
	now := time.Now()
	return models.Post{
		ID:        id,
		AuthorID:  "tester",
		Title:     slug,
		Slug:      slug,
		Content:   "본문 내용",
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestStoreInsertAndFind(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	p := testPost("id-1", "first-post", models.StatusDraft)
	require.NoError(t, s.Insert(ctx, &p))

	bySlug, err := s.FindBySlug(ctx, "first-post")
	require.NoError(t, err)
	require.NotNil(t, bySlug)
	assert.Equal(t, "id-1", bySlug.ID)

	byID, err := s.FindByID(ctx, "id-1")
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "first-post", byID.Slug)

	missing, err := s.FindBySlug(ctx, "no-such-slug")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestStoreListPublishedSortsByPublishedAt(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	older := time.Now().Add(-time.Hour)
	newer := time.Now()

	a := testPost("id-a", "older-post", models.StatusPublished)
	a.PublishedAt = &older
	b := testPost("id-b", "newer-post", models.StatusPublished)
	b.PublishedAt = &newer
	c := testPost("id-c", "draft-post", models.StatusDraft)

	require.NoError(t, s.Insert(ctx, &a))
	require.NoError(t, s.Insert(ctx, &b))
	require.NoError(t, s.Insert(ctx, &c))

	published, err := s.ListPublished(ctx)
	require.NoError(t, err)
	require.Len(t, published, 2)
	assert.Equal(t, "id-b", published[0].ID)
	assert.Equal(t, "id-a", published[1].ID)
}

func TestStoreUpdateReplacesRecord(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	p := testPost("id-1", "first-post", models.StatusDraft)
	require.NoError(t, s.Insert(ctx, &p))

	p.Title = "수정된 제목"
	p.Slug = "수정된-제목"
	require.NoError(t, s.Update(ctx, &p))

	got, err := s.FindByID(ctx, "id-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "수정된 제목", got.Title)
	assert.Equal(t, "수정된-제목", got.Slug)

	ghost := testPost("id-ghost", "ghost", models.StatusDraft)
	assert.ErrorIs(t, s.Update(ctx, &ghost), ErrNotFound)
}

func TestStoreDeleteResolvesIDToSlug(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	p := testPost("id-1", "target-post", models.StatusPublished)
	keep := testPost("id-2", "other-post", models.StatusPublished)
	require.NoError(t, s.Insert(ctx, &p))
	require.NoError(t, s.Insert(ctx, &keep))

	require.NoError(t, s.Delete(ctx, "id-1"))

	gone, err := s.FindByID(ctx, "id-1")
	require.NoError(t, err)
	assert.Nil(t, gone)

	remaining, err := s.Posts(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "id-2", remaining[0].ID)

	assert.ErrorIs(t, s.Delete(ctx, "id-1"), ErrNotFound)
}

func TestStoreCounters(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	p := testPost("id-1", "counted-post", models.StatusPublished)
	require.NoError(t, s.Insert(ctx, &p))

	require.NoError(t, s.IncrementViewCount(ctx, "id-1"))
	require.NoError(t, s.IncrementViewCount(ctx, "id-1"))
	require.NoError(t, s.AdjustLikeCount(ctx, "id-1", 1))
	require.NoError(t, s.AdjustLikeCount(ctx, "id-1", -1))
	require.NoError(t, s.AdjustCommentCount(ctx, "id-1", 1))

	got, err := s.FindByID(ctx, "id-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(2), got.ViewCount)
	assert.Equal(t, int64(0), got.LikeCount)
	assert.Equal(t, int64(1), got.CommentCount)

	assert.ErrorIs(t, s.IncrementViewCount(ctx, "id-ghost"), ErrNotFound)
}

func TestStoreCounts(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	a := testPost("id-a", "post-a", models.StatusPublished)
	b := testPost("id-b", "post-b", models.StatusDraft)
	c := testPost("id-c", "post-c", models.StatusDraft)
	require.NoError(t, s.Insert(ctx, &a))
	require.NoError(t, s.Insert(ctx, &b))
	require.NoError(t, s.Insert(ctx, &c))

	total, published, drafts, err := s.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Equal(t, int64(1), published)
	assert.Equal(t, int64(2), drafts)
}

func TestStoreSessionToggles(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	liked, err := s.ToggleLiked(ctx, "id-1")
	require.NoError(t, err)
	assert.True(t, liked)

	ids, err := s.LikedIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"id-1"}, ids)

	liked, err = s.ToggleLiked(ctx, "id-1")
	require.NoError(t, err)
	assert.False(t, liked)

	ids, err = s.LikedIDs(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)

	marked, err := s.ToggleBookmarked(ctx, "id-2")
	require.NoError(t, err)
	assert.True(t, marked)

	bookmarks, err := s.BookmarkedIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"id-2"}, bookmarks)
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "studyblog.db")
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	p := testPost("id-1", "durable-post", models.StatusPublished)
	require.NoError(t, s.Insert(ctx, &p))
	require.NoError(t, s.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.FindByID(ctx, "id-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "durable-post", got.Slug)
}
