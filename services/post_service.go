package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"studyblog/config"
	"studyblog/db"
	"studyblog/dto"
	"studyblog/eventbus"
	"studyblog/events"
	"studyblog/localstore"
	"studyblog/logger"
	"studyblog/models"
	"studyblog/parser"
	"studyblog/repositories"
)

var (
	// ErrNotFound is returned when an id-targeted operation matches no post.
	ErrNotFound = errors.New("post not found")
	// ErrSlugConflict is returned when an explicit-id save derives a slug
	// already owned by a different post.
	ErrSlugConflict = errors.New("slug already in use by another post")
	// ErrInvalidStatus is returned for a status outside draft/published.
	ErrInvalidStatus = errors.New("invalid post status")
)

// PostBackend is the storage contract both the hosted (MongoDB) and local
// (embedded file) backends satisfy. The facade picks one at startup and
// never mixes them afterwards.
type PostBackend interface {
	ListPublished(ctx context.Context) ([]models.Post, error)
	FindBySlug(ctx context.Context, slug string) (*models.Post, error)
	FindByID(ctx context.Context, id string) (*models.Post, error)
	Insert(ctx context.Context, p *models.Post) error
	Update(ctx context.Context, p *models.Post) error
	Delete(ctx context.Context, id string) error
	IncrementViewCount(ctx context.Context, id string) error
	AdjustLikeCount(ctx context.Context, id string, delta int64) error
	AdjustCommentCount(ctx context.Context, id string, delta int64) error
	Counts(ctx context.Context) (total, published, drafts int64, err error)
}

// SessionStore tracks which posts the current session liked or bookmarked.
// It is always file-local, regardless of which post backend is active.
type SessionStore interface {
	LikedIDs(ctx context.Context) ([]string, error)
	ToggleLiked(ctx context.Context, id string) (bool, error)
	BookmarkedIDs(ctx context.Context) ([]string, error)
	ToggleBookmarked(ctx context.Context, id string) (bool, error)
}

// PostService encapsulates post business logic over a single backend.
// Save semantics (slug derivation, excerpt regeneration, publish timestamps)
// are identical for both backends.
type PostService struct {
	backend PostBackend
	session SessionStore
	bus     eventbus.Publisher
	driver  string
}

func NewPostService(backend PostBackend, session SessionStore, bus eventbus.Publisher, driver string) *PostService {
	if bus == nil {
		bus = eventbus.NewNoopPublisher()
	}
	return &PostService{backend: backend, session: session, bus: bus, driver: driver}
}

// NewPostServiceFromConfig selects the backend once from configuration.
// "mongo" requires a reachable deployment; anything else gets the local
// embedded store. The session store is file-local in both modes.
func NewPostServiceFromConfig(ctx context.Context, cfg config.StorageConfig, bus eventbus.Publisher) (*PostService, error) {
	path := cfg.Local.Path
	if path == "" {
		path = "data/studyblog.db"
	}
	local, err := localstore.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open local store: %w", err)
	}

	if cfg.Driver == "mongo" {
		if err := db.Init(ctx); err != nil {
			return nil, fmt.Errorf("init mongo: %w", err)
		}
		repo := repositories.NewPostRepository(db.Database())
		logger.Log.Info("post storage: mongo backend selected")
		return NewPostService(repo, local, bus, "mongo"), nil
	}

	logger.Log.Info("post storage: local backend selected")
	return NewPostService(local, local, bus, "local"), nil
}

// Driver reports which backend is active ("mongo" or "local").
func (s *PostService) Driver() string {
	return s.driver
}

func isNotFound(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments) || errors.Is(err, localstore.ErrNotFound)
}

// GetPublishedPosts lists published posts, newest first. Read failures
// degrade to an empty list so the feed never hard-fails.
func (s *PostService) GetPublishedPosts(ctx context.Context) []dto.PostDTO {
	posts, err := s.backend.ListPublished(ctx)
	if err != nil {
		logger.ErrorWithFields("failed to list published posts", map[string]interface{}{
			"driver": s.driver,
			"error":  err.Error(),
		})
		return []dto.PostDTO{}
	}
	out := make([]dto.PostDTO, 0, len(posts))
	for _, p := range posts {
		out = append(out, dto.NewPostDTO(p))
	}
	return out
}

// GetPostBySlug returns one post or nil. Read failures degrade to nil.
func (s *PostService) GetPostBySlug(ctx context.Context, slug string) *dto.PostDTO {
	p, err := s.backend.FindBySlug(ctx, slug)
	if err != nil {
		logger.ErrorWithFields("failed to load post by slug", map[string]interface{}{
			"slug":  slug,
			"error": err.Error(),
		})
		return nil
	}
	if p == nil {
		return nil
	}
	d := dto.NewPostDTO(*p)
	return &d
}

// GetPostByID returns one post or nil. Read failures degrade to nil.
func (s *PostService) GetPostByID(ctx context.Context, id string) *dto.PostDTO {
	p, err := s.backend.FindByID(ctx, id)
	if err != nil {
		logger.ErrorWithFields("failed to load post by id", map[string]interface{}{
			"id":    id,
			"error": err.Error(),
		})
		return nil
	}
	if p == nil {
		return nil
	}
	d := dto.NewPostDTO(*p)
	return &d
}

// SavePost creates or updates a post with shared semantics:
//   - slug is always recomputed from the title
//   - excerpt is always regenerated from the content
//   - without an id, a slug match updates the existing post in place
//   - with an id, a slug owned by a different post is a conflict
//   - publishedAt is set on first publish and never cleared afterwards
//   - engagement counters are never touched by a save
func (s *PostService) SavePost(ctx context.Context, in dto.SavePostRequest) (*dto.PostDTO, error) {
	status := models.PostStatus(normalizeStatus(in.Status))
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, in.Status)
	}

	now := time.Now()
	slug := parser.Slugify(in.Title)
	excerpt := parser.GenerateExcerpt(in.Content)

	var existing *models.Post
	var err error

	if in.ID != "" {
		existing, err = s.backend.FindByID(ctx, in.ID)
		if err != nil {
			return nil, fmt.Errorf("find post by id: %w", err)
		}
		if existing == nil {
			return nil, ErrNotFound
		}
		bySlug, err := s.backend.FindBySlug(ctx, slug)
		if err != nil {
			return nil, fmt.Errorf("check slug owner: %w", err)
		}
		if bySlug != nil && bySlug.ID != in.ID {
			return nil, ErrSlugConflict
		}
	} else {
		existing, err = s.backend.FindBySlug(ctx, slug)
		if err != nil {
			return nil, fmt.Errorf("find post by slug: %w", err)
		}
	}

	var post models.Post
	firstPublish := false

	if existing != nil {
		post = *existing
		post.Title = in.Title
		post.Slug = slug
		post.Content = in.Content
		post.Excerpt = excerpt
		post.Tags = in.Tags
		post.Status = status
		post.AISuggestionsUsed = in.AISuggestionsUsed
		post.AIModelUsed = in.AIModelUsed
		post.UpdatedAt = now
		if in.AuthorID != "" {
			post.AuthorID = in.AuthorID
		}
		if status == models.StatusPublished && post.PublishedAt == nil {
			post.PublishedAt = &now
			firstPublish = true
		}
		if err := s.backend.Update(ctx, &post); err != nil {
			if isNotFound(err) {
				return nil, ErrNotFound
			}
			return nil, fmt.Errorf("update post: %w", err)
		}
	} else {
		author := in.AuthorID
		if author == "" {
			author = "anonymous"
		}
		post = models.Post{
			ID:                uuid.NewString(),
			AuthorID:          author,
			Title:             in.Title,
			Slug:              slug,
			Content:           in.Content,
			Excerpt:           excerpt,
			Tags:              in.Tags,
			Status:            status,
			AISuggestionsUsed: in.AISuggestionsUsed,
			AIModelUsed:       in.AIModelUsed,
			CreatedAt:         now,
			UpdatedAt:         now,
		}
		if status == models.StatusPublished {
			post.PublishedAt = &now
			firstPublish = true
		}
		if err := s.backend.Insert(ctx, &post); err != nil {
			return nil, fmt.Errorf("insert post: %w", err)
		}
	}

	if firstPublish {
		s.publishEvent(ctx, events.PostPublishedEvent{
			BaseEvent: events.NewBaseEvent(events.PostPublished),
			PostID:    post.ID,
			AuthorID:  post.AuthorID,
			Title:     post.Title,
			Slug:      post.Slug,
			Tags:      post.Tags,
		})
	}

	d := dto.NewPostDTO(post)
	return &d, nil
}

// DeletePost removes a post by id.
func (s *PostService) DeletePost(ctx context.Context, id string) error {
	p, err := s.backend.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("find post: %w", err)
	}
	if p == nil {
		return ErrNotFound
	}
	if err := s.backend.Delete(ctx, id); err != nil {
		if isNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("delete post: %w", err)
	}
	s.publishEvent(ctx, events.PostDeletedEvent{
		BaseEvent: events.NewBaseEvent(events.PostDeleted),
		PostID:    p.ID,
		Slug:      p.Slug,
	})
	return nil
}

// IncrementViewCount bumps the view counter without touching the post body.
func (s *PostService) IncrementViewCount(ctx context.Context, id string) error {
	if err := s.backend.IncrementViewCount(ctx, id); err != nil {
		if isNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("increment view count: %w", err)
	}
	return nil
}

// ToggleLike flips the session's liked state and adjusts the counter by
// the matching delta. Returns the new state and count.
func (s *PostService) ToggleLike(ctx context.Context, id string) (*dto.EngagementDTO, error) {
	p, err := s.backend.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find post: %w", err)
	}
	if p == nil {
		return nil, ErrNotFound
	}

	liked, err := s.session.ToggleLiked(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("toggle liked state: %w", err)
	}
	delta := int64(1)
	if !liked {
		delta = -1
	}
	if err := s.backend.AdjustLikeCount(ctx, id, delta); err != nil {
		if isNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("adjust like count: %w", err)
	}
	return &dto.EngagementDTO{Active: liked, Count: p.LikeCount + delta}, nil
}

// ToggleBookmark flips the session's bookmarked state. Bookmarks are
// session-only and carry no post counter.
func (s *PostService) ToggleBookmark(ctx context.Context, id string) (*dto.EngagementDTO, error) {
	p, err := s.backend.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find post: %w", err)
	}
	if p == nil {
		return nil, ErrNotFound
	}
	marked, err := s.session.ToggleBookmarked(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("toggle bookmarked state: %w", err)
	}
	return &dto.EngagementDTO{Active: marked}, nil
}

// AdjustCommentCount shifts the comment counter by delta.
func (s *PostService) AdjustCommentCount(ctx context.Context, id string, delta int64) error {
	if err := s.backend.AdjustCommentCount(ctx, id, delta); err != nil {
		if isNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("adjust comment count: %w", err)
	}
	return nil
}

// GetCounts reports totals per status. Read failures degrade to zeros.
func (s *PostService) GetCounts(ctx context.Context) dto.PostCountsDTO {
	total, published, drafts, err := s.backend.Counts(ctx)
	if err != nil {
		logger.ErrorWithFields("failed to count posts", map[string]interface{}{
			"driver": s.driver,
			"error":  err.Error(),
		})
		return dto.PostCountsDTO{}
	}
	return dto.PostCountsDTO{Total: total, Published: published, Drafts: drafts}
}

// LikedPostIDs returns the ids the current session liked.
func (s *PostService) LikedPostIDs(ctx context.Context) []string {
	ids, err := s.session.LikedIDs(ctx)
	if err != nil {
		logger.Log.Warnf("failed to load liked ids: %v", err)
		return []string{}
	}
	if ids == nil {
		return []string{}
	}
	return ids
}

// BookmarkedPostIDs returns the ids the current session bookmarked.
func (s *PostService) BookmarkedPostIDs(ctx context.Context) []string {
	ids, err := s.session.BookmarkedIDs(ctx)
	if err != nil {
		logger.Log.Warnf("failed to load bookmarked ids: %v", err)
		return []string{}
	}
	if ids == nil {
		return []string{}
	}
	return ids
}

// publishEvent sends a lifecycle event; delivery problems are logged and
// never fail the triggering operation.
func (s *PostService) publishEvent(ctx context.Context, event interface{}) {
	if err := s.bus.Publish(ctx, eventbus.TopicPostLifecycle, event); err != nil {
		logger.Log.Warnf("failed to publish lifecycle event: %v", err)
	}
}

// normalizeStatus maps empty input to draft for lenient clients.
func normalizeStatus(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return string(models.StatusDraft)
	}
	return raw
}
