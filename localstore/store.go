// Package localstore is the local post backend: a single-file embedded
// store laid out like browser local storage. One namespaced key holds the
// JSON array of posts; two auxiliary keys hold the id lists the current
// session liked and bookmarked. Post mutation is read-modify-write of the
// whole array, which is acceptable for the single-session scope this
// backend serves.
package localstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	_ "modernc.org/sqlite"

	"studyblog/models"
)

const (
	keyPosts      = "studyblog_posts"
	keyLiked      = "likedPosts"
	keyBookmarked = "bookmarkedPosts"
)

// ErrNotFound is returned when an id or slug resolves to no stored post.
var ErrNotFound = errors.New("localstore: post not found")

// Store is a namespaced key-value store backed by a single SQLite file.
type Store struct {
	db *sql.DB
}

// Open creates or opens the store file, creating parent directories.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS keyvalue (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// getItem reads a raw value; missing keys return ok=false.
func (s *Store) getItem(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM keyvalue WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *Store) setItem(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO keyvalue (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value, time.Now())
	return err
}

// Posts reads the full post array. A missing or unreadable key degrades to
// an empty list, mirroring the read policy of the facade.
func (s *Store) Posts(ctx context.Context) ([]models.Post, error) {
	raw, ok, err := s.getItem(ctx, keyPosts)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var posts []models.Post
	if err := json.Unmarshal([]byte(raw), &posts); err != nil {
		return nil, fmt.Errorf("localstore: decode posts: %w", err)
	}
	return posts, nil
}

func (s *Store) putPosts(ctx context.Context, posts []models.Post) error {
	data, err := json.Marshal(posts)
	if err != nil {
		return fmt.Errorf("localstore: encode posts: %w", err)
	}
	return s.setItem(ctx, keyPosts, string(data))
}

// ListPublished returns published posts sorted by publishedAt desc.
func (s *Store) ListPublished(ctx context.Context) ([]models.Post, error) {
	posts, err := s.Posts(ctx)
	if err != nil {
		return nil, err
	}
	var published []models.Post
	for _, p := range posts {
		if p.Status == models.StatusPublished {
			published = append(published, p)
		}
	}
	sort.SliceStable(published, func(i, j int) bool {
		ti, tj := published[i].PublishedAt, published[j].PublishedAt
		if ti == nil || tj == nil {
			return tj == nil && ti != nil
		}
		return ti.After(*tj)
	})
	return published, nil
}

func (s *Store) FindBySlug(ctx context.Context, slug string) (*models.Post, error) {
	posts, err := s.Posts(ctx)
	if err != nil {
		return nil, err
	}
	for i := range posts {
		if posts[i].Slug == slug {
			p := posts[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (s *Store) FindByID(ctx context.Context, id string) (*models.Post, error) {
	posts, err := s.Posts(ctx)
	if err != nil {
		return nil, err
	}
	for i := range posts {
		if posts[i].ID == id {
			p := posts[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (s *Store) Insert(ctx context.Context, p *models.Post) error {
	posts, err := s.Posts(ctx)
	if err != nil {
		return err
	}
	posts = append(posts, *p)
	return s.putPosts(ctx, posts)
}

// Update overwrites the stored record with the same id.
func (s *Store) Update(ctx context.Context, p *models.Post) error {
	posts, err := s.Posts(ctx)
	if err != nil {
		return err
	}
	for i := range posts {
		if posts[i].ID == p.ID {
			posts[i] = *p
			return s.putPosts(ctx, posts)
		}
	}
	return ErrNotFound
}

// Delete removes a post. The local layout is slug-oriented, so the id is
// first resolved to a slug and the array filtered by slug.
func (s *Store) Delete(ctx context.Context, id string) error {
	p, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrNotFound
	}

	posts, err := s.Posts(ctx)
	if err != nil {
		return err
	}
	filtered := posts[:0]
	for _, candidate := range posts {
		if candidate.Slug != p.Slug {
			filtered = append(filtered, candidate)
		}
	}
	return s.putPosts(ctx, filtered)
}

// adjustCounter applies a read-modify-write counter change. Not protected
// against concurrent writers; single-session scope makes that acceptable.
func (s *Store) adjustCounter(ctx context.Context, id string, apply func(*models.Post)) error {
	posts, err := s.Posts(ctx)
	if err != nil {
		return err
	}
	for i := range posts {
		if posts[i].ID == id {
			apply(&posts[i])
			posts[i].UpdatedAt = time.Now()
			return s.putPosts(ctx, posts)
		}
	}
	return ErrNotFound
}

func (s *Store) IncrementViewCount(ctx context.Context, id string) error {
	return s.adjustCounter(ctx, id, func(p *models.Post) { p.ViewCount++ })
}

func (s *Store) AdjustLikeCount(ctx context.Context, id string, delta int64) error {
	return s.adjustCounter(ctx, id, func(p *models.Post) { p.LikeCount += delta })
}

func (s *Store) AdjustCommentCount(ctx context.Context, id string, delta int64) error {
	return s.adjustCounter(ctx, id, func(p *models.Post) { p.CommentCount += delta })
}

func (s *Store) Counts(ctx context.Context) (total, published, drafts int64, err error) {
	posts, err := s.Posts(ctx)
	if err != nil {
		return 0, 0, 0, err
	}
	for _, p := range posts {
		total++
		if p.Status == models.StatusPublished {
			published++
		} else {
			drafts++
		}
	}
	return total, published, drafts, nil
}

// idList reads one of the auxiliary session id lists.
func (s *Store) idList(ctx context.Context, key string) ([]string, error) {
	raw, ok, err := s.getItem(ctx, key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, fmt.Errorf("localstore: decode %s: %w", key, err)
	}
	return ids, nil
}

// toggleID adds the id if absent, removes it if present, and reports
// whether the id is in the list afterwards.
func (s *Store) toggleID(ctx context.Context, key, id string) (bool, error) {
	ids, err := s.idList(ctx, key)
	if err != nil {
		return false, err
	}

	present := false
	filtered := ids[:0]
	for _, existing := range ids {
		if existing == id {
			present = true
			continue
		}
		filtered = append(filtered, existing)
	}
	if !present {
		filtered = append(filtered, id)
	}

	data, err := json.Marshal(filtered)
	if err != nil {
		return false, err
	}
	if err := s.setItem(ctx, key, string(data)); err != nil {
		return false, err
	}
	return !present, nil
}

// LikedIDs returns the post ids the current session liked.
func (s *Store) LikedIDs(ctx context.Context) ([]string, error) {
	return s.idList(ctx, keyLiked)
}

// ToggleLiked flips the liked state of a post id and reports the new state.
func (s *Store) ToggleLiked(ctx context.Context, id string) (bool, error) {
	return s.toggleID(ctx, keyLiked, id)
}

// BookmarkedIDs returns the post ids the current session bookmarked.
func (s *Store) BookmarkedIDs(ctx context.Context) ([]string, error) {
	return s.idList(ctx, keyBookmarked)
}

// ToggleBookmarked flips the bookmarked state of a post id.
func (s *Store) ToggleBookmarked(ctx context.Context, id string) (bool, error) {
	return s.toggleID(ctx, keyBookmarked, id)
}
