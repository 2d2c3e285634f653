package models

import (
	"time"
)

// PostStatus is the two-state lifecycle of a post.
type PostStatus string

const (
	StatusDraft     PostStatus = "draft"
	StatusPublished PostStatus = "published"
)

// Valid reports whether s is one of the known statuses.
func (s PostStatus) Valid() bool {
	return s == StatusDraft || s == StatusPublished
}

// Post represents an authored post document.
// Collection: posts (hosted backend) / key "studyblog_posts" (local backend).
//
// Slug 는 항상 제목에서 다시 계산되고, Excerpt 는 항상 본문에서 다시 생성된다.
// PublishedAt 은 draft→published 전환 시 한 번만 기록되고 이후 저장에서 바뀌지 않는다.
type Post struct {
	ID       string `bson:"_id" json:"id"`
	AuthorID string `bson:"author_id" json:"authorId"`

	Title   string   `bson:"title" json:"title"`
	Slug    string   `bson:"slug" json:"slug"`
	Content string   `bson:"content" json:"content"`
	Excerpt string   `bson:"excerpt" json:"excerpt"`
	Tags    []string `bson:"tags" json:"tags"`

	Status PostStatus `bson:"status" json:"status"`

	// AI provenance
	AISuggestionsUsed bool    `bson:"ai_suggestions_used" json:"aiSuggestionsUsed"`
	AIModelUsed       *string `bson:"ai_model_used" json:"aiModelUsed"`

	// Engagement counters. Never written by the save path; each has a
	// dedicated increment operation.
	ViewCount    int64 `bson:"view_count" json:"viewCount"`
	LikeCount    int64 `bson:"like_count" json:"likeCount"`
	CommentCount int64 `bson:"comment_count" json:"commentCount"`

	CreatedAt   time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time  `bson:"updated_at" json:"updatedAt"`
	PublishedAt *time.Time `bson:"published_at" json:"publishedAt"`
}
