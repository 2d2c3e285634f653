package dto

import (
	"time"

	"studyblog/models"
)

// PostDTO exposes post fields for API consumers.
// Timestamps are RFC3339; publishedAt stays null until the first publish.
type PostDTO struct {
	ID                string     `json:"id"`
	AuthorID          string     `json:"authorId"`
	Title             string     `json:"title"`
	Slug              string     `json:"slug"`
	Content           string     `json:"content"`
	Excerpt           string     `json:"excerpt"`
	Tags              []string   `json:"tags"`
	Status            string     `json:"status"`
	AISuggestionsUsed bool       `json:"aiSuggestionsUsed"`
	AIModelUsed       *string    `json:"aiModelUsed,omitempty"`
	ViewCount         int64      `json:"viewCount"`
	LikeCount         int64      `json:"likeCount"`
	CommentCount      int64      `json:"commentCount"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
	PublishedAt       *time.Time `json:"publishedAt"`
}

// NewPostDTO constructs PostDTO from models.Post
func NewPostDTO(p models.Post) PostDTO {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return PostDTO{
		ID:                p.ID,
		AuthorID:          p.AuthorID,
		Title:             p.Title,
		Slug:              p.Slug,
		Content:           p.Content,
		Excerpt:           p.Excerpt,
		Tags:              tags,
		Status:            string(p.Status),
		AISuggestionsUsed: p.AISuggestionsUsed,
		AIModelUsed:       p.AIModelUsed,
		ViewCount:         p.ViewCount,
		LikeCount:         p.LikeCount,
		CommentCount:      p.CommentCount,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
		PublishedAt:       p.PublishedAt,
	}
}

// SavePostRequest is the write payload for creating or updating a post.
// ID is optional: when present the save targets that record, otherwise the
// post is matched by the slug derived from the title.
type SavePostRequest struct {
	ID                string   `json:"id"`
	AuthorID          string   `json:"authorId"`
	Title             string   `json:"title" binding:"required"`
	Content           string   `json:"content"`
	Tags              []string `json:"tags"`
	Status            string   `json:"status"`
	AISuggestionsUsed bool     `json:"aiSuggestionsUsed"`
	AIModelUsed       *string  `json:"aiModelUsed"`
}

// PostCountsDTO summarizes how many posts exist per status.
type PostCountsDTO struct {
	Total     int64 `json:"total"`
	Published int64 `json:"published"`
	Drafts    int64 `json:"drafts"`
}

// EngagementDTO reports the session-side engagement state after a toggle.
type EngagementDTO struct {
	Active bool  `json:"active"`
	Count  int64 `json:"count"`
}
