package repositories

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"studyblog/models"
)

// PostRepository is the hosted post backend over MongoDB.
type PostRepository struct {
	col *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{col: db.Collection("posts")}
}

// ListPublished returns published posts sorted by published_at desc.
func (r *PostRepository) ListPublished(ctx context.Context) ([]models.Post, error) {
	findOpts := options.Find().SetSort(bson.D{
		{Key: "published_at", Value: -1},
		{Key: "_id", Value: -1},
	})
	cur, err := r.col.Find(ctx, bson.M{"status": models.StatusPublished}, findOpts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var results []models.Post
	for cur.Next(ctx) {
		var p models.Post
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		results = append(results, p)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// FindBySlug returns a post by slug, or (nil, nil) when absent.
func (r *PostRepository) FindBySlug(ctx context.Context, slug string) (*models.Post, error) {
	var p models.Post
	if err := r.col.FindOne(ctx, bson.M{"slug": slug}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// FindByID returns a post by id, or (nil, nil) when absent.
func (r *PostRepository) FindByID(ctx context.Context, id string) (*models.Post, error) {
	var p models.Post
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// Insert stores a new post document.
func (r *PostRepository) Insert(ctx context.Context, p *models.Post) error {
	_, err := r.col.InsertOne(ctx, p)
	return err
}

// Update overwrites the mutable fields of an existing post. Counters are
// deliberately excluded; they have dedicated operations.
func (r *PostRepository) Update(ctx context.Context, p *models.Post) error {
	res, err := r.col.UpdateByID(ctx, p.ID, bson.M{
		"$set": bson.M{
			"author_id":           p.AuthorID,
			"title":               p.Title,
			"slug":                p.Slug,
			"content":             p.Content,
			"excerpt":             p.Excerpt,
			"tags":                p.Tags,
			"status":              p.Status,
			"ai_suggestions_used": p.AISuggestionsUsed,
			"ai_model_used":       p.AIModelUsed,
			"published_at":        p.PublishedAt,
			"updated_at":          p.UpdatedAt,
		},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// Delete removes a post directly by id.
func (r *PostRepository) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// IncrementViewCount increments the view_count field by 1 for the given post ID.
// This is an atomic server-side increment, the only sanctioned view-count path.
func (r *PostRepository) IncrementViewCount(ctx context.Context, id string) error {
	_, err := r.col.UpdateByID(ctx, id, bson.M{
		"$inc": bson.M{"view_count": 1},
		"$set": bson.M{"updated_at": time.Now()},
	})
	return err
}

// AdjustLikeCount adds delta (±1) to like_count atomically.
func (r *PostRepository) AdjustLikeCount(ctx context.Context, id string, delta int64) error {
	_, err := r.col.UpdateByID(ctx, id, bson.M{
		"$inc": bson.M{"like_count": delta},
		"$set": bson.M{"updated_at": time.Now()},
	})
	return err
}

// AdjustCommentCount adds delta (±1) to comment_count atomically.
func (r *PostRepository) AdjustCommentCount(ctx context.Context, id string, delta int64) error {
	_, err := r.col.UpdateByID(ctx, id, bson.M{
		"$inc": bson.M{"comment_count": delta},
		"$set": bson.M{"updated_at": time.Now()},
	})
	return err
}

// Counts returns total/published/draft document counts.
func (r *PostRepository) Counts(ctx context.Context) (total, published, drafts int64, err error) {
	total, err = r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, 0, 0, err
	}
	published, err = r.col.CountDocuments(ctx, bson.M{"status": models.StatusPublished})
	if err != nil {
		return 0, 0, 0, err
	}
	drafts, err = r.col.CountDocuments(ctx, bson.M{"status": models.StatusDraft})
	if err != nil {
		return 0, 0, 0, err
	}
	return total, published, drafts, nil
}
