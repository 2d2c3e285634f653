package repositories

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"studyblog/models"
)

// AILogRepository persists per-call AI usage records.
type AILogRepository struct {
	col *mongo.Collection
}

func NewAILogRepository(db *mongo.Database) *AILogRepository {
	return &AILogRepository{col: db.Collection("ai_logs")}
}

// Record inserts one AI call log document.
func (r *AILogRepository) Record(ctx context.Context, log models.AILog) error {
	_, err := r.col.InsertOne(ctx, log)
	return err
}
