package contract

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"typing-training-be/internal/entity"
)

type ContentRepository interface {
	Create(ctx context.Context, content *entity.Content) (primitive.ObjectID, error)
	FindAll(ctx context.Context, limit int64) ([]*entity.Content, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Content, error) // nil, nil when no document matches
	Count(ctx context.Context) (int64, error)
}
