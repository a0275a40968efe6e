package contract

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"typing-training-be/internal/entity"
)

type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) (primitive.ObjectID, error)
}
