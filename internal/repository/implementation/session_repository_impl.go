package implementation

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"typing-training-be/internal/constant"
	"typing-training-be/internal/entity"
	"typing-training-be/internal/repository/contract"
)

type SessionRepositoryImpl struct {
	coll *mongo.Collection
}

func NewSessionRepository(db *mongo.Database) contract.SessionRepository {
	return &SessionRepositoryImpl{coll: db.Collection(constant.CollectionSession)}
}

func (r *SessionRepositoryImpl) Create(ctx context.Context, session *entity.Session) (primitive.ObjectID, error) {
	res, err := r.coll.InsertOne(ctx, session)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}
