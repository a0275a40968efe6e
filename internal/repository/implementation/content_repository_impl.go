package implementation

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"typing-training-be/internal/constant"
	"typing-training-be/internal/entity"
	"typing-training-be/internal/repository/contract"
)

type ContentRepositoryImpl struct {
	coll *mongo.Collection
}

func NewContentRepository(db *mongo.Database) contract.ContentRepository {
	return &ContentRepositoryImpl{coll: db.Collection(constant.CollectionContent)}
}

func (r *ContentRepositoryImpl) Create(ctx context.Context, content *entity.Content) (primitive.ObjectID, error) {
	res, err := r.coll.InsertOne(ctx, content)
	if err != nil {
		return primitive.NilObjectID, err
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id, nil
}

func (r *ContentRepositoryImpl) FindAll(ctx context.Context, limit int64) ([]*entity.Content, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	contents := make([]*entity.Content, 0)
	if err := cursor.All(ctx, &contents); err != nil {
		return nil, err
	}
	return contents, nil
}

func (r *ContentRepositoryImpl) FindByID(ctx context.Context, id primitive.ObjectID) (*entity.Content, error) {
	var content entity.Content
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&content); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &content, nil
}

func (r *ContentRepositoryImpl) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}
