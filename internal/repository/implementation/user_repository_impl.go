package implementation

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"typing-training-be/internal/constant"
	"typing-training-be/internal/entity"
	"typing-training-be/internal/repository/contract"
)

type UserRepositoryImpl struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) contract.UserRepository {
	return &UserRepositoryImpl{coll: db.Collection(constant.CollectionUser)}
}

func (r *UserRepositoryImpl) FindByHandle(ctx context.Context, handle string) (*entity.User, error) {
	var user entity.User
	if err := r.coll.FindOne(ctx, bson.M{"handle": handle}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// IncrementXP is a single upsert so concurrent completions never lose an
// increment: $setOnInsert only fills the defaults when the document is
// created, $inc applies either way.
func (r *UserRepositoryImpl) IncrementXP(ctx context.Context, handle string, delta int) error {
	update := bson.M{
		"$inc":         bson.M{"xp": delta},
		"$setOnInsert": bson.M{"rank": entity.RankInitiate, "streak": 0},
	}
	_, err := r.coll.UpdateOne(ctx, bson.M{"handle": handle}, update, options.Update().SetUpsert(true))
	return err
}
