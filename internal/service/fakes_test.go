package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"typing-training-be/internal/entity"
)

// In-memory stand-ins for the mongo repositories, preserving the contract
// semantics the services rely on: nil-without-error on missing documents and
// upsert behavior for the xp increment.

type fakeContentRepo struct {
	docs  map[primitive.ObjectID]*entity.Content
	order []primitive.ObjectID
}

func newFakeContentRepo() *fakeContentRepo {
	return &fakeContentRepo{docs: make(map[primitive.ObjectID]*entity.Content)}
}

func (r *fakeContentRepo) Create(_ context.Context, content *entity.Content) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	stored := *content
	stored.ID = id
	r.docs[id] = &stored
	r.order = append(r.order, id)
	return id, nil
}

func (r *fakeContentRepo) FindAll(_ context.Context, limit int64) ([]*entity.Content, error) {
	result := make([]*entity.Content, 0)
	for _, id := range r.order {
		if int64(len(result)) >= limit {
			break
		}
		result = append(result, r.docs[id])
	}
	return result, nil
}

func (r *fakeContentRepo) FindByID(_ context.Context, id primitive.ObjectID) (*entity.Content, error) {
	return r.docs[id], nil
}

func (r *fakeContentRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.docs)), nil
}

type fakeSessionRepo struct {
	sessions []*entity.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{}
}

func (r *fakeSessionRepo) Create(_ context.Context, session *entity.Session) (primitive.ObjectID, error) {
	id := primitive.NewObjectID()
	stored := *session
	stored.ID = id
	r.sessions = append(r.sessions, &stored)
	return id, nil
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) FindByHandle(_ context.Context, handle string) (*entity.User, error) {
	return r.users[handle], nil
}

func (r *fakeUserRepo) IncrementXP(_ context.Context, handle string, delta int) error {
	if existing, ok := r.users[handle]; ok {
		existing.XP += delta
		return nil
	}
	r.users[handle] = &entity.User{
		ID:     primitive.NewObjectID(),
		Handle: handle,
		Rank:   entity.RankInitiate,
		XP:     delta,
		Streak: 0,
	}
	return nil
}
