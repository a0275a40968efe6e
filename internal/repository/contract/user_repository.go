package contract

import (
	"context"

	"typing-training-be/internal/entity"
)

type UserRepository interface {
	FindByHandle(ctx context.Context, handle string) (*entity.User, error) // nil, nil when no document matches
	// IncrementXP credits xp to the user as a single atomic upsert: the
	// increment and the insert-defaults must not conflict under concurrent
	// session completions.
	IncrementXP(ctx context.Context, handle string, delta int) error
}
