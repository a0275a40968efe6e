package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"typing-training-be/internal/pkg/apperr"
)

// Session is one completed typing exercise. Append-only, never updated.
type Session struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID      *string            `bson:"user_id,omitempty" json:"user_id,omitempty"` // always absent for the anonymous MVP
	ContentID   string             `bson:"content_id" json:"content_id"`
	WordsTyped  int                `bson:"words_typed" json:"words_typed"`
	DurationSec int                `bson:"duration_sec" json:"duration_sec"`
	Reflection  string             `bson:"reflection" json:"reflection"`
	CreatedAt   *time.Time         `bson:"created_at,omitempty" json:"created_at,omitempty"` // declared but not yet populated
}

func (s *Session) Validate() error {
	if s.ContentID == "" {
		return apperr.Validation("content_id is required")
	}
	if s.WordsTyped < 0 {
		return apperr.Validation("words_typed must not be negative")
	}
	if s.DurationSec < 0 {
		return apperr.Validation("duration_sec must not be negative")
	}
	return nil
}
