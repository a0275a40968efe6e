package entity

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"typing-training-be/internal/pkg/apperr"
)

// Content is a curated passage to retype. Immutable after seeding.
type Content struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title        string             `bson:"title" json:"title"`
	Section      string             `bson:"section" json:"section"`
	Sender       string             `bson:"sender" json:"sender"`
	TopicTag     string             `bson:"topic_tag" json:"topic_tag"`
	Difficulty   string             `bson:"difficulty" json:"difficulty"`
	TimeEstimate string             `bson:"time_estimate" json:"time_estimate"`
	Words        int                `bson:"words" json:"words"`
	Text         string             `bson:"text" json:"text"`
	Context      string             `bson:"context" json:"context"` // priming blurb shown before typing
}

func (c *Content) Validate() error {
	switch {
	case c.Title == "":
		return apperr.Validation("title is required")
	case c.Section == "":
		return apperr.Validation("section is required")
	case c.Sender == "":
		return apperr.Validation("sender is required")
	case c.TopicTag == "":
		return apperr.Validation("topic_tag is required")
	case c.Difficulty == "":
		return apperr.Validation("difficulty is required")
	case c.TimeEstimate == "":
		return apperr.Validation("time_estimate is required")
	case c.Words < 1:
		return apperr.Validation("words must be at least 1")
	case c.Text == "":
		return apperr.Validation("text is required")
	case c.Context == "":
		return apperr.Validation("context is required")
	}
	return nil
}
