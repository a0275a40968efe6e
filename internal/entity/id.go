package entity

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"typing-training-be/internal/pkg/apperr"
)

// ParseID converts an externally supplied identifier string into a native
// ObjectID. A structurally invalid string is a validation failure, distinct
// from a well-formed id that matches nothing.
func ParseID(raw string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, apperr.Validation(fmt.Sprintf("invalid identifier %q", raw))
	}
	return id, nil
}
