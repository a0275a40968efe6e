package entity

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"typing-training-be/internal/pkg/apperr"
)

const (
	RankInitiate   = "Initiate"
	RankStrategist = "Strategist"
	RankCommander  = "Commander"
)

// XP thresholds for the rank tiers.
const (
	StrategistMinXP = 5000
	CommanderMinXP  = 20000
)

type User struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Handle string             `bson:"handle" json:"handle"`
	Rank   string             `bson:"rank" json:"rank"`
	XP     int                `bson:"xp" json:"xp"`
	Streak int                `bson:"streak" json:"streak"` // daily streak in days, not yet advanced by any operation
}

func (u *User) Validate() error {
	if u.Handle == "" {
		return apperr.Validation("handle is required")
	}
	if u.XP < 0 {
		return apperr.Validation("xp must not be negative")
	}
	if u.Streak < 0 {
		return apperr.Validation("streak must not be negative")
	}
	return nil
}

// RankForXP derives the rank title from accumulated XP. The stored rank is
// never authoritative; callers recompute on every read.
func RankForXP(xp int) string {
	switch {
	case xp >= CommanderMinXP:
		return RankCommander
	case xp >= StrategistMinXP:
		return RankStrategist
	default:
		return RankInitiate
	}
}
