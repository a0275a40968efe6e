package mapper

import (
	"typing-training-be/internal/dto"
	"typing-training-be/internal/entity"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

// ToProfileResponse maps a user document to the wire profile. The rank is
// recomputed from xp regardless of what was stored, and the id field is only
// set when the document actually carries one (the synthesized default has
// none).
func (m *UserMapper) ToProfileResponse(u *entity.User) *dto.ProfileResponse {
	if u == nil {
		return nil
	}
	res := &dto.ProfileResponse{
		Handle: u.Handle,
		Rank:   entity.RankForXP(u.XP),
		XP:     u.XP,
		Streak: u.Streak,
	}
	if !u.ID.IsZero() {
		res.Id = u.ID.Hex()
	}
	return res
}
