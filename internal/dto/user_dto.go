package dto

// ProfileResponse always carries a rank recomputed from xp; the stored rank
// field is ignored. Id is empty for the synthesized default profile.
type ProfileResponse struct {
	Id     string `json:"id,omitempty"`
	Handle string `json:"handle"`
	Rank   string `json:"rank"`
	XP     int    `json:"xp"`
	Streak int    `json:"streak"`
}
