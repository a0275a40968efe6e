package dto

type CompleteSessionRequest struct {
	ContentId   string `json:"content_id" validate:"required"`
	WordsTyped  int    `json:"words_typed" validate:"gte=0"`
	DurationSec int    `json:"duration_sec" validate:"gte=0"`
	Reflection  string `json:"reflection"`
}

type CompleteSessionResponse struct {
	SessionId string `json:"session_id"`
	Ok        bool   `json:"ok"`
}
