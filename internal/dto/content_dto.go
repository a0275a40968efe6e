package dto

// ContentResponse is the wire shape of a content document. The internal
// identifier is exposed as the string field `id`.
type ContentResponse struct {
	Id           string `json:"id"`
	Title        string `json:"title"`
	Section      string `json:"section"`
	Sender       string `json:"sender"`
	TopicTag     string `json:"topic_tag"`
	Difficulty   string `json:"difficulty"`
	TimeEstimate string `json:"time_estimate"`
	Words        int    `json:"words"`
	Text         string `json:"text"`
	Context      string `json:"context"`
}

type SeedResponse struct {
	Seeded  bool   `json:"seeded"`
	Count   int    `json:"count,omitempty"`
	Message string `json:"message,omitempty"`
}
