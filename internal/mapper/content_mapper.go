package mapper

import (
	"typing-training-be/internal/dto"
	"typing-training-be/internal/entity"
)

type ContentMapper struct{}

func NewContentMapper() *ContentMapper {
	return &ContentMapper{}
}

func (m *ContentMapper) ToResponse(c *entity.Content) *dto.ContentResponse {
	if c == nil {
		return nil
	}
	return &dto.ContentResponse{
		Id:           c.ID.Hex(),
		Title:        c.Title,
		Section:      c.Section,
		Sender:       c.Sender,
		TopicTag:     c.TopicTag,
		Difficulty:   c.Difficulty,
		TimeEstimate: c.TimeEstimate,
		Words:        c.Words,
		Text:         c.Text,
		Context:      c.Context,
	}
}

func (m *ContentMapper) ToResponses(contents []*entity.Content) []*dto.ContentResponse {
	result := make([]*dto.ContentResponse, 0, len(contents))
	for _, c := range contents {
		result = append(result, m.ToResponse(c))
	}
	return result
}
