package service

import (
	"context"

	"typing-training-be/internal/constant"
	"typing-training-be/internal/dto"
	"typing-training-be/internal/entity"
	"typing-training-be/internal/mapper"
	"typing-training-be/internal/pkg/apperr"
	"typing-training-be/internal/pkg/logger"
	"typing-training-be/internal/repository/contract"
)

type IContentService interface {
	Seed(ctx context.Context) (*dto.SeedResponse, error)
	GetAll(ctx context.Context, limit int64) ([]*dto.ContentResponse, error)
	Show(ctx context.Context, id string) (*dto.ContentResponse, error)
}

type contentService struct {
	repo   contract.ContentRepository
	mapper *mapper.ContentMapper
	logger logger.ILogger
}

func NewContentService(repo contract.ContentRepository, sysLogger logger.ILogger) IContentService {
	return &contentService{
		repo:   repo,
		mapper: mapper.NewContentMapper(),
		logger: sysLogger,
	}
}

// Seed inserts the built-in passages when the collection is empty. Idempotent:
// a non-empty collection reports seeded=false and writes nothing.
func (c *contentService) Seed(ctx context.Context) (*dto.SeedResponse, error) {
	if c.repo == nil {
		return nil, apperr.Configuration("Database not configured")
	}

	existing, err := c.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if existing > 0 {
		return &dto.SeedResponse{Seeded: false, Message: "Content already exists"}, nil
	}

	for i := range constant.SeedContent {
		item := constant.SeedContent[i]
		if err := item.Validate(); err != nil {
			return nil, err
		}
		if _, err := c.repo.Create(ctx, &item); err != nil {
			return nil, err
		}
	}

	c.logger.Info("content", "Seeded curated content", map[string]interface{}{
		"count": len(constant.SeedContent),
	})
	return &dto.SeedResponse{Seeded: true, Count: len(constant.SeedContent)}, nil
}

func (c *contentService) GetAll(ctx context.Context, limit int64) ([]*dto.ContentResponse, error) {
	if c.repo == nil {
		return nil, apperr.Configuration("Database not configured")
	}

	contents, err := c.repo.FindAll(ctx, limit)
	if err != nil {
		return nil, err
	}
	return c.mapper.ToResponses(contents), nil
}

func (c *contentService) Show(ctx context.Context, id string) (*dto.ContentResponse, error) {
	if c.repo == nil {
		return nil, apperr.Configuration("Database not configured")
	}

	oid, err := entity.ParseID(id)
	if err != nil {
		return nil, apperr.Validation("Invalid content id")
	}

	content, err := c.repo.FindByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, apperr.NotFound("Content not found")
	}
	return c.mapper.ToResponse(content), nil
}
