package service

import (
	"context"

	"typing-training-be/internal/constant"
	"typing-training-be/internal/dto"
	"typing-training-be/internal/entity"
	"typing-training-be/internal/pkg/apperr"
	"typing-training-be/internal/pkg/logger"
	"typing-training-be/internal/repository/contract"
)

type ISessionService interface {
	Complete(ctx context.Context, req *dto.CompleteSessionRequest) (*dto.CompleteSessionResponse, error)
}

type sessionService struct {
	contentRepo contract.ContentRepository
	sessionRepo contract.SessionRepository
	userRepo    contract.UserRepository
	logger      logger.ILogger
}

func NewSessionService(
	contentRepo contract.ContentRepository,
	sessionRepo contract.SessionRepository,
	userRepo contract.UserRepository,
	sysLogger logger.ILogger,
) ISessionService {
	return &sessionService{
		contentRepo: contentRepo,
		sessionRepo: sessionRepo,
		userRepo:    userRepo,
		logger:      sysLogger,
	}
}

// Complete records a finished typing exercise and credits its word count to
// the anonymous user. The session insert and the xp upsert are two
// independent store writes: a failed upsert leaves the session recorded
// without the xp credit, and the caller sees the failure.
func (c *sessionService) Complete(ctx context.Context, req *dto.CompleteSessionRequest) (*dto.CompleteSessionResponse, error) {
	if c.contentRepo == nil || c.sessionRepo == nil || c.userRepo == nil {
		return nil, apperr.Configuration("Database not configured")
	}

	contentId, err := entity.ParseID(req.ContentId)
	if err != nil {
		return nil, apperr.Validation("Invalid content id")
	}

	content, err := c.contentRepo.FindByID(ctx, contentId)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, apperr.NotFound("Content not found")
	}

	session := entity.Session{
		ContentID:   req.ContentId,
		WordsTyped:  req.WordsTyped,
		DurationSec: req.DurationSec,
		Reflection:  req.Reflection,
	}
	if err := session.Validate(); err != nil {
		return nil, err
	}

	sessionId, err := c.sessionRepo.Create(ctx, &session)
	if err != nil {
		return nil, err
	}

	if err := c.userRepo.IncrementXP(ctx, constant.AnonHandle, req.WordsTyped); err != nil {
		return nil, err
	}

	c.logger.Info("session", "Session completed", map[string]interface{}{
		"session_id":  sessionId.Hex(),
		"content_id":  req.ContentId,
		"words_typed": req.WordsTyped,
	})
	return &dto.CompleteSessionResponse{SessionId: sessionId.Hex(), Ok: true}, nil
}
