package service

import (
	"context"

	"typing-training-be/internal/constant"
	"typing-training-be/internal/dto"
	"typing-training-be/internal/entity"
	"typing-training-be/internal/mapper"
	"typing-training-be/internal/pkg/apperr"
	"typing-training-be/internal/repository/contract"
)

type IUserService interface {
	GetProfile(ctx context.Context) (*dto.ProfileResponse, error)
}

type userService struct {
	repo   contract.UserRepository
	mapper *mapper.UserMapper
}

func NewUserService(repo contract.UserRepository) IUserService {
	return &userService{
		repo:   repo,
		mapper: mapper.NewUserMapper(),
	}
}

// GetProfile returns the anonymous user, or a synthesized default when no
// record exists yet. The default is never persisted.
func (c *userService) GetProfile(ctx context.Context) (*dto.ProfileResponse, error) {
	if c.repo == nil {
		return nil, apperr.Configuration("Database not configured")
	}

	user, err := c.repo.FindByHandle(ctx, constant.AnonHandle)
	if err != nil {
		return nil, err
	}
	if user == nil {
		user = &entity.User{
			Handle: constant.AnonHandle,
			Rank:   entity.RankInitiate,
		}
	}
	return c.mapper.ToProfileResponse(user), nil
}
