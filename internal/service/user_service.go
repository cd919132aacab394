package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sonyahq/sleep-coach/internal/domain"
	"github.com/sonyahq/sleep-coach/internal/repository"
)

type UserService interface {
	Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Create(ctx context.Context, req *domain.CreateUserRequest) (*domain.User, error) {
	user := &domain.User{
		ID:               uuid.New(),
		Username:         req.Username,
		Age:              req.Age,
		Gender:           req.Gender,
		Lifestyle:        req.Lifestyle,
		Timezone:         "UTC",
		NotificationTime: "08:00",
		LastActiveAt:     time.Now().UTC(),
	}
	if req.Timezone != nil && *req.Timezone != "" {
		user.Timezone = *req.Timezone
	}
	if req.NotificationTime != nil && *req.NotificationTime != "" {
		user.NotificationTime = *req.NotificationTime
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}
