package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Eursukkul/humorshub/internal/models"
	"github.com/Eursukkul/humorshub/internal/repository"
	"gorm.io/gorm"
)

type UpdateProfileInput struct {
	Username string
	Phone    string
	Bio      string
}

// UserService serves the caller's own profile.
type UserService interface {
	GetProfile(ctx context.Context, id Identity) (*models.User, error)
	UpdateProfile(ctx context.Context, id Identity, in UpdateProfileInput) (*models.User, error)
}

type userService struct {
	hooks
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository, opts ...Option) UserService {
	return &userService{
		hooks:    newHooks("profile", opts),
		userRepo: userRepo,
	}
}

func (s *userService) GetProfile(ctx context.Context, id Identity) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, storeError("find user", err)
	}
	return user, nil
}

func (s *userService) UpdateProfile(ctx context.Context, id Identity, in UpdateProfileInput) (*models.User, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" {
		return nil, validationErrorf("username is required")
	}

	err := s.userRepo.UpdateProfile(ctx, id.UserID, username, strings.TrimSpace(in.Phone), strings.TrimSpace(in.Bio))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, storeError("update profile", err)
	}
	return s.GetProfile(ctx, id)
}
