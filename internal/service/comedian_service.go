package service

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"github.com/Eursukkul/humorshub/internal/events"
	"github.com/Eursukkul/humorshub/internal/models"
	"github.com/Eursukkul/humorshub/internal/repository"
	"gorm.io/gorm"
)

// RegisterComedianInput has no status field: a new application is always pending.
type RegisterComedianInput struct {
	Username     string
	Phone        string
	ComedianType string
	Speciality   string
	Experience   string
	Bio          string
	VideoURL     string
}

type ComedianService interface {
	Register(ctx context.Context, id Identity, in RegisterComedianInput) (*models.User, error)
	UpdateStatus(ctx context.Context, id Identity, userID uint, status models.Status) (*models.User, error)
}

type comedianService struct {
	hooks
	userRepo repository.UserRepository
}

func NewComedianService(userRepo repository.UserRepository, opts ...Option) ComedianService {
	return &comedianService{
		hooks:    newHooks("comedian", opts),
		userRepo: userRepo,
	}
}

func (s *comedianService) Register(ctx context.Context, id Identity, in RegisterComedianInput) (*models.User, error) {
	email := normalizeEmail(id.Email)
	if email == "" {
		return nil, ErrNotAuthorized
	}

	profile := models.ComedianProfile{
		ComedianType: strings.TrimSpace(in.ComedianType),
		Speciality:   strings.TrimSpace(in.Speciality),
		Experience:   strings.TrimSpace(in.Experience),
		Bio:          strings.TrimSpace(in.Bio),
		VideoURL:     strings.TrimSpace(in.VideoURL),
		Status:       models.StatusPending,
	}
	if profile.ComedianType == "" || profile.Speciality == "" || profile.Experience == "" || profile.Bio == "" {
		return nil, validationErrorf("comedianType, speciality, experience and bio are required")
	}
	if profile.VideoURL != "" && !isHTTPURL(profile.VideoURL) {
		return nil, validationErrorf("videoUrl must be an http or https URL")
	}

	username := strings.TrimSpace(in.Username)
	if username == "" {
		username, _, _ = strings.Cut(email, "@")
	}

	user, err := s.userRepo.UpsertComedian(ctx, &models.User{
		Email:           email,
		Username:        username,
		Role:            models.RoleUser,
		Phone:           strings.TrimSpace(in.Phone),
		IsComedian:      true,
		ComedianProfile: profile,
	})
	if err != nil {
		return nil, storeError("register comedian", err)
	}

	s.log.WithField("user_id", user.ID).Info("comedian application submitted")
	return user, nil
}

func (s *comedianService) UpdateStatus(ctx context.Context, id Identity, userID uint, status models.Status) (*models.User, error) {
	if !id.IsAdmin() {
		return nil, ErrAdminOnly
	}
	if !status.IsReview() {
		return nil, validationErrorf("status must be %q or %q", models.StatusApproved, models.StatusDeclined)
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, storeError("find user", err)
	}
	if !user.IsComedian {
		return nil, ErrComedianNotFound
	}
	if user.ComedianProfile.Status != models.StatusPending {
		return nil, ErrApplicationNotPending
	}

	ok, err := s.userRepo.UpdateComedianStatusIfPending(ctx, userID, status)
	if err != nil {
		return nil, storeError("update comedian status", err)
	}
	if !ok {
		return nil, ErrApplicationNotPending
	}
	user.ComedianProfile.Status = status

	s.notify(ctx, events.StatusChanged{
		Subject:  events.SubjectComedian,
		Action:   string(status),
		RecordID: user.ID,
		Email:    user.Email,
		Name:     user.Username,
	})
	s.log.WithField("user_id", user.ID).WithField("status", status).Info("comedian application reviewed")
	return user, nil
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
