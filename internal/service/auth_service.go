package service

import (
	"context"
	"errors"
	"net/mail"
	"strconv"
	"strings"
	"time"

	"github.com/Eursukkul/humorshub/internal/models"
	"github.com/Eursukkul/humorshub/internal/repository"
	"gorm.io/gorm"
)

type TokenIssuer interface {
	Issue(sub, role, email string) (string, time.Time, error)
}

// AdminEmails reports whether an email is configured as an admin identity.
type AdminEmails interface {
	Contains(email string) bool
}

type SignupInput struct {
	Username string
	Email    string
	Password string
	Phone    string
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	User      *models.User
	Role      models.Role
}

type AuthService interface {
	Signup(ctx context.Context, in SignupInput) (*models.User, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
}

type authService struct {
	hooks
	userRepo repository.UserRepository
	issuer   TokenIssuer
	admins   AdminEmails
}

func NewAuthService(userRepo repository.UserRepository, issuer TokenIssuer, admins AdminEmails, opts ...Option) AuthService {
	return &authService{
		hooks:    newHooks("auth", opts),
		userRepo: userRepo,
		issuer:   issuer,
		admins:   admins,
	}
}

func (s *authService) Signup(ctx context.Context, in SignupInput) (*models.User, error) {
	username := strings.TrimSpace(in.Username)
	email := normalizeEmail(in.Email)
	if username == "" || email == "" {
		return nil, validationErrorf("username and email are required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, validationErrorf("email is not a valid address")
	}

	_, err := s.userRepo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, ErrEmailTaken
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, storeError("find user", err)
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        email,
		Username:     username,
		PasswordHash: hash,
		Role:         models.RoleUser,
		Phone:        strings.TrimSpace(in.Phone),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, storeError("create user", err)
	}

	s.log.WithField("user_id", user.ID).Info("user signed up")
	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	email = normalizeEmail(email)
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, storeError("find user", err)
	}
	if err := checkPassword(user.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	role := user.Role
	if s.admins != nil && s.admins.Contains(user.Email) {
		role = models.RoleAdmin
	}

	token, expiresAt, err := s.issuer.Issue(strconv.FormatUint(uint64(user.ID), 10), string(role), user.Email)
	if err != nil {
		return nil, storeError("issue token", err)
	}
	return &LoginResult{Token: token, ExpiresAt: expiresAt, User: user, Role: role}, nil
}
