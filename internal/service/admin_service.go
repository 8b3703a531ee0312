package service

import (
	"context"
	"errors"

	"github.com/Eursukkul/humorshub/internal/models"
	"github.com/Eursukkul/humorshub/internal/repository"
	"gorm.io/gorm"
)

// AdminService backs the admin console. Lists are newest first and unpaginated.
type AdminService interface {
	ListBookings(ctx context.Context, id Identity, status *models.Status) ([]models.Booking, error)
	ListUsers(ctx context.Context, id Identity) ([]models.User, error)
	ListComedians(ctx context.Context, id Identity, status *models.Status) ([]models.User, error)
	DeleteUser(ctx context.Context, id Identity, userID uint) error
	SetUserRole(ctx context.Context, id Identity, userID uint, role models.Role) error
	ResetPassword(ctx context.Context, id Identity, userID uint, password string) error
}

type adminService struct {
	hooks
	bookingRepo repository.BookingRepository
	userRepo    repository.UserRepository
	tx          Transactor
	policy      DeletePolicy
}

func NewAdminService(bookingRepo repository.BookingRepository, userRepo repository.UserRepository, tx Transactor, policy DeletePolicy, opts ...Option) AdminService {
	return &adminService{
		hooks:       newHooks("admin", opts),
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		tx:          tx,
		policy:      policy,
	}
}

func (s *adminService) ListBookings(ctx context.Context, id Identity, status *models.Status) ([]models.Booking, error) {
	if !id.IsAdmin() {
		return nil, ErrAdminOnly
	}
	if status != nil && !status.Valid() {
		return nil, validationErrorf("unknown status %q", *status)
	}
	bookings, err := s.bookingRepo.FindAll(ctx, status)
	if err != nil {
		return nil, storeError("list bookings", err)
	}
	return bookings, nil
}

func (s *adminService) ListUsers(ctx context.Context, id Identity) ([]models.User, error) {
	if !id.IsAdmin() {
		return nil, ErrAdminOnly
	}
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, storeError("list users", err)
	}
	return users, nil
}

func (s *adminService) ListComedians(ctx context.Context, id Identity, status *models.Status) ([]models.User, error) {
	if !id.IsAdmin() {
		return nil, ErrAdminOnly
	}
	if status != nil && !status.Valid() {
		return nil, validationErrorf("unknown status %q", *status)
	}
	users, err := s.userRepo.FindComedians(ctx, status)
	if err != nil {
		return nil, storeError("list comedians", err)
	}
	return users, nil
}

func (s *adminService) DeleteUser(ctx context.Context, id Identity, userID uint) error {
	if !id.IsAdmin() {
		return ErrAdminOnly
	}
	user, err := s.findUser(ctx, userID)
	if err != nil {
		return err
	}
	if user.ID == id.UserID {
		return ErrSelfDelete
	}

	var removed int64
	err = s.tx.Transaction(ctx, func(tx *gorm.DB) error {
		switch s.policy {
		case DeleteForbidBookings:
			n, err := s.bookingRepo.CountByEmail(ctx, tx, user.Email)
			if err != nil {
				return storeError("count bookings", err)
			}
			if n > 0 {
				return ErrUserHasBookings
			}
		case DeleteCascadeBookings:
			n, err := s.bookingRepo.DeleteByEmail(ctx, tx, user.Email)
			if err != nil {
				return storeError("delete bookings", err)
			}
			removed = n
		}

		if err := s.userRepo.Delete(ctx, tx, user.ID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return storeError("delete user", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if removed > 0 {
		s.invalidateVenueStatus(ctx)
	}
	s.log.WithField("user_id", user.ID).
		WithField("policy", s.policy).
		WithField("bookings_removed", removed).
		Info("user deleted")
	return nil
}

func (s *adminService) SetUserRole(ctx context.Context, id Identity, userID uint, role models.Role) error {
	if !id.IsAdmin() {
		return ErrAdminOnly
	}
	if !role.Valid() {
		return validationErrorf("role must be %q or %q", models.RoleUser, models.RoleAdmin)
	}
	if err := s.userRepo.UpdateRole(ctx, userID, role); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return storeError("update role", err)
	}
	s.log.WithField("user_id", userID).WithField("role", role).Info("user role changed")
	return nil
}

func (s *adminService) ResetPassword(ctx context.Context, id Identity, userID uint, password string) error {
	if !id.IsAdmin() {
		return ErrAdminOnly
	}
	hash, err := hashPassword(password)
	if err != nil {
		return err
	}
	if err := s.userRepo.UpdatePassword(ctx, userID, hash); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return storeError("update password", err)
	}
	s.log.WithField("user_id", userID).Info("password reset by admin")
	return nil
}

func (s *adminService) findUser(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, storeError("find user", err)
	}
	return user, nil
}
