package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Eursukkul/humorshub/internal/events"
	"github.com/Eursukkul/humorshub/internal/models"
	"github.com/Eursukkul/humorshub/internal/repository"
	"gorm.io/gorm"
)

type CreateBookingInput struct {
	FullName        string
	Email           string
	Phone           string
	NumberOfTickets *int
}

type BookingService interface {
	CreateBooking(ctx context.Context, id Identity, in CreateBookingInput) (*models.Booking, error)
	VenueStatus(ctx context.Context) (models.VenueStatus, error)
	UpdateStatus(ctx context.Context, id Identity, bookingID uint, status models.Status) (*models.Booking, error)
	CancelBooking(ctx context.Context, id Identity, bookingID uint) (*models.Booking, error)
	ListForUser(ctx context.Context, id Identity, email string) ([]models.Booking, error)
}

type BookingConfig struct {
	VenueID  uint
	Capacity int
	Tickets  TicketPolicy
	// EnforceCapacity makes approval fail once the approved seats would
	// exceed Capacity. When false approvals are never capacity checked.
	EnforceCapacity bool
}

type bookingService struct {
	hooks
	bookingRepo repository.BookingRepository
	venueRepo   repository.VenueRepository
	tx          Transactor
	cfg         BookingConfig
}

func NewBookingService(bookingRepo repository.BookingRepository, venueRepo repository.VenueRepository, tx Transactor, cfg BookingConfig, opts ...Option) BookingService {
	return &bookingService{
		hooks:       newHooks("booking", opts),
		bookingRepo: bookingRepo,
		venueRepo:   venueRepo,
		tx:          tx,
		cfg:         cfg,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, id Identity, in CreateBookingInput) (*models.Booking, error) {
	fullName := strings.TrimSpace(in.FullName)
	email := normalizeEmail(in.Email)
	phone := strings.TrimSpace(in.Phone)
	if fullName == "" || email == "" || phone == "" {
		return nil, validationErrorf("fullName, email and phone are required")
	}
	if !id.Owns(email) {
		return nil, ErrIdentityMismatch
	}

	tickets, err := s.cfg.Tickets.Resolve(in.NumberOfTickets)
	if err != nil {
		return nil, err
	}

	booking := &models.Booking{
		UserEmail:       email,
		FullName:        fullName,
		Phone:           phone,
		NumberOfTickets: &tickets,
		Status:          models.StatusPending,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, storeError("create booking", err)
	}

	s.log.WithField("booking_id", booking.ID).WithField("tickets", tickets).Info("booking created")
	return booking, nil
}

func (s *bookingService) VenueStatus(ctx context.Context) (models.VenueStatus, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err != nil {
			s.log.WithError(err).Warn("read venue status cache")
		} else if cached != nil {
			return *cached, nil
		}
	}

	total, err := s.bookingRepo.SumApprovedSeats(ctx, nil)
	if err != nil {
		return models.VenueStatus{}, storeError("sum approved seats", err)
	}
	status := models.NewVenueStatus(int(total), s.cfg.Capacity)

	if s.cache != nil {
		if err := s.cache.Set(ctx, status); err != nil {
			s.log.WithError(err).Warn("write venue status cache")
		}
	}
	return status, nil
}

func (s *bookingService) UpdateStatus(ctx context.Context, id Identity, bookingID uint, status models.Status) (*models.Booking, error) {
	if !id.IsAdmin() {
		return nil, ErrAdminOnly
	}
	if !status.IsReview() {
		return nil, validationErrorf("status must be %q or %q", models.StatusApproved, models.StatusDeclined)
	}

	gated := status == models.StatusApproved && s.cfg.EnforceCapacity

	var result *models.Booking
	err := s.tx.Transaction(ctx, func(tx *gorm.DB) error {
		// Serializes gated approvals so two admins cannot both take the last seats.
		if gated {
			if _, err := s.venueRepo.FindByIDForUpdate(ctx, tx, s.cfg.VenueID); err != nil {
				return storeError("lock venue", err)
			}
		}

		booking, err := s.findBooking(ctx, bookingID)
		if err != nil {
			return err
		}
		if booking.Status != models.StatusPending {
			return ErrBookingNotPending
		}

		if gated {
			approved, err := s.bookingRepo.SumApprovedSeats(ctx, tx)
			if err != nil {
				return storeError("sum approved seats", err)
			}
			if int(approved)+booking.Seats() > s.cfg.Capacity {
				return ErrVenueFull
			}
		}

		ok, err := s.bookingRepo.UpdateStatusIfPending(ctx, tx, bookingID, status)
		if err != nil {
			return storeError("update booking status", err)
		}
		if !ok {
			return ErrBookingNotPending
		}

		booking.Status = status
		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	if status == models.StatusApproved {
		s.invalidateVenueStatus(ctx)
	}
	s.notify(ctx, events.StatusChanged{
		Subject:  events.SubjectBooking,
		Action:   string(status),
		RecordID: result.ID,
		Email:    result.UserEmail,
		Name:     result.FullName,
		Tickets:  result.Seats(),
	})
	s.log.WithField("booking_id", result.ID).WithField("status", status).Info("booking reviewed")
	return result, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, id Identity, bookingID uint) (*models.Booking, error) {
	booking, err := s.findBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if !id.IsAdmin() && !id.Owns(booking.UserEmail) {
		return nil, ErrNotOwner
	}
	if booking.Status != models.StatusPending {
		return nil, ErrBookingNotPending
	}

	ok, err := s.bookingRepo.DeleteIfPending(ctx, bookingID)
	if err != nil {
		return nil, storeError("delete booking", err)
	}
	if !ok {
		return nil, ErrBookingNotPending
	}

	s.notify(ctx, events.StatusChanged{
		Subject:  events.SubjectBooking,
		Action:   events.ActionCancelled,
		RecordID: booking.ID,
		Email:    booking.UserEmail,
		Name:     booking.FullName,
		Tickets:  booking.Seats(),
	})
	s.log.WithField("booking_id", booking.ID).Info("booking cancelled")
	return booking, nil
}

func (s *bookingService) ListForUser(ctx context.Context, id Identity, email string) ([]models.Booking, error) {
	email = normalizeEmail(email)
	if email == "" {
		email = normalizeEmail(id.Email)
	}
	if !id.IsAdmin() && !id.Owns(email) {
		return nil, ErrIdentityMismatch
	}

	bookings, err := s.bookingRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, storeError("list bookings", err)
	}
	return bookings, nil
}

func (s *bookingService) findBooking(ctx context.Context, id uint) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, storeError("find booking", err)
	}
	return booking, nil
}
