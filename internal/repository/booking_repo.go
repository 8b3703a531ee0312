package repository

import (
	"context"

	"github.com/Eursukkul/humorshub/internal/models"
	"gorm.io/gorm"
)

// BookingRepository methods that take a tx run on it when it is non-nil and
// on the repository's own connection otherwise.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	FindByID(ctx context.Context, id uint) (*models.Booking, error)
	FindByEmail(ctx context.Context, email string) ([]models.Booking, error)
	FindAll(ctx context.Context, status *models.Status) ([]models.Booking, error)
	SumApprovedSeats(ctx context.Context, tx *gorm.DB) (int64, error)
	UpdateStatusIfPending(ctx context.Context, tx *gorm.DB, id uint, status models.Status) (bool, error)
	DeleteIfPending(ctx context.Context, id uint) (bool, error)
	CountByEmail(ctx context.Context, tx *gorm.DB, email string) (int64, error)
	DeleteByEmail(ctx context.Context, tx *gorm.DB, email string) (int64, error)
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) conn(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return r.db
}

func (r *bookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) FindByID(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.WithContext(ctx).First(&booking, id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Where("user_email = ?", email).
		Order("created_at DESC, id DESC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) FindAll(ctx context.Context, status *models.Status) ([]models.Booking, error) {
	var bookings []models.Booking
	q := r.db.WithContext(ctx)
	if status != nil {
		q = q.Where("status = ?", *status)
	}
	if err := q.Order("created_at DESC, id DESC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// SumApprovedSeats counts a NULL ticket count as one seat.
func (r *bookingRepository) SumApprovedSeats(ctx context.Context, tx *gorm.DB) (int64, error) {
	var total int64
	err := r.conn(tx).WithContext(ctx).
		Model(&models.Booking{}).
		Where("status = ?", models.StatusApproved).
		Select("COALESCE(SUM(COALESCE(number_of_tickets, 1)), 0)").
		Scan(&total).Error
	return total, err
}

// UpdateStatusIfPending reports false when the booking is gone or no longer pending.
func (r *bookingRepository) UpdateStatusIfPending(ctx context.Context, tx *gorm.DB, id uint, status models.Status) (bool, error) {
	res := r.conn(tx).WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ? AND status = ?", id, models.StatusPending).
		Update("status", status)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *bookingRepository) DeleteIfPending(ctx context.Context, id uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, models.StatusPending).
		Delete(&models.Booking{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *bookingRepository) CountByEmail(ctx context.Context, tx *gorm.DB, email string) (int64, error) {
	var count int64
	err := r.conn(tx).WithContext(ctx).
		Model(&models.Booking{}).
		Where("user_email = ?", email).
		Count(&count).Error
	return count, err
}

func (r *bookingRepository) DeleteByEmail(ctx context.Context, tx *gorm.DB, email string) (int64, error) {
	res := r.conn(tx).WithContext(ctx).
		Where("user_email = ?", email).
		Delete(&models.Booking{})
	return res.RowsAffected, res.Error
}
