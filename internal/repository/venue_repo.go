package repository

import (
	"context"

	"github.com/Eursukkul/humorshub/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VenueRepository interface {
	Ensure(ctx context.Context, venue *models.Venue) error
	FindByID(ctx context.Context, id uint) (*models.Venue, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Venue, error)
}

type venueRepository struct {
	db *gorm.DB
}

func NewVenueRepository(db *gorm.DB) VenueRepository {
	return &venueRepository{db: db}
}

// Ensure inserts the venue or refreshes its name and capacity from config.
func (r *venueRepository) Ensure(ctx context.Context, venue *models.Venue) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "capacity", "updated_at"}),
	}).Create(venue).Error
}

func (r *venueRepository) FindByID(ctx context.Context, id uint) (*models.Venue, error) {
	var venue models.Venue
	if err := r.db.WithContext(ctx).First(&venue, id).Error; err != nil {
		return nil, err
	}
	return &venue, nil
}

// FindByIDForUpdate acquires a row-level lock on the venue within the given transaction.
func (r *venueRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Venue, error) {
	var venue models.Venue
	if err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&venue, id).Error; err != nil {
		return nil, err
	}
	return &venue, nil
}
