package repository

import (
	"context"

	"github.com/Eursukkul/humorshub/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	FindComedians(ctx context.Context, status *models.Status) ([]models.User, error)
	UpsertComedian(ctx context.Context, user *models.User) (*models.User, error)
	UpdateProfile(ctx context.Context, id uint, username, phone, bio string) error
	UpdateComedianStatusIfPending(ctx context.Context, id uint, status models.Status) (bool, error)
	UpdateRole(ctx context.Context, id uint, role models.Role) error
	UpdatePassword(ctx context.Context, id uint, hash string) error
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindAll(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) FindComedians(ctx context.Context, status *models.Status) ([]models.User, error) {
	var users []models.User
	q := r.db.WithContext(ctx).Where("is_comedian = ?", true)
	if status != nil {
		q = q.Where("comedian_status = ?", *status)
	}
	if err := q.Order("created_at DESC, id DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// UpsertComedian inserts the user or, when the email already exists, replaces
// only the comedian columns. Account fields of an existing user are kept.
func (r *userRepository) UpsertComedian(ctx context.Context, user *models.User) (*models.User, error) {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"is_comedian",
			"comedian_type",
			"comedian_speciality",
			"comedian_experience",
			"comedian_bio",
			"comedian_video_url",
			"comedian_status",
			"updated_at",
		}),
	}).Create(user).Error
	if err != nil {
		return nil, err
	}
	return r.FindByEmail(ctx, user.Email)
}

func (r *userRepository) UpdateProfile(ctx context.Context, id uint, username, phone, bio string) error {
	res := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Updates(map[string]any{"username": username, "phone": phone, "bio": bio})
	return rowsOrNotFound(res)
}

func (r *userRepository) UpdateComedianStatusIfPending(ctx context.Context, id uint, status models.Status) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ? AND is_comedian = ? AND comedian_status = ?", id, true, models.StatusPending).
		Update("comedian_status", status)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *userRepository) UpdateRole(ctx context.Context, id uint, role models.Role) error {
	res := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Update("role", role)
	return rowsOrNotFound(res)
}

func (r *userRepository) UpdatePassword(ctx context.Context, id uint, hash string) error {
	res := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Update("password_hash", hash)
	return rowsOrNotFound(res)
}

func (r *userRepository) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	conn := r.db
	if tx != nil {
		conn = tx
	}
	return rowsOrNotFound(conn.WithContext(ctx).Delete(&models.User{}, id))
}

func rowsOrNotFound(res *gorm.DB) error {
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
