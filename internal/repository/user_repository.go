package repository

import (
	"context"
	"errors"

	"yamdb-backend/internal/database"
	"yamdb-backend/internal/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User, columns []string) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	FindByUsernameAndEmail(ctx context.Context, username, email string) (*models.User, error)
	FindAll(ctx context.Context, search string, page Page) ([]models.User, int64, error)
	// UsernameTaken and EmailTaken ignore the row with id exceptID.
	UsernameTaken(ctx context.Context, username string, exceptID uint) (bool, error)
	EmailTaken(ctx context.Context, email string, exceptID uint) (bool, error)
}

type userRepository struct {
	base
	db *database.Database
}

func NewUserRepository(db *database.Database) UserRepository {
	return &userRepository{
		base: base{timeout: db.GetQueryTimeout()},
		db:   db,
	}
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return translate(r.db.WithContext(ctx).Create(user).Error)
}

func (r *userRepository) Update(ctx context.Context, user *models.User, columns []string) error {
	if len(columns) == 0 {
		return nil
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return translate(r.db.WithContext(ctx).Model(user).Select(columns).Updates(user).Error)
}

// Delete removes the user and everything they authored, including comments
// left by others under their reviews.
func (r *userRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		reviewIDs := tx.Model(&models.Review{}).Select("id").Where("author_id = ?", id)
		if err := tx.Where("author_id = ? OR review_id IN (?)", id, reviewIDs).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("author_id = ?", id).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, id).Error
	})
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return r.findOne(ctx, "username = ?", username)
}

func (r *userRepository) FindByUsernameAndEmail(ctx context.Context, username, email string) (*models.User, error) {
	return r.findOne(ctx, "username = ? AND email = ?", username, email)
}

func (r *userRepository) findOne(ctx context.Context, query string, args ...interface{}) (*models.User, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var user models.User
	err := r.db.WithContext(ctx).Where(query, args...).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindAll(ctx context.Context, search string, page Page) ([]models.User, int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var users []models.User
	var total int64

	query := r.db.WithContext(ctx).Model(&models.User{})
	if search != "" {
		query = query.Where("LOWER(username) LIKE ?", containsPattern(search))
	}

	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("id ASC").Offset(page.Offset()).Limit(page.Size).Find(&users).Error
	return users, total, err
}

func (r *userRepository) UsernameTaken(ctx context.Context, username string, exceptID uint) (bool, error) {
	return r.exists(ctx, "username = ? AND id <> ?", username, exceptID)
}

func (r *userRepository) EmailTaken(ctx context.Context, email string, exceptID uint) (bool, error) {
	return r.exists(ctx, "email = ? AND id <> ?", email, exceptID)
}

func (r *userRepository) exists(ctx context.Context, query string, args ...interface{}) (bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Where(query, args...).Count(&count).Error
	return count > 0, err
}
