package repository

import (
	"context"
	"errors"

	"yamdb-backend/internal/database"
	"yamdb-backend/internal/models"

	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *models.Review) error
	Update(ctx context.Context, review *models.Review, columns []string) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, titleID, id uint) (*models.Review, error)
	FindAll(ctx context.Context, titleID uint, page Page) ([]models.Review, int64, error)
	ExistsByAuthor(ctx context.Context, titleID, authorID uint) (bool, error)
}

type reviewRepository struct {
	base
	db *database.Database
}

func NewReviewRepository(db *database.Database) ReviewRepository {
	return &reviewRepository{
		base: base{timeout: db.GetQueryTimeout()},
		db:   db,
	}
}

func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return translate(r.db.WithContext(ctx).Omit("Title", "Author").Create(review).Error)
}

// Update never touches pub_date or the ownership columns.
func (r *reviewRepository) Update(ctx context.Context, review *models.Review, columns []string) error {
	if len(columns) == 0 {
		return nil
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return translate(r.db.WithContext(ctx).Model(review).Select(columns).Omit("pub_date", "title_id", "author_id").Updates(review).Error)
}

func (r *reviewRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("review_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Review{}, id).Error
	})
}

func (r *reviewRepository) FindByID(ctx context.Context, titleID, id uint) (*models.Review, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var review models.Review
	err := r.db.WithContext(ctx).
		Preload("Author").Preload("Title").
		Where("id = ? AND title_id = ?", id, titleID).
		First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) FindAll(ctx context.Context, titleID uint, page Page) ([]models.Review, int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var reviews []models.Review
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Review{}).Where("title_id = ?", titleID)
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Author").Preload("Title").
		Order("pub_date ASC, id ASC").
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&reviews).Error
	return reviews, total, err
}

func (r *reviewRepository) ExistsByAuthor(ctx context.Context, titleID, authorID uint) (bool, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var count int64
	err := r.db.WithContext(ctx).Model(&models.Review{}).
		Where("title_id = ? AND author_id = ?", titleID, authorID).
		Count(&count).Error
	return count > 0, err
}
