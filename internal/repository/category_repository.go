package repository

import (
	"context"
	"errors"

	"yamdb-backend/internal/database"
	"yamdb-backend/internal/models"

	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	FindBySlug(ctx context.Context, slug string) (*models.Category, error)
	FindAll(ctx context.Context, search string, page Page) ([]models.Category, int64, error)
	Delete(ctx context.Context, category *models.Category) error
}

type categoryRepository struct {
	base
	db *database.Database
}

func NewCategoryRepository(db *database.Database) CategoryRepository {
	return &categoryRepository{
		base: base{timeout: db.GetQueryTimeout()},
		db:   db,
	}
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return translate(r.db.WithContext(ctx).Create(category).Error)
}

func (r *categoryRepository) FindBySlug(ctx context.Context, slug string) (*models.Category, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var category models.Category
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) FindAll(ctx context.Context, search string, page Page) ([]models.Category, int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var categories []models.Category
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Category{})
	if search != "" {
		pattern := containsPattern(search)
		query = query.Where("LOWER(name) LIKE ? OR LOWER(slug) LIKE ?", pattern, pattern)
	}

	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("name ASC, id ASC").Offset(page.Offset()).Limit(page.Size).Find(&categories).Error
	return categories, total, err
}

// Delete removes the category and detaches its titles. The titles survive
// with no category.
func (r *categoryRepository) Delete(ctx context.Context, category *models.Category) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Title{}).
			Where("category_id = ?", category.ID).
			Update("category_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Category{}, category.ID).Error
	})
}
