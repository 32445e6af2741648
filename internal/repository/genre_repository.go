package repository

import (
	"context"
	"errors"

	"yamdb-backend/internal/database"
	"yamdb-backend/internal/models"

	"gorm.io/gorm"
)

type GenreRepository interface {
	Create(ctx context.Context, genre *models.Genre) error
	FindBySlug(ctx context.Context, slug string) (*models.Genre, error)
	FindBySlugs(ctx context.Context, slugs []string) ([]models.Genre, error)
	FindAll(ctx context.Context, search string, page Page) ([]models.Genre, int64, error)
	Delete(ctx context.Context, genre *models.Genre) error
}

type genreRepository struct {
	base
	db *database.Database
}

func NewGenreRepository(db *database.Database) GenreRepository {
	return &genreRepository{
		base: base{timeout: db.GetQueryTimeout()},
		db:   db,
	}
}

func (r *genreRepository) Create(ctx context.Context, genre *models.Genre) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return translate(r.db.WithContext(ctx).Create(genre).Error)
}

func (r *genreRepository) FindBySlug(ctx context.Context, slug string) (*models.Genre, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var genre models.Genre
	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&genre).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &genre, nil
}

// FindBySlugs returns the genres that exist among slugs. Callers compare
// lengths to detect unknown slugs.
func (r *genreRepository) FindBySlugs(ctx context.Context, slugs []string) ([]models.Genre, error) {
	if len(slugs) == 0 {
		return []models.Genre{}, nil
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var genres []models.Genre
	err := r.db.WithContext(ctx).Where("slug IN ?", slugs).Order("name ASC").Find(&genres).Error
	return genres, err
}

func (r *genreRepository) FindAll(ctx context.Context, search string, page Page) ([]models.Genre, int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var genres []models.Genre
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Genre{})
	if search != "" {
		pattern := containsPattern(search)
		query = query.Where("LOWER(name) LIKE ? OR LOWER(slug) LIKE ?", pattern, pattern)
	}

	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("name ASC, id ASC").Offset(page.Offset()).Limit(page.Size).Find(&genres).Error
	return genres, total, err
}

func (r *genreRepository) Delete(ctx context.Context, genre *models.Genre) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM title_genres WHERE genre_id = ?", genre.ID).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Genre{}, genre.ID).Error
	})
}
