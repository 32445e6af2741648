package repository

import (
	"context"
	"errors"

	"yamdb-backend/internal/database"
	"yamdb-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TitleRepository interface {
	Create(ctx context.Context, title *models.Title) error
	// Update writes the named columns of title. When genres is non-nil the
	// genre set is replaced with it.
	Update(ctx context.Context, title *models.Title, columns []string, genres []models.Genre) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*models.Title, error)
	FindAll(ctx context.Context, filter models.TitleFilter, page Page) ([]models.Title, int64, error)
}

type titleRepository struct {
	base
	db *database.Database
}

func NewTitleRepository(db *database.Database) TitleRepository {
	return &titleRepository{
		base: base{timeout: db.GetQueryTimeout()},
		db:   db,
	}
}

func (r *titleRepository) Create(ctx context.Context, title *models.Title) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	// Category and genres already exist; only the join rows are written.
	return translate(r.db.WithContext(ctx).Omit("Category", "Genres.*").Create(title).Error)
}

func (r *titleRepository) Update(ctx context.Context, title *models.Title, columns []string, genres []models.Genre) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(columns) > 0 {
			if err := tx.Model(title).Select(columns).Omit(clause.Associations).Updates(title).Error; err != nil {
				return translate(err)
			}
		}
		if genres != nil {
			if err := tx.Model(title).Association("Genres").Replace(genres); err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes the title together with its reviews, their comments and the
// genre links.
func (r *titleRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		reviewIDs := tx.Model(&models.Review{}).Select("id").Where("title_id = ?", id)
		if err := tx.Where("review_id IN (?)", reviewIDs).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("title_id = ?", id).Delete(&models.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM title_genres WHERE title_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Title{}, id).Error
	})
}

func (r *titleRepository) FindByID(ctx context.Context, id uint) (*models.Title, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var title models.Title
	err := r.rated(r.db.WithContext(ctx)).Where("titles.id = ?", id).Take(&title).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &title, nil
}

func (r *titleRepository) FindAll(ctx context.Context, filter models.TitleFilter, page Page) ([]models.Title, int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var titles []models.Title
	var total int64

	db := r.db.WithContext(ctx)

	if err := applyTitleFilter(db.Model(&models.Title{}), filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := applyTitleFilter(r.rated(db), filter).
		Order("titles.id ASC").
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&titles).Error
	if err != nil {
		return nil, 0, err
	}

	return titles, total, nil
}

// rated selects titles with their mean review score. The rating is computed
// on every read and never stored.
func (r *titleRepository) rated(db *gorm.DB) *gorm.DB {
	return db.Model(&models.Title{}).
		Select("titles.*, CAST(AVG(reviews.score) AS FLOAT) AS rating").
		Joins("LEFT JOIN reviews ON reviews.title_id = titles.id").
		Group("titles.id").
		Preload("Category").
		Preload("Genres", func(db *gorm.DB) *gorm.DB {
			return db.Order("genres.name ASC")
		})
}

func applyTitleFilter(query *gorm.DB, filter models.TitleFilter) *gorm.DB {
	if filter.Name != "" {
		query = query.Where("LOWER(titles.name) LIKE ?", containsPattern(filter.Name))
	}
	if filter.Year != 0 {
		query = query.Where("titles.year = ?", filter.Year)
	}
	if filter.Category != "" {
		query = query.Where("titles.category_id IN (SELECT id FROM categories WHERE slug = ?)", filter.Category)
	}
	if filter.Genre != "" {
		query = query.Where(
			"titles.id IN (SELECT title_genres.title_id FROM title_genres "+
				"JOIN genres ON genres.id = title_genres.genre_id WHERE genres.slug = ?)",
			filter.Genre,
		)
	}
	return query
}
