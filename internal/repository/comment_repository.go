package repository

import (
	"context"
	"errors"

	"yamdb-backend/internal/database"
	"yamdb-backend/internal/models"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	Update(ctx context.Context, comment *models.Comment, columns []string) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, reviewID, id uint) (*models.Comment, error)
	FindAll(ctx context.Context, reviewID uint, page Page) ([]models.Comment, int64, error)
}

type commentRepository struct {
	base
	db *database.Database
}

func NewCommentRepository(db *database.Database) CommentRepository {
	return &commentRepository{
		base: base{timeout: db.GetQueryTimeout()},
		db:   db,
	}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Omit("Review", "Author").Create(comment).Error
}

func (r *commentRepository) Update(ctx context.Context, comment *models.Comment, columns []string) error {
	if len(columns) == 0 {
		return nil
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Model(comment).Select(columns).Omit("pub_date", "review_id", "author_id").Updates(comment).Error
}

func (r *commentRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Delete(&models.Comment{}, id).Error
}

func (r *commentRepository) FindByID(ctx context.Context, reviewID, id uint) (*models.Comment, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var comment models.Comment
	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("id = ? AND review_id = ?", id, reviewID).
		First(&comment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) FindAll(ctx context.Context, reviewID uint, page Page) ([]models.Comment, int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var comments []models.Comment
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Comment{}).Where("review_id = ?", reviewID)
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Author").
		Order("pub_date ASC, id ASC").
		Offset(page.Offset()).
		Limit(page.Size).
		Find(&comments).Error
	return comments, total, err
}
