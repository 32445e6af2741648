package services

import (
	"context"
	"errors"
	"fmt"

	"yamdb-backend/internal/errs"
	"yamdb-backend/internal/models"
	"yamdb-backend/internal/repository"
	"yamdb-backend/internal/validation"

	"github.com/sirupsen/logrus"
)

const (
	MsgCategorySlugTaken = "category with this slug already exists."
	MsgGenreSlugTaken    = "genre with this slug already exists."
)

// SlugInput creates a category or a genre.
type SlugInput struct {
	Name string `json:"name" validate:"required,max=256"`
	Slug string `json:"slug" validate:"required,max=50,slug"`
}

type CategoryService interface {
	List(ctx context.Context, search string, page repository.Page) ([]models.Category, int64, error)
	Create(ctx context.Context, in SlugInput) (*models.Category, error)
	Delete(ctx context.Context, slug string) error
}

type categoryService struct {
	repo   repository.CategoryRepository
	logger *logrus.Logger
}

func NewCategoryService(repo repository.CategoryRepository, logger *logrus.Logger) CategoryService {
	return &categoryService{repo: repo, logger: logger}
}

func (s *categoryService) List(ctx context.Context, search string, page repository.Page) ([]models.Category, int64, error) {
	return s.repo.FindAll(ctx, search, page)
}

func (s *categoryService) Create(ctx context.Context, in SlugInput) (*models.Category, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindBySlug(ctx, in.Slug)
	if err != nil {
		return nil, fmt.Errorf("failed to check category slug: %w", err)
	}
	if existing != nil {
		return nil, errs.Invalid("slug", MsgCategorySlugTaken)
	}

	category := &models.Category{Name: in.Name, Slug: in.Slug}
	if err := s.repo.Create(ctx, category); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, errs.Invalid("slug", MsgCategorySlugTaken)
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	s.logger.WithField("slug", category.Slug).Info("Category created")
	return category, nil
}

// Delete removes the category. Its titles stay and lose their category.
func (s *categoryService) Delete(ctx context.Context, slug string) error {
	category, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return fmt.Errorf("failed to get category: %w", err)
	}
	if category == nil {
		return errs.NotFound("category")
	}
	if err := s.repo.Delete(ctx, category); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	s.logger.WithField("slug", slug).Info("Category deleted")
	return nil
}

type GenreService interface {
	List(ctx context.Context, search string, page repository.Page) ([]models.Genre, int64, error)
	Create(ctx context.Context, in SlugInput) (*models.Genre, error)
	Delete(ctx context.Context, slug string) error
}

type genreService struct {
	repo   repository.GenreRepository
	logger *logrus.Logger
}

func NewGenreService(repo repository.GenreRepository, logger *logrus.Logger) GenreService {
	return &genreService{repo: repo, logger: logger}
}

func (s *genreService) List(ctx context.Context, search string, page repository.Page) ([]models.Genre, int64, error) {
	return s.repo.FindAll(ctx, search, page)
}

func (s *genreService) Create(ctx context.Context, in SlugInput) (*models.Genre, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindBySlug(ctx, in.Slug)
	if err != nil {
		return nil, fmt.Errorf("failed to check genre slug: %w", err)
	}
	if existing != nil {
		return nil, errs.Invalid("slug", MsgGenreSlugTaken)
	}

	genre := &models.Genre{Name: in.Name, Slug: in.Slug}
	if err := s.repo.Create(ctx, genre); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, errs.Invalid("slug", MsgGenreSlugTaken)
		}
		return nil, fmt.Errorf("failed to create genre: %w", err)
	}

	s.logger.WithField("slug", genre.Slug).Info("Genre created")
	return genre, nil
}

func (s *genreService) Delete(ctx context.Context, slug string) error {
	genre, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		return fmt.Errorf("failed to get genre: %w", err)
	}
	if genre == nil {
		return errs.NotFound("genre")
	}
	if err := s.repo.Delete(ctx, genre); err != nil {
		return fmt.Errorf("failed to delete genre: %w", err)
	}

	s.logger.WithField("slug", slug).Info("Genre deleted")
	return nil
}
