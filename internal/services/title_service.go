package services

import (
	"context"
	"fmt"

	"yamdb-backend/internal/errs"
	"yamdb-backend/internal/models"
	"yamdb-backend/internal/repository"
	"yamdb-backend/internal/validation"

	"github.com/sirupsen/logrus"
)

// TitleInput is the write shape of a title: category and genres are given
// by slug.
type TitleInput struct {
	Name        string   `json:"name" validate:"required,max=256"`
	Year        *int     `json:"year" validate:"required,min=0,notfuture"`
	Description string   `json:"description"`
	Genre       []string `json:"genre" validate:"required,dive,max=50"`
	Category    *string  `json:"category" validate:"required"`
	Poster      string   `json:"poster" validate:"omitempty,url,max=512"`
}

// TitlePatch is a partial write. A non-nil Genre replaces the whole set.
type TitlePatch struct {
	Name        *string  `json:"name" validate:"omitempty,max=256"`
	Year        *int     `json:"year" validate:"omitempty,min=0,notfuture"`
	Description *string  `json:"description"`
	Genre       []string `json:"genre" validate:"omitempty,dive,max=50"`
	Category    *string  `json:"category"`
	Poster      *string  `json:"poster" validate:"omitempty,max=512,url|len=0"`
}

type TitleService interface {
	List(ctx context.Context, filter models.TitleFilter, page repository.Page) ([]models.Title, int64, error)
	Get(ctx context.Context, id uint) (*models.Title, error)
	Create(ctx context.Context, in TitleInput) (*models.Title, error)
	Update(ctx context.Context, id uint, patch TitlePatch) (*models.Title, error)
	Delete(ctx context.Context, id uint) error
}

type titleService struct {
	repo         repository.TitleRepository
	categoryRepo repository.CategoryRepository
	genreRepo    repository.GenreRepository
	posters      PosterStorage
	logger       *logrus.Logger
}

// NewTitleService builds the title service. posters may be nil when object
// storage is not configured.
func NewTitleService(repo repository.TitleRepository, categoryRepo repository.CategoryRepository, genreRepo repository.GenreRepository, posters PosterStorage, logger *logrus.Logger) TitleService {
	return &titleService{
		repo:         repo,
		categoryRepo: categoryRepo,
		genreRepo:    genreRepo,
		posters:      posters,
		logger:       logger,
	}
}

func (s *titleService) List(ctx context.Context, filter models.TitleFilter, page repository.Page) ([]models.Title, int64, error) {
	return s.repo.FindAll(ctx, filter, page)
}

func (s *titleService) Get(ctx context.Context, id uint) (*models.Title, error) {
	title, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get title: %w", err)
	}
	if title == nil {
		return nil, errs.NotFound("title")
	}
	return title, nil
}

func (s *titleService) Create(ctx context.Context, in TitleInput) (*models.Title, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	v := errs.NewValidation()
	var category *models.Category
	if *in.Category == "" {
		v.Add("category", missingSlug(""))
	} else {
		var err error
		category, err = s.resolveCategory(ctx, *in.Category, v)
		if err != nil {
			return nil, err
		}
	}
	genres, err := s.resolveGenres(ctx, in.Genre, v)
	if err != nil {
		return nil, err
	}
	if err := v.OrNil(); err != nil {
		return nil, err
	}

	title := &models.Title{
		Name:        in.Name,
		Year:        *in.Year,
		Description: in.Description,
		Poster:      in.Poster,
		Category:    category,
		Genres:      genres,
	}
	if category != nil {
		title.CategoryID = &category.ID
	}

	if err := s.repo.Create(ctx, title); err != nil {
		return nil, fmt.Errorf("failed to create title: %w", err)
	}

	s.logger.WithFields(logrus.Fields{"id": title.ID, "name": title.Name}).Info("Title created")
	return title, nil
}

func (s *titleService) Update(ctx context.Context, id uint, patch TitlePatch) (*models.Title, error) {
	if err := validation.Struct(patch); err != nil {
		return nil, err
	}

	existing, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	oldPoster := existing.Poster

	v := errs.NewValidation()
	var columns []string

	if patch.Name != nil {
		existing.Name = *patch.Name
		columns = append(columns, "name")
	}
	if patch.Year != nil {
		existing.Year = *patch.Year
		columns = append(columns, "year")
	}
	if patch.Description != nil {
		existing.Description = *patch.Description
		columns = append(columns, "description")
	}
	if patch.Poster != nil {
		existing.Poster = *patch.Poster
		columns = append(columns, "poster")
	}
	if patch.Category != nil {
		category, err := s.resolveCategory(ctx, *patch.Category, v)
		if err != nil {
			return nil, err
		}
		existing.Category = category
		existing.CategoryID = nil
		if category != nil {
			existing.CategoryID = &category.ID
		}
		columns = append(columns, "category_id")
	}

	var genres []models.Genre
	if patch.Genre != nil {
		genres, err = s.resolveGenres(ctx, patch.Genre, v)
		if err != nil {
			return nil, err
		}
		if genres == nil {
			genres = []models.Genre{}
		}
		existing.Genres = genres
	}

	if err := v.OrNil(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, existing, columns, genres); err != nil {
		return nil, fmt.Errorf("failed to update title: %w", err)
	}

	if oldPoster != "" && oldPoster != existing.Poster {
		s.removePoster(ctx, oldPoster)
	}

	s.logger.WithField("id", id).Info("Title updated")
	return existing, nil
}

// Delete removes the title with its reviews and comments, then its poster.
func (s *titleService) Delete(ctx context.Context, id uint) error {
	existing, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete title: %w", err)
	}

	if existing.Poster != "" {
		s.removePoster(ctx, existing.Poster)
	}

	s.logger.WithField("id", id).Info("Title deleted")
	return nil
}

func (s *titleService) removePoster(ctx context.Context, posterURL string) {
	if s.posters == nil {
		return
	}
	if err := s.posters.RemovePoster(ctx, posterURL); err != nil {
		s.logger.WithError(err).WithField("poster", posterURL).Warn("Failed to delete old poster")
	}
}

// resolveCategory looks up slug. Unknown slugs are recorded on v. An empty
// slug clears the category, which only a partial update may ask for.
func (s *titleService) resolveCategory(ctx context.Context, slug string, v *errs.ValidationError) (*models.Category, error) {
	if slug == "" {
		return nil, nil
	}
	category, err := s.categoryRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve category: %w", err)
	}
	if category == nil {
		v.Add("category", missingSlug(slug))
	}
	return category, nil
}

func (s *titleService) resolveGenres(ctx context.Context, slugs []string, v *errs.ValidationError) ([]models.Genre, error) {
	if len(slugs) == 0 {
		return nil, nil
	}
	genres, err := s.genreRepo.FindBySlugs(ctx, slugs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve genres: %w", err)
	}

	found := make(map[string]bool, len(genres))
	for _, g := range genres {
		found[g.Slug] = true
	}
	for _, slug := range slugs {
		if !found[slug] {
			v.Add("genre", missingSlug(slug))
		}
	}
	return genres, nil
}

func missingSlug(slug string) string {
	return fmt.Sprintf("Object with slug=%s does not exist.", slug)
}
