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

const MsgDuplicateReview = "Вы уже оставляли отзыв на это произведение"

type ReviewInput struct {
	Text  string `json:"text" validate:"required"`
	Score *int   `json:"score" validate:"required,score"`
}

type ReviewPatch struct {
	Text  *string `json:"text"`
	Score *int    `json:"score" validate:"omitempty,score"`
}

type CommentInput struct {
	Text string `json:"text" validate:"required"`
}

type CommentPatch struct {
	Text *string `json:"text"`
}

// ReviewService manages reviews of one title. The title is resolved by the
// caller once per request and passed in.
type ReviewService interface {
	Title(ctx context.Context, titleID uint) (*models.Title, error)
	List(ctx context.Context, title *models.Title, page repository.Page) ([]models.Review, int64, error)
	Get(ctx context.Context, title *models.Title, id uint) (*models.Review, error)
	Create(ctx context.Context, title *models.Title, author *models.User, in ReviewInput) (*models.Review, error)
	Update(ctx context.Context, review *models.Review, patch ReviewPatch) (*models.Review, error)
	Delete(ctx context.Context, review *models.Review) error
}

type reviewService struct {
	repo      repository.ReviewRepository
	titleRepo repository.TitleRepository
	logger    *logrus.Logger
}

func NewReviewService(repo repository.ReviewRepository, titleRepo repository.TitleRepository, logger *logrus.Logger) ReviewService {
	return &reviewService{
		repo:      repo,
		titleRepo: titleRepo,
		logger:    logger,
	}
}

func (s *reviewService) Title(ctx context.Context, titleID uint) (*models.Title, error) {
	title, err := s.titleRepo.FindByID(ctx, titleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get title: %w", err)
	}
	if title == nil {
		return nil, errs.NotFound("title")
	}
	return title, nil
}

func (s *reviewService) List(ctx context.Context, title *models.Title, page repository.Page) ([]models.Review, int64, error) {
	return s.repo.FindAll(ctx, title.ID, page)
}

func (s *reviewService) Get(ctx context.Context, title *models.Title, id uint) (*models.Review, error) {
	review, err := s.repo.FindByID(ctx, title.ID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get review: %w", err)
	}
	if review == nil {
		return nil, errs.NotFound("review")
	}
	return review, nil
}

// Create adds author's review of title. The store's unique index is the real
// guard against a second review; the lookup here only gives the early error.
func (s *reviewService) Create(ctx context.Context, title *models.Title, author *models.User, in ReviewInput) (*models.Review, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByAuthor(ctx, title.ID, author.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing review: %w", err)
	}
	if exists {
		return nil, errs.Invalid(errs.NonFieldErrors, MsgDuplicateReview)
	}

	review := &models.Review{
		TitleID:  title.ID,
		AuthorID: author.ID,
		Text:     in.Text,
		Score:    *in.Score,
	}
	if err := s.repo.Create(ctx, review); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, errs.Invalid(errs.NonFieldErrors, MsgDuplicateReview)
		}
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	review.Title = title
	review.Author = author

	s.logger.WithFields(logrus.Fields{
		"review_id": review.ID,
		"title_id":  title.ID,
		"author_id": author.ID,
	}).Info("Review created")
	return review, nil
}

func (s *reviewService) Update(ctx context.Context, review *models.Review, patch ReviewPatch) (*models.Review, error) {
	if err := validation.Struct(patch); err != nil {
		return nil, err
	}

	var columns []string
	if patch.Text != nil {
		review.Text = *patch.Text
		columns = append(columns, "text")
	}
	if patch.Score != nil {
		review.Score = *patch.Score
		columns = append(columns, "score")
	}

	if err := s.repo.Update(ctx, review, columns); err != nil {
		return nil, fmt.Errorf("failed to update review: %w", err)
	}
	return review, nil
}

func (s *reviewService) Delete(ctx context.Context, review *models.Review) error {
	if err := s.repo.Delete(ctx, review.ID); err != nil {
		return fmt.Errorf("failed to delete review: %w", err)
	}

	s.logger.WithField("review_id", review.ID).Info("Review deleted")
	return nil
}

// CommentService manages comments under one review.
type CommentService interface {
	// Review resolves the parent review, which must belong to titleID.
	Review(ctx context.Context, titleID, reviewID uint) (*models.Review, error)
	List(ctx context.Context, review *models.Review, page repository.Page) ([]models.Comment, int64, error)
	Get(ctx context.Context, review *models.Review, id uint) (*models.Comment, error)
	Create(ctx context.Context, review *models.Review, author *models.User, in CommentInput) (*models.Comment, error)
	Update(ctx context.Context, comment *models.Comment, patch CommentPatch) (*models.Comment, error)
	Delete(ctx context.Context, comment *models.Comment) error
}

type commentService struct {
	repo       repository.CommentRepository
	reviewRepo repository.ReviewRepository
	logger     *logrus.Logger
}

func NewCommentService(repo repository.CommentRepository, reviewRepo repository.ReviewRepository, logger *logrus.Logger) CommentService {
	return &commentService{
		repo:       repo,
		reviewRepo: reviewRepo,
		logger:     logger,
	}
}

func (s *commentService) Review(ctx context.Context, titleID, reviewID uint) (*models.Review, error) {
	review, err := s.reviewRepo.FindByID(ctx, titleID, reviewID)
	if err != nil {
		return nil, fmt.Errorf("failed to get review: %w", err)
	}
	if review == nil {
		return nil, errs.NotFound("review")
	}
	return review, nil
}

func (s *commentService) List(ctx context.Context, review *models.Review, page repository.Page) ([]models.Comment, int64, error) {
	return s.repo.FindAll(ctx, review.ID, page)
}

func (s *commentService) Get(ctx context.Context, review *models.Review, id uint) (*models.Comment, error) {
	comment, err := s.repo.FindByID(ctx, review.ID, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get comment: %w", err)
	}
	if comment == nil {
		return nil, errs.NotFound("comment")
	}
	return comment, nil
}

func (s *commentService) Create(ctx context.Context, review *models.Review, author *models.User, in CommentInput) (*models.Comment, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		ReviewID: review.ID,
		AuthorID: author.ID,
		Text:     in.Text,
	}
	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}
	comment.Review = review
	comment.Author = author

	s.logger.WithFields(logrus.Fields{
		"comment_id": comment.ID,
		"review_id":  review.ID,
		"author_id":  author.ID,
	}).Info("Comment created")
	return comment, nil
}

func (s *commentService) Update(ctx context.Context, comment *models.Comment, patch CommentPatch) (*models.Comment, error) {
	if err := validation.Struct(patch); err != nil {
		return nil, err
	}

	var columns []string
	if patch.Text != nil {
		comment.Text = *patch.Text
		columns = append(columns, "text")
	}

	if err := s.repo.Update(ctx, comment, columns); err != nil {
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}
	return comment, nil
}

func (s *commentService) Delete(ctx context.Context, comment *models.Comment) error {
	if err := s.repo.Delete(ctx, comment.ID); err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	s.logger.WithField("comment_id", comment.ID).Info("Comment deleted")
	return nil
}
