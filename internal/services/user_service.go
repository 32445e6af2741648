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

const MsgEmailTaken = "Эта почта уже зарегистрирована"

type UserInput struct {
	Username  string `json:"username" validate:"required,max=150,username"`
	Email     string `json:"email" validate:"required,max=254,email"`
	FirstName string `json:"first_name" validate:"max=150"`
	LastName  string `json:"last_name" validate:"max=150"`
	Bio       string `json:"bio"`
	Role      string `json:"role" validate:"omitempty,oneof=user moderator admin"`
}

// UserPatch carries a partial profile update. Nil fields are left alone.
type UserPatch struct {
	Username  *string `json:"username" validate:"omitempty,max=150,username"`
	Email     *string `json:"email" validate:"omitempty,max=254,email"`
	FirstName *string `json:"first_name" validate:"omitempty,max=150"`
	LastName  *string `json:"last_name" validate:"omitempty,max=150"`
	Bio       *string `json:"bio"`
	Role      *string `json:"role" validate:"omitempty,oneof=user moderator admin"`
}

type UserService interface {
	List(ctx context.Context, search string, page repository.Page) ([]models.User, int64, error)
	Create(ctx context.Context, in UserInput) (*models.User, error)
	// CreateSuperuser creates an admin that passes every permission check.
	CreateSuperuser(ctx context.Context, in UserInput) (*models.User, error)
	Get(ctx context.Context, username string) (*models.User, error)
	Update(ctx context.Context, username string, patch UserPatch) (*models.User, error)
	Delete(ctx context.Context, username string) error
	// UpdateSelf applies patch to the caller's own profile. Role is ignored.
	UpdateSelf(ctx context.Context, user *models.User, patch UserPatch) (*models.User, error)
}

type userService struct {
	repo   repository.UserRepository
	logger *logrus.Logger
}

func NewUserService(repo repository.UserRepository, logger *logrus.Logger) UserService {
	return &userService{
		repo:   repo,
		logger: logger,
	}
}

func (s *userService) List(ctx context.Context, search string, page repository.Page) ([]models.User, int64, error) {
	return s.repo.FindAll(ctx, search, page)
}

func (s *userService) Create(ctx context.Context, in UserInput) (*models.User, error) {
	return s.create(ctx, in, false)
}

func (s *userService) CreateSuperuser(ctx context.Context, in UserInput) (*models.User, error) {
	in.Role = models.RoleAdmin.String()
	return s.create(ctx, in, true)
}

func (s *userService) create(ctx context.Context, in UserInput, superuser bool) (*models.User, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	role := models.RoleUser
	if in.Role != "" {
		parsed, err := models.ParseRole(in.Role)
		if err != nil {
			return nil, errs.Invalid("role", err.Error())
		}
		role = parsed
	}

	if err := s.checkConflicts(ctx, 0, in.Username, in.Email); err != nil {
		return nil, err
	}

	user := &models.User{
		Username:    in.Username,
		Email:       in.Email,
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Bio:         in.Bio,
		Role:        role,
		IsSuperuser: superuser,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, s.mapDuplicate(ctx, err, 0, in.Username, in.Email)
	}

	s.logger.WithFields(logrus.Fields{
		"username":  user.Username,
		"role":      user.Role.String(),
		"superuser": user.IsSuperuser,
	}).Info("User created")
	return user, nil
}

func (s *userService) Get(ctx context.Context, username string) (*models.User, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, errs.NotFound("user")
	}
	return user, nil
}

func (s *userService) Update(ctx context.Context, username string, patch UserPatch) (*models.User, error) {
	user, err := s.Get(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.apply(ctx, user, patch, true)
}

func (s *userService) UpdateSelf(ctx context.Context, user *models.User, patch UserPatch) (*models.User, error) {
	patch.Role = nil
	return s.apply(ctx, user, patch, false)
}

func (s *userService) apply(ctx context.Context, user *models.User, patch UserPatch, allowRole bool) (*models.User, error) {
	if err := validation.Struct(patch); err != nil {
		return nil, err
	}

	var columns []string
	username, address := "", ""

	if patch.Username != nil && *patch.Username != user.Username {
		username = *patch.Username
		user.Username = username
		columns = append(columns, "username")
	}
	if patch.Email != nil && *patch.Email != user.Email {
		address = *patch.Email
		user.Email = address
		columns = append(columns, "email")
	}
	if patch.FirstName != nil {
		user.FirstName = *patch.FirstName
		columns = append(columns, "first_name")
	}
	if patch.LastName != nil {
		user.LastName = *patch.LastName
		columns = append(columns, "last_name")
	}
	if patch.Bio != nil {
		user.Bio = *patch.Bio
		columns = append(columns, "bio")
	}
	if allowRole && patch.Role != nil {
		role, err := models.ParseRole(*patch.Role)
		if err != nil {
			return nil, errs.Invalid("role", err.Error())
		}
		user.Role = role
		columns = append(columns, "role")
	}

	if err := s.checkConflicts(ctx, user.ID, username, address); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, user, columns); err != nil {
		return nil, s.mapDuplicate(ctx, err, user.ID, username, address)
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, username string) error {
	user, err := s.Get(ctx, username)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, user.ID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.logger.WithField("username", username).Info("User deleted")
	return nil
}

// checkConflicts reports username and email values already held by a row
// other than exceptID. Empty values are skipped.
func (s *userService) checkConflicts(ctx context.Context, exceptID uint, username, address string) error {
	v := errs.NewValidation()

	if username != "" {
		taken, err := s.repo.UsernameTaken(ctx, username, exceptID)
		if err != nil {
			return fmt.Errorf("failed to check username: %w", err)
		}
		if taken {
			v.Add("username", MsgUsernameTaken)
		}
	}

	if address != "" {
		taken, err := s.repo.EmailTaken(ctx, address, exceptID)
		if err != nil {
			return fmt.Errorf("failed to check email: %w", err)
		}
		if taken {
			v.Add("email", MsgEmailTaken)
		}
	}

	return v.OrNil()
}

// mapDuplicate turns a unique violation that slipped past checkConflicts into
// the same validation error the check would have produced.
func (s *userService) mapDuplicate(ctx context.Context, err error, exceptID uint, username, address string) error {
	if !errors.Is(err, repository.ErrDuplicate) {
		return fmt.Errorf("failed to save user: %w", err)
	}
	if conflict := s.checkConflicts(ctx, exceptID, username, address); conflict != nil {
		return conflict
	}
	return errs.Invalid("email", MsgEmailTaken)
}
