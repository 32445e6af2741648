package services

import (
	"context"
	"errors"
	"fmt"
	"io"

	"yamdb-backend/internal/email"
	"yamdb-backend/internal/errs"
	"yamdb-backend/internal/models"
	"yamdb-backend/internal/repository"
	"yamdb-backend/internal/validation"

	"github.com/sirupsen/logrus"
)

const (
	MsgInvalidConfirmationCode = "Неверный код подтверждения."
	MsgUsernameTaken           = "A user with that username already exists."
	MsgSignupEmailTaken        = "user with this email already exists."
)

type SignupInput struct {
	Username string `json:"username" validate:"required,max=150,username"`
	Email    string `json:"email" validate:"required,max=254,email"`
}

type TokenInput struct {
	Username         string `json:"username" validate:"required,max=150,usernamechars"`
	ConfirmationCode string `json:"confirmation_code" validate:"required"`
}

// TokenIssuer signs access tokens for confirmed users.
type TokenIssuer interface {
	Issue(user *models.User) (string, error)
}

type AuthService interface {
	// Signup registers the user if needed and mails a fresh confirmation code.
	Signup(ctx context.Context, in SignupInput) (*models.User, error)
	// ObtainToken exchanges a confirmation code for an access token. A code
	// can be exchanged once.
	ObtainToken(ctx context.Context, in TokenInput) (string, error)
}

type authService struct {
	users  repository.UserRepository
	sender email.Sender
	tokens TokenIssuer
	random io.Reader
	logger *logrus.Logger
}

// NewAuthService wires the registration flow. random feeds confirmation
// codes and may be nil to use crypto/rand.
func NewAuthService(users repository.UserRepository, sender email.Sender, tokens TokenIssuer, random io.Reader, logger *logrus.Logger) AuthService {
	return &authService{
		users:  users,
		sender: sender,
		tokens: tokens,
		random: random,
		logger: logger,
	}
}

func (s *authService) Signup(ctx context.Context, in SignupInput) (*models.User, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}

	user, err := s.users.FindByUsernameAndEmail(ctx, in.Username, in.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if user == nil {
		if err := s.checkSignupConflicts(ctx, in.Username, in.Email); err != nil {
			return nil, err
		}
	}

	code, err := NewConfirmationCode(s.random)
	if err != nil {
		return nil, err
	}

	if user == nil {
		user = &models.User{
			Username:         in.Username,
			Email:            in.Email,
			Role:             models.RoleUser,
			ConfirmationCode: code,
		}
		if err := s.users.Create(ctx, user); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				// Lost a race with a concurrent signup.
				if conflict := s.checkSignupConflicts(ctx, in.Username, in.Email); conflict != nil {
					return nil, conflict
				}
				// The competing row is gone again; report the unique field most
				// likely hit.
				return nil, errs.Invalid("email", MsgSignupEmailTaken)
			}
			return nil, fmt.Errorf("failed to create user: %w", err)
		}
	} else {
		user.ConfirmationCode = code
		if err := s.users.Update(ctx, user, []string{"confirmation_code"}); err != nil {
			return nil, fmt.Errorf("failed to store confirmation code: %w", err)
		}
	}

	if err := s.sender.SendConfirmationCode(ctx, user.Email, code); err != nil {
		s.logger.WithError(err).WithField("username", user.Username).Error("Failed to send confirmation code")
		return nil, err
	}

	s.logger.WithField("username", user.Username).Info("Confirmation code sent")
	return user, nil
}

func (s *authService) checkSignupConflicts(ctx context.Context, username, address string) error {
	v := errs.NewValidation()

	taken, err := s.users.UsernameTaken(ctx, username, 0)
	if err != nil {
		return fmt.Errorf("failed to check username: %w", err)
	}
	if taken {
		v.Add("username", MsgUsernameTaken)
	}

	taken, err = s.users.EmailTaken(ctx, address, 0)
	if err != nil {
		return fmt.Errorf("failed to check email: %w", err)
	}
	if taken {
		v.Add("email", MsgSignupEmailTaken)
	}

	return v.OrNil()
}

func (s *authService) ObtainToken(ctx context.Context, in TokenInput) (string, error) {
	if err := validation.Struct(in); err != nil {
		return "", err
	}

	user, err := s.users.FindByUsername(ctx, in.Username)
	if err != nil {
		return "", fmt.Errorf("failed to look up user: %w", err)
	}
	if user == nil {
		return "", errs.NotFound("user")
	}

	if user.ConfirmationCode == "" || user.ConfirmationCode != in.ConfirmationCode {
		return "", &errs.FieldError{Field: "confirmation_code", Message: MsgInvalidConfirmationCode}
	}

	user.ConfirmationCode = ""
	if err := s.users.Update(ctx, user, []string{"confirmation_code"}); err != nil {
		return "", fmt.Errorf("failed to consume confirmation code: %w", err)
	}

	signed, err := s.tokens.Issue(user)
	if err != nil {
		return "", err
	}

	s.logger.WithField("user_id", user.ID).Info("Access token issued")
	return signed, nil
}
