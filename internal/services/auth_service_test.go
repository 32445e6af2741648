package services

import (
	"context"
	"errors"
	"testing"

	"yamdb-backend/internal/errs"
	"yamdb-backend/internal/models"
	"yamdb-backend/internal/repository"
	"yamdb-backend/internal/testutil"
	"yamdb-backend/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(t *testing.T) (AuthService, repository.UserRepository, *recordingSender) {
	t.Helper()
	db := testutil.NewDatabase(t)
	users := repository.NewUserRepository(db)
	sender := newRecordingSender()
	return NewAuthService(users, sender, stubIssuer{}, nil, testutil.Logger()), users, sender
}

func TestSignupThenObtainToken(t *testing.T) {
	auth, users, sender := newAuthFixture(t)
	ctx := context.Background()

	user, err := auth.Signup(ctx, SignupInput{Username: "bob", Email: "bob@x.com"})
	require.NoError(t, err)
	assert.Equal(t, "bob", user.Username)
	assert.Equal(t, models.RoleUser, user.Role)

	code := sender.code("bob@x.com")
	require.Len(t, code, 10)

	_, err = auth.ObtainToken(ctx, TokenInput{Username: "bob", ConfirmationCode: "WRONG00000"})
	var ferr *errs.FieldError
	require.True(t, errors.As(err, &ferr))
	assert.Equal(t, "confirmation_code", ferr.Field)
	assert.Equal(t, MsgInvalidConfirmationCode, ferr.Message)

	signed, err := auth.ObtainToken(ctx, TokenInput{Username: "bob", ConfirmationCode: code})
	require.NoError(t, err)
	assert.Equal(t, "token-for-bob", signed)

	stored, err := users.FindByUsername(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, stored.ConfirmationCode)
}

func TestConfirmationCodeIsSingleUse(t *testing.T) {
	auth, _, sender := newAuthFixture(t)
	ctx := context.Background()

	_, err := auth.Signup(ctx, SignupInput{Username: "bob", Email: "bob@x.com"})
	require.NoError(t, err)
	code := sender.code("bob@x.com")

	_, err = auth.ObtainToken(ctx, TokenInput{Username: "bob", ConfirmationCode: code})
	require.NoError(t, err)

	_, err = auth.ObtainToken(ctx, TokenInput{Username: "bob", ConfirmationCode: code})
	var ferr *errs.FieldError
	assert.True(t, errors.As(err, &ferr))
}

func TestSignupAgainReissuesCode(t *testing.T) {
	auth, users, _ := newAuthFixture(t)
	ctx := context.Background()

	first, err := auth.Signup(ctx, SignupInput{Username: "bob", Email: "bob@x.com"})
	require.NoError(t, err)
	second, err := auth.Signup(ctx, SignupInput{Username: "bob", Email: "bob@x.com"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	_, total, err := users.FindAll(ctx, "", repository.Page{Number: 1, Size: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}

func TestSignupConflicts(t *testing.T) {
	auth, _, _ := newAuthFixture(t)
	ctx := context.Background()

	_, err := auth.Signup(ctx, SignupInput{Username: "bob", Email: "bob@x.com"})
	require.NoError(t, err)

	_, err = auth.Signup(ctx, SignupInput{Username: "bob", Email: "other@x.com"})
	requireFieldError(t, err, "username", MsgUsernameTaken)

	_, err = auth.Signup(ctx, SignupInput{Username: "robert", Email: "bob@x.com"})
	requireFieldError(t, err, "email", MsgSignupEmailTaken)
}

// vanishingUsers rejects every insert as a duplicate while the conflict
// checks find nothing, as when the competing row is deleted in between.
type vanishingUsers struct {
	repository.UserRepository
}

func (vanishingUsers) Create(context.Context, *models.User) error {
	return repository.ErrDuplicate
}

func (vanishingUsers) UsernameTaken(context.Context, string, uint) (bool, error) { return false, nil }
func (vanishingUsers) EmailTaken(context.Context, string, uint) (bool, error)    { return false, nil }

func TestSignupDuplicateWithoutConflictIsValidationError(t *testing.T) {
	db := testutil.NewDatabase(t)
	sender := newRecordingSender()
	auth := NewAuthService(vanishingUsers{repository.NewUserRepository(db)}, sender, stubIssuer{}, nil, testutil.Logger())

	_, err := auth.Signup(context.Background(), SignupInput{Username: "bob", Email: "bob@x.com"})
	requireFieldError(t, err, "email", MsgSignupEmailTaken)
	assert.Empty(t, sender.code("bob@x.com"))
}

func TestSignupValidation(t *testing.T) {
	auth, _, _ := newAuthFixture(t)
	ctx := context.Background()

	_, err := auth.Signup(ctx, SignupInput{Username: "me", Email: "me@x.com"})
	requireFieldError(t, err, "username", validation.MsgUsernameMe)

	_, err = auth.Signup(ctx, SignupInput{Username: "bad name!", Email: "x@x.com"})
	requireFieldError(t, err, "username", validation.MsgUsernameChars)

	_, err = auth.Signup(ctx, SignupInput{Username: "bob", Email: "not-an-email"})
	requireFieldError(t, err, "email", validation.MsgEmail)

	_, err = auth.Signup(ctx, SignupInput{})
	requireFieldError(t, err, "username", validation.MsgRequired)
	requireFieldError(t, err, "email", validation.MsgRequired)
}

func TestSignupSurfacesMailFailure(t *testing.T) {
	auth, _, sender := newAuthFixture(t)
	sender.err = errors.New("relay down")

	_, err := auth.Signup(context.Background(), SignupInput{Username: "bob", Email: "bob@x.com"})
	assert.ErrorIs(t, err, sender.err)
}

func TestObtainTokenUnknownUser(t *testing.T) {
	auth, _, _ := newAuthFixture(t)

	_, err := auth.ObtainToken(context.Background(), TokenInput{Username: "ghost", ConfirmationCode: "AAAAAAAAAA"})
	assert.True(t, errors.Is(err, errs.ErrNotFound))
}
