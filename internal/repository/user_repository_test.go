package repository

import (
	"context"
	"errors"
	"testing"

	"yamdb-backend/internal/models"
	"yamdb-backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserUniqueness(t *testing.T) {
	db := testutil.NewDatabase(t)
	repo := NewUserRepository(db)
	ann := testutil.CreateUser(t, db, "ann", models.RoleUser)

	err := repo.Create(context.Background(), &models.User{Username: "ann", Email: "other@example.com"})
	assert.True(t, errors.Is(err, ErrDuplicate))

	err = repo.Create(context.Background(), &models.User{Username: "other", Email: ann.Email})
	assert.True(t, errors.Is(err, ErrDuplicate))

	taken, err := repo.EmailTaken(context.Background(), ann.Email, 0)
	require.NoError(t, err)
	assert.True(t, taken)

	taken, err = repo.EmailTaken(context.Background(), ann.Email, ann.ID)
	require.NoError(t, err)
	assert.False(t, taken, "own row is ignored")

	taken, err = repo.UsernameTaken(context.Background(), "ann", 0)
	require.NoError(t, err)
	assert.True(t, taken)
}

func TestUserDefaultsToUserRole(t *testing.T) {
	db := testutil.NewDatabase(t)
	repo := NewUserRepository(db)

	require.NoError(t, repo.Create(context.Background(), &models.User{Username: "ann", Email: "ann@example.com"}))

	got, err := repo.FindByUsername(context.Background(), "ann")
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, got.Role)
}

func TestUserLookups(t *testing.T) {
	db := testutil.NewDatabase(t)
	repo := NewUserRepository(db)
	ann := testutil.CreateUser(t, db, "ann", models.RoleAdmin)

	got, err := repo.FindByUsernameAndEmail(context.Background(), "ann", "ann@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, ann.ID, got.ID)
	assert.Equal(t, models.RoleAdmin, got.Role)

	got, err = repo.FindByUsernameAndEmail(context.Background(), "ann", "wrong@example.com")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = repo.FindByID(context.Background(), 999)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserSearchByUsername(t *testing.T) {
	db := testutil.NewDatabase(t)
	repo := NewUserRepository(db)
	testutil.CreateUser(t, db, "anna", models.RoleUser)
	testutil.CreateUser(t, db, "hannah", models.RoleUser)
	testutil.CreateUser(t, db, "bob", models.RoleUser)

	users, total, err := repo.FindAll(context.Background(), "ANN", firstPage)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, users, 2)
	assert.Equal(t, "anna", users[0].Username)
}

func TestUserDeleteRemovesAuthoredContent(t *testing.T) {
	db := testutil.NewDatabase(t)
	ann := testutil.CreateUser(t, db, "ann", models.RoleUser)
	ben := testutil.CreateUser(t, db, "ben", models.RoleUser)
	title := testutil.CreateTitle(t, db, "Stalker", 1979, nil)
	annReview := testutil.CreateReview(t, db, title, ann, 5)
	benReview := testutil.CreateReview(t, db, title, ben, 6)
	testutil.CreateComment(t, db, annReview, ben)
	testutil.CreateComment(t, db, benReview, ann)
	testutil.CreateComment(t, db, benReview, ben)

	require.NoError(t, NewUserRepository(db).Delete(context.Background(), ann.ID))

	var reviews []models.Review
	require.NoError(t, db.Find(&reviews).Error)
	require.Len(t, reviews, 1)
	assert.Equal(t, benReview.ID, reviews[0].ID)

	var comments []models.Comment
	require.NoError(t, db.Find(&comments).Error)
	require.Len(t, comments, 1)
	assert.Equal(t, ben.ID, comments[0].AuthorID)
	assert.Equal(t, benReview.ID, comments[0].ReviewID)
}
