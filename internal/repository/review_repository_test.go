package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"yamdb-backend/internal/models"
	"yamdb-backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewUniquePerTitleAndAuthor(t *testing.T) {
	db := testutil.NewDatabase(t)
	repo := NewReviewRepository(db)
	ann := testutil.CreateUser(t, db, "ann", models.RoleUser)
	title := testutil.CreateTitle(t, db, "Stalker", 1979, nil)

	require.NoError(t, repo.Create(context.Background(), &models.Review{TitleID: title.ID, AuthorID: ann.ID, Text: "one", Score: 5}))

	err := repo.Create(context.Background(), &models.Review{TitleID: title.ID, AuthorID: ann.ID, Text: "two", Score: 6})
	assert.True(t, errors.Is(err, ErrDuplicate), "got %v", err)

	exists, err := repo.ExistsByAuthor(context.Background(), title.ID, ann.ID)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestReviewUpdateKeepsPubDate(t *testing.T) {
	db := testutil.NewDatabase(t)
	repo := NewReviewRepository(db)
	ann := testutil.CreateUser(t, db, "ann", models.RoleUser)
	title := testutil.CreateTitle(t, db, "Stalker", 1979, nil)
	review := testutil.CreateReview(t, db, title, ann, 5)
	published := review.PubDate

	review.Text = "changed my mind"
	review.Score = 9
	review.PubDate = time.Now().Add(48 * time.Hour)
	require.NoError(t, repo.Update(context.Background(), review, []string{"text", "score", "pub_date"}))

	got, err := repo.FindByID(context.Background(), title.ID, review.ID)
	require.NoError(t, err)
	assert.Equal(t, "changed my mind", got.Text)
	assert.Equal(t, 9, got.Score)
	assert.WithinDuration(t, published, got.PubDate, time.Second)
	assert.Equal(t, "ann", got.Author.Username)
	assert.Equal(t, "Stalker", got.Title.Name)
}

func TestReviewScopedToTitle(t *testing.T) {
	db := testutil.NewDatabase(t)
	repo := NewReviewRepository(db)
	ann := testutil.CreateUser(t, db, "ann", models.RoleUser)
	stalker := testutil.CreateTitle(t, db, "Stalker", 1979, nil)
	solaris := testutil.CreateTitle(t, db, "Solaris", 1972, nil)
	review := testutil.CreateReview(t, db, stalker, ann, 5)
	testutil.CreateReview(t, db, solaris, ann, 6)

	got, err := repo.FindByID(context.Background(), solaris.ID, review.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	list, total, err := repo.FindAll(context.Background(), stalker.ID, firstPage)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, list, 1)
	assert.Equal(t, review.ID, list[0].ID)
}

func TestReviewDeleteRemovesComments(t *testing.T) {
	db := testutil.NewDatabase(t)
	ann := testutil.CreateUser(t, db, "ann", models.RoleUser)
	title := testutil.CreateTitle(t, db, "Stalker", 1979, nil)
	review := testutil.CreateReview(t, db, title, ann, 5)
	testutil.CreateComment(t, db, review, ann)

	require.NoError(t, NewReviewRepository(db).Delete(context.Background(), review.ID))

	comments, total, err := NewCommentRepository(db).FindAll(context.Background(), review.ID, firstPage)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, comments)
}

func TestCommentScopedToReview(t *testing.T) {
	db := testutil.NewDatabase(t)
	repo := NewCommentRepository(db)
	ann := testutil.CreateUser(t, db, "ann", models.RoleUser)
	ben := testutil.CreateUser(t, db, "ben", models.RoleUser)
	title := testutil.CreateTitle(t, db, "Stalker", 1979, nil)
	first := testutil.CreateReview(t, db, title, ann, 5)
	second := testutil.CreateReview(t, db, title, ben, 6)
	comment := testutil.CreateComment(t, db, first, ben)

	got, err := repo.FindByID(context.Background(), first.ID, comment.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "ben", got.Author.Username)

	got, err = repo.FindByID(context.Background(), second.ID, comment.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
