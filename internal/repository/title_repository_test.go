package repository

import (
	"context"
	"testing"

	"yamdb-backend/internal/models"
	"yamdb-backend/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var firstPage = Page{Number: 1, Size: 10}

func TestTitleRatingIsNullWithoutReviews(t *testing.T) {
	db := testutil.NewDatabase(t)
	repo := NewTitleRepository(db)
	title := testutil.CreateTitle(t, db, "Solaris", 1961, nil)

	got, err := repo.FindByID(context.Background(), title.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Nil(t, got.Rating)
}

func TestTitleRatingIsMeanOfScores(t *testing.T) {
	db := testutil.NewDatabase(t)
	repo := NewTitleRepository(db)
	title := testutil.CreateTitle(t, db, "Solaris", 1961, nil)
	testutil.CreateReview(t, db, title, testutil.CreateUser(t, db, "ann", models.RoleUser), 8)
	testutil.CreateReview(t, db, title, testutil.CreateUser(t, db, "ben", models.RoleUser), 10)

	got, err := repo.FindByID(context.Background(), title.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Rating)
	assert.InDelta(t, 9.0, *got.Rating, 1e-9)

	list, total, err := repo.FindAll(context.Background(), models.TitleFilter{}, firstPage)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].Rating)
	assert.InDelta(t, 9.0, *list[0].Rating, 1e-9)
}

func TestFindByIDMissingReturnsNil(t *testing.T) {
	db := testutil.NewDatabase(t)

	got, err := NewTitleRepository(db).FindByID(context.Background(), 404)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestTitleFilters(t *testing.T) {
	db := testutil.NewDatabase(t)
	repo := NewTitleRepository(db)
	books := testutil.CreateCategory(t, db, "Книги", "books")
	films := testutil.CreateCategory(t, db, "Фильмы", "movie")
	drama := *testutil.CreateGenre(t, db, "Драма", "drama")
	scifi := *testutil.CreateGenre(t, db, "Фантастика", "sci-fi")

	testutil.CreateTitle(t, db, "Solaris", 1961, books, scifi)
	testutil.CreateTitle(t, db, "Solaris", 1972, films, scifi, drama)
	testutil.CreateTitle(t, db, "Stalker", 1979, films, drama)

	cases := []struct {
		name   string
		filter models.TitleFilter
		want   []int
	}{
		{"no filter", models.TitleFilter{}, []int{1961, 1972, 1979}},
		{"name contains, case-insensitive", models.TitleFilter{Name: "sOLar"}, []int{1961, 1972}},
		{"year", models.TitleFilter{Year: 1979}, []int{1979}},
		{"category slug", models.TitleFilter{Category: "movie"}, []int{1972, 1979}},
		{"genre slug", models.TitleFilter{Genre: "sci-fi"}, []int{1961, 1972}},
		{"combined", models.TitleFilter{Genre: "drama", Category: "movie", Name: "sol"}, []int{1972}},
		{"unknown slug", models.TitleFilter{Genre: "western"}, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			titles, total, err := repo.FindAll(context.Background(), tc.filter, firstPage)
			require.NoError(t, err)
			assert.EqualValues(t, len(tc.want), total)

			var years []int
			for _, title := range titles {
				years = append(years, title.Year)
			}
			assert.Equal(t, tc.want, years)
		})
	}
}

func TestTitleListPreloadsRelations(t *testing.T) {
	db := testutil.NewDatabase(t)
	repo := NewTitleRepository(db)
	films := testutil.CreateCategory(t, db, "Фильмы", "movie")
	drama := *testutil.CreateGenre(t, db, "Драма", "drama")
	comedy := *testutil.CreateGenre(t, db, "Комедия", "comedy")
	testutil.CreateTitle(t, db, "Stalker", 1979, films, drama, comedy)

	titles, _, err := repo.FindAll(context.Background(), models.TitleFilter{}, firstPage)
	require.NoError(t, err)
	require.Len(t, titles, 1)
	require.NotNil(t, titles[0].Category)
	assert.Equal(t, "movie", titles[0].Category.Slug)
	require.Len(t, titles[0].Genres, 2)
	assert.Equal(t, "Драма", titles[0].Genres[0].Name)
}

func TestTitleListPagination(t *testing.T) {
	db := testutil.NewDatabase(t)
	repo := NewTitleRepository(db)
	for year := 2000; year < 2005; year++ {
		testutil.CreateTitle(t, db, "Title", year, nil)
	}

	titles, total, err := repo.FindAll(context.Background(), models.TitleFilter{}, Page{Number: 2, Size: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 5, total)
	require.Len(t, titles, 2)
	assert.Equal(t, 2002, titles[0].Year)
	assert.Equal(t, 2003, titles[1].Year)
}

func TestTitleUpdateReplacesGenres(t *testing.T) {
	db := testutil.NewDatabase(t)
	repo := NewTitleRepository(db)
	drama := *testutil.CreateGenre(t, db, "Драма", "drama")
	comedy := *testutil.CreateGenre(t, db, "Комедия", "comedy")
	title := testutil.CreateTitle(t, db, "Stalker", 1979, nil, drama)

	title.Name = "Сталкер"
	require.NoError(t, repo.Update(context.Background(), title, []string{"name"}, []models.Genre{comedy}))

	got, err := repo.FindByID(context.Background(), title.ID)
	require.NoError(t, err)
	assert.Equal(t, "Сталкер", got.Name)
	assert.Equal(t, 1979, got.Year)
	require.Len(t, got.Genres, 1)
	assert.Equal(t, "comedy", got.Genres[0].Slug)
}

func TestTitleDeleteCascadesToReviewsAndComments(t *testing.T) {
	db := testutil.NewDatabase(t)
	repo := NewTitleRepository(db)
	drama := *testutil.CreateGenre(t, db, "Драма", "drama")
	author := testutil.CreateUser(t, db, "ann", models.RoleUser)
	doomed := testutil.CreateTitle(t, db, "Stalker", 1979, nil, drama)
	kept := testutil.CreateTitle(t, db, "Solaris", 1972, nil, drama)
	review := testutil.CreateReview(t, db, doomed, author, 7)
	testutil.CreateComment(t, db, review, author)
	keptReview := testutil.CreateReview(t, db, kept, author, 9)
	testutil.CreateComment(t, db, keptReview, author)

	require.NoError(t, repo.Delete(context.Background(), doomed.ID))

	var count int64
	db.Model(&models.Review{}).Where("title_id = ?", doomed.ID).Count(&count)
	assert.Zero(t, count)
	db.Model(&models.Comment{}).Where("review_id = ?", review.ID).Count(&count)
	assert.Zero(t, count)

	db.Model(&models.Review{}).Count(&count)
	assert.EqualValues(t, 1, count)
	db.Model(&models.Comment{}).Count(&count)
	assert.EqualValues(t, 1, count)
	db.Model(&models.Genre{}).Count(&count)
	assert.EqualValues(t, 1, count, "genres are not owned by titles")
}

func TestCategoryDeleteKeepsTitles(t *testing.T) {
	db := testutil.NewDatabase(t)
	books := testutil.CreateCategory(t, db, "Книги", "books")
	title := testutil.CreateTitle(t, db, "Solaris", 1961, books)

	require.NoError(t, NewCategoryRepository(db).Delete(context.Background(), books))

	got, err := NewTitleRepository(db).FindByID(context.Background(), title.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Nil(t, got.CategoryID)
	assert.Nil(t, got.Category)
}

func TestGenreDeleteUnlinksTitles(t *testing.T) {
	db := testutil.NewDatabase(t)
	drama := testutil.CreateGenre(t, db, "Драма", "drama")
	title := testutil.CreateTitle(t, db, "Stalker", 1979, nil, *drama)

	require.NoError(t, NewGenreRepository(db).Delete(context.Background(), drama))

	got, err := NewTitleRepository(db).FindByID(context.Background(), title.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Genres)
}
