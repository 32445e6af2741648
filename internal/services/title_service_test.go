package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"yamdb-backend/internal/database"
	"yamdb-backend/internal/errs"
	"yamdb-backend/internal/repository"
	"yamdb-backend/internal/testutil"
	"yamdb-backend/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePosters struct {
	mu      sync.Mutex
	removed []string
}

func (f *fakePosters) PresignPosterUpload(context.Context, string, string) (*PosterUpload, error) {
	return &PosterUpload{}, nil
}

func (f *fakePosters) RemovePoster(_ context.Context, posterURL string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removed = append(f.removed, posterURL)
	return nil
}

func newTitleFixture(t *testing.T) (TitleService, *database.Database, *fakePosters) {
	t.Helper()
	db := testutil.NewDatabase(t)
	posters := &fakePosters{}
	svc := NewTitleService(
		repository.NewTitleRepository(db),
		repository.NewCategoryRepository(db),
		repository.NewGenreRepository(db),
		posters,
		testutil.Logger(),
	)
	return svc, db, posters
}

func TestTitleCreateResolvesSlugs(t *testing.T) {
	svc, db, _ := newTitleFixture(t)
	testutil.CreateCategory(t, db, "Фильмы", "movie")
	testutil.CreateGenre(t, db, "Драма", "drama")
	testutil.CreateGenre(t, db, "Фантастика", "sci-fi")

	title, err := svc.Create(context.Background(), TitleInput{
		Name:     "Stalker",
		Year:     intPtr(1979),
		Category: strPtr("movie"),
		Genre:    []string{"drama", "sci-fi"},
	})
	require.NoError(t, err)
	require.NotNil(t, title.Category)
	assert.Equal(t, "movie", title.Category.Slug)
	assert.Len(t, title.Genres, 2)

	got, err := svc.Get(context.Background(), title.ID)
	require.NoError(t, err)
	assert.Len(t, got.Genres, 2)
	assert.Nil(t, got.Rating)
}

func TestTitleCreateUnknownSlugs(t *testing.T) {
	svc, db, _ := newTitleFixture(t)
	testutil.CreateGenre(t, db, "Драма", "drama")

	_, err := svc.Create(context.Background(), TitleInput{
		Name:     "Stalker",
		Year:     intPtr(1979),
		Category: strPtr("nope"),
		Genre:    []string{"drama", "western"},
	})
	requireFieldError(t, err, "category", "Object with slug=nope does not exist.")
	requireFieldError(t, err, "genre", "Object with slug=western does not exist.")
}

func TestTitleYearBound(t *testing.T) {
	svc, db, _ := newTitleFixture(t)
	ctx := context.Background()
	thisYear := time.Now().Year()
	testutil.CreateCategory(t, db, "Фильмы", "movie")

	_, err := svc.Create(ctx, TitleInput{Name: "Future", Year: intPtr(thisYear + 1), Category: strPtr("movie"), Genre: []string{}})
	requireFieldError(t, err, "year", validation.MsgFutureYear)

	current, err := svc.Create(ctx, TitleInput{Name: "Now", Year: intPtr(thisYear), Category: strPtr("movie"), Genre: []string{}})
	require.NoError(t, err)

	_, err = svc.Update(ctx, current.ID, TitlePatch{Year: intPtr(thisYear + 5)})
	requireFieldError(t, err, "year", validation.MsgFutureYear)
}

func TestTitleCreateNeedsCategory(t *testing.T) {
	svc, _, _ := newTitleFixture(t)

	_, err := svc.Create(context.Background(), TitleInput{
		Name:     "Orphan",
		Year:     intPtr(2001),
		Category: strPtr(""),
		Genre:    []string{},
	})
	requireFieldError(t, err, "category", "Object with slug= does not exist.")
}

func TestTitleCreateRequiredFields(t *testing.T) {
	svc, _, _ := newTitleFixture(t)

	_, err := svc.Create(context.Background(), TitleInput{})
	for _, field := range []string{"name", "year", "genre", "category"} {
		requireFieldError(t, err, field, validation.MsgRequired)
	}
}

func TestTitlePatchReplacesGenresAndKeepsOthers(t *testing.T) {
	svc, db, _ := newTitleFixture(t)
	films := testutil.CreateCategory(t, db, "Фильмы", "movie")
	drama := *testutil.CreateGenre(t, db, "Драма", "drama")
	testutil.CreateGenre(t, db, "Комедия", "comedy")
	title := testutil.CreateTitle(t, db, "Stalker", 1979, films, drama)
	ctx := context.Background()

	updated, err := svc.Update(ctx, title.ID, TitlePatch{Genre: []string{"comedy"}})
	require.NoError(t, err)
	require.Len(t, updated.Genres, 1)
	assert.Equal(t, "comedy", updated.Genres[0].Slug)

	got, err := svc.Get(ctx, title.ID)
	require.NoError(t, err)
	assert.Equal(t, "Stalker", got.Name)
	require.NotNil(t, got.Category)
	assert.Equal(t, "movie", got.Category.Slug)
	require.Len(t, got.Genres, 1)
	assert.Equal(t, "comedy", got.Genres[0].Slug)

	_, err = svc.Update(ctx, title.ID, TitlePatch{Genre: []string{}})
	require.NoError(t, err)
	got, err = svc.Get(ctx, title.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Genres)
}

func TestTitlePatchClearsCategory(t *testing.T) {
	svc, db, _ := newTitleFixture(t)
	films := testutil.CreateCategory(t, db, "Фильмы", "movie")
	title := testutil.CreateTitle(t, db, "Stalker", 1979, films)

	_, err := svc.Update(context.Background(), title.ID, TitlePatch{Category: strPtr("")})
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), title.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Category)
}

func TestTitlePosterCleanup(t *testing.T) {
	svc, db, posters := newTitleFixture(t)
	ctx := context.Background()
	title := testutil.CreateTitle(t, db, "Stalker", 1979, nil)

	_, err := svc.Update(ctx, title.ID, TitlePatch{Poster: strPtr("https://cdn/posters/a.jpg")})
	require.NoError(t, err)
	assert.Empty(t, posters.removed)

	_, err = svc.Update(ctx, title.ID, TitlePatch{Poster: strPtr("https://cdn/posters/b.jpg")})
	require.NoError(t, err)
	assert.Equal(t, []string{"https://cdn/posters/a.jpg"}, posters.removed)

	require.NoError(t, svc.Delete(ctx, title.ID))
	assert.Equal(t, []string{"https://cdn/posters/a.jpg", "https://cdn/posters/b.jpg"}, posters.removed)
}

func TestTitlePosterMustBeURL(t *testing.T) {
	svc, db, posters := newTitleFixture(t)
	ctx := context.Background()
	title := testutil.CreateTitle(t, db, "Stalker", 1979, nil)

	_, err := svc.Update(ctx, title.ID, TitlePatch{Poster: strPtr("not a url")})
	requireFieldError(t, err, "poster", validation.MsgURL)

	_, err = svc.Update(ctx, title.ID, TitlePatch{Poster: strPtr("https://cdn/posters/a.jpg")})
	require.NoError(t, err)

	cleared, err := svc.Update(ctx, title.ID, TitlePatch{Poster: strPtr("")})
	require.NoError(t, err)
	assert.Empty(t, cleared.Poster)
	assert.Equal(t, []string{"https://cdn/posters/a.jpg"}, posters.removed)
}

func TestTitleMissing(t *testing.T) {
	svc, _, _ := newTitleFixture(t)
	ctx := context.Background()

	_, err := svc.Get(ctx, 99)
	assert.True(t, errors.Is(err, errs.ErrNotFound))
	_, err = svc.Update(ctx, 99, TitlePatch{Name: strPtr("x")})
	assert.True(t, errors.Is(err, errs.ErrNotFound))
	assert.True(t, errors.Is(svc.Delete(ctx, 99), errs.ErrNotFound))
}

func TestCategoryAndGenreServices(t *testing.T) {
	db := testutil.NewDatabase(t)
	categories := NewCategoryService(repository.NewCategoryRepository(db), testutil.Logger())
	genres := NewGenreService(repository.NewGenreRepository(db), testutil.Logger())
	ctx := context.Background()

	_, err := categories.Create(ctx, SlugInput{Name: "Книги", Slug: "books"})
	require.NoError(t, err)
	_, err = categories.Create(ctx, SlugInput{Name: "Другие книги", Slug: "books"})
	requireFieldError(t, err, "slug", MsgCategorySlugTaken)
	_, err = categories.Create(ctx, SlugInput{Name: "Плохой", Slug: "bad slug"})
	requireFieldError(t, err, "slug", validation.MsgSlug)

	_, err = genres.Create(ctx, SlugInput{Name: "Драма", Slug: "drama"})
	require.NoError(t, err)
	_, err = genres.Create(ctx, SlugInput{Name: "Драма", Slug: "drama"})
	requireFieldError(t, err, "slug", MsgGenreSlugTaken)

	list, total, err := categories.List(ctx, "BOO", repository.Page{Number: 1, Size: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, "books", list[0].Slug)

	require.NoError(t, categories.Delete(ctx, "books"))
	assert.True(t, errors.Is(categories.Delete(ctx, "books"), errs.ErrNotFound))
	require.NoError(t, genres.Delete(ctx, "drama"))
	assert.True(t, errors.Is(genres.Delete(ctx, "drama"), errs.ErrNotFound))
}

func TestCategoryDeleteKeepsTitle(t *testing.T) {
	svc, db, _ := newTitleFixture(t)
	categories := NewCategoryService(repository.NewCategoryRepository(db), testutil.Logger())
	books := testutil.CreateCategory(t, db, "Книги", "books")
	title := testutil.CreateTitle(t, db, "Solaris", 1961, books)

	require.NoError(t, categories.Delete(context.Background(), "books"))

	got, err := svc.Get(context.Background(), title.ID)
	require.NoError(t, err)
	assert.Nil(t, got.CategoryID)
}
