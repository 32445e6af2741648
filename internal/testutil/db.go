// Package testutil builds in-memory fixtures for package tests.
package testutil

import (
	"io"
	"testing"
	"time"

	"yamdb-backend/internal/config"
	"yamdb-backend/internal/database"
	"yamdb-backend/internal/models"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewDatabase opens a private in-memory SQLite database with foreign keys
// enforced and the schema migrated.
func NewDatabase(t *testing.T) *database.Database {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), database.GormConfig())
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	// Every new connection to :memory: would see an empty database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db := database.New(gdb, config.DatabaseConfig{QueryTimeout: 5 * time.Second})
	require.NoError(t, db.AutoMigrate())
	return db
}

// Logger discards output so test runs stay quiet.
func Logger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func CreateUser(t *testing.T, db *database.Database, username string, role models.Role) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Role:     role,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func CreateCategory(t *testing.T, db *database.Database, name, slug string) *models.Category {
	t.Helper()
	category := &models.Category{Name: name, Slug: slug}
	require.NoError(t, db.Create(category).Error)
	return category
}

func CreateGenre(t *testing.T, db *database.Database, name, slug string) *models.Genre {
	t.Helper()
	genre := &models.Genre{Name: name, Slug: slug}
	require.NoError(t, db.Create(genre).Error)
	return genre
}

func CreateTitle(t *testing.T, db *database.Database, name string, year int, category *models.Category, genres ...models.Genre) *models.Title {
	t.Helper()
	title := &models.Title{Name: name, Year: year, Genres: genres}
	if category != nil {
		title.CategoryID = &category.ID
	}
	require.NoError(t, db.Create(title).Error)
	return title
}

func CreateReview(t *testing.T, db *database.Database, title *models.Title, author *models.User, score int) *models.Review {
	t.Helper()
	review := &models.Review{TitleID: title.ID, AuthorID: author.ID, Text: "review by " + author.Username, Score: score}
	require.NoError(t, db.Create(review).Error)
	return review
}

func CreateComment(t *testing.T, db *database.Database, review *models.Review, author *models.User) *models.Comment {
	t.Helper()
	comment := &models.Comment{ReviewID: review.ID, AuthorID: author.ID, Text: "comment by " + author.Username}
	require.NoError(t, db.Create(comment).Error)
	return comment
}
