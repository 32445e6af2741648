package routes

import (
	"yamdb-backend/internal/handlers"
	"yamdb-backend/internal/middleware"
	"yamdb-backend/internal/permissions"

	"github.com/gofiber/fiber/v2"
)

// Handlers groups everything mounted under /api/v1.
type Handlers struct {
	Auth     *handlers.AuthHandler
	User     *handlers.UserHandler
	Category *handlers.CategoryHandler
	Genre    *handlers.GenreHandler
	Title    *handlers.TitleHandler
	Review   *handlers.ReviewHandler
	Comment  *handlers.CommentHandler
	Upload   *handlers.UploadHandler
}

// Setup mounts the API. auth runs before every route and attaches the
// bearer's user when one is given.
func Setup(app *fiber.App, h Handlers, auth fiber.Handler) {
	api := app.Group("/api")
	v1 := api.Group("/v1", auth)

	adminOnly := middleware.Require(permissions.AdminOnly{})
	adminOrReadOnly := middleware.Require(permissions.AdminOrReadOnly{})
	authorOrReadOnly := middleware.Require(permissions.AuthorModeratorAdminOrReadOnly{})

	authGroup := v1.Group("/auth")
	{
		authGroup.Post("/signup", h.Auth.Signup)
		authGroup.Post("/token", h.Auth.Token)
	}

	users := v1.Group("/users")
	{
		// /me must be registered before /:username.
		me := middleware.Require(permissions.SelfEditOnly{})
		users.Get("/me", me, h.User.Me)
		users.Patch("/me", me, h.User.UpdateMe)

		users.Get("/", adminOnly, h.User.List)
		users.Post("/", adminOnly, h.User.Create)
		users.Get("/:username", adminOnly, h.User.Get)
		users.Patch("/:username", adminOnly, h.User.Update)
		users.Delete("/:username", adminOnly, h.User.Delete)
	}

	categories := v1.Group("/categories", adminOrReadOnly)
	{
		categories.Get("/", h.Category.List)
		categories.Post("/", h.Category.Create)
		categories.Delete("/:slug", h.Category.Delete)
	}

	genres := v1.Group("/genres", adminOrReadOnly)
	{
		genres.Get("/", h.Genre.List)
		genres.Post("/", h.Genre.Create)
		genres.Delete("/:slug", h.Genre.Delete)
	}

	titles := v1.Group("/titles")
	{
		titles.Get("/", adminOrReadOnly, h.Title.List)
		titles.Post("/", adminOrReadOnly, h.Title.Create)
		titles.Get("/:title_id", adminOrReadOnly, h.Title.Get)
		titles.Patch("/:title_id", adminOrReadOnly, h.Title.Update)
		titles.Delete("/:title_id", adminOrReadOnly, h.Title.Delete)
	}

	reviews := titles.Group("/:title_id/reviews", authorOrReadOnly)
	{
		reviews.Get("/", h.Review.List)
		reviews.Post("/", h.Review.Create)
		reviews.Get("/:review_id", h.Review.Get)
		reviews.Patch("/:review_id", h.Review.Update)
		reviews.Delete("/:review_id", h.Review.Delete)
	}

	comments := reviews.Group("/:review_id/comments")
	{
		comments.Get("/", h.Comment.List)
		comments.Post("/", h.Comment.Create)
		comments.Get("/:comment_id", h.Comment.Get)
		comments.Patch("/:comment_id", h.Comment.Update)
		comments.Delete("/:comment_id", h.Comment.Delete)
	}

	uploads := v1.Group("/uploads", adminOnly)
	{
		uploads.Get("/presign", h.Upload.PresignPoster)
	}
}
