// Package middleware authenticates bearer tokens and applies request-level
// access policies.
package middleware

import (
	"strings"

	"yamdb-backend/internal/errs"
	"yamdb-backend/internal/models"
	"yamdb-backend/internal/permissions"
	"yamdb-backend/internal/repository"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const userKey = "user"

const (
	MsgTokenInvalid = "Given token not valid for any token type"
	MsgUserNotFound = "User not found"
)

// TokenVerifier resolves a bearer token to a user id.
type TokenVerifier interface {
	Verify(raw string) (uint, error)
}

// Authenticate attaches the bearer's user to the request. Requests without an
// Authorization header continue anonymously; a bad token is rejected with 401.
func Authenticate(tokens TokenVerifier, users repository.UserRepository, logger *logrus.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return c.Next()
		}

		scheme, raw, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(raw) == "" {
			return errs.Unauthenticated(MsgTokenInvalid)
		}

		userID, err := tokens.Verify(raw)
		if err != nil {
			logger.WithError(err).Debug("Rejected bearer token")
			return errs.Unauthenticated(MsgTokenInvalid)
		}

		user, err := users.FindByID(c.UserContext(), userID)
		if err != nil {
			return err
		}
		if user == nil {
			return errs.Unauthenticated(MsgUserNotFound)
		}

		c.Locals(userKey, user)
		return c.Next()
	}
}

// CurrentUser returns the authenticated caller or nil.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(userKey).(*models.User)
	return user
}

// PolicyRequest describes the call for permission checks.
func PolicyRequest(c *fiber.Ctx) permissions.Request {
	return permissions.Request{Method: c.Method(), User: CurrentUser(c)}
}

// Require rejects the request unless policy grants it at request level.
func Require(policy permissions.Policy) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := permissions.Check(policy, PolicyRequest(c)); err != nil {
			return err
		}
		return c.Next()
	}
}
