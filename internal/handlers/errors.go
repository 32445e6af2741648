package handlers

import (
	"errors"

	"yamdb-backend/internal/errs"
	"yamdb-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const (
	MsgNotFound        = "Not found."
	MsgInvalidBody     = "Invalid request body"
	MsgInternalError   = "Internal server error"
	MsgUploadsDisabled = "Poster uploads are not configured."
)

// RespondError renders err with the status its kind maps to. Unknown errors
// are logged and reported as 500.
func RespondError(c *fiber.Ctx, logger *logrus.Logger, err error) error {
	var (
		validationErr *errs.ValidationError
		fieldErr      *errs.FieldError
		permissionErr *errs.PermissionDeniedError
		authErr       *errs.AuthenticationError
		fiberErr      *fiber.Error
	)

	switch {
	case errors.As(err, &validationErr):
		return utils.ValidationErrorResponse(c, validationErr.Fields)
	case errors.As(err, &fieldErr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{fieldErr.Field: fieldErr.Message})
	case errors.Is(err, errs.ErrNotFound):
		return utils.ErrorResponse(c, fiber.StatusNotFound, MsgNotFound)
	case errors.As(err, &permissionErr):
		return utils.ErrorResponse(c, fiber.StatusForbidden, permissionErr.Message)
	case errors.As(err, &authErr):
		c.Set(fiber.HeaderWWWAuthenticate, `Bearer realm="api"`)
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, authErr.Message)
	case errors.As(err, &fiberErr):
		return utils.ErrorResponse(c, fiberErr.Code, fiberErr.Message)
	}

	logger.WithError(err).WithFields(logrus.Fields{
		"method": c.Method(),
		"path":   c.Path(),
	}).Error("Request failed")
	return utils.ErrorResponse(c, fiber.StatusInternalServerError, MsgInternalError)
}

// ErrorHandler is installed on the app so errors returned by middleware get
// the same treatment as those from handlers.
func ErrorHandler(logger *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		return RespondError(c, logger, err)
	}
}

func parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := c.ParamsInt(param)
	if err != nil || id <= 0 {
		return 0, errs.NotFound(param)
	}
	return uint(id), nil
}

func parseBody(c *fiber.Ctx, out interface{}) error {
	if err := c.BodyParser(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, MsgInvalidBody)
	}
	return nil
}
