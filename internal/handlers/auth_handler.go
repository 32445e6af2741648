package handlers

import (
	"yamdb-backend/internal/services"
	"yamdb-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	service services.AuthService
	logger  *logrus.Logger
}

func NewAuthHandler(service services.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger,
	}
}

// Signup godoc
// @Summary Request a confirmation code
// @Description Registers the user when needed and emails a new confirmation code
// @Tags auth
// @Accept json
// @Produce json
// @Param body body services.SignupInput true "Username and email"
// @Success 200 {object} SignupResponse
// @Failure 400 {object} utils.ValidationResponse
// @Router /auth/signup/ [post]
func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var in services.SignupInput
	if err := parseBody(c, &in); err != nil {
		return RespondError(c, h.logger, err)
	}

	user, err := h.service.Signup(c.UserContext(), in)
	if err != nil {
		return RespondError(c, h.logger, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, SignupResponse{
		Username: user.Username,
		Email:    user.Email,
	})
}

// Token godoc
// @Summary Exchange a confirmation code for a token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body services.TokenInput true "Username and confirmation code"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} map[string]string "Wrong confirmation code"
// @Failure 404 {object} utils.DetailResponse "Unknown username"
// @Router /auth/token/ [post]
func (h *AuthHandler) Token(c *fiber.Ctx) error {
	var in services.TokenInput
	if err := parseBody(c, &in); err != nil {
		return RespondError(c, h.logger, err)
	}

	signed, err := h.service.ObtainToken(c.UserContext(), in)
	if err != nil {
		return RespondError(c, h.logger, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, TokenResponse{Token: signed})
}
