package handlers

import (
	"yamdb-backend/internal/middleware"
	"yamdb-backend/internal/permissions"
	"yamdb-backend/internal/services"
	"yamdb-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type UserHandler struct {
	service  services.UserService
	pageSize int
	logger   *logrus.Logger
}

func NewUserHandler(service services.UserService, pageSize int, logger *logrus.Logger) *UserHandler {
	return &UserHandler{
		service:  service,
		pageSize: pageSize,
		logger:   logger,
	}
}

// List godoc
// @Summary List users
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param search query string false "Username contains"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} utils.PageResponse{results=[]UserResponse}
// @Failure 403 {object} utils.DetailResponse
// @Router /users/ [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	page := utils.PageFromQuery(c, h.pageSize)

	users, total, err := h.service.List(c.UserContext(), c.Query("search"), page)
	if err != nil {
		return RespondError(c, h.logger, err)
	}

	return utils.PaginatedResponse(c, page, total, toUserResponses(users))
}

// Create godoc
// @Summary Create a user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.UserInput true "User"
// @Success 201 {object} UserResponse
// @Failure 400 {object} utils.ValidationResponse
// @Failure 403 {object} utils.DetailResponse
// @Router /users/ [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in services.UserInput
	if err := parseBody(c, &in); err != nil {
		return RespondError(c, h.logger, err)
	}

	user, err := h.service.Create(c.UserContext(), in)
	if err != nil {
		return RespondError(c, h.logger, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, toUserResponse(user))
}

// Get godoc
// @Summary Get a user by username
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param username path string true "Username"
// @Success 200 {object} UserResponse
// @Failure 403 {object} utils.DetailResponse
// @Failure 404 {object} utils.DetailResponse
// @Router /users/{username}/ [get]
func (h *UserHandler) Get(c *fiber.Ctx) error {
	user, err := h.service.Get(c.UserContext(), c.Params("username"))
	if err != nil {
		return RespondError(c, h.logger, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, toUserResponse(user))
}

// Update godoc
// @Summary Partially update a user
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param username path string true "Username"
// @Param body body services.UserPatch true "Fields to change"
// @Success 200 {object} UserResponse
// @Failure 400 {object} utils.ValidationResponse
// @Failure 403 {object} utils.DetailResponse
// @Failure 404 {object} utils.DetailResponse
// @Router /users/{username}/ [patch]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var patch services.UserPatch
	if err := parseBody(c, &patch); err != nil {
		return RespondError(c, h.logger, err)
	}

	user, err := h.service.Update(c.UserContext(), c.Params("username"), patch)
	if err != nil {
		return RespondError(c, h.logger, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, toUserResponse(user))
}

// Delete godoc
// @Summary Delete a user
// @Tags users
// @Security BearerAuth
// @Param username path string true "Username"
// @Success 204
// @Failure 403 {object} utils.DetailResponse
// @Failure 404 {object} utils.DetailResponse
// @Router /users/{username}/ [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("username")); err != nil {
		return RespondError(c, h.logger, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Me godoc
// @Summary Get own profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} UserResponse
// @Failure 403 {object} utils.DetailResponse
// @Router /users/me/ [get]
func (h *UserHandler) Me(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if err := permissions.CheckObject(permissions.SelfEditOnly{}, middleware.PolicyRequest(c), user); err != nil {
		return RespondError(c, h.logger, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, toUserResponse(user))
}

// UpdateMe godoc
// @Summary Update own profile
// @Description The role field is read-only here and ignored
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.UserPatch true "Fields to change"
// @Success 200 {object} UserResponse
// @Failure 400 {object} utils.ValidationResponse
// @Failure 403 {object} utils.DetailResponse
// @Router /users/me/ [patch]
func (h *UserHandler) UpdateMe(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)
	if err := permissions.CheckObject(permissions.SelfEditOnly{}, middleware.PolicyRequest(c), user); err != nil {
		return RespondError(c, h.logger, err)
	}

	var patch services.UserPatch
	if err := parseBody(c, &patch); err != nil {
		return RespondError(c, h.logger, err)
	}

	updated, err := h.service.UpdateSelf(c.UserContext(), user, patch)
	if err != nil {
		return RespondError(c, h.logger, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, toUserResponse(updated))
}
