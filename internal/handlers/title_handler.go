package handlers

import (
	"yamdb-backend/internal/models"
	"yamdb-backend/internal/services"
	"yamdb-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type TitleHandler struct {
	service  services.TitleService
	pageSize int
	logger   *logrus.Logger
}

func NewTitleHandler(service services.TitleService, pageSize int, logger *logrus.Logger) *TitleHandler {
	return &TitleHandler{
		service:  service,
		pageSize: pageSize,
		logger:   logger,
	}
}

// List godoc
// @Summary List titles
// @Description Filters combine with AND
// @Tags titles
// @Produce json
// @Param name query string false "Name contains, case-insensitive"
// @Param year query int false "Exact year"
// @Param category query string false "Category slug"
// @Param genre query string false "Genre slug"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} utils.PageResponse{results=[]TitleReadResponse}
// @Router /titles/ [get]
func (h *TitleHandler) List(c *fiber.Ctx) error {
	page := utils.PageFromQuery(c, h.pageSize)
	filter := models.TitleFilter{
		Name:     c.Query("name"),
		Year:     c.QueryInt("year"),
		Category: c.Query("category"),
		Genre:    c.Query("genre"),
	}

	titles, total, err := h.service.List(c.UserContext(), filter, page)
	if err != nil {
		return RespondError(c, h.logger, err)
	}
	return utils.PaginatedResponse(c, page, total, toTitleReads(titles))
}

// Get godoc
// @Summary Get a title
// @Tags titles
// @Produce json
// @Param title_id path int true "Title ID"
// @Success 200 {object} TitleReadResponse
// @Failure 404 {object} utils.DetailResponse
// @Router /titles/{title_id}/ [get]
func (h *TitleHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "title_id")
	if err != nil {
		return RespondError(c, h.logger, err)
	}

	title, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return RespondError(c, h.logger, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, toTitleRead(title))
}

// Create godoc
// @Summary Create a title
// @Description Genres and category are referenced by slug
// @Tags titles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.TitleInput true "Title"
// @Success 201 {object} TitleWriteResponse
// @Failure 400 {object} utils.ValidationResponse
// @Failure 403 {object} utils.DetailResponse
// @Router /titles/ [post]
func (h *TitleHandler) Create(c *fiber.Ctx) error {
	var in services.TitleInput
	if err := parseBody(c, &in); err != nil {
		return RespondError(c, h.logger, err)
	}

	title, err := h.service.Create(c.UserContext(), in)
	if err != nil {
		return RespondError(c, h.logger, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, toTitleWrite(title))
}

// Update godoc
// @Summary Partially update a title
// @Tags titles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param title_id path int true "Title ID"
// @Param body body services.TitlePatch true "Fields to change"
// @Success 200 {object} TitleWriteResponse
// @Failure 400 {object} utils.ValidationResponse
// @Failure 403 {object} utils.DetailResponse
// @Failure 404 {object} utils.DetailResponse
// @Router /titles/{title_id}/ [patch]
func (h *TitleHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "title_id")
	if err != nil {
		return RespondError(c, h.logger, err)
	}

	var patch services.TitlePatch
	if err := parseBody(c, &patch); err != nil {
		return RespondError(c, h.logger, err)
	}

	title, err := h.service.Update(c.UserContext(), id, patch)
	if err != nil {
		return RespondError(c, h.logger, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, toTitleWrite(title))
}

// Delete godoc
// @Summary Delete a title with its reviews and comments
// @Tags titles
// @Security BearerAuth
// @Param title_id path int true "Title ID"
// @Success 204
// @Failure 403 {object} utils.DetailResponse
// @Failure 404 {object} utils.DetailResponse
// @Router /titles/{title_id}/ [delete]
func (h *TitleHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "title_id")
	if err != nil {
		return RespondError(c, h.logger, err)
	}

	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return RespondError(c, h.logger, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
