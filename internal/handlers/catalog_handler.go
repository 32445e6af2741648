package handlers

import (
	"yamdb-backend/internal/services"
	"yamdb-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type CategoryHandler struct {
	service  services.CategoryService
	pageSize int
	logger   *logrus.Logger
}

func NewCategoryHandler(service services.CategoryService, pageSize int, logger *logrus.Logger) *CategoryHandler {
	return &CategoryHandler{
		service:  service,
		pageSize: pageSize,
		logger:   logger,
	}
}

// List godoc
// @Summary List categories
// @Tags categories
// @Produce json
// @Param search query string false "Name contains"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} utils.PageResponse{results=[]models.Category}
// @Router /categories/ [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	page := utils.PageFromQuery(c, h.pageSize)

	categories, total, err := h.service.List(c.UserContext(), c.Query("search"), page)
	if err != nil {
		return RespondError(c, h.logger, err)
	}
	return utils.PaginatedResponse(c, page, total, categories)
}

// Create godoc
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.SlugInput true "Category"
// @Success 201 {object} models.Category
// @Failure 400 {object} utils.ValidationResponse
// @Failure 403 {object} utils.DetailResponse
// @Router /categories/ [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in services.SlugInput
	if err := parseBody(c, &in); err != nil {
		return RespondError(c, h.logger, err)
	}

	category, err := h.service.Create(c.UserContext(), in)
	if err != nil {
		return RespondError(c, h.logger, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, category)
}

// Delete godoc
// @Summary Delete a category
// @Description Titles of the category keep existing without one
// @Tags categories
// @Security BearerAuth
// @Param slug path string true "Category slug"
// @Success 204
// @Failure 403 {object} utils.DetailResponse
// @Failure 404 {object} utils.DetailResponse
// @Router /categories/{slug}/ [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("slug")); err != nil {
		return RespondError(c, h.logger, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

type GenreHandler struct {
	service  services.GenreService
	pageSize int
	logger   *logrus.Logger
}

func NewGenreHandler(service services.GenreService, pageSize int, logger *logrus.Logger) *GenreHandler {
	return &GenreHandler{
		service:  service,
		pageSize: pageSize,
		logger:   logger,
	}
}

// List godoc
// @Summary List genres
// @Tags genres
// @Produce json
// @Param search query string false "Name contains"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} utils.PageResponse{results=[]models.Genre}
// @Router /genres/ [get]
func (h *GenreHandler) List(c *fiber.Ctx) error {
	page := utils.PageFromQuery(c, h.pageSize)

	genres, total, err := h.service.List(c.UserContext(), c.Query("search"), page)
	if err != nil {
		return RespondError(c, h.logger, err)
	}
	return utils.PaginatedResponse(c, page, total, genres)
}

// Create godoc
// @Summary Create a genre
// @Tags genres
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.SlugInput true "Genre"
// @Success 201 {object} models.Genre
// @Failure 400 {object} utils.ValidationResponse
// @Failure 403 {object} utils.DetailResponse
// @Router /genres/ [post]
func (h *GenreHandler) Create(c *fiber.Ctx) error {
	var in services.SlugInput
	if err := parseBody(c, &in); err != nil {
		return RespondError(c, h.logger, err)
	}

	genre, err := h.service.Create(c.UserContext(), in)
	if err != nil {
		return RespondError(c, h.logger, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, genre)
}

// Delete godoc
// @Summary Delete a genre
// @Tags genres
// @Security BearerAuth
// @Param slug path string true "Genre slug"
// @Success 204
// @Failure 403 {object} utils.DetailResponse
// @Failure 404 {object} utils.DetailResponse
// @Router /genres/{slug}/ [delete]
func (h *GenreHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("slug")); err != nil {
		return RespondError(c, h.logger, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
