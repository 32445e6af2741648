package handlers

import (
	"yamdb-backend/internal/middleware"
	"yamdb-backend/internal/permissions"
	"yamdb-backend/internal/services"
	"yamdb-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type ReviewHandler struct {
	service  services.ReviewService
	pageSize int
	logger   *logrus.Logger
}

func NewReviewHandler(service services.ReviewService, pageSize int, logger *logrus.Logger) *ReviewHandler {
	return &ReviewHandler{
		service:  service,
		pageSize: pageSize,
		logger:   logger,
	}
}

// List godoc
// @Summary List reviews of a title
// @Tags reviews
// @Produce json
// @Param title_id path int true "Title ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} utils.PageResponse{results=[]ReviewResponse}
// @Failure 404 {object} utils.DetailResponse
// @Router /titles/{title_id}/reviews/ [get]
func (h *ReviewHandler) List(c *fiber.Ctx) error {
	titleID, err := parseID(c, "title_id")
	if err != nil {
		return RespondError(c, h.logger, err)
	}
	title, err := h.service.Title(c.UserContext(), titleID)
	if err != nil {
		return RespondError(c, h.logger, err)
	}

	page := utils.PageFromQuery(c, h.pageSize)
	reviews, total, err := h.service.List(c.UserContext(), title, page)
	if err != nil {
		return RespondError(c, h.logger, err)
	}
	return utils.PaginatedResponse(c, page, total, toReviewResponses(reviews))
}

// Get godoc
// @Summary Get a review
// @Tags reviews
// @Produce json
// @Param title_id path int true "Title ID"
// @Param review_id path int true "Review ID"
// @Success 200 {object} ReviewResponse
// @Failure 404 {object} utils.DetailResponse
// @Router /titles/{title_id}/reviews/{review_id}/ [get]
func (h *ReviewHandler) Get(c *fiber.Ctx) error {
	titleID, err := parseID(c, "title_id")
	if err != nil {
		return RespondError(c, h.logger, err)
	}
	reviewID, err := parseID(c, "review_id")
	if err != nil {
		return RespondError(c, h.logger, err)
	}

	title, err := h.service.Title(c.UserContext(), titleID)
	if err != nil {
		return RespondError(c, h.logger, err)
	}
	review, err := h.service.Get(c.UserContext(), title, reviewID)
	if err != nil {
		return RespondError(c, h.logger, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, toReviewResponse(review))
}

// Create godoc
// @Summary Review a title
// @Description One review per user and title
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param title_id path int true "Title ID"
// @Param body body services.ReviewInput true "Review"
// @Success 201 {object} ReviewResponse
// @Failure 400 {object} utils.ValidationResponse
// @Failure 401 {object} utils.DetailResponse
// @Failure 404 {object} utils.DetailResponse
// @Router /titles/{title_id}/reviews/ [post]
func (h *ReviewHandler) Create(c *fiber.Ctx) error {
	titleID, err := parseID(c, "title_id")
	if err != nil {
		return RespondError(c, h.logger, err)
	}
	title, err := h.service.Title(c.UserContext(), titleID)
	if err != nil {
		return RespondError(c, h.logger, err)
	}

	var in services.ReviewInput
	if err := parseBody(c, &in); err != nil {
		return RespondError(c, h.logger, err)
	}

	review, err := h.service.Create(c.UserContext(), title, middleware.CurrentUser(c), in)
	if err != nil {
		return RespondError(c, h.logger, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, toReviewResponse(review))
}

// Update godoc
// @Summary Partially update a review
// @Description Allowed to the author, moderators and admins
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param title_id path int true "Title ID"
// @Param review_id path int true "Review ID"
// @Param body body services.ReviewPatch true "Fields to change"
// @Success 200 {object} ReviewResponse
// @Failure 400 {object} utils.ValidationResponse
// @Failure 403 {object} utils.DetailResponse
// @Failure 404 {object} utils.DetailResponse
// @Router /titles/{title_id}/reviews/{review_id}/ [patch]
func (h *ReviewHandler) Update(c *fiber.Ctx) error {
	titleID, err := parseID(c, "title_id")
	if err != nil {
		return RespondError(c, h.logger, err)
	}
	reviewID, err := parseID(c, "review_id")
	if err != nil {
		return RespondError(c, h.logger, err)
	}

	title, err := h.service.Title(c.UserContext(), titleID)
	if err != nil {
		return RespondError(c, h.logger, err)
	}
	review, err := h.service.Get(c.UserContext(), title, reviewID)
	if err != nil {
		return RespondError(c, h.logger, err)
	}
	if err := permissions.CheckObject(permissions.AuthorModeratorAdminOrReadOnly{}, middleware.PolicyRequest(c), review); err != nil {
		return RespondError(c, h.logger, err)
	}

	var patch services.ReviewPatch
	if err := parseBody(c, &patch); err != nil {
		return RespondError(c, h.logger, err)
	}

	updated, err := h.service.Update(c.UserContext(), review, patch)
	if err != nil {
		return RespondError(c, h.logger, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, toReviewResponse(updated))
}

// Delete godoc
// @Summary Delete a review with its comments
// @Tags reviews
// @Security BearerAuth
// @Param title_id path int true "Title ID"
// @Param review_id path int true "Review ID"
// @Success 204
// @Failure 403 {object} utils.DetailResponse
// @Failure 404 {object} utils.DetailResponse
// @Router /titles/{title_id}/reviews/{review_id}/ [delete]
func (h *ReviewHandler) Delete(c *fiber.Ctx) error {
	titleID, err := parseID(c, "title_id")
	if err != nil {
		return RespondError(c, h.logger, err)
	}
	reviewID, err := parseID(c, "review_id")
	if err != nil {
		return RespondError(c, h.logger, err)
	}

	title, err := h.service.Title(c.UserContext(), titleID)
	if err != nil {
		return RespondError(c, h.logger, err)
	}
	review, err := h.service.Get(c.UserContext(), title, reviewID)
	if err != nil {
		return RespondError(c, h.logger, err)
	}
	if err := permissions.CheckObject(permissions.AuthorModeratorAdminOrReadOnly{}, middleware.PolicyRequest(c), review); err != nil {
		return RespondError(c, h.logger, err)
	}

	if err := h.service.Delete(c.UserContext(), review); err != nil {
		return RespondError(c, h.logger, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
