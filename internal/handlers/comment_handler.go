package handlers

import (
	"yamdb-backend/internal/middleware"
	"yamdb-backend/internal/models"
	"yamdb-backend/internal/permissions"
	"yamdb-backend/internal/services"
	"yamdb-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type CommentHandler struct {
	service  services.CommentService
	pageSize int
	logger   *logrus.Logger
}

func NewCommentHandler(service services.CommentService, pageSize int, logger *logrus.Logger) *CommentHandler {
	return &CommentHandler{
		service:  service,
		pageSize: pageSize,
		logger:   logger,
	}
}

// review resolves the parent review from the path.
func (h *CommentHandler) review(c *fiber.Ctx) (*models.Review, error) {
	titleID, err := parseID(c, "title_id")
	if err != nil {
		return nil, err
	}
	reviewID, err := parseID(c, "review_id")
	if err != nil {
		return nil, err
	}
	return h.service.Review(c.UserContext(), titleID, reviewID)
}

func (h *CommentHandler) comment(c *fiber.Ctx) (*models.Comment, error) {
	review, err := h.review(c)
	if err != nil {
		return nil, err
	}
	commentID, err := parseID(c, "comment_id")
	if err != nil {
		return nil, err
	}
	return h.service.Get(c.UserContext(), review, commentID)
}

// List godoc
// @Summary List comments of a review
// @Tags comments
// @Produce json
// @Param title_id path int true "Title ID"
// @Param review_id path int true "Review ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} utils.PageResponse{results=[]CommentResponse}
// @Failure 404 {object} utils.DetailResponse
// @Router /titles/{title_id}/reviews/{review_id}/comments/ [get]
func (h *CommentHandler) List(c *fiber.Ctx) error {
	review, err := h.review(c)
	if err != nil {
		return RespondError(c, h.logger, err)
	}

	page := utils.PageFromQuery(c, h.pageSize)
	comments, total, err := h.service.List(c.UserContext(), review, page)
	if err != nil {
		return RespondError(c, h.logger, err)
	}
	return utils.PaginatedResponse(c, page, total, toCommentResponses(comments))
}

// Get godoc
// @Summary Get a comment
// @Tags comments
// @Produce json
// @Param title_id path int true "Title ID"
// @Param review_id path int true "Review ID"
// @Param comment_id path int true "Comment ID"
// @Success 200 {object} CommentResponse
// @Failure 404 {object} utils.DetailResponse
// @Router /titles/{title_id}/reviews/{review_id}/comments/{comment_id}/ [get]
func (h *CommentHandler) Get(c *fiber.Ctx) error {
	comment, err := h.comment(c)
	if err != nil {
		return RespondError(c, h.logger, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, toCommentResponse(comment))
}

// Create godoc
// @Summary Comment on a review
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param title_id path int true "Title ID"
// @Param review_id path int true "Review ID"
// @Param body body services.CommentInput true "Comment"
// @Success 201 {object} CommentResponse
// @Failure 400 {object} utils.ValidationResponse
// @Failure 401 {object} utils.DetailResponse
// @Failure 404 {object} utils.DetailResponse
// @Router /titles/{title_id}/reviews/{review_id}/comments/ [post]
func (h *CommentHandler) Create(c *fiber.Ctx) error {
	review, err := h.review(c)
	if err != nil {
		return RespondError(c, h.logger, err)
	}

	var in services.CommentInput
	if err := parseBody(c, &in); err != nil {
		return RespondError(c, h.logger, err)
	}

	comment, err := h.service.Create(c.UserContext(), review, middleware.CurrentUser(c), in)
	if err != nil {
		return RespondError(c, h.logger, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, toCommentResponse(comment))
}

// Update godoc
// @Summary Partially update a comment
// @Description Allowed to the author, moderators and admins
// @Tags comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param title_id path int true "Title ID"
// @Param review_id path int true "Review ID"
// @Param comment_id path int true "Comment ID"
// @Param body body services.CommentPatch true "Fields to change"
// @Success 200 {object} CommentResponse
// @Failure 403 {object} utils.DetailResponse
// @Failure 404 {object} utils.DetailResponse
// @Router /titles/{title_id}/reviews/{review_id}/comments/{comment_id}/ [patch]
func (h *CommentHandler) Update(c *fiber.Ctx) error {
	comment, err := h.comment(c)
	if err != nil {
		return RespondError(c, h.logger, err)
	}
	if err := permissions.CheckObject(permissions.AuthorModeratorAdminOrReadOnly{}, middleware.PolicyRequest(c), comment); err != nil {
		return RespondError(c, h.logger, err)
	}

	var patch services.CommentPatch
	if err := parseBody(c, &patch); err != nil {
		return RespondError(c, h.logger, err)
	}

	updated, err := h.service.Update(c.UserContext(), comment, patch)
	if err != nil {
		return RespondError(c, h.logger, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, toCommentResponse(updated))
}

// Delete godoc
// @Summary Delete a comment
// @Tags comments
// @Security BearerAuth
// @Param title_id path int true "Title ID"
// @Param review_id path int true "Review ID"
// @Param comment_id path int true "Comment ID"
// @Success 204
// @Failure 403 {object} utils.DetailResponse
// @Failure 404 {object} utils.DetailResponse
// @Router /titles/{title_id}/reviews/{review_id}/comments/{comment_id}/ [delete]
func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	comment, err := h.comment(c)
	if err != nil {
		return RespondError(c, h.logger, err)
	}
	if err := permissions.CheckObject(permissions.AuthorModeratorAdminOrReadOnly{}, middleware.PolicyRequest(c), comment); err != nil {
		return RespondError(c, h.logger, err)
	}

	if err := h.service.Delete(c.UserContext(), comment); err != nil {
		return RespondError(c, h.logger, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
