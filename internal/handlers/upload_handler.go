package handlers

import (
	"yamdb-backend/internal/services"
	"yamdb-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type UploadHandler struct {
	posters services.PosterStorage
	logger  *logrus.Logger
}

// NewUploadHandler wires poster uploads. posters may be nil, in which case
// every request answers 503.
func NewUploadHandler(posters services.PosterStorage, logger *logrus.Logger) *UploadHandler {
	return &UploadHandler{
		posters: posters,
		logger:  logger,
	}
}

// PresignPoster godoc
// @Summary Get a presigned URL for a poster upload
// @Description The client PUTs the image to upload_url with the same Content-Type, then sets public_url as the title poster
// @Tags uploads
// @Produce json
// @Security BearerAuth
// @Param filename query string true "Filename"
// @Param contentType query string false "Content type" default(image/jpeg)
// @Success 200 {object} services.PosterUpload
// @Failure 400 {object} utils.ValidationResponse
// @Failure 403 {object} utils.DetailResponse
// @Failure 503 {object} utils.DetailResponse
// @Router /uploads/presign [get]
func (h *UploadHandler) PresignPoster(c *fiber.Ctx) error {
	if h.posters == nil {
		return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, MsgUploadsDisabled)
	}

	upload, err := h.posters.PresignPosterUpload(c.UserContext(), c.Query("filename"), c.Query("contentType", "image/jpeg"))
	if err != nil {
		return RespondError(c, h.logger, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, upload)
}
