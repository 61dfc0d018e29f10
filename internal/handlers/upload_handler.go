package handlers

import (
	"bollybuzz-backend/internal/services"
	"bollybuzz-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type UploadHandler struct {
	photos *services.PhotoStore
	logger *logrus.Logger
}

func NewUploadHandler(photos *services.PhotoStore, logger *logrus.Logger) *UploadHandler {
	return &UploadHandler{
		photos: photos,
		logger: logger,
	}
}

// PresignPhotoUpload godoc
// @Summary Presigned URL for a profile photo upload
// @Description The client PUTs the file to the presigned URL, then saves the public URL on the profile
// @Tags upload
// @Produce json
// @Param filename query string true "Original filename (extension is kept)"
// @Success 200 {object} utils.StandardResponse
// @Failure 400 {object} utils.StandardResponse
// @Router /upload/presign [get]
func (h *UploadHandler) PresignPhotoUpload(c *fiber.Ctx) error {
	filename := c.Query("filename")
	if filename == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "filename is required")
	}

	uploadURL, publicURL, err := h.photos.PresignUpload(c.Context(), filename)
	if err != nil {
		h.logger.WithError(err).Error("Failed to generate upload URL")
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to generate upload URL")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Upload URL generated successfully", fiber.Map{
		"upload_url": uploadURL,
		"public_url": publicURL,
	})
}
