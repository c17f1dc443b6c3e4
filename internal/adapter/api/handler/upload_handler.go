package handler

import (
	"fmt"

	"github.com/labstack/echo/v4"

	"greengarden/internal/domain/service"
	"greengarden/pkg/errors"
	"greengarden/pkg/logger"
	"greengarden/pkg/response"
)

type UploadHandler struct {
	storage     service.FileStorage
	maxFileSize int64
}

var uploadHandler *UploadHandler

func SetupUploadHandler(storage service.FileStorage) {
	uploadHandler = &UploadHandler{
		storage:     storage,
		maxFileSize: 5 * 1024 * 1024,
	}
}

func GetUploadHandler() *UploadHandler {
	return uploadHandler
}

// UploadPlantImage stores one catalog image and returns its public URL. The
// client then passes the URL in the plant's images list.
func (h *UploadHandler) UploadPlantImage(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.BadRequest("Missing or invalid file", err))
	}

	if file.Size > h.maxFileSize {
		return response.Error(c, errors.BadRequest(fmt.Sprintf("File size exceeds maximum allowed (%dMB)", h.maxFileSize/(1024*1024)), nil))
	}

	fileType := file.Header.Get("Content-Type")
	if !isAllowedImageType(fileType) {
		return response.Error(c, errors.BadRequest("File type not supported", nil))
	}

	src, err := file.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Unable to read file", err))
	}
	defer src.Close()

	url, err := h.storage.UploadPlantImage(c.Request().Context(), src, fileType)
	if err != nil {
		logger.Error("Plant image upload failed: %v", err)
		return response.Error(c, errors.Internal("Failed to upload file", err))
	}

	return response.Created(c, map[string]string{"url": url})
}

func isAllowedImageType(fileType string) bool {
	switch fileType {
	case "image/jpeg", "image/jpg", "image/png", "image/webp":
		return true
	}
	return false
}
