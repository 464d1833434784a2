package handler

import (
	"log/slog"
	"net/http"
	"path"

	"bazaar/internal/delivery/http/response"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// maxUploadBytes caps a single image upload.
const maxUploadBytes = 10 << 20

// MediaHandler stores uploaded images and hands back their public URLs.
// Listings and shops then reference those URLs on create/update.
type MediaHandler struct {
	storage service.ImageStorage
	logger  *slog.Logger
}

// NewMediaHandler is the constructor for MediaHandler, injected by Fx.
func NewMediaHandler(storage service.ImageStorage, logger *slog.Logger) *MediaHandler {
	return &MediaHandler{
		storage: storage,
		logger:  logger,
	}
}

// UploadImage accepts a multipart "file" part, stores it under a fresh key and
// returns the public URL.
func (h *MediaHandler) UploadImage(c echo.Context) error {
	if _, err := actorID(c); err != nil {
		return errors.WithStack(err)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Missing file upload")
	}
	if fileHeader.Size > maxUploadBytes {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails("file exceeds the upload size limit"))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer src.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	key := "uploads/" + uuid.NewString() + path.Ext(fileHeader.Filename)

	url, err := h.storage.Store(c.Request().Context(), key, contentType, src)
	if err != nil {
		h.logger.Error("Failed to store uploaded image", slog.String("key", key), slog.Any("error", err))

		return errors.Wrap(err, "failed to store uploaded image")
	}

	return response.Success(c, http.StatusCreated, map[string]string{"url": url}, "Image uploaded successfully")
}
