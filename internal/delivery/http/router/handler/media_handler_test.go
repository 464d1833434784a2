package handler

import (
	"bytes"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"bazaar/internal/delivery/http/middleware"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/infra/storage"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newUploadRequest(t *testing.T, fieldName string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(fieldName, "photo.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("fake jpeg bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/media/images", &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())

	return req
}

func TestMediaHandler_UploadImage(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	handler := NewMediaHandler(
		storage.NewWithBucket(bucket, "https://media.example.com"),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(newUploadRequest(t, "file"), rec)
	c.Set(middleware.KeyUserID, uuid.New())

	require.NoError(t, handler.UploadImage(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "https://media.example.com/uploads/")
	assert.Contains(t, rec.Body.String(), ".jpg")
}

func TestMediaHandler_UploadImage_MissingFile(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	handler := NewMediaHandler(
		storage.NewWithBucket(bucket, "https://media.example.com"),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(newUploadRequest(t, "wrong_field"), rec)
	c.Set(middleware.KeyUserID, uuid.New())

	require.NoError(t, handler.UploadImage(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMediaHandler_UploadImage_RequiresAuthenticatedActor(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	handler := NewMediaHandler(
		storage.NewWithBucket(bucket, "https://media.example.com"),
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(newUploadRequest(t, "file"), rec)

	err := handler.UploadImage(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAuthenticationRequired)
}
