package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/validator"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubUserUsecase returns canned results so handler tests stay focused on
// binding, validation and the response envelope.
type stubUserUsecase struct {
	registerOutput *usecase.AuthOutput
	registerErr    error
	profileOutput  *usecase.UserOutput
	profileErr     error
}

func (s *stubUserUsecase) Register(_ context.Context, _ *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	return s.registerOutput, s.registerErr
}

func (s *stubUserUsecase) Login(_ context.Context, _ *usecase.LoginInput) (*usecase.AuthOutput, error) {
	return s.registerOutput, s.registerErr
}

func (s *stubUserUsecase) GetProfile(_ context.Context, _ uuid.UUID) (*usecase.UserOutput, error) {
	return s.profileOutput, s.profileErr
}

func (s *stubUserUsecase) UpdateProfile(_ context.Context, _ uuid.UUID, _ *usecase.UpdateProfileInput) (*usecase.UserOutput, error) {
	return s.profileOutput, s.profileErr
}

func (s *stubUserUsecase) Verify(_ context.Context, _ uuid.UUID) (*usecase.UserOutput, error) {
	return s.profileOutput, s.profileErr
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestUserHandler_Register_Success(t *testing.T) {
	userID := uuid.New()
	stub := &stubUserUsecase{
		registerOutput: &usecase.AuthOutput{
			AccessToken: "token",
			User:        &usecase.UserOutput{ID: userID, Username: "alice", UserType: "buyer"},
		},
	}
	handler := NewUserHandler(stub, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newTestContext(t, http.MethodPost, "/api/users/register",
		`{"username":"alice","email":"alice@example.com","password":"s3cretpass"}`)

	require.NoError(t, handler.Register(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	responseBody := rec.Body.String()
	assert.Contains(t, responseBody, `"success":true`)
	assert.Contains(t, responseBody, `"access_token":"token"`)
	assert.Contains(t, responseBody, `"username":"alice"`)
}

func TestUserHandler_Register_InvalidPayload(t *testing.T) {
	handler := NewUserHandler(&stubUserUsecase{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	// Email and password are missing, so validation fails before the use case runs.
	c, _ := newTestContext(t, http.MethodPost, "/api/users/register", `{"username":"alice"}`)

	err := handler.Register(c)

	require.Error(t, err)
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
}

func TestUserHandler_Register_PropagatesUsecaseError(t *testing.T) {
	stub := &stubUserUsecase{
		registerErr: domainerrors.ErrUserAlreadyExists.WrapMessage("email or username already exists"),
	}
	handler := NewUserHandler(stub, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, _ := newTestContext(t, http.MethodPost, "/api/users/register",
		`{"username":"alice","email":"alice@example.com","password":"s3cretpass"}`)

	err := handler.Register(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserHandler_GetProfile_RequiresAuthenticatedActor(t *testing.T) {
	handler := NewUserHandler(&stubUserUsecase{}, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, _ := newTestContext(t, http.MethodGet, "/api/users/profile", "")

	err := handler.GetProfile(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrAuthenticationRequired)
}

func TestUserHandler_GetProfile_Success(t *testing.T) {
	userID := uuid.New()
	stub := &stubUserUsecase{
		profileOutput: &usecase.UserOutput{ID: userID, Username: "alice"},
	}
	handler := NewUserHandler(stub, slog.New(slog.NewTextHandler(io.Discard, nil)))

	c, rec := newTestContext(t, http.MethodGet, "/api/users/profile", "")
	c.Set(middleware.KeyUserID, userID)

	require.NoError(t, handler.GetProfile(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"username":"alice"`)
}
