package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bazaar/internal/domain/service"
	mockService "bazaar/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runAuthenticate(t *testing.T, tokenSvc service.TokenService, authHeader string) (echo.Context, *httptest.ResponseRecorder, bool) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/users/profile", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	next := func(c echo.Context) error {
		reached = true

		return nil
	}

	require.NoError(t, NewAuthMiddleware(tokenSvc).Authenticate(next)(c))

	return c, rec, reached
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	tokenSvc := &mockService.MockTokenService{}

	_, rec, reached := runAuthenticate(t, tokenSvc, "")

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "AUTHENTICATION_REQUIRED")
}

func TestAuthMiddleware_NotBearer(t *testing.T) {
	tokenSvc := &mockService.MockTokenService{}

	_, rec, reached := runAuthenticate(t, tokenSvc, "Basic dXNlcjpwYXNz")

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	tokenSvc := &mockService.MockTokenService{}
	tokenSvc.On("ValidateToken", "bad-token").Return(nil, errors.New("token is malformed"))

	_, rec, reached := runAuthenticate(t, tokenSvc, "Bearer bad-token")

	assert.False(t, reached)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	userID := uuid.New()
	tokenSvc := &mockService.MockTokenService{}
	tokenSvc.On("ValidateToken", "good-token").
		Return(&service.TokenClaims{UserID: userID, UserType: "seller"}, nil)

	c, _, reached := runAuthenticate(t, tokenSvc, "Bearer good-token")

	assert.True(t, reached)

	id, ok := UserID(c)
	require.True(t, ok)
	assert.Equal(t, userID, id)
	assert.Equal(t, "seller", c.Get(KeyUserType))
}
