package router

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func registerTestRoutes(t *testing.T) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	r := NewRouter(RouterParams{
		UserHandler:    handler.NewUserHandler(nil, logger),
		CatalogHandler: handler.NewCatalogHandler(nil, logger),
		ShopHandler:    handler.NewShopHandler(nil, logger),
		ChatHandler:    handler.NewChatHandler(nil, logger),
		MediaHandler:   handler.NewMediaHandler(nil, logger),
		AuthMiddleware: middleware.NewAuthMiddleware(nil),
	})

	e := echo.New()
	r.RegisterRoutes(e)

	return e
}

func TestRegisterRoutes_MethodSurface(t *testing.T) {
	e := registerTestRoutes(t)

	registered := make(map[string]bool)
	for _, route := range e.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	// Partial updates are reachable through both PUT and PATCH.
	expected := []string{
		http.MethodGet + " /health",
		http.MethodPost + " /api/users/register",
		http.MethodPost + " /api/users/login",
		http.MethodGet + " /api/users/profile",
		http.MethodPut + " /api/users/profile",
		http.MethodPatch + " /api/users/profile",
		http.MethodPost + " /api/users/verify",
		http.MethodGet + " /api/products",
		http.MethodGet + " /api/products/:id",
		http.MethodPut + " /api/products/:id",
		http.MethodPatch + " /api/products/:id",
		http.MethodDelete + " /api/products/:id",
		http.MethodGet + " /api/shops/:id",
		http.MethodPut + " /api/shops/:id",
		http.MethodPatch + " /api/shops/:id",
		http.MethodDelete + " /api/shops/:id",
		http.MethodPost + " /api/media/images",
		http.MethodGet + " /api/chat/rooms/:id/messages",
		http.MethodPost + " /api/chat/rooms/:id/messages",
	}
	for _, route := range expected {
		assert.True(t, registered[route], "route %s is not registered", route)
	}
}
