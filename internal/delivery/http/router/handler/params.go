package handler

import (
	"bazaar/internal/delivery/http/middleware"
	domainerrors "bazaar/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// pathUUID parses a UUID path parameter.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid " + name + " path parameter")
	}

	return id, nil
}

// actorID extracts the authenticated user's ID set by the auth middleware.
func actorID(c echo.Context) (uuid.UUID, error) {
	id, ok := middleware.UserID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrAuthenticationRequired.WrapMessage("missing authenticated identity")
	}

	return id, nil
}

// queryUUID parses an optional UUID query parameter; absent means nil.
func queryUUID(c echo.Context, name string) (*uuid.UUID, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid " + name + " query parameter")
	}

	return &id, nil
}

// queryBool parses an optional boolean query parameter; absent means nil.
func queryBool(c echo.Context, name string) (*bool, error) {
	switch raw := c.QueryParam(name); raw {
	case "":
		return nil, nil
	case "true", "1":
		value := true

		return &value, nil
	case "false", "0":
		value := false

		return &value, nil
	default:
		return nil, domainerrors.ErrValidationFailed.WithDetails("invalid " + name + " query parameter")
	}
}

// queryString returns an optional string query parameter; absent means nil.
func queryString(c echo.Context, name string) *string {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil
	}

	return &raw
}
