package handler

import (
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ShopHandler holds dependencies for shop-related handlers.
type ShopHandler struct {
	uc     usecase.ShopUsecase
	logger *slog.Logger
}

// NewShopHandler is the constructor for ShopHandler, injected by Fx.
func NewShopHandler(uc usecase.ShopUsecase, logger *slog.Logger) *ShopHandler {
	return &ShopHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListShops returns the shops matching the query filters.
func (h *ShopHandler) ListShops(c echo.Context) error {
	input := &usecase.ListShopsInput{
		Search:         c.QueryParam("search"),
		SortBy:         c.QueryParam("sort_by"),
		SortDescending: c.QueryParam("order") != "asc",
	}

	var err error
	if input.IsVerified, err = queryBool(c, "is_verified"); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.ListShops(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Shops retrieved successfully")
}

// GetShop returns a single shop.
func (h *ShopHandler) GetShop(c echo.Context) error {
	shopID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.GetShop(c.Request().Context(), shopID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Shop retrieved successfully")
}

// CreateShop opens a shop owned by the authenticated user.
func (h *ShopHandler) CreateShop(c echo.Context) error {
	ownerID, err := actorID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var input usecase.CreateShopInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid shop input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.CreateShop(c.Request().Context(), ownerID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Shop created successfully")
}

// UpdateShop applies a partial update to a shop.
func (h *ShopHandler) UpdateShop(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return errors.WithStack(err)
	}
	shopID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var input usecase.UpdateShopInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid shop input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.UpdateShop(c.Request().Context(), userID, shopID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Shop updated successfully")
}

// DeleteShop removes a shop.
func (h *ShopHandler) DeleteShop(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return errors.WithStack(err)
	}
	shopID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteShop(c.Request().Context(), userID, shopID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Shop deleted successfully")
}

// ListShopReviews returns a shop's reviews, newest first.
func (h *ShopHandler) ListShopReviews(c echo.Context) error {
	shopID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.ListShopReviews(c.Request().Context(), shopID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Shop reviews retrieved successfully")
}

// CreateShopReview records the authenticated user's review of a shop.
func (h *ShopHandler) CreateShopReview(c echo.Context) error {
	reviewerID, err := actorID(c)
	if err != nil {
		return errors.WithStack(err)
	}
	shopID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var input usecase.CreateShopReviewInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.CreateShopReview(c.Request().Context(), reviewerID, shopID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Shop review created successfully")
}
