package handler

import (
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler holds dependencies for catalog-related handlers.
type CatalogHandler struct {
	uc     usecase.CatalogUsecase
	logger *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListCategories returns the category tree, flat and ordered by name.
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	output, err := h.uc.ListCategories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Categories retrieved successfully")
}

// ListBrands returns all brands.
func (h *CatalogHandler) ListBrands(c echo.Context) error {
	output, err := h.uc.ListBrands(c.Request().Context(), false)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Brands retrieved successfully")
}

// ListFeaturedBrands returns the featured brands only.
func (h *CatalogHandler) ListFeaturedBrands(c echo.Context) error {
	output, err := h.uc.ListBrands(c.Request().Context(), true)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Featured brands retrieved successfully")
}

// ListProducts returns the listings matching the query filters.
func (h *CatalogHandler) ListProducts(c echo.Context) error {
	input, err := buildListProductsInput(c)
	if err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.ListProducts(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Products retrieved successfully")
}

func buildListProductsInput(c echo.Context) (*usecase.ListProductsInput, error) {
	input := &usecase.ListProductsInput{
		Condition:      queryString(c, "condition"),
		Search:         c.QueryParam("search"),
		SortBy:         c.QueryParam("sort_by"),
		SortDescending: c.QueryParam("order") != "asc",
	}

	var err error
	if input.CategoryID, err = queryUUID(c, "category_id"); err != nil {
		return nil, err
	}
	if input.BrandID, err = queryUUID(c, "brand_id"); err != nil {
		return nil, err
	}
	if input.IsAvailable, err = queryBool(c, "is_available"); err != nil {
		return nil, err
	}
	if input.IsNegotiable, err = queryBool(c, "is_negotiable"); err != nil {
		return nil, err
	}
	if input.IsFeatured, err = queryBool(c, "is_featured"); err != nil {
		return nil, err
	}
	if input.IsDailyEssential, err = queryBool(c, "is_daily_essential"); err != nil {
		return nil, err
	}

	return input, nil
}

// ListFeaturedProducts returns the available listings flagged as featured.
func (h *CatalogHandler) ListFeaturedProducts(c echo.Context) error {
	output, err := h.uc.ListFeaturedProducts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Featured products retrieved successfully")
}

// ListDailyEssentials returns the available listings flagged as daily essentials.
func (h *CatalogHandler) ListDailyEssentials(c echo.Context) error {
	output, err := h.uc.ListDailyEssentials(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Daily essentials retrieved successfully")
}

// GetProduct returns a single listing and counts the visit.
func (h *CatalogHandler) GetProduct(c echo.Context) error {
	productID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Product retrieved successfully")
}

// CreateProduct creates a listing owned by the authenticated user.
func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	sellerID, err := actorID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var input usecase.CreateProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.CreateProduct(c.Request().Context(), sellerID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Product created successfully")
}

// UpdateProduct applies a partial update to a listing.
func (h *CatalogHandler) UpdateProduct(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return errors.WithStack(err)
	}
	productID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var input usecase.UpdateProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.UpdateProduct(c.Request().Context(), userID, productID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Product updated successfully")
}

// DeleteProduct removes a listing.
func (h *CatalogHandler) DeleteProduct(c echo.Context) error {
	userID, err := actorID(c)
	if err != nil {
		return errors.WithStack(err)
	}
	productID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), userID, productID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted successfully")
}

// ListReviews returns a product's reviews, newest first.
func (h *CatalogHandler) ListReviews(c echo.Context) error {
	productID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.ListReviews(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Reviews retrieved successfully")
}

// CreateReview records the authenticated user's review of a product.
func (h *CatalogHandler) CreateReview(c echo.Context) error {
	reviewerID, err := actorID(c)
	if err != nil {
		return errors.WithStack(err)
	}
	productID, err := pathUUID(c, "id")
	if err != nil {
		return errors.WithStack(err)
	}

	var input usecase.CreateReviewInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.CreateReview(c.Request().Context(), reviewerID, productID, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output, "Review created successfully")
}
