package impl

import (
	"context"
	"log/slog"

	deliverycontext "bazaar/internal/delivery/context"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	txManager    repository.TransactionManager
	categoryRepo repository.CategoryRepository
	brandRepo    repository.BrandRepository
	productRepo  repository.ProductRepository
	reviewRepo   repository.ReviewRepository
	logger       *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	CategoryRepo repository.CategoryRepository
	BrandRepo    repository.BrandRepository
	ProductRepo  repository.ProductRepository
	ReviewRepo   repository.ReviewRepository
	Logger       *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		txManager:    params.TxManager,
		categoryRepo: params.CategoryRepo,
		brandRepo:    params.BrandRepo,
		productRepo:  params.ProductRepo,
		reviewRepo:   params.ReviewRepo,
		logger:       params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListCategories returns the whole category tree, flat and ordered by name.
func (srv *catalogService) ListCategories(ctx context.Context) ([]*usecase.CategoryOutput, error) {
	categories, err := srv.categoryRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	outputs := make([]*usecase.CategoryOutput, 0, len(categories))
	for _, category := range categories {
		outputs = append(outputs, usecase.NewCategoryOutput(category))
	}

	return outputs, nil
}

// ListBrands returns all brands, or only the featured ones.
func (srv *catalogService) ListBrands(ctx context.Context, featuredOnly bool) ([]*usecase.BrandOutput, error) {
	brands, err := srv.brandRepo.List(ctx, featuredOnly)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list brands")
	}

	outputs := make([]*usecase.BrandOutput, 0, len(brands))
	for _, brand := range brands {
		outputs = append(outputs, usecase.NewBrandOutput(brand))
	}

	return outputs, nil
}

// ListProducts returns the listings matching the filter.
func (srv *catalogService) ListProducts(ctx context.Context, input *usecase.ListProductsInput) ([]*usecase.ProductOutput, error) {
	filter, err := buildProductFilter(input)
	if err != nil {
		return nil, err
	}

	return srv.listProducts(ctx, filter)
}

// ListFeaturedProducts returns the available listings flagged as featured.
func (srv *catalogService) ListFeaturedProducts(ctx context.Context) ([]*usecase.ProductOutput, error) {
	featured := true
	available := true

	return srv.listProducts(ctx, &repository.ProductFilter{
		IsFeatured:  &featured,
		IsAvailable: &available,
	})
}

// ListDailyEssentials returns the available listings flagged as daily essentials.
func (srv *catalogService) ListDailyEssentials(ctx context.Context) ([]*usecase.ProductOutput, error) {
	essential := true
	available := true

	return srv.listProducts(ctx, &repository.ProductFilter{
		IsDailyEssential: &essential,
		IsAvailable:      &available,
	})
}

func (srv *catalogService) listProducts(ctx context.Context, filter *repository.ProductFilter) ([]*usecase.ProductOutput, error) {
	products, err := srv.productRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	outputs := make([]*usecase.ProductOutput, 0, len(products))
	for _, product := range products {
		outputs = append(outputs, usecase.NewProductOutput(product))
	}

	return outputs, nil
}

func buildProductFilter(input *usecase.ListProductsInput) (*repository.ProductFilter, error) {
	if input == nil {
		return nil, nil
	}

	filter := &repository.ProductFilter{
		CategoryID:       input.CategoryID,
		BrandID:          input.BrandID,
		IsAvailable:      input.IsAvailable,
		IsNegotiable:     input.IsNegotiable,
		IsFeatured:       input.IsFeatured,
		IsDailyEssential: input.IsDailyEssential,
		Search:           input.Search,
		SortBy:           repository.ProductSort(input.SortBy),
		SortDescending:   input.SortDescending,
	}

	if input.Condition != nil {
		condition := entity.Condition(*input.Condition)
		if !condition.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown product condition")
		}
		filter.Condition = &condition
	}

	return filter, nil
}

// GetProduct retrieves a single listing. Every retrieval bumps the view
// counter before the read so the returned count includes this visit.
func (srv *catalogService) GetProduct(ctx context.Context, productID uuid.UUID) (*usecase.ProductOutput, error) {
	if err := srv.productRepo.IncrementViews(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WrapMessage("product lookup failed")
		}

		return nil, errors.Wrap(err, "failed to increment product views")
	}

	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WrapMessage("product lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return usecase.NewProductOutput(product), nil
}

// CreateProduct creates a listing owned by the seller. The first supplied
// image becomes the primary one.
func (srv *catalogService) CreateProduct(ctx context.Context, sellerID uuid.UUID, input *usecase.CreateProductInput) (*usecase.ProductOutput, error) {
	srv.log(ctx).Debug("Creating product", slog.Any("sellerID", sellerID), slog.String("title", input.Title))

	condition := entity.Condition(input.Condition)
	if !condition.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown product condition")
	}

	if _, err := srv.categoryRepo.FindByID(ctx, input.CategoryID); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrCategoryNotFound.WrapMessage("product creation failed")
		}

		return nil, errors.Wrap(err, "failed to find category for product creation")
	}
	if input.BrandID != nil {
		if _, err := srv.brandRepo.FindByID(ctx, *input.BrandID); err != nil {
			if errors.Is(err, repository.ErrBrandNotFound) {
				return nil, domainerrors.ErrBrandNotFound.WrapMessage("product creation failed")
			}

			return nil, errors.Wrap(err, "failed to find brand for product creation")
		}
	}

	product := &entity.Product{
		SellerID:       sellerID,
		CategoryID:     input.CategoryID,
		BrandID:        input.BrandID,
		Title:          input.Title,
		Description:    input.Description,
		Price:          input.Price,
		OriginalPrice:  input.OriginalPrice,
		Condition:      condition,
		Model:          input.Model,
		Specifications: input.Specifications,
		Location:       input.Location,
		IsNegotiable:   input.IsNegotiable,
		IsAvailable:    true,
	}
	product.RecalculateDiscount()

	for i, url := range input.ImageURLs {
		product.Images = append(product.Images, &entity.ProductImage{
			URL:       url,
			IsPrimary: i == 0,
		})
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewProductRepository().Create(ctx, product)
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to create product", slog.Any("sellerID", sellerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute product creation transaction")
	}

	srv.log(ctx).Info("Product created", slog.Any("productID", product.ID), slog.Any("sellerID", sellerID))

	return srv.reloadProduct(ctx, product.ID)
}

// UpdateProduct applies a partial update to a listing. Only the seller may
// modify it; the discount is recomputed from the resulting prices.
func (srv *catalogService) UpdateProduct(ctx context.Context, actorID, productID uuid.UUID, input *usecase.UpdateProductInput) (*usecase.ProductOutput, error) {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()

		product, err := productRepo.FindByID(ctx, productID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound.WrapMessage("product update failed")
			}

			return errors.Wrap(err, "failed to find product for update")
		}

		if product.SellerID != actorID {
			return domainerrors.ErrForbidden.WrapMessage("only the seller may modify this listing")
		}

		if err := applyProductUpdate(product, input); err != nil {
			return err
		}
		product.RecalculateDiscount()

		if err := productRepo.Update(ctx, product); err != nil {
			return errors.Wrap(err, "failed to update product")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to update product", slog.Any("productID", productID), slog.Any("error", err))

		return nil, err
	}

	return srv.reloadProduct(ctx, productID)
}

func applyProductUpdate(product *entity.Product, input *usecase.UpdateProductInput) error {
	if input.CategoryID != nil {
		product.CategoryID = *input.CategoryID
	}
	if input.BrandID != nil {
		product.BrandID = input.BrandID
	}
	if input.Title != nil {
		product.Title = *input.Title
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.OriginalPrice != nil {
		product.OriginalPrice = input.OriginalPrice
	}
	if input.Condition != nil {
		condition := entity.Condition(*input.Condition)
		if !condition.IsValid() {
			return domainerrors.ErrValidationFailed.WrapMessage("unknown product condition")
		}
		product.Condition = condition
	}
	if input.Model != nil {
		product.Model = *input.Model
	}
	if input.Specifications != nil {
		product.Specifications = input.Specifications
	}
	if input.Location != nil {
		product.Location = *input.Location
	}
	if input.IsNegotiable != nil {
		product.IsNegotiable = *input.IsNegotiable
	}
	if input.IsAvailable != nil {
		product.IsAvailable = *input.IsAvailable
	}

	return nil
}

// DeleteProduct removes a listing. Only the seller may delete it.
func (srv *catalogService) DeleteProduct(ctx context.Context, actorID, productID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.NewProductRepository()

		product, err := productRepo.FindByID(ctx, productID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return domainerrors.ErrProductNotFound.WrapMessage("product deletion failed")
			}

			return errors.Wrap(err, "failed to find product for deletion")
		}

		if product.SellerID != actorID {
			return domainerrors.ErrForbidden.WrapMessage("only the seller may delete this listing")
		}

		if err := productRepo.Delete(ctx, productID); err != nil {
			return errors.Wrap(err, "failed to delete product")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to delete product", slog.Any("productID", productID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Product deleted", slog.Any("productID", productID))

	return nil
}

// CreateReview records a product review. A user may review a given product
// at most once.
func (srv *catalogService) CreateReview(ctx context.Context, reviewerID, productID uuid.UUID, input *usecase.CreateReviewInput) (*usecase.ReviewOutput, error) {
	if _, err := srv.productRepo.FindByID(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WrapMessage("review creation failed")
		}

		return nil, errors.Wrap(err, "failed to find product for review")
	}

	review := &entity.Review{
		ProductID:  productID,
		ReviewerID: reviewerID,
		Rating:     input.Rating,
		Comment:    input.Comment,
	}

	if err := srv.reviewRepo.Create(ctx, review); err != nil {
		srv.log(ctx).Warn("Failed to create review", slog.Any("productID", productID), slog.Any("reviewerID", reviewerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create review")
	}

	return usecase.NewReviewOutput(review), nil
}

// ListReviews returns the product's reviews, newest first.
func (srv *catalogService) ListReviews(ctx context.Context, productID uuid.UUID) ([]*usecase.ReviewOutput, error) {
	reviews, err := srv.reviewRepo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	outputs := make([]*usecase.ReviewOutput, 0, len(reviews))
	for _, review := range reviews {
		outputs = append(outputs, usecase.NewReviewOutput(review))
	}

	return outputs, nil
}

// reloadProduct re-reads a listing with all associations so the output carries
// resolved names and ordered images.
func (srv *catalogService) reloadProduct(ctx context.Context, productID uuid.UUID) (*usecase.ProductOutput, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload product")
	}

	return usecase.NewProductOutput(product), nil
}
