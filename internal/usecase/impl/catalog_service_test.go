package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	mockRepo "bazaar/internal/mocks/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type catalogServiceFixtures struct {
	service      usecase.CatalogUsecase
	categoryRepo *mockRepo.MockCategoryRepository
	brandRepo    *mockRepo.MockBrandRepository
	productRepo  *mockRepo.MockProductRepository
	reviewRepo   *mockRepo.MockReviewRepository
	factory      *mockRepo.MockRepositoryFactory
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	t.Helper()

	categoryRepo := &mockRepo.MockCategoryRepository{}
	brandRepo := &mockRepo.MockBrandRepository{}
	productRepo := &mockRepo.MockProductRepository{}
	reviewRepo := &mockRepo.MockReviewRepository{}
	factory := &mockRepo.MockRepositoryFactory{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewCatalogService(CatalogServiceParams{
		TxManager:    &mockRepo.PassthroughTransactionManager{Factory: factory},
		CategoryRepo: categoryRepo,
		BrandRepo:    brandRepo,
		ProductRepo:  productRepo,
		ReviewRepo:   reviewRepo,
		Logger:       logger,
	})

	return catalogServiceFixtures{
		service:      service,
		categoryRepo: categoryRepo,
		brandRepo:    brandRepo,
		productRepo:  productRepo,
		reviewRepo:   reviewRepo,
		factory:      factory,
	}
}

func TestCatalogService_GetProduct_CountsTheVisit(t *testing.T) {
	fxt := createTestCatalogService(t)
	ctx := context.Background()
	productID := uuid.New()

	product := &entity.Product{
		ID:        productID,
		Title:     "Mechanical keyboard",
		Price:     1200,
		Condition: entity.ConditionGood,
		Views:     8,
	}

	fxt.productRepo.On("IncrementViews", ctx, productID).Return(nil)
	fxt.productRepo.On("FindByID", ctx, productID).Return(product, nil)

	output, err := fxt.service.GetProduct(ctx, productID)

	require.NoError(t, err)
	assert.Equal(t, productID, output.ID)
	// The bump happens before the read, so the stored count already
	// includes this retrieval.
	fxt.productRepo.AssertExpectations(t)
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	fxt := createTestCatalogService(t)
	ctx := context.Background()
	productID := uuid.New()

	fxt.productRepo.On("IncrementViews", ctx, productID).Return(repository.ErrProductNotFound)

	_, err := fxt.service.GetProduct(ctx, productID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	fxt.productRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestCatalogService_CreateProduct_Success(t *testing.T) {
	fxt := createTestCatalogService(t)
	ctx := context.Background()
	sellerID := uuid.New()
	categoryID := uuid.New()
	productID := uuid.New()

	originalPrice := 1000.0
	input := &usecase.CreateProductInput{
		CategoryID:    categoryID,
		Title:         "Mechanical keyboard",
		Description:   "Lightly used",
		Price:         800,
		OriginalPrice: &originalPrice,
		Condition:     "good",
		ImageURLs:     []string{"https://img.example.com/a.jpg", "https://img.example.com/b.jpg"},
	}

	fxt.categoryRepo.On("FindByID", ctx, categoryID).Return(&entity.Category{ID: categoryID}, nil)

	txProductRepo := &mockRepo.MockProductRepository{}
	fxt.factory.On("NewProductRepository").Return(txProductRepo)
	txProductRepo.On("Create", ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(args mock.Arguments) {
			product := args.Get(1).(*entity.Product)
			product.ID = productID

			assert.True(t, product.IsAvailable)
			assert.Equal(t, 20, product.DiscountPercentage)
			require.Len(t, product.Images, 2)
			assert.True(t, product.Images[0].IsPrimary)
			assert.False(t, product.Images[1].IsPrimary)
		}).
		Return(nil)

	fxt.productRepo.On("FindByID", ctx, productID).
		Return(&entity.Product{ID: productID, Title: input.Title, SellerID: sellerID}, nil)

	output, err := fxt.service.CreateProduct(ctx, sellerID, input)

	require.NoError(t, err)
	assert.Equal(t, productID, output.ID)
	txProductRepo.AssertExpectations(t)
}

func TestCatalogService_CreateProduct_UnknownCondition(t *testing.T) {
	fxt := createTestCatalogService(t)

	input := &usecase.CreateProductInput{
		CategoryID: uuid.New(),
		Title:      "Mystery item",
		Price:      100,
		Condition:  "mint",
	}

	_, err := fxt.service.CreateProduct(context.Background(), uuid.New(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCatalogService_CreateProduct_UnknownCategory(t *testing.T) {
	fxt := createTestCatalogService(t)
	ctx := context.Background()
	categoryID := uuid.New()

	input := &usecase.CreateProductInput{
		CategoryID: categoryID,
		Title:      "Mechanical keyboard",
		Price:      800,
		Condition:  "good",
	}

	fxt.categoryRepo.On("FindByID", ctx, categoryID).Return(nil, repository.ErrCategoryNotFound)

	_, err := fxt.service.CreateProduct(ctx, uuid.New(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrCategoryNotFound)
}

func TestCatalogService_UpdateProduct_RecomputesDiscount(t *testing.T) {
	fxt := createTestCatalogService(t)
	ctx := context.Background()
	sellerID := uuid.New()
	productID := uuid.New()

	originalPrice := 1000.0
	existing := &entity.Product{
		ID:                 productID,
		SellerID:           sellerID,
		Price:              900,
		OriginalPrice:      &originalPrice,
		DiscountPercentage: 10,
		Condition:          entity.ConditionGood,
	}

	txProductRepo := &mockRepo.MockProductRepository{}
	fxt.factory.On("NewProductRepository").Return(txProductRepo)
	txProductRepo.On("FindByID", ctx, productID).Return(existing, nil)
	txProductRepo.On("Update", ctx, existing).Return(nil)

	fxt.productRepo.On("FindByID", ctx, productID).Return(existing, nil)

	newPrice := 750.0
	_, err := fxt.service.UpdateProduct(ctx, sellerID, productID, &usecase.UpdateProductInput{
		Price: &newPrice,
	})

	require.NoError(t, err)
	assert.Equal(t, 25, existing.DiscountPercentage)
}

func TestCatalogService_UpdateProduct_NotTheSeller(t *testing.T) {
	fxt := createTestCatalogService(t)
	ctx := context.Background()
	productID := uuid.New()

	existing := &entity.Product{ID: productID, SellerID: uuid.New()}

	txProductRepo := &mockRepo.MockProductRepository{}
	fxt.factory.On("NewProductRepository").Return(txProductRepo)
	txProductRepo.On("FindByID", ctx, productID).Return(existing, nil)

	title := "hijacked"
	_, err := fxt.service.UpdateProduct(ctx, uuid.New(), productID, &usecase.UpdateProductInput{
		Title: &title,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	txProductRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCatalogService_DeleteProduct_NotTheSeller(t *testing.T) {
	fxt := createTestCatalogService(t)
	ctx := context.Background()
	productID := uuid.New()

	existing := &entity.Product{ID: productID, SellerID: uuid.New()}

	txProductRepo := &mockRepo.MockProductRepository{}
	fxt.factory.On("NewProductRepository").Return(txProductRepo)
	txProductRepo.On("FindByID", ctx, productID).Return(existing, nil)

	err := fxt.service.DeleteProduct(ctx, uuid.New(), productID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	txProductRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestCatalogService_CreateReview_Duplicate(t *testing.T) {
	fxt := createTestCatalogService(t)
	ctx := context.Background()
	productID := uuid.New()
	reviewerID := uuid.New()

	fxt.productRepo.On("FindByID", ctx, productID).Return(&entity.Product{ID: productID}, nil)
	fxt.reviewRepo.On("Create", ctx, mock.AnythingOfType("*entity.Review")).
		Return(domainerrors.ErrDuplicateReview.WrapMessage("review already exists"))

	_, err := fxt.service.CreateReview(ctx, reviewerID, productID, &usecase.CreateReviewInput{
		Rating:  4,
		Comment: "still great",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateReview)
}

func TestCatalogService_ListProducts_UnknownCondition(t *testing.T) {
	fxt := createTestCatalogService(t)

	condition := "mint"
	_, err := fxt.service.ListProducts(context.Background(), &usecase.ListProductsInput{
		Condition: &condition,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	fxt.productRepo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestCatalogService_ListFeaturedProducts_FiltersAvailability(t *testing.T) {
	fxt := createTestCatalogService(t)
	ctx := context.Background()

	fxt.productRepo.On("List", ctx, mock.MatchedBy(func(filter *repository.ProductFilter) bool {
		return filter.IsFeatured != nil && *filter.IsFeatured &&
			filter.IsAvailable != nil && *filter.IsAvailable
	})).Return([]*entity.Product{}, nil)

	outputs, err := fxt.service.ListFeaturedProducts(ctx)

	require.NoError(t, err)
	assert.Empty(t, outputs)
	fxt.productRepo.AssertExpectations(t)
}
