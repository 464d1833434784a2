package postgres

import (
	"context"
	"fmt"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the domain.ProductRepository interface using GORM.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

// withProductAssociations preloads everything the read shape needs: seller,
// category, brand, ordered images and reviews with their reviewers.
func withProductAssociations(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Seller").
		Preload("Category").
		Preload("Brand").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("is_primary DESC, created_at ASC")
		}).
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Preload("Reviews.Reviewer")
}

// Create persists a new product together with its images.
func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)
	for _, image := range product.Images {
		productM.Images = append(productM.Images, model.ProductImageModel{
			URL:       image.URL,
			IsPrimary: image.IsPrimary,
		})
	}

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid category, brand or seller reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required product information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	// Update the product entity with the generated IDs and timestamps
	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt
	for i, imageM := range productM.Images {
		product.Images[i].ID = imageM.ID
		product.Images[i].ProductID = imageM.ProductID
		product.Images[i].CreatedAt = imageM.CreatedAt
	}

	return nil
}

// FindByID retrieves a product with all associations preloaded.
func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel
	err := withProductAssociations(repo.db.WithContext(ctx)).
		Where("id = ?", id).
		First(&productM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&productM), nil
}

// List returns products matching the filter with associations preloaded.
func (repo *productRepository) List(ctx context.Context, filter *repository.ProductFilter) ([]*entity.Product, error) {
	tx := withProductAssociations(repo.db.WithContext(ctx)).Model(&model.ProductModel{})
	tx = applyProductFilter(tx, filter)

	var productModels []*model.ProductModel
	if err := tx.Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// applyProductFilter narrows and orders the listing query. Sort columns go
// through the ProductSort whitelist, never raw client input.
func applyProductFilter(tx *gorm.DB, filter *repository.ProductFilter) *gorm.DB {
	if filter == nil {
		return tx.Order("products.created_at DESC")
	}

	if filter.CategoryID != nil {
		tx = tx.Where("products.category_id = ?", *filter.CategoryID)
	}
	if filter.BrandID != nil {
		tx = tx.Where("products.brand_id = ?", *filter.BrandID)
	}
	if filter.Condition != nil {
		tx = tx.Where("products.condition = ?", filter.Condition.String())
	}
	if filter.IsAvailable != nil {
		tx = tx.Where("products.is_available = ?", *filter.IsAvailable)
	}
	if filter.IsNegotiable != nil {
		tx = tx.Where("products.is_negotiable = ?", *filter.IsNegotiable)
	}
	if filter.IsFeatured != nil {
		tx = tx.Where("products.is_featured = ?", *filter.IsFeatured)
	}
	if filter.IsDailyEssential != nil {
		tx = tx.Where("products.is_daily_essential = ?", *filter.IsDailyEssential)
	}

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		tx = tx.
			Joins("LEFT JOIN brands ON brands.id = products.brand_id").
			Where(
				"products.title ILIKE ? OR products.description ILIKE ? OR products.model ILIKE ? OR brands.name ILIKE ?",
				pattern, pattern, pattern, pattern,
			)
	}

	sortBy := repository.ProductSortCreatedAt
	descending := true
	if filter.SortBy.IsValid() {
		sortBy = filter.SortBy
		descending = filter.SortDescending
	}
	direction := "ASC"
	if descending {
		direction = "DESC"
	}

	return tx.Order(fmt.Sprintf("products.%s %s", sortBy, direction))
}

// Update modifies an existing product. The views column is excluded so a
// concurrent IncrementViews is never overwritten with a stale count; only
// IncrementViews writes that column.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Omit("views").Save(productM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid category or brand reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required product information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update product")
	}

	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// Delete removes a product; images and reviews go with it via FK cascades.
func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ProductModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// IncrementViews bumps the view counter with a single UPDATE so concurrent
// retrievals never lose increments.
func (repo *productRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to increment product views")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	images := make([]*entity.ProductImage, 0, len(data.Images))
	for i := range data.Images {
		images = append(images, toProductImageDomain(&data.Images[i]))
	}

	reviews := make([]*entity.Review, 0, len(data.Reviews))
	for i := range data.Reviews {
		reviews = append(reviews, toReviewDomain(&data.Reviews[i]))
	}

	return &entity.Product{
		ID:                 data.ID,
		SellerID:           data.SellerID,
		CategoryID:         data.CategoryID,
		BrandID:            data.BrandID,
		Title:              data.Title,
		Description:        data.Description,
		Price:              data.Price,
		OriginalPrice:      data.OriginalPrice,
		DiscountPercentage: data.DiscountPercentage,
		Condition:          entity.Condition(data.Condition),
		Model:              data.Model,
		Specifications:     toJSONMap(data.Specifications),
		Location:           data.Location,
		IsNegotiable:       data.IsNegotiable,
		IsAvailable:        data.IsAvailable,
		IsFeatured:         data.IsFeatured,
		IsDailyEssential:   data.IsDailyEssential,
		Views:              data.Views,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
		Seller:             toUserDomain(data.Seller),
		Category:           toCategoryDomain(data.Category),
		Brand:              toBrandDomain(data.Brand),
		Images:             images,
		Reviews:            reviews,
	}
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
// Associations are intentionally left out; Create attaches images itself and
// Update only touches the product row.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	return &model.ProductModel{
		ID:                 data.ID,
		SellerID:           data.SellerID,
		CategoryID:         data.CategoryID,
		BrandID:            data.BrandID,
		Title:              data.Title,
		Description:        data.Description,
		Price:              data.Price,
		OriginalPrice:      data.OriginalPrice,
		DiscountPercentage: data.DiscountPercentage,
		Condition:          data.Condition.String(),
		Model:              data.Model,
		Specifications:     fromJSONMap(data.Specifications),
		Location:           data.Location,
		IsNegotiable:       data.IsNegotiable,
		IsAvailable:        data.IsAvailable,
		IsFeatured:         data.IsFeatured,
		IsDailyEssential:   data.IsDailyEssential,
		Views:              data.Views,
	}
}

// toProductImageDomain converts a GORM ProductImageModel to a domain entity.
func toProductImageDomain(data *model.ProductImageModel) *entity.ProductImage {
	if data == nil {
		return nil
	}

	return &entity.ProductImage{
		ID:        data.ID,
		ProductID: data.ProductID,
		URL:       data.URL,
		IsPrimary: data.IsPrimary,
		CreatedAt: data.CreatedAt,
	}
}

// toReviewDomain converts a GORM ReviewModel to a domain Review entity.
func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	return &entity.Review{
		ID:         data.ID,
		ProductID:  data.ProductID,
		ReviewerID: data.ReviewerID,
		Rating:     data.Rating,
		Comment:    data.Comment,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
		Reviewer:   toUserDomain(data.Reviewer),
	}
}
