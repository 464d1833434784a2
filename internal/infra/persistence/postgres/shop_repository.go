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

// shopRepository implements the domain.ShopRepository interface using GORM.
type shopRepository struct {
	db *gorm.DB
}

// NewShopRepository is the constructor for shopRepository.
func NewShopRepository(db *gorm.DB) repository.ShopRepository {
	return &shopRepository{db: db}
}

func withShopAssociations(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Owner").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("is_primary DESC, created_at ASC")
		}).
		Preload("Reviews", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		Preload("Reviews.Reviewer")
}

// Create persists a new shop together with its images. The unique owner
// reference turns a second shop for the same owner into a conflict.
func (repo *shopRepository) Create(ctx context.Context, shop *entity.Shop) error {
	shopM := fromShopDomain(shop)
	for _, image := range shop.Images {
		shopM.Images = append(shopM.Images, model.ShopImageModel{
			URL:       image.URL,
			IsPrimary: image.IsPrimary,
		})
	}

	if err := repo.db.WithContext(ctx).Create(shopM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrShopAlreadyExists.WrapMessage("user already owns a shop")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("invalid owner reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required shop information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create shop")
	}

	shop.ID = shopM.ID
	shop.CreatedAt = shopM.CreatedAt
	shop.UpdatedAt = shopM.UpdatedAt
	for i, imageM := range shopM.Images {
		shop.Images[i].ID = imageM.ID
		shop.Images[i].ShopID = imageM.ShopID
		shop.Images[i].CreatedAt = imageM.CreatedAt
	}

	return nil
}

// FindByID retrieves a shop with owner, images and reviews preloaded.
func (repo *shopRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error) {
	var shopM model.ShopModel
	err := withShopAssociations(repo.db.WithContext(ctx)).
		Where("id = ?", id).
		First(&shopM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShopNotFound
		}

		return nil, errors.Wrap(err, "failed to find shop by id")
	}

	return toShopDomain(&shopM), nil
}

// List returns shops matching the filter with associations preloaded.
func (repo *shopRepository) List(ctx context.Context, filter *repository.ShopFilter) ([]*entity.Shop, error) {
	tx := withShopAssociations(repo.db.WithContext(ctx)).Model(&model.ShopModel{})
	tx = applyShopFilter(tx, filter)

	var shopModels []*model.ShopModel
	if err := tx.Find(&shopModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list shops")
	}

	shops := make([]*entity.Shop, 0, len(shopModels))
	for _, shopM := range shopModels {
		shops = append(shops, toShopDomain(shopM))
	}

	return shops, nil
}

func applyShopFilter(tx *gorm.DB, filter *repository.ShopFilter) *gorm.DB {
	if filter == nil {
		return tx.Order("shops.created_at DESC")
	}

	if filter.IsVerified != nil {
		tx = tx.Where("shops.is_verified = ?", *filter.IsVerified)
	}

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		tx = tx.Where(
			"shops.name ILIKE ? OR shops.description ILIKE ? OR shops.address ILIKE ?",
			pattern, pattern, pattern,
		)
	}

	sortBy := repository.ShopSortCreatedAt
	descending := true
	if filter.SortBy.IsValid() {
		sortBy = filter.SortBy
		descending = filter.SortDescending
	}
	direction := "ASC"
	if descending {
		direction = "DESC"
	}

	return tx.Order(fmt.Sprintf("shops.%s %s", sortBy, direction))
}

// Update modifies an existing shop.
func (repo *shopRepository) Update(ctx context.Context, shop *entity.Shop) error {
	shopM := fromShopDomain(shop)

	if err := repo.db.WithContext(ctx).Save(shopM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required shop information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update shop")
	}

	shop.UpdatedAt = shopM.UpdatedAt

	return nil
}

// Delete removes a shop; images and reviews go with it via FK cascades.
func (repo *shopRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.ShopModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete shop")
	}
	if result.RowsAffected == 0 {
		return repository.ErrShopNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toShopDomain converts a GORM ShopModel to a domain Shop entity.
func toShopDomain(data *model.ShopModel) *entity.Shop {
	if data == nil {
		return nil
	}

	images := make([]*entity.ShopImage, 0, len(data.Images))
	for i := range data.Images {
		images = append(images, toShopImageDomain(&data.Images[i]))
	}

	reviews := make([]*entity.ShopReview, 0, len(data.Reviews))
	for i := range data.Reviews {
		reviews = append(reviews, toShopReviewDomain(&data.Reviews[i]))
	}

	return &entity.Shop{
		ID:            data.ID,
		OwnerID:       data.OwnerID,
		Name:          data.Name,
		Description:   data.Description,
		Logo:          data.Logo,
		CoverImage:    data.CoverImage,
		Address:       data.Address,
		PhoneNumber:   data.PhoneNumber,
		Email:         data.Email,
		Website:       data.Website,
		BusinessHours: toJSONMap(data.BusinessHours),
		IsVerified:    data.IsVerified,
		Rating:        data.Rating,
		TotalRatings:  data.TotalRatings,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
		Owner:         toUserDomain(data.Owner),
		Images:        images,
		Reviews:       reviews,
	}
}

// fromShopDomain converts a domain Shop entity to a GORM ShopModel.
func fromShopDomain(data *entity.Shop) *model.ShopModel {
	if data == nil {
		return nil
	}

	return &model.ShopModel{
		ID:            data.ID,
		OwnerID:       data.OwnerID,
		Name:          data.Name,
		Description:   data.Description,
		Logo:          data.Logo,
		CoverImage:    data.CoverImage,
		Address:       data.Address,
		PhoneNumber:   data.PhoneNumber,
		Email:         data.Email,
		Website:       data.Website,
		BusinessHours: fromJSONMap(data.BusinessHours),
		IsVerified:    data.IsVerified,
		Rating:        data.Rating,
		TotalRatings:  data.TotalRatings,
	}
}

// toShopImageDomain converts a GORM ShopImageModel to a domain entity.
func toShopImageDomain(data *model.ShopImageModel) *entity.ShopImage {
	if data == nil {
		return nil
	}

	return &entity.ShopImage{
		ID:        data.ID,
		ShopID:    data.ShopID,
		URL:       data.URL,
		IsPrimary: data.IsPrimary,
		CreatedAt: data.CreatedAt,
	}
}

// toShopReviewDomain converts a GORM ShopReviewModel to a domain entity.
func toShopReviewDomain(data *model.ShopReviewModel) *entity.ShopReview {
	if data == nil {
		return nil
	}

	return &entity.ShopReview{
		ID:         data.ID,
		ShopID:     data.ShopID,
		ReviewerID: data.ReviewerID,
		Rating:     data.Rating,
		Comment:    data.Comment,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
		Reviewer:   toUserDomain(data.Reviewer),
	}
}
