package postgres

import (
	"context"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// shopReviewRepository implements the domain.ShopReviewRepository interface.
type shopReviewRepository struct {
	db *gorm.DB
}

// NewShopReviewRepository is the constructor for shopReviewRepository.
func NewShopReviewRepository(db *gorm.DB) repository.ShopReviewRepository {
	return &shopReviewRepository{db: db}
}

// Create persists a new shop review. The composite unique index surfaces a
// second review by the same user as a conflict.
func (repo *shopReviewRepository) Create(ctx context.Context, review *entity.ShopReview) error {
	reviewM := fromShopReviewDomain(review)

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateReview.WrapMessage("user has already reviewed this shop")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrShopNotFound.WrapMessage("invalid shop or reviewer reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create shop review")
	}

	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt
	review.UpdatedAt = reviewM.UpdatedAt

	return nil
}

// ListByShop returns the shop's reviews, newest first.
func (repo *shopReviewRepository) ListByShop(ctx context.Context, shopID uuid.UUID) ([]*entity.ShopReview, error) {
	var reviewModels []*model.ShopReviewModel
	err := repo.db.WithContext(ctx).
		Preload("Reviewer").
		Where("shop_id = ?", shopID).
		Order("created_at DESC").
		Find(&reviewModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list reviews by shop")
	}

	reviews := make([]*entity.ShopReview, 0, len(reviewModels))
	for _, reviewM := range reviewModels {
		reviews = append(reviews, toShopReviewDomain(reviewM))
	}

	return reviews, nil
}

// fromShopReviewDomain converts a domain ShopReview entity to a GORM model.
func fromShopReviewDomain(data *entity.ShopReview) *model.ShopReviewModel {
	if data == nil {
		return nil
	}

	return &model.ShopReviewModel{
		ID:         data.ID,
		ShopID:     data.ShopID,
		ReviewerID: data.ReviewerID,
		Rating:     data.Rating,
		Comment:    data.Comment,
	}
}
