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

// shopService implements the ShopUsecase interface.
type shopService struct {
	txManager      repository.TransactionManager
	shopRepo       repository.ShopRepository
	shopReviewRepo repository.ShopReviewRepository
	logger         *slog.Logger
}

// ShopServiceParams holds dependencies for shopService, injected by Fx.
type ShopServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	ShopRepo       repository.ShopRepository
	ShopReviewRepo repository.ShopReviewRepository
	Logger         *slog.Logger
}

// NewShopService is the constructor for shopService.
func NewShopService(params ShopServiceParams) usecase.ShopUsecase {
	return &shopService{
		txManager:      params.TxManager,
		shopRepo:       params.ShopRepo,
		shopReviewRepo: params.ShopReviewRepo,
		logger:         params.Logger,
	}
}

func (srv *shopService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateShop opens a shop for the owner. A second shop for the same owner is
// rejected as a conflict.
func (srv *shopService) CreateShop(ctx context.Context, ownerID uuid.UUID, input *usecase.CreateShopInput) (*usecase.ShopOutput, error) {
	srv.log(ctx).Debug("Creating shop", slog.Any("ownerID", ownerID), slog.String("name", input.Name))

	shop := &entity.Shop{
		OwnerID:       ownerID,
		Name:          input.Name,
		Description:   input.Description,
		Logo:          input.Logo,
		CoverImage:    input.CoverImage,
		Address:       input.Address,
		PhoneNumber:   input.PhoneNumber,
		Email:         input.Email,
		Website:       input.Website,
		BusinessHours: input.BusinessHours,
	}

	for i, url := range input.ImageURLs {
		shop.Images = append(shop.Images, &entity.ShopImage{
			URL:       url,
			IsPrimary: i == 0,
		})
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewShopRepository().Create(ctx, shop)
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to create shop", slog.Any("ownerID", ownerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute shop creation transaction")
	}

	srv.log(ctx).Info("Shop created", slog.Any("shopID", shop.ID), slog.Any("ownerID", ownerID))

	return srv.reloadShop(ctx, shop.ID)
}

// GetShop retrieves a single shop with its images and reviews.
func (srv *shopService) GetShop(ctx context.Context, shopID uuid.UUID) (*usecase.ShopOutput, error) {
	shop, err := srv.shopRepo.FindByID(ctx, shopID)
	if err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return nil, domainerrors.ErrShopNotFound.WrapMessage("shop lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find shop by id")
	}

	return usecase.NewShopOutput(shop), nil
}

// ListShops returns the shops matching the filter.
func (srv *shopService) ListShops(ctx context.Context, input *usecase.ListShopsInput) ([]*usecase.ShopOutput, error) {
	var filter *repository.ShopFilter
	if input != nil {
		filter = &repository.ShopFilter{
			IsVerified:     input.IsVerified,
			Search:         input.Search,
			SortBy:         repository.ShopSort(input.SortBy),
			SortDescending: input.SortDescending,
		}
	}

	shops, err := srv.shopRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shops")
	}

	outputs := make([]*usecase.ShopOutput, 0, len(shops))
	for _, shop := range shops {
		outputs = append(outputs, usecase.NewShopOutput(shop))
	}

	return outputs, nil
}

// UpdateShop applies a partial update. Only the owner may modify the shop;
// verification and aggregate ratings stay out of reach.
func (srv *shopService) UpdateShop(ctx context.Context, actorID, shopID uuid.UUID, input *usecase.UpdateShopInput) (*usecase.ShopOutput, error) {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		shopRepo := repoFactory.NewShopRepository()

		shop, err := shopRepo.FindByID(ctx, shopID)
		if err != nil {
			if errors.Is(err, repository.ErrShopNotFound) {
				return domainerrors.ErrShopNotFound.WrapMessage("shop update failed")
			}

			return errors.Wrap(err, "failed to find shop for update")
		}

		if shop.OwnerID != actorID {
			return domainerrors.ErrForbidden.WrapMessage("only the owner may modify this shop")
		}

		applyShopUpdate(shop, input)

		if err := shopRepo.Update(ctx, shop); err != nil {
			return errors.Wrap(err, "failed to update shop")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to update shop", slog.Any("shopID", shopID), slog.Any("error", err))

		return nil, err
	}

	return srv.reloadShop(ctx, shopID)
}

func applyShopUpdate(shop *entity.Shop, input *usecase.UpdateShopInput) {
	if input.Name != nil {
		shop.Name = *input.Name
	}
	if input.Description != nil {
		shop.Description = *input.Description
	}
	if input.Logo != nil {
		shop.Logo = *input.Logo
	}
	if input.CoverImage != nil {
		shop.CoverImage = *input.CoverImage
	}
	if input.Address != nil {
		shop.Address = *input.Address
	}
	if input.PhoneNumber != nil {
		shop.PhoneNumber = *input.PhoneNumber
	}
	if input.Email != nil {
		shop.Email = *input.Email
	}
	if input.Website != nil {
		shop.Website = *input.Website
	}
	if input.BusinessHours != nil {
		shop.BusinessHours = input.BusinessHours
	}
}

// DeleteShop removes a shop. Only the owner may delete it.
func (srv *shopService) DeleteShop(ctx context.Context, actorID, shopID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		shopRepo := repoFactory.NewShopRepository()

		shop, err := shopRepo.FindByID(ctx, shopID)
		if err != nil {
			if errors.Is(err, repository.ErrShopNotFound) {
				return domainerrors.ErrShopNotFound.WrapMessage("shop deletion failed")
			}

			return errors.Wrap(err, "failed to find shop for deletion")
		}

		if shop.OwnerID != actorID {
			return domainerrors.ErrForbidden.WrapMessage("only the owner may delete this shop")
		}

		if err := shopRepo.Delete(ctx, shopID); err != nil {
			return errors.Wrap(err, "failed to delete shop")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to delete shop", slog.Any("shopID", shopID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Info("Shop deleted", slog.Any("shopID", shopID))

	return nil
}

// CreateShopReview records a shop review. A user may review a given shop at
// most once.
func (srv *shopService) CreateShopReview(ctx context.Context, reviewerID, shopID uuid.UUID, input *usecase.CreateShopReviewInput) (*usecase.ShopReviewOutput, error) {
	if _, err := srv.shopRepo.FindByID(ctx, shopID); err != nil {
		if errors.Is(err, repository.ErrShopNotFound) {
			return nil, domainerrors.ErrShopNotFound.WrapMessage("shop review creation failed")
		}

		return nil, errors.Wrap(err, "failed to find shop for review")
	}

	review := &entity.ShopReview{
		ShopID:     shopID,
		ReviewerID: reviewerID,
		Rating:     input.Rating,
		Comment:    input.Comment,
	}

	if err := srv.shopReviewRepo.Create(ctx, review); err != nil {
		srv.log(ctx).Warn("Failed to create shop review", slog.Any("shopID", shopID), slog.Any("reviewerID", reviewerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create shop review")
	}

	return usecase.NewShopReviewOutput(review), nil
}

// ListShopReviews returns the shop's reviews, newest first.
func (srv *shopService) ListShopReviews(ctx context.Context, shopID uuid.UUID) ([]*usecase.ShopReviewOutput, error) {
	reviews, err := srv.shopReviewRepo.ListByShop(ctx, shopID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list shop reviews")
	}

	outputs := make([]*usecase.ShopReviewOutput, 0, len(reviews))
	for _, review := range reviews {
		outputs = append(outputs, usecase.NewShopReviewOutput(review))
	}

	return outputs, nil
}

// reloadShop re-reads a shop with all associations so the output carries the
// owner's name and ordered images.
func (srv *shopService) reloadShop(ctx context.Context, shopID uuid.UUID) (*usecase.ShopOutput, error) {
	shop, err := srv.shopRepo.FindByID(ctx, shopID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload shop")
	}

	return usecase.NewShopOutput(shop), nil
}
