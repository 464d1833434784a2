package postgres

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// brandRepository implements the domain.BrandRepository interface.
type brandRepository struct {
	db *gorm.DB
}

// NewBrandRepository is the constructor for brandRepository.
func NewBrandRepository(db *gorm.DB) repository.BrandRepository {
	return &brandRepository{db: db}
}

// List returns all brands ordered by name, optionally only featured ones.
func (repo *brandRepository) List(ctx context.Context, featuredOnly bool) ([]*entity.Brand, error) {
	tx := repo.db.WithContext(ctx).Order("name ASC")
	if featuredOnly {
		tx = tx.Where("is_featured = ?", true)
	}

	var brandModels []*model.BrandModel
	if err := tx.Find(&brandModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list brands")
	}

	brands := make([]*entity.Brand, 0, len(brandModels))
	for _, brandM := range brandModels {
		brands = append(brands, toBrandDomain(brandM))
	}

	return brands, nil
}

// FindByID retrieves a single brand by its unique ID.
func (repo *brandRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Brand, error) {
	var brandM model.BrandModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&brandM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBrandNotFound
		}

		return nil, errors.Wrap(err, "failed to find brand by id")
	}

	return toBrandDomain(&brandM), nil
}

// toBrandDomain converts a GORM BrandModel to a domain Brand entity.
func toBrandDomain(data *model.BrandModel) *entity.Brand {
	if data == nil {
		return nil
	}

	return &entity.Brand{
		ID:          data.ID,
		Name:        data.Name,
		Slug:        data.Slug,
		Logo:        data.Logo,
		Description: data.Description,
		IsFeatured:  data.IsFeatured,
		CreatedAt:   data.CreatedAt,
	}
}
