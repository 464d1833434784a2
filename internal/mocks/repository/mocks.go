// Package repository provides hand-written testify mocks for the domain
// repository interfaces, used by the use case tests.
package repository

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockTransactionManager mocks repository.TransactionManager.
type MockTransactionManager struct {
	mock.Mock
}

func (m *MockTransactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	args := m.Called(ctx, fn)

	return args.Error(0)
}

// PassthroughTransactionManager runs the callback directly against a fixed
// factory, so tests exercise transactional flows without a database.
type PassthroughTransactionManager struct {
	Factory repository.RepositoryFactory
}

func (p *PassthroughTransactionManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(p.Factory)
}

// MockRepositoryFactory mocks repository.RepositoryFactory.
type MockRepositoryFactory struct {
	mock.Mock
}

func (m *MockRepositoryFactory) NewUserRepository() repository.UserRepository {
	return m.Called().Get(0).(repository.UserRepository)
}

func (m *MockRepositoryFactory) NewProductRepository() repository.ProductRepository {
	return m.Called().Get(0).(repository.ProductRepository)
}

func (m *MockRepositoryFactory) NewShopRepository() repository.ShopRepository {
	return m.Called().Get(0).(repository.ShopRepository)
}

func (m *MockRepositoryFactory) NewChatRepository() repository.ChatRepository {
	return m.Called().Get(0).(repository.ChatRepository)
}

// MockUserRepository mocks repository.UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	args := m.Called(ctx, id)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if user, ok := args.Get(0).(*entity.User); ok {
		return user, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entity.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockCategoryRepository mocks repository.CategoryRepository.
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	args := m.Called(ctx)
	if categories, ok := args.Get(0).([]*entity.Category); ok {
		return categories, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	args := m.Called(ctx, id)
	if category, ok := args.Get(0).(*entity.Category); ok {
		return category, args.Error(1)
	}

	return nil, args.Error(1)
}

// MockBrandRepository mocks repository.BrandRepository.
type MockBrandRepository struct {
	mock.Mock
}

func (m *MockBrandRepository) List(ctx context.Context, featuredOnly bool) ([]*entity.Brand, error) {
	args := m.Called(ctx, featuredOnly)
	if brands, ok := args.Get(0).([]*entity.Brand); ok {
		return brands, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockBrandRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Brand, error) {
	args := m.Called(ctx, id)
	if brand, ok := args.Get(0).(*entity.Brand); ok {
		return brand, args.Error(1)
	}

	return nil, args.Error(1)
}

// MockProductRepository mocks repository.ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *entity.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if product, ok := args.Get(0).(*entity.Product); ok {
		return product, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProductRepository) List(ctx context.Context, filter *repository.ProductFilter) ([]*entity.Product, error) {
	args := m.Called(ctx, filter)
	if products, ok := args.Get(0).([]*entity.Product); ok {
		return products, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, product *entity.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockProductRepository) IncrementViews(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockReviewRepository mocks repository.ReviewRepository.
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	return m.Called(ctx, review).Error(0)
}

func (m *MockReviewRepository) ListByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error) {
	args := m.Called(ctx, productID)
	if reviews, ok := args.Get(0).([]*entity.Review); ok {
		return reviews, args.Error(1)
	}

	return nil, args.Error(1)
}

// MockShopRepository mocks repository.ShopRepository.
type MockShopRepository struct {
	mock.Mock
}

func (m *MockShopRepository) Create(ctx context.Context, shop *entity.Shop) error {
	return m.Called(ctx, shop).Error(0)
}

func (m *MockShopRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Shop, error) {
	args := m.Called(ctx, id)
	if shop, ok := args.Get(0).(*entity.Shop); ok {
		return shop, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockShopRepository) List(ctx context.Context, filter *repository.ShopFilter) ([]*entity.Shop, error) {
	args := m.Called(ctx, filter)
	if shops, ok := args.Get(0).([]*entity.Shop); ok {
		return shops, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockShopRepository) Update(ctx context.Context, shop *entity.Shop) error {
	return m.Called(ctx, shop).Error(0)
}

func (m *MockShopRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockShopReviewRepository mocks repository.ShopReviewRepository.
type MockShopReviewRepository struct {
	mock.Mock
}

func (m *MockShopReviewRepository) Create(ctx context.Context, review *entity.ShopReview) error {
	return m.Called(ctx, review).Error(0)
}

func (m *MockShopReviewRepository) ListByShop(ctx context.Context, shopID uuid.UUID) ([]*entity.ShopReview, error) {
	args := m.Called(ctx, shopID)
	if reviews, ok := args.Get(0).([]*entity.ShopReview); ok {
		return reviews, args.Error(1)
	}

	return nil, args.Error(1)
}

// MockChatRepository mocks repository.ChatRepository.
type MockChatRepository struct {
	mock.Mock
}

func (m *MockChatRepository) CreateRoom(ctx context.Context, room *entity.ChatRoom, participantIDs []uuid.UUID) error {
	return m.Called(ctx, room, participantIDs).Error(0)
}

func (m *MockChatRepository) FindRoomByID(ctx context.Context, id uuid.UUID) (*entity.ChatRoom, error) {
	args := m.Called(ctx, id)
	if room, ok := args.Get(0).(*entity.ChatRoom); ok {
		return room, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockChatRepository) ListRoomsByParticipant(ctx context.Context, userID uuid.UUID) ([]*entity.ChatRoom, error) {
	args := m.Called(ctx, userID)
	if rooms, ok := args.Get(0).([]*entity.ChatRoom); ok {
		return rooms, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockChatRepository) IsParticipant(ctx context.Context, roomID, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, roomID, userID)

	return args.Bool(0), args.Error(1)
}

func (m *MockChatRepository) CreateMessage(ctx context.Context, message *entity.Message) error {
	return m.Called(ctx, message).Error(0)
}

func (m *MockChatRepository) ListMessages(ctx context.Context, roomID uuid.UUID) ([]*entity.Message, error) {
	args := m.Called(ctx, roomID)
	if messages, ok := args.Get(0).([]*entity.Message); ok {
		return messages, args.Error(1)
	}

	return nil, args.Error(1)
}
