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
	mockService "bazaar/internal/mocks/service"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockService.MockPasswordHasher
	tokenService *mockService.MockTokenService
	factory      *mockRepo.MockRepositoryFactory
}

func createTestUserService(t *testing.T) userServiceFixtures {
	t.Helper()

	userRepo := &mockRepo.MockUserRepository{}
	hasher := &mockService.MockPasswordHasher{}
	tokenService := &mockService.MockTokenService{}
	factory := &mockRepo.MockRepositoryFactory{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewUserService(UserServiceParams{
		TxManager:    &mockRepo.PassthroughTransactionManager{Factory: factory},
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       logger,
	})

	return userServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
		factory:      factory,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fxt := createTestUserService(t)
	ctx := context.Background()

	input := &usecase.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cretpass",
	}

	fxt.hasher.On("Hash", "s3cretpass").Return("hashed", nil)
	fxt.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*entity.User)
			user.ID = uuid.New()
		}).
		Return(nil)
	fxt.tokenService.On("GenerateToken", mock.AnythingOfType("uuid.UUID"), "buyer").Return("token", nil)

	output, err := fxt.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "token", output.AccessToken)
	assert.Equal(t, "alice", output.User.Username)
	assert.Equal(t, "buyer", output.User.UserType)
	fxt.userRepo.AssertExpectations(t)
}

func TestUserService_Register_InvalidUserType(t *testing.T) {
	fxt := createTestUserService(t)

	input := &usecase.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cretpass",
		UserType: "admin",
	}

	_, err := fxt.service.Register(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	fxt := createTestUserService(t)
	ctx := context.Background()

	input := &usecase.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "s3cretpass",
	}

	fxt.hasher.On("Hash", "s3cretpass").Return("hashed", nil)
	fxt.userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Return(domainerrors.ErrUserAlreadyExists.WrapMessage("email or username already exists"))

	_, err := fxt.service.Register(ctx, input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Login_Success(t *testing.T) {
	fxt := createTestUserService(t)
	ctx := context.Background()

	user := &entity.User{
		ID:           uuid.New(),
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: "hashed",
		UserType:     entity.UserTypeSeller,
	}

	fxt.userRepo.On("FindByEmail", ctx, "alice@example.com").Return(user, nil)
	fxt.hasher.On("Check", "s3cretpass", "hashed").Return(true)
	fxt.tokenService.On("GenerateToken", user.ID, "seller").Return("token", nil)

	output, err := fxt.service.Login(ctx, &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "s3cretpass",
	})

	require.NoError(t, err)
	assert.Equal(t, "token", output.AccessToken)
	assert.Equal(t, user.ID, output.User.ID)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fxt := createTestUserService(t)
	ctx := context.Background()

	user := &entity.User{ID: uuid.New(), PasswordHash: "hashed"}

	fxt.userRepo.On("FindByEmail", ctx, "alice@example.com").Return(user, nil)
	fxt.hasher.On("Check", "wrong", "hashed").Return(false)

	_, err := fxt.service.Login(ctx, &usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "wrong",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fxt := createTestUserService(t)
	ctx := context.Background()

	fxt.userRepo.On("FindByEmail", ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	_, err := fxt.service.Login(ctx, &usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	// Unknown emails and wrong passwords are indistinguishable to the caller.
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_UpdateProfile_Success(t *testing.T) {
	fxt := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	existing := &entity.User{ID: userID, Username: "alice", PhoneNumber: "111"}
	newPhone := "0912345678"

	userRepo := &mockRepo.MockUserRepository{}
	fxt.factory.On("NewUserRepository").Return(userRepo)
	userRepo.On("FindByID", ctx, userID).Return(existing, nil)
	userRepo.On("Update", ctx, existing).Return(nil)

	output, err := fxt.service.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{
		PhoneNumber: &newPhone,
	})

	require.NoError(t, err)
	assert.Equal(t, newPhone, output.PhoneNumber)
	assert.Equal(t, "alice", output.Username)
}

func TestUserService_Verify_SetsFlagOnce(t *testing.T) {
	fxt := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	existing := &entity.User{ID: userID, IsVerified: false}

	userRepo := &mockRepo.MockUserRepository{}
	fxt.factory.On("NewUserRepository").Return(userRepo)
	userRepo.On("FindByID", ctx, userID).Return(existing, nil)
	userRepo.On("Update", ctx, existing).Return(nil)

	output, err := fxt.service.Verify(ctx, userID)

	require.NoError(t, err)
	assert.True(t, output.IsVerified)
	userRepo.AssertNumberOfCalls(t, "Update", 1)
}

func TestUserService_Verify_AlreadyVerified(t *testing.T) {
	fxt := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	existing := &entity.User{ID: userID, IsVerified: true}

	userRepo := &mockRepo.MockUserRepository{}
	fxt.factory.On("NewUserRepository").Return(userRepo)
	userRepo.On("FindByID", ctx, userID).Return(existing, nil)

	output, err := fxt.service.Verify(ctx, userID)

	require.NoError(t, err)
	assert.True(t, output.IsVerified)
	userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUserService_GetProfile_NotFound(t *testing.T) {
	fxt := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	fxt.userRepo.On("FindByID", ctx, userID).Return(nil, errors.WithStack(repository.ErrUserNotFound))

	_, err := fxt.service.GetProfile(ctx, userID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
