package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	mockRepo "bazaar/internal/mocks/repository"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type chatServiceFixtures struct {
	service  usecase.ChatUsecase
	chatRepo *mockRepo.MockChatRepository
	userRepo *mockRepo.MockUserRepository
	factory  *mockRepo.MockRepositoryFactory
}

func createTestChatService(t *testing.T) chatServiceFixtures {
	t.Helper()

	chatRepo := &mockRepo.MockChatRepository{}
	userRepo := &mockRepo.MockUserRepository{}
	factory := &mockRepo.MockRepositoryFactory{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewChatService(ChatServiceParams{
		TxManager: &mockRepo.PassthroughTransactionManager{Factory: factory},
		ChatRepo:  chatRepo,
		UserRepo:  userRepo,
		Logger:    logger,
	})

	return chatServiceFixtures{
		service:  service,
		chatRepo: chatRepo,
		userRepo: userRepo,
		factory:  factory,
	}
}

func TestChatService_CreateRoom_ActorAlwaysIncluded(t *testing.T) {
	fxt := createTestChatService(t)
	ctx := context.Background()
	actorID := uuid.New()
	otherID := uuid.New()
	roomID := uuid.New()

	txChatRepo := &mockRepo.MockChatRepository{}
	fxt.factory.On("NewChatRepository").Return(txChatRepo)
	txChatRepo.On("CreateRoom", ctx, mock.AnythingOfType("*entity.ChatRoom"), mock.MatchedBy(func(ids []uuid.UUID) bool {
		return len(ids) == 2 && ids[0] == actorID && ids[1] == otherID
	})).
		Run(func(args mock.Arguments) {
			room := args.Get(1).(*entity.ChatRoom)
			room.ID = roomID
		}).
		Return(nil)

	fxt.chatRepo.On("FindRoomByID", ctx, roomID).
		Return(&entity.ChatRoom{
			ID: roomID,
			Participants: []*entity.User{
				{ID: actorID},
				{ID: otherID},
			},
		}, nil)

	// The actor appears twice in the input; the duplicate is collapsed.
	output, err := fxt.service.CreateRoom(ctx, actorID, &usecase.CreateRoomInput{
		ParticipantIDs: []uuid.UUID{actorID, otherID, otherID},
	})

	require.NoError(t, err)
	assert.Equal(t, roomID, output.ID)
	assert.Len(t, output.Participants, 2)
	txChatRepo.AssertExpectations(t)
}

func TestChatService_CreateRoom_CreatorOnly(t *testing.T) {
	fxt := createTestChatService(t)
	ctx := context.Background()
	actorID := uuid.New()
	roomID := uuid.New()

	txChatRepo := &mockRepo.MockChatRepository{}
	fxt.factory.On("NewChatRepository").Return(txChatRepo)
	txChatRepo.On("CreateRoom", ctx, mock.AnythingOfType("*entity.ChatRoom"), []uuid.UUID{actorID}).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.ChatRoom).ID = roomID
		}).
		Return(nil)

	fxt.chatRepo.On("FindRoomByID", ctx, roomID).
		Return(&entity.ChatRoom{ID: roomID, Participants: []*entity.User{{ID: actorID}}}, nil)

	output, err := fxt.service.CreateRoom(ctx, actorID, &usecase.CreateRoomInput{})

	require.NoError(t, err)
	assert.Len(t, output.Participants, 1)
}

func TestChatService_CreateRoom_UnknownParticipant(t *testing.T) {
	fxt := createTestChatService(t)
	ctx := context.Background()
	actorID := uuid.New()

	txChatRepo := &mockRepo.MockChatRepository{}
	fxt.factory.On("NewChatRepository").Return(txChatRepo)
	txChatRepo.On("CreateRoom", ctx, mock.AnythingOfType("*entity.ChatRoom"), mock.Anything).
		Return(domainerrors.ErrValidationFailed.WrapMessage("unknown participant"))

	_, err := fxt.service.CreateRoom(ctx, actorID, &usecase.CreateRoomInput{
		ParticipantIDs: []uuid.UUID{uuid.New()},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestChatService_GetRoom_NonParticipantSeesNotFound(t *testing.T) {
	fxt := createTestChatService(t)
	ctx := context.Background()
	roomID := uuid.New()

	room := &entity.ChatRoom{
		ID: roomID,
		Participants: []*entity.User{
			{ID: uuid.New()},
			{ID: uuid.New()},
		},
	}

	fxt.chatRepo.On("FindRoomByID", ctx, roomID).Return(room, nil)

	_, err := fxt.service.GetRoom(ctx, uuid.New(), roomID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRoomNotFound)
}

func TestChatService_GetRoom_Member(t *testing.T) {
	fxt := createTestChatService(t)
	ctx := context.Background()
	actorID := uuid.New()
	roomID := uuid.New()

	room := &entity.ChatRoom{
		ID: roomID,
		Participants: []*entity.User{
			{ID: actorID},
			{ID: uuid.New()},
		},
		LastMessage: &entity.Message{Content: "see you at noon"},
	}

	fxt.chatRepo.On("FindRoomByID", ctx, roomID).Return(room, nil)

	output, err := fxt.service.GetRoom(ctx, actorID, roomID)

	require.NoError(t, err)
	assert.Equal(t, roomID, output.ID)
	require.NotNil(t, output.LastMessage)
	assert.Equal(t, "see you at noon", output.LastMessage.Content)
}

func TestChatService_SendMessage_NonMemberSeesNotFound(t *testing.T) {
	fxt := createTestChatService(t)
	ctx := context.Background()
	actorID := uuid.New()
	roomID := uuid.New()

	fxt.chatRepo.On("IsParticipant", ctx, roomID, actorID).Return(false, nil)

	_, err := fxt.service.SendMessage(ctx, actorID, roomID, &usecase.SendMessageInput{
		Content: "hello?",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRoomNotFound)
	fxt.chatRepo.AssertNotCalled(t, "CreateMessage", mock.Anything, mock.Anything)
}

func TestChatService_SendMessage_Success(t *testing.T) {
	fxt := createTestChatService(t)
	ctx := context.Background()
	actorID := uuid.New()
	roomID := uuid.New()

	fxt.chatRepo.On("IsParticipant", ctx, roomID, actorID).Return(true, nil)
	fxt.chatRepo.On("CreateMessage", ctx, mock.AnythingOfType("*entity.Message")).
		Run(func(args mock.Arguments) {
			message := args.Get(1).(*entity.Message)
			message.ID = uuid.New()

			assert.Equal(t, roomID, message.ChatRoomID)
			assert.Equal(t, actorID, message.SenderID)
		}).
		Return(nil)
	fxt.userRepo.On("FindByID", ctx, actorID).Return(&entity.User{ID: actorID, Username: "alice"}, nil)

	output, err := fxt.service.SendMessage(ctx, actorID, roomID, &usecase.SendMessageInput{
		Content: "is this still available?",
	})

	require.NoError(t, err)
	assert.Equal(t, "is this still available?", output.Content)
	assert.Equal(t, "alice", output.SenderName)
}

func TestChatService_ListMessages_NonMemberSeesNotFound(t *testing.T) {
	fxt := createTestChatService(t)
	ctx := context.Background()
	actorID := uuid.New()
	roomID := uuid.New()

	fxt.chatRepo.On("IsParticipant", ctx, roomID, actorID).Return(false, nil)

	_, err := fxt.service.ListMessages(ctx, actorID, roomID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrRoomNotFound)
	fxt.chatRepo.AssertNotCalled(t, "ListMessages", mock.Anything, mock.Anything)
}

func TestChatService_ListRooms(t *testing.T) {
	fxt := createTestChatService(t)
	ctx := context.Background()
	actorID := uuid.New()

	rooms := []*entity.ChatRoom{
		{ID: uuid.New(), Participants: []*entity.User{{ID: actorID}, {ID: uuid.New()}}},
		{ID: uuid.New(), Participants: []*entity.User{{ID: actorID}, {ID: uuid.New()}}},
	}

	fxt.chatRepo.On("ListRoomsByParticipant", ctx, actorID).Return(rooms, nil)

	outputs, err := fxt.service.ListRooms(ctx, actorID)

	require.NoError(t, err)
	require.Len(t, outputs, 2)
	assert.Equal(t, rooms[0].ID, outputs[0].ID)
}

func TestDedupeParticipants(t *testing.T) {
	actorID := uuid.New()
	a := uuid.New()
	b := uuid.New()

	result := dedupeParticipants(actorID, []uuid.UUID{a, actorID, b, a})

	assert.Equal(t, []uuid.UUID{actorID, a, b}, result)
}
