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

// chatService implements the ChatUsecase interface. Rooms the actor does not
// belong to are reported as not found, never as forbidden, so outsiders
// cannot probe for their existence.
type chatService struct {
	txManager repository.TransactionManager
	chatRepo  repository.ChatRepository
	userRepo  repository.UserRepository
	logger    *slog.Logger
}

// ChatServiceParams holds dependencies for chatService, injected by Fx.
type ChatServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	ChatRepo  repository.ChatRepository
	UserRepo  repository.UserRepository
	Logger    *slog.Logger
}

// NewChatService is the constructor for chatService.
func NewChatService(params ChatServiceParams) usecase.ChatUsecase {
	return &chatService{
		txManager: params.TxManager,
		chatRepo:  params.ChatRepo,
		userRepo:  params.UserRepo,
		logger:    params.Logger,
	}
}

func (srv *chatService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateRoom opens a conversation. The actor always ends up in the
// participant set, whether or not they listed themselves.
func (srv *chatService) CreateRoom(ctx context.Context, actorID uuid.UUID, input *usecase.CreateRoomInput) (*usecase.RoomOutput, error) {
	participantIDs := dedupeParticipants(actorID, input.ParticipantIDs)

	room := &entity.ChatRoom{}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewChatRepository().CreateRoom(ctx, room, participantIDs)
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to create chat room", slog.Any("actorID", actorID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute chat room creation transaction")
	}

	srv.log(ctx).Info("Chat room created", slog.Any("roomID", room.ID), slog.Any("actorID", actorID))

	created, err := srv.chatRepo.FindRoomByID(ctx, room.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload chat room")
	}

	return usecase.NewRoomOutput(created), nil
}

func dedupeParticipants(actorID uuid.UUID, ids []uuid.UUID) []uuid.UUID {
	seen := map[uuid.UUID]struct{}{actorID: {}}
	result := []uuid.UUID{actorID}

	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}

	return result
}

// ListRooms returns the actor's conversations, newest first.
func (srv *chatService) ListRooms(ctx context.Context, actorID uuid.UUID) ([]*usecase.RoomOutput, error) {
	rooms, err := srv.chatRepo.ListRoomsByParticipant(ctx, actorID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list chat rooms")
	}

	outputs := make([]*usecase.RoomOutput, 0, len(rooms))
	for _, room := range rooms {
		outputs = append(outputs, usecase.NewRoomOutput(room))
	}

	return outputs, nil
}

// GetRoom retrieves a conversation the actor belongs to.
func (srv *chatService) GetRoom(ctx context.Context, actorID, roomID uuid.UUID) (*usecase.RoomOutput, error) {
	room, err := srv.findVisibleRoom(ctx, actorID, roomID)
	if err != nil {
		return nil, err
	}

	return usecase.NewRoomOutput(room), nil
}

// SendMessage posts a message into a conversation the actor belongs to.
func (srv *chatService) SendMessage(ctx context.Context, actorID, roomID uuid.UUID, input *usecase.SendMessageInput) (*usecase.MessageOutput, error) {
	if err := srv.requireMembership(ctx, actorID, roomID); err != nil {
		return nil, err
	}

	message := &entity.Message{
		ChatRoomID: roomID,
		SenderID:   actorID,
		Content:    input.Content,
	}

	if err := srv.chatRepo.CreateMessage(ctx, message); err != nil {
		srv.log(ctx).Warn("Failed to send message", slog.Any("roomID", roomID), slog.Any("actorID", actorID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create message")
	}

	if sender, err := srv.userRepo.FindByID(ctx, actorID); err == nil {
		message.Sender = sender
	}

	return usecase.NewMessageOutput(message), nil
}

// ListMessages returns the conversation's messages in chronological order.
func (srv *chatService) ListMessages(ctx context.Context, actorID, roomID uuid.UUID) ([]*usecase.MessageOutput, error) {
	if err := srv.requireMembership(ctx, actorID, roomID); err != nil {
		return nil, err
	}

	messages, err := srv.chatRepo.ListMessages(ctx, roomID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list messages")
	}

	outputs := make([]*usecase.MessageOutput, 0, len(messages))
	for _, message := range messages {
		outputs = append(outputs, usecase.NewMessageOutput(message))
	}

	return outputs, nil
}

// findVisibleRoom loads a room and hides it from non-participants.
func (srv *chatService) findVisibleRoom(ctx context.Context, actorID, roomID uuid.UUID) (*entity.ChatRoom, error) {
	room, err := srv.chatRepo.FindRoomByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return nil, domainerrors.ErrRoomNotFound.WrapMessage("chat room lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find chat room by id")
	}

	if !room.HasParticipant(actorID) {
		return nil, domainerrors.ErrRoomNotFound.WrapMessage("chat room lookup failed")
	}

	return room, nil
}

func (srv *chatService) requireMembership(ctx context.Context, actorID, roomID uuid.UUID) error {
	member, err := srv.chatRepo.IsParticipant(ctx, roomID, actorID)
	if err != nil {
		return errors.Wrap(err, "failed to check chat room membership")
	}
	if !member {
		return domainerrors.ErrRoomNotFound.WrapMessage("chat room lookup failed")
	}

	return nil
}
