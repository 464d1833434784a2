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

// chatRepository implements the domain.ChatRepository interface using GORM.
type chatRepository struct {
	db *gorm.DB
}

// NewChatRepository is the constructor for chatRepository.
func NewChatRepository(db *gorm.DB) repository.ChatRepository {
	return &chatRepository{db: db}
}

// CreateRoom persists a new room and links the given participants through the
// join table. Omit("Participants.*") keeps GORM from upserting the user rows.
func (repo *chatRepository) CreateRoom(ctx context.Context, room *entity.ChatRoom, participantIDs []uuid.UUID) error {
	roomM := &model.ChatRoomModel{}
	for _, participantID := range participantIDs {
		roomM.Participants = append(roomM.Participants, &model.UserModel{ID: participantID})
	}

	err := repo.db.WithContext(ctx).
		Omit("Participants.*").
		Create(roomM).Error

	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("unknown participant")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create chat room")
	}

	room.ID = roomM.ID
	room.CreatedAt = roomM.CreatedAt

	return nil
}

// FindRoomByID retrieves a room with participants preloaded and its last
// message resolved.
func (repo *chatRepository) FindRoomByID(ctx context.Context, id uuid.UUID) (*entity.ChatRoom, error) {
	var roomM model.ChatRoomModel
	err := repo.db.WithContext(ctx).
		Preload("Participants").
		Where("id = ?", id).
		First(&roomM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRoomNotFound
		}

		return nil, errors.Wrap(err, "failed to find chat room by id")
	}

	room := toChatRoomDomain(&roomM)

	lastMessage, err := repo.findLastMessage(ctx, room.ID)
	if err != nil {
		return nil, err
	}
	room.LastMessage = lastMessage

	return room, nil
}

// ListRoomsByParticipant returns every room the user belongs to, newest first.
func (repo *chatRepository) ListRoomsByParticipant(ctx context.Context, userID uuid.UUID) ([]*entity.ChatRoom, error) {
	var roomModels []*model.ChatRoomModel
	err := repo.db.WithContext(ctx).
		Preload("Participants").
		Where("id IN (SELECT chat_room_id FROM chat_room_participants WHERE user_id = ?)", userID).
		Order("created_at DESC").
		Find(&roomModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list chat rooms by participant")
	}

	rooms := make([]*entity.ChatRoom, 0, len(roomModels))
	for _, roomM := range roomModels {
		room := toChatRoomDomain(roomM)

		lastMessage, err := repo.findLastMessage(ctx, room.ID)
		if err != nil {
			return nil, err
		}
		room.LastMessage = lastMessage

		rooms = append(rooms, room)
	}

	return rooms, nil
}

// IsParticipant reports whether the user belongs to the room.
func (repo *chatRepository) IsParticipant(ctx context.Context, roomID, userID uuid.UUID) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Table("chat_room_participants").
		Where("chat_room_id = ? AND user_id = ?", roomID, userID).
		Count(&count).Error

	if err != nil {
		return false, errors.Wrap(err, "failed to check chat room membership")
	}

	return count > 0, nil
}

// CreateMessage persists a new message in a room.
func (repo *chatRepository) CreateMessage(ctx context.Context, message *entity.Message) error {
	messageM := fromMessageDomain(message)

	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrRoomNotFound.WrapMessage("invalid room or sender reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required message information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create message")
	}

	message.ID = messageM.ID
	message.CreatedAt = messageM.CreatedAt

	return nil
}

// ListMessages returns the room's messages oldest first with senders preloaded.
func (repo *chatRepository) ListMessages(ctx context.Context, roomID uuid.UUID) ([]*entity.Message, error) {
	var messageModels []*model.MessageModel
	err := repo.db.WithContext(ctx).
		Preload("Sender").
		Where("chat_room_id = ?", roomID).
		Order("created_at ASC").
		Find(&messageModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to list messages")
	}

	messages := make([]*entity.Message, 0, len(messageModels))
	for _, messageM := range messageModels {
		messages = append(messages, toMessageDomain(messageM))
	}

	return messages, nil
}

// findLastMessage resolves the most recently created message of a room, or nil
// when the room has none.
func (repo *chatRepository) findLastMessage(ctx context.Context, roomID uuid.UUID) (*entity.Message, error) {
	var messageM model.MessageModel
	err := repo.db.WithContext(ctx).
		Preload("Sender").
		Where("chat_room_id = ?", roomID).
		Order("created_at DESC").
		First(&messageM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find last message")
	}

	return toMessageDomain(&messageM), nil
}

// --- Mapper Functions ---

// toChatRoomDomain converts a GORM ChatRoomModel to a domain ChatRoom entity.
func toChatRoomDomain(data *model.ChatRoomModel) *entity.ChatRoom {
	if data == nil {
		return nil
	}

	participants := make([]*entity.User, 0, len(data.Participants))
	for _, participantM := range data.Participants {
		participants = append(participants, toUserDomain(participantM))
	}

	return &entity.ChatRoom{
		ID:           data.ID,
		CreatedAt:    data.CreatedAt,
		Participants: participants,
	}
}

// fromMessageDomain converts a domain Message entity to a GORM MessageModel.
func fromMessageDomain(data *entity.Message) *model.MessageModel {
	if data == nil {
		return nil
	}

	return &model.MessageModel{
		ChatRoomID: data.ChatRoomID,
		SenderID:   data.SenderID,
		Content:    data.Content,
	}
}

// toMessageDomain converts a GORM MessageModel to a domain Message entity.
func toMessageDomain(data *model.MessageModel) *entity.Message {
	if data == nil {
		return nil
	}

	return &entity.Message{
		ID:         data.ID,
		ChatRoomID: data.ChatRoomID,
		SenderID:   data.SenderID,
		Content:    data.Content,
		CreatedAt:  data.CreatedAt,
		Sender:     toUserDomain(data.Sender),
	}
}
