package usecase

import (
	"context"
	"time"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateRoomInput defines the participants of a new conversation. The caller
// is always added to the participant set; an empty list opens a room holding
// only the caller.
type CreateRoomInput struct {
	ParticipantIDs []uuid.UUID `json:"participant_ids"`
}

// SendMessageInput defines the data required to post a message.
type SendMessageInput struct {
	Content string `json:"content" validate:"required"`
}

// --- Output DTOs ---

// MessageOutput is the public view of a chat message.
type MessageOutput struct {
	ID         uuid.UUID `json:"id"`
	ChatRoomID uuid.UUID `json:"chat_room_id"`
	SenderID   uuid.UUID `json:"sender_id"`
	SenderName string    `json:"sender_name,omitempty"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

// RoomOutput is the public view of a conversation, including the derived
// last message when the room has any.
type RoomOutput struct {
	ID           uuid.UUID      `json:"id"`
	Participants []*UserOutput  `json:"participants"`
	LastMessage  *MessageOutput `json:"last_message,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
}

// NewMessageOutput maps a domain message to its public view.
func NewMessageOutput(message *entity.Message) *MessageOutput {
	if message == nil {
		return nil
	}

	out := &MessageOutput{
		ID:         message.ID,
		ChatRoomID: message.ChatRoomID,
		SenderID:   message.SenderID,
		Content:    message.Content,
		CreatedAt:  message.CreatedAt,
	}
	if message.Sender != nil {
		out.SenderName = message.Sender.Username
	}

	return out
}

// NewRoomOutput maps a domain chat room to its public view.
func NewRoomOutput(room *entity.ChatRoom) *RoomOutput {
	if room == nil {
		return nil
	}

	out := &RoomOutput{
		ID:           room.ID,
		Participants: make([]*UserOutput, 0, len(room.Participants)),
		LastMessage:  NewMessageOutput(room.LastMessage),
		CreatedAt:    room.CreatedAt,
	}
	for _, participant := range room.Participants {
		out.Participants = append(out.Participants, NewUserOutput(participant))
	}

	return out
}

// ChatUsecase defines the interface for conversation-related business
// operations. Every operation is scoped to the acting user; rooms the actor
// does not belong to are reported as not found.
type ChatUsecase interface {
	CreateRoom(ctx context.Context, actorID uuid.UUID, input *CreateRoomInput) (*RoomOutput, error)
	ListRooms(ctx context.Context, actorID uuid.UUID) ([]*RoomOutput, error)
	GetRoom(ctx context.Context, actorID, roomID uuid.UUID) (*RoomOutput, error)

	SendMessage(ctx context.Context, actorID, roomID uuid.UUID, input *SendMessageInput) (*MessageOutput, error)
	ListMessages(ctx context.Context, actorID, roomID uuid.UUID) ([]*MessageOutput, error)
}
