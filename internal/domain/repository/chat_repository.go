package repository

import (
	"context"
	"errors"

	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRoomNotFound is a domain-specific error returned when a chat room is not
// found. It is also returned for rooms the caller may not see, so callers
// cannot distinguish a hidden room from a missing one.
var ErrRoomNotFound = errors.New("chat room not found")

// ChatRepository defines the operations for chat rooms and messages.
type ChatRepository interface {
	// CreateRoom persists a new room with its initial participant set.
	CreateRoom(ctx context.Context, room *entity.ChatRoom, participantIDs []uuid.UUID) error

	// FindRoomByID retrieves a room with its participants preloaded. The
	// room's LastMessage is resolved as the most recently created message.
	FindRoomByID(ctx context.Context, id uuid.UUID) (*entity.ChatRoom, error)

	// ListRoomsByParticipant returns every room the user belongs to, newest
	// first, each with participants and last message resolved.
	ListRoomsByParticipant(ctx context.Context, userID uuid.UUID) ([]*entity.ChatRoom, error)

	// IsParticipant reports whether the user belongs to the room.
	IsParticipant(ctx context.Context, roomID, userID uuid.UUID) (bool, error)

	// CreateMessage persists a new message in a room.
	CreateMessage(ctx context.Context, message *entity.Message) error

	// ListMessages returns the room's messages in chronological order
	// (oldest first), with senders preloaded.
	ListMessages(ctx context.Context, roomID uuid.UUID) ([]*entity.Message, error)
}
