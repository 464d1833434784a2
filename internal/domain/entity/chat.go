package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatRoom is a conversation between a set of participants. Only participants
// may see the room or its messages.
type ChatRoom struct {
	ID           uuid.UUID
	CreatedAt    time.Time
	Participants []*User

	// LastMessage is the most recently created message in the room, or nil
	// when the room is empty. Derived on read, never stored.
	LastMessage *Message
}

// HasParticipant reports whether the given user belongs to the room's
// participant set.
func (r *ChatRoom) HasParticipant(userID uuid.UUID) bool {
	for _, p := range r.Participants {
		if p.ID == userID {
			return true
		}
	}

	return false
}

// Message is an immutable chat message; there is no update or delete.
type Message struct {
	ID         uuid.UUID
	ChatRoomID uuid.UUID
	SenderID   uuid.UUID
	Content    string
	CreatedAt  time.Time

	Sender *User
}
