package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestChatRoom_HasParticipant(t *testing.T) {
	memberID := uuid.New()
	otherID := uuid.New()

	room := &ChatRoom{
		Participants: []*User{
			{ID: memberID},
			{ID: uuid.New()},
		},
	}

	assert.True(t, room.HasParticipant(memberID))
	assert.False(t, room.HasParticipant(otherID))
}

func TestChatRoom_HasParticipant_Empty(t *testing.T) {
	room := &ChatRoom{}

	assert.False(t, room.HasParticipant(uuid.New()))
}
