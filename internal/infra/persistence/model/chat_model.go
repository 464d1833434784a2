package model

import (
	"time"

	"github.com/google/uuid"
)

// ChatRoomModel mirrors the 'chat_rooms' table. Participants live in the
// 'chat_room_participants' join table.
type ChatRoomModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CreatedAt time.Time

	Participants []*UserModel   `gorm:"many2many:chat_room_participants;joinForeignKey:ChatRoomID;joinReferences:UserID;constraint:OnDelete:CASCADE"`
	Messages     []MessageModel `gorm:"foreignKey:ChatRoomID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ChatRoomModel) TableName() string {
	return "chat_rooms"
}

// MessageModel mirrors the 'messages' table. Rows are immutable; there is no
// updated_at column.
type MessageModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ChatRoomID uuid.UUID `gorm:"type:uuid;not null;index"`
	SenderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Content    string    `gorm:"type:text;not null"`
	CreatedAt  time.Time `gorm:"index"`

	Sender *UserModel `gorm:"foreignKey:SenderID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (MessageModel) TableName() string {
	return "messages"
}
