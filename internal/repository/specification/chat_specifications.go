package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByChatID struct {
	ChatID uuid.UUID
}

func (s ByChatID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("chat_id = ?", s.ChatID)
}

// OwnedViaChat scopes generated images to a caller through their parent
// chat. Generated images carry no user_id column, so ownership hops the
// chats table.
type OwnedViaChat struct {
	UserID string
}

func (s OwnedViaChat) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("chat_id IN (SELECT id FROM chats WHERE user_id = ?)", s.UserID)
}
