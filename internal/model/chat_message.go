package model

import (
	"time"

	"gorm.io/datatypes"
)

// ChatMessage is one turn in a chat session. Appended, never mutated.
// Metadata carries token usage and finish reason for assistant turns.
type ChatMessage struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	SessionID uint           `gorm:"not null;index" json:"session_id"`
	Role      string         `gorm:"size:16;not null;index" json:"role"`
	Content   string         `gorm:"type:text;not null" json:"content"`
	Metadata  datatypes.JSON `gorm:"type:json" json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}
