package model

import "time"

// ChatSession groups messages for one user against one document. Created
// lazily on the first chat message that names a document.
type ChatSession struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	DocumentID uint      `gorm:"not null;index" json:"document_id"`
	UserID     uint      `gorm:"not null;index" json:"user_id"`
	CreatedAt  time.Time `json:"created_at"`
}
