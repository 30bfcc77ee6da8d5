package model

import "time"

// Document is an uploaded legal document. Content is stored as-is; any
// privacy scrubbing happens per-request, never against the stored text.
type Document struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	UserID           uint      `gorm:"not null;index" json:"user_id"`
	Title            string    `gorm:"size:256;not null" json:"title"`
	OriginalContent  string    `gorm:"type:longtext;not null" json:"original_content"`
	FileType         string    `gorm:"size:64;not null" json:"file_type"`
	FileSize         int64     `json:"file_size"`
	PrivacyMode      bool      `gorm:"not null;default:false" json:"privacy_mode"`
	ProcessingStatus string    `gorm:"size:32;not null" json:"processing_status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	Analyses        []DocumentAnalysis `gorm:"foreignKey:DocumentID" json:"analyses,omitempty"`
	RiskAssessments []RiskAssessment   `gorm:"foreignKey:DocumentID" json:"risk_assessments,omitempty"`
}
