package model

import (
	"time"

	"gorm.io/datatypes"
)

// DocumentAnalysis is one immutable analysis result for a document.
// Content holds the model output verbatim; the application never derives
// anything from it after the fact.
type DocumentAnalysis struct {
	ID               uint           `gorm:"primaryKey" json:"id"`
	DocumentID       uint           `gorm:"not null;index" json:"document_id"`
	AnalysisType     string         `gorm:"size:32;not null;index" json:"analysis_type"`
	Content          datatypes.JSON `gorm:"type:json" json:"content"`
	ExplanationLevel string         `gorm:"size:16;not null" json:"explanation_level"`
	CreatedAt        time.Time      `json:"created_at"`
}
