package model

import (
	"time"

	"gorm.io/datatypes"
)

// RiskAssessment stores one risk-analysis run. Category columns carry the
// weighted tally computed by the risk service, not by the model.
type RiskAssessment struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	DocumentID      uint           `gorm:"not null;index" json:"document_id"`
	OverallScore    float64        `gorm:"not null" json:"overall_score"`
	FinancialRisk   int            `gorm:"not null;default:0" json:"financial_risk"`
	PrivacyRisk     int            `gorm:"not null;default:0" json:"privacy_risk"`
	LegalRisk       int            `gorm:"not null;default:0" json:"legal_risk"`
	TimelineRisk    int            `gorm:"not null;default:0" json:"timeline_risk"`
	Risks           datatypes.JSON `gorm:"type:json" json:"risks"`
	Recommendations datatypes.JSON `gorm:"type:json" json:"recommendations"`
	CreatedAt       time.Time      `json:"created_at"`
}
