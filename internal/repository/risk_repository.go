package repository

import (
	"fmt"

	"gorm.io/gorm"

	"legalens/internal/model"
)

type RiskRepository struct {
	db *gorm.DB
}

func NewRiskRepository(db *gorm.DB) *RiskRepository {
	return &RiskRepository{db: db}
}

func (r *RiskRepository) Create(assessment *model.RiskAssessment) error {
	if err := r.db.Create(assessment).Error; err != nil {
		return fmt.Errorf("create risk assessment failed: %w", err)
	}
	return nil
}

func (r *RiskRepository) ListByDocumentID(documentID uint) ([]model.RiskAssessment, error) {
	var assessments []model.RiskAssessment
	if err := r.db.Where("document_id = ?", documentID).Order("created_at DESC").Find(&assessments).Error; err != nil {
		return nil, fmt.Errorf("list risk assessments failed: %w", err)
	}
	return assessments, nil
}
