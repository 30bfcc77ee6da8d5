package repository

import (
	"fmt"

	"gorm.io/gorm"

	"legalens/internal/model"
)

type AnalysisRepository struct {
	db *gorm.DB
}

func NewAnalysisRepository(db *gorm.DB) *AnalysisRepository {
	return &AnalysisRepository{db: db}
}

func (r *AnalysisRepository) Create(analysis *model.DocumentAnalysis) error {
	if err := r.db.Create(analysis).Error; err != nil {
		return fmt.Errorf("create document analysis failed: %w", err)
	}
	return nil
}

func (r *AnalysisRepository) ListByDocumentID(documentID uint) ([]model.DocumentAnalysis, error) {
	var analyses []model.DocumentAnalysis
	if err := r.db.Where("document_id = ?", documentID).Order("created_at DESC").Find(&analyses).Error; err != nil {
		return nil, fmt.Errorf("list document analyses failed: %w", err)
	}
	return analyses, nil
}
