package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"legalens/internal/model"
)

type DocumentRepository struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

func (r *DocumentRepository) Create(document *model.Document) error {
	if err := r.db.Create(document).Error; err != nil {
		return fmt.Errorf("create document failed: %w", err)
	}
	return nil
}

// ListByUserID returns the user's documents newest first, each with its
// analysis summaries and risk scores preloaded for the dashboard listing.
func (r *DocumentRepository) ListByUserID(userID uint) ([]model.Document, error) {
	var documents []model.Document
	err := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Preload("Analyses", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "document_id", "analysis_type", "created_at")
		}).
		Preload("RiskAssessments", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "document_id", "overall_score", "created_at")
		}).
		Find(&documents).Error
	if err != nil {
		return nil, fmt.Errorf("list documents failed: %w", err)
	}
	return documents, nil
}

func (r *DocumentRepository) GetByIDAndUserID(documentID, userID uint) (*model.Document, error) {
	var document model.Document
	if err := r.db.Where("id = ? AND user_id = ?", documentID, userID).First(&document).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get document failed: %w", err)
	}
	return &document, nil
}
