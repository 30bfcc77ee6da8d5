package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"legalens/internal/model"
)

type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) Create(session *model.ChatSession) error {
	if err := r.db.Create(session).Error; err != nil {
		return fmt.Errorf("create chat session failed: %w", err)
	}
	return nil
}

func (r *SessionRepository) GetByIDAndUserID(sessionID, userID uint) (*model.ChatSession, error) {
	var session model.ChatSession
	if err := r.db.Where("id = ? AND user_id = ?", sessionID, userID).First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get chat session failed: %w", err)
	}
	return &session, nil
}

func (r *SessionRepository) ListByUserID(userID uint) ([]model.ChatSession, error) {
	var sessions []model.ChatSession
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&sessions).Error; err != nil {
		return nil, fmt.Errorf("list chat sessions failed: %w", err)
	}
	return sessions, nil
}
