package app

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"legalens/internal/model"
	"legalens/internal/pkg/pdfextract"
	"legalens/internal/repository"
)

const statusUploaded = "uploaded"

var (
	ErrTitleContentRequired = errors.New("title and content are required")
	ErrUnsupportedFileType  = errors.New("unsupported file type, expected pdf or txt")
	ErrEmptyFile            = errors.New("file has no extractable text")
)

type DocumentService struct {
	docRepo *repository.DocumentRepository
}

func NewDocumentService(docRepo *repository.DocumentRepository) *DocumentService {
	return &DocumentService{docRepo: docRepo}
}

type CreateDocumentInput struct {
	UserID      uint
	Title       string
	Content     string
	FileType    string
	FileSize    int64
	PrivacyMode bool
}

func (s *DocumentService) Create(input CreateDocumentInput) (*model.Document, error) {
	if input.UserID == 0 {
		return nil, ErrInvalidInput
	}
	title := strings.TrimSpace(input.Title)
	if title == "" || strings.TrimSpace(input.Content) == "" {
		return nil, ErrTitleContentRequired
	}

	fileType := input.FileType
	if fileType == "" {
		fileType = "text/plain"
	}
	fileSize := input.FileSize
	if fileSize <= 0 {
		fileSize = int64(len(input.Content))
	}

	document := &model.Document{
		UserID:           input.UserID,
		Title:            title,
		OriginalContent:  input.Content,
		FileType:         fileType,
		FileSize:         fileSize,
		PrivacyMode:      input.PrivacyMode,
		ProcessingStatus: statusUploaded,
	}
	if err := s.docRepo.Create(document); err != nil {
		return nil, err
	}
	return document, nil
}

func (s *DocumentService) List(userID uint) ([]model.Document, error) {
	if userID == 0 {
		return nil, ErrInvalidInput
	}
	return s.docRepo.ListByUserID(userID)
}

type UploadDocumentInput struct {
	UserID      uint
	Filename    string
	Size        int64
	PrivacyMode bool
	Reader      io.Reader
}

// Upload ingests a pdf or txt file, extracts its text and stores it as a
// regular document titled after the file.
func (s *DocumentService) Upload(input UploadDocumentInput) (*model.Document, error) {
	if input.UserID == 0 {
		return nil, ErrInvalidInput
	}

	var (
		content  string
		fileType string
	)
	switch strings.ToLower(filepath.Ext(input.Filename)) {
	case ".pdf":
		text, err := pdfextract.ExtractText(input.Reader)
		if err != nil {
			return nil, fmt.Errorf("extract pdf text failed: %w", err)
		}
		content = text
		fileType = "application/pdf"
	case ".txt":
		raw, err := io.ReadAll(input.Reader)
		if err != nil {
			return nil, fmt.Errorf("read txt file failed: %w", err)
		}
		content = string(raw)
		fileType = "text/plain"
	default:
		return nil, ErrUnsupportedFileType
	}

	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyFile
	}

	title := strings.TrimSuffix(filepath.Base(input.Filename), filepath.Ext(input.Filename))
	if title == "" {
		title = "Untitled"
	}

	document := &model.Document{
		UserID:           input.UserID,
		Title:            title,
		OriginalContent:  content,
		FileType:         fileType,
		FileSize:         input.Size,
		PrivacyMode:      input.PrivacyMode,
		ProcessingStatus: statusUploaded,
	}
	if err := s.docRepo.Create(document); err != nil {
		return nil, err
	}
	return document, nil
}
