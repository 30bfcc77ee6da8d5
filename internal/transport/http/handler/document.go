package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"legalens/internal/app"
	"legalens/internal/transport/http/response"
)

type DocumentHandler struct {
	documentService *app.DocumentService
	maxUploadBytes  int64
}

type CreateDocumentRequest struct {
	Title       string `json:"title" binding:"required,max=255"`
	Content     string `json:"content" binding:"required"`
	FileType    string `json:"fileType"`
	FileSize    int64  `json:"fileSize"`
	PrivacyMode bool   `json:"privacyMode"`
}

func NewDocumentHandler(documentService *app.DocumentService, maxUploadBytes int64) *DocumentHandler {
	return &DocumentHandler{
		documentService: documentService,
		maxUploadBytes:  maxUploadBytes,
	}
}

func (h *DocumentHandler) List(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "invalid token payload")
		return
	}

	documents, err := h.documentService.List(userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to fetch documents")
		return
	}

	response.OK(c, gin.H{"documents": documents})
}

func (h *DocumentHandler) Create(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "invalid token payload")
		return
	}

	var req CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "title and content are required")
		return
	}

	document, err := h.documentService.Create(app.CreateDocumentInput{
		UserID:      userID,
		Title:       req.Title,
		Content:     req.Content,
		FileType:    req.FileType,
		FileSize:    req.FileSize,
		PrivacyMode: req.PrivacyMode,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput), errors.Is(err, app.ErrTitleContentRequired):
			response.Error(c, http.StatusBadRequest, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "failed to create document")
		}
		return
	}

	response.OK(c, gin.H{"document": document})
}

func (h *DocumentHandler) Upload(c *gin.Context) {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "invalid token payload")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "file is required")
		return
	}
	if h.maxUploadBytes > 0 && fileHeader.Size > h.maxUploadBytes {
		response.Error(c, http.StatusBadRequest, "file exceeds the upload size limit")
		return
	}

	privacyMode, _ := strconv.ParseBool(c.PostForm("privacyMode"))

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to read uploaded file")
		return
	}
	defer file.Close()

	document, err := h.documentService.Upload(app.UploadDocumentInput{
		UserID:      userID,
		Filename:    fileHeader.Filename,
		Size:        fileHeader.Size,
		PrivacyMode: privacyMode,
		Reader:      file,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrUnsupportedFileType), errors.Is(err, app.ErrEmptyFile):
			response.Error(c, http.StatusBadRequest, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "failed to process uploaded file")
		}
		return
	}

	response.OK(c, gin.H{"document": document})
}
