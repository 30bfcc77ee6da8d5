package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"legalens/internal/app"
	"legalens/internal/transport/http/response"
)

type AnalysisHandler struct {
	analysisService *app.AnalysisService
}

type AnalyzeRequest struct {
	DocumentText    string `json:"documentText"`
	ProcessingLevel string `json:"processingLevel"`
	PrivacyMode     bool   `json:"privacyMode"`
}

type SimplifyRequest struct {
	Document    string `json:"document"`
	Level       string `json:"level"`
	PrivacyMode bool   `json:"privacyMode"`
	DocumentID  uint   `json:"documentId"`
}

func NewAnalysisHandler(analysisService *app.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{analysisService: analysisService}
}

func (h *AnalysisHandler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	insights, err := h.analysisService.Analyze(c.Request.Context(), app.AnalyzeInput{
		DocumentText:    req.DocumentText,
		ProcessingLevel: req.ProcessingLevel,
		PrivacyMode:     req.PrivacyMode,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrDocumentEmpty):
			response.Error(c, http.StatusBadRequest, "Document text is required")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to analyze document")
		}
		return
	}

	response.OK(c, gin.H{
		"analysis":        insights,
		"processingLevel": req.ProcessingLevel,
		"privacyMode":     req.PrivacyMode,
	})
}

func (h *AnalysisHandler) Simplify(c *gin.Context) {
	var req SimplifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	result, err := h.analysisService.Simplify(c.Request.Context(), app.SimplifyInput{
		Document:    req.Document,
		Level:       req.Level,
		PrivacyMode: req.PrivacyMode,
		DocumentID:  req.DocumentID,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrDocumentEmpty):
			response.Error(c, http.StatusBadRequest, "Document content is required")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to process document")
		}
		return
	}

	response.OK(c, result)
}
