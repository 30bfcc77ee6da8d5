package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"legalens/internal/app"
	"legalens/internal/transport/http/response"
)

type RiskHandler struct {
	riskService *app.RiskService
}

type RiskRequest struct {
	Document   string          `json:"document"`
	Clauses    json.RawMessage `json:"clauses"`
	DocumentID uint            `json:"documentId"`
}

func NewRiskHandler(riskService *app.RiskService) *RiskHandler {
	return &RiskHandler{riskService: riskService}
}

func (h *RiskHandler) Analyze(c *gin.Context) {
	var req RiskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	result, err := h.riskService.AnalyzeRisks(c.Request.Context(), app.RiskInput{
		Document:   req.Document,
		Clauses:    req.Clauses,
		DocumentID: req.DocumentID,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrDocumentEmpty):
			response.Error(c, http.StatusBadRequest, "Document content is required")
		default:
			response.Error(c, http.StatusInternalServerError, "Failed to analyze risks")
		}
		return
	}

	response.OK(c, result)
}
