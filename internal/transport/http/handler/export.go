package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"legalens/internal/app"
	"legalens/internal/transport/http/response"
)

type ExportHandler struct {
	exportService *app.ExportService
}

type ExportRequest struct {
	Sections     []string               `json:"sections"`
	Format       string                 `json:"format"`
	Options      map[string]interface{} `json:"options"`
	DocumentData json.RawMessage        `json:"documentData"`
}

func NewExportHandler(exportService *app.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

func (h *ExportHandler) Generate(c *gin.Context) {
	var req ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	result, err := h.exportService.Generate(c.Request.Context(), app.ExportInput{
		Sections:     req.Sections,
		Format:       req.Format,
		Options:      req.Options,
		DocumentData: req.DocumentData,
	})
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to generate export")
		return
	}

	response.OK(c, result)
}
