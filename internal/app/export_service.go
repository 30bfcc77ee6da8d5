package app

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"legalens/internal/ai"
)

const executiveSummarySection = "executive-summary"

type ExportService struct {
	llmClient *ai.OpenAICompatibleClient
	fastLLM   ai.ChatConfig
}

func NewExportService(llmClient *ai.OpenAICompatibleClient, fastLLM ai.ChatConfig) *ExportService {
	return &ExportService{
		llmClient: llmClient,
		fastLLM:   fastLLM,
	}
}

type ExportInput struct {
	Sections     []string
	Format       string
	Options      map[string]interface{}
	DocumentData json.RawMessage
}

type ExportResult struct {
	DownloadURL      string   `json:"downloadUrl"`
	Filename         string   `json:"filename"`
	Size             string   `json:"size"`
	ExpiresAt        string   `json:"expiresAt"`
	ExecutiveSummary string   `json:"executiveSummary,omitempty"`
	Sections         []string `json:"sections"`
	GeneratedAt      string   `json:"generatedAt"`
}

// Generate returns a download descriptor for the requested export. No file
// is produced or stored; the URL, size and expiry are fabricated. An
// executive summary is generated only when that section is requested and
// analysis data is supplied.
func (s *ExportService) Generate(ctx context.Context, input ExportInput) (*ExportResult, error) {
	format := strings.TrimSpace(input.Format)
	if format == "" {
		format = "pdf"
	}

	executiveSummary := ""
	if containsSection(input.Sections, executiveSummarySection) && hasDocumentData(input.DocumentData) {
		summary, err := s.llmClient.Complete(ctx, s.fastLLM, []ai.ChatMessage{
			{Role: "system", Content: ai.SystemPromptExportSummarizer},
			{Role: "user", Content: ai.BuildExportSummaryPrompt(string(input.DocumentData))},
		})
		if err != nil {
			return nil, fmt.Errorf("executive summary model call failed: %w", err)
		}
		executiveSummary = strings.TrimSpace(summary)
	}

	now := time.Now().UTC()
	token := uuid.NewString()
	return &ExportResult{
		DownloadURL:      fmt.Sprintf("/api/download/%s.%s", token, format),
		Filename:         fmt.Sprintf("legal-analysis-%d.%s", now.UnixMilli(), format),
		Size:             "2.4 MB",
		ExpiresAt:        now.Add(24 * time.Hour).Format(time.RFC3339),
		ExecutiveSummary: executiveSummary,
		Sections:         input.Sections,
		GeneratedAt:      now.Format(time.RFC3339),
	}, nil
}

func containsSection(sections []string, want string) bool {
	for _, section := range sections {
		if section == want {
			return true
		}
	}
	return false
}

func hasDocumentData(data json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(data))
	return trimmed != "" && trimmed != "null"
}
