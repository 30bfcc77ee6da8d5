package app

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"legalens/internal/ai"
)

func TestGenerateWithoutExecutiveSummarySection(t *testing.T) {
	// No model endpoint configured: a call would fail, so a passing test
	// proves no call was made.
	service := NewExportService(ai.NewOpenAICompatibleClient(), ai.ChatConfig{})

	result, err := service.Generate(context.Background(), ExportInput{
		Sections:     []string{"full-analysis", "risk-report"},
		Format:       "pdf",
		DocumentData: json.RawMessage(`{"clauses":[]}`),
	})
	require.NoError(t, err)

	assert.Empty(t, result.ExecutiveSummary)
	assert.Equal(t, []string{"full-analysis", "risk-report"}, result.Sections)
}

func TestGenerateSummaryRequestedWithoutData(t *testing.T) {
	service := NewExportService(ai.NewOpenAICompatibleClient(), ai.ChatConfig{})

	for _, data := range []json.RawMessage{nil, json.RawMessage("null"), json.RawMessage("  ")} {
		result, err := service.Generate(context.Background(), ExportInput{
			Sections:     []string{"executive-summary"},
			Format:       "pdf",
			DocumentData: data,
		})
		require.NoError(t, err)
		assert.Empty(t, result.ExecutiveSummary)
	}
}

func TestGenerateWithExecutiveSummary(t *testing.T) {
	server := objectLLMServer(t, "This lease favors the landlord on renewal terms.")
	defer server.Close()

	service := NewExportService(
		ai.NewOpenAICompatibleClient(),
		ai.ChatConfig{BaseURL: server.URL, Model: "fast-model"},
	)

	result, err := service.Generate(context.Background(), ExportInput{
		Sections:     []string{"executive-summary", "full-analysis"},
		Format:       "docx",
		DocumentData: json.RawMessage(`{"clauses":[{"id":"c1"}]}`),
	})
	require.NoError(t, err)

	assert.Equal(t, "This lease favors the landlord on renewal terms.", result.ExecutiveSummary)
	assert.Regexp(t, `^/api/download/[0-9a-f-]+\.docx$`, result.DownloadURL)
	assert.Regexp(t, `^legal-analysis-\d+\.docx$`, result.Filename)
	assert.Equal(t, "2.4 MB", result.Size)

	expires, err := time.Parse(time.RFC3339, result.ExpiresAt)
	require.NoError(t, err)
	assert.True(t, expires.After(time.Now()))

	generated, err := time.Parse(time.RFC3339, result.GeneratedAt)
	require.NoError(t, err)
	assert.False(t, generated.After(time.Now().Add(time.Minute)))
}

func TestGenerateDefaultsToPDF(t *testing.T) {
	service := NewExportService(ai.NewOpenAICompatibleClient(), ai.ChatConfig{})

	result, err := service.Generate(context.Background(), ExportInput{
		Sections: []string{"full-analysis"},
	})
	require.NoError(t, err)

	assert.Regexp(t, `\.pdf$`, result.DownloadURL)
	assert.Regexp(t, `\.pdf$`, result.Filename)
}

func TestExecutiveSummaryOmittedFromJSON(t *testing.T) {
	result := ExportResult{
		DownloadURL: "/api/download/x.pdf",
		Filename:    "legal-analysis-1.pdf",
		Size:        "2.4 MB",
		Sections:    []string{"full-analysis"},
	}
	raw, err := json.Marshal(result)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "executiveSummary")
}
