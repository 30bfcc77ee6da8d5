package app

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"legalens/internal/ai"
	"legalens/internal/repository"
)

func simplificationBody(t *testing.T) string {
	t.Helper()
	result := SimplificationResult{
		Clauses: []Clause{
			{
				ID:           "clause-1",
				Original:     "The lessee shall indemnify the lessor.",
				Basic:        "You cover the landlord's losses.",
				Intermediate: "You agree to compensate the landlord for certain losses.",
				Expert:       "Standard indemnification clause in favor of the lessor.",
				Analogy:      "Like promising to pay for a friend's window you broke.",
				Risk:         ClauseRisk{Type: "legal", Severity: "medium", Description: "Broad indemnity"},
			},
		},
		Summary: SimplifySummary{TotalClauses: 1, RiskLevel: "medium"},
	}
	body, err := json.Marshal(result)
	require.NoError(t, err)
	return string(body)
}

func TestSimplifyEmptyDocument(t *testing.T) {
	service := NewAnalysisService(nil, ai.NewOpenAICompatibleClient(), ai.ChatConfig{}, ai.ChatConfig{})

	_, err := service.Simplify(context.Background(), SimplifyInput{Document: "  \n "})
	assert.ErrorIs(t, err, ErrDocumentEmpty)
}

func TestSimplifyInjectsProcessingTime(t *testing.T) {
	server := objectLLMServer(t, simplificationBody(t))
	defer server.Close()

	service := NewAnalysisService(
		nil,
		ai.NewOpenAICompatibleClient(),
		ai.ChatConfig{BaseURL: server.URL, Model: "test-model"},
		ai.ChatConfig{},
	)

	result, err := service.Simplify(context.Background(), SimplifyInput{Document: "The lessee shall indemnify the lessor."})
	require.NoError(t, err)

	require.Len(t, result.Clauses, 1)
	assert.Equal(t, "medium", result.Summary.RiskLevel)
	assert.Regexp(t, regexp.MustCompile(`^\d+\.\ds$`), result.Summary.ProcessingTime)
}

func TestSimplifyPrivacyModeScrubsBeforeModelCall(t *testing.T) {
	var sentBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sentBody, _ = io.ReadAll(r.Body)
		payload, _ := json.Marshal(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": simplificationBody(t)}},
			},
		})
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(payload)
	}))
	defer server.Close()

	service := NewAnalysisService(
		nil,
		ai.NewOpenAICompatibleClient(),
		ai.ChatConfig{BaseURL: server.URL, Model: "test-model"},
		ai.ChatConfig{},
	)

	_, err := service.Simplify(context.Background(), SimplifyInput{
		Document:    "Tenant SSN 123-45-6789 agrees to the terms.",
		PrivacyMode: true,
	})
	require.NoError(t, err)

	assert.Contains(t, string(sentBody), "[SSN]")
	assert.NotContains(t, string(sentBody), "123-45-6789")
}

func TestSimplifyPersistsAnalysis(t *testing.T) {
	server := objectLLMServer(t, simplificationBody(t))
	defer server.Close()

	gormDB, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `document_analyses`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	service := NewAnalysisService(
		repository.NewAnalysisRepository(gormDB),
		ai.NewOpenAICompatibleClient(),
		ai.ChatConfig{BaseURL: server.URL, Model: "test-model"},
		ai.ChatConfig{},
	)

	_, err := service.Simplify(context.Background(), SimplifyInput{
		Document:   "The lessee shall indemnify the lessor.",
		DocumentID: 9,
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyzeEmptyDocument(t *testing.T) {
	service := NewAnalysisService(nil, ai.NewOpenAICompatibleClient(), ai.ChatConfig{}, ai.ChatConfig{})

	_, err := service.Analyze(context.Background(), AnalyzeInput{DocumentText: ""})
	assert.ErrorIs(t, err, ErrDocumentEmpty)
}

func TestAnalyzeReturnsInsights(t *testing.T) {
	insights := DocumentInsights{
		Summary:    "A one-year lease with an automatic renewal clause.",
		KeyPoints:  []string{"12-month term", "auto-renews"},
		Confidence: 0.85,
		Risks: []AnalysisRisk{
			{Level: "medium", Description: "Auto-renewal", Recommendation: "Calendar the notice window"},
		},
	}
	body, _ := json.Marshal(insights)

	server := objectLLMServer(t, string(body))
	defer server.Close()

	service := NewAnalysisService(
		nil,
		ai.NewOpenAICompatibleClient(),
		ai.ChatConfig{},
		ai.ChatConfig{BaseURL: server.URL, Model: "fast-model"},
	)

	got, err := service.Analyze(context.Background(), AnalyzeInput{
		DocumentText:    "lease text",
		ProcessingLevel: "basic",
	})
	require.NoError(t, err)

	assert.Equal(t, insights.Summary, got.Summary)
	assert.Equal(t, 0.85, got.Confidence)
	require.Len(t, got.Risks, 1)
}
