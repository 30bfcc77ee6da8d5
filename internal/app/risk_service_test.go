package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"legalens/internal/ai"
	"legalens/internal/repository"
)

func objectLLMServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		payload, _ := json.Marshal(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"content": content}},
			},
		})
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(payload)
	}))
}

func TestCategoryScores(t *testing.T) {
	risks := []Risk{
		{Type: "financial", Severity: "high"},
		{Type: "financial", Severity: "low"},
		{Type: "financial", Severity: "medium"},
		{Type: "financial", Severity: "critical"},
	}

	counts := categoryScores(risks)
	assert.Equal(t, 6, counts["financial"])
}

func TestCategoryScoresMixedCategories(t *testing.T) {
	risks := []Risk{
		{Type: "financial", Severity: "high"},
		{Type: "privacy", Severity: "low"},
		{Type: "legal", Severity: "critical"},
		{Type: "timeline", Severity: "medium"},
	}

	counts := categoryScores(risks)
	assert.Equal(t, 2, counts["financial"])
	assert.Equal(t, 1, counts["privacy"])
	assert.Equal(t, 2, counts["legal"])
	assert.Equal(t, 1, counts["timeline"])
}

func TestAnalyzeRisksEmptyDocument(t *testing.T) {
	service := NewRiskService(nil, ai.NewOpenAICompatibleClient(), ai.ChatConfig{})

	_, err := service.AnalyzeRisks(context.Background(), RiskInput{Document: "   "})
	assert.ErrorIs(t, err, ErrDocumentEmpty)
}

func TestAnalyzeRisksWithoutDocumentID(t *testing.T) {
	result := RiskAnalysisResult{
		Risks: []Risk{
			{ID: "risk-1", Type: "financial", Severity: "high", Title: "Late fees", Recommendation: "Negotiate a cap"},
		},
		OverallScore: 7.5,
		Summary:      RiskSummary{TotalRisks: 1, HighRisk: 1, Recommendations: 1},
	}
	body, _ := json.Marshal(result)

	server := objectLLMServer(t, string(body))
	defer server.Close()

	service := NewRiskService(nil, ai.NewOpenAICompatibleClient(), ai.ChatConfig{BaseURL: server.URL, Model: "test-model"})

	got, err := service.AnalyzeRisks(context.Background(), RiskInput{Document: "some contract text"})
	require.NoError(t, err)

	assert.Equal(t, 7.5, got.OverallScore)
	require.Len(t, got.Risks, 1)
	assert.Equal(t, "Late fees", got.Risks[0].Title)
}

func TestAnalyzeRisksPersistsWeightedCategories(t *testing.T) {
	result := RiskAnalysisResult{
		Risks: []Risk{
			{ID: "r1", Type: "financial", Severity: "high", Recommendation: "a"},
			{ID: "r2", Type: "financial", Severity: "low", Recommendation: "b"},
			{ID: "r3", Type: "financial", Severity: "medium", Recommendation: "c"},
			{ID: "r4", Type: "financial", Severity: "critical", Recommendation: "d"},
		},
		OverallScore: 8.0,
		Summary:      RiskSummary{TotalRisks: 4, HighRisk: 2, Recommendations: 4},
	}
	body, _ := json.Marshal(result)

	server := objectLLMServer(t, string(body))
	defer server.Close()

	gormDB, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `risk_assessments`").
		WithArgs(uint(5), 8.0, 6, 0, 0, 0, sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	service := NewRiskService(
		repository.NewRiskRepository(gormDB),
		ai.NewOpenAICompatibleClient(),
		ai.ChatConfig{BaseURL: server.URL, Model: "test-model"},
	)

	got, err := service.AnalyzeRisks(context.Background(), RiskInput{
		Document:   "some contract text",
		DocumentID: 5,
	})
	require.NoError(t, err)
	assert.Len(t, got.Risks, 4)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAnalyzeRisksSaveFailureStillReturnsResult(t *testing.T) {
	result := RiskAnalysisResult{
		Risks:        []Risk{{ID: "r1", Type: "legal", Severity: "low"}},
		OverallScore: 2.0,
	}
	body, _ := json.Marshal(result)

	server := objectLLMServer(t, string(body))
	defer server.Close()

	gormDB, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `risk_assessments`").
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	service := NewRiskService(
		repository.NewRiskRepository(gormDB),
		ai.NewOpenAICompatibleClient(),
		ai.ChatConfig{BaseURL: server.URL, Model: "test-model"},
	)

	got, err := service.AnalyzeRisks(context.Background(), RiskInput{
		Document:   "some contract text",
		DocumentID: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, 2.0, got.OverallScore)
}
