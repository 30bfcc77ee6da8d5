package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"legalens/internal/ai"
	"legalens/internal/model"
	"legalens/internal/repository"
)

type RiskService struct {
	riskRepo    *repository.RiskRepository
	llmClient   *ai.OpenAICompatibleClient
	advancedLLM ai.ChatConfig
}

func NewRiskService(riskRepo *repository.RiskRepository, llmClient *ai.OpenAICompatibleClient, advancedLLM ai.ChatConfig) *RiskService {
	return &RiskService{
		riskRepo:    riskRepo,
		llmClient:   llmClient,
		advancedLLM: advancedLLM,
	}
}

type Risk struct {
	ID              string  `json:"id"`
	Type            string  `json:"type"`
	Severity        string  `json:"severity"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	ClauseReference string  `json:"clauseReference"`
	Impact          string  `json:"impact"`
	Recommendation  string  `json:"recommendation"`
	Likelihood      float64 `json:"likelihood"`
}

type RiskSummary struct {
	TotalRisks      int `json:"totalRisks"`
	HighRisk        int `json:"highRisk"`
	Recommendations int `json:"recommendations"`
}

type RiskAnalysisResult struct {
	Risks        []Risk      `json:"risks"`
	OverallScore float64     `json:"overallScore"`
	Summary      RiskSummary `json:"summary"`
}

type RiskInput struct {
	Document   string
	Clauses    json.RawMessage
	DocumentID uint
}

// AnalyzeRisks runs the risk model over the document (plus any previously
// identified clauses) and, when a document is named, persists the assessment
// with category tallies derived here rather than by the model. A failed save
// is logged; the caller still gets the result.
func (s *RiskService) AnalyzeRisks(ctx context.Context, input RiskInput) (*RiskAnalysisResult, error) {
	if strings.TrimSpace(input.Document) == "" {
		return nil, ErrDocumentEmpty
	}

	clausesJSON := ""
	if len(input.Clauses) > 0 && string(input.Clauses) != "null" {
		clausesJSON = string(input.Clauses)
	}

	var result RiskAnalysisResult
	if err := s.llmClient.CompleteObject(
		ctx,
		s.advancedLLM,
		ai.SystemPromptRiskAnalyzer,
		ai.BuildRiskPrompt(input.Document, clausesJSON),
		&result,
	); err != nil {
		return nil, fmt.Errorf("risk analysis model call failed: %w", err)
	}

	if input.DocumentID != 0 {
		if err := s.saveAssessment(input.DocumentID, &result); err != nil {
			log.Printf("save risk assessment failed: %v", err)
		}
	}

	return &result, nil
}

func (s *RiskService) saveAssessment(documentID uint, result *RiskAnalysisResult) error {
	counts := categoryScores(result.Risks)

	recommendations := make([]string, 0, len(result.Risks))
	for _, risk := range result.Risks {
		recommendations = append(recommendations, risk.Recommendation)
	}

	risksJSON, err := json.Marshal(result.Risks)
	if err != nil {
		return fmt.Errorf("marshal risks failed: %w", err)
	}
	recsJSON, err := json.Marshal(recommendations)
	if err != nil {
		return fmt.Errorf("marshal recommendations failed: %w", err)
	}

	return s.riskRepo.Create(&model.RiskAssessment{
		DocumentID:      documentID,
		OverallScore:    result.OverallScore,
		FinancialRisk:   counts["financial"],
		PrivacyRisk:     counts["privacy"],
		LegalRisk:       counts["legal"],
		TimelineRisk:    counts["timeline"],
		Risks:           risksJSON,
		Recommendations: recsJSON,
	})
}

// categoryScores tallies risks per category: one point each, two for high
// or critical severity. The weighting is fixed.
func categoryScores(risks []Risk) map[string]int {
	counts := make(map[string]int, len(risks))
	for _, risk := range risks {
		weight := 1
		if risk.Severity == "high" || risk.Severity == "critical" {
			weight = 2
		}
		counts[risk.Type] += weight
	}
	return counts
}
