package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"legalens/internal/ai"
	"legalens/internal/model"
	"legalens/internal/pkg/privacy"
	"legalens/internal/repository"
)

var ErrDocumentEmpty = errors.New("document content is required")

const defaultExplanationLevel = "intermediate"

// AnalysisService backs the simplification and whole-document analysis
// endpoints. Both are single model calls with a required output shape; the
// simplification result is optionally persisted against a document.
type AnalysisService struct {
	analysisRepo *repository.AnalysisRepository
	llmClient    *ai.OpenAICompatibleClient
	primaryLLM   ai.ChatConfig
	fastLLM      ai.ChatConfig
}

func NewAnalysisService(
	analysisRepo *repository.AnalysisRepository,
	llmClient *ai.OpenAICompatibleClient,
	primaryLLM, fastLLM ai.ChatConfig,
) *AnalysisService {
	return &AnalysisService{
		analysisRepo: analysisRepo,
		llmClient:    llmClient,
		primaryLLM:   primaryLLM,
		fastLLM:      fastLLM,
	}
}

type ClauseRisk struct {
	Type        string `json:"type"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
}

type Clause struct {
	ID           string     `json:"id"`
	Original     string     `json:"original"`
	Basic        string     `json:"basic"`
	Intermediate string     `json:"intermediate"`
	Expert       string     `json:"expert"`
	Analogy      string     `json:"analogy"`
	Risk         ClauseRisk `json:"risk"`
	Timeline     string     `json:"timeline,omitempty"`
}

type SimplifySummary struct {
	TotalClauses   int    `json:"totalClauses"`
	RiskLevel      string `json:"riskLevel"`
	ProcessingTime string `json:"processingTime"`
}

type SimplificationResult struct {
	Clauses []Clause        `json:"clauses"`
	Summary SimplifySummary `json:"summary"`
}

type SimplifyInput struct {
	Document    string
	Level       string
	PrivacyMode bool
	DocumentID  uint
}

// Simplify breaks the document into explained clauses. With PrivacyMode the
// text is scrubbed before it leaves the service. ProcessingTime is wall
// clock for the whole call, injected after the model returns. Persistence
// is best-effort: a failed save is logged and the result still returned.
func (s *AnalysisService) Simplify(ctx context.Context, input SimplifyInput) (*SimplificationResult, error) {
	start := time.Now()

	document := strings.TrimSpace(input.Document)
	if document == "" {
		return nil, ErrDocumentEmpty
	}

	processed := input.Document
	if input.PrivacyMode {
		processed = privacy.Scrub(input.Document)
	}

	var result SimplificationResult
	if err := s.llmClient.CompleteObject(
		ctx,
		s.primaryLLM,
		ai.SystemPromptSimplifier,
		ai.BuildSimplifyPrompt(processed),
		&result,
	); err != nil {
		return nil, fmt.Errorf("simplification model call failed: %w", err)
	}

	result.Summary.ProcessingTime = fmt.Sprintf("%.1fs", time.Since(start).Seconds())

	if input.DocumentID != 0 {
		level := input.Level
		if level == "" {
			level = defaultExplanationLevel
		}
		content, err := json.Marshal(result)
		if err == nil {
			err = s.analysisRepo.Create(&model.DocumentAnalysis{
				DocumentID:       input.DocumentID,
				AnalysisType:     "simplification",
				Content:          content,
				ExplanationLevel: level,
			})
		}
		if err != nil {
			log.Printf("save simplification analysis failed: %v", err)
		}
	}

	return &result, nil
}

type AnalysisRisk struct {
	Level          string `json:"level"`
	Description    string `json:"description"`
	Recommendation string `json:"recommendation"`
}

type SimplifiedTerm struct {
	Term       string `json:"term"`
	Definition string `json:"definition"`
	Context    string `json:"context"`
}

type DocumentInsights struct {
	Summary         string           `json:"summary"`
	KeyPoints       []string         `json:"keyPoints"`
	Risks           []AnalysisRisk   `json:"risks"`
	SimplifiedTerms []SimplifiedTerm `json:"simplifiedTerms"`
	ActionItems     []string         `json:"actionItems"`
	Confidence      float64          `json:"confidence"`
}

type AnalyzeInput struct {
	DocumentText    string
	ProcessingLevel string
	PrivacyMode     bool
}

// Analyze produces the flat insight report for the quick-analysis endpoint.
// Privacy here is a prompt instruction to the model, not the regex scrub.
func (s *AnalysisService) Analyze(ctx context.Context, input AnalyzeInput) (*DocumentInsights, error) {
	if strings.TrimSpace(input.DocumentText) == "" {
		return nil, ErrDocumentEmpty
	}

	var insights DocumentInsights
	if err := s.llmClient.CompleteObject(
		ctx,
		s.fastLLM,
		"",
		ai.BuildAnalyzePrompt(input.DocumentText, input.ProcessingLevel, input.PrivacyMode),
		&insights,
	); err != nil {
		return nil, fmt.Errorf("document analysis model call failed: %w", err)
	}
	return &insights, nil
}
