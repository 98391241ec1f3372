package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/lshigami/cybersolutions/internal/dto"
	"github.com/lshigami/cybersolutions/internal/metrics"
	"github.com/lshigami/cybersolutions/internal/model"
	"github.com/lshigami/cybersolutions/internal/repository"
	"github.com/rs/zerolog/log"
)

//go:generate mockgen -source=./phishing_service.go -destination=./mocks/phishing_service.mock.go -package=svcmocks PhishingService

const (
	RiskLevelUnknown = "Unknown"
	// UnparsableAnalysisMessage is stored when the model answer is not valid JSON.
	UnparsableAnalysisMessage = "The AI response could not be processed correctly, but caution is recommended."
)

type PhishingService interface {
	Analyze(ctx context.Context, userID uint, emailContent string) (*dto.PhishingAnalysisDTO, error)
	GetHistory(ctx context.Context, userID uint) ([]dto.PhishingLogDTO, error)
}

type phishingService struct {
	logRepo repository.PhishingLogRepository
	llm     LLMService
	metrics *metrics.Metrics
}

func NewPhishingService(logRepo repository.PhishingLogRepository, llm LLMService, m *metrics.Metrics) PhishingService {
	return &phishingService{logRepo: logRepo, llm: llm, metrics: m}
}

func (s *phishingService) Analyze(ctx context.Context, userID uint, emailContent string) (*dto.PhishingAnalysisDTO, error) {
	if strings.TrimSpace(emailContent) == "" {
		return nil, invalidInput("Email content is required")
	}

	text, err := s.llm.Generate(ctx, buildPhishingPrompt(emailContent))
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("Analyze: LLM generation failed")
		return nil, fmt.Errorf("error analyzing email: %w", err)
	}

	analysis, err := ParsePhishingAnalysis(text)
	if err != nil {
		log.Warn().Err(err).Str("rawResponse", text).Msg("Analyze: Failed to parse model JSON, using cautious fallback")
		analysis = dto.PhishingAnalysisDTO{
			IsPhishing: true,
			RiskLevel:  RiskLevelUnknown,
			Analysis:   UnparsableAnalysisMessage,
		}
	}

	entry := model.PhishingLog{
		UserID:         userID,
		EmailContent:   emailContent,
		AnalysisResult: analysis.Analysis,
		IsPhishing:     analysis.IsPhishing,
	}
	if err := s.logRepo.Create(ctx, &entry); err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("Analyze: Failed to save phishing log")
		return nil, fmt.Errorf("%w: save phishing log: %w", ErrPersistence, err)
	}
	s.metrics.PhishingAnalyzed(analysis.IsPhishing)

	return &analysis, nil
}

func buildPhishingPrompt(emailContent string) string {
	return fmt.Sprintf(`Act as a cybersecurity expert. Analyze the following content of a suspicious email.
Identify signs of phishing, spam or scam attempts.

Email content:
"""
%s
"""

Respond ONLY with a valid JSON object with the following structure (no code blocks or markdown):
{
    "is_phishing": boolean, // true if it is phishing or high risk, false if it looks safe
    "risk_level": "High" | "Medium" | "Low",
    "analysis": "Short explanation of why it is or is not phishing (3 sentences maximum)"
}
`, emailContent)
}

func (s *phishingService) GetHistory(ctx context.Context, userID uint) ([]dto.PhishingLogDTO, error) {
	logs, err := s.logRepo.FindAllByUser(ctx, userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("GetHistory: Failed to load phishing logs")
		return nil, fmt.Errorf("error fetching phishing history: %w", err)
	}

	dtos := make([]dto.PhishingLogDTO, 0, len(logs))
	if err := copier.Copy(&dtos, &logs); err != nil {
		return nil, fmt.Errorf("error preparing phishing history: %w", err)
	}
	return dtos, nil
}
