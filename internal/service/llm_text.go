package service

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/lshigami/cybersolutions/internal/dto"
)

var fenceReplacer = strings.NewReplacer("```json", "", "```", "")

var errIncompleteAnalysis = errors.New("incomplete phishing analysis")

// Risk levels the model is asked to answer with.
const (
	RiskLevelHigh   = "High"
	RiskLevelMedium = "Medium"
	RiskLevelLow    = "Low"
)

// CleanModelJSON removes markdown code fences the model sometimes wraps
// around JSON and trims the surrounding whitespace.
func CleanModelJSON(text string) string {
	return strings.TrimSpace(fenceReplacer.Replace(text))
}

type modelPhishingAnalysis struct {
	IsPhishing *bool   `json:"is_phishing"`
	RiskLevel  *string `json:"risk_level"`
	Analysis   *string `json:"analysis"`
}

// ParsePhishingAnalysis decodes a model answer into a phishing verdict.
// A verdict missing is_phishing, with a blank analysis or with a risk level
// other than High, Medium or Low is rejected.
func ParsePhishingAnalysis(text string) (dto.PhishingAnalysisDTO, error) {
	var raw modelPhishingAnalysis
	if err := json.Unmarshal([]byte(CleanModelJSON(text)), &raw); err != nil {
		return dto.PhishingAnalysisDTO{}, err
	}
	if raw.IsPhishing == nil || raw.Analysis == nil || strings.TrimSpace(*raw.Analysis) == "" || raw.RiskLevel == nil {
		return dto.PhishingAnalysisDTO{}, errIncompleteAnalysis
	}
	switch *raw.RiskLevel {
	case RiskLevelHigh, RiskLevelMedium, RiskLevelLow:
	default:
		return dto.PhishingAnalysisDTO{}, errIncompleteAnalysis
	}
	return dto.PhishingAnalysisDTO{
		IsPhishing: *raw.IsPhishing,
		RiskLevel:  *raw.RiskLevel,
		Analysis:   *raw.Analysis,
	}, nil
}
