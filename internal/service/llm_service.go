package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/lshigami/cybersolutions/config"
)

//go:generate mockgen -source=./llm_service.go -destination=./mocks/llm_service.mock.go -package=svcmocks LLMService

// LLMService turns a prompt into generated text. Implementations may fail
// for network, quota or configuration reasons.
type LLMService interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

// NewLLMService builds the provider selected by LLM_PROVIDER.
func NewLLMService(cfg *config.Config) (LLMService, error) {
	switch strings.ToLower(cfg.LLM.Provider) {
	case "", ProviderGemini:
		return NewGeminiLLMService(cfg)
	case ProviderOpenAI:
		return NewOpenAILLMService(cfg)
	default:
		return nil, fmt.Errorf("unsupported llm provider: %q", cfg.LLM.Provider)
	}
}
