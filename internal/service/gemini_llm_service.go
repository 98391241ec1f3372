package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/lshigami/cybersolutions/config"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
)

type geminiLLMService struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiLLMService creates the Gemini client once for the whole process.
// Without an API key the service is still returned but every call fails.
func NewGeminiLLMService(cfg *config.Config) (LLMService, error) {
	if cfg.LLM.GeminiApiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY is not set. GeminiLLMService will be non-functional.")
		return &geminiLLMService{}, nil
	}
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.LLM.GeminiApiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	model := client.GenerativeModel(cfg.LLM.GeminiModel)
	return &geminiLLMService{client: client, model: model}, nil
}

func (s *geminiLLMService) Generate(ctx context.Context, prompt string) (string, error) {
	if s.model == nil {
		return "", ErrLLMUnavailable
	}

	resp, err := s.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		log.Error().Err(err).Msg("Gemini API error during generation")
		return "", fmt.Errorf("gemini generate content: %w", err)
	}
	return candidateText(resp)
}

// Close releases the underlying client.
func (s *geminiLLMService) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}

// candidateText concatenates the text parts of the first candidate.
func candidateText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil ||
		len(resp.Candidates[0].Content.Parts) == 0 {
		log.Warn().Msg("Gemini returned no candidates or parts in response.")
		return "", fmt.Errorf("gemini returned no content")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	if sb.Len() == 0 {
		return "", fmt.Errorf("gemini returned no text content")
	}
	return sb.String(), nil
}
