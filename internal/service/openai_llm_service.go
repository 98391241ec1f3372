package service

import (
	"context"
	"fmt"

	"github.com/lshigami/cybersolutions/config"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/rs/zerolog/log"
)

// openAILLMService talks to any OpenAI-compatible chat completion endpoint.
type openAILLMService struct {
	client *openai.Client
	model  string
}

func NewOpenAILLMService(cfg *config.Config) (LLMService, error) {
	if cfg.LLM.OpenAIApiKey == "" {
		log.Warn().Msg("OPENAI_API_KEY is not set. OpenAI LLM service will be non-functional.")
		return &openAILLMService{model: cfg.LLM.OpenAIModel}, nil
	}
	opts := []option.RequestOption{option.WithAPIKey(cfg.LLM.OpenAIApiKey)}
	if cfg.LLM.OpenAIBaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.LLM.OpenAIBaseURL))
	}
	return &openAILLMService{
		client: openai.NewClient(opts...),
		model:  cfg.LLM.OpenAIModel,
	}, nil
}

func (s *openAILLMService) Generate(ctx context.Context, prompt string) (string, error) {
	if s.client == nil {
		return "", ErrLLMUnavailable
	}

	resp, err := s.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Messages: openai.F([]openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		}),
		Model: openai.F(s.model),
	})
	if err != nil {
		log.Error().Err(err).Str("model", s.model).Msg("OpenAI API error during generation")
		return "", fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("openai returned no content")
	}
	return resp.Choices[0].Message.Content, nil
}
