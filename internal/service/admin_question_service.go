package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/jinzhu/copier"
	"github.com/lshigami/cybersolutions/internal/dto"
	"github.com/lshigami/cybersolutions/internal/model"
	"github.com/lshigami/cybersolutions/internal/repository"
	"github.com/rs/zerolog/log"
)

//go:generate mockgen -source=./admin_question_service.go -destination=./mocks/admin_question_service.mock.go -package=svcmocks AdminQuestionService

type AdminQuestionService interface {
	CreateQuestion(ctx context.Context, req dto.QuestionCreateDTO) (*dto.QuestionAdminDTO, error)
}

type adminQuestionService struct {
	questionRepo repository.QuestionRepository
}

func NewAdminQuestionService(questionRepo repository.QuestionRepository) AdminQuestionService {
	return &adminQuestionService{questionRepo: questionRepo}
}

func (s *adminQuestionService) CreateQuestion(ctx context.Context, req dto.QuestionCreateDTO) (*dto.QuestionAdminDTO, error) {
	switch req.CorrectOption {
	case model.OptionA, model.OptionB, model.OptionC, model.OptionD:
	default:
		return nil, invalidInput(fmt.Sprintf("Correct option must be one of A, B, C or D, got %q", req.CorrectOption))
	}
	fields := []struct{ name, value string }{
		{"question_text", req.QuestionText},
		{"option_a", req.OptionA},
		{"option_b", req.OptionB},
		{"option_c", req.OptionC},
		{"option_d", req.OptionD},
		{"category", req.Category},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return nil, invalidInput(fmt.Sprintf("Field %s must not be blank", f.name))
		}
	}

	var question model.Question
	if err := copier.Copy(&question, &req); err != nil {
		return nil, fmt.Errorf("error preparing question: %w", err)
	}
	if err := s.questionRepo.Create(ctx, &question); err != nil {
		log.Error().Err(err).Str("category", req.Category).Msg("CreateQuestion: Failed to create question in database")
		return nil, fmt.Errorf("%w: create question: %w", ErrPersistence, err)
	}

	var resp dto.QuestionAdminDTO
	if err := copier.Copy(&resp, &question); err != nil {
		return nil, fmt.Errorf("error preparing response data: %w", err)
	}
	return &resp, nil
}
