package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/ecodeclub/ekit/slice"
	"github.com/jinzhu/copier"
	"github.com/lshigami/cybersolutions/config"
	"github.com/lshigami/cybersolutions/internal/dto"
	"github.com/lshigami/cybersolutions/internal/metrics"
	"github.com/lshigami/cybersolutions/internal/model"
	"github.com/lshigami/cybersolutions/internal/repository"
	"github.com/rs/zerolog/log"
)

//go:generate mockgen -source=./quiz_service.go -destination=./mocks/quiz_service.mock.go -package=svcmocks QuizService

const (
	// PerfectScoreFeedback is returned when a submission has no mistakes.
	PerfectScoreFeedback = "Excellent work! You answered every question correctly. Keep it up."
	// FeedbackUnavailableMessage replaces AI feedback when it cannot be generated.
	FeedbackUnavailableMessage = "We could not generate personalized feedback right now, but review your mistakes in the list below."
)

// QuizService serves quiz questions, grades submissions and lists past results.
type QuizService interface {
	GetQuestions(ctx context.Context) ([]dto.QuestionPublicDTO, error)
	SubmitQuiz(ctx context.Context, userID uint, answers []dto.SubmittedAnswerDTO) (*dto.QuizGradeDTO, error)
	GetHistory(ctx context.Context, userID uint) ([]dto.QuizHistoryItemDTO, error)
}

type quizService struct {
	questionRepo   repository.QuestionRepository
	resultRepo     repository.QuizResultRepository
	llm            LLMService
	scoreConverter ScoreConverterService
	metrics        *metrics.Metrics
	quizSize       int
}

func NewQuizService(
	questionRepo repository.QuestionRepository,
	resultRepo repository.QuizResultRepository,
	llm LLMService,
	scoreConverter ScoreConverterService,
	m *metrics.Metrics,
	cfg *config.Config,
) QuizService {
	return &quizService{
		questionRepo:   questionRepo,
		resultRepo:     resultRepo,
		llm:            llm,
		scoreConverter: scoreConverter,
		metrics:        m,
		quizSize:       cfg.Quiz.Size,
	}
}

func (s *quizService) GetQuestions(ctx context.Context) ([]dto.QuestionPublicDTO, error) {
	questions, err := s.questionRepo.FindRandom(ctx, s.quizSize)
	if err != nil {
		log.Error().Err(err).Int("limit", s.quizSize).Msg("GetQuestions: Failed to load random questions")
		return nil, fmt.Errorf("error fetching questions: %w", err)
	}

	dtos := make([]dto.QuestionPublicDTO, 0, len(questions))
	if err := copier.Copy(&dtos, &questions); err != nil {
		return nil, fmt.Errorf("error preparing questions response: %w", err)
	}
	return dtos, nil
}

// SubmitQuiz grades answers against the stored questions, asks the LLM for
// feedback when there are mistakes and stores one QuizResult.
//
// Answers referencing unknown question ids are ignored: they count toward
// neither the score nor the total. A nil answers slice is invalid input; an
// empty one yields an empty result without touching the store or the LLM.
func (s *quizService) SubmitQuiz(ctx context.Context, userID uint, answers []dto.SubmittedAnswerDTO) (*dto.QuizGradeDTO, error) {
	if answers == nil {
		return nil, invalidInput("Invalid answers format")
	}
	if len(answers) == 0 {
		return &dto.QuizGradeDTO{
			AIFeedback:   PerfectScoreFeedback,
			WrongAnswers: []dto.WrongAnswerDTO{},
		}, nil
	}

	ids := slice.Map(answers, func(_ int, a dto.SubmittedAnswerDTO) uint {
		return a.ID
	})
	questions, err := s.questionRepo.FindByIDs(ctx, ids)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("SubmitQuiz: Failed to load questions")
		return nil, fmt.Errorf("error loading questions: %w", err)
	}

	score, wrong := gradeAnswers(answers, questions)
	total := len(questions)
	feedback := s.generateFeedback(ctx, wrong)

	result := model.QuizResult{
		UserID:         userID,
		Score:          score,
		TotalQuestions: total,
		AIFeedback:     feedback,
	}
	if err := s.resultRepo.Create(ctx, &result); err != nil {
		log.Error().Err(err).Uint("userID", userID).Int("score", score).Int("total", total).Msg("SubmitQuiz: Failed to save quiz result")
		return nil, fmt.Errorf("%w: save quiz result: %w", ErrPersistence, err)
	}
	s.metrics.QuizGraded()

	log.Info().Uint("userID", userID).Uint("resultID", result.ID).Int("score", score).Int("total", total).Int("mistakes", len(wrong)).Msg("Quiz graded")
	return &dto.QuizGradeDTO{
		Score:        score,
		Total:        total,
		AIFeedback:   feedback,
		WrongAnswers: wrong,
	}, nil
}

// gradeAnswers compares each answer with its question's correct option.
// Every appearance of an id is graded on its own; mistakes keep submission order.
func gradeAnswers(answers []dto.SubmittedAnswerDTO, questions []model.Question) (int, []dto.WrongAnswerDTO) {
	questionMap := make(map[uint]model.Question, len(questions))
	for _, q := range questions {
		questionMap[q.ID] = q
	}

	score := 0
	wrong := make([]dto.WrongAnswerDTO, 0)
	for _, ans := range answers {
		question, exists := questionMap[ans.ID]
		if !exists {
			log.Debug().Uint("questionID", ans.ID).Msg("gradeAnswers: Unknown question id, skipping")
			continue
		}
		if question.CorrectOption == ans.Option {
			score++
			continue
		}
		wrong = append(wrong, dto.WrongAnswerDTO{
			Question:      question.QuestionText,
			UserOption:    ans.Option,
			CorrectOption: question.CorrectOption,
			Explanation:   question.Explanation,
			Category:      question.Category,
		})
	}
	return score, wrong
}

// generateFeedback never fails: LLM errors, panics and empty answers all
// turn into FeedbackUnavailableMessage.
func (s *quizService) generateFeedback(ctx context.Context, wrong []dto.WrongAnswerDTO) (feedback string) {
	if len(wrong) == 0 {
		return PerfectScoreFeedback
	}

	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("generateFeedback: LLM call panicked")
			s.metrics.FeedbackFallback()
			feedback = FeedbackUnavailableMessage
		}
	}()

	text, err := s.llm.Generate(ctx, buildFeedbackPrompt(wrong))
	if err != nil {
		log.Error().Err(err).Int("mistakes", len(wrong)).Msg("generateFeedback: Error generating AI feedback")
		s.metrics.FeedbackFallback()
		return FeedbackUnavailableMessage
	}
	text = strings.TrimSpace(text)
	if text == "" {
		log.Warn().Int("mistakes", len(wrong)).Msg("generateFeedback: LLM returned empty feedback")
		s.metrics.FeedbackFallback()
		return FeedbackUnavailableMessage
	}
	return text
}

func buildFeedbackPrompt(wrong []dto.WrongAnswerDTO) string {
	var sb strings.Builder
	sb.WriteString("Act as an expert cybersecurity mentor. A student just finished a quiz and got the following questions wrong:\n\n")
	for _, w := range wrong {
		sb.WriteString(fmt.Sprintf("- Question: %q. Answered: %q (Correct: %q). Category: %s. Context: %s\n",
			w.Question, w.UserOption, w.CorrectOption, w.Category, w.Explanation))
	}
	sb.WriteString("\nPlease write constructive and encouraging feedback.\n")
	sb.WriteString("1. Briefly summarize the areas where the student failed, grouped by category.\n")
	sb.WriteString("2. Give 3 key tips or improvement points so they can study and not fail these topics again.\n")
	sb.WriteString("3. Keep the tone friendly and motivating. Be concise (150 words maximum).\n")
	return sb.String()
}

func (s *quizService) GetHistory(ctx context.Context, userID uint) ([]dto.QuizHistoryItemDTO, error) {
	results, err := s.resultRepo.FindAllByUser(ctx, userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("GetHistory: Failed to load quiz results")
		return nil, fmt.Errorf("error fetching quiz history: %w", err)
	}

	items := make([]dto.QuizHistoryItemDTO, 0, len(results))
	for _, r := range results {
		pct, err := s.scoreConverter.ToPercentage(r.Score, r.TotalQuestions)
		if err != nil {
			log.Warn().Err(err).Uint("resultID", r.ID).Msg("GetHistory: Failed to convert score to percentage")
		}
		items = append(items, dto.QuizHistoryItemDTO{
			ID:             r.ID,
			Score:          r.Score,
			TotalQuestions: r.TotalQuestions,
			Percentage:     pct,
			AIFeedback:     r.AIFeedback,
			CreatedAt:      r.CreatedAt,
		})
	}
	return items, nil
}
