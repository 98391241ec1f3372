package quiz

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/cybersolutions/internal/dto"
	"github.com/lshigami/cybersolutions/internal/middleware"
	"github.com/lshigami/cybersolutions/internal/service"
	"github.com/rs/zerolog/log"
)

const invalidAnswersMessage = "Invalid answers format"

type QuizController struct {
	quizService service.QuizService
}

func NewQuizController(quizService service.QuizService) *QuizController {
	return &QuizController{quizService: quizService}
}

// GetQuestions godoc
// @Summary Get a random quiz
// @Description Returns a random sample of questions without their correct answers.
// @Tags Quiz
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.QuestionsResponse
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quiz/questions [get]
func (c *QuizController) GetQuestions(ctx *gin.Context) {
	questions, err := c.quizService.GetQuestions(ctx.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("GetQuestions: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Error loading the quiz"})
		return
	}
	ctx.JSON(http.StatusOK, dto.QuestionsResponse{Success: true, Data: questions})
}

// SubmitQuiz godoc
// @Summary Submit quiz answers for grading
// @Description Grades the answers, generates AI feedback for the mistakes and stores the result.
// @Tags Quiz
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param submission body dto.QuizSubmitDTO true "List of {id, option} answers"
// @Success 200 {object} dto.QuizSubmitResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid answers format"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 500 {object} dto.ErrorResponse "Error grading the quiz"
// @Router /quiz/submit [post]
func (c *QuizController) SubmitQuiz(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Access denied. No token provided"})
		return
	}

	var req dto.QuizSubmitDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Uint("userID", userID).Msg("SubmitQuiz: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: invalidAnswersMessage})
		return
	}

	result, err := c.quizService.SubmitQuiz(ctx.Request.Context(), userID, req.Answers)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: service.UserMessage(err, invalidAnswersMessage)})
			return
		}
		log.Error().Err(err).Uint("userID", userID).Msg("SubmitQuiz: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Error grading the quiz"})
		return
	}

	ctx.JSON(http.StatusOK, dto.QuizSubmitResponse{
		Success:      true,
		Score:        result.Score,
		Total:        result.Total,
		AIFeedback:   result.AIFeedback,
		WrongAnswers: result.WrongAnswers,
	})
}

// GetHistory godoc
// @Summary List the authenticated user's quiz results
// @Tags Quiz
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.QuizHistoryResponse "Newest first"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /quiz/history [get]
func (c *QuizController) GetHistory(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Access denied. No token provided"})
		return
	}

	history, err := c.quizService.GetHistory(ctx.Request.Context(), userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("GetHistory: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Error retrieving history"})
		return
	}
	ctx.JSON(http.StatusOK, dto.QuizHistoryResponse{Success: true, History: history})
}
