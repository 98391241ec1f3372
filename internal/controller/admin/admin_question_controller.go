package admin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/cybersolutions/internal/dto"
	"github.com/lshigami/cybersolutions/internal/service"
	"github.com/rs/zerolog/log"
)

type AdminQuestionController struct {
	adminQuestionService service.AdminQuestionService
}

func NewAdminQuestionController(adminQuestionService service.AdminQuestionService) *AdminQuestionController {
	return &AdminQuestionController{adminQuestionService: adminQuestionService}
}

// CreateQuestion godoc
// @Summary (Admin) Add a question to the quiz bank
// @Tags Admin - Questions
// @Accept json
// @Produce json
// @Param X-Admin-Key header string true "Admin API key"
// @Param question body dto.QuestionCreateDTO true "Question, four options, correct option, explanation and category"
// @Success 201 {object} dto.QuestionCreateResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input data"
// @Failure 403 {object} dto.ErrorResponse "Missing or wrong admin key"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/questions [post]
func (c *AdminQuestionController) CreateQuestion(ctx *gin.Context) {
	var req dto.QuestionCreateDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Admin CreateQuestion: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body: all fields are required and correct_option must be A, B, C or D"})
		return
	}

	question, err := c.adminQuestionService.CreateQuestion(ctx.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: service.UserMessage(err, "Invalid request body")})
			return
		}
		log.Error().Err(err).Msg("Admin CreateQuestion: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Failed to create question"})
		return
	}
	ctx.JSON(http.StatusCreated, dto.QuestionCreateResponse{Success: true, Data: *question})
}
