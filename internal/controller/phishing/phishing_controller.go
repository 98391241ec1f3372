package phishing

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/cybersolutions/internal/dto"
	"github.com/lshigami/cybersolutions/internal/middleware"
	"github.com/lshigami/cybersolutions/internal/service"
	"github.com/rs/zerolog/log"
)

type PhishingController struct {
	phishingService service.PhishingService
}

func NewPhishingController(phishingService service.PhishingService) *PhishingController {
	return &PhishingController{phishingService: phishingService}
}

// Analyze godoc
// @Summary Analyze a suspicious email
// @Description Asks the AI model whether the email looks like phishing and stores the verdict.
// @Tags Phishing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param email body dto.PhishingAnalyzeRequest true "Raw email content"
// @Success 200 {object} dto.PhishingAnalyzeResponse
// @Failure 400 {object} dto.ErrorResponse "Email content is required"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /phishing/analyze [post]
func (c *PhishingController) Analyze(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Access denied. No token provided"})
		return
	}

	var req dto.PhishingAnalyzeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Analyze: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Email content is required"})
		return
	}

	analysis, err := c.phishingService.Analyze(ctx.Request.Context(), userID, req.EmailContent)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: service.UserMessage(err, "Email content is required")})
			return
		}
		log.Error().Err(err).Uint("userID", userID).Msg("Analyze: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Internal server error while analyzing the email"})
		return
	}

	ctx.JSON(http.StatusOK, dto.PhishingAnalyzeResponse{Success: true, Data: *analysis})
}

// GetHistory godoc
// @Summary List the authenticated user's phishing analyses
// @Tags Phishing
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.PhishingHistoryResponse "Newest first"
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /phishing/history [get]
func (c *PhishingController) GetHistory(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Access denied. No token provided"})
		return
	}

	history, err := c.phishingService.GetHistory(ctx.Request.Context(), userID)
	if err != nil {
		log.Error().Err(err).Uint("userID", userID).Msg("GetHistory: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Error retrieving history"})
		return
	}
	ctx.JSON(http.StatusOK, dto.PhishingHistoryResponse{Success: true, History: history})
}
