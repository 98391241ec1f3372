package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/cybersolutions/internal/dto"
	"github.com/lshigami/cybersolutions/internal/middleware"
	"github.com/lshigami/cybersolutions/internal/service"
	"github.com/rs/zerolog/log"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Register godoc
// @Summary Register a new user
// @Tags Auth
// @Accept json
// @Produce json
// @Param user body dto.RegisterRequest true "Name, email and password (min 6 chars)"
// @Success 201 {object} dto.RegisterResponse
// @Failure 400 {object} dto.ErrorResponse "Missing fields, short password or email already registered"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Register: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body"})
		return
	}

	userID, err := c.authService.Register(ctx.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: service.UserMessage(err, "Invalid request body")})
		case errors.Is(err, service.ErrEmailTaken):
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Email is already registered"})
		default:
			log.Error().Err(err).Msg("Register: Service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Server error while registering"})
		}
		return
	}

	ctx.JSON(http.StatusCreated, dto.RegisterResponse{
		Success: true,
		Message: "User registered successfully",
		UserID:  userID,
	})
}

// Login godoc
// @Summary Log in and obtain a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Email and password"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse "Missing email or password"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Login: Failed to bind JSON")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body"})
		return
	}

	tok, user, err := c.authService.Login(ctx.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidInput):
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: service.UserMessage(err, "Email and password are required")})
		case errors.Is(err, service.ErrInvalidCredentials):
			ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid credentials"})
		default:
			log.Error().Err(err).Msg("Login: Service error")
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Server error while logging in"})
		}
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Success: true,
		Message: "Login successful",
		Token:   tok,
		User:    *user,
	})
}

// Profile godoc
// @Summary Get the authenticated user's profile
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.ProfileResponse
// @Failure 401 {object} dto.ErrorResponse "Missing or invalid token"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/profile [get]
func (c *AuthController) Profile(ctx *gin.Context) {
	userID, ok := middleware.UserID(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "Access denied. No token provided"})
		return
	}

	user, err := c.authService.GetProfile(ctx.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "User not found"})
			return
		}
		log.Error().Err(err).Uint("userID", userID).Msg("Profile: Service error")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Error retrieving profile"})
		return
	}

	ctx.JSON(http.StatusOK, dto.ProfileResponse{Success: true, User: *user})
}
