package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/cybersolutions/config"
	adminctrl "github.com/lshigami/cybersolutions/internal/controller/admin"
	authctrl "github.com/lshigami/cybersolutions/internal/controller/auth"
	phishingctrl "github.com/lshigami/cybersolutions/internal/controller/phishing"
	quizctrl "github.com/lshigami/cybersolutions/internal/controller/quiz"
	"github.com/lshigami/cybersolutions/internal/dto"
	"github.com/lshigami/cybersolutions/internal/middleware"
	"github.com/lshigami/cybersolutions/internal/token"
)

type Router struct {
	authCtrl     *authctrl.AuthController
	quizCtrl     *quizctrl.QuizController
	phishingCtrl *phishingctrl.PhishingController
	adminCtrl    *adminctrl.AdminQuestionController
	verifier     token.Verifier
	adminAPIKey  string
}

func NewRouter(
	authCtrl *authctrl.AuthController,
	quizCtrl *quizctrl.QuizController,
	phishingCtrl *phishingctrl.PhishingController,
	adminCtrl *adminctrl.AdminQuestionController,
	verifier token.Verifier,
	cfg *config.Config,
) *Router {
	return &Router{
		authCtrl:     authCtrl,
		quizCtrl:     quizCtrl,
		phishingCtrl: phishingCtrl,
		adminCtrl:    adminCtrl,
		verifier:     verifier,
		adminAPIKey:  cfg.AdminAPIKey,
	}
}

func (r *Router) RegisterRoutes(router *gin.Engine) {
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Cybersolutions API v1.0.0 is running")
	})

	requireAuth := middleware.RequireAuth(r.verifier)

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		auth.POST("/register", r.authCtrl.Register)
		auth.POST("/login", r.authCtrl.Login)
		auth.GET("/profile", requireAuth, r.authCtrl.Profile)

		quiz := api.Group("/quiz", requireAuth)
		quiz.GET("/questions", r.quizCtrl.GetQuestions)
		quiz.POST("/submit", r.quizCtrl.SubmitQuiz)
		quiz.GET("/history", r.quizCtrl.GetHistory)

		phishing := api.Group("/phishing", requireAuth)
		phishing.POST("/analyze", r.phishingCtrl.Analyze)
		phishing.GET("/history", r.phishingCtrl.GetHistory)

		admin := api.Group("/admin", middleware.RequireAdminKey(r.adminAPIKey))
		admin.POST("/questions", r.adminCtrl.CreateQuestion)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Route not found"})
	})
}
