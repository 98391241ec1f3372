package main

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/cybersolutions/config"
	"github.com/lshigami/cybersolutions/database"
	"github.com/lshigami/cybersolutions/internal/controller"
	adminctrl "github.com/lshigami/cybersolutions/internal/controller/admin"
	authctrl "github.com/lshigami/cybersolutions/internal/controller/auth"
	phishingctrl "github.com/lshigami/cybersolutions/internal/controller/phishing"
	quizctrl "github.com/lshigami/cybersolutions/internal/controller/quiz"
	"github.com/lshigami/cybersolutions/internal/logger"
	"github.com/lshigami/cybersolutions/internal/metrics"
	"github.com/lshigami/cybersolutions/internal/middleware"
	"github.com/lshigami/cybersolutions/internal/model"
	"github.com/lshigami/cybersolutions/internal/repository"
	"github.com/lshigami/cybersolutions/internal/service"
	"github.com/lshigami/cybersolutions/internal/token"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Cybersolutions API
// @version 1.0
// @description Cybersecurity awareness backend: accounts, AI phishing analysis and a graded quiz with AI feedback.
// @host localhost:3000
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.Init()

	app := fx.New(
		// Core Application Components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			metrics.NewRegistry,
			metrics.New,
			NewGinEngine,
		),

		// Repositories Layer
		fx.Provide(
			repository.NewUserRepository,
			repository.NewQuestionRepository,
			repository.NewQuizResultRepository,
			repository.NewPhishingLogRepository,
		),

		// Auth
		fx.Provide(
			token.NewJWTTokenGen,
			token.NewJWTTokenVerifier,
		),

		// Services Layer
		fx.Provide(
			NewLLMService,
			service.NewScoreConverterService,
			service.NewAuthService,
			service.NewQuizService,
			service.NewPhishingService,
			service.NewAdminQuestionService,
		),

		// API Controllers Layer
		fx.Provide(
			authctrl.NewAuthController,
			quizctrl.NewQuizController,
			phishingctrl.NewPhishingController,
			adminctrl.NewAdminQuestionController,
			controller.NewRouter,
		),

		fx.Invoke(ConfigureLogger),
		fx.Invoke(AutoMigrateDB),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")

	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Failed to stop application cleanly")
	}
}

// NewLLMService builds the configured provider and closes it with the app.
func NewLLMService(lc fx.Lifecycle, cfg *config.Config) (service.LLMService, error) {
	llm, err := service.NewLLMService(cfg)
	if err != nil {
		return nil, err
	}
	if closer, ok := llm.(io.Closer); ok {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return closer.Close()
			},
		})
	}
	return llm, nil
}

func ConfigureLogger(cfg *config.Config) {
	logger.Configure(cfg.AppEnv, cfg.LogLevel)
}

func NewGinEngine(cfg *config.Config, reg *prometheus.Registry) *gin.Engine {
	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()
	r.Use(middleware.RequestLogger())
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.AdminKeyHeader},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/metrics", gin.WrapH(metrics.Handler(reg)))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	engine *gin.Engine,
	cfg *config.Config,
	router *controller.Router,
) {
	router.RegisterRoutes(engine)

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Cybersolutions API server starting on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.Question{},
		&model.QuizResult{},
		&model.PhishingLog{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
