package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/mockview/config"
	"github.com/lshigami/mockview/database"
	_ "github.com/lshigami/mockview/docs" // Swagger docs
	interviewctrl "github.com/lshigami/mockview/internal/controller/interview"
	sessionctrl "github.com/lshigami/mockview/internal/controller/session"
	"github.com/lshigami/mockview/internal/logger"
	"github.com/lshigami/mockview/internal/middleware"
	"github.com/lshigami/mockview/internal/repository"
	"github.com/lshigami/mockview/internal/service"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
)

// @title MockView AI Interview API
// @version 1.0
// @description Mock interview practice: AI generated questions, spoken answers and per-answer AI feedback.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewStorage,
			database.NewRedisClient,
			NewGinEngine,
		),

		// Repositories
		fx.Provide(
			repository.NewInterviewRepository,
			repository.NewSubmissionRepository,
			func(rdb *redis.Client, cfg *config.Config) repository.SessionStore {
				return repository.NewSessionStore(rdb, cfg.Interview.SessionTTL)
			},
		),

		// Services
		fx.Provide(
			service.NewGeminiLLMService,
			func(llm service.GeminiLLMService, cfg *config.Config) service.QuestionGenerator {
				return service.NewQuestionGenerator(llm, cfg.Interview.QuestionCount)
			},
			service.NewFeedbackGenerator,
			service.NewScoreConverterService,
			service.NewInterviewService,
			service.NewSubmissionService,
			service.NewResultsService,
			service.NewAudioStore,
			service.NewSessionService,
		),

		// Controllers
		fx.Provide(
			interviewctrl.NewInterviewController,
			sessionctrl.NewSessionController,
		),

		fx.Invoke(RunMigrations),
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

func NewGinEngine(cfg *config.Config) (*gin.Engine, error) {
	if cfg.Server.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	if err := middleware.RegisterValidators(); err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(middleware.RequestLogger())
	r.Use(middleware.Recovery(cfg.Server.IsProduction()))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// URL: http://localhost:PORT/swagger/index.html
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if cfg.Audio.CloudinaryURL == "" {
		r.Static(service.LocalAudioRoute, cfg.Audio.LocalDir)
	}

	return r, nil
}

func RunMigrations(lc fx.Lifecycle, store *database.Storage) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return repository.Migrate(ctx, store)
		},
	})
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	interviewCtrl *interviewctrl.InterviewController,
	sessionCtrl *sessionctrl.SessionController,
) {
	api := router.Group("/api/v1")
	interviewCtrl.RegisterRoutes(api)
	sessionCtrl.RegisterRoutes(api)

	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("MockView API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}
