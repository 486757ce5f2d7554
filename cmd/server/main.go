// @title         resumefill API
// @version       1.0
// @description   Сервис заполнения анкеты кандидата: принимает резюме (PDF, DOCX, TXT), извлекает поля с помощью LLM и возвращает их для редактирования.
// @BasePath      /api/v1
// @schemes       http
// @host          localhost:8080
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Токен авторизации. Поддерживаются форматы: "Bearer <JWT>" или "<JWT>". Требуется, только если задан AUTH_JWT_SECRET.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	swagger "github.com/gofiber/swagger"
	"go.uber.org/zap"

	// internal imports
	"github.com/artem13815/resumefill/api/http"
	"github.com/artem13815/resumefill/api/http/handlers"
	"github.com/artem13815/resumefill/api/http/middleware"
	_ "github.com/artem13815/resumefill/docs"
	"github.com/artem13815/resumefill/pkg/config"
	"github.com/artem13815/resumefill/pkg/form"
	"github.com/artem13815/resumefill/pkg/health"
	"github.com/artem13815/resumefill/pkg/health/checkers"
	"github.com/artem13815/resumefill/pkg/llm/provider"
	"github.com/artem13815/resumefill/pkg/logging"
	"github.com/artem13815/resumefill/pkg/resume"
	"github.com/artem13815/resumefill/pkg/security/jwt"
)

// multipart framing on top of the file itself
const bodySlack = 1 << 20

func main() {
	// Load configuration from env/.env
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Model client is built once and shared by all requests.
	model, err := provider.New(ctx, cfg)
	if err != nil {
		logger.Fatal("init llm provider", zap.Error(err))
	}

	ingestor := resume.NewIngestor(cfg.MaxUploadBytes)
	extractor := resume.NewExtractor(model, logger, cfg.ExtractTimeout)
	parseSvc := resume.NewParseService(ingestor, extractor, logger)

	store := form.NewStore(cfg.FormSessionTTL, logger)
	defer store.Close()
	submitter := form.NewSubmitter(parseSvc, logger)

	readiness := health.NewService(checkers.NewModelChecker(model, 5*time.Second))

	healthHandler := handlers.NewHealthHandler(readiness, 6*time.Second)
	resumeHandler := handlers.NewResumeHandler(parseSvc)
	formsHandler := handlers.NewFormsHandler(store, parseSvc, submitter)

	var authMW fiber.Handler
	if cfg.AuthEnabled() {
		authMW = jwt.NewAuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer)
	}

	app := fiber.New(fiber.Config{
		AppName:               "resumefill",
		BodyLimit:             int(cfg.MaxUploadBytes) + bodySlack,
		ReadTimeout:           30 * time.Second,
		WriteTimeout:          cfg.ExtractTimeout + 10*time.Second,
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(middleware.AccessLog(logger))
	app.Use(cors.New())

	// Register routes
	http.Register(app, healthHandler, resumeHandler, formsHandler, authMW)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	go func() {
		<-ctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			logger.Warn("shutdown", zap.Error(err))
		}
	}()

	logger.Info("http server listening",
		zap.String("port", cfg.Port),
		zap.String("provider", cfg.Provider),
		zap.String("model", model.Name()),
		zap.Bool("auth", cfg.AuthEnabled()),
	)
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
