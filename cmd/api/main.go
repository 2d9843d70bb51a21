package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"learnsphere/internal/adapter"
	"learnsphere/internal/adapter/llm"
	"learnsphere/internal/adapter/videosearch"
	"learnsphere/internal/cache"
	"learnsphere/internal/config"
	"learnsphere/internal/database"
	"learnsphere/internal/domain"
	"learnsphere/internal/handler"
	"learnsphere/internal/logger"
	"learnsphere/internal/middleware"
	"learnsphere/internal/repository"
	"learnsphere/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
		)

		return err
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// LLM client for course, quiz, and evaluation generation
	llmClient, err := llm.NewGroqClient(cfg.Groq)
	if err != nil {
		appLogger.Fatal("Failed to create LLM client", zap.Error(err))
	}
	appLogger.Info("LLM client initialized", zap.String("model", cfg.Groq.Model))

	// Video search backend
	searcher, err := videosearch.NewYouTubeClient(context.Background(), cfg.YouTube.APIKey)
	if err != nil {
		appLogger.Fatal("Failed to create YouTube client", zap.Error(err))
	}
	appLogger.Info("YouTube client initialized")

	// Connect to database
	db, err := database.NewSQLXSqliteDB(cfg.Database.Path)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	courseRepository := repository.NewCourseDatabaseAdapter(db)

	// Redis is optional: without it evaluations simply are not cached.
	var cacheAdapter domain.Cache
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		appLogger.Info("Successfully connected to Redis")
		cacheAdapter = adapter.NewRedisCacheAdapter(redisClient)
	} else {
		appLogger.Warn("Redis address not configured, evaluation caching disabled")
	}

	// Initialize services
	evalCacheService := service.NewEvaluationCacheService(cacheAdapter, cfg)
	videoService := service.NewVideoService(searcher)
	generationService := service.NewGenerationService(llmClient, videoService, evalCacheService)
	courseService := service.NewCourseService(courseRepository)

	// Initialize handlers
	aiHandler := handler.NewAIHandler(generationService)
	youtubeHandler := handler.NewYouTubeHandler(videoService)
	courseHandler := handler.NewCourseHandler(courseService)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    10 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,PUT,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept,Authorization", MaxAge: 300}))
	app.Use(recover.New())

	// API group
	apiGroup := app.Group("/api")

	// AI routes
	aiGroup := apiGroup.Group("/ai")
	aiGroup.Post("/generate-course", aiHandler.GenerateCourse)
	aiGroup.Post("/generate-quiz", aiHandler.GenerateQuiz)
	aiGroup.Post("/generate-final-test", aiHandler.GenerateFinalTest)
	aiGroup.Post("/evaluate-short-answer", aiHandler.EvaluateShortAnswer)
	aiGroup.Post("/grade-quiz", aiHandler.GradeQuiz)

	// YouTube routes
	youtubeGroup := apiGroup.Group("/youtube")
	youtubeGroup.Post("/search", youtubeHandler.Search)
	youtubeGroup.Get("/video/:id", youtubeHandler.GetVideo)
	youtubeGroup.Get("/channel/:id", youtubeHandler.GetChannel)

	// Course routes
	courseGroup := apiGroup.Group("/courses")
	courseGroup.Post("/", courseHandler.CreateCourse)
	courseGroup.Get("/", courseHandler.ListCourses)
	courseGroup.Get("/:id", courseHandler.GetCourse)

	// Start server
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", os.Getenv("ENV")))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
