// @title MentorLoop API
// @version 1.0
// @description Interactive tutoring API: teachers author exercises with reference material, students answer and receive progressively escalated hints.
// @host localhost:8090
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type 'Bearer YOUR_JWT_TOKEN' to authorize.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"mentorloop/internal/adapter"
	"mentorloop/internal/adapter/embedding"
	"mentorloop/internal/adapter/generator"
	"mentorloop/internal/adapter/retriever"
	"mentorloop/internal/adapter/storage"
	"mentorloop/internal/adapter/vectorstore"
	"mentorloop/internal/cache"
	"mentorloop/internal/config"
	"mentorloop/internal/database"
	"mentorloop/internal/domain"
	"mentorloop/internal/handler"
	"mentorloop/internal/logger"
	"mentorloop/internal/middleware"
	"mentorloop/internal/repository"
	"mentorloop/internal/service"

	_ "mentorloop/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/tmc/langchaingo/embeddings"
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

func redisConnectionURL(cfg config.RedisConfig) string {
	if cfg.Password != "" {
		return fmt.Sprintf("redis://:%s@%s/%d", cfg.Password, cfg.Address, cfg.DB)
	}
	return fmt.Sprintf("redis://%s/%d", cfg.Address, cfg.DB)
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

	// Redis backs the cache adapter and, optionally, the vector index.
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)
	appLogger.Info("RedisCacheAdapter initialized")

	// Embedding backend drives both the similarity gate and indexing.
	var embeddingService domain.EmbeddingService
	var embedder embeddings.Embedder
	switch cfg.Embedding.Source {
	case "ollama":
		appLogger.Info("Initializing Ollama Embedding Service",
			zap.String("server_url", cfg.Embedding.Ollama.ServerURL),
			zap.String("model", cfg.Embedding.Ollama.Model))
		svc, err := embedding.NewOllamaEmbeddingService(cfg.Embedding.Ollama.ServerURL, cfg.Embedding.Ollama.Model)
		if err != nil {
			appLogger.Fatal("Failed to create Ollama Embedding Service", zap.Error(err))
		}
		embeddingService = svc
		embedder = svc.Embedder()
	case "openai":
		appLogger.Info("Initializing OpenAI Embedding Service", zap.String("model", cfg.Embedding.OpenAI.Model))
		svc, err := embedding.NewOpenAIEmbeddingService(cfg.Embedding.OpenAI.APIKey, cfg.Embedding.OpenAI.Model, cacheAdapter)
		if err != nil {
			appLogger.Fatal("Failed to create OpenAI Embedding Service", zap.Error(err))
		}
		embeddingService = svc
		embedder = svc.Embedder()
	default:
		appLogger.Fatal(fmt.Sprintf("Unsupported embedding source: %s. Please check embedding.source in config.", cfg.Embedding.Source))
	}

	hintGenerator, err := generator.NewOllamaHintGenerator(cfg.LLM)
	if err != nil {
		appLogger.Fatal("Failed to create hint generator", zap.Error(err))
	}

	// Vector index backend
	var vectorProvider vectorstore.Provider
	switch cfg.VectorDB.Backend {
	case "chroma":
		vectorProvider, err = vectorstore.NewChromaProvider(cfg.VectorDB.ChromaURL, cfg.VectorDB.IndexPrefix, embedder)
	case "redis":
		vectorProvider, err = vectorstore.NewRedisProvider(redisConnectionURL(cfg.Redis), cfg.VectorDB.IndexPrefix, embedder, redisClient)
	default:
		appLogger.Fatal(fmt.Sprintf("Unsupported vector DB backend: %s", cfg.VectorDB.Backend))
	}
	if err != nil {
		appLogger.Fatal("Failed to create vector store provider", zap.Error(err))
	}

	// Material storage backend
	var fileStorage domain.FileStorage
	switch cfg.Storage.Provider {
	case "minio":
		fileStorage, err = storage.NewMinioStorage(context.Background(), cfg.Storage.Minio)
	default:
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.LocalPath)
	}
	if err != nil {
		appLogger.Fatal("Failed to create file storage", zap.Error(err))
	}

	db, err := database.NewSQLXOracleDB(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}

	exerciseRepository := repository.NewExerciseDatabaseAdapter(db)

	materialIndexer, err := service.NewMaterialIndexer(vectorProvider)
	if err != nil {
		appLogger.Fatal("Failed to create material indexer", zap.Error(err))
	}

	contextRetriever, err := retriever.NewMMRRetriever(vectorProvider, embedder, cfg.Retriever)
	if err != nil {
		appLogger.Fatal("Failed to create context retriever", zap.Error(err))
	}

	similarityScorer, err := service.NewEmbeddingSimilarityScorer(embeddingService)
	if err != nil {
		appLogger.Fatal("Failed to create similarity scorer", zap.Error(err))
	}

	hintCacheService := service.NewHintCacheService(cacheAdapter, cfg.HintCache)

	evaluationService, err := service.NewEvaluationService(
		similarityScorer,
		embeddingService,
		contextRetriever,
		hintGenerator,
		hintCacheService,
		cfg.Embedding.SimilarityThreshold,
	)
	if err != nil {
		appLogger.Fatal("Failed to create evaluation service", zap.Error(err))
	}

	exerciseService, err := service.NewExerciseService(exerciseRepository, fileStorage, materialIndexer, hintCacheService)
	if err != nil {
		appLogger.Fatal("Failed to create exercise service", zap.Error(err))
	}

	sessionService, err := service.NewSessionService(exerciseRepository, evaluationService)
	if err != nil {
		appLogger.Fatal("Failed to create session service", zap.Error(err))
	}

	authService, err := service.NewAuthService(cfg.Auth)
	if err != nil {
		appLogger.Fatal("Failed to create auth service", zap.Error(err))
	}

	exerciseHandler := handler.NewExerciseHandler(exerciseService)
	sessionHandler := handler.NewSessionHandler(sessionService)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    32 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
		MaxAge:       300,
	}))
	app.Use(recover.New())

	app.Get("/swagger/*", swagger.HandlerDefault)

	apiGroup := app.Group("/api")

	// Student routes: list exercises, run sessions.
	apiGroup.Get("/exercises", exerciseHandler.ListExercises)
	apiGroup.Post("/sessions", sessionHandler.StartSession)
	apiGroup.Get("/sessions/:id", sessionHandler.GetSession)
	apiGroup.Post("/sessions/:id/answers", sessionHandler.SubmitAnswer)
	apiGroup.Post("/sessions/:id/reset", sessionHandler.ResetSession)
	apiGroup.Delete("/sessions/:id", sessionHandler.EndSession)

	// Authoring routes (protected).
	authored := apiGroup.Group("/exercises", middleware.Protected(authService))
	authored.Post("/", exerciseHandler.CreateExercise)
	authored.Get("/:id", exerciseHandler.GetExercise)
	authored.Put("/:id", exerciseHandler.UpdateExercise)
	authored.Delete("/:id", exerciseHandler.DeleteExercise)
	authored.Post("/:id/material", exerciseHandler.UploadMaterial)
	authored.Post("/:id/reindex", exerciseHandler.ReindexMaterial)

	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", os.Getenv("ENV")))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

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
