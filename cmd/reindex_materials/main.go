package main

import (
	"context"
	"fmt"
	"log"

	"mentorloop/internal/adapter"
	"mentorloop/internal/adapter/embedding"
	"mentorloop/internal/adapter/storage"
	"mentorloop/internal/adapter/vectorstore"
	"mentorloop/internal/cache"
	"mentorloop/internal/config"
	"mentorloop/internal/database"
	"mentorloop/internal/domain"
	"mentorloop/internal/logger"
	"mentorloop/internal/repository"
	"mentorloop/internal/service"

	"github.com/tmc/langchaingo/embeddings"
	"go.uber.org/zap"
)

// reindex_materials rebuilds the vector index for every exercise that
// has reference material attached. Run it after switching embedding
// models or vector backends, when existing indexes no longer match the
// configured embedder.
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

	ctx := context.Background()

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)

	var embedder embeddings.Embedder
	switch cfg.Embedding.Source {
	case "ollama":
		svc, err := embedding.NewOllamaEmbeddingService(cfg.Embedding.Ollama.ServerURL, cfg.Embedding.Ollama.Model)
		if err != nil {
			appLogger.Fatal("Failed to create Ollama Embedding Service", zap.Error(err))
		}
		embedder = svc.Embedder()
	case "openai":
		svc, err := embedding.NewOpenAIEmbeddingService(cfg.Embedding.OpenAI.APIKey, cfg.Embedding.OpenAI.Model, cacheAdapter)
		if err != nil {
			appLogger.Fatal("Failed to create OpenAI Embedding Service", zap.Error(err))
		}
		embedder = svc.Embedder()
	default:
		appLogger.Fatal(fmt.Sprintf("Unsupported embedding source: %s. Please check embedding.source in config.", cfg.Embedding.Source))
	}

	var vectorProvider vectorstore.Provider
	switch cfg.VectorDB.Backend {
	case "chroma":
		vectorProvider, err = vectorstore.NewChromaProvider(cfg.VectorDB.ChromaURL, cfg.VectorDB.IndexPrefix, embedder)
	case "redis":
		connURL := fmt.Sprintf("redis://%s/%d", cfg.Redis.Address, cfg.Redis.DB)
		if cfg.Redis.Password != "" {
			connURL = fmt.Sprintf("redis://:%s@%s/%d", cfg.Redis.Password, cfg.Redis.Address, cfg.Redis.DB)
		}
		vectorProvider, err = vectorstore.NewRedisProvider(connURL, cfg.VectorDB.IndexPrefix, embedder, redisClient)
	default:
		appLogger.Fatal(fmt.Sprintf("Unsupported vector DB backend: %s", cfg.VectorDB.Backend))
	}
	if err != nil {
		appLogger.Fatal("Failed to create vector store provider", zap.Error(err))
	}

	var fileStorage domain.FileStorage
	switch cfg.Storage.Provider {
	case "minio":
		fileStorage, err = storage.NewMinioStorage(ctx, cfg.Storage.Minio)
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
	defer db.Close()

	exerciseRepository := repository.NewExerciseDatabaseAdapter(db)

	materialIndexer, err := service.NewMaterialIndexer(vectorProvider)
	if err != nil {
		appLogger.Fatal("Failed to create material indexer", zap.Error(err))
	}

	hintCacheService := service.NewHintCacheService(cacheAdapter, cfg.HintCache)

	exerciseService, err := service.NewExerciseService(exerciseRepository, fileStorage, materialIndexer, hintCacheService)
	if err != nil {
		appLogger.Fatal("Failed to create exercise service", zap.Error(err))
	}

	exercises, err := exerciseRepository.GetAllExercises(ctx)
	if err != nil {
		appLogger.Fatal("Failed to list exercises", zap.Error(err))
	}

	var reindexed, skipped, failed int
	for _, exercise := range exercises {
		if exercise.MaterialKey == "" {
			skipped++
			continue
		}
		resp, err := exerciseService.ReindexMaterial(ctx, exercise.ID)
		if err != nil {
			failed++
			appLogger.Error("Failed to reindex exercise material",
				zap.String("exercise_id", exercise.ID),
				zap.Error(err))
			continue
		}
		reindexed++
		appLogger.Info("Reindexed exercise material",
			zap.String("exercise_id", exercise.ID),
			zap.Int("chunks", resp.Chunks))
	}

	appLogger.Info("Reindexing complete",
		zap.Int("reindexed", reindexed),
		zap.Int("skipped", skipped),
		zap.Int("failed", failed))
}
