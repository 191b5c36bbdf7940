package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Nithish-1622/Legal-Querry-AI-1/internal/chunker"
	"github.com/Nithish-1622/Legal-Querry-AI-1/internal/config"
	"github.com/Nithish-1622/Legal-Querry-AI-1/internal/embedding"
	"github.com/Nithish-1622/Legal-Querry-AI-1/internal/generator"
	"github.com/Nithish-1622/Legal-Querry-AI-1/internal/helper"
	"github.com/Nithish-1622/Legal-Querry-AI-1/internal/llm"
	"github.com/Nithish-1622/Legal-Querry-AI-1/internal/loader"
	"github.com/Nithish-1622/Legal-Querry-AI-1/internal/rag"
	"github.com/Nithish-1622/Legal-Querry-AI-1/internal/server"
	"github.com/Nithish-1622/Legal-Querry-AI-1/internal/vectordb"
)

const configFilePath = "./configs/config.yaml"

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).With().Caller().Logger()

	configPath := flag.String("config", configFilePath, "Path to the config file")
	query := flag.String("query", "", "Run a single query and exit")
	addr := flag.String("addr", "", "Listen address override")
	flag.Parse()

	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading config")
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}

	key, err := cfg.Key()
	if err != nil {
		log.Fatal().Err(err).Msg("Error resolving LLM credential")
	}

	ctx := context.Background()

	log.Info().Msg("Initializing Legal Query AI backend...")

	pipeline := initPipeline(ctx, cfg, key)
	log.Info().Msg("Legal Query AI backend startup complete!")

	if *query != "" {
		response, err := pipeline.Query(ctx, *query)
		if err != nil {
			log.Fatal().Err(err).Msg("Error querying")
		}
		helper.PrettyPrint(response)
		return
	}

	srv := server.New(pipeline)
	go func() {
		if err := srv.Start(cfg.Server.Addr); err != nil {
			log.Info().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down RAG system")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Error shutting down server")
	}
}

// initPipeline builds the index and selects the active backend. Both are
// startup-fatal: the service must not report healthy without a working
// index and model.
func initPipeline(ctx context.Context, cfg *config.Config, key string) *rag.RAG {
	embedder, err := embedding.NewEmbedder(&cfg.Embedding)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing embedder")
	}
	embedFn := embedding.Func(embedder)

	store := initStore(ctx, cfg, embedFn)
	log.Info().Int("chunks", store.Count()).Msg("Vector store loaded successfully")

	backend, err := llm.Select(ctx, cfg.LLM.Models, llm.GroqFactory(cfg.LLM.BaseURL, key))
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing LLM")
	}

	gen := generator.New(store, cfg.RAG.TopK)
	log.Info().Msg("RAG system initialized successfully")
	return rag.NewRAG(backend, gen)
}

// initStore rebuilds the index from the corpus on every startup and falls
// back to the previously saved index only when the build fails. If both
// fail, startup aborts: no index means no retrieval.
func initStore(ctx context.Context, cfg *config.Config, embedFn vectordb.EmbeddingFunc) *vectordb.Store {
	docs := loader.LoadCorpus(cfg.RAG.CorpusDir)

	splitter, err := chunker.New(cfg.RAG.ChunkSize, cfg.RAG.ChunkOverlap)
	if err != nil {
		log.Fatal().Err(err).Msg("Error configuring chunker")
	}
	chunks := splitter.SplitAll(docs)
	log.Info().Int("chunks", len(chunks)).Msg("Created text chunks")

	store, buildErr := vectordb.Build(ctx, chunks, cfg.RAG.Collection, embedFn)
	if buildErr == nil {
		if err := store.Save(cfg.RAG.IndexPath); err != nil {
			log.Warn().Err(err).Msg("Error saving vector store")
		} else {
			log.Info().Str("path", cfg.RAG.IndexPath).Msg("Vector store saved locally")
		}
		return store
	}

	log.Error().Err(buildErr).Msg("Error building vector store, trying saved index")
	store, loadErr := vectordb.Load(cfg.RAG.IndexPath, cfg.RAG.Collection, embedFn)
	if loadErr != nil {
		log.Error().Err(loadErr).Msg("Failed to load existing vector store")
		log.Fatal().Err(buildErr).Msg("Error initializing vector store")
	}
	log.Info().Msg("Loaded existing vector store")
	return store
}
