package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"macropilot.econdata.org/internal/app"
	"macropilot.econdata.org/internal/chat"
	"macropilot.econdata.org/internal/llm"
	"macropilot.econdata.org/internal/logging"
	"macropilot.econdata.org/internal/metrics"
	"macropilot.econdata.org/internal/restapi"
	"macropilot.econdata.org/internal/sources"
	"macropilot.econdata.org/internal/triangulate"
	"macropilot.econdata.org/internal/webui"
)

func main() {
	var cfg app.Config
	var apiKeysFlag string

	flag.IntVar(&cfg.Port, "port", 7860, "API server port")
	flag.StringVar(&cfg.Env, "env", "development", "Environment (development|staging|production)")
	flag.StringVar(&apiKeysFlag, "api-keys", "test", "Comma separated API keys")
	flag.Float64Var(&cfg.RateLimit, "rate-limit", 0, "Requests per second per client (0 disables limiting)")
	flag.StringVar(&cfg.FREDAPIKey, "fred-key", os.Getenv("FRED_API_KEY"), "FRED API key")
	flag.BoolVar(&cfg.LiveData, "live-data", false, "Fetch from the live source APIs instead of simulating")
	flag.DurationVar(&cfg.CacheTTL, "cache-ttl", time.Hour, "Observation cache TTL")
	flag.StringVar(&cfg.RedisAddr, "redis-addr", os.Getenv("REDIS_ADDR"), "Redis address for the observation cache (empty uses in-memory)")
	flag.StringVar(&cfg.ModelServerURL, "model-server-url", "http://127.0.0.1:8080", "llama.cpp server base URL")
	flag.StringVar(&cfg.ModelArtifactURL, "model-artifact-url", "", "URL of the GGUF model artifact to download when absent")
	flag.StringVar(&cfg.ModelPath, "model-path", "models/model.gguf", "Local path for the GGUF model artifact")
	flag.StringVar(&cfg.HistoryDBPath, "history-db", "", "SQLite path for chat history (empty keeps history in memory)")
	flag.Parse()

	if apiKeysFlag != "" {
		cfg.ApiKeys = strings.Split(apiKeysFlag, ",")
		for i := range cfg.ApiKeys {
			cfg.ApiKeys[i] = strings.TrimSpace(cfg.ApiKeys[i])
		}
	}

	logger := logging.NewStructuredLogger(os.Stdout, logging.LevelForEnv(cfg.Env))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appMetrics := metrics.New()

	var cache triangulate.Cache
	if cfg.RedisAddr != "" {
		redisCache, err := triangulate.NewRedisCache(cfg.RedisAddr, cfg.CacheTTL, logger)
		if err != nil {
			logger.Error("redis unavailable, falling back to in-memory cache", "error", err)
		} else {
			cache = redisCache
			defer logging.SafeCloseWithLogging(redisCache, logger, "redis cache close")
		}
	}
	if cache == nil {
		memCache := triangulate.NewMemoryCache(cfg.CacheTTL)
		cache = memCache
		defer logging.SafeCloseWithLogging(memCache, logger, "memory cache close")
	}

	client := sources.NewClient(logger)
	fetcher := triangulate.NewFetcher(triangulate.Options{
		FRED:      sources.NewFRED(client, cfg.FREDAPIKey),
		WorldBank: sources.NewWorldBank(client),
		OECD:      sources.NewOECD(client),
		LiveData:  cfg.LiveData,
		Cache:     cache,
		Logger:    logger,
		Metrics:   appMetrics,
	})

	var history chat.Store
	if cfg.HistoryDBPath != "" {
		sqliteStore, err := chat.OpenSQLiteStore(cfg.HistoryDBPath)
		if err != nil {
			logger.Error("failed to open chat history database", "error", err, "path", cfg.HistoryDBPath)
			os.Exit(1)
		}
		defer logging.SafeCloseWithLogging(sqliteStore, logger, "chat history close")
		history = sqliteStore
	}

	model := llm.New(cfg.ModelServerURL, logger)
	if cfg.ModelArtifactURL != "" {
		go func() {
			if err := llm.EnsureModel(ctx, cfg.ModelArtifactURL, cfg.ModelPath, logger); err != nil {
				logger.Error("model download failed", "error", err)
			}
		}()
	}
	if !model.Healthy(ctx) {
		logger.Warn("model server not ready, chat will fail until it is", "url", cfg.ModelServerURL)
	}

	application := &app.Application{
		Config:  cfg,
		Logger:  logger,
		Fetcher: fetcher,
		Metrics: appMetrics,
		Chat: chat.NewEngine(chat.EngineOptions{
			Fetcher: fetcher,
			Model:   model,
			History: history,
			Logger:  logger,
			Metrics: appMetrics,
		}),
	}

	api := restapi.NewRestAPI(application)
	apiHandler := api.Routes()

	mux := http.NewServeMux()
	webui.SetWebUIRoutes(mux, webui.NewWebUI(application))
	mux.Handle("/api/", apiHandler)
	mux.Handle("/metrics", apiHandler)

	srv := &http.Server{
		Addr:        fmt.Sprintf(":%d", cfg.Port),
		Handler:     mux,
		IdleTimeout: time.Minute,
		ReadTimeout: 5 * time.Second,
		// Generous write timeout: chat streaming holds the connection
		// open for the full generation.
		WriteTimeout: 5 * time.Minute,
		ErrorLog:     logging.NewErrorLogger(logger),
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown failed", "error", err)
		}
	}()

	logger.Info("starting server", "addr", srv.Addr, "env", cfg.Env, "liveData", cfg.LiveData)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error(err.Error())
		os.Exit(1)
	}
	logger.Info("server stopped")
}
