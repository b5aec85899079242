package app

import (
	"log/slog"
	"time"

	"macropilot.econdata.org/internal/chat"
	"macropilot.econdata.org/internal/metrics"
	"macropilot.econdata.org/internal/triangulate"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware: configuration, the logger, the triangulating data
// fetcher, the chat engine and the metrics registry.
type Application struct {
	Config  Config
	Logger  *slog.Logger
	Fetcher *triangulate.Fetcher
	Chat    *chat.Engine
	Metrics *metrics.Metrics
}

// Config holds all the configuration settings for our Application. These
// are read from command-line flags when the Application starts, with
// environment variables backing the secrets.
type Config struct {
	Port      int
	Env       string
	ApiKeys   []string
	RateLimit float64

	FREDAPIKey string
	LiveData   bool
	CacheTTL   time.Duration
	RedisAddr  string

	ModelServerURL   string
	ModelArtifactURL string
	ModelPath        string
	HistoryDBPath    string
}
