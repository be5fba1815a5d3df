package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment and flags.
type Config struct {
	RunAddress         string
	DatabaseURI        string
	ShopifyAPIAddress  string
	ShopifyAccessToken string
	WebhookSecret      string

	BoardID           int64
	EmptyTagPolicy    string
	StandupBoardTitle string
	StandupTagMap     string

	TagReadinessDelay  time.Duration
	TagRefetchAttempts int
	CardMoveWindow     time.Duration

	ImportPollInterval time.Duration
	ImportLookback     time.Duration
	ShutdownTimeout    time.Duration
}

const (
	defaultRunAddress         = ":8080"
	defaultEmptyTagPolicy     = "default"
	defaultStandupBoardTitle  = "Daily Standup"
	defaultTagReadinessDelay  = 30 * time.Second
	defaultTagRefetchAttempts = 1
	defaultCardMoveWindow     = time.Minute
	defaultImportPollInterval = 5 * time.Minute
	defaultImportLookback     = 24 * time.Hour
	defaultShutdownTimeout    = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:         getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:        getString(lookup, "DATABASE_URI", ""),
		ShopifyAPIAddress:  getString(lookup, "SHOPIFY_API_ADDRESS", ""),
		ShopifyAccessToken: getString(lookup, "SHOPIFY_ACCESS_TOKEN", ""),
		WebhookSecret:      getString(lookup, "SHOPIFY_WEBHOOK_SECRET", ""),
		BoardID:            getInt64(lookup, "BOARD_ID", 0),
		EmptyTagPolicy:     getString(lookup, "EMPTY_TAG_POLICY", defaultEmptyTagPolicy),
		StandupBoardTitle:  getString(lookup, "STANDUP_BOARD_TITLE", defaultStandupBoardTitle),
		StandupTagMap:      getString(lookup, "STANDUP_TAG_MAP", ""),
		TagReadinessDelay:  getDuration(lookup, "TAG_READINESS_DELAY", defaultTagReadinessDelay),
		TagRefetchAttempts: getInt(lookup, "TAG_REFETCH_ATTEMPTS", defaultTagRefetchAttempts),
		CardMoveWindow:     getDuration(lookup, "CARD_MOVE_WINDOW", defaultCardMoveWindow),
		ImportPollInterval: getDuration(lookup, "IMPORT_POLL_INTERVAL", defaultImportPollInterval),
		ImportLookback:     getDuration(lookup, "IMPORT_LOOKBACK", defaultImportLookback),
		ShutdownTimeout:    getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("boardflow", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		readinessDelayStr  = cfg.TagReadinessDelay.String()
		moveWindowStr      = cfg.CardMoveWindow.String()
		pollIntervalStr    = cfg.ImportPollInterval.String()
		lookbackStr        = cfg.ImportLookback.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.ShopifyAPIAddress, "r", cfg.ShopifyAPIAddress, "Shopify admin API base URL")
	fs.StringVar(&cfg.ShopifyAccessToken, "shopify-token", cfg.ShopifyAccessToken, "Shopify admin API access token")
	fs.StringVar(&cfg.WebhookSecret, "webhook-secret", cfg.WebhookSecret, "Shared secret for webhook HMAC verification")
	fs.Int64Var(&cfg.BoardID, "board", cfg.BoardID, "Explicit destination board id (0 uses earliest-created board)")
	fs.StringVar(&cfg.EmptyTagPolicy, "empty-tag-policy", cfg.EmptyTagPolicy, "Handling for empty tag sets after readiness wait: default, skip or retry")
	fs.StringVar(&cfg.StandupBoardTitle, "standup-board", cfg.StandupBoardTitle, "Title of the standup board")
	fs.StringVar(&cfg.StandupTagMap, "standup-tag-map", cfg.StandupTagMap, "JSON tag-to-column map for the standup router")
	fs.StringVar(&readinessDelayStr, "readiness-delay", readinessDelayStr, "Wait before re-fetching an order with empty tags")
	fs.IntVar(&cfg.TagRefetchAttempts, "refetch-attempts", cfg.TagRefetchAttempts, "Re-fetch attempts during the readiness wait")
	fs.StringVar(&moveWindowStr, "move-window", moveWindowStr, "Maximum card age still eligible for relocation")
	fs.StringVar(&pollIntervalStr, "poll-interval", pollIntervalStr, "Interval between polled import runs")
	fs.StringVar(&lookbackStr, "import-lookback", lookbackStr, "How far back the first polled import reaches")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.TagReadinessDelay, err = time.ParseDuration(readinessDelayStr); err != nil {
		return nil, fmt.Errorf("invalid readiness delay: %w", err)
	}

	if cfg.CardMoveWindow, err = time.ParseDuration(moveWindowStr); err != nil {
		return nil, fmt.Errorf("invalid move window: %w", err)
	}

	if cfg.ImportPollInterval, err = time.ParseDuration(pollIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid poll interval: %w", err)
	}

	if cfg.ImportLookback, err = time.ParseDuration(lookbackStr); err != nil {
		return nil, fmt.Errorf("invalid import lookback: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("SHOPIFY_WEBHOOK_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read webhook secret file: %w", err)
		}
		cfg.WebhookSecret = string(content)
	}

	switch cfg.EmptyTagPolicy {
	case "default", "skip", "retry":
	default:
		return nil, fmt.Errorf("invalid empty tag policy %q", cfg.EmptyTagPolicy)
	}

	if cfg.TagReadinessDelay <= 0 {
		cfg.TagReadinessDelay = defaultTagReadinessDelay
	}

	if cfg.TagRefetchAttempts <= 0 {
		cfg.TagRefetchAttempts = defaultTagRefetchAttempts
	}

	if cfg.CardMoveWindow <= 0 {
		cfg.CardMoveWindow = defaultCardMoveWindow
	}

	if cfg.ImportPollInterval <= 0 {
		cfg.ImportPollInterval = defaultImportPollInterval
	}

	if cfg.ImportLookback <= 0 {
		cfg.ImportLookback = defaultImportLookback
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.ShopifyAPIAddress == "" {
		return nil, fmt.Errorf("shopify API address must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getInt64(lookup envLookup, key string, def int64) int64 {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
