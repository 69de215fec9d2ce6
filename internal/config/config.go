package config

import (
	"os"
	"strconv"
	"time"

	"league-radar/internal/constants"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

type Config struct {
	RiotAPIKey string
	ServerPort string
	LogLevel   string
	BatchDelay time.Duration
}

// Load reads configuration from the environment. A missing RIOT_API_KEY is
// not fatal: every upstream call degrades to a synthetic 500 instead, so the
// server still answers and reports the configuration error per player.
func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{
		RiotAPIKey: getEnv("RIOT_API_KEY", ""),
		ServerPort: getEnv("SERVER_PORT", "8080"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		BatchDelay: getDurationMs("BATCH_DELAY_MS", constants.DefaultBatchDelay),
	}

	if cfg.RiotAPIKey == "" {
		logger.Warn().Msg("RIOT_API_KEY is not set, all upstream calls will fail with a synthetic 500")
	}

	logger.Info().
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
		Dur("batch_delay", cfg.BatchDelay).
		Bool("api_key_present", cfg.RiotAPIKey != "").
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDurationMs(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	ms, err := strconv.Atoi(v)
	if err != nil || ms < 0 {
		return fallback
	}
	return time.Duration(ms) * time.Millisecond
}

var Module = fx.Provide(Load)
