// Package config loads service configuration from the environment.
// A .env file in the working directory is honored when present, matching
// how the service is run in development.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Env                string
	Port               int
	DatabasePath       string
	ArtifactPath       string
	OpenAIApiKey       string
	AlphaVantageApiKey string
	EmbeddingModel     string
	JwtSecret          string
}

func Load() (*Config, error) {
	// best effort - env vars win over the file either way
	_ = godotenv.Load()

	cfg := &Config{
		Env:                os.Getenv("INVESTBUDDY_ENV"),
		Port:               3009,
		DatabasePath:       getEnv("INVESTBUDDY_DB_PATH", "investbuddy.db"),
		ArtifactPath:       getEnv("INVESTBUDDY_EMBEDDINGS_PATH", "etf_embeddings.msgpack"),
		OpenAIApiKey:       os.Getenv("OPENAI_API_KEY"),
		AlphaVantageApiKey: getEnv("ALPHA_VANTAGE_API_KEY", "demo"),
		EmbeddingModel:     getEnv("INVESTBUDDY_EMBEDDING_MODEL", "text-embedding-3-small"),
		JwtSecret:          getEnv("INVESTBUDDY_JWT_SECRET", "investbuddy-dev-secret"),
	}

	if portStr := os.Getenv("INVESTBUDDY_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid INVESTBUDDY_PORT %q: %w", portStr, err)
		}
		cfg.Port = port
	}

	if cfg.OpenAIApiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is not set")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
