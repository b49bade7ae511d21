package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Game      string
	Format    string
	OutputDir string
	Workers   int
	LogLevel  string
	NoColor   bool
	TableDir  string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	return &Config{
		Game:      getEnv("OFFSETS_GAME", "auto"),
		Format:    getEnv("OFFSETS_FORMAT", ""),
		OutputDir: getEnv("OFFSETS_OUTPUT_DIR", "."),
		Workers:   getEnvInt("OFFSETS_WORKERS", 4),
		LogLevel:  getEnv("OFFSETS_LOG_LEVEL", "info"),
		NoColor:   getEnvBool("OFFSETS_NO_COLOR", false),
		TableDir:  getEnv("OFFSETS_TABLE_DIR", ""),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
