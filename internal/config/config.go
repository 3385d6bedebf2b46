package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	AppEnv           string
	JWTSecret        string
	StoreDriver      string
	SQLitePath       string
	DBUrl            string
	RedisAddr        string
	RedisPassword    string
	RedisDB          int
	OpenAIAPIKey     string
	OpenAIBaseURL    string
	OpenAIModel      string
	AssistantTimeout time.Duration
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	jwtSecret, exists := os.LookupEnv("JWT_SECRET")
	if !exists || jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	driver := strings.ToLower(getEnv("STORE_DRIVER", "sqlite"))
	switch driver {
	case "sqlite", "postgres", "redis", "memory":
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", driver)
	}

	return &Config{
		Port:             getEnv("PORT", "8080"),
		AppEnv:           normalizeEnv(getEnv("APP_ENV", "production")),
		JWTSecret:        jwtSecret,
		StoreDriver:      driver,
		SQLitePath:       getEnv("SQLITE_PATH", "athlete360.db"),
		DBUrl:            getEnv("DB_URL", ""),
		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:    getEnv("REDIS_PASSWORD", ""),
		RedisDB:          getEnvInt("REDIS_DB", 0),
		OpenAIAPIKey:     getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL:    getEnv("OPENAI_BASE_URL", ""),
		OpenAIModel:      getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		AssistantTimeout: time.Duration(getEnvInt("ASSISTANT_TIMEOUT_SECONDS", 30)) * time.Second,
	}, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return parsed
}

func normalizeEnv(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "dev", "develop", "development", "local":
		return "development"
	case "prod", "production":
		return "production"
	case "stage", "staging":
		return "staging"
	case "test", "testing":
		return "test"
	default:
		return strings.ToLower(strings.TrimSpace(value))
	}
}
