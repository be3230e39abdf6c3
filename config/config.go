package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/GoSim-25-26J-441/terminal-portfolio-backend/internal/auth"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	BackendPostgres = "postgres"
	BackendRedis    = "redis"

	DriverPostgres = "postgres"
	DriverPgx      = "pgx"
)

type Config struct {
	Server    ServerConfig
	Store     StoreConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig
	App       AppConfig
}

type ServerConfig struct {
	Port        string
	CORSOrigins []string
}

type StoreConfig struct {
	Backend     string
	DatabaseURL string
	SQLDriver   string
	RedisURL    string
	KeyPrefix   string
}

type AuthConfig struct {
	AdminToken string
	// Generated is set when no ADMIN_TOKEN was configured and a random one
	// was minted for this process.
	Generated bool
}

type RateLimitConfig struct {
	RPS   float64
	Burst int
}

type AppConfig struct {
	Environment string
	LogLevel    string
	Version     string
}

func (a AppConfig) IsProduction() bool {
	return a.Environment == EnvProduction
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			CORSOrigins: getEnvAsList("CORS_ORIGINS", []string{"http://localhost:3000"}),
		},
		Store: StoreConfig{
			Backend:     strings.ToLower(getEnv("STORE_BACKEND", BackendPostgres)),
			DatabaseURL: getEnv("DATABASE_URL", ""),
			SQLDriver:   strings.ToLower(getEnv("SQL_DRIVER", DriverPostgres)),
			RedisURL:    getEnv("REDIS_URL", ""),
			KeyPrefix:   getEnv("STORE_KEY_PREFIX", "portfolio"),
		},
		Auth: AuthConfig{
			AdminToken: getEnv("ADMIN_TOKEN", ""),
		},
		RateLimit: RateLimitConfig{
			RPS:   getEnvAsFloat("RATE_LIMIT_RPS", 10),
			Burst: getEnvAsInt("RATE_LIMIT_BURST", 20),
		},
		App: AppConfig{
			Environment: strings.ToLower(getEnv("ENVIRONMENT", EnvDevelopment)),
			LogLevel:    getEnv("LOG_LEVEL", ""),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.Auth.AdminToken == "" {
		token, err := auth.GenerateToken()
		if err != nil {
			return nil, fmt.Errorf("generate admin token: %w", err)
		}
		cfg.Auth.AdminToken = token
		cfg.Auth.Generated = true
	}

	return cfg, nil
}

// Validate checks the loaded settings. An empty admin token is valid here;
// Load mints one after validation succeeds.
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	switch c.App.Environment {
	case EnvDevelopment, EnvProduction:
	default:
		return fmt.Errorf("ENVIRONMENT must be %q or %q, got %q", EnvDevelopment, EnvProduction, c.App.Environment)
	}

	switch c.Store.Backend {
	case BackendPostgres:
		if c.Store.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required when STORE_BACKEND=postgres")
		}
		if c.Store.SQLDriver != DriverPostgres && c.Store.SQLDriver != DriverPgx {
			return fmt.Errorf("SQL_DRIVER must be %q or %q, got %q", DriverPostgres, DriverPgx, c.Store.SQLDriver)
		}
	case BackendRedis:
		if c.Store.RedisURL == "" {
			return fmt.Errorf("REDIS_URL is required when STORE_BACKEND=redis")
		}
	default:
		return fmt.Errorf("STORE_BACKEND must be %q or %q, got %q", BackendPostgres, BackendRedis, c.Store.Backend)
	}

	if c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0 {
		return fmt.Errorf("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid number for %s, using default: %g", key, defaultValue)
		return defaultValue
	}

	return value
}

// getEnvAsList splits a comma separated variable, dropping empty entries.
func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
