package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	Env         string
	ServerPort  string
	DatabaseDSN string
	DBCACert    string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	JWTSecret   string
	FrontendURL string
}

// Load builds Config from environment with sensible defaults. A .env file in
// the working directory is read first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Env:         getEnv("APP_ENV", "development"),
		ServerPort:  getEnv("PORT", "8080"),
		DatabaseDSN: getEnv("DATABASE_URL", "user:password@tcp(localhost:3306)/travellingapp?charset=utf8mb4&parseTime=True&loc=Local"),
		DBCACert:    os.Getenv("CA_CERT"),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:     getEnvInt("REDIS_DB", 0),
		RedisPass:   os.Getenv("REDIS_PASSWORD"),
		JWTSecret:   getEnv("JWT_SECRET", "change-me"),
		FrontendURL: os.Getenv("FRONTEND_URL"),
	}
}

// IsDevelopment reports whether the app runs in development mode. Error
// messages are only surfaced verbatim in development.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
