package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// DefaultSecretKey is the development fallback signing secret. The server
// logs a warning when it is still in use.
const DefaultSecretKey = "dev-secret-key-change-in-production"

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort         string
	DatabaseDSN        string
	RedisAddr          string
	RedisDB            int
	RedisPass          string
	SecretKey          string
	AccessTokenExpires int // minutes
	LogLevel           string
	SwaggerHost        string
}

// Load builds Config from environment with sensible defaults. A .env file in
// the working directory is applied first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		DatabaseDSN:        getEnv("DATABASE_URL", "user:password@tcp(localhost:3306)/spendtrack?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:          getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:            getEnvInt("REDIS_DB", 0),
		RedisPass:          os.Getenv("REDIS_PASSWORD"),
		SecretKey:          getEnv("SECRET_KEY", DefaultSecretKey),
		AccessTokenExpires: getEnvInt("ACCESS_TOKEN_EXPIRE_MINUTES", 30),
		LogLevel:           getEnv("LOG_LEVEL", "INFO"),
		SwaggerHost:        os.Getenv("SWAGGER_HOST"),
	}
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
