package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// insecureSecret is the development-only placeholder signing key.
const insecureSecret = "change-me"

// defaultTokenTTL bounds the exposure window of a leaked token; there is
// no revocation list, so expiry is the only invalidation mechanism.
const defaultTokenTTL = 30 * time.Minute

// Config holds application level configuration loaded from environment
// variables. Built once at startup and passed explicitly; there is no
// ambient global configuration.
type Config struct {
	ServerPort     string
	MySQLDSN       string
	RedisAddr      string
	RedisDB        int
	RedisPass      string
	JWTSecret      string
	TokenTTL       time.Duration
	UploadDir      string
	UploadMaxBytes int64
	AllowOrigins   []string
	LogLevel       string
	SwaggerHost    string
}

// Load builds Config from environment with sensible defaults. A .env file
// in the working directory is read first when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:     getEnv("SERVER_PORT", "8080"),
		MySQLDSN:       getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/taskconnect?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:        getEnvInt("REDIS_DB", 0),
		RedisPass:      os.Getenv("REDIS_PASSWORD"),
		JWTSecret:      getEnv("JWT_SECRET", insecureSecret),
		TokenTTL:       getEnvDuration("TOKEN_TTL", defaultTokenTTL),
		UploadDir:      getEnv("UPLOAD_DIR", "uploads"),
		UploadMaxBytes: int64(getEnvInt("UPLOAD_MAX_BYTES", 5*1024*1024)),
		AllowOrigins:   []string{"http://localhost:3000", "http://127.0.0.1:3000", "http://localhost:8080", "http://127.0.0.1:8080"},
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		SwaggerHost:    os.Getenv("SWAGGER_HOST"),
	}
}

// InsecureSecret reports whether the signing key is still the development
// placeholder. Production deployments must set JWT_SECRET.
func (c *Config) InsecureSecret() bool {
	return c.JWTSecret == insecureSecret
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

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return def
}
