package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	DBUser string
	DBPass string
	DBName string
	DBHost string
	DBPort string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JWTSecret   string
	JWTIssuer   string
	JWTDuration time.Duration

	// LocalStorePath is the SQLite file holding device-local state such as
	// anonymous identities.
	LocalStorePath string

	RateLimitPerMinute int
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using defaults/environment variables")
	}

	return Config{
		Port: getenv("PORT", "8080"),

		DBUser: getenv("DB_USER", ""),
		DBPass: getenv("DB_PASSWORD", ""),
		DBName: getenv("DB_NAME", ""),
		DBHost: getenv("DB_HOST", "localhost"),
		DBPort: getenv("DB_PORT", "5432"),

		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getenv("REDIS_PASSWORD", ""),
		RedisDB:       getenvInt("REDIS_DB", 0),

		JWTSecret:   getenv("JWT_SECRET", ""),
		JWTIssuer:   getenv("JWT_ISSUER", "awa-backend"),
		JWTDuration: time.Duration(getenvInt("JWT_DURATION_HOURS", 72)) * time.Hour,

		LocalStorePath: getenv("LOCAL_STORE_PATH", "./data/localstore.db"),

		RateLimitPerMinute: getenvInt("RATE_LIMIT_PER_MINUTE", 100),
	}
}

func (c Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPass, c.DBHost, c.DBPort, c.DBName)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func getenvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("config: ignoring invalid value for %s: %q", key, v)
	}
	return fallback
}
