package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type DatabaseConfig struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     string
	SSLMode  string
}

type Config struct {
	Port           string
	GinMode        string
	HistoryEnabled bool
	Database       DatabaseConfig
	RedisURL       string
	WeeklyCacheTTL time.Duration
	RateLimitRPS   float64
	RateLimitBurst int
	CORSOrigins    []string
	MetricsEnabled bool
}

// Load reads the optional .env files and then the process environment.
func Load(envFiles ...string) Config {
	if err := godotenv.Load(envFiles...); err != nil {
		log.Printf("No .env file loaded, using process environment: %v", err)
	}

	return Config{
		Port:           getEnv("PORT", "8080"),
		GinMode:        getEnv("GIN_MODE", "release"),
		HistoryEnabled: getBool("HISTORY_ENABLED", false),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			User:     getEnv("DB_USER", "postgres"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     getEnv("DB_NAME", "snacc"),
			Port:     getEnv("DB_PORT", "5432"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		RedisURL:       os.Getenv("REDIS_URL"),
		WeeklyCacheTTL: getDuration("WEEKLY_CACHE_TTL", 10*time.Minute),
		RateLimitRPS:   getFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst: getInt("RATE_LIMIT_BURST", 30),
		CORSOrigins:    strings.Split(getEnv("CORS_ORIGINS", "*"), ","),
		MetricsEnabled: getBool("METRICS_ENABLED", true),
	}
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(getEnv(key, strconv.FormatBool(fallback)))
	if err != nil {
		log.Printf("Invalid %s, using %v: %v", key, fallback, err)
		return fallback
	}
	return v
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(getEnv(key, strconv.Itoa(fallback)))
	if err != nil || v <= 0 {
		log.Printf("Invalid %s, using %d", key, fallback)
		return fallback
	}
	return v
}

func getFloat(key string, fallback float64) float64 {
	v, err := strconv.ParseFloat(getEnv(key, strconv.FormatFloat(fallback, 'f', -1, 64)), 64)
	if err != nil || v <= 0 {
		log.Printf("Invalid %s, using %v", key, fallback)
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(getEnv(key, fallback.String()))
	if err != nil || v <= 0 {
		log.Printf("Invalid %s, using %v", key, fallback)
		return fallback
	}
	return v
}
