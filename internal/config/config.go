package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	JWTSecret     string
	AdminPassword string
	ServerPort    string

	// BaseURL is prepended to generated QR token links.
	BaseURL string

	// Blacklist holds handles excluded from the lucky draw.
	Blacklist []string

	LuckyWinnerCount  int
	TokenSweepMinutes int
}

func Load() *Config {
	return &Config{
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBName:            getEnv("DB_NAME", "boothrally"),
		JWTSecret:         getEnv("JWT_SECRET", "super-secret-key-change-me"),
		AdminPassword:     getEnv("ADMIN_PASSWORD", "admin-password-change-me"),
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		BaseURL:           getEnv("BASE_URL", "http://localhost:8080"),
		Blacklist:         getEnvList("BLACKLIST_HANDLES"),
		LuckyWinnerCount:  getEnvInt("LUCKY_WINNER_COUNT", 7),
		TokenSweepMinutes: getEnvInt("TOKEN_SWEEP_MINUTES", 15),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvList(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
