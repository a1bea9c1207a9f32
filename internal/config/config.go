// internal/config/config.go
package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort     string
	LogLevel       slog.Level
	JWTSecret      string
	JWTExpiresIn   time.Duration
	AllowedOrigins []string
	BotToken       string
}

// MustLoad reads the environment, after an optional .env in the working directory.
func MustLoad() Config {
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logLevel := slog.LevelInfo
	if lvl := os.Getenv("LOG_LEVEL"); lvl != "" {
		if err := logLevel.UnmarshalText([]byte(lvl)); err != nil {
			logLevel = slog.LevelInfo
		}
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "your-super-secret-jwt-key-change-in-prod"
	}

	jwtExpiresIn := 24 * time.Hour
	if expiresInStr := os.Getenv("JWT_EXPIRES_IN"); expiresInStr != "" {
		if d, err := time.ParseDuration(expiresInStr); err == nil {
			jwtExpiresIn = d
		}
	}

	origins := []string{"http://localhost:5173"}
	if raw := os.Getenv("CORS_ALLOWED_ORIGINS"); raw != "" {
		origins = splitList(raw)
	}

	return Config{
		ServerPort:     ":" + port,
		LogLevel:       logLevel,
		JWTSecret:      jwtSecret,
		JWTExpiresIn:   jwtExpiresIn,
		AllowedOrigins: origins,
		BotToken:       os.Getenv("TELEGRAM_BOT_TOKEN"),
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
