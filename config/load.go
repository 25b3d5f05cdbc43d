package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

func Load() App {
	// optional .env for local runs
	_ = godotenv.Load()

	cfg := App{
		Port:            getenv("APP_PORT", "8080"),
		JWTSecret:       getenv("JWT_SECRET", "local_dev_secret"),
		SessionTTLHours: getint("SESSION_TTL_HOURS", 24),
		Env:             getenv("APP_ENV", "dev"),
	}
	return cfg
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getint(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}
