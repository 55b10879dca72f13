package app

import (
	"time"

	"github.com/fedaykin-adel/sietch-shop/internal/platform/envutil"
)

type Config struct {
	Port            string
	Environment     string
	JWTSecretKey    string
	SessionTTL      time.Duration
	ShutdownTimeout time.Duration
}

func LoadConfig() Config {
	sessionTTLSeconds := envutil.Int("SESSION_TTL", 7*24*3600)
	return Config{
		Port:            envutil.String("PORT", "3000"),
		Environment:     envutil.String("APP_ENV", "development"),
		JWTSecretKey:    envutil.String("AUTH_SECRET", "dev-secret-change-me"),
		SessionTTL:      time.Duration(sessionTTLSeconds) * time.Second,
		ShutdownTimeout: time.Duration(envutil.Int("SHUTDOWN_TIMEOUT", 10)) * time.Second,
	}
}
