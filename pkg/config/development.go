package config

import (
	"os"
	"strconv"
)

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func loadDevelopmentConfig(cfg *Config) {
	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err == nil {
		cfg.ServerPort = port
	}

	cfg.DatabaseDebug = true
	cfg.DatabaseFilePath = "./tmp/data.sqlite"
	cfg.JWTSecret = env("JWT_SECRET", "development-secret")
	cfg.ServerHost = "127.0.0.1"
	cfg.StorageDir = "./tmp/storage"
}
