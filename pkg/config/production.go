package config

import (
	"os"
	"strconv"
)

func loadProductionConfig(cfg *Config) {
	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err == nil {
		cfg.ServerPort = port
	}

	cfg.DatabaseFilePath = env("DATABASE_FILE_PATH", "/data/tulisify.sqlite")
	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	cfg.ServerHost = env("SERVER_HOST", "0.0.0.0")
	cfg.StorageDir = env("STORAGE_DIR", "/data/storage")
}
