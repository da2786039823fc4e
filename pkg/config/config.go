package config

import (
	"time"
)

type Config struct {
	DatabaseConnectRetryCount int
	DatabaseConnectRetryDelay time.Duration
	DatabaseBusyTimeout       time.Duration
	DatabaseDebug             bool
	DatabaseFilePath          string
	JWTSecret                 string
	ServerHost                string
	ServerPort                int
	StorageDir                string
}

const environmentENV = "ENVIRONMENT"

func New() (*Config, error) {
	cfg := &Config{
		DatabaseConnectRetryCount: 5,
		DatabaseConnectRetryDelay: 2 * time.Second,
		DatabaseBusyTimeout:       5 * time.Second,
		ServerPort:                8000,
	}

	switch env(environmentENV, "") {
	case "development", "":
		loadDevelopmentConfig(cfg)
	case "test":
		loadTestConfig(cfg)
	case "production":
		loadProductionConfig(cfg)
	}

	return cfg, nil
}
