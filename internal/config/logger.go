package config

import (
	"log"
	"os"

	"go.uber.org/zap"
)

// NewLogger builds the process-wide zap logger. Development mode gives
// human-readable output; anything else gets the production JSON encoder.
func NewLogger() *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if os.Getenv("APP_ENV") == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Failed to initialize zap logger: %v", err)
	}
	return logger
}
