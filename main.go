package main

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/nejkit/linear-tracker-bot/config"
	log "github.com/sirupsen/logrus"
)

const preflightTimeout = 20 * time.Second

func main() {
	setupLogging(os.Getenv("LOG_LEVEL"))

	if err := godotenv.Load(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug("No .env file found")
		} else {
			log.WithError(err).Warn("Failed to read .env file")
		}
	}

	cfg, err := config.LoadFromEnv()

	if err != nil {
		logConfigError(err)
		os.Exit(1)
	}

	logger := log.WithField("run_id", uuid.NewString())
	logger.WithFields(cfg.LogFields()).Info("Configuration loaded")

	ctx, cancel := context.WithTimeout(context.Background(), preflightTimeout)
	defer cancel()

	if !runPreflight(ctx, logger, cfg) {
		cancel()
		os.Exit(1)
	}

	logger.WithField("brand", cfg.BotBrandName).Info("Start app")
}

func setupLogging(level string) {
	log.SetFormatter(&log.JSONFormatter{})
	log.SetOutput(os.Stdout)

	parsed, err := log.ParseLevel(level)

	if err != nil {
		parsed = log.InfoLevel
	}

	log.SetLevel(parsed)
}

func logConfigError(err error) {
	var validationErr *config.ValidationError

	if !errors.As(err, &validationErr) {
		log.WithError(err).Error("Failed to load configuration")
		return
	}

	for _, field := range validationErr.Fields {
		log.WithFields(log.Fields{
			"field":  field.Field,
			"reason": field.Reason,
		}).Error("Invalid configuration value")
	}

	log.WithField("fields", validationErr.FieldNames()).Error(validationErr.Error())
}
