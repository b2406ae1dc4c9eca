package app

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"simplesocial/internal/config"
	"simplesocial/internal/repository"
	"simplesocial/internal/service"
	"simplesocial/internal/session"
)

func App(cfg *config.Config, logger *zap.Logger) (*session.Store, *repository.Repository, *service.Service) {
	// session shared by the http client and the services
	store := session.NewStore()

	// enabling dependencies
	client := repository.NewClient(cfg, store, logger)
	repo := repository.NewRepository(client)

	services := service.NewService(repo, store, cfg, logger)

	return store, repo, services
}

// Logger writes JSON logs to the configured file so the terminal stays free
// for the UI. verbose forces the debug level.
func Logger(cfg config.Log, verbose bool) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.OutputPaths = []string{cfg.File}
	zapCfg.ErrorOutputPaths = []string{cfg.File}
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
