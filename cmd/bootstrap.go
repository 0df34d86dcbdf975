package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"crate/config"
	"crate/db"
	"crate/logger"
	"crate/ui"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// loadConfig reads and validates the configuration and starts the logger.
func loadConfig() (*config.Config, error) {
	cfg := config.Load()

	err := logger.InitLogger(logger.Config{
		Level:      logger.LogLevel(cfg.LogLevel),
		OutputPath: cfg.LogFile,
		Console:    cfg.LogConsole,
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
		Fields:     []zap.Field{logger.String("session", uuid.NewString())},
	})
	if err != nil {
		log.Printf("Logging to %s disabled: %v", cfg.LogFile, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// connect runs the startup sequence: ensure the database, open the session
// connection, ensure the table. Only the first two can fail; a table
// bootstrap error is reported and startup continues.
func connect(ctx context.Context, cfg *config.Config, console *ui.Console) (*sql.DB, error) {
	console.Dim("Initializing database...")

	if err := db.EnsureDatabase(ctx, cfg); err != nil {
		logger.Error("Could not ensure database", logger.ErrorField(err))
		console.Error("Could not ensure database exists. Check your connection settings.")
		return nil, err
	}

	conn, err := db.Open(ctx, cfg)
	if err != nil {
		logger.Error("Could not connect to database", logger.ErrorField(err))
		console.Error("Could not connect to database. Check your connection settings.")
		return nil, err
	}

	if err := db.EnsureTable(ctx, conn, cfg); err != nil {
		logger.Warn("Table bootstrap failed, assuming the table is usable", logger.ErrorField(err))
		console.Warn(fmt.Sprintf("Table create error: %v", err))
	}
	return conn, nil
}
