package db

import (
	"context"
	"database/sql"
	"fmt"
	"net"

	"crate/config"
	"crate/logger"
	"crate/model"

	"github.com/go-sql-driver/mysql" // MySQL driver
	_ "github.com/mattn/go-sqlite3"  // SQLite driver
)

// DSN builds the data source name for cfg. withDatabase=false yields a
// server-level MySQL connection that selects no database.
func DSN(cfg *config.Config, withDatabase bool) string {
	if cfg.DBDriver == config.DriverSQLite {
		return cfg.DBName
	}

	mc := mysql.NewConfig()
	mc.User = cfg.DBUser
	mc.Passwd = cfg.DBPassword
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(cfg.DBHost, cfg.DBPort)
	mc.Params = map[string]string{"charset": "utf8mb4"}
	if withDatabase {
		mc.DBName = cfg.DBName
	}
	return mc.FormatDSN()
}

// EnsureDatabase connects without selecting a database, creates the target
// database if it is missing and closes the connection again.
// Any failure here is fatal for startup.
func EnsureDatabase(ctx context.Context, cfg *config.Config) error {
	if cfg.DBDriver == config.DriverSQLite {
		// the file is created on first open
		return nil
	}
	if !config.ValidIdentifier(cfg.DBName) {
		return model.NewError(model.KindConnection, "ensure database",
			fmt.Errorf("invalid database name %q", cfg.DBName))
	}

	server, err := sql.Open(cfg.DBDriver, DSN(cfg, false))
	if err != nil {
		return model.NewError(model.KindConnection, "ensure database",
			fmt.Errorf("failed to open server connection: %w", err))
	}
	defer server.Close()

	if err := server.PingContext(ctx); err != nil {
		return model.NewError(model.KindConnection, "ensure database",
			fmt.Errorf("failed to reach %s:%s: %w", cfg.DBHost, cfg.DBPort, err))
	}

	if _, err := server.ExecContext(ctx, "CREATE DATABASE IF NOT EXISTS `"+cfg.DBName+"`"); err != nil {
		return model.NewError(model.KindConnection, "ensure database",
			fmt.Errorf("failed to create database %s: %w", cfg.DBName, err))
	}

	logger.Info("Database ensured", logger.String("database", cfg.DBName))
	return nil
}

// Open establishes the single connection used for the whole session.
func Open(ctx context.Context, cfg *config.Config) (*sql.DB, error) {
	conn, err := sql.Open(cfg.DBDriver, DSN(cfg, true))
	if err != nil {
		return nil, model.NewError(model.KindConnection, "connect",
			fmt.Errorf("failed to open database connection: %w", err))
	}

	// One connection for the process lifetime. This also keeps an
	// in-memory sqlite database alive across statements.
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, model.NewError(model.KindConnection, "connect",
			fmt.Errorf("failed to ping database: %w", err))
	}

	logger.Info("Successfully connected to the database.",
		logger.String("driver", cfg.DBDriver), logger.String("database", cfg.DBName))
	return conn, nil
}

// Close releases the connection. Errors are ignored.
func Close(conn *sql.DB) {
	if conn == nil {
		return
	}
	if err := conn.Close(); err != nil {
		logger.Debug("Ignoring error while closing database", logger.ErrorField(err))
	}
}
