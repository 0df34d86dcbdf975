package db

import (
	"context"
	"database/sql"
	"fmt"

	"crate/config"
	"crate/logger"
	"crate/model"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// openGorm wraps an already open connection; it never dials on its own.
func openGorm(conn *sql.DB, driver string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case config.DriverMySQL:
		dialector = mysql.New(mysql.Config{Conn: conn})
	case config.DriverSQLite:
		dialector = &sqlite.Dialector{Conn: conn}
	default:
		return nil, fmt.Errorf("unsupported driver %q", driver)
	}

	return gorm.Open(dialector, &gorm.Config{
		Logger:                                   gormlogger.Default.LogMode(gormlogger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
}

// EnsureTable creates the track table when it does not exist. An existing
// table is left untouched. Errors are of kind Schema: callers log them and
// carry on assuming the table is usable.
func EnsureTable(ctx context.Context, conn *sql.DB, cfg *config.Config) error {
	if !config.ValidIdentifier(cfg.TableName) {
		return model.NewError(model.KindSchema, "ensure table",
			fmt.Errorf("invalid table name %q", cfg.TableName))
	}

	gdb, err := openGorm(conn, cfg.DBDriver)
	if err != nil {
		return model.NewError(model.KindSchema, "ensure table",
			fmt.Errorf("failed to initialize GORM: %w", err))
	}

	migrator := gdb.WithContext(ctx).Table(cfg.TableName).Migrator()
	if migrator.HasTable(&model.Track{}) {
		logger.Debug("Track table already exists", logger.String("table", cfg.TableName))
		return nil
	}

	if err := migrator.CreateTable(&model.Track{}); err != nil {
		return model.NewError(model.KindSchema, "ensure table",
			fmt.Errorf("failed to create table %s: %w", cfg.TableName, err))
	}

	logger.Info("Track table created", logger.String("table", cfg.TableName))
	return nil
}
