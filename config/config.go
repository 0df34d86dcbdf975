package config

import (
	"fmt"
	"log"
	"os"
	"regexp"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite3"
)

// identifiers are interpolated into DDL and DML, so they are restricted
// to plain names.
var identPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]{0,63}$`)

// Config stores the application configuration.
type Config struct {
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string // sqlite: path of the database file
	TableName  string

	LogLevel   string
	LogFile    string // empty disables the file sink
	LogConsole bool
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvBool gets an environment variable as bool or returns a default value.
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

// Load loads configuration from environment variables (via .env file) or defaults.
func Load() *Config {
	// godotenv.Load() will not override existing env vars.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on existing environment variables and defaults.")
	}

	return &Config{
		DBDriver:   getEnv("DB_DRIVER", DriverMySQL),
		DBHost:     getEnv("DB_HOST", "127.0.0.1"),
		DBPort:     getEnv("DB_PORT", "3306"),
		DBUser:     getEnv("DB_USER", "root"),
		DBPassword: os.Getenv("DB_PASSWORD"), // no hardcoded default for the password
		DBName:     getEnv("DB_NAME", "music_db"),
		TableName:  getEnv("DB_TABLE", "collection"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		LogFile:    getEnv("LOG_FILE", "logs/crate.log"),
		LogConsole: getEnvBool("LOG_CONSOLE", false),
	}
}

// Validate checks the settings that end up inside statement text.
func (c *Config) Validate() error {
	switch c.DBDriver {
	case DriverMySQL:
		if !identPattern.MatchString(c.DBName) {
			return fmt.Errorf("invalid database name %q", c.DBName)
		}
	case DriverSQLite:
		if c.DBName == "" {
			return fmt.Errorf("sqlite database path is empty")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (want %q or %q)", c.DBDriver, DriverMySQL, DriverSQLite)
	}
	if !identPattern.MatchString(c.TableName) {
		return fmt.Errorf("invalid table name %q", c.TableName)
	}
	return nil
}

// ValidIdentifier reports whether name is safe to embed as a table or database name.
func ValidIdentifier(name string) bool {
	return identPattern.MatchString(name)
}
