package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"crate/core/catalog"
	"crate/db"
	"crate/logger"
	"crate/repository"
	"crate/ui"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "crate",
	Short: "crate is an interactive catalog for your music tracks.",
	Long: `crate keeps a personal catalog of music tracks (title, album, artist,
year, genre, comment) in a MySQL or SQLite table and lets you add, view,
search, edit and delete them from a numbered menu.

Connection settings come from the environment or a .env file:
DB_DRIVER, DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME, DB_TABLE.`,
	Run: func(cmd *cobra.Command, args []string) {
		runCatalog(cmd.Context(), os.Stdin, os.Stdout)
	},
}

// runCatalog is the interactive session. Startup failures print a
// diagnostic and return; they do not change the exit status.
func runCatalog(ctx context.Context, in io.Reader, out io.Writer) {
	console := ui.NewConsole(in, out)
	console.Banner()

	cfg, err := loadConfig()
	if err != nil {
		console.Error(err.Error())
		return
	}
	defer logger.Sync()

	conn, err := connect(ctx, cfg, console)
	if err != nil {
		return
	}
	defer db.Close(conn)

	console.Success("Ready.")
	logger.Info("Session started", logger.String("driver", cfg.DBDriver), logger.String("table", cfg.TableName))

	repo := repository.NewTrackRepository(conn, cfg.TableName)
	if err := catalog.New(repo, console).Run(ctx); err != nil {
		logger.Error("Session aborted", logger.ErrorField(err))
		console.Error(fmt.Sprintf("Fatal error: %v", err))
		return
	}
	logger.Info("Session finished")
}

// Execute executes the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
