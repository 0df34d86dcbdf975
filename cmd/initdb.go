package cmd

import (
	"fmt"
	"io"

	"crate/db"
	"crate/ui"

	"github.com/spf13/cobra"
)

var initdbCmd = &cobra.Command{
	Use:   "initdb",
	Short: "Create the database and track table if they are missing",
	Long:  `Runs the startup bootstrap only: CREATE DATABASE IF NOT EXISTS, then creates the track table when absent. Existing tables are never altered.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInitDB(cmd, cmd.OutOrStdout())
	},
}

func runInitDB(cmd *cobra.Command, out io.Writer) error {
	console := ui.NewConsole(cmd.InOrStdin(), out)

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	conn, err := connect(cmd.Context(), cfg, console)
	if err != nil {
		return err
	}
	defer db.Close(conn)

	// connect only warns on table errors; here that is the whole job.
	if err := db.EnsureTable(cmd.Context(), conn, cfg); err != nil {
		return err
	}
	console.Success(fmt.Sprintf("Table %s is ready.", cfg.TableName))
	return nil
}

func init() {
	rootCmd.AddCommand(initdbCmd)
}
