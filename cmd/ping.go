package cmd

import (
	"fmt"

	"crate/db"

	"github.com/spf13/cobra"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Test the database connection",
	Long:  `Connects with the configured credentials, pings the server and counts the rows of the track table.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Driver: %s, database: %s, table: %s\n", cfg.DBDriver, cfg.DBName, cfg.TableName)

		conn, err := db.Open(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer db.Close(conn)
		fmt.Fprintln(out, "Connection OK.")

		var count int
		// table name is validated by loadConfig
		row := conn.QueryRowContext(cmd.Context(), "SELECT COUNT(*) FROM "+cfg.TableName)
		if err := row.Scan(&count); err != nil {
			fmt.Fprintf(out, "Table %s not readable: %v\n", cfg.TableName, err)
			return nil
		}
		fmt.Fprintf(out, "Table %s holds %d tracks.\n", cfg.TableName, count)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pingCmd)
}
