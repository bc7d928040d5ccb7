package main

import (
	"errors"
	"fmt"
	"os"

	"dearly/internal/config"
	"dearly/internal/storage/migrations"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	configPath string
	dsnFlag    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "migrator",
	Short: "Manage the Dearly database schema",
}

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		dsn, err := resolveDSN()
		if err != nil {
			return err
		}

		db, err := migrations.Open(dsn)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer db.Close()

		if err := migrations.MigrateUp(db); err != nil {
			color.Red("migration failed: %v", err)
			return err
		}

		current, _, _, err := migrations.Status(db)
		if err != nil {
			return fmt.Errorf("reading version: %w", err)
		}

		color.Green("schema is at version %d", current)
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current and latest schema version",
	RunE: func(cmd *cobra.Command, args []string) error {
		dsn, err := resolveDSN()
		if err != nil {
			return err
		}

		db, err := migrations.Open(dsn)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer db.Close()

		current, latest, dirty, err := migrations.Status(db)
		if err != nil {
			return err
		}

		fmt.Printf("current: %d\nlatest:  %d\n", current, latest)

		switch {
		case dirty:
			color.Red("dirty: a previous migration failed halfway, fix it by hand")
		case current < latest:
			color.Yellow("%d migration(s) pending, run `migrator up`", latest-current)
		default:
			color.Green("up to date")
		}

		return nil
	},
}

// resolveDSN prefers --dsn, then the dsn of the config file.
func resolveDSN() (string, error) {
	if dsnFlag != "" {
		return dsnFlag, nil
	}

	path := configPath
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path == "" {
		return "", errors.New("either --dsn or --config (CONFIG_PATH) is required")
	}

	cfg, err := config.LoadPath(path)
	if err != nil {
		return "", fmt.Errorf("reading config: %w", err)
	}

	return cfg.DSN, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&dsnFlag, "dsn", "", "postgres connection string, overrides the config")

	rootCmd.AddCommand(upCmd)
	rootCmd.AddCommand(statusCmd)
}
