package commands

import (
	"fmt"

	"mygriya/internal/config"

	"github.com/spf13/cobra"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the rooms schema of the postgres catalog",
	}

	up := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(func(env *dbEnv) error {
				return runMigrations(env.db, env.logger)
			})
		},
	}

	var steps int
	down := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if steps < 1 {
				return fmt.Errorf("--steps must be at least 1")
			}
			return withDatabase(func(env *dbEnv) error {
				return rollbackMigrations(env.db, steps, env.logger)
			})
		},
	}
	down.Flags().IntVar(&steps, "steps", 1, "number of migrations to roll back")

	cmd.AddCommand(up, down)
	return cmd
}

func withDatabase(fn func(env *dbEnv) error) error {
	dbCfg, err := config.LoadDatabase()
	if err != nil {
		return err
	}

	logger, err := newLogger("info")
	if err != nil {
		return err
	}
	defer logger.Sync()

	db, err := connectDatabase(dbCfg.DSN(), 3, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	return fn(&dbEnv{db: db, logger: logger})
}
