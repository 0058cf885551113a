package main

import (
	"fmt"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"schooladmin_backend/internals/configs"
	database "schooladmin_backend/internals/databases"
)

// NewMigrateCmd: migrate [up|down|version], default up.
func NewMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down|version]",
		Short:     "Run database migrations",
		Long:      `Apply, roll back, or inspect the embedded PostgreSQL schema migrations.`,
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down", "version"},
		RunE: func(cmd *cobra.Command, args []string) error {
			action := "up"
			if len(args) == 1 {
				action = args[0]
			}

			cfg, err := configs.Load()
			if err != nil {
				return err
			}
			if cfg.DBDriver != configs.DriverPostgres {
				return oops.Code("CONFIG_INVALID").With("DB_DRIVER", cfg.DBDriver).Errorf("migrate needs DB_DRIVER=postgres")
			}

			m, err := database.NewMigrator(cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer func() { _ = m.Close() }()

			return runMigrateAction(cmd, m, action)
		},
	}
}

type migrator interface {
	Up() error
	Down() error
	Version() (uint, bool, error)
}

func runMigrateAction(cmd *cobra.Command, m migrator, action string) error {
	switch action {
	case "up":
		cmd.Println("Running migrations...")
		if err := m.Up(); err != nil {
			return err
		}
		cmd.Println("Migrations completed successfully")
	case "down":
		cmd.Println("Rolling back migrations...")
		if err := m.Down(); err != nil {
			return err
		}
		cmd.Println("Rollback completed")
	case "version":
		v, dirty, err := m.Version()
		if err != nil {
			return err
		}
		cmd.Println(fmt.Sprintf("version=%d dirty=%v", v, dirty))
	default:
		return oops.Code("INVALID_ARGUMENT").Errorf("unknown migrate action %q", action)
	}
	return nil
}

func migrateUp(databaseURL string) error {
	m, err := database.NewMigrator(databaseURL)
	if err != nil {
		return err
	}
	defer func() { _ = m.Close() }()
	return m.Up()
}
