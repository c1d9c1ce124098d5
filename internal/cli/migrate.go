package cli

import (
	"context"

	"github.com/spf13/cobra"

	"learnhub-content/internal/config"
	"learnhub-content/internal/logging"
)

// NewMigrateCmd applies the content schema without seeding any data.
func NewMigrateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the content tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(cmd.Context(), *configPath)
		},
	}
}

func runMigrate(ctx context.Context, path string) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	log := logging.New(cfg.Log.Level)

	db, err := openDB(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := applySchema(ctx, db); err != nil {
		return err
	}
	log.Info("schema applied")
	return nil
}
