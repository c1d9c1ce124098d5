package cli

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"

	"learnhub-content/internal/app"
	"learnhub-content/internal/config"
	"learnhub-content/internal/content"
	"learnhub-content/internal/infra/postgres/migrations"
	"learnhub-content/internal/logging"
)

// NewSeedCmd builds the subcommand that ingests the content dataset.
func NewSeedCmd(configPath *string) *cobra.Command {
	var (
		only     string
		failFast bool
		dryRun   bool
	)
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Ingest the content dataset into the database",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd.Context(), *configPath, only, failFast, dryRun)
		},
	}
	cmd.Flags().StringVar(&only, "only", "", "run exactly one bundle by id")
	cmd.Flags().BoolVar(&failFast, "fail-fast", false, "abort on the first bundle failure")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "validate everything, commit nothing")
	return cmd
}

func runSeed(ctx context.Context, path, only string, failFast, dryRun bool) error {
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
		return fmt.Errorf("apply schema: %w", err)
	}

	runner := app.NewSeedRunner(db, log, app.Options{
		DryRun:    dryRun || cfg.Seed.DryRun,
		FailFast:  failFast,
		TxTimeout: cfg.TxTimeout(),
	})

	bundles := content.Bundles()
	var report app.Report
	if only != "" {
		report, err = runner.IngestOne(ctx, bundles, only)
	} else {
		report, err = runner.Ingest(ctx, bundles)
	}
	if err != nil {
		return err
	}

	for _, res := range report.Results {
		fmt.Println(res.Summary())
	}
	log.Info("seed finished",
		"applied", report.Applied(),
		"skipped", report.Skipped(),
		"validated", report.Validated(),
		"failed", report.Failed())
	return report.Err()
}

// openDB connects with the configured acquisition timeout and verifies the
// connection before any work starts; failures here map to exit code 2.
func openDB(ctx context.Context, cfg config.Config) (*bun.DB, error) {
	connector := pgdriver.NewConnector(
		pgdriver.WithDSN(cfg.DSN()),
		pgdriver.WithDialTimeout(cfg.ConnectTimeout()),
	)
	sqldb := sql.OpenDB(connector)
	db := bun.NewDB(sqldb, pgdialect.New())

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout())
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return db, nil
}

func applySchema(ctx context.Context, db *bun.DB) error {
	migrator := migrate.NewMigrator(db, migrations.Migrations)
	if err := migrator.Init(ctx); err != nil {
		return err
	}
	_, err := migrator.Migrate(ctx)
	return err
}
