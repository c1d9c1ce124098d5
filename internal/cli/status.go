package cli

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/spf13/cobra"

	"learnhub-content/internal/config"
	"learnhub-content/internal/content"
	infrapg "learnhub-content/internal/infra/postgres"
)

// NewStatusCmd reports which bundles are applied and how many rows each
// content table holds.
func NewStatusCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show applied bundles and content table row counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(cmd.Context(), *configPath)
		},
	}
}

func runStatus(ctx context.Context, path string) error {
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout())
	defer cancel()
	pool, err := pgxpool.Connect(connectCtx, cfg.DSN())
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	reader := infrapg.NewStatusReader(pool)

	applied, err := reader.AppliedBundles(ctx)
	if err != nil {
		return err
	}
	appliedSet := make(map[string]bool, len(applied))
	fmt.Printf("applied bundles (%d):\n", len(applied))
	for _, b := range applied {
		appliedSet[b.Name] = true
		fmt.Printf("  %s  %s\n", b.AppliedAt.Format("2006-01-02 15:04:05"), b.Name)
	}

	var pending int
	for _, b := range content.Bundles() {
		if !appliedSet[b.ID] {
			pending++
			fmt.Printf("pending: %s\n", b.ID)
		}
	}
	if pending == 0 {
		fmt.Println("dataset fully applied")
	}

	counts, err := reader.TableCounts(ctx)
	if err != nil {
		return err
	}
	for _, c := range counts {
		fmt.Printf("%-15s %d rows\n", c.Table, c.Rows)
	}
	return nil
}
