package integration

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"

	"learnhub-content/internal/app"
	"learnhub-content/internal/content"
	pgstatus "learnhub-content/internal/infra/postgres"
	pgmigrations "learnhub-content/internal/infra/postgres/migrations"
)

func TestSeedEndToEnd(t *testing.T) {
	ctx := context.Background()
	requireDocker(t)

	dsn, cleanup := startPostgres(t, ctx)
	defer cleanup()

	db := openBun(t, ctx, dsn)
	defer db.Close()

	migrator := migrate.NewMigrator(db, pgmigrations.Migrations)
	if err := migrator.Init(ctx); err != nil {
		t.Fatalf("migrator init: %v", err)
	}
	if _, err := migrator.Migrate(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	runner := app.NewSeedRunner(db, log, app.Options{})
	bundles := content.Bundles()

	report, err := runner.Ingest(ctx, bundles)
	if err != nil {
		t.Fatalf("first ingest: %v", err)
	}
	if report.Applied() != len(bundles) || report.Failed() != 0 {
		t.Fatalf("expected %d applied, got applied=%d failed=%d", len(bundles), report.Applied(), report.Failed())
	}

	// A second run must be a no-op: every bundle is recorded and skipped.
	rerun, err := runner.Ingest(ctx, bundles)
	if err != nil {
		t.Fatalf("rerun: %v", err)
	}
	if rerun.Skipped() != len(bundles) || rerun.Applied() != 0 {
		t.Fatalf("expected %d skipped on rerun, got skipped=%d applied=%d", len(bundles), rerun.Skipped(), rerun.Applied())
	}

	pool, err := pgxpool.Connect(ctx, dsn)
	if err != nil {
		t.Fatalf("connect pg: %v", err)
	}
	defer pool.Close()

	status := pgstatus.NewStatusReader(pool)
	applied, err := status.AppliedBundles(ctx)
	if err != nil {
		t.Fatalf("applied bundles: %v", err)
	}
	if len(applied) != len(bundles) {
		t.Fatalf("expected %d recorded bundles, got %d", len(bundles), len(applied))
	}
	for _, b := range applied {
		if b.AppliedAt.IsZero() {
			t.Fatalf("bundle %s has a zero applied_at", b.Name)
		}
	}

	counts, err := status.TableCounts(ctx)
	if err != nil {
		t.Fatalf("table counts: %v", err)
	}
	byTable := make(map[string]int64, len(counts))
	for _, c := range counts {
		byTable[c.Table] = c.Rows
	}
	topics := make(map[string]bool)
	lessons := 0
	for _, b := range bundles {
		topics[b.Topic.Slug] = true
		lessons += len(b.Lessons)
	}
	if byTable["topics"] != int64(len(topics)) {
		t.Fatalf("expected %d topics, got %d", len(topics), byTable["topics"])
	}
	if byTable["lessons"] != int64(lessons) {
		t.Fatalf("expected %d lessons, got %d", lessons, byTable["lessons"])
	}
	if byTable["code_examples"] == 0 || byTable["quiz_questions"] == 0 {
		t.Fatalf("expected nonzero example and question counts, got %v", byTable)
	}
}

func TestDryRunEndToEnd(t *testing.T) {
	ctx := context.Background()
	requireDocker(t)

	dsn, cleanup := startPostgres(t, ctx)
	defer cleanup()

	db := openBun(t, ctx, dsn)
	defer db.Close()

	migrator := migrate.NewMigrator(db, pgmigrations.Migrations)
	if err := migrator.Init(ctx); err != nil {
		t.Fatalf("migrator init: %v", err)
	}
	if _, err := migrator.Migrate(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	runner := app.NewSeedRunner(db, log, app.Options{DryRun: true})
	bundles := content.Bundles()

	report, err := runner.Ingest(ctx, bundles)
	if err != nil {
		t.Fatalf("dry run: %v", err)
	}
	if report.Validated() != len(bundles) || report.Failed() != 0 {
		t.Fatalf("expected %d validated, got validated=%d failed=%d", len(bundles), report.Validated(), report.Failed())
	}

	pool, err := pgxpool.Connect(ctx, dsn)
	if err != nil {
		t.Fatalf("connect pg: %v", err)
	}
	defer pool.Close()

	status := pgstatus.NewStatusReader(pool)
	applied, err := status.AppliedBundles(ctx)
	if err != nil {
		t.Fatalf("applied bundles: %v", err)
	}
	if len(applied) != 0 {
		t.Fatalf("dry run recorded bundles: %v", applied)
	}
	counts, err := status.TableCounts(ctx)
	if err != nil {
		t.Fatalf("table counts: %v", err)
	}
	for _, c := range counts {
		if c.Rows != 0 {
			t.Fatalf("dry run committed %d rows to %s", c.Rows, c.Table)
		}
	}
}

func openBun(t *testing.T, ctx context.Context, dsn string) *bun.DB {
	t.Helper()
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := bun.NewDB(sqldb, pgdialect.New())
	if err := db.PingContext(ctx); err != nil {
		t.Fatalf("ping: %v", err)
	}
	return db
}

func startPostgres(t *testing.T, ctx context.Context) (string, func()) {
	t.Helper()
	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_USER": "learnhub", "POSTGRES_PASSWORD": "learnhub", "POSTGRES_DB": "learnhub"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		if strings.Contains(err.Error(), "Cannot connect to the Docker daemon") {
			t.Skipf("docker not available: %v", err)
		}
		t.Fatalf("start postgres: %v", err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("port: %v", err)
	}
	dsn := fmt.Sprintf("postgres://learnhub:learnhub@%s:%s/learnhub?sslmode=disable", host, port.Port())
	return dsn, func() {
		_ = container.Terminate(ctx)
	}
}

func requireDocker(t *testing.T) {
	t.Helper()
	if _, err := tc.NewDockerProvider(); err != nil {
		t.Skipf("docker not available: %v", err)
	}
}
