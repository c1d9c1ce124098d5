package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
)

// AppliedBundle is one row of the seeder's bookkeeping table.
type AppliedBundle struct {
	Name      string
	AppliedAt time.Time
}

// TableCount pairs a content table with its row count.
type TableCount struct {
	Table string
	Rows  int64
}

// StatusReader answers read-only questions about what the seeder has
// ingested so far.
type StatusReader struct {
	pool *pgxpool.Pool
}

func NewStatusReader(pool *pgxpool.Pool) *StatusReader {
	return &StatusReader{pool: pool}
}

// AppliedBundles lists recorded bundles in application order.
func (r *StatusReader) AppliedBundles(ctx context.Context) ([]AppliedBundle, error) {
	ok, err := r.tableExists(ctx, "migrations")
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	rows, err := r.pool.Query(ctx, `SELECT name, applied_at FROM migrations ORDER BY applied_at, name`)
	if err != nil {
		return nil, fmt.Errorf("query migrations: %w", err)
	}
	defer rows.Close()

	var out []AppliedBundle
	for rows.Next() {
		var b AppliedBundle
		if err := rows.Scan(&b.Name, &b.AppliedAt); err != nil {
			return nil, fmt.Errorf("scan migration row: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// TableCounts reports row counts for the content tables, in ownership order.
func (r *StatusReader) TableCounts(ctx context.Context) ([]TableCount, error) {
	tables := []string{"topics", "lessons", "code_examples", "quiz_questions"}
	out := make([]TableCount, 0, len(tables))
	for _, table := range tables {
		ok, err := r.tableExists(ctx, table)
		if err != nil {
			return nil, err
		}
		if !ok {
			out = append(out, TableCount{Table: table})
			continue
		}
		var n int64
		if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM `+table).Scan(&n); err != nil {
			return nil, fmt.Errorf("count %s: %w", table, err)
		}
		out = append(out, TableCount{Table: table, Rows: n})
	}
	return out, nil
}

func (r *StatusReader) tableExists(ctx context.Context, table string) (bool, error) {
	var reg *string
	if err := r.pool.QueryRow(ctx, `SELECT to_regclass($1)::text`, table).Scan(&reg); err != nil {
		return false, fmt.Errorf("check table %s: %w", table, err)
	}
	return reg != nil, nil
}
