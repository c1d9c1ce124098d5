package migrations

import (
	"context"
	_ "embed"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"
)

//go:embed 0001_create_content_tables.sql
var createContentTablesSQL string

var Migrations = migrate.NewMigrations()

func init() {
	Migrations.MustRegister(
		func(ctx context.Context, db *bun.DB) error {
			_, err := db.Exec(createContentTablesSQL)
			return err
		},
		func(ctx context.Context, db *bun.DB) error {
			_, err := db.Exec(`
				DROP TABLE IF EXISTS migrations;
				DROP TABLE IF EXISTS quiz_questions;
				DROP TABLE IF EXISTS code_examples;
				DROP TABLE IF EXISTS lessons;
				DROP TABLE IF EXISTS topics;
			`)
			return err
		},
	)
}
