package persist

import (
	"context"
	"embed"
	"fmt"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrations embed.FS

const migrationsDir = "migrations"

// RunMigrations brings the run history schema up to date and logs the
// resulting schema version.
func RunMigrations(ctx context.Context, db *DB) error {
	if err := setupGoose(); err != nil {
		return err
	}

	sqlDB := stdlib.OpenDBFromPool(db.Pool)
	defer sqlDB.Close()

	if err := goose.UpContext(ctx, sqlDB, migrationsDir); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	version, err := goose.GetDBVersionContext(ctx, sqlDB)
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	db.log.Info("run history schema ready", zap.Int64("version", version))
	return nil
}

// embeddedMigrations lists the migrations goose will apply, in order.
func embeddedMigrations() (goose.Migrations, error) {
	if err := setupGoose(); err != nil {
		return nil, err
	}
	return goose.CollectMigrations(migrationsDir, 0, goose.MaxVersion)
}

func setupGoose() error {
	goose.SetLogger(goose.NopLogger())
	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set dialect: %w", err)
	}
	return nil
}
