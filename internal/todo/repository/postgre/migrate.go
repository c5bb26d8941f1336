package postgre

import (
	"context"
	"embed"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"todolist/pkg/log"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate applies the embedded schema migrations to the database at dsn.
func Migrate(ctx context.Context, dsn string, l log.Logger) error {
	goose.SetBaseFS(migrations)
	goose.SetLogger(gooseLogger{ctx: ctx, l: l})
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	db, err := goose.OpenDBWithDriver("pgx", dsn)
	if err != nil {
		return fmt.Errorf("goose open db: %w", err)
	}
	defer db.Close()

	if err := goose.UpContext(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

type gooseLogger struct {
	ctx context.Context
	l   log.Logger
}

func (g gooseLogger) Printf(format string, v ...any) {
	g.l.Infof(g.ctx, "goose: "+format, v...)
}

func (g gooseLogger) Fatalf(format string, v ...any) {
	g.l.Fatalf(g.ctx, "goose: "+format, v...)
}
