package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"zerowaste/internal/errors"
	"zerowaste/internal/infra/persistence/migrations"

	"github.com/pressly/goose/v3"
)

// gooseSlogLogger routes goose output through slog.
type gooseSlogLogger struct {
	logger *slog.Logger
}

func (l gooseSlogLogger) Printf(format string, v ...any) {
	l.logger.Info("goose", slog.String("message", fmt.Sprintf(format, v...)))
}

func (l gooseSlogLogger) Fatalf(format string, v ...any) {
	l.logger.Error("goose", slog.String("message", fmt.Sprintf(format, v...)))
}

// Migrate applies the embedded schema migrations.
func Migrate(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	goose.SetBaseFS(migrations.FS)
	goose.SetLogger(gooseSlogLogger{logger: logger})

	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "set goose dialect")
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return errors.Wrap(err, "apply migrations")
	}

	return nil
}
