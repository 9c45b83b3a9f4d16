package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"zerowaste/config"
	deliverycontext "zerowaste/internal/delivery/context"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	defaultGormSlowThreshold = 200 * time.Millisecond
	redactedParam            = "[redacted]"
)

// tablePattern picks the first table a statement reads or writes.
var tablePattern = regexp.MustCompile(`(?i)\b(?:from|into|update)\s+"?([a-z_][a-z0-9_]*)"?`)

// storeLogger reports zerowaste queries through slog. It implements
// gorm.ParamsFilter so bound values never reach the log outside debug,
// and password hashes never reach it at all.
type storeLogger struct {
	logger        *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
	showParams    bool
}

var _ gorm.ParamsFilter = (*storeLogger)(nil)

func newGormSlogLogger(baseLogger *slog.Logger, cfg *config.Config) logger.Interface {
	l := &storeLogger{
		logger:        baseLogger,
		level:         logger.Warn,
		slowThreshold: defaultGormSlowThreshold,
	}
	if cfg == nil {
		return l
	}

	if cfg.Env.Debug {
		l.level = logger.Info
		l.showParams = true
	}
	if cfg.Storage.SlowQueryThreshold > 0 {
		l.slowThreshold = cfg.Storage.SlowQueryThreshold
	}

	return l
}

func (l *storeLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *storeLogger) Info(ctx context.Context, msg string, args ...any) {
	l.log(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *storeLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.log(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *storeLogger) Error(ctx context.Context, msg string, args ...any) {
	l.log(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *storeLogger) log(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.level < threshold || l.logger == nil {
		return
	}

	deliverycontext.GetLoggerOrDefault(ctx, l.logger).LogAttrs(ctx, level, "store",
		slog.String("message", fmt.Sprintf(msg, args...)),
	)
}

// ParamsFilter drops bound values unless debug logging is on, and masks
// bcrypt hashes even then.
func (l *storeLogger) ParamsFilter(_ context.Context, sql string, params ...any) (string, []any) {
	if !l.showParams {
		return sql, nil
	}

	filtered := make([]any, len(params))
	for i, param := range params {
		if s, ok := param.(string); ok && isPasswordHash(s) {
			filtered[i] = redactedParam
			continue
		}
		filtered[i] = param
	}

	return sql, filtered
}

func (l *storeLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.logger == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	log := deliverycontext.GetLoggerOrDefault(ctx, l.logger)

	switch {
	case l.shouldLogError(err):
		attrs := append(queryAttrs(sqlAndRowsFn, elapsed), slog.String("error", err.Error()))
		log.LogAttrs(ctx, slog.LevelError, "store query failed", attrs...)
	case l.shouldLogSlow(elapsed):
		attrs := append(queryAttrs(sqlAndRowsFn, elapsed), slog.Int64("slow_threshold_ms", l.slowThreshold.Milliseconds()))
		log.LogAttrs(ctx, slog.LevelWarn, "store slow query", attrs...)
	case l.level >= logger.Info:
		log.LogAttrs(ctx, slog.LevelInfo, "store query", queryAttrs(sqlAndRowsFn, elapsed)...)
	}
}

func queryAttrs(sqlAndRowsFn func() (string, int64), elapsed time.Duration) []slog.Attr {
	sql, rows := sqlAndRowsFn()

	return []slog.Attr{
		slog.String("table", queryTable(sql)),
		slog.Int64("elapsed_ms", elapsed.Milliseconds()),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}
}

func queryTable(sql string) string {
	if m := tablePattern.FindStringSubmatch(sql); m != nil {
		return strings.ToLower(m[1])
	}

	return "unknown"
}

func isPasswordHash(s string) bool {
	return len(s) == 60 && (strings.HasPrefix(s, "$2a$") || strings.HasPrefix(s, "$2b$") || strings.HasPrefix(s, "$2y$"))
}

// Missing rows surface as ErrAccountNotFound and friends, not log noise.
func (l *storeLogger) shouldLogError(err error) bool {
	if err == nil || l.level < logger.Error {
		return false
	}

	return !errors.Is(err, gorm.ErrRecordNotFound)
}

func (l *storeLogger) shouldLogSlow(elapsed time.Duration) bool {
	return l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn
}
