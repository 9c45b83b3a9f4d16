package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"zerowaste/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCapturedStoreLogger(t *testing.T, cfg *config.Config) (*storeLogger, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	l, ok := newGormSlogLogger(base, cfg).(*storeLogger)
	require.True(t, ok)

	return l, &buf
}

func debugConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Env.Debug = true

	return cfg
}

func lastRecord(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.NotEmpty(t, lines[len(lines)-1], "nothing was logged")

	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &record))

	return record
}

func TestStoreLogger_ParamsFilter(t *testing.T) {
	hash := "$2a$12$" + strings.Repeat("x", 53)
	sql := `UPDATE "accounts" SET "password_hash"=$1,"email"=$2 WHERE "id" = $3`

	quiet, _ := newCapturedStoreLogger(t, &config.Config{})
	gotSQL, vars := quiet.ParamsFilter(context.Background(), sql, hash, "jane@example.com", 7)
	assert.Equal(t, sql, gotSQL)
	assert.Nil(t, vars, "bound values stay out of non-debug logs")

	debug, _ := newCapturedStoreLogger(t, debugConfig())
	_, vars = debug.ParamsFilter(context.Background(), sql, hash, "jane@example.com", 7)
	assert.Equal(t, []any{redactedParam, "jane@example.com", 7}, vars)
}

func TestStoreLogger_TraceAttributes(t *testing.T) {
	l, buf := newCapturedStoreLogger(t, debugConfig())
	query := func() (string, int64) { return `SELECT * FROM "bookings" WHERE account_id = '1'`, 3 }

	l.Trace(context.Background(), time.Now(), query, nil)
	record := lastRecord(t, buf)
	assert.Equal(t, "store query", record["msg"])
	assert.Equal(t, "bookings", record["table"])
	assert.EqualValues(t, 3, record["rows"])
	assert.Contains(t, record, "elapsed_ms")

	l.Trace(context.Background(), time.Now(), query, errors.New("connection reset"))
	record = lastRecord(t, buf)
	assert.Equal(t, "store query failed", record["msg"])
	assert.Equal(t, "connection reset", record["error"])
}

func TestStoreLogger_SlowAndMissing(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{SlowQueryThreshold: 50 * time.Millisecond}}
	l, buf := newCapturedStoreLogger(t, cfg)
	insert := func() (string, int64) { return `INSERT INTO "reviews" ("id") VALUES ($1)`, 1 }

	l.Trace(context.Background(), time.Now(), insert, nil)
	assert.Empty(t, buf.String(), "fast queries are quiet at warn level")

	l.Trace(context.Background(), time.Now(), insert, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String(), "missing rows are not logged")

	l.Trace(context.Background(), time.Now().Add(-time.Second), insert, nil)
	record := lastRecord(t, buf)
	assert.Equal(t, "store slow query", record["msg"])
	assert.Equal(t, "reviews", record["table"])
	assert.EqualValues(t, 50, record["slow_threshold_ms"])
}

func TestQueryTable(t *testing.T) {
	assert.Equal(t, "accounts", queryTable(`select count(*) from accounts`))
	assert.Equal(t, "unknown", queryTable(`SELECT 1`))
}
