package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"estate/config"
	"estate/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestGormLogger(debug bool) (*gormSlogLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = debug
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return newGormSlogLogger(base, cfg).(*gormSlogLogger), &buf
}

func sqlFn(sql string) func() (string, int64) {
	return func() (string, int64) { return sql, 1 }
}

func TestGormSlogLogger_ParamsFilter(t *testing.T) {
	var installed logger.Interface = newGormSlogLogger(slog.New(slog.DiscardHandler), nil)
	_, ok := installed.(gorm.ParamsFilter)
	assert.True(t, ok, "GORM only filters bind values through gorm.ParamsFilter")

	quiet, _ := newTestGormLogger(false)
	sql, params := quiet.ParamsFilter(context.Background(), "INSERT INTO users VALUES ($1)", "hash")
	assert.Equal(t, "INSERT INTO users VALUES ($1)", sql)
	assert.Nil(t, params)

	verbose, _ := newTestGormLogger(true)
	_, params = verbose.ParamsFilter(context.Background(), "INSERT INTO users VALUES ($1)", "hash")
	assert.Equal(t, []any{"hash"}, params)
}

func TestGormSlogLogger_TraceFailureSeverity(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel string
	}{
		{"record not found", gorm.ErrRecordNotFound, "level=DEBUG"},
		{"unique violation", &pgconn.PgError{Code: "23505"}, "level=DEBUG"},
		{"connection failure", errors.New("connection reset"), "level=ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, buf := newTestGormLogger(false)

			l.Trace(context.Background(), time.Now(), sqlFn("SELECT 1"), tt.err)

			assert.Contains(t, buf.String(), tt.wantLevel)
			assert.Contains(t, buf.String(), "GORM query failed")
		})
	}
}

func TestGormSlogLogger_TraceSlowQuery(t *testing.T) {
	l, buf := newTestGormLogger(false)

	l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn("SELECT pg_sleep(1)"), nil)

	assert.Contains(t, buf.String(), "GORM slow query")
}

func TestGormSlogLogger_SilentMode(t *testing.T) {
	l, buf := newTestGormLogger(true)

	l.LogMode(logger.Silent).Trace(context.Background(), time.Now(), sqlFn("SELECT 1"), errors.New("boom"))

	assert.Empty(t, buf.String())
}
