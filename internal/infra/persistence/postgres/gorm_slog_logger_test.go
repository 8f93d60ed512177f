package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"adpilot/config"
	deliverycontext "adpilot/internal/delivery/context"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newBufferedGormLogger(debug bool) (*gormSlogLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return newGormSlogLogger(base, cfg).(*gormSlogLogger), &buf
}

func sqlFn(sql string) func() (string, int64) {
	return func() (string, int64) { return sql, 1 }
}

func TestGormSlogLogger_TraceError(t *testing.T) {
	l, buf := newBufferedGormLogger(false)
	reqLogger := l.logger.With(slog.String("request_id", "req-1"))
	ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

	l.Trace(ctx, time.Now(), sqlFn(`SELECT * FROM "users" WHERE email = $1`), errors.New("connection refused"))

	out := buf.String()
	assert.Contains(t, out, "GORM query failed")
	assert.Contains(t, out, "request_id=req-1")
	assert.Contains(t, out, "connection refused")
}

func TestGormSlogLogger_SkipsExpectedErrors(t *testing.T) {
	l, buf := newBufferedGormLogger(false)

	l.Trace(context.Background(), time.Now(), sqlFn("SELECT 1"), gorm.ErrRecordNotFound)
	l.Trace(context.Background(), time.Now(), sqlFn("INSERT"), gorm.ErrDuplicatedKey)

	assert.Empty(t, buf.String())
}

func TestGormSlogLogger_SlowQuery(t *testing.T) {
	l, buf := newBufferedGormLogger(false)

	l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn("SELECT pg_sleep(1)"), nil)

	assert.Contains(t, buf.String(), "GORM slow query")
}

func TestGormSlogLogger_QueriesOnlyInDebug(t *testing.T) {
	quiet, quietBuf := newBufferedGormLogger(false)
	quiet.Trace(context.Background(), time.Now(), sqlFn("SELECT 1"), nil)
	assert.Empty(t, quietBuf.String())

	verbose, verboseBuf := newBufferedGormLogger(true)
	verbose.Trace(context.Background(), time.Now(), sqlFn("SELECT 1"), nil)
	assert.Contains(t, verboseBuf.String(), "GORM query")
}

func TestGormSlogLogger_ParamsFilter(t *testing.T) {
	l, _ := newBufferedGormLogger(false)

	sql, params := l.ParamsFilter(context.Background(), "UPDATE users SET password_hash = $1", "$2a$10$secret")

	assert.Equal(t, "UPDATE users SET password_hash = $1", sql)
	assert.Nil(t, params)
}
