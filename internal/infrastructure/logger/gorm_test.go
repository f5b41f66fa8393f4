package logger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const customerSelect = `SELECT * FROM "customers" WHERE id = "3f0c1b9e-8a0e-4f53-9d55-0b7d6f3c2a11"`

func newObservedGormLogger(level gormlogger.LogLevel, opts ...GormLoggerOption) (*GormLogger, *observer.ObservedLogs) {
	core, recorded := observer.New(zapcore.DebugLevel)
	return NewGormLogger(zap.New(core), level, opts...), recorded
}

func staticQuery(sql string, rows int64) func() (string, int64) {
	return func() (string, int64) { return sql, rows }
}

func TestNewGormLogger(t *testing.T) {
	gormLog, _ := newObservedGormLogger(gormlogger.Info)

	assert.Equal(t, gormlogger.Info, gormLog.level)
	assert.Equal(t, DefaultSlowQueryThreshold, gormLog.slowThreshold)
	assert.False(t, gormLog.logNotFound)
	assert.False(t, gormLog.hideParams)
}

func TestGormLoggerWithOptions(t *testing.T) {
	gormLog, _ := newObservedGormLogger(
		gormlogger.Info,
		WithSlowThreshold(500*time.Millisecond),
		WithIgnoreRecordNotFoundError(false),
		WithParameterizedQueries(true),
	)

	assert.Equal(t, 500*time.Millisecond, gormLog.slowThreshold)
	assert.True(t, gormLog.logNotFound)
	assert.True(t, gormLog.hideParams)
}

func TestGormLogger_LogMode(t *testing.T) {
	gormLog, _ := newObservedGormLogger(gormlogger.Info)

	newLogger := gormLog.LogMode(gormlogger.Warn)

	assert.Equal(t, gormlogger.Info, gormLog.level)
	newGormLog, ok := newLogger.(*GormLogger)
	require.True(t, ok)
	assert.Equal(t, gormlogger.Warn, newGormLog.level)
}

func TestGormLogger_Messages(t *testing.T) {
	t.Run("info is suppressed below info level", func(t *testing.T) {
		gormLog, recorded := newObservedGormLogger(gormlogger.Warn)

		gormLog.Info(context.Background(), "migrated %s", "customers")
		gormLog.Warn(context.Background(), "index %s missing", "uk_customers_email_address")

		require.Equal(t, 1, recorded.Len())
		assert.Equal(t, "index uk_customers_email_address missing", recorded.All()[0].Message)
	})

	t.Run("error is logged at error level", func(t *testing.T) {
		gormLog, recorded := newObservedGormLogger(gormlogger.Error)

		gormLog.Error(context.Background(), "connection %s", "lost")

		require.Equal(t, 1, recorded.Len())
		assert.Equal(t, zapcore.ErrorLevel, recorded.All()[0].Level)
	})
}

func TestGormLogger_Trace(t *testing.T) {
	t.Run("logs SQL errors", func(t *testing.T) {
		gormLog, recorded := newObservedGormLogger(gormlogger.Error)

		gormLog.Trace(context.Background(), time.Now(), staticQuery(customerSelect, 0), errors.New("connection refused"))

		logs := recorded.All()
		require.Len(t, logs, 1)
		assert.Equal(t, "SQL statement failed", logs[0].Message)
		assert.Equal(t, "connection refused", logs[0].ContextMap()["error"])
	})

	t.Run("ignores record not found", func(t *testing.T) {
		gormLog, recorded := newObservedGormLogger(gormlogger.Error)

		gormLog.Trace(context.Background(), time.Now(), staticQuery(customerSelect, 0), gormlogger.ErrRecordNotFound)

		assert.Zero(t, recorded.Len())
	})

	t.Run("warns on slow queries", func(t *testing.T) {
		gormLog, recorded := newObservedGormLogger(gormlogger.Warn, WithSlowThreshold(time.Nanosecond))

		gormLog.Trace(context.Background(), time.Now().Add(-time.Second), staticQuery(customerSelect, 1), nil)

		logs := recorded.All()
		require.Len(t, logs, 1)
		assert.Contains(t, logs[0].Message, "Slow SQL statement")
		assert.Equal(t, zapcore.WarnLevel, logs[0].Level)
	})

	t.Run("normal queries are debug entries", func(t *testing.T) {
		gormLog, recorded := newObservedGormLogger(gormlogger.Info)

		gormLog.Trace(context.Background(), time.Now(), staticQuery(customerSelect, 1), nil)

		logs := recorded.All()
		require.Len(t, logs, 1)
		assert.Equal(t, "SQL statement", logs[0].Message)
		assert.Equal(t, zapcore.DebugLevel, logs[0].Level)
		assert.Equal(t, int64(1), logs[0].ContextMap()["rows"])
	})

	t.Run("silent logs nothing", func(t *testing.T) {
		gormLog, recorded := newObservedGormLogger(gormlogger.Silent)

		gormLog.Trace(context.Background(), time.Now(), staticQuery(customerSelect, 1), errors.New("boom"))

		assert.Zero(t, recorded.Len())
	})

	t.Run("carries correlation fields", func(t *testing.T) {
		gormLog, recorded := newObservedGormLogger(gormlogger.Info)
		ctx := ContextWithRequestID(context.Background(), "test-req-id")
		ctx = WithCustomerID(ctx, "3f0c1b9e-8a0e-4f53-9d55-0b7d6f3c2a11")

		gormLog.Trace(ctx, time.Now(), staticQuery(customerSelect, 1), nil)

		require.Equal(t, 1, recorded.Len())
		fields := recorded.All()[0].ContextMap()
		assert.Equal(t, "test-req-id", fields["request_id"])
		assert.Equal(t, "3f0c1b9e-8a0e-4f53-9d55-0b7d6f3c2a11", fields["customer_id"])
	})

	t.Run("fast queries are dropped below info", func(t *testing.T) {
		gormLog, recorded := newObservedGormLogger(gormlogger.Warn)

		gormLog.Trace(context.Background(), time.Now(), staticQuery(customerSelect, 1), nil)

		assert.Zero(t, recorded.Len())
	})
}

func TestGormLogger_ParameterizedQueries(t *testing.T) {
	type contact struct {
		ID    uint
		Email string
	}

	run := func(t *testing.T, parameterized bool) string {
		t.Helper()
		gormLog, recorded := newObservedGormLogger(gormlogger.Info, WithParameterizedQueries(parameterized))
		db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: gormLog})
		require.NoError(t, err)
		require.NoError(t, db.AutoMigrate(&contact{}))

		var found []contact
		require.NoError(t, db.Where("email = ?", "jane.doe@example.com").Find(&found).Error)

		entries := recorded.FilterMessage("SQL statement").All()
		require.NotEmpty(t, entries)
		sql, _ := entries[len(entries)-1].ContextMap()["sql"].(string)
		return sql
	}

	t.Run("inlines values by default", func(t *testing.T) {
		assert.Contains(t, run(t, false), "jane.doe@example.com")
	})

	t.Run("keeps placeholders when enabled", func(t *testing.T) {
		sql := run(t, true)
		assert.NotContains(t, sql, "jane.doe@example.com")
		assert.Contains(t, sql, "email = ?")
	})
}

func TestMapGormLogLevel(t *testing.T) {
	tests := []struct {
		level    string
		expected gormlogger.LogLevel
	}{
		{"silent", gormlogger.Silent},
		{"error", gormlogger.Error},
		{"warn", gormlogger.Warn},
		{"info", gormlogger.Info},
		{"debug", gormlogger.Info},
		{"unknown", gormlogger.Warn},
		{"", gormlogger.Warn},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.expected, MapGormLogLevel(tt.level))
		})
	}
}

func TestGormLoggerImplementsInterfaces(t *testing.T) {
	gormLog, _ := newObservedGormLogger(gormlogger.Info)

	var _ gormlogger.Interface = gormLog
	var _ gorm.ParamsFilter = gormLog
}
