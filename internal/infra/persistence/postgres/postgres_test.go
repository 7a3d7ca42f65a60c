package postgres

import (
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolWait(t *testing.T) {
	prev := sql.DBStats{WaitCount: 10, WaitDuration: time.Second}

	t.Run("no new waits", func(t *testing.T) {
		_, _, ok := poolWait(prev, prev)

		assert.False(t, ok)
	})

	t.Run("short waits log at debug", func(t *testing.T) {
		cur := sql.DBStats{WaitCount: 12, WaitDuration: time.Second + 10*time.Millisecond, MaxOpenConnections: 5}

		level, attrs, ok := poolWait(prev, cur)

		require.True(t, ok)
		assert.Equal(t, slog.LevelDebug, level)
		assert.Contains(t, attrs, slog.Int64("waits", 2))
		assert.Contains(t, attrs, slog.Duration("avg_wait", 5*time.Millisecond))
	})

	t.Run("long waits log at warn", func(t *testing.T) {
		cur := sql.DBStats{WaitCount: 11, WaitDuration: time.Second + dbPoolWarnDurationThreshold}

		level, _, ok := poolWait(prev, cur)

		require.True(t, ok)
		assert.Equal(t, slog.LevelWarn, level)
	})
}
