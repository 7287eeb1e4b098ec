package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
		ok    bool
	}{
		{"rfc3339", "2024-03-15T10:30:00Z", time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC), true},
		{"rfc3339 nano", "2024-03-15T10:30:00.123456789Z", time.Date(2024, 3, 15, 10, 30, 0, 123456789, time.UTC), true},
		{"date only", "2024-03-15", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), true},
		{"space separated", "2024-03-15 10:30:00", time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC), true},
		{"garbage", "not-a-date", time.Time{}, false},
		{"empty", "", time.Time{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseString(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.True(t, got.Equal(tt.want), "got %v want %v", got, tt.want)
			}
		})
	}
}

func TestParseTimestampShapes(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	t.Run("time value", func(t *testing.T) {
		got, ok := Parse(now)
		require.True(t, ok)
		assert.True(t, got.Equal(now))
	})

	t.Run("time pointer", func(t *testing.T) {
		got, ok := Parse(&now)
		require.True(t, ok)
		assert.True(t, got.Equal(now))
	})

	t.Run("seconds map", func(t *testing.T) {
		got, ok := Parse(map[string]interface{}{"seconds": int64(1700000000)})
		require.True(t, ok)
		assert.Equal(t, int64(1700000000), got.Unix())
	})

	t.Run("seconds map with float", func(t *testing.T) {
		got, ok := Parse(map[string]interface{}{"seconds": float64(1700000000)})
		require.True(t, ok)
		assert.Equal(t, int64(1700000000), got.Unix())
	})

	t.Run("epoch int64", func(t *testing.T) {
		got, ok := Parse(int64(1700000000))
		require.True(t, ok)
		assert.Equal(t, int64(1700000000), got.Unix())
	})

	t.Run("string passthrough", func(t *testing.T) {
		got, ok := Parse("2024-03-15T10:30:00Z")
		require.True(t, ok)
		assert.True(t, got.Equal(now))
	})

	t.Run("nil", func(t *testing.T) {
		_, ok := Parse(nil)
		assert.False(t, ok)
	})

	t.Run("unrecognized shape", func(t *testing.T) {
		_, ok := Parse(struct{}{})
		assert.False(t, ok)
	})

	t.Run("map without seconds", func(t *testing.T) {
		_, ok := Parse(map[string]interface{}{"nanos": 12})
		assert.False(t, ok)
	})
}
