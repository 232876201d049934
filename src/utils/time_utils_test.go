package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	withZone, err := ParseTimestamp("2024-01-15T10:30:00Z")
	require.NoError(t, err)

	naive, err := ParseTimestamp("2024-01-15T10:30:00")
	require.NoError(t, err)

	assert.True(t, withZone.Equal(naive))
	for _, ts := range []time.Time{withZone, naive} {
		assert.Equal(t, 2024, ts.Year())
		assert.Equal(t, time.January, ts.Month())
		assert.Equal(t, 15, ts.Day())
		assert.Equal(t, 10, ts.Hour())
	}
}

func TestParseTimestamp_Variants(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want time.Time
	}{
		{name: "fractional seconds", raw: "2024-03-01T08:00:00.123456Z", want: time.Date(2024, 3, 1, 8, 0, 0, 123456000, time.UTC)},
		{name: "explicit offset", raw: "2024-03-01T10:00:00+02:00", want: time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)},
		{name: "date only", raw: "2024-03-01", want: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{name: "lower case marker", raw: "2024-03-01T08:00:00z", want: time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(tt.raw)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "expected %s, got %s", tt.want, got)
		})
	}
}

func TestParseTimestamp_InvalidFallsBackToNow(t *testing.T) {
	before := time.Now()
	got, err := ParseTimestamp("invalid-date")
	after := time.Now()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid-date")
	assert.False(t, got.Before(before))
	assert.False(t, got.After(after))

	_, err = ParseTimestamp("")
	assert.Error(t, err)
}

func TestFormatTimeAgo(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		ago  time.Duration
		want string
	}{
		{ago: 0, want: "just now"},
		{ago: 59 * time.Second, want: "just now"},
		{ago: time.Minute, want: "1 minute ago"},
		{ago: 5 * time.Minute, want: "5 minutes ago"},
		{ago: time.Hour, want: "1 hour ago"},
		{ago: 3 * time.Hour, want: "3 hours ago"},
		{ago: 24 * time.Hour, want: "1 day ago"},
		{ago: 50 * time.Hour, want: "2 days ago"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTimeAgo(now.Add(-tt.ago), now))
		})
	}
}
