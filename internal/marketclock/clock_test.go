package marketclock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClock_IsOpen(t *testing.T) {
	clock, err := New("Asia/Kolkata")
	require.NoError(t, err)

	ist, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	// 2026-09-01 is a Tuesday.
	tests := []struct {
		name string
		t    time.Time
		open bool
	}{
		{"one second before open", time.Date(2026, 9, 1, 9, 14, 59, 0, ist), false},
		{"opening bell", time.Date(2026, 9, 1, 9, 15, 0, 0, ist), true},
		{"midday", time.Date(2026, 9, 1, 12, 0, 0, 0, ist), true},
		{"one second before close", time.Date(2026, 9, 1, 15, 29, 59, 0, ist), true},
		{"closing bell", time.Date(2026, 9, 1, 15, 30, 0, 0, ist), false},
		{"saturday midday", time.Date(2026, 9, 5, 12, 0, 0, 0, ist), false},
		{"sunday midday", time.Date(2026, 9, 6, 12, 0, 0, 0, ist), false},
		{"weekday midnight", time.Date(2026, 9, 1, 0, 0, 0, 0, ist), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.open, clock.IsOpen(tt.t))
		})
	}
}

func TestClock_IsOpen_ConvertsForeignTimezones(t *testing.T) {
	clock, err := New("Asia/Kolkata")
	require.NoError(t, err)

	// 06:00 UTC on a Tuesday is 11:30 IST, inside the session.
	utc := time.Date(2026, 9, 1, 6, 0, 0, 0, time.UTC)
	assert.True(t, clock.IsOpen(utc))

	// 11:00 UTC is 16:30 IST, after the close.
	assert.False(t, clock.IsOpen(time.Date(2026, 9, 1, 11, 0, 0, 0, time.UTC)))
}

func TestNew_InvalidTimezone(t *testing.T) {
	_, err := New("Not/AZone")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load market timezone")
}

func TestClock_Now_UsesExchangeTimezone(t *testing.T) {
	clock, err := New("Asia/Kolkata")
	require.NoError(t, err)

	now := clock.Now()
	assert.Equal(t, "Asia/Kolkata", now.Location().String())
}
