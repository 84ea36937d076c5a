package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	t.Run("valid time", func(t *testing.T) {
		ts, err := NewTimeStringFromString("09:30")
		require.NoError(t, err)
		assert.Equal(t, "09:30", ts.String())
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := NewTimeStringFromString("9h30")
		assert.Error(t, err)

		_, err = NewTimeStringFromString("25:00")
		assert.Error(t, err)
	})
}

func TestTimeStringMinutes(t *testing.T) {
	minutes, err := TimeString("10:45").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 645, minutes)
}

func TestTimeStringAddMinutes(t *testing.T) {
	t.Run("adds within day", func(t *testing.T) {
		got, err := TimeString("10:30").AddMinutes(90)
		require.NoError(t, err)
		assert.Equal(t, TimeString("12:00"), got)
	})

	t.Run("result past midnight compares after any close time", func(t *testing.T) {
		got, err := TimeString("23:30").AddMinutes(90)
		require.NoError(t, err)
		assert.Equal(t, TimeString("25:00"), got)
		assert.True(t, got.IsAfter("23:59"))
	})

	t.Run("negative result is an error", func(t *testing.T) {
		_, err := TimeString("00:30").AddMinutes(-60)
		assert.Error(t, err)
	})
}

func TestTimeStringComparison(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.True(t, TimeString("10:00").IsAfter("09:59"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
}

func TestTimeStringAt(t *testing.T) {
	date := time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC)

	got, err := TimeString("18:30").At(date)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 7, 15, 18, 30, 0, 0, time.UTC), got)
}
