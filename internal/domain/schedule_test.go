package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padelio/PDL-BookingService/pkg/types"
)

func weekHours(open, close string) []*OpeningHours {
	hours := make([]*OpeningHours, 0, 7)
	for day := 0; day < 7; day++ {
		hours = append(hours, &OpeningHours{
			DayOfWeek: day,
			OpenTime:  types.TimeString(open),
			CloseTime: types.TimeString(close),
		})
	}
	return hours
}

func TestResolveDayWindow(t *testing.T) {
	// 15 июля 2026 - среда
	wednesday := time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC)

	t.Run("returns configured window", func(t *testing.T) {
		window := ResolveDayWindow(wednesday, weekHours("09:00", "22:00"), nil)
		require.NotNil(t, window)
		assert.Equal(t, types.TimeString("09:00"), window.Open)
		assert.Equal(t, types.TimeString("22:00"), window.Close)
	})

	t.Run("closed flag closes the day", func(t *testing.T) {
		hours := weekHours("09:00", "22:00")
		hours[int(wednesday.Weekday())].IsClosed = true

		assert.Nil(t, ResolveDayWindow(wednesday, hours, nil))
	})

	t.Run("missing weekday entry means closed", func(t *testing.T) {
		hours := []*OpeningHours{{DayOfWeek: 1, OpenTime: "09:00", CloseTime: "22:00"}}

		assert.Nil(t, ResolveDayWindow(wednesday, hours, nil))
	})

	t.Run("holiday overrides schedule", func(t *testing.T) {
		holidays := []*Holiday{{Date: wednesday, Reason: "Fermeture annuelle"}}

		assert.Nil(t, ResolveDayWindow(wednesday, weekHours("09:00", "22:00"), holidays))
		assert.True(t, IsClosedDay(wednesday, weekHours("09:00", "22:00"), holidays))
	})

	t.Run("holiday range covers boundary dates inclusively", func(t *testing.T) {
		end := wednesday.AddDate(0, 0, 2)
		h := &Holiday{Date: wednesday, EndDate: &end}

		assert.True(t, h.Covers(wednesday))
		assert.True(t, h.Covers(end))
		assert.False(t, h.Covers(end.AddDate(0, 0, 1)))
		assert.False(t, h.Covers(wednesday.AddDate(0, 0, -1)))
	})
}

func TestDayWindowOpenMinutes(t *testing.T) {
	window := &DayWindow{Open: "09:00", Close: "22:30"}

	minutes, err := window.OpenMinutes()
	require.NoError(t, err)
	assert.Equal(t, 810, minutes)
}
