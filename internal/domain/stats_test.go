package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriodKey(t *testing.T) {
	// 15 июля 2026 - среда, понедельник недели - 13 июля
	date := time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "2026-07-15", PeriodKey(date, GroupByDay))
	assert.Equal(t, "2026-07-13", PeriodKey(date, GroupByWeek))
	assert.Equal(t, "2026-07", PeriodKey(date, GroupByMonth))
	assert.Equal(t, "2026", PeriodKey(date, GroupByYear))
}

func TestPeriodKeyWeekOnSunday(t *testing.T) {
	// Воскресенье принадлежит неделе предыдущего понедельника
	sunday := time.Date(2026, 7, 19, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "2026-07-13", PeriodKey(sunday, GroupByWeek))
}

func TestStatsGroupByValid(t *testing.T) {
	assert.True(t, GroupByDay.Valid())
	assert.True(t, GroupByYear.Valid())
	assert.False(t, StatsGroupBy("quarter").Valid())
	assert.False(t, StatsGroupBy("").Valid())
}

func TestTheoreticalSlots(t *testing.T) {
	t.Run("floors partial slots per court", func(t *testing.T) {
		// 13 часов = 26 слотов по 30 минут, 3 корта
		window := &DayWindow{Open: "09:00", Close: "22:10"}

		slots, err := TheoreticalSlots(window, 3)
		require.NoError(t, err)
		assert.Equal(t, 78, slots)
	})

	t.Run("closed day contributes zero", func(t *testing.T) {
		slots, err := TheoreticalSlots(nil, 3)
		require.NoError(t, err)
		assert.Zero(t, slots)
	})

	t.Run("no active courts contributes zero", func(t *testing.T) {
		window := &DayWindow{Open: "09:00", Close: "22:00"}

		slots, err := TheoreticalSlots(window, 0)
		require.NoError(t, err)
		assert.Zero(t, slots)
	})
}
