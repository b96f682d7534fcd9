package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPlanner(oracle Oracle) *Planner {
	if oracle == nil {
		oracle = OracleFunc(func(time.Time, string) bool { return true })
	}

	return New(Config{
		ClosedWeekdays: []time.Weekday{time.Sunday},
		Oracle:         oracle,
	})
}

func TestGridShape(t *testing.T) {
	p := testPlanner(nil)
	today := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)

	for month := time.January; month <= time.December; month++ {
		grid := p.Grid(time.Date(2025, month, 1, 0, 0, 0, 0, time.UTC), today)

		require.Len(t, grid, 42, "month %v", month)
		assert.Equal(t, time.Sunday, grid[0].Date.Weekday(), "month %v", month)

		for i := 1; i < len(grid); i++ {
			assert.Equal(t,
				grid[i-1].Date.AddDate(0, 0, 1),
				grid[i].Date,
				"month %v index %d", month, i,
			)
		}
	}
}

func TestGridLeadAndTrailDays(t *testing.T) {
	p := testPlanner(nil)
	today := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)

	// March 2025 starts on a Saturday, so the grid leads with six days of
	// February.
	grid := p.Grid(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), today)

	assert.Equal(t, time.Date(2025, 2, 23, 0, 0, 0, 0, time.UTC), grid[0].Date)
	assert.False(t, grid[0].CurrentMonth)
	assert.True(t, grid[6].CurrentMonth)
	assert.Equal(t, time.April, grid[41].Date.Month())
	assert.False(t, grid[41].CurrentMonth)
}

func TestGridFlags(t *testing.T) {
	p := testPlanner(nil)
	today := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC) // a Wednesday

	grid := p.Grid(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), today)

	for _, day := range grid {
		if day.Date.Equal(today) {
			assert.True(t, day.Today)
			assert.False(t, day.Past)
			assert.True(t, day.Selectable)
		}

		if day.Date.Before(today) {
			assert.True(t, day.Past)
			assert.False(t, day.Selectable, "past day %v", day.Date)
		}

		if day.Date.Weekday() == time.Sunday {
			assert.True(t, day.Closed)
			assert.False(t, day.Selectable, "closed day %v", day.Date)
		}

		if !day.Past && day.Date.Weekday() != time.Sunday {
			assert.True(t, day.Selectable, "day %v", day.Date)
		}
	}
}

func TestSelectable(t *testing.T) {
	p := testPlanner(nil)
	today := time.Date(2025, 3, 5, 12, 30, 0, 0, time.UTC)

	// Same day counts, time of day ignored.
	assert.True(t, p.Selectable(time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC), today))
	assert.False(t, p.Selectable(time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC), today))
	// Sunday is closed even in the future.
	assert.False(t, p.Selectable(time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC), today))
	assert.True(t, p.Selectable(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), today))
}

func TestSlotsForClosedDay(t *testing.T) {
	p := testPlanner(nil)

	sunday := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)
	assert.Empty(t, p.SlotsFor(sunday))
}

func TestSlotsForWeekday(t *testing.T) {
	p := testPlanner(nil)

	monday := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	slots := p.SlotsFor(monday)

	require.Len(t, slots, 18)
	assert.Equal(t, "09:00", slots[0].Time)
	assert.Equal(t, "17:30", slots[len(slots)-1].Time)

	periodOrder := map[Period]int{PeriodMorning: 0, PeriodAfternoon: 1, PeriodEvening: 2}

	for i := 1; i < len(slots); i++ {
		assert.LessOrEqual(t, periodOrder[slots[i-1].Period], periodOrder[slots[i].Period])
		assert.Less(t, slots[i-1].Time, slots[i].Time)
	}

	byTime := make(map[string]Period, len(slots))
	for _, slot := range slots {
		byTime[slot.Time] = slot.Period
	}

	assert.Equal(t, PeriodMorning, byTime["11:30"])
	assert.Equal(t, PeriodAfternoon, byTime["12:00"])
	assert.Equal(t, PeriodAfternoon, byTime["16:30"])
	assert.Equal(t, PeriodEvening, byTime["17:00"])
}

func TestSlotsForSaturday(t *testing.T) {
	p := testPlanner(nil)

	saturday := time.Date(2025, 3, 8, 0, 0, 0, 0, time.UTC)
	slots := p.SlotsFor(saturday)

	require.Len(t, slots, 14)
	assert.Equal(t, "15:30", slots[len(slots)-1].Time)

	for _, slot := range slots {
		assert.Less(t, slot.Time, "16:00")
		assert.NotEqual(t, PeriodEvening, slot.Period)
	}
}

func TestSlotsForUsesOracle(t *testing.T) {
	blocked := "10:30"

	p := testPlanner(OracleFunc(func(_ time.Time, hhmm string) bool {
		return hhmm != blocked
	}))

	monday := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	for _, slot := range p.SlotsFor(monday) {
		assert.Equal(t, slot.Time != blocked, slot.Available, "slot %v", slot.Time)
	}
}

func TestSlotsForCustomPolicies(t *testing.T) {
	p := New(Config{
		ClosedWeekdays: []time.Weekday{time.Sunday, time.Monday},
		Policies: []HoursPolicy{
			&WeekdayHours{
				Days:  []time.Weekday{time.Wednesday},
				Hours: DayHours{Open: 10, Close: 13},
			},
			&StandardHours{Hours: DayHours{Open: 9, Close: 18}},
		},
		Oracle: OracleFunc(func(time.Time, string) bool { return true }),
	})

	monday := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	assert.Empty(t, p.SlotsFor(monday))

	wednesday := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	slots := p.SlotsFor(wednesday)
	require.Len(t, slots, 6)
	assert.Equal(t, "10:00", slots[0].Time)
	assert.Equal(t, "12:30", slots[len(slots)-1].Time)
}
