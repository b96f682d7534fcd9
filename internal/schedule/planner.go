package schedule

import (
	"fmt"
	"time"
)

const gridDays = 42 // 6 rows of 7, Sunday-first

// Oracle answers whether a given date/time slot is bookable. The
// authoritative answer comes from an external scheduler; implementations
// here stand in for it.
type Oracle interface {
	Available(date time.Time, hhmm string) bool
}

// OracleFunc adapts a plain function to the Oracle interface.
type OracleFunc func(date time.Time, hhmm string) bool

func (f OracleFunc) Available(date time.Time, hhmm string) bool {
	return f(date, hhmm)
}

// Planner produces the month grid and the bookable slots for a date,
// honoring the closed-weekday set and the business-hours policy chain.
type Planner struct {
	closed   map[time.Weekday]bool
	policies []HoursPolicy
	oracle   Oracle
}

type Config struct {
	ClosedWeekdays []time.Weekday
	Policies       []HoursPolicy
	Oracle         Oracle
}

func New(conf Config) *Planner {
	closed := make(map[time.Weekday]bool, len(conf.ClosedWeekdays))
	for _, day := range conf.ClosedWeekdays {
		closed[day] = true
	}

	policies := conf.Policies
	if len(policies) == 0 {
		policies = DefaultPolicies()
	}

	return &Planner{
		closed:   closed,
		policies: policies,
		oracle:   conf.Oracle,
	}
}

// Day truncates a time value to day granularity in its location.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Grid returns the fixed 42-day calendar for the month containing month,
// starting on the most recent Sunday on or before the 1st. Lead and trail
// days from adjacent months keep the grid a constant size.
func (p *Planner) Grid(month, today time.Time) []CalendarDay {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	start := first.AddDate(0, 0, -int(first.Weekday()))
	today = Day(today)

	days := make([]CalendarDay, 0, gridDays)

	for i := 0; i < gridDays; i++ {
		date := start.AddDate(0, 0, i)

		day := CalendarDay{
			Date:         date,
			CurrentMonth: date.Month() == month.Month(),
			Today:        date.Equal(today),
			Past:         date.Before(today),
			Closed:       p.closed[date.Weekday()],
		}
		day.Selectable = !day.Past && !day.Closed

		days = append(days, day)
	}

	return days
}

// Selectable reports whether a date can be booked at all: not in the past
// at day granularity and not a closed weekday.
func (p *Planner) Selectable(date, today time.Time) bool {
	if p.closed[date.Weekday()] {
		return false
	}

	return !Day(date).Before(Day(today))
}

// SlotsFor returns the bookable slots of a date on a 30-minute grid,
// grouped by period in morning, afternoon, evening order and ascending by
// time within each period. Closed weekdays yield an empty sequence.
func (p *Planner) SlotsFor(date time.Time) []TimeSlot {
	if p.closed[date.Weekday()] {
		return nil
	}

	hours := p.hoursFor(date)

	slots := make([]TimeSlot, 0, (hours.Close-hours.Open)*2)

	for hour := hours.Open; hour < hours.Close; hour++ {
		for minute := 0; minute < 60; minute += 30 {
			hhmm := fmt.Sprintf("%02d:%02d", hour, minute)

			slots = append(slots, TimeSlot{
				Time:      hhmm,
				Period:    periodFor(hour),
				Available: p.oracle.Available(Day(date), hhmm),
			})
		}
	}

	return slots
}

func (p *Planner) hoursFor(date time.Time) DayHours {
	for _, policy := range p.policies {
		if hours, ok := policy.Apply(date); ok {
			return hours
		}
	}

	return DayHours{Open: 9, Close: 18}
}

// periodFor keeps the original display grouping: the evening boundary
// stays at 17 even on days that close earlier.
func periodFor(hour int) Period {
	switch {
	case hour < 12:
		return PeriodMorning
	case hour < 17:
		return PeriodAfternoon
	default:
		return PeriodEvening
	}
}
