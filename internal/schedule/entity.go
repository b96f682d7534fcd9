package schedule

import "time"

type Period string

const (
	PeriodMorning   Period = "morning"
	PeriodAfternoon Period = "afternoon"
	PeriodEvening   Period = "evening"
)

// CalendarDay is one cell of the 6x7 month grid, with flags derived
// against a pinned "today". Regenerated per render, never persisted.
type CalendarDay struct {
	Date         time.Time `json:"date"`
	CurrentMonth bool      `json:"current_month"`
	Today        bool      `json:"today"`
	Past         bool      `json:"past"`
	Closed       bool      `json:"closed"`
	Selectable   bool      `json:"selectable"`
}

// TimeSlot is a bookable 30-minute boundary within business hours.
type TimeSlot struct {
	Time      string `json:"time"`
	Period    Period `json:"period"`
	Available bool   `json:"available"`
}

// DayHours is the half-open business-hours interval [Open, Close) for a
// single day, in whole hours.
type DayHours struct {
	Open  int
	Close int
}
