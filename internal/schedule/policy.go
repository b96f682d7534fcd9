package schedule

import "time"

// HoursPolicy decides the business hours for a date. Policies are applied
// in order; the first one that matches wins.
type HoursPolicy interface {
	Apply(date time.Time) (DayHours, bool)
}

// WeekdayHours applies a fixed hours interval to a specific set of
// weekdays.
type WeekdayHours struct {
	Days  []time.Weekday
	Hours DayHours
}

func (p *WeekdayHours) Apply(date time.Time) (DayHours, bool) {
	for _, day := range p.Days {
		if date.Weekday() == day {
			return p.Hours, true
		}
	}

	return DayHours{}, false
}

// StandardHours matches every date. Meant as the last policy in a chain.
type StandardHours struct {
	Hours DayHours
}

func (p *StandardHours) Apply(_ time.Time) (DayHours, bool) {
	return p.Hours, true
}

// DefaultPolicies is the shipped business-hours chain: 09:00-16:00 on
// Saturday, 09:00-18:00 otherwise.
func DefaultPolicies() []HoursPolicy {
	return []HoursPolicy{
		&WeekdayHours{
			Days:  []time.Weekday{time.Saturday},
			Hours: DayHours{Open: 9, Close: 16},
		},
		&StandardHours{
			Hours: DayHours{Open: 9, Close: 18},
		},
	}
}
