package seeded

import (
	"fmt"
	"testing"
	"time"
)

func TestDeterministic(t *testing.T) {
	a := New(7)
	b := New(7)

	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	for hour := 9; hour < 18; hour++ {
		for _, minute := range []string{"00", "30"} {
			hhmm := fmt.Sprintf("%02d:%s", hour, minute)
			if a.Available(date, hhmm) != b.Available(date, hhmm) {
				t.Fatalf("same seed disagrees on %v %v", date, hhmm)
			}
		}
	}
}

func TestMixedAnswers(t *testing.T) {
	o := New(1)

	var available, unavailable int

	for day := 0; day < 30; day++ {
		date := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, day)
		for hour := 9; hour < 18; hour++ {
			if o.Available(date, fmt.Sprintf("%02d:00", hour)) {
				available++
			} else {
				unavailable++
			}
		}
	}

	if available == 0 || unavailable == 0 {
		t.Fatalf("expected a mix of answers, got %d available / %d unavailable", available, unavailable)
	}
}
