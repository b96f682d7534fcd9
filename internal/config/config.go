package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration, sourced from the environment
// with an optional .env file.
type Config struct {
	Host              string
	Port              string
	ReadHeaderTimeout time.Duration
	LivenessEndpoint  string
	Verbose           bool

	// Availability simulation seed for the default oracle.
	AvailabilitySeed uint64

	// Business-hours policy.
	ClosedWeekdays    []time.Weekday
	OpenHour          int
	WeekdayCloseHour  int
	SaturdayCloseHour int
}

// Load reads configuration from the environment. A .env file in the
// working directory is honored when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Host:              getenv("HTTP_HOST", "localhost"),
		Port:              getenv("HTTP_PORT", "8092"),
		ReadHeaderTimeout: getenvDuration("HTTP_READ_HEADER_TIMEOUT", 20*time.Second),
		LivenessEndpoint:  getenv("LIVENESS_ENDPOINT", "/liveness"),
		Verbose:           getenvBool("LOG_VERBOSE", false),
		AvailabilitySeed:  getenvUint("AVAILABILITY_SEED", 1),
		ClosedWeekdays:    getenvWeekdays("CLOSED_WEEKDAYS", []time.Weekday{time.Sunday}),
		OpenHour:          getenvInt("OPEN_HOUR", 9),
		WeekdayCloseHour:  getenvInt("WEEKDAY_CLOSE_HOUR", 18),
		SaturdayCloseHour: getenvInt("SATURDAY_CLOSE_HOUR", 16),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}

	return n
}

func getenvUint(key string, fallback uint64) uint64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}

	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return fallback
	}

	return n
}

func getenvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}

	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}

	return b
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}

	return d
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// getenvWeekdays parses a comma-separated list of weekday names, e.g.
// "sunday,monday".
func getenvWeekdays(key string, fallback []time.Weekday) []time.Weekday {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}

	var days []time.Weekday

	for _, part := range strings.Split(v, ",") {
		day, ok := weekdayNames[strings.ToLower(strings.TrimSpace(part))]
		if !ok {
			return fallback
		}

		days = append(days, day)
	}

	return days
}
