package workhours

import (
	"errors"
	"math"
	"strings"
	"time"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

var (
	ErrMissingTime             = errors.New("check-in and check-out are required")
	ErrInvalidDate             = errors.New("work date must be YYYY-MM-DD")
	ErrInvalidTime             = errors.New("time must be HH:MM")
	ErrCheckOutNotAfterCheckIn = errors.New("check-out must be later than check-in")
)

// stampLayouts are tried in order; a trailing seconds component is tolerated.
var stampLayouts = []string{
	DateLayout + "T" + TimeLayout,
	DateLayout + "T15:04:05",
}

// ComputeHours returns the decimal hours between checkIn and checkOut on date,
// rounded to two places. Missing, malformed or non-increasing input yields 0.
func ComputeHours(date, checkIn, checkOut string) float64 {
	hours, err := Calculate(date, checkIn, checkOut)
	if err != nil {
		return 0
	}
	return hours
}

// Calculate is ComputeHours with the reason for a zero result.
// Overnight ranges are not wrapped to the next day.
func Calculate(date, checkIn, checkOut string) (float64, error) {
	checkIn = strings.TrimSpace(checkIn)
	checkOut = strings.TrimSpace(checkOut)
	if checkIn == "" || checkOut == "" {
		return 0, ErrMissingTime
	}

	date = strings.TrimSpace(date)
	if _, err := time.Parse(DateLayout, date); err != nil {
		return 0, ErrInvalidDate
	}

	start, ok := stamp(date, checkIn)
	if !ok {
		return 0, ErrInvalidTime
	}
	end, ok := stamp(date, checkOut)
	if !ok {
		return 0, ErrInvalidTime
	}

	if !end.After(start) {
		return 0, ErrCheckOutNotAfterCheckIn
	}

	hours := end.Sub(start).Hours()
	return math.Round(hours*100) / 100, nil
}

// Valid reports whether the triple produces a usable, non-zero duration.
func Valid(date, checkIn, checkOut string) bool {
	_, err := Calculate(date, checkIn, checkOut)
	return err == nil
}

func stamp(date, clock string) (time.Time, bool) {
	// The hour verb also accepts a single digit; clocks must be zero-padded.
	if len(clock) != len("15:04") && len(clock) != len("15:04:05") {
		return time.Time{}, false
	}
	for _, layout := range stampLayouts {
		// UTC keeps DST transitions out of the duration.
		if t, err := time.ParseInLocation(layout, date+"T"+clock, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
