package clock

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrMalformedTime is returned when a -t value is neither minutes ago nor a clock time.
var ErrMalformedTime = errors.New("malformed time")

// MaxMinutesAgo is the largest accepted "minutes ago" adjustment.
const MaxMinutesAgo = 1439

// When is a parsed time adjustment: either a number of minutes before now or a wall-clock time today.
type When struct {
	MinutesAgo int
	Hour       int
	Minute     int
	IsClock    bool
}

// Apply materializes the adjustment relative to now, keeping now's location.
func (w When) Apply(now time.Time) time.Time {
	if !w.IsClock {
		return now.Add(-time.Duration(w.MinutesAgo) * time.Minute)
	}
	return time.Date(now.Year(), now.Month(), now.Day(), w.Hour, w.Minute, 0, 0, now.Location())
}

// ParseWhen accepts "30" or "-30" (minutes ago), "7:30" / "14:00" (24 hour clock)
// and "8am" / "1:30pm".
func ParseWhen(input string) (When, error) {
	value := strings.ToLower(strings.TrimSpace(input))
	if value == "" {
		return When{}, fmt.Errorf("%w: empty value", ErrMalformedTime)
	}

	if minutes, ok := parseMinutes(value); ok {
		if minutes < 1 || minutes > MaxMinutesAgo {
			return When{}, fmt.Errorf("%w: minutes %q outside 1..%d", ErrMalformedTime, input, MaxMinutesAgo)
		}
		return When{MinutesAgo: minutes}, nil
	}

	suffix := ""
	if strings.HasSuffix(value, "am") || strings.HasSuffix(value, "pm") {
		suffix = value[len(value)-2:]
		value = strings.TrimSpace(value[:len(value)-2])
	}

	hour, minute, err := splitClock(value, suffix != "")
	if err != nil {
		return When{}, fmt.Errorf("%w %q: %v", ErrMalformedTime, input, err)
	}

	if suffix != "" {
		if hour < 1 || hour > 12 {
			return When{}, fmt.Errorf("%w %q: hour must be 1..12 with %s", ErrMalformedTime, input, suffix)
		}
		hour %= 12
		if suffix == "pm" {
			hour += 12
		}
	}

	return When{Hour: hour, Minute: minute, IsClock: true}, nil
}

func parseMinutes(value string) (int, bool) {
	digits := strings.TrimPrefix(value, "-")
	if digits == "" || strings.Trim(digits, "0123456789") != "" {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return MaxMinutesAgo + 1, true
	}
	return n, true
}

// splitClock parses H:MM or HH:MM; bare hours are only allowed with an am/pm suffix.
func splitClock(value string, bareHourOK bool) (int, int, error) {
	hourPart, minutePart, hasColon := strings.Cut(value, ":")
	if !hasColon && !bareHourOK {
		return 0, 0, errors.New("expected H:MM, HH:MM or minutes ago")
	}
	if len(hourPart) < 1 || len(hourPart) > 2 || !allDigits(hourPart) {
		return 0, 0, errors.New("invalid hours")
	}
	hour, _ := strconv.Atoi(hourPart)
	if hour > 23 {
		return 0, 0, errors.New("invalid hours")
	}

	minute := 0
	if hasColon {
		if len(minutePart) != 2 || !allDigits(minutePart) {
			return 0, 0, errors.New("invalid minutes")
		}
		minute, _ = strconv.Atoi(minutePart)
		if minute > 59 {
			return 0, 0, errors.New("invalid minutes")
		}
	}
	return hour, minute, nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// Elapsed returns the span between two instants. The result is never negative;
// out-of-order arguments yield the absolute difference.
func Elapsed(earlier, later time.Time) time.Duration {
	d := later.Sub(earlier)
	if d < 0 {
		return -d
	}
	return d
}

// FormatHHMM renders d as zero-padded hours and minutes, dropping any partial minute.
func FormatHHMM(d time.Duration) string {
	if d < 0 {
		d = -d
	}
	minutes := int64(d / time.Minute)
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ParseHHMM is the inverse of FormatHHMM for hour 0..23 and minute 0..59.
func ParseHHMM(value string) (time.Duration, error) {
	hourPart, minutePart, ok := strings.Cut(value, ":")
	if !ok || len(hourPart) != 2 || len(minutePart) != 2 || !allDigits(hourPart) || !allDigits(minutePart) {
		return 0, fmt.Errorf("%w %q: expected HH:MM", ErrMalformedTime, value)
	}
	hour, _ := strconv.Atoi(hourPart)
	minute, _ := strconv.Atoi(minutePart)
	if hour > 23 || minute > 59 {
		return 0, fmt.Errorf("%w %q: out of range", ErrMalformedTime, value)
	}
	return time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute, nil
}
