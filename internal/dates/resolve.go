package dates

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// MaxDaysAgo bounds the bare day-count form; larger counts collide with the year forms.
	MaxDaysAgo = 999
	// YearlessLookbackDays is how far back an MM-DD token may resolve.
	YearlessLookbackDays = 366
	// TwoDigitYearPivot splits YY values: below it means 20YY, at or above means 19YY.
	TwoDigitYearPivot = 70
)

var (
	daysAgoPattern  = regexp.MustCompile(`^[0-9]{1,3}$`)
	monthDayPattern = regexp.MustCompile(`^([0-9]{2})-?([0-9]{2})$`)
	fullDatePattern = regexp.MustCompile(`^([0-9]{2}|[0-9]{4})-?([0-9]{2})-?([0-9]{2})$`)
	weekdayPattern  = regexp.MustCompile(`^([a-z]{3})([0-9]*)$`)
)

var weekdays = map[string]time.Weekday{
	"mon": time.Monday,
	"tue": time.Tuesday,
	"wed": time.Wednesday,
	"thu": time.Thursday,
	"fri": time.Friday,
	"sat": time.Saturday,
	"sun": time.Sunday,
}

// Resolve turns a date expression into a calendar day relative to today.
//
// Accepted forms, tried in order:
//   - "today", "yesterday" (anything starting with "yester")
//   - N, a day count 0..999 before today
//   - mon..sun with an optional week offset: "fri" is the last Friday before today, "fri1" a week earlier
//   - MM-DD or MMDD, the latest such day on or before today
//   - YY-MM-DD, YYMMDD, YYYY-MM-DD or YYYYMMDD
func Resolve(expr string, today Date) (Date, error) {
	token := strings.ToLower(strings.TrimSpace(expr))
	if token == "" {
		return Date{}, exprError(expr, ErrUnrecognizedDate, "")
	}

	switch {
	case token == "today":
		return today, nil
	case strings.HasPrefix(token, "yester"):
		return today.AddDays(-1), nil
	case daysAgoPattern.MatchString(token):
		n, _ := strconv.Atoi(token)
		return today.AddDays(-n), nil
	}

	if m := weekdayPattern.FindStringSubmatch(token); m != nil {
		return resolveWeekday(expr, m[1], m[2], today)
	}

	if m := monthDayPattern.FindStringSubmatch(token); m != nil {
		d, err := resolveMonthDay(expr, m[1], m[2], today)
		if err != nil && looksLikeDayCount(token) {
			return Date{}, exprError(expr, ErrDateOutOfRange, "day counts must be below %d", MaxDaysAgo+1)
		}
		return d, err
	}

	if m := fullDatePattern.FindStringSubmatch(token); m != nil {
		return resolveFullDate(expr, m[1], m[2], m[3])
	}

	if allDigits(token) {
		return Date{}, exprError(expr, ErrDateOutOfRange, "day counts must be below %d", MaxDaysAgo+1)
	}
	return Date{}, exprError(expr, ErrUnrecognizedDate, "")
}

// ResolveAll resolves every expression, stopping at the first failure.
func ResolveAll(exprs []string, today Date) ([]Date, error) {
	out := make([]Date, 0, len(exprs))
	for _, expr := range exprs {
		d, err := Resolve(expr, today)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func resolveWeekday(expr, name, weeks string, today Date) (Date, error) {
	target, ok := weekdays[name]
	if !ok {
		return Date{}, exprError(expr, ErrUnrecognizedDate, "use mon, tue, wed, thu, fri, sat or sun")
	}

	offset := 0
	if weeks != "" {
		n, err := strconv.Atoi(weeks)
		if err != nil || n > MaxDaysAgo {
			return Date{}, exprError(expr, ErrDateOutOfRange, "week offset too large")
		}
		offset = n
	}

	back := (int(today.Weekday()) - int(target) + 7) % 7
	if back == 0 {
		back = 7
	}
	return today.AddDays(-(back + 7*offset)), nil
}

func resolveMonthDay(expr, mm, dd string, today Date) (Date, error) {
	month, _ := strconv.Atoi(mm)
	day, _ := strconv.Atoi(dd)
	if err := checkMonthDay(expr, month, day); err != nil {
		return Date{}, err
	}

	for year := today.Year; year >= today.Year-1; year-- {
		candidate := New(year, time.Month(month), day)
		if !candidate.Valid() || candidate.After(today) {
			continue
		}
		if candidate.DaysUntil(today) <= YearlessLookbackDays {
			return candidate, nil
		}
	}
	return Date{}, exprError(expr, ErrAmbiguousDate, "no %02d-%02d within the last %d days; add the year", month, day, YearlessLookbackDays)
}

func resolveFullDate(expr, yy, mm, dd string) (Date, error) {
	year, _ := strconv.Atoi(yy)
	if len(yy) == 2 {
		if year < TwoDigitYearPivot {
			year += 2000
		} else {
			year += 1900
		}
	}
	if year < 1 {
		return Date{}, exprError(expr, ErrInvalidCalendarDate, "invalid year %s", yy)
	}

	month, _ := strconv.Atoi(mm)
	day, _ := strconv.Atoi(dd)
	if err := checkMonthDay(expr, month, day); err != nil {
		return Date{}, err
	}

	d := New(year, time.Month(month), day)
	if !d.Valid() {
		return Date{}, exprError(expr, ErrInvalidCalendarDate, "%s has no day %d", time.Month(month), day)
	}
	return d, nil
}

// checkMonthDay validates against the longest possible month, so 02-29 passes here.
func checkMonthDay(expr string, month, day int) error {
	if month < 1 || month > 12 {
		return exprError(expr, ErrInvalidCalendarDate, "invalid month %02d", month)
	}
	if day < 1 || day > DaysIn(2000, time.Month(month)) {
		return exprError(expr, ErrInvalidCalendarDate, "invalid day %02d", day)
	}
	return nil
}

// looksLikeDayCount reports whether a failed 4-digit MMDD token is better explained as a day count.
func looksLikeDayCount(token string) bool {
	return len(token) == 4 && allDigits(token) && token[0] != '0'
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
