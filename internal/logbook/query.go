package logbook

import (
	"time"

	"github.com/faizmokh/idid/internal/dates"
)

// Select keeps the records whose calendar day in loc matches filter, in file order.
// Durations are those computed over the full log, so a day's first visible entry keeps its gap.
func Select(records []Record, filter dates.Filter, loc *time.Location) []Record {
	if filter.Empty() {
		return nil
	}

	var out []Record
	for _, rec := range records {
		if filter.Contains(dates.Of(rec.Time.In(loc))) {
			out = append(out, rec)
		}
	}
	return out
}

// SelectDates keeps the records that fall on any of days.
func SelectDates(records []Record, loc *time.Location, days ...dates.Date) []Record {
	return Select(records, dates.NewFilter(days, nil), loc)
}

// SelectRange keeps the records that fall inside r, both ends included.
func SelectRange(records []Record, r dates.Range, loc *time.Location) []Record {
	return Select(records, dates.NewFilter(nil, []dates.Range{r}), loc)
}
