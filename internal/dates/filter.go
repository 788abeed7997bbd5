package dates

import (
	"fmt"
	"slices"
)

// Range is an inclusive span of days. NewRange keeps Start <= End.
type Range struct {
	Start Date
	End   Date
}

// NewRange builds a Range, swapping the bounds when they arrive reversed.
func NewRange(a, b Date) Range {
	if b.Before(a) {
		a, b = b, a
	}
	return Range{Start: a, End: b}
}

// Contains reports whether d falls within the range, bounds included.
func (r Range) Contains(d Date) bool {
	return !d.Before(r.Start) && !d.After(r.End)
}

func (r Range) String() string {
	return fmt.Sprintf("%s..%s", r.Start, r.End)
}

// Filter matches a set of individual days and inclusive ranges.
type Filter struct {
	dates  []Date
	ranges []Range

	oldest Date
	newest Date
}

// NewFilter builds a filter from individual days and ranges. Either may be empty.
func NewFilter(days []Date, ranges []Range) Filter {
	f := Filter{
		dates:  slices.Clone(days),
		ranges: slices.Clone(ranges),
	}
	slices.SortFunc(f.dates, Date.Compare)
	slices.SortFunc(f.ranges, func(a, b Range) int { return a.Start.Compare(b.Start) })

	first := true
	widen := func(lo, hi Date) {
		if first || lo.Before(f.oldest) {
			f.oldest = lo
		}
		if first || hi.After(f.newest) {
			f.newest = hi
		}
		first = false
	}
	for _, d := range f.dates {
		widen(d, d)
	}
	for _, r := range f.ranges {
		widen(r.Start, r.End)
	}
	return f
}

// Empty reports whether the filter matches nothing.
func (f Filter) Empty() bool {
	return len(f.dates) == 0 && len(f.ranges) == 0
}

// Oldest returns the earliest day the filter can match.
func (f Filter) Oldest() (Date, bool) {
	return f.oldest, !f.Empty()
}

// Newest returns the latest day the filter can match.
func (f Filter) Newest() (Date, bool) {
	return f.newest, !f.Empty()
}

// Contains reports whether d matches one of the days or falls inside one of the ranges.
func (f Filter) Contains(d Date) bool {
	if f.Empty() || d.Before(f.oldest) || d.After(f.newest) {
		return false
	}
	if _, found := slices.BinarySearchFunc(f.dates, d, Date.Compare); found {
		return true
	}
	for _, r := range f.ranges {
		if r.Contains(d) {
			return true
		}
	}
	return false
}
