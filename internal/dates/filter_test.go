package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewRangeNormalizesOrder(t *testing.T) {
	a := New(2024, time.March, 10)
	b := New(2024, time.March, 1)

	r := NewRange(a, b)
	assert.Equal(t, b, r.Start)
	assert.Equal(t, a, r.End)
	assert.True(t, r.Contains(a))
	assert.True(t, r.Contains(b))
	assert.True(t, r.Contains(New(2024, time.March, 5)))
	assert.False(t, r.Contains(New(2024, time.March, 11)))
	assert.Equal(t, "2024-03-01..2024-03-10", r.String())
}

func TestFilterEmpty(t *testing.T) {
	f := NewFilter(nil, nil)
	assert.True(t, f.Empty())
	assert.False(t, f.Contains(New(2024, time.April, 1)))

	_, ok := f.Oldest()
	assert.False(t, ok)
}

func TestFilterOnlyDates(t *testing.T) {
	f := NewFilter([]Date{New(2024, 3, 1), New(2024, 2, 1), New(2024, 4, 1)}, nil)

	assert.True(t, f.Contains(New(2024, 3, 1)))
	assert.False(t, f.Contains(New(2024, 3, 2)))
	assert.False(t, f.Contains(New(2024, 1, 1)))

	oldest, _ := f.Oldest()
	newest, _ := f.Newest()
	assert.Equal(t, New(2024, 2, 1), oldest)
	assert.Equal(t, New(2024, 4, 1), newest)
}

func TestFilterRangesAndDates(t *testing.T) {
	f := NewFilter(
		[]Date{New(2024, 4, 1), New(2024, 2, 1), New(2024, 3, 15)},
		[]Range{NewRange(New(2024, 3, 1), New(2024, 3, 10)), NewRange(New(2024, 1, 10), New(2024, 1, 1))},
	)

	oldest, _ := f.Oldest()
	newest, _ := f.Newest()
	assert.Equal(t, New(2024, 1, 1), oldest)
	assert.Equal(t, New(2024, 4, 1), newest)

	assert.True(t, f.Contains(New(2024, 1, 1)))
	assert.True(t, f.Contains(New(2024, 1, 5)))
	assert.True(t, f.Contains(New(2024, 1, 10)))
	assert.True(t, f.Contains(New(2024, 3, 15)))
	assert.False(t, f.Contains(New(2024, 2, 2)))
	assert.False(t, f.Contains(New(2024, 6, 1)))
}

func TestDateHelpers(t *testing.T) {
	d := New(2024, time.February, 28)
	assert.Equal(t, New(2024, time.February, 29), d.AddDays(1))
	assert.Equal(t, New(2024, time.March, 1), d.AddDays(2))
	assert.Equal(t, 2, d.DaysUntil(New(2024, time.March, 1)))
	assert.Equal(t, time.Wednesday, d.Weekday())
	assert.Equal(t, "2024-02-28", d.String())
	assert.Equal(t, 0, d.Compare(New(2024, time.February, 28)))
	assert.False(t, New(2023, time.February, 29).Valid())
	assert.True(t, New(2000, time.February, 29).Valid())
	assert.False(t, New(1900, time.February, 29).Valid())

	loc := time.FixedZone("", -7*3600)
	assert.Equal(t, New(2024, time.April, 1), Of(time.Date(2024, time.April, 1, 23, 30, 0, 0, loc)))
}
