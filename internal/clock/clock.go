package clock

import "time"

// Clock supplies the current instant. Commands receive one instead of calling time.Now directly.
type Clock interface {
	Now() time.Time
}

// System reads the machine clock in the local zone, truncated to whole seconds.
type System struct{}

// Now returns the current local time without sub-second precision.
func (System) Now() time.Time {
	return time.Now().In(time.Local).Truncate(time.Second)
}

// Fixed always reports the same instant.
type Fixed time.Time

// Now returns the fixed instant.
func (f Fixed) Now() time.Time {
	return time.Time(f)
}
