package clock

import "time"

// Clock supplies "now" for temporal checks. Services sample it once per
// operation and thread the instant through every predicate of that call.
type Clock interface {
	Now() time.Time
}

type System struct{}

func (System) Now() time.Time { return time.Now() }

// Fixed always returns the same instant. Used in tests.
type Fixed struct {
	T time.Time
}

func (f Fixed) Now() time.Time { return f.T }
