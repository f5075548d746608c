// Package clock supplies the evaluation instant for estimates in the
// configured delivery timezone.
package clock

import "time"

type Clock struct {
	loc *time.Location
	now func() time.Time
}

func New(loc *time.Location) *Clock {
	return &Clock{loc: loc, now: time.Now}
}

// NewFixed always reports t; used by tests and replay tooling.
func NewFixed(t time.Time) *Clock {
	return &Clock{loc: t.Location(), now: func() time.Time { return t }}
}

func (c *Clock) Now() time.Time {
	return c.now().In(c.loc)
}

func (c *Clock) Location() *time.Location {
	return c.loc
}
