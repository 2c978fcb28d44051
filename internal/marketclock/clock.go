// Package marketclock answers the single question every scheduling decision
// depends on: is the market open right now?
package marketclock

import (
	"fmt"
	"time"
)

// Session window in minutes from local midnight: 09:15 inclusive to 15:30
// exclusive, Monday through Friday.
const (
	defaultOpenMinute  = 9*60 + 15
	defaultCloseMinute = 15*60 + 30
)

// Clock evaluates market hours against a fixed exchange timezone.
type Clock struct {
	loc         *time.Location
	openMinute  int
	closeMinute int
}

// New creates a Clock for the named timezone (e.g. "Asia/Kolkata").
func New(timezone string) (*Clock, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load market timezone %s: %w", timezone, err)
	}
	return &Clock{
		loc:         loc,
		openMinute:  defaultOpenMinute,
		closeMinute: defaultCloseMinute,
	}, nil
}

// Now returns the current wall-clock time in the exchange timezone.
func (c *Clock) Now() time.Time {
	return time.Now().In(c.loc)
}

// IsOpen reports whether the market is open at instant t. Pure function of t
// and the timezone rule; callers must re-evaluate on every scheduling decision
// rather than caching the answer.
func (c *Clock) IsOpen(t time.Time) bool {
	local := t.In(c.loc)
	switch local.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	mins := local.Hour()*60 + local.Minute()
	return mins >= c.openMinute && mins < c.closeMinute
}

// IsOpenNow is shorthand for IsOpen at the current instant.
func (c *Clock) IsOpenNow() bool {
	return c.IsOpen(time.Now())
}
