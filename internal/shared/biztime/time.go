// Package biztime centralizes time handling. All storage and transport use
// UTC; persistence models store millisecond epochs.
package biztime

import (
	"fmt"
	"time"
)

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// FromMillis converts a millisecond epoch to a UTC time.
func FromMillis(millis int64) time.Time {
	return time.Unix(0, millis*int64(time.Millisecond)).UTC()
}

// ParseDueAt accepts either an RFC 3339 timestamp or a plain date (YYYY-MM-DD)
// and returns the UTC equivalent. Due dates arrive in both shapes from
// clients.
func ParseDueAt(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid due date %q: expected RFC3339 or YYYY-MM-DD", s)
	}
	return t.UTC(), nil
}
