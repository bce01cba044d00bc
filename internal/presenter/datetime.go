package presenter

import (
	"time"

	"pay-dashboard-api/internal/utils/timeutil"
)

// Clock formats timestamps in the dashboard's zone.
type Clock struct {
	Location *time.Location
}

func (c Clock) loc() *time.Location {
	if c.Location == nil {
		return time.UTC
	}
	return c.Location
}

// FormatDateTime renders "2006-01-02 15:04"; a zero time renders empty.
func (c Clock) FormatDateTime(t time.Time) string {
	return timeutil.FormatDateTime(t, c.loc())
}

// Now is the current instant in the dashboard's zone.
func (c Clock) Now() time.Time {
	return timeutil.NowIn(c.loc())
}
