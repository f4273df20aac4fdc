package models

import "time"

// DashboardStats is a point-in-time snapshot for the admin overview. Each count
// comes from its own read, so the fields are not guaranteed to agree with each
// other under concurrent writes.
type DashboardStats struct {
	ActiveLoans       int64     // status == Collected
	PendingCollection int64     // status == Reserved and hold not yet lapsed
	OverdueLoans      int64     // status == Collected and returnDueAt < now
	ReturnedToday     int64     // status == Returned and returnedAt >= start of today
	ReservationsToday int64     // reservedAt >= start of today, any status
	CalculatedAt      time.Time // instant captured before the counts were dispatched
}

// StartOfDay returns midnight of t's calendar day in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	lt := t.In(loc)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, loc)
}
