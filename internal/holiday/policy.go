package holiday

import (
	"time"

	"github.com/guttosm/holidaypulse/internal/civil"
)

// Policy moves a holiday that falls on a weekend (or, for Chile, midweek)
// onto the day it is observed.
type Policy int

const (
	// PolicyNone observes the raw date.
	PolicyNone Policy = iota
	// PolicyUSFederal: Saturday to the prior Friday, Sunday to the next Monday.
	PolicyUSFederal
	// PolicyNextMonday: Saturday or Sunday to the next Monday.
	PolicyNextMonday
	// PolicyChileSandwich: Tue/Wed/Thu to the prior Monday, Sat/Sun to the
	// next Monday, Mon/Fri unchanged.
	PolicyChileSandwich
	// PolicySundayOnlyToMonday: Sunday to Monday, Saturday stays.
	PolicySundayOnlyToMonday
)

var policyNames = map[Policy]string{
	PolicyNone:               "none",
	PolicyUSFederal:          "us_federal",
	PolicyNextMonday:         "next_monday",
	PolicyChileSandwich:      "chile_sandwich",
	PolicySundayOnlyToMonday: "sunday_only_to_monday",
}

func (p Policy) String() string {
	if s, ok := policyNames[p]; ok {
		return s
	}
	return "unknown"
}

// Apply returns the observed date for d. Applying it to its own output is a
// no-op for every policy.
func (p Policy) Apply(d civil.Date) civil.Date {
	wd := d.Weekday()
	switch p {
	case PolicyUSFederal:
		switch wd {
		case time.Saturday:
			return d.AddDays(-1)
		case time.Sunday:
			return d.AddDays(1)
		}
	case PolicyNextMonday:
		switch wd {
		case time.Saturday:
			return d.AddDays(2)
		case time.Sunday:
			return d.AddDays(1)
		}
	case PolicyChileSandwich:
		switch wd {
		case time.Tuesday, time.Wednesday, time.Thursday:
			return d.AddDays(-(int(wd) - int(time.Monday)))
		case time.Saturday:
			return d.AddDays(2)
		case time.Sunday:
			return d.AddDays(1)
		}
	case PolicySundayOnlyToMonday:
		if wd == time.Sunday {
			return d.AddDays(1)
		}
	}
	return d
}
