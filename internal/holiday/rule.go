// Package holiday expands static per-region rule tables into concrete
// holiday dates for a year and answers containment queries.
package holiday

import (
	"time"

	"github.com/guttosm/holidaypulse/internal/civil"
)

// RuleKind tags which resolver a Rule uses.
type RuleKind int

const (
	KindFixed RuleKind = iota
	KindNthWeekday
	KindLastWeekday
	KindEasterOffset
	KindSpecial
)

// Rule is one entry of a region table. Only the fields of its Kind are read.
type Rule struct {
	Name       string
	Kind       RuleKind
	Month      int
	Day        int
	Weekday    time.Weekday
	Occurrence int
	Offset     int
	Special    string
	Policy     Policy
}

// ResolvedHoliday is a rule applied to a year.
type ResolvedHoliday struct {
	Name         string     `json:"name"`
	Region       string     `json:"region"`
	RawDate      civil.Date `json:"raw_date"`
	ObservedDate civil.Date `json:"observed_date"`
}

// Fixed is the same month/day every year.
func Fixed(name string, month, day int, p Policy) Rule {
	return Rule{Name: name, Kind: KindFixed, Month: month, Day: day, Policy: p}
}

// Nth is the nth weekday of a month, e.g. the 3rd Monday of January.
func Nth(name string, month int, wd time.Weekday, n int, p Policy) Rule {
	return Rule{Name: name, Kind: KindNthWeekday, Month: month, Weekday: wd, Occurrence: n, Policy: p}
}

// Last is the last weekday of a month, e.g. the last Monday of May.
func Last(name string, month int, wd time.Weekday, p Policy) Rule {
	return Rule{Name: name, Kind: KindLastWeekday, Month: month, Weekday: wd, Policy: p}
}

// Easter is a signed day offset from Easter Sunday.
func Easter(name string, offset int, p Policy) Rule {
	return Rule{Name: name, Kind: KindEasterOffset, Offset: offset, Policy: p}
}

// Special delegates to a named resolver from specialResolvers.
func Special(name, id string, p Policy) Rule {
	return Rule{Name: name, Kind: KindSpecial, Special: id, Policy: p}
}

// specialResolvers holds one-off rules that do not fit the other kinds.
var specialResolvers = map[string]func(year int) (civil.Date, bool){
	// Monday on or before May 24.
	"victoria-day": func(year int) (civil.Date, bool) {
		return civil.WeekdayOnOrBefore(civil.Date{Year: year, Month: 5, Day: 24}, time.Monday), true
	},
}

// resolve returns the raw date of the rule in year, or false when the rule
// does not apply that year.
func (r Rule) resolve(year int) (civil.Date, bool) {
	switch r.Kind {
	case KindFixed:
		d := civil.Date{Year: year, Month: r.Month, Day: r.Day}
		return d, d.IsValid()
	case KindNthWeekday:
		return civil.NthWeekdayOfMonth(year, r.Month, r.Weekday, r.Occurrence)
	case KindLastWeekday:
		return civil.LastWeekdayOfMonth(year, r.Month, r.Weekday), true
	case KindEasterOffset:
		return civil.EasterSunday(year).AddDays(r.Offset), true
	case KindSpecial:
		fn, ok := specialResolvers[r.Special]
		if !ok {
			return civil.Date{}, false
		}
		return fn(year)
	}
	return civil.Date{}, false
}
