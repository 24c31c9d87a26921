package civil

import (
	"fmt"
	"time"
)

// OverflowPolicy decides what AddMonths does when the source day does not
// exist in the target month.
type OverflowPolicy int

const (
	// OverflowClamp pins the day to the last day of the target month
	// (Jan 31 + 1 month = Feb 28).
	OverflowClamp OverflowPolicy = iota
	// OverflowRollover carries the excess days into the following month
	// (Jan 31 + 1 month = Mar 3 in a common year).
	OverflowRollover
)

func (p OverflowPolicy) String() string {
	switch p {
	case OverflowClamp:
		return "clamp"
	case OverflowRollover:
		return "rollover"
	}
	return "unknown"
}

// ParseOverflowPolicy accepts "clamp" or "rollover"; empty means clamp.
func ParseOverflowPolicy(s string) (OverflowPolicy, error) {
	switch s {
	case "", "clamp":
		return OverflowClamp, nil
	case "rollover":
		return OverflowRollover, nil
	}
	return OverflowClamp, fmt.Errorf("unknown overflow policy %q", s)
}

// IsLeapYear applies the Gregorian leap-year rule.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in month (1-12) of year.
func DaysInMonth(year, month int) int {
	switch month {
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	}
	return 31
}

// EasterSunday returns Western (Gregorian) Easter for year using the
// anonymous Gregorian algorithm (Meeus/Jones/Butcher). Integer arithmetic only.
func EasterSunday(year int) Date {
	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := ((h + l - 7*m + 114) % 31) + 1

	return Date{Year: year, Month: month, Day: day}
}

// NthWeekdayOfMonth finds the nth (1-based) weekday of the month. The bool is
// false when that occurrence does not exist, e.g. a fifth Monday.
func NthWeekdayOfMonth(year, month int, weekday time.Weekday, n int) (Date, bool) {
	if n < 1 {
		return Date{}, false
	}
	first := Date{Year: year, Month: month, Day: 1}
	offset := (int(weekday) - int(first.Weekday()) + 7) % 7
	day := 1 + offset + (n-1)*7
	if day > DaysInMonth(year, month) {
		return Date{}, false
	}
	return Date{Year: year, Month: month, Day: day}, true
}

// LastWeekdayOfMonth steps back from the last day of the month to the nearest
// matching weekday.
func LastWeekdayOfMonth(year, month int, weekday time.Weekday) Date {
	last := Date{Year: year, Month: month, Day: DaysInMonth(year, month)}
	back := (int(last.Weekday()) - int(weekday) + 7) % 7
	return last.AddDays(-back)
}

// WeekdayOnOrBefore returns the closest date not after d that falls on weekday.
func WeekdayOnOrBefore(d Date, weekday time.Weekday) Date {
	back := (int(d.Weekday()) - int(weekday) + 7) % 7
	return d.AddDays(-back)
}

// AddMonths adds n months (n may be negative). Days past the end of the
// target month are handled per policy.
func AddMonths(d Date, n int, policy OverflowPolicy) Date {
	idx := d.Year*12 + (d.Month - 1) + n
	year, month := floorDivInt(idx, 12), idx-floorDivInt(idx, 12)*12+1

	dim := DaysInMonth(year, month)
	if d.Day <= dim {
		return Date{Year: year, Month: month, Day: d.Day}
	}
	if policy == OverflowRollover {
		return Date{Year: year, Month: month, Day: dim}.AddDays(d.Day - dim)
	}
	return Date{Year: year, Month: month, Day: dim}
}

// AddYears adds n years keeping month and day. Feb 29 on a non-leap target
// year becomes Feb 28; later additions do not restore it.
func AddYears(d Date, n int) Date {
	y := d.Year + n
	if d.Month == 2 && d.Day == 29 && !IsLeapYear(y) {
		return Date{Year: y, Month: 2, Day: 28}
	}
	return Date{Year: y, Month: d.Month, Day: d.Day}
}

func floorDivInt(a, b int) int {
	return int(floorDiv(int64(a), int64(b)))
}
