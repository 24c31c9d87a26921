// Package recurrence finds the next instant that satisfies a daily, weekly,
// monthly or yearly pattern in a given timezone.
package recurrence

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/guttosm/holidaypulse/internal/civil"
)

// ErrInvalidPattern is returned for a pattern with an out-of-range field.
var ErrInvalidPattern = errors.New("invalid recurrence pattern")

// LastDay is the DayOfMonth sentinel for the final day of each month.
const LastDay = -1

type Frequency int

const (
	Daily Frequency = iota
	Weekly
	Monthly
	Yearly
)

var frequencyNames = [...]string{"daily", "weekly", "monthly", "yearly"}

func (f Frequency) String() string {
	if f < 0 || int(f) >= len(frequencyNames) {
		return "unknown"
	}
	return frequencyNames[f]
}

// ParseFrequency is case-insensitive.
func ParseFrequency(s string) (Frequency, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for i, n := range frequencyNames {
		if n == name {
			return Frequency(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown frequency %q", ErrInvalidPattern, s)
}

// TimeOfDay is a civil clock value with minute precision.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// ParseTimeOfDay reads "H:MM" or "HH:MM".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	h, m, ok := strings.Cut(s, ":")
	if !ok || len(h) < 1 || len(h) > 2 || len(m) != 2 {
		return TimeOfDay{}, fmt.Errorf("%w: malformed time %q", ErrInvalidPattern, s)
	}
	hour, err := strconv.Atoi(h)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: malformed time %q", ErrInvalidPattern, s)
	}
	minute, err := strconv.Atoi(m)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: malformed time %q", ErrInvalidPattern, s)
	}
	tod := TimeOfDay{Hour: hour, Minute: minute}
	if !tod.valid() {
		return TimeOfDay{}, fmt.Errorf("%w: time out of range %q", ErrInvalidPattern, s)
	}
	return tod, nil
}

func (t TimeOfDay) valid() bool {
	return t.Hour >= 0 && t.Hour <= 23 && t.Minute >= 0 && t.Minute <= 59
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Pattern describes a recurrence. Fields that do not apply to Frequency are
// ignored. A nil Time means start of day.
//
// Weekly without DayOfWeek repeats on the reference's weekday. Yearly without
// Month and Day repeats on the reference's month and day; the two are set
// together or not at all.
type Pattern struct {
	Frequency  Frequency
	Time       *TimeOfDay
	DayOfWeek  *time.Weekday
	DayOfMonth int // 1-31 or LastDay
	Month      int
	Day        int
	Overflow   civil.OverflowPolicy
}

// Validate checks the fields that apply to the pattern's frequency.
func (p Pattern) Validate() error {
	if p.Time != nil && !p.Time.valid() {
		return fmt.Errorf("%w: time %s out of range", ErrInvalidPattern, p.Time)
	}

	switch p.Frequency {
	case Daily:
	case Weekly:
		if p.DayOfWeek != nil && (*p.DayOfWeek < time.Sunday || *p.DayOfWeek > time.Saturday) {
			return fmt.Errorf("%w: day_of_week %d outside 0-6", ErrInvalidPattern, *p.DayOfWeek)
		}
	case Monthly:
		if p.DayOfMonth != LastDay && (p.DayOfMonth < 1 || p.DayOfMonth > 31) {
			return fmt.Errorf("%w: day_of_month %d outside 1-31", ErrInvalidPattern, p.DayOfMonth)
		}
		if p.Overflow != civil.OverflowClamp && p.Overflow != civil.OverflowRollover {
			return fmt.Errorf("%w: unknown overflow policy %d", ErrInvalidPattern, p.Overflow)
		}
	case Yearly:
		if (p.Month == 0) != (p.Day == 0) {
			return fmt.Errorf("%w: month and day must be set together", ErrInvalidPattern)
		}
		if p.Month == 0 {
			return nil
		}
		if p.Month < 1 || p.Month > 12 {
			return fmt.Errorf("%w: month %d outside 1-12", ErrInvalidPattern, p.Month)
		}
		// Feb 29 is accepted; it clamps to Feb 28 in common years.
		if p.Day < 1 || p.Day > civil.DaysInMonth(2000, p.Month) {
			return fmt.Errorf("%w: day %d invalid for month %d", ErrInvalidPattern, p.Day, p.Month)
		}
	default:
		return fmt.Errorf("%w: unknown frequency %d", ErrInvalidPattern, p.Frequency)
	}
	return nil
}

func (p Pattern) String() string {
	var b strings.Builder
	b.WriteString(p.Frequency.String())
	switch p.Frequency {
	case Weekly:
		if p.DayOfWeek != nil {
			fmt.Fprintf(&b, ":dow=%d", *p.DayOfWeek)
		}
	case Monthly:
		fmt.Fprintf(&b, ":dom=%d:%s", p.DayOfMonth, p.Overflow)
	case Yearly:
		if p.Month != 0 {
			fmt.Fprintf(&b, ":%02d-%02d", p.Month, p.Day)
		}
	}
	if p.Time != nil {
		fmt.Fprintf(&b, "@%s", p.Time)
	}
	return b.String()
}
