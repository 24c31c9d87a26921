package holiday

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/guttosm/holidaypulse/internal/civil"
	"github.com/guttosm/holidaypulse/internal/timezone"
)

// ErrInvalidHours is returned for a malformed opening window.
var ErrInvalidHours = errors.New("invalid business hours")

// MaxHoursRangeDays bounds BusinessHours, which reports every local day.
const MaxHoursRangeDays = 366

const minutesPerDay = 24 * 60

// Window is a daily opening interval in minutes after local midnight.
type Window struct {
	Open  int
	Close int
}

// DefaultWindow is 09:00-17:00.
var DefaultWindow = Window{Open: 9 * 60, Close: 17 * 60}

// ParseWindow reads "HH:MM-HH:MM". Close must be after Open on the same day.
func ParseWindow(s string) (Window, error) {
	open, closing, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok {
		return Window{}, fmt.Errorf("%w: %q, want HH:MM-HH:MM", ErrInvalidHours, s)
	}
	o, err := parseClock(open)
	if err != nil {
		return Window{}, fmt.Errorf("%w: %q, want HH:MM-HH:MM", ErrInvalidHours, s)
	}
	c, err := parseClock(closing)
	if err != nil {
		return Window{}, fmt.Errorf("%w: %q, want HH:MM-HH:MM", ErrInvalidHours, s)
	}
	w := Window{Open: o, Close: c}
	return w, w.validate()
}

func parseClock(s string) (int, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

func (w Window) validate() error {
	if w.Open < 0 || w.Close >= minutesPerDay || w.Close <= w.Open {
		return fmt.Errorf("%w: %s", ErrInvalidHours, w)
	}
	return nil
}

func (w Window) String() string {
	return fmt.Sprintf("%02d:%02d-%02d:%02d", w.Open/60, w.Open%60, w.Close/60, w.Close%60)
}

// Schedule maps weekdays to opening windows. A weekday missing from Days
// uses Default and a nil entry closes it. A zero Default means DefaultWindow.
type Schedule struct {
	Default Window
	Days    map[time.Weekday]*Window
}

// Validate checks every window of s.
func (s Schedule) Validate() error {
	if s.Default != (Window{}) {
		if err := s.Default.validate(); err != nil {
			return err
		}
	}
	for wd, w := range s.Days {
		if wd < time.Sunday || wd > time.Saturday {
			return fmt.Errorf("%w: weekday %d", ErrInvalidHours, int(wd))
		}
		if w == nil {
			continue
		}
		if err := w.validate(); err != nil {
			return fmt.Errorf("%s: %w", wd, err)
		}
	}
	return nil
}

func (s Schedule) window(wd time.Weekday) (Window, bool) {
	if w, ok := s.Days[wd]; ok {
		if w == nil {
			return Window{}, false
		}
		return *w, true
	}
	if s.Default == (Window{}) {
		return DefaultWindow, true
	}
	return s.Default, true
}

// DayHours is one local day of an HoursReport.
type DayHours struct {
	Date      civil.Date
	Minutes   int
	IsWeekend bool
	IsHoliday bool
}

// HoursReport splits the business minutes of an interval by local day.
type HoursReport struct {
	TotalMinutes int
	Days         []DayHours
}

// BusinessHours counts the minutes of [start, end] inside sched's windows,
// walking the local days of loc. Holidays of region and cl close a day,
// and so do weekends unless includeWeekends is set. Windows are composed
// with timezone.ToInstant, so a window spanning a DST change is an hour
// shorter or longer.
func BusinessHours(region string, start, end time.Time, loc *time.Location, sched Schedule, includeWeekends bool, cl Closures) (HoursReport, error) {
	if end.Before(start) {
		return HoursReport{}, fmt.Errorf("%w: %s > %s", ErrInvalidRange, start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	if err := sched.Validate(); err != nil {
		return HoursReport{}, err
	}
	first, last := timezone.CivilDate(start, loc), timezone.CivilDate(end, loc)
	span := civil.DaysBetween(first, last)
	if span > MaxHoursRangeDays {
		return HoursReport{}, fmt.Errorf("%w: %d days (max %d)", ErrRangeTooLarge, span, MaxHoursRangeDays)
	}

	closed := newClosedSet(region, cl)
	report := HoursReport{Days: make([]DayHours, 0, span+1)}
	for d := first; !d.After(last); d = d.AddDays(1) {
		day := DayHours{Date: d, IsWeekend: isWeekend(d), IsHoliday: closed.has(d)}
		w, open := sched.window(d.Weekday())
		if open && !day.IsHoliday && (includeWeekends || !day.IsWeekend) {
			day.Minutes = overlapMinutes(w, d, loc, start, end)
		}
		report.TotalMinutes += day.Minutes
		report.Days = append(report.Days, day)
	}
	return report, nil
}

func overlapMinutes(w Window, d civil.Date, loc *time.Location, start, end time.Time) int {
	at := func(m int) time.Time {
		return timezone.ToInstant(civil.DateTime{Date: d, Hour: m / 60, Minute: m % 60}, loc)
	}
	lo, hi := at(w.Open), at(w.Close)
	if start.After(lo) {
		lo = start
	}
	if end.Before(hi) {
		hi = end
	}
	if !hi.After(lo) {
		return 0
	}
	return int(hi.Sub(lo) / time.Minute)
}
