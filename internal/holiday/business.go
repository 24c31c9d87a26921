package holiday

import (
	"errors"
	"fmt"
	"time"

	"github.com/guttosm/holidaypulse/internal/civil"
)

var (
	// ErrInvalidRange is returned when a range ends before it starts.
	ErrInvalidRange = errors.New("end date is before start date")
	// ErrRangeTooLarge is returned for ranges longer than MaxRangeDays.
	ErrRangeTooLarge = errors.New("date range too large")
)

// MaxRangeDays is 100 years including leap days.
const MaxRangeDays = 36525

// BusinessDayCount categorises every day of an inclusive range.
type BusinessDayCount struct {
	TotalDays    int `json:"total_days"`
	BusinessDays int `json:"business_days"`
	WeekendDays  int `json:"weekend_days"`
	HolidayCount int `json:"holiday_count"`
}

func isWeekend(d civil.Date) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// Closures adjusts which days a region is closed on.
type Closures struct {
	// RawDates uses each rule's calendar date instead of its observed date.
	RawDates bool
	// Extra adds closed days on top of the region table.
	Extra []civil.Date
}

// closedSet resolves the closed days of a region one year at a time.
// Observed dates can spill into a neighbouring year, so touching year y
// loads y-1 through y+1.
type closedSet struct {
	region string
	raw    bool
	loaded map[int]bool
	days   map[civil.Date]struct{}
}

func newClosedSet(region string, cl Closures) *closedSet {
	s := &closedSet{
		region: region,
		raw:    cl.RawDates,
		loaded: make(map[int]bool),
		days:   make(map[civil.Date]struct{}, len(cl.Extra)),
	}
	for _, d := range cl.Extra {
		s.days[d] = struct{}{}
	}
	return s
}

func (s *closedSet) has(d civil.Date) bool {
	for y := d.Year - 1; y <= d.Year+1; y++ {
		if s.loaded[y] {
			continue
		}
		s.loaded[y] = true
		for _, h := range ForYear(s.region, y) {
			if s.raw {
				s.days[h.RawDate] = struct{}{}
			} else {
				s.days[h.ObservedDate] = struct{}{}
			}
		}
	}
	_, ok := s.days[d]
	return ok
}

// IsBusinessDay is true for a weekday on which no holiday of region is observed.
func IsBusinessDay(date civil.Date, region string) bool {
	return !isWeekend(date) && !IsHoliday(date, region)
}

// CountBusinessDays walks [start, end]. A weekend day that is also a holiday
// counts as a weekend day. With excludeWeekends false, weekend days are
// added to BusinessDays.
func CountBusinessDays(region string, start, end civil.Date, excludeWeekends bool, cl Closures) (BusinessDayCount, error) {
	span := civil.DaysBetween(start, end)
	if span < 0 {
		return BusinessDayCount{}, fmt.Errorf("%w: %s > %s", ErrInvalidRange, start, end)
	}
	if span > MaxRangeDays {
		return BusinessDayCount{}, fmt.Errorf("%w: %d days (max %d)", ErrRangeTooLarge, span, MaxRangeDays)
	}

	closed := newClosedSet(region, cl)
	var out BusinessDayCount
	for d := start; !d.After(end); d = d.AddDays(1) {
		out.TotalDays++
		switch {
		case isWeekend(d):
			out.WeekendDays++
		case closed.has(d):
			out.HolidayCount++
		default:
			out.BusinessDays++
		}
	}
	if !excludeWeekends {
		out.BusinessDays += out.WeekendDays
	}
	return out, nil
}

// LastNBusinessDays returns the last n business days of region up to and
// including from, most recent first.
func LastNBusinessDays(region string, n int, from civil.Date, cl Closures) []civil.Date {
	if n < 0 {
		n = 0
	}
	closed := newClosedSet(region, cl)
	out := make([]civil.Date, 0, n)
	for d := from; len(out) < n; d = d.AddDays(-1) {
		if !isWeekend(d) && !closed.has(d) {
			out = append(out, d)
		}
	}
	return out
}
