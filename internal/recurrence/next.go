package recurrence

import (
	"fmt"
	"time"

	"github.com/guttosm/holidaypulse/internal/civil"
	"github.com/guttosm/holidaypulse/internal/timezone"
)

// maxSteps bounds the advance loop; candidates are at most a few periods
// behind the reference.
const maxSteps = 8

// Occurrence is the next matching instant.
type Occurrence struct {
	Instant   time.Time `json:"instant"`
	DaysUntil int       `json:"days_until"`
	Timezone  string    `json:"timezone"`
}

// Next returns the first instant strictly after ref that satisfies p in loc.
// An instant equal to ref counts as already passed. DaysUntil is the civil
// day difference in loc, not elapsed time divided by 24h.
func Next(p Pattern, ref time.Time, loc *time.Location) (Occurrence, error) {
	if err := p.Validate(); err != nil {
		return Occurrence{}, err
	}
	if loc == nil {
		loc = time.UTC
	}

	refDate := timezone.CivilDate(ref, loc)
	var tod TimeOfDay
	if p.Time != nil {
		tod = *p.Time
	}

	periods := newPeriods(p, refDate)
	for i := 0; i < maxSteps; i++ {
		d := periods.candidate()
		instant := timezone.ToInstant(civil.DateTime{Date: d, Hour: tod.Hour, Minute: tod.Minute}, loc)
		if instant.After(ref) {
			return Occurrence{
				Instant:   instant.In(loc),
				DaysUntil: civil.DaysBetween(refDate, timezone.CivilDate(instant, loc)),
				Timezone:  loc.String(),
			}, nil
		}
		periods.advance()
	}
	return Occurrence{}, fmt.Errorf("no occurrence of %s within %d periods of %s", p, maxSteps, ref.Format(time.RFC3339))
}

// periods walks the candidate dates of a pattern, one period at a time.
type periods interface {
	candidate() civil.Date
	advance()
}

func newPeriods(p Pattern, ref civil.Date) periods {
	switch p.Frequency {
	case Weekly:
		wd := ref.Weekday()
		if p.DayOfWeek != nil {
			wd = *p.DayOfWeek
		}
		ahead := (int(wd) - int(ref.Weekday()) + 7) % 7
		return &stepDays{date: ref.AddDays(ahead), step: 7}
	case Monthly:
		m := &monthly{
			anchor:   civil.Date{Year: ref.Year, Month: ref.Month, Day: 1},
			day:      p.DayOfMonth,
			overflow: p.Overflow,
		}
		// A rolled-over day from last month can still lie ahead of ref.
		if p.Overflow == civil.OverflowRollover {
			m.anchor = civil.AddMonths(m.anchor, -1, civil.OverflowClamp)
		}
		return m
	case Yearly:
		month, day := p.Month, p.Day
		if month == 0 {
			month, day = ref.Month, ref.Day
		}
		return &yearly{year: ref.Year, month: month, day: day}
	}
	return &stepDays{date: ref, step: 1}
}

type stepDays struct {
	date civil.Date
	step int
}

func (s *stepDays) candidate() civil.Date { return s.date }
func (s *stepDays) advance()              { s.date = s.date.AddDays(s.step) }

type monthly struct {
	anchor   civil.Date // first of the period's month
	day      int
	overflow civil.OverflowPolicy
}

func (m *monthly) candidate() civil.Date {
	dim := civil.DaysInMonth(m.anchor.Year, m.anchor.Month)
	switch {
	case m.day == LastDay:
		return civil.Date{Year: m.anchor.Year, Month: m.anchor.Month, Day: dim}
	case m.day <= dim:
		return civil.Date{Year: m.anchor.Year, Month: m.anchor.Month, Day: m.day}
	case m.overflow == civil.OverflowRollover:
		return civil.Date{Year: m.anchor.Year, Month: m.anchor.Month, Day: dim}.AddDays(m.day - dim)
	}
	return civil.Date{Year: m.anchor.Year, Month: m.anchor.Month, Day: dim}
}

func (m *monthly) advance() {
	m.anchor = civil.AddMonths(m.anchor, 1, civil.OverflowClamp)
}

type yearly struct {
	year       int
	month, day int
}

// candidate re-derives from the pattern each year so a Feb 29 clamped to
// Feb 28 comes back in the next leap year.
func (y *yearly) candidate() civil.Date {
	return civil.AddYears(civil.Date{Year: 2000, Month: y.month, Day: y.day}, y.year-2000)
}

func (y *yearly) advance() { y.year++ }
