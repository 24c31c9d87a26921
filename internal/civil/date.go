// Package civil provides calendar-day arithmetic over (year, month, day)
// triples that carry no clock time and no timezone.
package civil

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDate is returned when a triple does not name a real Gregorian day.
var ErrInvalidDate = errors.New("invalid civil date")

const dateLayout = "2006-01-02"

// Date is a calendar day. Two Dates are the same day iff they are ==.
// It encodes as "YYYY-MM-DD" in JSON.
type Date struct {
	Year  int
	Month int
	Day   int
}

// DateTime is a civil wall-clock value with minute precision.
type DateTime struct {
	Date
	Hour   int
	Minute int
}

// NewDate validates the triple and returns the Date.
func NewDate(year, month, day int) (Date, error) {
	d := Date{Year: year, Month: month, Day: day}
	if !d.IsValid() {
		return Date{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, year, month, day)
	}
	return d, nil
}

// Parse reads a YYYY-MM-DD string.
func Parse(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return FromTime(t), nil
}

// FromTime returns the civil date of t in t's own location.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: int(m), Day: d}
}

// IsValid reports whether the triple names a real day.
func (d Date) IsValid() bool {
	if d.Month < 1 || d.Month > 12 || d.Day < 1 {
		return false
	}
	return d.Day <= DaysInMonth(d.Year, d.Month)
}

// Weekday uses the day number, so it is independent of any location.
func (d Date) Weekday() time.Weekday {
	// dayNumber 0 is 1970-01-01, a Thursday.
	w := (dayNumber(d) + 4) % 7
	if w < 0 {
		w += 7
	}
	return time.Weekday(w)
}

// AddDays shifts the date by n calendar days.
func (d Date) AddDays(n int) Date {
	return fromDayNumber(dayNumber(d) + int64(n))
}

// Compare returns -1, 0 or +1.
func (d Date) Compare(o Date) int {
	a, b := dayNumber(d), dayNumber(o)
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }
func (d Date) After(o Date) bool  { return d.Compare(o) > 0 }

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// In returns midnight of d in loc. Use timezone.ToInstant when the
// midnight may fall into a DST gap.
func (d Date) In(loc *time.Location) time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, loc)
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (dt DateTime) String() string {
	return fmt.Sprintf("%sT%02d:%02d", dt.Date, dt.Hour, dt.Minute)
}

// DaysBetween returns b - a in whole calendar days.
func DaysBetween(a, b Date) int {
	return int(dayNumber(b) - dayNumber(a))
}

// dayNumber counts days since 1970-01-01 in the proleptic Gregorian calendar.
// Algorithm from Howard Hinnant's days_from_civil.
func dayNumber(d Date) int64 {
	y := int64(d.Year)
	m := int64(d.Month)
	if m <= 2 {
		y--
	}
	era := floorDiv(y, 400)
	yoe := y - era*400
	mp := (m + 9) % 12
	doy := (153*mp+2)/5 + int64(d.Day) - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

func fromDayNumber(n int64) Date {
	z := n + 719468
	era := floorDiv(z, 146097)
	doe := z - era*146097
	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365
	y := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100)
	mp := (5*doy + 2) / 153
	day := doy - (153*mp+2)/5 + 1
	month := mp + 3
	if month > 12 {
		month -= 12
	}
	if month <= 2 {
		y++
	}
	return Date{Year: int(y), Month: int(month), Day: int(day)}
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
