// Package timezone resolves timezone parameters and converts between
// absolute instants and civil wall-clock values in a named zone.
package timezone

import (
	"errors"
	"fmt"
	"math"
	"time"
	_ "time/tzdata" // zone lookups must not depend on the host's zoneinfo

	"github.com/guttosm/holidaypulse/internal/civil"
)

// ErrInvalidTimezone is returned when an identifier is not in the tz database.
var ErrInvalidTimezone = errors.New("invalid timezone")

// UTC is what an explicitly empty timezone parameter resolves to.
const UTC = "UTC"

// No real zone is further than this from UTC, so every instant whose wall
// clock can read a given value lies within this window of it.
const searchWindow = 26 * 60 * 60

// Resolve applies the parameter convention:
//   - nil:   hostDefault
//   - "":    UTC
//   - other: the identifier itself (validated later by Load)
func Resolve(param *string, hostDefault string) string {
	if param == nil {
		return hostDefault
	}
	if *param == "" {
		return UTC
	}
	return *param
}

// Load looks the identifier up in the platform tz database.
func Load(name string) (*time.Location, error) {
	if name == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidTimezone, name)
	}
	return loc, nil
}

// ToCivil returns the wall-clock reading of t in loc, truncated to minutes.
func ToCivil(t time.Time, loc *time.Location) civil.DateTime {
	lt := t.In(loc)
	return civil.DateTime{
		Date:   civil.FromTime(lt),
		Hour:   lt.Hour(),
		Minute: lt.Minute(),
	}
}

// CivilDate returns the calendar day of t in loc.
func CivilDate(t time.Time, loc *time.Location) civil.Date {
	return civil.FromTime(t.In(loc))
}

// ToInstant composes a wall-clock value in loc into an instant.
//
// A value skipped by a forward transition resolves to the transition
// instant, the first valid instant after the gap. A value repeated by a
// backward transition resolves to its earlier occurrence.
func ToInstant(dt civil.DateTime, loc *time.Location) time.Time {
	wall := time.Date(dt.Year, time.Month(dt.Month), dt.Day, dt.Hour, dt.Minute, 0, 0, time.UTC).Unix()
	spans := zoneSpans(loc, wall-searchWindow, wall+searchWindow)

	best := int64(math.MaxInt64)
	for _, s := range spans {
		u := wall - int64(s.offset)
		if u >= s.start && u < s.end && u < best {
			best = u
		}
	}
	if best != math.MaxInt64 {
		return time.Unix(best, 0).In(loc)
	}

	for i := 1; i < len(spans); i++ {
		prev, next := spans[i-1], spans[i]
		transition := next.start
		if next.offset > prev.offset &&
			wall >= transition+int64(prev.offset) &&
			wall < transition+int64(next.offset) {
			return time.Unix(transition, 0).In(loc)
		}
	}

	// Unreachable for real tz data.
	return time.Date(dt.Year, time.Month(dt.Month), dt.Day, dt.Hour, dt.Minute, 0, 0, loc)
}

// span is a stretch of time [start, end) during which loc has one UTC offset.
type span struct {
	start, end int64
	offset     int
}

// zoneSpans lists the spans of loc that intersect [from, to].
func zoneSpans(loc *time.Location, from, to int64) []span {
	var out []span
	t := time.Unix(from, 0).In(loc)
	for {
		_, offset := t.Zone()
		start, end := t.ZoneBounds()
		s := span{start: math.MinInt64, end: math.MaxInt64, offset: offset}
		if !start.IsZero() {
			s.start = start.Unix()
		}
		if !end.IsZero() {
			s.end = end.Unix()
		}
		out = append(out, s)
		if end.IsZero() || s.end > to {
			return out
		}
		t = end.In(loc)
	}
}
