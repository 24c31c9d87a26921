package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/guttosm/holidaypulse/internal/cache"
	"github.com/guttosm/holidaypulse/internal/civil"
	"github.com/guttosm/holidaypulse/internal/holiday"
	"github.com/guttosm/holidaypulse/internal/logger"
	"github.com/guttosm/holidaypulse/internal/recurrence"
	"github.com/guttosm/holidaypulse/internal/timezone"
)

// CalendarService is the business layer behind the HTTP handlers and the
// warm-up jobs. Results are identical with or without a cache.
type CalendarService interface {
	Regions() []string
	Holidays(ctx context.Context, region string, year int) ([]holiday.ResolvedHoliday, error)
	CheckDate(ctx context.Context, region string, date civil.Date) (DateCheck, error)
	BusinessDays(ctx context.Context, region string, start, end civil.Date, excludeWeekends bool, cl holiday.Closures) (holiday.BusinessDayCount, error)
	LastBusinessDays(ctx context.Context, region string, n int, from civil.Date, cl holiday.Closures) ([]civil.Date, error)
	BusinessHours(ctx context.Context, q HoursQuery) (HoursResult, error)
	NextOccurrence(ctx context.Context, q OccurrenceQuery) (recurrence.Occurrence, error)
}

// DateCheck answers "is this date special in region".
type DateCheck struct {
	Date          civil.Date
	Region        string
	Weekday       time.Weekday
	IsHoliday     bool
	IsBusinessDay bool
	Holidays      []holiday.ResolvedHoliday
}

// OccurrenceQuery is a next-occurrence request. A nil Timezone means the
// configured default, a pointer to "" means UTC. A nil Reference means now
// and bypasses the cache.
type OccurrenceQuery struct {
	Pattern   recurrence.Pattern
	Timezone  *string
	Reference *time.Time
}

// HoursQuery is a business-hours request. Timezone follows OccurrenceQuery.
// An empty Region applies no holiday table.
type HoursQuery struct {
	Region          string
	Start, End      time.Time
	Timezone        *string
	Schedule        holiday.Schedule
	IncludeWeekends bool
	Closures        holiday.Closures
}

// HoursResult is a business-hours report and the zone it was computed in.
type HoursResult struct {
	holiday.HoursReport
	Location *time.Location
}

// Settings configures a CalendarService.
type Settings struct {
	CacheTTL        time.Duration
	DefaultTimezone string
	Now             func() time.Time // defaults to time.Now
}

type calendarService struct {
	cache     cache.Cache
	ttl       time.Duration
	defaultTZ string
	now       func() time.Time
	log       zerolog.Logger
}

// NewCalendarService wires the core packages to a cache. A nil cache
// disables memoization.
func NewCalendarService(c cache.Cache, s Settings) CalendarService {
	if c == nil {
		c = cache.Nop{}
	}
	if s.Now == nil {
		s.Now = time.Now
	}
	return &calendarService{
		cache:     c,
		ttl:       s.CacheTTL,
		defaultTZ: s.DefaultTimezone,
		now:       s.Now,
		log:       logger.Component("calendar"),
	}
}

func (s *calendarService) Regions() []string {
	return holiday.Regions()
}

func (s *calendarService) Holidays(ctx context.Context, region string, year int) ([]holiday.ResolvedHoliday, error) {
	code := holiday.Normalize(region)
	key := cache.Key("holidays", code, strconv.Itoa(year))

	var out []holiday.ResolvedHoliday
	if s.lookup(ctx, key, &out) {
		return out, nil
	}
	out = holiday.ForYear(code, year)
	s.store(ctx, key, out)
	return out, nil
}

func (s *calendarService) CheckDate(ctx context.Context, region string, date civil.Date) (DateCheck, error) {
	check := DateCheck{
		Date:     date,
		Region:   holiday.Normalize(region),
		Weekday:  date.Weekday(),
		Holidays: []holiday.ResolvedHoliday{},
	}
	// Observed dates can cross into a neighbouring year.
	for y := date.Year - 1; y <= date.Year+1; y++ {
		hs, err := s.Holidays(ctx, region, y)
		if err != nil {
			return DateCheck{}, err
		}
		for _, h := range hs {
			if h.ObservedDate == date {
				check.Holidays = append(check.Holidays, h)
			}
		}
	}
	check.IsHoliday = len(check.Holidays) > 0
	check.IsBusinessDay = !check.IsHoliday && check.Weekday != time.Saturday && check.Weekday != time.Sunday
	return check, nil
}

func (s *calendarService) BusinessDays(ctx context.Context, region string, start, end civil.Date, excludeWeekends bool, cl holiday.Closures) (holiday.BusinessDayCount, error) {
	if err := ctx.Err(); err != nil {
		return holiday.BusinessDayCount{}, err
	}
	return holiday.CountBusinessDays(region, start, end, excludeWeekends, cl)
}

func (s *calendarService) LastBusinessDays(ctx context.Context, region string, n int, from civil.Date, cl holiday.Closures) ([]civil.Date, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return holiday.LastNBusinessDays(region, n, from, cl), nil
}

func (s *calendarService) BusinessHours(ctx context.Context, q HoursQuery) (HoursResult, error) {
	if err := ctx.Err(); err != nil {
		return HoursResult{}, err
	}
	loc, err := timezone.Load(timezone.Resolve(q.Timezone, s.defaultTZ))
	if err != nil {
		return HoursResult{}, err
	}
	report, err := holiday.BusinessHours(q.Region, q.Start, q.End, loc, q.Schedule, q.IncludeWeekends, q.Closures)
	if err != nil {
		return HoursResult{}, err
	}
	return HoursResult{HoursReport: report, Location: loc}, nil
}

func (s *calendarService) NextOccurrence(ctx context.Context, q OccurrenceQuery) (recurrence.Occurrence, error) {
	if err := q.Pattern.Validate(); err != nil {
		return recurrence.Occurrence{}, err
	}
	name := timezone.Resolve(q.Timezone, s.defaultTZ)
	loc, err := timezone.Load(name)
	if err != nil {
		return recurrence.Occurrence{}, err
	}
	// A clock reference never repeats, so only explicit references are memoized.
	if q.Reference == nil {
		return s.nextOccurrence(q.Pattern, s.now(), loc)
	}
	ref := *q.Reference

	key := cache.Key("next", q.Pattern.String(), loc.String(), ref.UTC().Format(time.RFC3339Nano))
	var occ recurrence.Occurrence
	if s.lookup(ctx, key, &occ) {
		occ.Instant = occ.Instant.In(loc)
		return occ, nil
	}

	occ, err = s.nextOccurrence(q.Pattern, ref, loc)
	if err != nil {
		return recurrence.Occurrence{}, err
	}
	s.store(ctx, key, occ)
	return occ, nil
}

func (s *calendarService) nextOccurrence(p recurrence.Pattern, ref time.Time, loc *time.Location) (recurrence.Occurrence, error) {
	occ, err := recurrence.Next(p, ref, loc)
	if err != nil {
		return recurrence.Occurrence{}, fmt.Errorf("next occurrence of %s: %w", p, err)
	}
	return occ, nil
}

// lookup decodes a cached value into dst. Any cache failure is a miss.
func (s *calendarService) lookup(ctx context.Context, key string, dst any) bool {
	raw, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("cache get failed, recomputing")
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("cache entry undecodable, recomputing")
		return false
	}
	return true
}

func (s *calendarService) store(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("cache encode failed")
		return
	}
	if err := s.cache.Set(ctx, key, raw, s.ttl); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("cache set failed")
	}
}
