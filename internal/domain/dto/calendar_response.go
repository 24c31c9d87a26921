package dto

import (
	"time"

	"github.com/guttosm/holidaypulse/internal/civil"
	"github.com/guttosm/holidaypulse/internal/holiday"
	"github.com/guttosm/holidaypulse/internal/recurrence"
)

// Response shapes of the /api/v1 endpoints. They are kept apart from the
// core types so the wire format can evolve without touching the engines.

// RegionsResponse is returned by GET /api/v1/regions.
type RegionsResponse struct {
	Regions []string `json:"regions" example:"AU,BR,CA,CL,UK,US,VE"`
}

// Holiday is one resolved holiday. Date is the calendar date of the rule,
// ObservedDate the day it is actually taken after weekend shifting.
type Holiday struct {
	Name            string `json:"name" example:"Independence Day"`
	Date            string `json:"date" example:"2026-07-04"`
	ObservedDate    string `json:"observed_date" example:"2026-07-03"`
	Weekday         string `json:"weekday" example:"Saturday"`
	ObservedWeekday string `json:"observed_weekday" example:"Friday"`
	Shifted         bool   `json:"shifted" example:"true"`
}

// HolidaysResponse is returned by GET /api/v1/holidays.
type HolidaysResponse struct {
	Region   string    `json:"region" example:"US"`
	Year     int       `json:"year" example:"2026"`
	Count    int       `json:"count" example:"11"`
	Holidays []Holiday `json:"holidays"`
}

// DateCheckResponse is returned by GET /api/v1/holidays/check.
type DateCheckResponse struct {
	Date          string    `json:"date" example:"2025-07-04"`
	Region        string    `json:"region" example:"US"`
	Weekday       string    `json:"weekday" example:"Friday"`
	IsHoliday     bool      `json:"is_holiday" example:"true"`
	IsBusinessDay bool      `json:"is_business_day" example:"false"`
	Holidays      []Holiday `json:"holidays"`
}

// BusinessDaysResponse is returned by GET /api/v1/business-days.
type BusinessDaysResponse struct {
	Region          string `json:"region" example:"US"`
	Start           string `json:"start" example:"2025-01-01"`
	End             string `json:"end" example:"2025-01-31"`
	ExcludeWeekends bool   `json:"exclude_weekends" example:"true"`
	IncludeObserved bool   `json:"include_observed" example:"true"`
	CustomHolidays  int    `json:"custom_holidays" example:"0"`
	TotalDays       int    `json:"total_days" example:"31"`
	BusinessDays    int    `json:"business_days" example:"21"`
	WeekendDays     int    `json:"weekend_days" example:"8"`
	HolidayCount    int    `json:"holiday_count" example:"2"`
}

// LastBusinessDaysResponse is returned by GET /api/v1/business-days/last.
type LastBusinessDaysResponse struct {
	Region string   `json:"region" example:"BR"`
	From   string   `json:"from" example:"2025-09-20"`
	Count  int      `json:"count" example:"2"`
	Dates  []string `json:"dates" example:"2025-09-19,2025-09-18"`
}

// BusinessHoursDay is one local day of a business-hours breakdown.
type BusinessHoursDay struct {
	Date            string `json:"date" example:"2025-01-17"`
	Weekday         string `json:"day_of_week" example:"Friday"`
	BusinessMinutes int    `json:"business_minutes" example:"120"`
	IsWeekend       bool   `json:"is_weekend" example:"false"`
	IsHoliday       bool   `json:"is_holiday" example:"false"`
}

// BusinessHoursResponse is returned by GET /api/v1/business-hours.
type BusinessHoursResponse struct {
	Region               string             `json:"region,omitempty" example:"US"`
	Timezone             string             `json:"timezone" example:"America/New_York"`
	Start                string             `json:"start" example:"2025-01-17T15:00:00-05:00"`
	End                  string             `json:"end" example:"2025-01-20T11:00:00-05:00"`
	TotalBusinessMinutes int                `json:"total_business_minutes" example:"120"`
	TotalBusinessHours   float64            `json:"total_business_hours" example:"2"`
	Breakdown            []BusinessHoursDay `json:"breakdown"`
}

// NextOccurrenceResponse is returned by GET /api/v1/next-occurrence.
type NextOccurrenceResponse struct {
	Pattern    string `json:"pattern" example:"weekly:dow=3@14:30"`
	Instant    string `json:"instant" example:"2025-01-15T14:30:00-05:00"`
	InstantUTC string `json:"instant_utc" example:"2025-01-15T19:30:00Z"`
	LocalDate  string `json:"local_date" example:"2025-01-15"`
	DaysUntil  int    `json:"days_until" example:"0"`
	Timezone   string `json:"timezone" example:"America/New_York"`
}

// NewHoliday maps a resolved holiday onto its wire form.
func NewHoliday(h holiday.ResolvedHoliday) Holiday {
	return Holiday{
		Name:            h.Name,
		Date:            h.RawDate.String(),
		ObservedDate:    h.ObservedDate.String(),
		Weekday:         h.RawDate.Weekday().String(),
		ObservedWeekday: h.ObservedDate.Weekday().String(),
		Shifted:         h.RawDate != h.ObservedDate,
	}
}

// NewHolidays maps a list, never returning nil so the JSON is [] not null.
func NewHolidays(hs []holiday.ResolvedHoliday) []Holiday {
	out := make([]Holiday, 0, len(hs))
	for _, h := range hs {
		out = append(out, NewHoliday(h))
	}
	return out
}

// NewDates renders dates as YYYY-MM-DD strings.
func NewDates(ds []civil.Date) []string {
	out := make([]string, 0, len(ds))
	for _, d := range ds {
		out = append(out, d.String())
	}
	return out
}

// NewBusinessHours maps a business-hours report; start and end are
// rendered in the report's zone.
func NewBusinessHours(region string, start, end time.Time, loc *time.Location, r holiday.HoursReport) BusinessHoursResponse {
	days := make([]BusinessHoursDay, 0, len(r.Days))
	for _, d := range r.Days {
		days = append(days, BusinessHoursDay{
			Date:            d.Date.String(),
			Weekday:         d.Date.Weekday().String(),
			BusinessMinutes: d.Minutes,
			IsWeekend:       d.IsWeekend,
			IsHoliday:       d.IsHoliday,
		})
	}
	return BusinessHoursResponse{
		Region:               region,
		Timezone:             loc.String(),
		Start:                start.In(loc).Format(time.RFC3339),
		End:                  end.In(loc).Format(time.RFC3339),
		TotalBusinessMinutes: r.TotalMinutes,
		TotalBusinessHours:   float64(r.TotalMinutes) / 60,
		Breakdown:            days,
	}
}

// NewNextOccurrence maps an occurrence and the pattern that produced it.
func NewNextOccurrence(p recurrence.Pattern, o recurrence.Occurrence) NextOccurrenceResponse {
	return NextOccurrenceResponse{
		Pattern:    p.String(),
		Instant:    o.Instant.Format(time.RFC3339),
		InstantUTC: o.Instant.UTC().Format(time.RFC3339),
		LocalDate:  civil.FromTime(o.Instant).String(),
		DaysUntil:  o.DaysUntil,
		Timezone:   o.Timezone,
	}
}
