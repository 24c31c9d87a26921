package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"

	"github.com/guttosm/holidaypulse/internal/civil"
	"github.com/guttosm/holidaypulse/internal/domain/dto"
	"github.com/guttosm/holidaypulse/internal/holiday"
	"github.com/guttosm/holidaypulse/internal/recurrence"
	"github.com/guttosm/holidaypulse/internal/service"
	"github.com/guttosm/holidaypulse/internal/timezone"
)

// mockCalendar implements service.CalendarService. It records the last
// occurrence query and returns err from every fallible method when set.
type mockCalendar struct {
	err       error
	holidays  []holiday.ResolvedHoliday
	check     service.DateCheck
	count     holiday.BusinessDayCount
	last      []civil.Date
	occ       recurrence.Occurrence
	lastQuery service.OccurrenceQuery
	lastN     int
	lastFrom  civil.Date
	lastExcl  bool
	lastCl    holiday.Closures
	hours     holiday.HoursReport
	lastHours service.HoursQuery
}

func (m *mockCalendar) Regions() []string { return []string{"BR", "US"} }

func (m *mockCalendar) Holidays(_ context.Context, _ string, _ int) ([]holiday.ResolvedHoliday, error) {
	return m.holidays, m.err
}

func (m *mockCalendar) CheckDate(_ context.Context, _ string, _ civil.Date) (service.DateCheck, error) {
	return m.check, m.err
}

func (m *mockCalendar) BusinessDays(_ context.Context, _ string, _, _ civil.Date, excl bool, cl holiday.Closures) (holiday.BusinessDayCount, error) {
	m.lastExcl, m.lastCl = excl, cl
	return m.count, m.err
}

func (m *mockCalendar) LastBusinessDays(_ context.Context, _ string, n int, from civil.Date, cl holiday.Closures) ([]civil.Date, error) {
	m.lastN, m.lastFrom, m.lastCl = n, from, cl
	return m.last, m.err
}

func (m *mockCalendar) BusinessHours(_ context.Context, q service.HoursQuery) (service.HoursResult, error) {
	m.lastHours = q
	return service.HoursResult{HoursReport: m.hours, Location: time.UTC}, m.err
}

func (m *mockCalendar) NextOccurrence(_ context.Context, q service.OccurrenceQuery) (recurrence.Occurrence, error) {
	m.lastQuery = q
	return m.occ, m.err
}

var _ service.CalendarService = (*mockCalendar)(nil)

func setupRouterWithMock(s service.CalendarService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s)
	r := gin.New()
	v1 := r.Group("/api/v1")
	v1.GET("/regions", h.GetRegions)
	v1.GET("/holidays", h.GetHolidays)
	v1.GET("/holidays/check", h.CheckDate)
	v1.GET("/business-days", h.GetBusinessDays)
	v1.GET("/business-days/last", h.GetLastBusinessDays)
	v1.GET("/business-hours", h.GetBusinessHours)
	v1.GET("/next-occurrence", h.GetNextOccurrence)
	return r
}

func doGet(r *gin.Engine, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func decode[T any](t *testing.T, body []byte) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(body, &out); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	return out
}

func date(y, m, d int) civil.Date { return civil.Date{Year: y, Month: m, Day: d} }

func TestHandlers_StatusCodes(t *testing.T) {
	down := errors.New("db down")

	cases := []struct {
		name   string
		svc    *mockCalendar
		query  string
		status int
	}{
		{name: "holidays missing region", svc: &mockCalendar{}, query: "/api/v1/holidays?year=2025", status: 400},
		{name: "holidays bad region", svc: &mockCalendar{}, query: "/api/v1/holidays?region=U1&year=2025", status: 400},
		{name: "holidays bad year", svc: &mockCalendar{}, query: "/api/v1/holidays?region=US&year=25", status: 400},
		{name: "holidays internal", svc: &mockCalendar{err: down}, query: "/api/v1/holidays?region=US&year=2025", status: 500},
		{name: "holidays ok", svc: &mockCalendar{}, query: "/api/v1/holidays?region=US&year=2025", status: 200},

		{name: "check missing date", svc: &mockCalendar{}, query: "/api/v1/holidays/check?region=US", status: 400},
		{name: "check invalid date", svc: &mockCalendar{}, query: "/api/v1/holidays/check?region=US&date=2025-02-30", status: 400},
		{name: "check internal", svc: &mockCalendar{err: down}, query: "/api/v1/holidays/check?region=US&date=2025-07-04", status: 500},
		{name: "check ok", svc: &mockCalendar{}, query: "/api/v1/holidays/check?region=US&date=2025-07-04", status: 200},

		{name: "business missing end", svc: &mockCalendar{}, query: "/api/v1/business-days?region=US&start=2025-01-01", status: 400},
		{name: "business bad flag", svc: &mockCalendar{}, query: "/api/v1/business-days?region=US&start=2025-01-01&end=2025-01-31&exclude_weekends=maybe", status: 400},
		{name: "business inverted range", svc: &mockCalendar{err: fmt.Errorf("wrap: %w", holiday.ErrInvalidRange)}, query: "/api/v1/business-days?region=US&start=2025-02-01&end=2025-01-01", status: 400},
		{name: "business too large", svc: &mockCalendar{err: holiday.ErrRangeTooLarge}, query: "/api/v1/business-days?region=US&start=1900-01-01&end=2100-01-01", status: 400},
		{name: "business bad observed flag", svc: &mockCalendar{}, query: "/api/v1/business-days?region=US&start=2025-01-01&end=2025-01-31&include_observed=often", status: 400},
		{name: "business bad custom date", svc: &mockCalendar{}, query: "/api/v1/business-days?region=US&start=2025-01-01&end=2025-01-31&custom_holidays=2025-01-02,2025-13-01", status: 400},
		{name: "business internal", svc: &mockCalendar{err: down}, query: "/api/v1/business-days?region=US&start=2025-01-01&end=2025-01-31", status: 500},
		{name: "business ok", svc: &mockCalendar{}, query: "/api/v1/business-days?region=US&start=2025-01-01&end=2025-01-31", status: 200},

		{name: "last n missing", svc: &mockCalendar{}, query: "/api/v1/business-days/last?region=BR", status: 400},
		{name: "last n zero", svc: &mockCalendar{}, query: "/api/v1/business-days/last?region=BR&n=0", status: 400},
		{name: "last n too big", svc: &mockCalendar{}, query: "/api/v1/business-days/last?region=BR&n=1001", status: 400},
		{name: "last bad from", svc: &mockCalendar{}, query: "/api/v1/business-days/last?region=BR&n=2&from=yesterday", status: 400},
		{name: "last bad custom date", svc: &mockCalendar{}, query: "/api/v1/business-days/last?region=BR&n=2&custom_holidays=soon", status: 400},
		{name: "last internal", svc: &mockCalendar{err: down}, query: "/api/v1/business-days/last?region=BR&n=2", status: 500},

		{name: "hours missing end", svc: &mockCalendar{}, query: "/api/v1/business-hours?start=2025-01-13T09:00:00Z", status: 400},
		{name: "hours bad start", svc: &mockCalendar{}, query: "/api/v1/business-hours?start=2025-01-13&end=2025-01-13T17:00:00Z", status: 400},
		{name: "hours bad region", svc: &mockCalendar{}, query: "/api/v1/business-hours?region=1&start=2025-01-13T09:00:00Z&end=2025-01-13T17:00:00Z", status: 400},
		{name: "hours bad window", svc: &mockCalendar{}, query: "/api/v1/business-hours?start=2025-01-13T09:00:00Z&end=2025-01-13T17:00:00Z&hours=17:00-09:00", status: 400},
		{name: "hours bad day window", svc: &mockCalendar{}, query: "/api/v1/business-hours?start=2025-01-13T09:00:00Z&end=2025-01-13T17:00:00Z&hours_fri=late", status: 400},
		{name: "hours bad weekend flag", svc: &mockCalendar{}, query: "/api/v1/business-hours?start=2025-01-13T09:00:00Z&end=2025-01-13T17:00:00Z&include_weekends=yes", status: 400},
		{name: "hours reversed", svc: &mockCalendar{err: holiday.ErrInvalidRange}, query: "/api/v1/business-hours?start=2025-01-14T09:00:00Z&end=2025-01-13T17:00:00Z", status: 400},
		{name: "hours internal", svc: &mockCalendar{err: down}, query: "/api/v1/business-hours?start=2025-01-13T09:00:00Z&end=2025-01-13T17:00:00Z", status: 500},

		{name: "next unknown pattern", svc: &mockCalendar{}, query: "/api/v1/next-occurrence?pattern=hourly", status: 400},
		{name: "next bad time", svc: &mockCalendar{}, query: "/api/v1/next-occurrence?pattern=daily&time=25:00", status: 400},
		{name: "next monthly without day", svc: &mockCalendar{}, query: "/api/v1/next-occurrence?pattern=monthly", status: 400},
		{name: "next bad overflow", svc: &mockCalendar{}, query: "/api/v1/next-occurrence?pattern=monthly&day_of_month=31&overflow=wrap", status: 400},
		{name: "next bad start_from", svc: &mockCalendar{}, query: "/api/v1/next-occurrence?pattern=daily&start_from=2025-01-15", status: 400},
		{name: "next bad month", svc: &mockCalendar{}, query: "/api/v1/next-occurrence?pattern=yearly&month=jan&day=1", status: 400},
		{name: "next invalid timezone", svc: &mockCalendar{err: timezone.ErrInvalidTimezone}, query: "/api/v1/next-occurrence?pattern=daily&timezone=Mars/Olympus", status: 400},
		{name: "next invalid pattern", svc: &mockCalendar{err: recurrence.ErrInvalidPattern}, query: "/api/v1/next-occurrence?pattern=weekly", status: 400},
		{name: "next internal", svc: &mockCalendar{err: down}, query: "/api/v1/next-occurrence?pattern=daily", status: 500},
		{name: "next ok", svc: &mockCalendar{}, query: "/api/v1/next-occurrence?pattern=daily", status: 200},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doGet(setupRouterWithMock(tc.svc), tc.query)
			if w.Code != tc.status {
				t.Fatalf("want %d, got %d body=%s", tc.status, w.Code, w.Body.String())
			}
			if tc.status >= 400 {
				body := decode[dto.ErrorResponse](t, w.Body.Bytes())
				if body.Message == "" {
					t.Fatalf("error body without message: %s", w.Body.String())
				}
				if tc.status == 500 && body.ErrorDetails != "" {
					t.Fatalf("internal error details leaked: %q", body.ErrorDetails)
				}
			}
		})
	}
}

func TestGetRegions(t *testing.T) {
	w := doGet(setupRouterWithMock(&mockCalendar{}), "/api/v1/regions")
	got := decode[dto.RegionsResponse](t, w.Body.Bytes())
	if diff := cmp.Diff([]string{"BR", "US"}, got.Regions); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestGetHolidays_Body(t *testing.T) {
	svc := &mockCalendar{holidays: []holiday.ResolvedHoliday{
		{Name: "Independence Day", RawDate: date(2026, 7, 4), ObservedDate: date(2026, 7, 3)},
	}}
	w := doGet(setupRouterWithMock(svc), "/api/v1/holidays?region=us&year=2026")
	got := decode[dto.HolidaysResponse](t, w.Body.Bytes())

	want := dto.HolidaysResponse{
		Region: "US",
		Year:   2026,
		Count:  1,
		Holidays: []dto.Holiday{{
			Name: "Independence Day", Date: "2026-07-04", ObservedDate: "2026-07-03",
			Weekday: "Saturday", ObservedWeekday: "Friday", Shifted: true,
		}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestGetHolidays_EmptyIsArray(t *testing.T) {
	w := doGet(setupRouterWithMock(&mockCalendar{}), "/api/v1/holidays?region=XX&year=2025")
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(w.Body.Bytes(), &raw); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if string(raw["holidays"]) != "[]" {
		t.Fatalf("holidays = %s, want []", raw["holidays"])
	}
}

func TestGetBusinessDays_ExcludeWeekendsDefault(t *testing.T) {
	cases := []struct {
		suffix string
		want   bool
	}{
		{"", true},
		{"&exclude_weekends=false", false},
		{"&exclude_weekends=true", true},
	}
	for _, tc := range cases {
		svc := &mockCalendar{count: holiday.BusinessDayCount{TotalDays: 31, BusinessDays: 21, WeekendDays: 8, HolidayCount: 2}}
		w := doGet(setupRouterWithMock(svc), "/api/v1/business-days?region=US&start=2025-01-01&end=2025-01-31"+tc.suffix)
		if w.Code != 200 || svc.lastExcl != tc.want {
			t.Fatalf("%q: code=%d exclude=%v", tc.suffix, w.Code, svc.lastExcl)
		}
		got := decode[dto.BusinessDaysResponse](t, w.Body.Bytes())
		if got.BusinessDays != 21 || got.ExcludeWeekends != tc.want || got.Start != "2025-01-01" {
			t.Fatalf("unexpected body %+v", got)
		}
	}
}

func TestGetBusinessDays_Closures(t *testing.T) {
	cases := []struct {
		name   string
		suffix string
		want   holiday.Closures
	}{
		{name: "defaults", want: holiday.Closures{}},
		{name: "raw dates", suffix: "&include_observed=false", want: holiday.Closures{RawDates: true}},
		{name: "observed explicit", suffix: "&include_observed=true", want: holiday.Closures{}},
		{
			name:   "comma separated",
			suffix: "&custom_holidays=2025-01-02,%202025-01-03,",
			want:   holiday.Closures{Extra: []civil.Date{date(2025, 1, 2), date(2025, 1, 3)}},
		},
		{
			name:   "repeated",
			suffix: "&custom_holidays=2025-01-02&custom_holidays=2025-01-10&include_observed=0",
			want:   holiday.Closures{RawDates: true, Extra: []civil.Date{date(2025, 1, 2), date(2025, 1, 10)}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mockCalendar{}
			w := doGet(setupRouterWithMock(svc), "/api/v1/business-days?region=US&start=2025-01-01&end=2025-01-31"+tc.suffix)
			if w.Code != 200 {
				t.Fatalf("want 200, got %d body=%s", w.Code, w.Body.String())
			}
			if diff := cmp.Diff(tc.want, svc.lastCl); diff != "" {
				t.Fatalf("closures (-want +got):\n%s", diff)
			}
			got := decode[dto.BusinessDaysResponse](t, w.Body.Bytes())
			if got.IncludeObserved == tc.want.RawDates || got.CustomHolidays != len(tc.want.Extra) {
				t.Fatalf("unexpected body %+v", got)
			}
		})
	}
}

func TestGetBusinessDays_TooManyCustomDates(t *testing.T) {
	var b strings.Builder
	d := date(2025, 1, 1)
	for i := 0; i <= maxCustomDates; i++ {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(d.AddDays(i).String())
	}
	w := doGet(setupRouterWithMock(&mockCalendar{}), "/api/v1/business-days?region=US&start=2025-01-01&end=2026-12-31&custom_holidays="+b.String())
	if w.Code != 400 {
		t.Fatalf("want 400, got %d", w.Code)
	}
}

func TestGetLastBusinessDays_Closures(t *testing.T) {
	svc := &mockCalendar{}
	w := doGet(setupRouterWithMock(svc), "/api/v1/business-days/last?region=US&n=3&from=2026-07-06&include_observed=false&custom_holidays=2026-07-06")
	if w.Code != 200 {
		t.Fatalf("want 200, got %d", w.Code)
	}
	want := holiday.Closures{RawDates: true, Extra: []civil.Date{date(2026, 7, 6)}}
	if diff := cmp.Diff(want, svc.lastCl); diff != "" {
		t.Fatalf("closures (-want +got):\n%s", diff)
	}
}

func TestGetBusinessHours_QueryParsing(t *testing.T) {
	svc := &mockCalendar{}
	target := "/api/v1/business-hours?region=us&start=2025-01-17T15:00:00-05:00&end=2025-01-20T11:00:00-05:00" +
		"&timezone=America/New_York&hours=08:30-16:30&hours_mon=10:00-14:00&hours_fri=Closed" +
		"&include_weekends=true&include_observed=false&custom_holidays=2025-01-21"
	w := doGet(setupRouterWithMock(svc), target)
	if w.Code != 200 {
		t.Fatalf("want 200, got %d body=%s", w.Code, w.Body.String())
	}

	mon := holiday.Window{Open: 600, Close: 840}
	want := service.HoursQuery{
		Region:   "US",
		Start:    time.Date(2025, 1, 17, 20, 0, 0, 0, time.UTC),
		End:      time.Date(2025, 1, 20, 16, 0, 0, 0, time.UTC),
		Timezone: strPtr("America/New_York"),
		Schedule: holiday.Schedule{
			Default: holiday.Window{Open: 510, Close: 990},
			Days:    map[time.Weekday]*holiday.Window{time.Monday: &mon, time.Friday: nil},
		},
		IncludeWeekends: true,
		Closures:        holiday.Closures{RawDates: true, Extra: []civil.Date{date(2025, 1, 21)}},
	}
	got := svc.lastHours
	if !got.Start.Equal(want.Start) || !got.End.Equal(want.End) {
		t.Fatalf("instants %s..%s", got.Start, got.End)
	}
	got.Start, got.End = want.Start, want.End
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestGetBusinessHours_Body(t *testing.T) {
	svc := &mockCalendar{hours: holiday.HoursReport{
		TotalMinutes: 90,
		Days: []holiday.DayHours{
			{Date: date(2025, 1, 17), Minutes: 90},
			{Date: date(2025, 1, 18), IsWeekend: true},
		},
	}}
	w := doGet(setupRouterWithMock(svc), "/api/v1/business-hours?start=2025-01-17T15:30:00Z&end=2025-01-18T12:00:00Z")
	if w.Code != 200 {
		t.Fatalf("want 200, got %d", w.Code)
	}
	if svc.lastHours.Region != "" || svc.lastHours.Timezone != nil {
		t.Fatalf("absent region and timezone must stay unset: %+v", svc.lastHours)
	}

	want := dto.BusinessHoursResponse{
		Timezone:             "UTC",
		Start:                "2025-01-17T15:30:00Z",
		End:                  "2025-01-18T12:00:00Z",
		TotalBusinessMinutes: 90,
		TotalBusinessHours:   1.5,
		Breakdown: []dto.BusinessHoursDay{
			{Date: "2025-01-17", Weekday: "Friday", BusinessMinutes: 90},
			{Date: "2025-01-18", Weekday: "Saturday", IsWeekend: true},
		},
	}
	if diff := cmp.Diff(want, decode[dto.BusinessHoursResponse](t, w.Body.Bytes())); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestGetLastBusinessDays(t *testing.T) {
	svc := &mockCalendar{last: []civil.Date{date(2025, 9, 19), date(2025, 9, 18)}}
	w := doGet(setupRouterWithMock(svc), "/api/v1/business-days/last?region=br&n=2&from=2025-09-20")
	if w.Code != 200 {
		t.Fatalf("want 200, got %d", w.Code)
	}
	if svc.lastN != 2 || svc.lastFrom != date(2025, 9, 20) {
		t.Fatalf("service got n=%d from=%v", svc.lastN, svc.lastFrom)
	}
	want := dto.LastBusinessDaysResponse{Region: "BR", From: "2025-09-20", Count: 2, Dates: []string{"2025-09-19", "2025-09-18"}}
	if diff := cmp.Diff(want, decode[dto.LastBusinessDaysResponse](t, w.Body.Bytes())); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}

	// Without from the anchor is today in UTC.
	before := civil.FromTime(time.Now().UTC())
	doGet(setupRouterWithMock(svc), "/api/v1/business-days/last?region=br&n=1")
	after := civil.FromTime(time.Now().UTC())
	if svc.lastFrom != before && svc.lastFrom != after {
		t.Fatalf("default from = %v, want today", svc.lastFrom)
	}
}

func TestGetNextOccurrence_QueryParsing(t *testing.T) {
	wed := time.Wednesday
	cases := []struct {
		name  string
		query string
		want  recurrence.Pattern
		tz    *string
	}{
		{
			name:  "weekly with time",
			query: "pattern=weekly&day_of_week=3&time=14:30&timezone=America/New_York",
			want:  recurrence.Pattern{Frequency: recurrence.Weekly, DayOfWeek: &wed, Time: &recurrence.TimeOfDay{Hour: 14, Minute: 30}},
			tz:    strPtr("America/New_York"),
		},
		{
			name:  "monthly last day",
			query: "pattern=monthly&day_of_month=last",
			want:  recurrence.Pattern{Frequency: recurrence.Monthly, DayOfMonth: recurrence.LastDay},
		},
		{
			name:  "monthly rollover",
			query: "pattern=Monthly&day_of_month=31&overflow=rollover",
			want:  recurrence.Pattern{Frequency: recurrence.Monthly, DayOfMonth: 31, Overflow: civil.OverflowRollover},
		},
		{
			name:  "yearly",
			query: "pattern=yearly&month=2&day=29",
			want:  recurrence.Pattern{Frequency: recurrence.Yearly, Month: 2, Day: 29},
		},
		{
			name:  "empty timezone is kept",
			query: "pattern=daily&timezone=",
			want:  recurrence.Pattern{Frequency: recurrence.Daily},
			tz:    strPtr(""),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mockCalendar{}
			w := doGet(setupRouterWithMock(svc), "/api/v1/next-occurrence?"+tc.query)
			if w.Code != 200 {
				t.Fatalf("want 200, got %d body=%s", w.Code, w.Body.String())
			}
			if diff := cmp.Diff(tc.want, svc.lastQuery.Pattern); diff != "" {
				t.Fatalf("pattern (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tc.tz, svc.lastQuery.Timezone); diff != "" {
				t.Fatalf("timezone (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGetNextOccurrence_Body(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	svc := &mockCalendar{occ: recurrence.Occurrence{
		Instant:   time.Date(2025, 1, 15, 14, 30, 0, 0, ny),
		DaysUntil: 0,
		Timezone:  "America/New_York",
	}}
	w := doGet(setupRouterWithMock(svc), "/api/v1/next-occurrence?pattern=weekly&day_of_week=3&time=14:30&start_from=2025-01-15T10:00:00Z")
	if w.Code != 200 {
		t.Fatalf("want 200, got %d", w.Code)
	}
	if svc.lastQuery.Reference == nil || !svc.lastQuery.Reference.Equal(time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)) {
		t.Fatalf("start_from not forwarded: %v", svc.lastQuery.Reference)
	}
	if svc.lastQuery.Timezone != nil {
		t.Fatalf("absent timezone must stay nil")
	}

	want := dto.NextOccurrenceResponse{
		Pattern:    "weekly:dow=3@14:30",
		Instant:    "2025-01-15T14:30:00-05:00",
		InstantUTC: "2025-01-15T19:30:00Z",
		LocalDate:  "2025-01-15",
		DaysUntil:  0,
		Timezone:   "America/New_York",
	}
	if diff := cmp.Diff(want, decode[dto.NextOccurrenceResponse](t, w.Body.Bytes())); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func strPtr(s string) *string { return &s }
