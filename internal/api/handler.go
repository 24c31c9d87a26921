package api

import (
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/holidaypulse/internal/civil"
	"github.com/guttosm/holidaypulse/internal/domain/dto"
	"github.com/guttosm/holidaypulse/internal/holiday"
	"github.com/guttosm/holidaypulse/internal/middleware"
	"github.com/guttosm/holidaypulse/internal/recurrence"
	"github.com/guttosm/holidaypulse/internal/service"
	"github.com/guttosm/holidaypulse/internal/timezone"
)

const (
	minYear          = 1000
	maxYear          = 9999
	maxLastBusinessN = 1000
	maxCustomDates   = 365
)

var regionPattern = regexp.MustCompile(`^[A-Za-z]{2,3}$`)

// errBadParam marks a query parameter that failed to parse.
var errBadParam = errors.New("invalid query parameter")

// Handler provides HTTP handlers for the holiday and recurrence endpoints.
//
// Responsibilities:
//   - Validate incoming HTTP query parameters
//   - Delegate to the CalendarService
//   - Translate service results into response DTOs
//   - Map validation failures to 400 and everything else to 500
type Handler struct {
	svc service.CalendarService
}

// NewHandler constructs a new Handler instance.
//
// Parameters:
//   - svc (service.CalendarService): business layer used by every endpoint.
//
// Returns:
//   - *Handler: A handler ready to be registered with the router.
func NewHandler(svc service.CalendarService) *Handler {
	return &Handler{svc: svc}
}

// GetRegions godoc
// @Summary      List supported regions
// @Description  Region codes that have a holiday table. Other codes are accepted but resolve to no holidays.
// @Tags         holidays
// @Produce      json
// @Success      200  {object}  dto.RegionsResponse  "Success"
// @Router       /api/v1/regions [get]
func (h *Handler) GetRegions(c *gin.Context) {
	c.JSON(http.StatusOK, dto.RegionsResponse{Regions: h.svc.Regions()})
}

// GetHolidays handles GET /api/v1/holidays requests.
//
// Query Parameters:
//   - region (string, required): 2-3 letter region code (e.g., "US").
//   - year (int, required): four-digit year.
//
// Responses:
//   - 200 OK: HolidaysResponse ordered by date; empty for unsupported regions.
//   - 400 Bad Request: Missing or invalid query parameters.
//   - 500 Internal Server Error: Unexpected failure.
//
// GetHolidays godoc
// @Summary      Holidays of a region for a year
// @Description  Resolves every holiday rule of the region for the year, with raw and observed dates
// @Tags         holidays
// @Produce      json
// @Param        region  query     string  true  "Region code" example(US)
// @Param        year    query     int     true  "Four-digit year" example(2025)
// @Success      200     {object}  dto.HolidaysResponse  "Success"
// @Failure      400     {object}  dto.ErrorResponse     "Bad Request"
// @Failure      500     {object}  dto.ErrorResponse     "Internal Error"
// @Router       /api/v1/holidays [get]
func (h *Handler) GetHolidays(c *gin.Context) {
	region, err := regionParam(c)
	if err != nil {
		badRequest(c, err)
		return
	}
	year, err := yearParam(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	hs, err := h.svc.Holidays(c.Request.Context(), region, year)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.HolidaysResponse{
		Region:   holiday.Normalize(region),
		Year:     year,
		Count:    len(hs),
		Holidays: dto.NewHolidays(hs),
	})
}

// CheckDate godoc
// @Summary      Check a single date
// @Description  Reports whether a date is an observed holiday or a business day in the region
// @Tags         holidays
// @Produce      json
// @Param        region  query     string  true  "Region code" example(US)
// @Param        date    query     string  true  "Date in YYYY-MM-DD" example(2025-07-04)
// @Success      200     {object}  dto.DateCheckResponse  "Success"
// @Failure      400     {object}  dto.ErrorResponse      "Bad Request"
// @Failure      500     {object}  dto.ErrorResponse      "Internal Error"
// @Router       /api/v1/holidays/check [get]
func (h *Handler) CheckDate(c *gin.Context) {
	region, err := regionParam(c)
	if err != nil {
		badRequest(c, err)
		return
	}
	date, err := dateParam(c, "date", true)
	if err != nil {
		badRequest(c, err)
		return
	}

	check, err := h.svc.CheckDate(c.Request.Context(), region, date)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DateCheckResponse{
		Date:          check.Date.String(),
		Region:        check.Region,
		Weekday:       check.Weekday.String(),
		IsHoliday:     check.IsHoliday,
		IsBusinessDay: check.IsBusinessDay,
		Holidays:      dto.NewHolidays(check.Holidays),
	})
}

// GetBusinessDays godoc
// @Summary      Count business days
// @Description  Categorises every day of the inclusive range as business day, weekend day or holiday
// @Tags         business-days
// @Produce      json
// @Param        region            query     string  true   "Region code" example(US)
// @Param        start             query     string  true   "First day, YYYY-MM-DD" example(2025-01-01)
// @Param        end               query     string  true   "Last day, YYYY-MM-DD" example(2025-01-31)
// @Param        exclude_weekends  query     bool    false  "Exclude weekends from the business count (default true)"
// @Param        include_observed  query     bool    false  "Close on observed dates; false uses the rule dates (default true)"
// @Param        custom_holidays   query     string  false  "Extra closed dates, comma separated YYYY-MM-DD" example(2025-01-02,2025-01-03)
// @Success      200               {object}  dto.BusinessDaysResponse  "Success"
// @Failure      400               {object}  dto.ErrorResponse         "Bad Request"
// @Failure      500               {object}  dto.ErrorResponse         "Internal Error"
// @Router       /api/v1/business-days [get]
func (h *Handler) GetBusinessDays(c *gin.Context) {
	region, err := regionParam(c)
	if err != nil {
		badRequest(c, err)
		return
	}
	start, err := dateParam(c, "start", true)
	if err != nil {
		badRequest(c, err)
		return
	}
	end, err := dateParam(c, "end", true)
	if err != nil {
		badRequest(c, err)
		return
	}
	exclude := true
	if s := c.Query("exclude_weekends"); s != "" {
		if exclude, err = strconv.ParseBool(s); err != nil {
			badRequest(c, fmt.Errorf("%w: exclude_weekends must be a boolean", errBadParam))
			return
		}
	}

	cl, err := closuresParam(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	count, err := h.svc.BusinessDays(c.Request.Context(), region, start, end, exclude, cl)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BusinessDaysResponse{
		Region:          holiday.Normalize(region),
		Start:           start.String(),
		End:             end.String(),
		ExcludeWeekends: exclude,
		IncludeObserved: !cl.RawDates,
		CustomHolidays:  len(cl.Extra),
		TotalDays:       count.TotalDays,
		BusinessDays:    count.BusinessDays,
		WeekendDays:     count.WeekendDays,
		HolidayCount:    count.HolidayCount,
	})
}

// GetLastBusinessDays godoc
// @Summary      Most recent business days
// @Description  The last n business days up to and including a date, most recent first
// @Tags         business-days
// @Produce      json
// @Param        region  query     string  true   "Region code" example(BR)
// @Param        n       query     int     true   "How many days (1-1000)" example(5)
// @Param        from    query     string  false  "Anchor date, YYYY-MM-DD (default today UTC)" example(2025-09-20)
// @Param        include_observed  query  bool    false  "Close on observed dates; false uses the rule dates (default true)"
// @Param        custom_holidays   query  string  false  "Extra closed dates, comma separated YYYY-MM-DD"
// @Success      200     {object}  dto.LastBusinessDaysResponse  "Success"
// @Failure      400     {object}  dto.ErrorResponse             "Bad Request"
// @Failure      500     {object}  dto.ErrorResponse             "Internal Error"
// @Router       /api/v1/business-days/last [get]
func (h *Handler) GetLastBusinessDays(c *gin.Context) {
	region, err := regionParam(c)
	if err != nil {
		badRequest(c, err)
		return
	}
	n, err := strconv.Atoi(c.Query("n"))
	if err != nil || n < 1 || n > maxLastBusinessN {
		badRequest(c, fmt.Errorf("%w: n must be an integer between 1 and %d", errBadParam, maxLastBusinessN))
		return
	}
	from, err := dateParam(c, "from", false)
	if err != nil {
		badRequest(c, err)
		return
	}
	if from == (civil.Date{}) {
		from = civil.FromTime(time.Now().UTC())
	}

	cl, err := closuresParam(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	days, err := h.svc.LastBusinessDays(c.Request.Context(), region, n, from, cl)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LastBusinessDaysResponse{
		Region: holiday.Normalize(region),
		From:   from.String(),
		Count:  len(days),
		Dates:  dto.NewDates(days),
	})
}

// GetBusinessHours godoc
// @Summary      Business hours between two instants
// @Description  Minutes of [start, end] inside the opening windows, day by day in the timezone.
// @Description  Weekends are closed unless include_weekends; region holidays and custom_holidays close a day.
// @Tags         business-days
// @Produce      json
// @Param        start             query     string  true   "RFC3339 start instant" example(2025-01-17T15:00:00-05:00)
// @Param        end               query     string  true   "RFC3339 end instant" example(2025-01-20T11:00:00-05:00)
// @Param        region            query     string  false  "Region code whose holidays close a day" example(US)
// @Param        timezone          query     string  false  "IANA timezone" example(America/New_York)
// @Param        hours             query     string  false  "Default window HH:MM-HH:MM (default 09:00-17:00)" example(09:00-17:00)
// @Param        hours_mon         query     string  false  "Monday window or closed; hours_sun..hours_sat likewise"
// @Param        include_weekends  query     bool    false  "Count Saturday and Sunday (default false)"
// @Param        include_observed  query     bool    false  "Close on observed dates; false uses the rule dates (default true)"
// @Param        custom_holidays   query     string  false  "Extra closed dates, comma separated YYYY-MM-DD"
// @Success      200               {object}  dto.BusinessHoursResponse  "Success"
// @Failure      400               {object}  dto.ErrorResponse          "Bad Request"
// @Failure      500               {object}  dto.ErrorResponse          "Internal Error"
// @Router       /api/v1/business-hours [get]
func (h *Handler) GetBusinessHours(c *gin.Context) {
	q, err := hoursQuery(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	res, err := h.svc.BusinessHours(c.Request.Context(), q)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBusinessHours(q.Region, q.Start, q.End, res.Location, res.HoursReport))
}

// GetNextOccurrence godoc
// @Summary      Next occurrence of a recurrence
// @Description  First instant strictly after start_from (default now) matching the pattern in the timezone.
// @Description  An absent timezone uses the server default; an empty one means UTC.
// @Tags         recurrence
// @Produce      json
// @Param        pattern       query     string  true   "daily, weekly, monthly or yearly" example(weekly)
// @Param        day_of_week   query     int     false  "0=Sunday..6=Saturday (weekly)" example(3)
// @Param        day_of_month  query     string  false  "1-31, or last / -1 (monthly)" example(31)
// @Param        month         query     int     false  "1-12 (yearly, with day)" example(7)
// @Param        day           query     int     false  "1-31 (yearly, with month)" example(4)
// @Param        time          query     string  false  "HH:MM local time, default 00:00" example(14:30)
// @Param        timezone      query     string  false  "IANA timezone" example(America/New_York)
// @Param        start_from    query     string  false  "RFC3339 reference instant" example(2025-01-15T10:00:00Z)
// @Param        overflow      query     string  false  "clamp (default) or rollover, for monthly days past month end"
// @Success      200           {object}  dto.NextOccurrenceResponse  "Success"
// @Failure      400           {object}  dto.ErrorResponse           "Bad Request"
// @Failure      500           {object}  dto.ErrorResponse           "Internal Error"
// @Router       /api/v1/next-occurrence [get]
func (h *Handler) GetNextOccurrence(c *gin.Context) {
	q, err := occurrenceQuery(c)
	if err != nil {
		badRequest(c, err)
		return
	}

	occ, err := h.svc.NextOccurrence(c.Request.Context(), q)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewNextOccurrence(q.Pattern, occ))
}

func occurrenceQuery(c *gin.Context) (service.OccurrenceQuery, error) {
	var q service.OccurrenceQuery

	freq, err := recurrence.ParseFrequency(c.Query("pattern"))
	if err != nil {
		return q, err
	}
	p := recurrence.Pattern{Frequency: freq}

	if s := c.Query("time"); s != "" {
		tod, err := recurrence.ParseTimeOfDay(s)
		if err != nil {
			return q, err
		}
		p.Time = &tod
	}

	switch freq {
	case recurrence.Weekly:
		if s := c.Query("day_of_week"); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil {
				return q, fmt.Errorf("%w: day_of_week must be an integer", errBadParam)
			}
			wd := time.Weekday(n)
			p.DayOfWeek = &wd
		}
	case recurrence.Monthly:
		s := strings.ToLower(strings.TrimSpace(c.Query("day_of_month")))
		switch s {
		case "":
			return q, fmt.Errorf("%w: day_of_month is required for monthly patterns", errBadParam)
		case "last", "-1":
			p.DayOfMonth = recurrence.LastDay
		default:
			n, err := strconv.Atoi(s)
			if err != nil {
				return q, fmt.Errorf("%w: day_of_month must be 1-31 or last", errBadParam)
			}
			p.DayOfMonth = n
		}
		if p.Overflow, err = civil.ParseOverflowPolicy(strings.ToLower(c.Query("overflow"))); err != nil {
			return q, fmt.Errorf("%w: %v", errBadParam, err)
		}
	case recurrence.Yearly:
		if p.Month, err = optionalInt(c, "month"); err != nil {
			return q, err
		}
		if p.Day, err = optionalInt(c, "day"); err != nil {
			return q, err
		}
	}
	q.Pattern = p

	if tz, ok := c.GetQuery("timezone"); ok {
		q.Timezone = &tz
	}
	if s := c.Query("start_from"); s != "" {
		ref, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return q, fmt.Errorf("%w: start_from must be RFC3339", errBadParam)
		}
		q.Reference = &ref
	}
	return q, nil
}

// weekdayKeys are the per-day schedule parameters, indexed by time.Weekday.
var weekdayKeys = [...]string{"hours_sun", "hours_mon", "hours_tue", "hours_wed", "hours_thu", "hours_fri", "hours_sat"}

func hoursQuery(c *gin.Context) (service.HoursQuery, error) {
	var q service.HoursQuery

	if _, ok := c.GetQuery("region"); ok {
		region, err := regionParam(c)
		if err != nil {
			return q, err
		}
		q.Region = holiday.Normalize(region)
	}
	var err error
	if q.Start, err = instantParam(c, "start"); err != nil {
		return q, err
	}
	if q.End, err = instantParam(c, "end"); err != nil {
		return q, err
	}
	if tz, ok := c.GetQuery("timezone"); ok {
		q.Timezone = &tz
	}

	if s := c.Query("hours"); s != "" {
		if q.Schedule.Default, err = holiday.ParseWindow(s); err != nil {
			return q, err
		}
	}
	for wd, key := range weekdayKeys {
		s := strings.ToLower(strings.TrimSpace(c.Query(key)))
		if s == "" {
			continue
		}
		if q.Schedule.Days == nil {
			q.Schedule.Days = make(map[time.Weekday]*holiday.Window)
		}
		if s == "closed" {
			q.Schedule.Days[time.Weekday(wd)] = nil
			continue
		}
		w, err := holiday.ParseWindow(s)
		if err != nil {
			return q, fmt.Errorf("%s: %w", key, err)
		}
		q.Schedule.Days[time.Weekday(wd)] = &w
	}

	if s := c.Query("include_weekends"); s != "" {
		if q.IncludeWeekends, err = strconv.ParseBool(s); err != nil {
			return q, fmt.Errorf("%w: include_weekends must be a boolean", errBadParam)
		}
	}
	q.Closures, err = closuresParam(c)
	return q, err
}

func instantParam(c *gin.Context, name string) (time.Time, error) {
	s := c.Query(name)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: %s is required (RFC3339)", errBadParam, name)
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be RFC3339", errBadParam, name)
	}
	return t, nil
}

// closuresParam reads include_observed (default true) and custom_holidays.
// custom_holidays may be repeated, comma separated, or both.
func closuresParam(c *gin.Context) (holiday.Closures, error) {
	var cl holiday.Closures
	if s := c.Query("include_observed"); s != "" {
		observed, err := strconv.ParseBool(s)
		if err != nil {
			return cl, fmt.Errorf("%w: include_observed must be a boolean", errBadParam)
		}
		cl.RawDates = !observed
	}
	for _, v := range c.QueryArray("custom_holidays") {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if len(cl.Extra) == maxCustomDates {
				return cl, fmt.Errorf("%w: at most %d custom_holidays", errBadParam, maxCustomDates)
			}
			d, err := civil.Parse(part)
			if err != nil {
				return cl, fmt.Errorf("custom_holidays: %w", err)
			}
			cl.Extra = append(cl.Extra, d)
		}
	}
	return cl, nil
}

func regionParam(c *gin.Context) (string, error) {
	region := strings.TrimSpace(c.Query("region"))
	if !regionPattern.MatchString(region) {
		return "", fmt.Errorf("%w: region must be a 2-3 letter code", errBadParam)
	}
	return region, nil
}

func yearParam(c *gin.Context) (int, error) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < minYear || year > maxYear {
		return 0, fmt.Errorf("%w: year must be a four-digit number", errBadParam)
	}
	return year, nil
}

// dateParam parses a YYYY-MM-DD parameter. An optional absent parameter
// yields the zero Date.
func dateParam(c *gin.Context, name string, required bool) (civil.Date, error) {
	s := c.Query(name)
	if s == "" {
		if required {
			return civil.Date{}, fmt.Errorf("%w: %s is required (YYYY-MM-DD)", errBadParam, name)
		}
		return civil.Date{}, nil
	}
	d, err := civil.Parse(s)
	if err != nil {
		return civil.Date{}, fmt.Errorf("%s: %w", name, err)
	}
	return d, nil
}

func optionalInt(c *gin.Context, name string) (int, error) {
	s := c.Query(name)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", errBadParam, name)
	}
	return n, nil
}

func badRequest(c *gin.Context, err error) {
	middleware.AbortWithError(c, http.StatusBadRequest, "invalid request", err)
}

// fail maps service errors: validation sentinels are the caller's fault,
// anything else is ours and is only recorded in c.Errors.
func (h *Handler) fail(c *gin.Context, err error) {
	if isValidationError(err) {
		badRequest(c, err)
		return
	}
	_ = c.Error(err)
	middleware.AbortWithError(c, http.StatusInternalServerError, "internal server error", nil)
}

func isValidationError(err error) bool {
	for _, target := range []error{
		errBadParam,
		civil.ErrInvalidDate,
		timezone.ErrInvalidTimezone,
		recurrence.ErrInvalidPattern,
		holiday.ErrInvalidRange,
		holiday.ErrRangeTooLarge,
		holiday.ErrInvalidHours,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
