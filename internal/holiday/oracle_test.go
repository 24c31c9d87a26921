package holiday

import (
	"testing"
	"time"

	cal "github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/us"

	"github.com/guttosm/holidaypulse/internal/civil"
)

// Cross-checks the US table against rickar/cal's federal definitions.
func TestForYear_USMatchesRickarCal(t *testing.T) {
	reference := map[string]*cal.Holiday{
		"New Year's Day":                       us.NewYear,
		"Martin Luther King Jr. Day":           us.MlkDay,
		"Presidents Day":                       us.PresidentsDay,
		"Memorial Day":                         us.MemorialDay,
		"Juneteenth National Independence Day": us.Juneteenth,
		"Independence Day":                     us.IndependenceDay,
		"Labor Day":                            us.LaborDay,
		"Columbus Day":                         us.ColumbusDay,
		"Veterans Day":                         us.VeteransDay,
		"Thanksgiving":                         us.ThanksgivingDay,
		"Christmas Day":                        us.ChristmasDay,
	}

	// Juneteenth became federal in 2021.
	for year := 2021; year <= 2040; year++ {
		got := ForYear("US", year)
		if len(got) != len(reference) {
			t.Fatalf("%d: %d holidays, want %d", year, len(got), len(reference))
		}
		for _, h := range got {
			ref, ok := reference[h.Name]
			if !ok {
				t.Fatalf("%d: no reference for %q", year, h.Name)
			}
			actual, observed := ref.Calc(year)
			if h.RawDate != civil.FromTime(actual) {
				t.Errorf("%d %s: raw %s, rickar %s", year, h.Name, h.RawDate, actual.Format(time.DateOnly))
			}
			if h.ObservedDate != civil.FromTime(observed) {
				t.Errorf("%d %s: observed %s, rickar %s", year, h.Name, h.ObservedDate, observed.Format(time.DateOnly))
			}
		}
	}
}

func TestIsHoliday_AgreesWithRickarBusinessCalendar(t *testing.T) {
	bc := cal.NewBusinessCalendar()
	bc.AddHoliday(
		us.MlkDay,
		us.PresidentsDay,
		us.MemorialDay,
		us.LaborDay,
		us.ColumbusDay,
		us.ThanksgivingDay,
	)
	floating := map[string]bool{
		"Martin Luther King Jr. Day": true,
		"Presidents Day":             true,
		"Memorial Day":               true,
		"Labor Day":                  true,
		"Columbus Day":               true,
		"Thanksgiving":               true,
	}

	for d := date(2024, 1, 1); d.Year < 2027; d = d.AddDays(1) {
		var ours bool
		for _, h := range On(d, "US") {
			if floating[h.Name] {
				ours = true
			}
		}
		actual, _, _ := bc.IsHoliday(d.In(time.UTC))
		if ours != actual {
			t.Fatalf("%s: ours=%v rickar=%v", d, ours, actual)
		}
	}
}
