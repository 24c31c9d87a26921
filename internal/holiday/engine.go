package holiday

import (
	"sort"
	"strings"

	"github.com/guttosm/holidaypulse/internal/civil"
)

// Normalize upper-cases and trims a region code and resolves aliases.
func Normalize(region string) string {
	code := strings.ToUpper(strings.TrimSpace(region))
	if alias, ok := regionAliases[code]; ok {
		return alias
	}
	return code
}

// Supported reports whether a rule table exists for region.
func Supported(region string) bool {
	_, ok := regions[Normalize(region)]
	return ok
}

// Regions lists the supported region codes in order.
func Regions() []string {
	out := make([]string, 0, len(regions))
	for code := range regions {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

// ForYear expands the region's table for year, ordered by raw date.
// An unsupported region yields an empty list, not an error.
func ForYear(region string, year int) []ResolvedHoliday {
	code := Normalize(region)
	rules := regions[code]
	out := make([]ResolvedHoliday, 0, len(rules))

	for _, r := range rules {
		raw, ok := r.resolve(year)
		if !ok {
			continue
		}
		out = append(out, ResolvedHoliday{
			Name:         r.Name,
			Region:       code,
			RawDate:      raw,
			ObservedDate: r.Policy.Apply(raw),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RawDate.Before(out[j].RawDate)
	})
	return out
}

// On returns the holidays observed on date. Neighbouring years are searched
// too because an observed date can cross a year boundary.
func On(date civil.Date, region string) []ResolvedHoliday {
	var out []ResolvedHoliday
	for y := date.Year - 1; y <= date.Year+1; y++ {
		for _, h := range ForYear(region, y) {
			if h.ObservedDate == date {
				out = append(out, h)
			}
		}
	}
	return out
}

// IsHoliday reports whether some holiday of region is observed on date.
func IsHoliday(date civil.Date, region string) bool {
	return len(On(date, region)) > 0
}
