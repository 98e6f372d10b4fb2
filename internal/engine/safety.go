package engine

import "strings"

// SafetyList holds the static safety exclusion sets. Matching is
// case-insensitive on trimmed names. The list is injected configuration,
// never hardcoded in the pipeline.
type SafetyList struct {
	countries map[string]bool
	cities    map[string]bool
}

// NewSafetyList builds a SafetyList from blocked country and city names.
func NewSafetyList(countries, cities []string) *SafetyList {
	sl := &SafetyList{
		countries: make(map[string]bool, len(countries)),
		cities:    make(map[string]bool, len(cities)),
	}
	for _, c := range countries {
		if k := strings.ToLower(strings.TrimSpace(c)); k != "" {
			sl.countries[k] = true
		}
	}
	for _, c := range cities {
		if k := strings.ToLower(strings.TrimSpace(c)); k != "" {
			sl.cities[k] = true
		}
	}
	return sl
}

// Blocked reports whether the city or the country appears on the exclusion sets.
func (sl *SafetyList) Blocked(city, country string) bool {
	if sl == nil {
		return false
	}
	return sl.countries[strings.ToLower(strings.TrimSpace(country))] ||
		sl.cities[strings.ToLower(strings.TrimSpace(city))]
}
