package engine

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// RawCandidate is one untyped generator record prior to validation.
// Field shapes are deliberately loose: the generator is not trusted.
type RawCandidate struct {
	City               string    `json:"city"`
	Country            string    `json:"country"`
	Region             string    `json:"region"`
	Type               string    `json:"type"`
	Themes             []string  `json:"themes"`
	BestSeasons        []string  `json:"best_seasons"`
	ApproxNonstopHours *RawHours `json:"approx_nonstop_hours"`
	Summary            string    `json:"summary"`
	Highlights         []string  `json:"highlights"`
}

// RawHours tolerates a JSON number, a numeric string, or null.
// Anything else decodes as unset rather than failing the record.
type RawHours struct {
	Value float64
	Known bool
}

func (h *RawHours) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		return nil
	}
	s = strings.Trim(s, `"`)
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	h.Value = v
	h.Known = true
	return nil
}

func (h RawHours) MarshalJSON() ([]byte, error) {
	if !h.Known {
		return []byte("null"), nil
	}
	return json.Marshal(h.Value)
}

// DropReason explains why the normalizer rejected a record.
type DropReason string

const (
	DropEmptyIdentity DropReason = "empty_city_or_country"
	DropRestricted    DropReason = "safety_excluded"
	DropBadHighlights DropReason = "highlights_not_three"
)

// Drop records one rejected raw candidate for logging.
type Drop struct {
	City    string
	Country string
	Reason  DropReason
}

// Normalizer coerces raw generator records into canonical Candidates.
type Normalizer struct {
	floors map[Region]float64
	safety *SafetyList
}

// NewNormalizer builds a Normalizer from the region hour floors and the
// safety exclusion list.
func NewNormalizer(floors map[Region]float64, safety *SafetyList) *Normalizer {
	return &Normalizer{floors: floors, safety: safety}
}

// Normalize validates and coerces every record independently. A malformed
// record is dropped, never an error: partial bad input degrades to fewer
// candidates and the fallback ladder deals with the shortfall.
func (n *Normalizer) Normalize(raws []RawCandidate) ([]Candidate, []Drop) {
	out := make([]Candidate, 0, len(raws))
	var drops []Drop

	for _, raw := range raws {
		c, reason, ok := n.normalizeOne(raw)
		if !ok {
			drops = append(drops, Drop{City: raw.City, Country: raw.Country, Reason: reason})
			continue
		}
		out = append(out, c)
	}

	return out, drops
}

func (n *Normalizer) normalizeOne(raw RawCandidate) (Candidate, DropReason, bool) {
	city := collapseSpace(raw.City)
	country := collapseSpace(raw.Country)
	if city == "" || country == "" {
		return Candidate{}, DropEmptyIdentity, false
	}

	if n.safety.Blocked(city, country) {
		return Candidate{}, DropRestricted, false
	}

	highlights := make([]string, 0, highlightCount)
	for _, h := range raw.Highlights {
		if h = collapseSpace(h); h != "" {
			highlights = append(highlights, h)
		}
	}
	if len(highlights) < highlightCount {
		return Candidate{}, DropBadHighlights, false
	}
	highlights = highlights[:highlightCount]

	region := ParseRegion(raw.Region)

	c := Candidate{
		City:        city,
		Country:     country,
		Region:      region,
		Type:        parseDestType(raw.Type),
		Themes:      canonicalThemes(raw.Themes),
		BestSeasons: parseSeasons(raw.BestSeasons),
		Summary:     collapseSpace(raw.Summary),
		Highlights:  highlights,
	}

	// The generator may overestimate flight time but never underestimate
	// below the region's plausibility floor. Non-positive values are treated
	// as unknown rather than clamped.
	if raw.ApproxNonstopHours != nil && raw.ApproxNonstopHours.Known && raw.ApproxNonstopHours.Value > 0 {
		hours := raw.ApproxNonstopHours.Value
		if floor, ok := n.floors[region]; ok && hours < floor {
			hours = floor
		}
		c.ApproxNonstopHours = &hours
	}

	return c, "", true
}

// collapseSpace trims and collapses internal whitespace runs to single spaces.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func parseDestType(s string) DestType {
	switch DestType(strings.ToLower(strings.TrimSpace(s))) {
	case TypeBeach:
		return TypeBeach
	case TypeNature:
		return TypeNature
	case TypeCulture:
		return TypeCulture
	default:
		return TypeCity
	}
}

func parseSeasons(raw []string) []Season {
	var out []Season
	for _, s := range raw {
		switch Season(strings.ToLower(strings.TrimSpace(s))) {
		case SeasonSpring:
			out = append(out, SeasonSpring)
		case SeasonSummer:
			out = append(out, SeasonSummer)
		case SeasonAutumn:
			out = append(out, SeasonAutumn)
		case SeasonWinter:
			out = append(out, SeasonWinter)
		}
	}
	return out
}

// canonicalThemes maps generator theme labels onto the canonical tag
// vocabulary, reusing the interest classifier for loose labels. Unmappable
// labels are discarded.
func canonicalThemes(raw []string) []string {
	seen := make(map[string]bool, len(raw))
	var out []string
	for _, t := range raw {
		tag := ClassifyInterest(t)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}
