package engine

import "strings"

// Region is one of a fixed, closed set of geographic regions. Anything the
// generator reports outside this set is mapped to RegionUnknown.
type Region string

const (
	RegionEurope           Region = "europe"
	RegionNorthAfrica      Region = "north_africa"
	RegionSubSaharanAfrica Region = "sub_saharan_africa"
	RegionMiddleEast       Region = "middle_east"
	RegionCentralAsia      Region = "central_asia"
	RegionSouthAsia        Region = "south_asia"
	RegionEastAsia         Region = "east_asia"
	RegionSoutheastAsia    Region = "southeast_asia"
	RegionNorthAmerica     Region = "north_america"
	RegionCentralAmerica   Region = "central_america"
	RegionCaribbean        Region = "caribbean"
	RegionSouthAmerica     Region = "south_america"
	RegionOceania          Region = "oceania"
	RegionIndianOcean      Region = "indian_ocean"
	RegionUnknown          Region = "unknown"
)

// knownRegions is the closed enum used by the normalizer.
var knownRegions = map[Region]bool{
	RegionEurope:           true,
	RegionNorthAfrica:      true,
	RegionSubSaharanAfrica: true,
	RegionMiddleEast:       true,
	RegionCentralAsia:      true,
	RegionSouthAsia:        true,
	RegionEastAsia:         true,
	RegionSoutheastAsia:    true,
	RegionNorthAmerica:     true,
	RegionCentralAmerica:   true,
	RegionCaribbean:        true,
	RegionSouthAmerica:     true,
	RegionOceania:          true,
	RegionIndianOcean:      true,
}

// ParseRegion lowercases and matches against the closed enum.
// Unmatched values become RegionUnknown, never an error.
func ParseRegion(s string) Region {
	r := Region(strings.ToLower(strings.TrimSpace(s)))
	if knownRegions[r] {
		return r
	}
	return RegionUnknown
}

// DestType categorizes a destination for coverage diversity.
type DestType string

const (
	TypeCity    DestType = "city"
	TypeBeach   DestType = "beach"
	TypeNature  DestType = "nature"
	TypeCulture DestType = "culture"
)

// Season of travel.
type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonAutumn Season = "autumn"
	SeasonWinter Season = "winter"
)

// highlightCount is the exact number of highlight bullets a valid candidate carries.
const highlightCount = 3

// Candidate is one destination proposal after normalization.
type Candidate struct {
	City               string   `json:"city"`
	Country            string   `json:"country"`
	Region             Region   `json:"region"`
	Type               DestType `json:"type"`
	Themes             []string `json:"themes"`
	BestSeasons        []Season `json:"best_seasons"`
	ApproxNonstopHours *float64 `json:"approx_nonstop_hours,omitempty"`
	Summary            string   `json:"summary"`
	Highlights         []string `json:"highlights"`
}

// Key returns the identity key: lowercased "city|country".
func (c Candidate) Key() string {
	return DestinationKey(c.City, c.Country)
}

// DestinationKey builds the lowercased "city|country" identity key.
func DestinationKey(city, country string) string {
	return normalizeLower(city) + "|" + normalizeLower(country)
}

func normalizeLower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// HasTheme reports whether the candidate carries the given canonical theme tag.
func (c Candidate) HasTheme(tag string) bool {
	for _, t := range c.Themes {
		if t == tag {
			return true
		}
	}
	return false
}

// InSeason reports whether the given season is one of the candidate's best seasons.
func (c Candidate) InSeason(s Season) bool {
	for _, bs := range c.BestSeasons {
		if bs == s {
			return true
		}
	}
	return false
}

// TravelParty is the composition of the traveling group.
type TravelParty string

const (
	PartySolo    TravelParty = "solo"
	PartyCouple  TravelParty = "couple"
	PartyFamily  TravelParty = "family"
	PartyFriends TravelParty = "friends"
)

// SelectionRequest is the per-call input to the engine.
type SelectionRequest struct {
	// MaxFlightHours is the user's flight-time ceiling, 1-20, default 8.
	MaxFlightHours float64
	Party          TravelParty
	Interests      []string // canonical tags, already classified
	Season         Season
	// Exclusions are caller-supplied "city" or "city|country" keys.
	Exclusions []string
	// N is the shortlist size; the primary flow fixes it at 5.
	N int
	// Seed drives the deterministic score jitter. Same request + same pool +
	// same seed reproduces the same shortlist.
	Seed int64
	// DurationDays is passed through to prompt construction.
	DurationDays int
}

// DefaultFlightHours is substituted when the caller omits or mangles the ceiling.
const DefaultFlightHours = 8

// DefaultShortlistSize is the fixed N of the primary flow.
const DefaultShortlistSize = 5

// Normalize clamps out-of-range request fields to their defaults.
func (r *SelectionRequest) Normalize() {
	if r.MaxFlightHours < 1 || r.MaxFlightHours > 20 {
		r.MaxFlightHours = DefaultFlightHours
	}
	if r.N <= 0 {
		r.N = DefaultShortlistSize
	}
	if r.DurationDays <= 0 {
		r.DurationDays = 3
	}
}

// Mode labels the provenance of a shortlist.
type Mode string

const (
	// ModeLive means results were drawn from generator output, possibly topped up.
	ModeLive Mode = "live"
	// ModeSample means a cached or curated pool was substituted after the
	// generator returned unusable output.
	ModeSample Mode = "sample"
	// ModeErrorFallback means both generator calls failed outright, or the
	// combined pool could not supply N results.
	ModeErrorFallback Mode = "error-fallback"
)

// Shortlist is the engine's terminal result.
type Shortlist struct {
	Mode    Mode
	Results []Candidate
}
