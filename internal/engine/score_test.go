package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neexbeast/tripmuse/internal/engine"
)

func themed(city, country string, themes []string, hours *float64) engine.Candidate {
	c := candidate(city, country, engine.RegionEurope, hours)
	c.Themes = themes
	return c
}

func scoreOne(t *testing.T, c engine.Candidate, req engine.SelectionRequest, recency *engine.RecencyCache) float64 {
	t.Helper()
	req.Normalize()
	scorer := engine.NewScorer(recency)
	scored := scorer.Score([]engine.Candidate{c}, req, engine.PolicyFor(req.MaxFlightHours))
	require.Len(t, scored, 1)
	return scored[0].Score
}

func TestScore_Deterministic(t *testing.T) {
	pool := []engine.Candidate{
		themed("Barcelona", "Spain", []string{engine.TagBeach, engine.TagFood}, fptr(2.1)),
		themed("Lisbon", "Portugal", []string{engine.TagFood}, fptr(2.9)),
		themed("Prague", "Czech Republic", []string{engine.TagCulture}, nil),
	}
	req := engine.SelectionRequest{MaxFlightHours: 3, Interests: []string{engine.TagBeach}, Seed: 42, N: 5}

	scorer := engine.NewScorer(engine.NewRecencyCache(0))
	a := scorer.Score(pool, req, engine.PolicyFor(3))
	b := scorer.Score(pool, req, engine.PolicyFor(3))

	assert.Equal(t, a, b, "same seed and pool must produce identical scores")
}

func TestScore_InterestOverlap(t *testing.T) {
	req := engine.SelectionRequest{
		MaxFlightHours: 3,
		Interests:      []string{engine.TagBeach, engine.TagFood, engine.TagNature},
		Seed:           7,
	}

	full := themed("A", "B", []string{engine.TagBeach, engine.TagFood, engine.TagNature}, fptr(1))
	partial := themed("A", "B", []string{engine.TagBeach, engine.TagFood}, fptr(1))

	// Same city/key and same input index, so jitter and every other term cancel.
	diff := scoreOne(t, full, req, nil) - scoreOne(t, partial, req, nil)
	assert.InDelta(t, 1.0/3.0, diff, 1e-9)
}

func TestScore_NoInterestsBaseline(t *testing.T) {
	req := engine.SelectionRequest{MaxFlightHours: 3, Seed: 7}
	c := themed("A", "B", nil, fptr(1))

	with := scoreOne(t, c, req, nil)

	req.Interests = []string{engine.TagBeach}
	without := scoreOne(t, c, req, nil)

	// 0.3 baseline with no interests vs 0.0 overlap against one interest.
	assert.InDelta(t, 0.3, with-without, 1e-9)
}

func TestScore_SeasonBonus(t *testing.T) {
	req := engine.SelectionRequest{MaxFlightHours: 3, Season: engine.SeasonSummer, Seed: 7}

	inSeason := themed("A", "B", nil, fptr(1))
	inSeason.BestSeasons = []engine.Season{engine.SeasonSummer}
	offSeason := themed("A", "B", nil, fptr(1))
	offSeason.BestSeasons = []engine.Season{engine.SeasonWinter}

	diff := scoreOne(t, inSeason, req, nil) - scoreOne(t, offSeason, req, nil)
	assert.InDelta(t, 0.15, diff, 1e-9)
}

func TestScore_PartyAffinity(t *testing.T) {
	req := engine.SelectionRequest{MaxFlightHours: 3, Party: engine.PartyFamily, Seed: 7}

	family := themed("A", "B", []string{engine.TagFamily}, fptr(1))
	other := themed("A", "B", []string{engine.TagNightlife}, fptr(1))

	diff := scoreOne(t, family, req, nil) - scoreOne(t, other, req, nil)
	assert.InDelta(t, 0.10, diff, 1e-9)
}

func TestScore_ProximityBonus(t *testing.T) {
	// Effective cap is 3.5; the window starts at 2.1.
	req := engine.SelectionRequest{MaxFlightHours: 3, Seed: 7}

	nearCap := themed("A", "B", nil, fptr(3.0))
	farBelow := themed("A", "B", nil, fptr(1.0))

	diff := scoreOne(t, nearCap, req, nil) - scoreOne(t, farBelow, req, nil)
	assert.InDelta(t, 0.05, diff, 1e-9)
}

func TestScore_UnknownHoursPenalty(t *testing.T) {
	req := engine.SelectionRequest{MaxFlightHours: 3, Seed: 7}

	known := themed("A", "B", nil, fptr(1.0)) // below the proximity window
	unknown := themed("A", "B", nil, nil)

	diff := scoreOne(t, known, req, nil) - scoreOne(t, unknown, req, nil)
	assert.InDelta(t, 0.05, diff, 1e-9)
}

func TestScore_RecencyPenalty(t *testing.T) {
	req := engine.SelectionRequest{MaxFlightHours: 3, Seed: 7}
	c := themed("Barcelona", "Spain", nil, fptr(1))

	fresh := scoreOne(t, c, req, engine.NewRecencyCache(0))

	seeded := engine.NewRecencyCache(0)
	seeded.Add(c.Key())
	stale := scoreOne(t, c, req, seeded)

	assert.InDelta(t, 0.18, fresh-stale, 1e-9)
}

func TestScore_JitterBounded(t *testing.T) {
	req := engine.SelectionRequest{MaxFlightHours: 3, Seed: 99}
	c := themed("A", "B", nil, fptr(1))

	// Expected score with every term known except jitter:
	// 1.0 + 0.3 (no interests baseline), no bonuses, no penalties.
	got := scoreOne(t, c, req, nil)
	assert.InDelta(t, 1.3, got, 0.12+1e-9, "short-haul jitter is bounded by ±0.12")

	req.MaxFlightHours = 12
	req.Normalize()
	got = scoreOne(t, c, req, nil)
	assert.InDelta(t, 1.3, got, 0.02+1e-9, "long-haul jitter is bounded by ±0.02")
}

func TestScore_JitterVariesWithSeed(t *testing.T) {
	c := themed("A", "B", nil, fptr(1))

	seen := make(map[float64]bool)
	for seed := int64(1); seed <= 5; seed++ {
		seen[scoreOne(t, c, engine.SelectionRequest{MaxFlightHours: 3, Seed: seed}, nil)] = true
	}

	assert.Greater(t, len(seen), 1, "different seeds must produce different jitter")
}
