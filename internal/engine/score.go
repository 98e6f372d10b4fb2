package engine

import (
	"encoding/binary"
	"hash/fnv"
)

// Scored pairs a candidate with its fitness score.
type Scored struct {
	Candidate
	Score float64
}

const (
	baseScore                    = 1.0
	noInterestsBaseline          = 0.3
	seasonBonus                  = 0.15
	proximityBonus               = 0.05
	recencyPenalty               = 0.18
	unknownHoursPenalty          = 0.05
	incompleteHighlightsPenalty  = 0.2
	proximityWindowFraction      = 0.6 // "top 40%" of the allowed range
	jitterShortHaulAmplitude     = 0.12
	jitterMediumHaulAmplitude    = 0.06
	jitterLongHaulAmplitude      = 0.02
	shortHaulJitterCeilingHours  = 4
	mediumHaulJitterCeilingHours = 8
)

// partyAffinity maps a travel-party type to the theme it favors and the
// bonus granted when the candidate carries that theme.
var partyAffinity = map[TravelParty]struct {
	tag   string
	bonus float64
}{
	PartyFamily:  {TagFamily, 0.10},
	PartyCouple:  {TagRomance, 0.08},
	PartyFriends: {TagNightlife, 0.07},
	PartySolo:    {TagAdventure, 0.05},
}

// Scorer computes per-candidate fitness from the request preferences,
// with the recency cache injected as a soft penalty source.
type Scorer struct {
	recency *RecencyCache
}

// NewScorer builds a Scorer around the given recency cache.
func NewScorer(recency *RecencyCache) *Scorer {
	return &Scorer{recency: recency}
}

// Score computes fitness for every candidate. Output order matches input
// order; sorting is the selector's job.
func (s *Scorer) Score(pool []Candidate, req SelectionRequest, policy SelectionPolicy) []Scored {
	cap := policy.EffectiveCap(req.MaxFlightHours)
	amplitude := jitterAmplitude(req.MaxFlightHours)

	out := make([]Scored, 0, len(pool))
	for i, c := range pool {
		score := baseScore

		if len(req.Interests) == 0 {
			score += noInterestsBaseline
		} else {
			overlap := 0
			for _, tag := range req.Interests {
				if c.HasTheme(tag) {
					overlap++
				}
			}
			score += float64(overlap) / float64(len(req.Interests))
		}

		if req.Season != "" && c.InSeason(req.Season) {
			score += seasonBonus
		}

		if aff, ok := partyAffinity[req.Party]; ok && c.HasTheme(aff.tag) {
			score += aff.bonus
		}

		if c.ApproxNonstopHours != nil {
			// Reward candidates that use most of the allowed flight time without
			// sitting at risk of exceeding it.
			h := *c.ApproxNonstopHours
			if h >= cap*proximityWindowFraction && h <= cap {
				score += proximityBonus
			}
		} else {
			score -= unknownHoursPenalty
		}

		if s.recency != nil && s.recency.Contains(c.Key()) {
			score -= recencyPenalty
		}

		// Should not occur post-normalizer; defended anyway.
		if len(c.Highlights) != highlightCount {
			score -= incompleteHighlightsPenalty
		}

		score += jitter(req.Seed, i, amplitude)

		out = append(out, Scored{Candidate: c, Score: score})
	}

	return out
}

// jitterAmplitude is larger for short-haul ceilings, where candidate pools
// are naturally small and repetitive.
func jitterAmplitude(userHours float64) float64 {
	switch {
	case userHours <= shortHaulJitterCeilingHours:
		return jitterShortHaulAmplitude
	case userHours <= mediumHaulJitterCeilingHours:
		return jitterMediumHaulAmplitude
	default:
		return jitterLongHaulAmplitude
	}
}

// jitter is a pure function of the request seed and the candidate's input
// position, mapped into [-amplitude, +amplitude]. No global randomness: a
// fixed seed reproduces exact orderings.
func jitter(seed int64, index int, amplitude float64) float64 {
	h := fnv.New64a()
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[0:8], uint64(seed))
	binary.LittleEndian.PutUint64(buf[8:16], uint64(index))
	_, _ = h.Write(buf[:])
	// Map the hash onto [0,1), then center.
	unit := float64(h.Sum64()%1_000_003) / 1_000_003.0
	return (unit*2 - 1) * amplitude
}
