package engine

import "strings"

// FilterReason explains why the constraint filter removed a candidate.
type FilterReason string

const (
	FilterRestricted   FilterReason = "safety_excluded"
	FilterUserExcluded FilterReason = "user_excluded"
	FilterOverCap      FilterReason = "over_flight_cap"
)

// Filtered records one candidate removed by a hard constraint.
type Filtered struct {
	Key    string
	Reason FilterReason
}

// exclusionSet matches caller exclusions against either the bare city or the
// full "city|country" key, case-insensitively.
type exclusionSet struct {
	keys map[string]bool
}

func newExclusionSet(raw []string) exclusionSet {
	es := exclusionSet{keys: make(map[string]bool, len(raw))}
	for _, e := range raw {
		if k := strings.ToLower(strings.TrimSpace(e)); k != "" {
			es.keys[k] = true
		}
	}
	return es
}

func (es exclusionSet) matches(c Candidate) bool {
	return es.keys[strings.ToLower(c.City)] || es.keys[c.Key()]
}

// ApplyConstraints drops candidates violating any hard constraint: safety
// exclusion, user exclusion, or the flight-time cap. Unknown hours are never
// dropped here; missing data is a soft risk scored down later, while
// known-too-far is a hard violation.
func ApplyConstraints(pool []Candidate, req SelectionRequest, policy SelectionPolicy, safety *SafetyList) ([]Candidate, []Filtered) {
	cap := policy.EffectiveCap(req.MaxFlightHours)
	excl := newExclusionSet(req.Exclusions)

	out := make([]Candidate, 0, len(pool))
	var removed []Filtered

	for _, c := range pool {
		switch {
		case safety.Blocked(c.City, c.Country):
			removed = append(removed, Filtered{Key: c.Key(), Reason: FilterRestricted})
		case excl.matches(c):
			removed = append(removed, Filtered{Key: c.Key(), Reason: FilterUserExcluded})
		case c.ApproxNonstopHours != nil && *c.ApproxNonstopHours > cap:
			removed = append(removed, Filtered{Key: c.Key(), Reason: FilterOverCap})
		default:
			out = append(out, c)
		}
	}

	return out, removed
}
