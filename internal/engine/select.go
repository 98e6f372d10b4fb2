package engine

import "sort"

// selectionState names each phase of the diversity selector. Relaxations run
// in a defined order, each phase independently testable through the outcome
// flags.
type selectionState int

const (
	stateCollectingPriority selectionState = iota
	stateCollectingDiverse
	stateFilling
	stateRelaxing
	stateDone
)

// SelectionOutcome is the selector's result. Shortfall beyond the Relaxing
// state is the fallback ladder's problem, not the selector's.
type SelectionOutcome struct {
	Picked []Candidate
	// CountryRelaxed reports that the Filling state had to reuse countries.
	CountryRelaxed bool
	// RegionCapDropped reports that the Relaxing state ran.
	RegionCapDropped bool
}

// selector carries the mutable picking state across phases.
type selector struct {
	n           int
	policy      SelectionPolicy
	pool        []Scored
	picked      []Candidate
	usedKeys    map[string]bool
	usedCountry map[string]bool
	regionCount map[Region]int
}

// SelectDiverse greedily picks up to req.N candidates from the scored pool,
// honoring per-region caps, country spread, and the priority-region quota,
// relaxing constraints in a defined order when the pool is insufficient.
// Ties in score are broken by input order (stable sort), never re-randomized.
func SelectDiverse(pool []Scored, req SelectionRequest, policy SelectionPolicy) SelectionOutcome {
	sorted := make([]Scored, len(pool))
	copy(sorted, pool)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Score > sorted[j].Score })

	s := &selector{
		n:           req.N,
		policy:      policy,
		pool:        sorted,
		picked:      make([]Candidate, 0, req.N),
		usedKeys:    make(map[string]bool),
		usedCountry: make(map[string]bool),
		regionCount: make(map[Region]int),
	}

	var out SelectionOutcome
	state := stateCollectingPriority
	for state != stateDone {
		switch state {
		case stateCollectingPriority:
			s.collectPriority()
			state = stateCollectingDiverse
		case stateCollectingDiverse:
			s.collectDiverse()
			if len(s.picked) >= s.n {
				state = stateDone
				break
			}
			state = stateFilling
		case stateFilling:
			if s.fill() {
				out.CountryRelaxed = true
			}
			if len(s.picked) >= s.n {
				state = stateDone
				break
			}
			state = stateRelaxing
		case stateRelaxing:
			if s.relax() {
				out.RegionCapDropped = true
			}
			state = stateDone
		}
	}

	out.Picked = s.picked
	return out
}

func (s *selector) take(c Candidate) {
	s.picked = append(s.picked, c)
	s.usedKeys[c.Key()] = true
	s.usedCountry[countryKey(c)] = true
	s.regionCount[c.Region]++
}

func (s *selector) regionFull(r Region) bool {
	return s.regionCount[r] >= s.policy.MaxSameRegionInResult
}

// collectPriority reserves MinPriorityQuota slots for priority regions,
// respecting the per-region cap.
func (s *selector) collectPriority() {
	if s.policy.MinPriorityQuota <= 0 {
		return
	}
	taken := 0
	for _, sc := range s.pool {
		if taken >= s.policy.MinPriorityQuota || len(s.picked) >= s.n {
			return
		}
		c := sc.Candidate
		if s.usedKeys[c.Key()] || !s.policy.PriorityRegions[c.Region] || s.regionFull(c.Region) {
			continue
		}
		s.take(c)
		taken++
	}
}

// collectDiverse takes candidates by descending score, one per country,
// within the per-region cap.
func (s *selector) collectDiverse() {
	for _, sc := range s.pool {
		if len(s.picked) >= s.n {
			return
		}
		c := sc.Candidate
		if s.usedKeys[c.Key()] || s.usedCountry[countryKey(c)] || s.regionFull(c.Region) {
			continue
		}
		s.take(c)
	}
}

// fill relaxes country uniqueness but keeps the regional cap. A country may
// only repeat once the pool holds no unused fresh-country candidate at all;
// otherwise the Relaxing state gets first shot at those, so the shortlist
// never duplicates a country while a distinct one is still available.
func (s *selector) fill() bool {
	if s.hasFreshCountry() {
		return false
	}
	relaxed := false
	for _, sc := range s.pool {
		if len(s.picked) >= s.n {
			return relaxed
		}
		c := sc.Candidate
		if s.usedKeys[c.Key()] || s.regionFull(c.Region) {
			continue
		}
		s.take(c)
		relaxed = true
	}
	return relaxed
}

func (s *selector) hasFreshCountry() bool {
	for _, sc := range s.pool {
		if !s.usedKeys[sc.Key()] && !s.usedCountry[countryKey(sc.Candidate)] {
			return true
		}
	}
	return false
}

// relax drops the regional cap entirely and takes the next best unused keys.
// Country spread is still preferred: fresh countries are exhausted before any
// country repeats, so a pool with N distinct surviving countries never yields
// a duplicate.
func (s *selector) relax() bool {
	relaxed := false
	for _, freshCountryOnly := range []bool{true, false} {
		for _, sc := range s.pool {
			if len(s.picked) >= s.n {
				return relaxed
			}
			c := sc.Candidate
			if s.usedKeys[c.Key()] {
				continue
			}
			if freshCountryOnly && s.usedCountry[countryKey(c)] {
				continue
			}
			s.take(c)
			relaxed = true
		}
	}
	return relaxed
}

func countryKey(c Candidate) string {
	return normalizeLower(c.Country)
}
