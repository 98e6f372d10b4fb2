package engine

// SelectionPolicy is derived deterministically from the user's flight-time
// ceiling. It is computed per request, never stored.
type SelectionPolicy struct {
	// TimeBuffer is added to the user's ceiling to form the effective cap.
	TimeBuffer float64
	// PriorityRegions get a minimum quota in the shortlist for long-haul
	// tolerant requests, so those requests don't default to nearby picks.
	PriorityRegions map[Region]bool
	// MinPriorityQuota is the number of shortlist slots reserved for
	// priority regions; zero disables the CollectingPriority phase.
	MinPriorityQuota int
	// MaxSameRegionInResult caps how many shortlist entries may share a region.
	MaxSameRegionInResult int
}

// EffectiveCap is the hard flight-time limit: user ceiling plus buffer.
func (p SelectionPolicy) EffectiveCap(userHours float64) float64 {
	return userHours + p.TimeBuffer
}

var farHaulRegions = []Region{
	RegionCaribbean, RegionSoutheastAsia, RegionEastAsia,
	RegionIndianOcean, RegionOceania, RegionSouthAmerica,
}

var midHaulRegions = []Region{
	RegionMiddleEast, RegionNorthAmerica, RegionCaribbean,
	RegionSubSaharanAfrica, RegionCentralAsia, RegionSouthAsia,
}

// PolicyFor computes the SelectionPolicy for a flight-time ceiling. Higher
// ceilings bias toward long-haul priority regions and raise the same-region cap.
func PolicyFor(userHours float64) SelectionPolicy {
	p := SelectionPolicy{
		TimeBuffer:            0.5,
		MaxSameRegionInResult: 2,
		PriorityRegions:       map[Region]bool{},
	}
	if userHours >= 8 {
		p.TimeBuffer = 1.0
	}
	if userHours >= 6 {
		p.MaxSameRegionInResult = 3
	}

	switch {
	case userHours >= 10:
		p.MinPriorityQuota = 2
		for _, r := range farHaulRegions {
			p.PriorityRegions[r] = true
		}
	case userHours >= 7:
		p.MinPriorityQuota = 1
		for _, r := range midHaulRegions {
			p.PriorityRegions[r] = true
		}
	}

	return p
}
