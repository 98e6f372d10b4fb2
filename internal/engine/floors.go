package engine

// DefaultRegionFloors returns the minimum plausible nonstop flight hours per
// region, assuming a European origin. The generator may overestimate hours
// but is never trusted below these floors. Deployments can override the
// table via configuration.
func DefaultRegionFloors() map[Region]float64 {
	return map[Region]float64{
		RegionEurope:           0.5,
		RegionNorthAfrica:      2.5,
		RegionMiddleEast:       5.5,
		RegionSubSaharanAfrica: 6.5,
		RegionCentralAsia:      5.0,
		RegionSouthAsia:        8.0,
		RegionEastAsia:         9.5,
		RegionSoutheastAsia:    10.5,
		RegionNorthAmerica:     7.0,
		RegionCentralAmerica:   9.5,
		RegionCaribbean:        8.5,
		RegionSouthAmerica:     10.5,
		RegionOceania:          16.0,
		RegionIndianOcean:      9.5,
	}
}
