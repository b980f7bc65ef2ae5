package domain

// Region is a world area tag. It determines event pool weights and enemy
// spawn tables. The string values are part of the persisted wire format.
type Region string

const (
	RegionPlains   Region = "plains"
	RegionForest   Region = "forest"
	RegionSwamp    Region = "swamp"
	RegionDesert   Region = "desert"
	RegionMountain Region = "mountain"
	RegionCity     Region = "city"
	RegionTundra   Region = "tundra"
	RegionRuins    Region = "ruins"
)

// AllRegions lists every known region in stable order.
func AllRegions() []Region {
	return []Region{
		RegionPlains,
		RegionForest,
		RegionSwamp,
		RegionDesert,
		RegionMountain,
		RegionCity,
		RegionTundra,
		RegionRuins,
	}
}

// Valid reports whether the region is one of the known tags.
func (r Region) Valid() bool {
	for _, known := range AllRegions() {
		if r == known {
			return true
		}
	}
	return false
}

// RegionWeight pairs a region with a spawn weight.
type RegionWeight struct {
	Region Region
	Weight float64
}
