package domain

// PactKind identifies a passive pact. The string values are part of the
// persisted wire format.
type PactKind string

const (
	PactSolidity   PactKind = "solidity"
	PactHercules   PactKind = "hercules"
	PactAthena     PactKind = "athena"
	PactThoth      PactKind = "thoth"
	PactAres       PactKind = "ares"
	PactUnshakable PactKind = "unshakable"
	PactPhoenix    PactKind = "phoenix"
	PactCoward     PactKind = "coward"
	PactApollo     PactKind = "apollo"
	PactHydra      PactKind = "hydra"
)

// PactRarity governs weighted selection when a pact is gained.
type PactRarity string

const (
	RarityCommon    PactRarity = "common"
	RarityUncommon  PactRarity = "uncommon"
	RarityRare      PactRarity = "rare"
	RarityEpic      PactRarity = "epic"
	RarityLegendary PactRarity = "legendary"
	RarityMythic    PactRarity = "mythic"
)

// Weight returns the selection weight for the rarity tier. Rarer tiers
// weigh less so they are drawn less often.
func (r PactRarity) Weight() float64 {
	switch r {
	case RarityCommon:
		return 40
	case RarityUncommon:
		return 25
	case RarityRare:
		return 16
	case RarityEpic:
		return 10
	case RarityLegendary:
		return 6
	case RarityMythic:
		return 3
	default:
		return 0
	}
}

// AllPactKinds lists every known pact kind in stable order.
func AllPactKinds() []PactKind {
	return []PactKind{
		PactSolidity, PactHercules, PactAthena, PactThoth, PactAres,
		PactUnshakable, PactPhoenix, PactCoward, PactApollo, PactHydra,
	}
}
