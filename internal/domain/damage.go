package domain

// DamageKind classifies how a hit is delivered. It decides which body
// immunities apply and which on-hit effects make sense.
type DamageKind string

const (
	DamageKindPhysical        DamageKind = "physical"
	DamageKindCut             DamageKind = "cut"
	DamageKindPhysicalCut     DamageKind = "physical_cut"
	DamageKindSpecial         DamageKind = "special"
	DamageKindSpecialPhysical DamageKind = "special_physical"
	DamageKindFire            DamageKind = "fire"
	DamageKindIce             DamageKind = "ice"
	DamageKindElectric        DamageKind = "electric"
	DamageKindWater           DamageKind = "water"
	DamageKindPoison          DamageKind = "poison"
	DamageKindWind            DamageKind = "wind"
)

// ImmunityKind is a category a fighter can resist or be weak to.
type ImmunityKind string

const (
	ImmunityPhysical ImmunityKind = "physical"
	ImmunityCut      ImmunityKind = "cut"
	ImmunityFire     ImmunityKind = "fire"
	ImmunityIce      ImmunityKind = "ice"
	ImmunityElectric ImmunityKind = "electric"
	ImmunityWater    ImmunityKind = "water"
	ImmunityPoison   ImmunityKind = "poison"
	ImmunityBleeding ImmunityKind = "bleeding"
	ImmunitySpecial  ImmunityKind = "special"
)

// Immunities returns the immunity categories a damage kind is checked
// against, in application order.
func (k DamageKind) Immunities() []ImmunityKind {
	switch k {
	case DamageKindPhysical:
		return []ImmunityKind{ImmunityPhysical}
	case DamageKindCut:
		return []ImmunityKind{ImmunityCut}
	case DamageKindPhysicalCut:
		return []ImmunityKind{ImmunityPhysical, ImmunityCut}
	case DamageKindSpecial:
		return []ImmunityKind{ImmunitySpecial}
	case DamageKindSpecialPhysical:
		return []ImmunityKind{ImmunitySpecial, ImmunityPhysical}
	case DamageKindFire:
		return []ImmunityKind{ImmunityFire}
	case DamageKindIce:
		return []ImmunityKind{ImmunityIce}
	case DamageKindElectric:
		return []ImmunityKind{ImmunityElectric}
	case DamageKindWater:
		return []ImmunityKind{ImmunityWater}
	case DamageKindPoison:
		return []ImmunityKind{ImmunityPoison}
	case DamageKindWind:
		return []ImmunityKind{ImmunityPhysical}
	default:
		return nil
	}
}

// BodyImmunities maps immunity kinds to a signed resistance fraction.
// Positive values reduce incoming damage of that kind, negative values
// amplify it. Effective values are clamped to [-1, 1] on application.
type BodyImmunities map[ImmunityKind]float64

// Resistance returns the clamped resistance fraction for a kind.
func (b BodyImmunities) Resistance(kind ImmunityKind) float64 {
	v := b[kind]
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}

// Clone returns a deep copy so fighters never share tables.
func (b BodyImmunities) Clone() BodyImmunities {
	out := make(BodyImmunities, len(b))
	for k, v := range b {
		out[k] = v
	}
	return out
}
