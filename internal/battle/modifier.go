package battle

// ModifierKind tags a passive modifier.
type ModifierKind string

const (
	ModifierDmgMultiplier        ModifierKind = "dmg_multiplier"
	ModifierDefenseMultiplier    ModifierKind = "defense_multiplier"
	ModifierEtherRegenMultiplier ModifierKind = "ether_regen_multiplier"
	ModifierEffectImmunity       ModifierKind = "effect_immunity"
)

// Modifier is a passive multiplier or immunity carried by a fighter.
// TurnsLeft < 0 means the modifier never expires on its own.
type Modifier struct {
	Kind      ModifierKind
	Value     float64
	Effect    EffectKind // set for ModifierEffectImmunity
	TurnsLeft int
	Tags      []string
}

// PermanentModifier builds a modifier with no countdown.
func PermanentModifier(kind ModifierKind, value float64, tags ...string) Modifier {
	return Modifier{Kind: kind, Value: value, TurnsLeft: -1, Tags: tags}
}

// TimedModifier builds a modifier that expires after the given rounds.
func TimedModifier(kind ModifierKind, value float64, turns int, tags ...string) Modifier {
	return Modifier{Kind: kind, Value: value, TurnsLeft: turns, Tags: tags}
}

// EffectImmunityModifier builds an immunity to one effect kind.
func EffectImmunityModifier(effect EffectKind, tags ...string) Modifier {
	return Modifier{Kind: ModifierEffectImmunity, Effect: effect, TurnsLeft: -1, Tags: tags}
}

// HasTag reports whether the modifier carries the tag.
func (m Modifier) HasTag(tag string) bool {
	for _, t := range m.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// ModifierList is a fighter's set of passive modifiers. Same-kind
// multipliers stack multiplicatively.
type ModifierList []Modifier

// Add appends a modifier.
func (l *ModifierList) Add(m Modifier) {
	*l = append(*l, m)
}

// RemoveByTag drops every modifier carrying the tag.
func (l *ModifierList) RemoveByTag(tag string) {
	out := (*l)[:0]
	for _, m := range *l {
		if !m.HasTag(tag) {
			out = append(out, m)
		}
	}
	*l = out
}

func (l ModifierList) product(kind ModifierKind) float64 {
	p := 1.0
	for _, m := range l {
		if m.Kind == kind {
			p *= m.Value
		}
	}
	return p
}

// OverallDmgMultiplier multiplies all damage multipliers together.
func (l ModifierList) OverallDmgMultiplier() float64 {
	return l.product(ModifierDmgMultiplier)
}

// OverallDefenseMultiplier multiplies all defense multipliers together.
// Values below 1 reduce incoming damage, above 1 amplify it.
func (l ModifierList) OverallDefenseMultiplier() float64 {
	return l.product(ModifierDefenseMultiplier)
}

// OverallEtherRegenMultiplier multiplies all ether regen multipliers.
func (l ModifierList) OverallEtherRegenMultiplier() float64 {
	return l.product(ModifierEtherRegenMultiplier)
}

// ImmuneToEffect reports whether an effect-immunity modifier blocks the kind.
func (l ModifierList) ImmuneToEffect(kind EffectKind) bool {
	for _, m := range l {
		if m.Kind == ModifierEffectImmunity && m.Effect == kind {
			return true
		}
	}
	return false
}

// TickRound counts one round down on timed modifiers and drops the expired.
func (l *ModifierList) TickRound() {
	out := (*l)[:0]
	for _, m := range *l {
		if m.TurnsLeft > 0 {
			m.TurnsLeft--
			if m.TurnsLeft == 0 {
				continue
			}
		}
		out = append(out, m)
	}
	*l = out
}
