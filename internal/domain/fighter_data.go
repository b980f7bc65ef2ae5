package domain

// ItemReward is one drop-table line: an amount range with a roll chance.
type ItemReward struct {
	ItemIdentifier string      `json:"item"`
	AmountLo       int32       `json:"amount_lo"`
	AmountHi       int32       `json:"amount_hi"`
	Probability    Probability `json:"probability"`
}

// DropReward is what defeating a fighter yields.
type DropReward struct {
	OrbsLo int64        `json:"orbs_lo"`
	OrbsHi int64        `json:"orbs_hi"`
	XPLo   int64        `json:"xp_lo"`
	XPHi   int64        `json:"xp_hi"`
	Items  []ItemReward `json:"items,omitempty"`
}

// FighterData is the snapshot a Battle consumes to construct a Fighter.
// It is pure data: no battle state, no pointers into live fighters.
type FighterData struct {
	Team uint8  `json:"team"`
	Name string `json:"name"`
	// User is the platform handle when a human controls this fighter;
	// empty for scripted enemies.
	User string `json:"user,omitempty"`

	Personalities []Personality `json:"personalities"`
	SkillKinds    []SkillKind   `json:"skills"`
	PactKinds     []PactKind    `json:"pacts"`

	StrengthLevel     int32 `json:"strength_level"`
	IntelligenceLevel int32 `json:"intelligence_level"`

	Weapon *Weapon `json:"weapon,omitempty"`

	Vitality   Attribute `json:"vitality"`
	Resistance Attribute `json:"resistance"`
	Ether      Attribute `json:"ether"`

	Brain     *BrainKind `json:"brain,omitempty"`
	Potential float64    `json:"potential"`

	Immunities BodyImmunities `json:"immunities,omitempty"`
	Drop       *DropReward    `json:"drop,omitempty"`

	// Boss identifier when this fighter is a boss; recorded on the
	// winner's character after a consequence battle.
	BossTag string `json:"boss_tag,omitempty"`
}

// IsHuman reports whether a user drives this fighter.
func (d FighterData) IsHuman() bool {
	return d.User != ""
}

// PowerLevel computes the comparison scalar for this snapshot.
//
// Locked formula (golden-tested, do not retune):
//
//	PL = 0.4*maxVit + 0.5*maxRes + 0.4*maxEther
//	   + 6*strength + 6*intelligence
//	   + avg(skill knowledge cost) / 0.2
//
// rounded half away from zero.
func (d FighterData) PowerLevel() int64 {
	pl := 0.4*float64(d.Vitality.Max) +
		0.5*float64(d.Resistance.Max) +
		0.4*float64(d.Ether.Max) +
		6*float64(d.StrengthLevel) +
		6*float64(d.IntelligenceLevel)

	if len(d.SkillKinds) > 0 {
		var totalCost float64
		for _, kind := range d.SkillKinds {
			if meta, ok := GetSkillMeta(kind); ok {
				totalCost += meta.KnowledgeCost
			}
		}
		avg := totalCost / float64(len(d.SkillKinds))
		pl += avg / 0.2
	}

	if pl >= 0 {
		return int64(pl + 0.5)
	}
	return int64(pl - 0.5)
}
