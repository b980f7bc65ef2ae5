// Package enemy holds the shared read-only enemy template table. Templates
// are pure data; battles consume them as FighterData snapshots.
package enemy

import (
	"fmt"
	"math/rand"

	"github.com/go-playground/validator/v10"

	"github.com/etheris-rpg/etheris/internal/domain"
)

// AllyRef is one line of an ally roll: a template that may spawn alongside
// the enemy with the given chance.
type AllyRef struct {
	Probability domain.Probability `validate:"required"`
	Enemy       string             `validate:"required"`
}

// Template is a static enemy definition. All battle-time state lives on the
// Fighter built from it.
type Template struct {
	Identifier string `validate:"required"`
	Name       string `validate:"required"`

	// SpawnProbability scales the region weight when the event engine
	// samples an enemy for an encounter.
	SpawnProbability domain.Probability        `validate:"required"`
	RegionWeights    map[domain.Region]float64 `validate:"required,min=1"`

	Personalities []domain.Personality
	BossTag       string
	Brain         *domain.BrainKind
	Allies        []AllyRef `validate:"dive"`

	SkillKinds []domain.SkillKind
	PactKinds  []domain.PactKind

	StrengthLevel     int32   `validate:"min=0"`
	IntelligenceLevel int32   `validate:"min=0"`
	Vitality          int32   `validate:"min=1"`
	Resistance        int32   `validate:"min=1"`
	Ether             int32   `validate:"min=0"`
	Potential         float64 `validate:"min=0,max=1"`

	WeaponKind *domain.WeaponKind
	Immunities domain.BodyImmunities
	Drop       *domain.DropReward
}

// BrainKind resolves the AI driving this enemy: explicit override first,
// boss default for bosses, simple otherwise.
func (t Template) BrainKind() domain.BrainKind {
	if t.Brain != nil {
		return *t.Brain
	}
	if t.BossTag != "" {
		return domain.BrainBoss
	}
	return domain.BrainSimple
}

// FighterData builds the battle snapshot for this template.
func (t Template) FighterData(team uint8) domain.FighterData {
	brain := t.BrainKind()
	data := domain.FighterData{
		Team:              team,
		Name:              t.Name,
		Personalities:     append([]domain.Personality(nil), t.Personalities...),
		SkillKinds:        append([]domain.SkillKind(nil), t.SkillKinds...),
		PactKinds:         append([]domain.PactKind(nil), t.PactKinds...),
		StrengthLevel:     t.StrengthLevel,
		IntelligenceLevel: t.IntelligenceLevel,
		Vitality:          domain.NewAttribute(t.Vitality),
		Resistance:        domain.NewAttribute(t.Resistance),
		Ether:             domain.NewAttribute(t.Ether),
		Brain:             &brain,
		Potential:         t.Potential,
		Immunities:        t.Immunities.Clone(),
		BossTag:           t.BossTag,
	}
	if t.WeaponKind != nil {
		w := domain.NewWeapon(*t.WeaponKind)
		data.Weapon = &w
	}
	if t.Drop != nil {
		drop := *t.Drop
		drop.Items = append([]domain.ItemReward(nil), t.Drop.Items...)
		data.Drop = &drop
	}
	return data
}

// PowerLevel is the PL of a fighter built from this template.
func (t Template) PowerLevel() int64 {
	return t.FighterData(0).PowerLevel()
}

// SpawnWeight is the sampling weight of this template in the region; zero
// means it never spawns there.
func (t Template) SpawnWeight(region domain.Region) float64 {
	return float64(t.SpawnProbability) * t.RegionWeights[region]
}

// RollAllies resolves the template's ally lines against the given RNG.
func (t Template) RollAllies(rng *rand.Rand) []Template {
	var allies []Template
	for _, ref := range t.Allies {
		if !ref.Probability.Passes(rng) {
			continue
		}
		ally, err := Get(ref.Enemy)
		if err != nil {
			continue
		}
		allies = append(allies, ally)
	}
	return allies
}

var templatesByID map[string]Template

func init() {
	validate := validator.New()
	templatesByID = make(map[string]Template, len(templateTable))
	for _, t := range templateTable {
		if err := validate.Struct(t); err != nil {
			panic(fmt.Sprintf("enemy: invalid template %q: %v", t.Identifier, err))
		}
		if _, dup := templatesByID[t.Identifier]; dup {
			panic(fmt.Sprintf("enemy: duplicate template %q", t.Identifier))
		}
		templatesByID[t.Identifier] = t
	}
	// Ally references must resolve; a dangling one is a programmer error.
	for _, t := range templateTable {
		for _, ref := range t.Allies {
			if _, ok := templatesByID[ref.Enemy]; !ok {
				panic(fmt.Sprintf("enemy: template %q references unknown ally %q", t.Identifier, ref.Enemy))
			}
		}
	}
}

// Get looks up a template by identifier.
func Get(identifier string) (Template, error) {
	t, ok := templatesByID[identifier]
	if !ok {
		return Template{}, fmt.Errorf("%w: %s", domain.ErrUnknownEnemy, identifier)
	}
	return t, nil
}

// MustGet is Get for identifiers known at compile time.
func MustGet(identifier string) Template {
	t, err := Get(identifier)
	if err != nil {
		panic(err)
	}
	return t
}

// All lists every template in table order.
func All() []Template {
	return append([]Template(nil), templateTable...)
}

// ForRegion lists templates that can spawn in the region.
func ForRegion(region domain.Region) []Template {
	var out []Template
	for _, t := range templateTable {
		if t.SpawnWeight(region) > 0 {
			out = append(out, t)
		}
	}
	return out
}

// SampleForRegion draws one template weighted by spawn weight. Returns
// false when the region has no spawn table.
func SampleForRegion(rng *rand.Rand, region domain.Region) (Template, bool) {
	pool := ForRegion(region)
	if len(pool) == 0 {
		return Template{}, false
	}
	var total float64
	for _, t := range pool {
		total += t.SpawnWeight(region)
	}
	pick := rng.Float64() * total
	for _, t := range pool {
		pick -= t.SpawnWeight(region)
		if pick < 0 {
			return t, true
		}
	}
	return pool[len(pool)-1], true
}
