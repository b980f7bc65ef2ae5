// Package pact implements the passive pact bundles. Pacts register
// themselves with the battle registry at init time; importing this package
// for side effects makes the whole set constructible by kind.
package pact

import (
	"fmt"
	"math"

	"github.com/etheris-rpg/etheris/internal/battle"
	"github.com/etheris-rpg/etheris/internal/domain"
)

func init() {
	battle.RegisterPact(domain.PactSolidity, func() battle.Pact { return &Solidity{} })
	battle.RegisterPact(domain.PactHercules, func() battle.Pact { return &Hercules{} })
	battle.RegisterPact(domain.PactAthena, func() battle.Pact { return &Athena{} })
	battle.RegisterPact(domain.PactThoth, func() battle.Pact { return &Thoth{} })
	battle.RegisterPact(domain.PactAres, func() battle.Pact { return &Ares{} })
	battle.RegisterPact(domain.PactUnshakable, func() battle.Pact { return &Unshakable{} })
	battle.RegisterPact(domain.PactPhoenix, func() battle.Pact { return &Phoenix{} })
	battle.RegisterPact(domain.PactCoward, func() battle.Pact { return &Coward{} })
	battle.RegisterPact(domain.PactApollo, func() battle.Pact { return &Apollo{} })
	battle.RegisterPact(domain.PactHydra, func() battle.Pact { return &Hydra{} })
}

// base provides the no-op defaults most pacts share.
type base struct{}

func (base) SetupFighter(*battle.Fighter)    {}
func (base) ModifyDamage(*battle.DamageSpec) {}
func (base) DamageMultiplier() float64       { return 1 }

// Solidity hardens the body against every incoming hit.
type Solidity struct{ base }

func (Solidity) Kind() domain.PactKind     { return domain.PactSolidity }
func (Solidity) Rarity() domain.PactRarity { return domain.RarityCommon }

func (Solidity) SetupFighter(f *battle.Fighter) {
	f.Modifiers.Add(battle.PermanentModifier(battle.ModifierDefenseMultiplier, 0.85, "pact:solidity"))
}

// Hercules grants raw muscle.
type Hercules struct{ base }

func (Hercules) Kind() domain.PactKind     { return domain.PactHercules }
func (Hercules) Rarity() domain.PactRarity { return domain.RarityUncommon }

func (Hercules) SetupFighter(f *battle.Fighter) {
	f.StrengthLevel += 7
}

// Athena sharpens the mind.
type Athena struct{ base }

func (Athena) Kind() domain.PactKind     { return domain.PactAthena }
func (Athena) Rarity() domain.PactRarity { return domain.RarityUncommon }

func (Athena) SetupFighter(f *battle.Fighter) {
	f.IntelligenceLevel += 7
}

// Thoth trades flesh for ether: a fifth of vitality and resistance is
// converted into additional ether capacity.
type Thoth struct{ base }

func (Thoth) Kind() domain.PactKind     { return domain.PactThoth }
func (Thoth) Rarity() domain.PactRarity { return domain.RarityRare }

func (Thoth) SetupFighter(f *battle.Fighter) {
	vitCut := f.Vitality.Max / 5
	resCut := f.Resistance.Max / 5
	f.Vitality.Max -= vitCut
	f.Resistance.Max -= resCut
	if f.Vitality.Value > f.Vitality.Max {
		f.Vitality.Value = f.Vitality.Max
	}
	if f.Resistance.Value > f.Resistance.Max {
		f.Resistance.Value = f.Resistance.Max
	}
	gained := vitCut + resCut
	f.Ether.Max += gained
	f.Ether.Add(gained)
}

// Ares feeds on battle, straining the body a little every round.
type Ares struct{ base }

func (Ares) Kind() domain.PactKind     { return domain.PactAres }
func (Ares) Rarity() domain.PactRarity { return domain.RarityRare }

func (Ares) DamageMultiplier() float64 { return 1.1 }

func (Ares) OnRoundEnd(api *battle.API) {
	api.Fighter().Overload += 0.15
}

// Unshakable refuses the ground, twice per battle.
type Unshakable struct {
	base
	used int
}

func (*Unshakable) Kind() domain.PactKind     { return domain.PactUnshakable }
func (*Unshakable) Rarity() domain.PactRarity { return domain.RarityEpic }

func (u *Unshakable) FighterTick(api *battle.API) {
	f := api.Fighter()
	if u.used >= 2 || f.Composure.Kind != battle.ComposureOnGround {
		return
	}
	u.used++
	f.Composure = battle.Standing()
	api.EmitMessage(fmt.Sprintf("%s refuses the ground and stands right back up!", f.Name))
}

// Phoenix slowly burns wounds closed.
type Phoenix struct{ base }

func (Phoenix) Kind() domain.PactKind     { return domain.PactPhoenix }
func (Phoenix) Rarity() domain.PactRarity { return domain.RarityLegendary }

func (Phoenix) OnRoundEnd(api *battle.API) {
	f := api.Fighter()
	heal := int32(math.Round(float64(f.Resistance.Max+f.Vitality.Max) * 0.015))
	if heal > 0 {
		f.Heal(heal)
	}
}

// Coward fights dirty: every hit aims for the footing.
type Coward struct{ base }

func (Coward) Kind() domain.PactKind     { return domain.PactCoward }
func (Coward) Rarity() domain.PactRarity { return domain.RarityCommon }

func (Coward) ModifyDamage(spec *battle.DamageSpec) {
	if spec.BalanceEffectiveness > 0 {
		spec.BalanceEffectiveness += 3
	}
}

// Apollo never misses what it aims at.
type Apollo struct{ base }

func (Apollo) Kind() domain.PactKind     { return domain.PactApollo }
func (Apollo) Rarity() domain.PactRarity { return domain.RarityUncommon }

func (Apollo) ModifyDamage(spec *battle.DamageSpec) {
	if spec.Accuracy <= 100 {
		spec.Accuracy += 8
	}
}

// Hydra regrows what is severed: once per battle, when resistance falls
// below a third, a surge restores a quarter of it.
type Hydra struct {
	base
	used bool
}

func (*Hydra) Kind() domain.PactKind     { return domain.PactHydra }
func (*Hydra) Rarity() domain.PactRarity { return domain.RarityMythic }

func (h *Hydra) FighterTick(api *battle.API) {
	f := api.Fighter()
	if h.used || f.IsDefeated || f.Resistance.Fraction() >= 1.0/3 || f.Resistance.Value <= 0 {
		return
	}
	h.used = true
	surge := f.Resistance.Max / 4
	f.Resistance.Add(surge)
	api.EmitMessage(fmt.Sprintf("%s's wounds writhe and regrow (+%d)!", f.Name, surge))
}
