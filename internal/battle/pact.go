package battle

import "github.com/etheris-rpg/etheris/internal/domain"

// Pact is a passive modifier bundle attached at fighter construction.
// Pacts carry no player-visible actions; they observe the same hooks the
// skills do, with a smaller surface.
type Pact interface {
	Kind() domain.PactKind
	Rarity() domain.PactRarity

	// SetupFighter runs once while the fighter is constructed.
	SetupFighter(fighter *Fighter)

	// ModifyDamage may tweak an outgoing damage specifier before the
	// pipeline prices it.
	ModifyDamage(spec *DamageSpec)

	// DamageMultiplier is the pact's flat outgoing damage factor.
	DamageMultiplier() float64
}

// PactRoundHook runs once per closed round for the owning fighter.
type PactRoundHook interface {
	OnRoundEnd(api *API)
}

// PactDamageHook runs after every resolved hit involving the owner.
type PactDamageHook interface {
	OnDamage(api *API, report *DamageReport)
}

// PactFighterTicker runs after every action of the owning fighter's battle.
type PactFighterTicker interface {
	FighterTick(api *API)
}
