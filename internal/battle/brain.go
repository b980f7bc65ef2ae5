package battle

import "github.com/etheris-rpg/etheris/internal/domain"

// Brain selects inputs for non-user fighters. Implementations keep their
// own state on the fighter and must be deterministic given the battle RNG.
type Brain interface {
	Kind() domain.BrainKind

	// SelectInput produces the fighter's action for this turn.
	SelectInput(api *API) Input

	// ShouldRiskLife decides whether the fighter accepts vitality damage
	// once resistance runs out.
	ShouldRiskLife(api *API) bool

	// AllowFighterToEnterTeam decides whether a candidate may join the
	// fighter's team. Human-led teams are asked through the controller
	// instead.
	AllowFighterToEnterTeam(api *API, candidate domain.FighterData) bool
}
