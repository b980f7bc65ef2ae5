package controller

import (
	"context"

	"github.com/etheris-rpg/etheris/internal/battle"
	"github.com/etheris-rpg/etheris/internal/domain"
)

// InputProvider supplies decisions for human fighters. The platform adapter
// implements it on top of message components; tests use ScriptedProvider.
type InputProvider interface {
	// NextInput returns the fighter's action for this turn. Implementations
	// must honour ctx cancellation; a deadline expiry should surface
	// domain.ErrInputTimeout.
	NextInput(ctx context.Context, api *battle.API) (battle.Input, error)

	// DecideRiskLife asks the fighter whether to keep fighting once
	// resistance is nearly gone, spilling further damage into vitality.
	DecideRiskLife(ctx context.Context, api *battle.API) (bool, error)

	// ApproveTeamJoin asks the team whether a candidate may join it.
	ApproveTeamJoin(ctx context.Context, api *battle.API, candidate domain.FighterData) (bool, error)
}

// ScriptedProvider replays canned inputs per user handle. When a user's
// script runs dry it yields Nothing, so a battle driven by it always makes
// progress.
type ScriptedProvider struct {
	Inputs   map[string][]battle.Input
	RiskLife map[string]bool
	Approve  bool
}

// NewScriptedProvider returns an empty provider ready for Script calls.
func NewScriptedProvider() *ScriptedProvider {
	return &ScriptedProvider{
		Inputs:   make(map[string][]battle.Input),
		RiskLife: make(map[string]bool),
	}
}

// Script appends inputs to a user's queue.
func (p *ScriptedProvider) Script(user string, inputs ...battle.Input) *ScriptedProvider {
	p.Inputs[user] = append(p.Inputs[user], inputs...)
	return p
}

// Repeat fills a user's queue with n copies of the same input.
func (p *ScriptedProvider) Repeat(user string, input battle.Input, n int) *ScriptedProvider {
	for i := 0; i < n; i++ {
		p.Inputs[user] = append(p.Inputs[user], input)
	}
	return p
}

func (p *ScriptedProvider) NextInput(_ context.Context, api *battle.API) (battle.Input, error) {
	user := api.Fighter().User
	queue := p.Inputs[user]
	if len(queue) == 0 {
		return battle.Nothing(), nil
	}
	next := queue[0]
	p.Inputs[user] = queue[1:]
	return next, nil
}

func (p *ScriptedProvider) DecideRiskLife(_ context.Context, api *battle.API) (bool, error) {
	return p.RiskLife[api.Fighter().User], nil
}

func (p *ScriptedProvider) ApproveTeamJoin(context.Context, *battle.API, domain.FighterData) (bool, error) {
	return p.Approve, nil
}
