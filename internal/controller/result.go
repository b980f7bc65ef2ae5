package controller

import (
	"math/rand"

	"github.com/google/uuid"

	"github.com/etheris-rpg/etheris/internal/battle"
	"github.com/etheris-rpg/etheris/internal/domain"
	"github.com/etheris-rpg/etheris/internal/metrics"
)

// FighterOutcome is one fighter's final line in the result: who they were,
// how they ended, and who put them down.
type FighterOutcome struct {
	Index battle.FighterIndex
	Name  string
	User  string
	Team  uint8

	Won    bool
	Killed bool // vitality ran out, not just resistance

	KilledBy   *battle.FighterIndex
	DefeatedBy *battle.FighterIndex
}

// Reward is the settled loot for one user.
type Reward struct {
	Orbs  int64
	XP    int64
	Items map[string]int32
}

func (r *Reward) addItem(identifier string, amount int32) {
	if r.Items == nil {
		r.Items = make(map[string]int32)
	}
	r.Items[identifier] += amount
}

// Result is the settled battle: outcome per fighter plus the loot rolled
// from the losers' drop tables. Persistence of consequences happens in the
// character service, not here.
type Result struct {
	BattleID   uuid.UUID
	Region     domain.Region
	WinnerTeam uint8
	Winners    []battle.FighterIndex
	Losers     []battle.FighterIndex
	Turns      int

	Fighters []FighterOutcome

	// Rewards by user handle. Empty when the battle has no consequences
	// or no human won.
	Rewards map[string]Reward

	// DefeatedBosses lists boss tags beaten this battle, recorded on the
	// winners' characters.
	DefeatedBosses []string
}

// Draw reports a battle that ended with no team standing.
func (r *Result) Draw() bool { return len(r.Winners) == 0 }

func (r *Result) outcomeLabel() string {
	switch {
	case r.Draw():
		return metrics.OutcomeDraw
	case r.humanWon():
		return metrics.OutcomeVictory
	default:
		return metrics.OutcomeDefeat
	}
}

func (r *Result) humanWon() bool {
	for _, o := range r.Fighters {
		if o.Won && o.User != "" {
			return true
		}
	}
	return false
}

// buildResult snapshots the ended battle and, when consequences apply,
// settles loot using the battle's own RNG so results stay reproducible
// per seed.
func buildResult(b *battle.Battle) *Result {
	state := b.State()
	result := &Result{
		BattleID:   b.ID,
		Region:     b.Region,
		WinnerTeam: state.WinnerTeam,
		Winners:    append([]battle.FighterIndex(nil), state.Winners...),
		Turns:      b.TurnCounter(),
	}

	winners := make(map[battle.FighterIndex]bool, len(state.Winners))
	for _, idx := range state.Winners {
		winners[idx] = true
	}

	for _, f := range b.Fighters() {
		outcome := FighterOutcome{
			Index:      f.Index,
			Name:       f.Name,
			User:       f.User,
			Team:       f.Team,
			Won:        winners[f.Index],
			Killed:     f.KilledBy != nil,
			KilledBy:   f.KilledBy,
			DefeatedBy: f.DefeatedBy,
		}
		result.Fighters = append(result.Fighters, outcome)
		if !outcome.Won {
			result.Losers = append(result.Losers, f.Index)
		}
	}

	if b.Settings.HasConsequences {
		settleRewards(b, result, winners)
	}
	return result
}

// settleRewards rolls each loser's drop table once. Orbs and XP are split
// evenly across human winners, remainder to the first; item lines go to the
// human credited with the takedown, else to the first human winner.
func settleRewards(b *battle.Battle, result *Result, winners map[battle.FighterIndex]bool) {
	var humanWinners []string
	for _, idx := range result.Winners {
		f := b.Fighter(idx)
		if f.IsHuman() {
			humanWinners = append(humanWinners, f.User)
		}
	}
	if len(humanWinners) == 0 {
		return
	}

	result.Rewards = make(map[string]Reward, len(humanWinners))
	for _, user := range humanWinners {
		result.Rewards[user] = Reward{}
	}

	rng := b.RNG()
	var potOrbs, potXP int64
	for _, idx := range result.Losers {
		loser := b.Fighter(idx)
		if loser.BossTag != "" {
			result.DefeatedBosses = append(result.DefeatedBosses, loser.BossTag)
		}
		if loser.Drop == nil {
			continue
		}
		potOrbs += rollRange(rng, loser.Drop.OrbsLo, loser.Drop.OrbsHi)
		potXP += rollRange(rng, loser.Drop.XPLo, loser.Drop.XPHi)

		taker := takedownUser(b, loser, winners)
		if taker == "" {
			taker = humanWinners[0]
		}
		reward := result.Rewards[taker]
		for _, line := range loser.Drop.Items {
			if !line.Probability.Passes(rng) {
				continue
			}
			amount := int32(rollRange(rng, int64(line.AmountLo), int64(line.AmountHi)))
			if amount > 0 {
				reward.addItem(line.ItemIdentifier, amount)
			}
		}
		result.Rewards[taker] = reward
	}

	share := potOrbs / int64(len(humanWinners))
	shareXP := potXP / int64(len(humanWinners))
	for i, user := range humanWinners {
		reward := result.Rewards[user]
		reward.Orbs += share
		reward.XP += shareXP
		if i == 0 {
			reward.Orbs += potOrbs % int64(len(humanWinners))
			reward.XP += potXP % int64(len(humanWinners))
		}
		result.Rewards[user] = reward
	}
}

// takedownUser returns the handle of the winning human credited with this
// loser's defeat, if any.
func takedownUser(b *battle.Battle, loser *battle.Fighter, winners map[battle.FighterIndex]bool) string {
	credited := loser.KilledBy
	if credited == nil {
		credited = loser.DefeatedBy
	}
	if credited == nil || !winners[*credited] {
		return ""
	}
	return b.Fighter(*credited).User
}

func rollRange(rng *rand.Rand, lo, hi int64) int64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Int63n(hi-lo+1)
}
