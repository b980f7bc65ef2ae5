// Package worldevent selects and resolves world events: region-weighted
// sampling, condition gating, and the consequence tree that hands battles
// and encounters off to the battle layer.
package worldevent

import (
	"math/rand"

	"github.com/etheris-rpg/etheris/internal/domain"
	"github.com/etheris-rpg/etheris/internal/enemy"
)

// BuildState is what events see when they are constructed and evaluated:
// the acting character, where they are, and the run's RNG.
type BuildState struct {
	Character *domain.Character
	Region    domain.Region
	RNG       *rand.Rand
}

// PowerLevel is the character's PL as a fighter snapshot.
func (s *BuildState) PowerLevel() int64 {
	return s.Character.FighterData(0).PowerLevel()
}

// Condition gates events, actions, and consequences on character state.
type Condition func(s *BuildState) bool

// None always passes.
func None() Condition {
	return func(*BuildState) bool { return true }
}

// Not inverts a condition.
func Not(c Condition) Condition {
	return func(s *BuildState) bool { return !c(s) }
}

// All passes when every condition passes.
func All(conds ...Condition) Condition {
	return func(s *BuildState) bool {
		for _, c := range conds {
			if !c(s) {
				return false
			}
		}
		return true
	}
}

// HasItem requires at least amount of the item in the inventory.
func HasItem(identifier string, amount int32) Condition {
	return func(s *BuildState) bool {
		return s.Character.ItemAmount(identifier) >= amount
	}
}

// HasTag requires the story tag on the character.
func HasTag(tag string) Condition {
	return func(s *BuildState) bool { return s.Character.HasTag(tag) }
}

// DefeatedBoss requires the boss on the character's record.
func DefeatedBoss(identifier string) Condition {
	return func(s *BuildState) bool { return s.Character.HasDefeatedBoss(identifier) }
}

// HasPersonality requires the trait on the character.
func HasPersonality(p domain.Personality) Condition {
	return func(s *BuildState) bool { return s.Character.HasPersonality(p) }
}

// similarPowerFraction is the band for SimilarPowerTo: the PL gap may be at
// most a quarter of the larger PL.
const similarPowerFraction = 0.25

// SimilarPowerTo passes when the character's PL is within a quarter of the
// enemy's, in either direction.
func SimilarPowerTo(enemyID string) Condition {
	return func(s *BuildState) bool {
		tmpl, err := enemy.Get(enemyID)
		if err != nil {
			return false
		}
		mine, theirs := s.PowerLevel(), tmpl.PowerLevel()
		larger := mine
		if theirs > larger {
			larger = theirs
		}
		diff := mine - theirs
		if diff < 0 {
			diff = -diff
		}
		return float64(diff) <= similarPowerFraction*float64(larger)
	}
}

// StrongerThan passes when the character's PL exceeds the enemy's.
func StrongerThan(enemyID string) Condition {
	return func(s *BuildState) bool {
		tmpl, err := enemy.Get(enemyID)
		if err != nil {
			return false
		}
		return s.PowerLevel() > tmpl.PowerLevel()
	}
}

// WeakerThan passes when the character's PL is below the enemy's.
func WeakerThan(enemyID string) Condition {
	return func(s *BuildState) bool {
		tmpl, err := enemy.Get(enemyID)
		if err != nil {
			return false
		}
		return s.PowerLevel() < tmpl.PowerLevel()
	}
}

func satisfied(conds []Condition, s *BuildState) bool {
	for _, c := range conds {
		if !c(s) {
			return false
		}
	}
	return true
}
