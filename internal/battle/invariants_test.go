package battle

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/etheris-rpg/etheris/internal/domain"
)

// TestBattleInvariants drives random battles and checks the structural
// invariants after every action.
func TestBattleInvariants(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		seed := rapid.Int64().Draw(t, "seed")
		teamSizes := rapid.SliceOfN(rapid.IntRange(1, 3), 2, 3).Draw(t, "teams")

		var data []domain.FighterData
		for team, size := range teamSizes {
			for i := 0; i < size; i++ {
				d := testFighterData(rapid.StringMatching(`[a-z]{3,8}`).Draw(t, "name"), uint8(team))
				d.StrengthLevel = int32(rapid.IntRange(0, 40).Draw(t, "str"))
				d.Resistance.Max = int32(rapid.IntRange(50, 300).Draw(t, "res"))
				d.Resistance.Value = d.Resistance.Max
				data = append(data, d)
			}
		}

		b, err := New(domain.RegionPlains, Settings{IsRiskingLifeAllowed: true}, seed, data...)
		require.NoError(t, err)

		// Every fighter carries a damaging skill with passive damage
		// hooks, so random runs also cross the nested hook paths.
		for _, f := range b.Fighters() {
			f.Skills = append(f.Skills, NewFighterSkill(&strikeSkill{}))
		}

		riskers := rapid.SliceOfDistinct(
			rapid.IntRange(0, len(data)-1), rapid.ID[int]).Draw(t, "riskers")
		for _, idx := range riskers {
			b.Fighter(FighterIndex(idx)).SetFlag(FlagRiskingLife)
		}

		for turn := 0; turn < 200 && b.State().Kind == StateRunning; turn++ {
			idx := b.CurrentFighter()
			input := Attack()
			switch rapid.IntRange(0, 4).Draw(t, "input") {
			case 1:
				input = Defend()
			case 2:
				input = Nothing()
			case 3:
				if b.Fighter(idx).Ether.Value >= strikeSkillCost {
					input = UseSkill(len(b.Fighter(idx).Skills) - 1)
				}
			}
			if b.MustSkip(idx) != SkipNone {
				input = Nothing()
			}
			if b.Fighter(idx).Composure.Kind == ComposureOnGround {
				input = GetUp()
			}
			_, err := b.ExecuteInput(idx, input)
			require.NoError(t, err)
			b.CloseAction()

			checkInvariants(t, b)
		}
	})
}

func checkInvariants(t *rapid.T, b *Battle) {
	alive := map[FighterIndex]bool{}
	for _, idx := range b.AliveFighters() {
		alive[idx] = true
	}

	for _, f := range b.Fighters() {
		if f.Balance < 0 || f.Balance > 100 {
			t.Fatalf("%s balance %d out of range", f.Name, f.Balance)
		}
		if f.Resistance.Value < 0 {
			t.Fatalf("%s resistance below zero", f.Name)
		}
		if f.Vitality.Value < 0 {
			t.Fatalf("%s vitality below zero", f.Name)
		}
		if f.Defense < 0 {
			t.Fatalf("%s defense below zero", f.Name)
		}
		if alive[f.Index] == f.IsDefeated {
			t.Fatalf("%s alive-list membership disagrees with IsDefeated", f.Name)
		}
		if alive[f.Index] && alive[f.Target] && b.Fighter(f.Target).Team == f.Team {
			// A live target on the own team is only legal when no enemy
			// remains to retarget to.
			if len(b.TeamEnemies(f.Index)) > 0 {
				t.Fatalf("%s targets a teammate with enemies available", f.Name)
			}
		}
	}

	if b.State().Kind == StateEnded && len(b.AliveFighters()) > 0 {
		team := b.Fighter(b.AliveFighters()[0]).Team
		for _, idx := range b.AliveFighters() {
			if b.Fighter(idx).Team != team {
				t.Fatalf("battle ended with two teams standing")
			}
		}
	}
}

const strikeSkillCost = 10

// strikeSkill is a test-only damaging skill whose passive hooks fire from
// inside the damage pipeline, on both the culprit's and the target's side.
type strikeSkill struct {
	hits   int
	misses int
}

func (s *strikeSkill) Kind() domain.SkillKind { return domain.SkillKind("strike") }
func (s *strikeSkill) Data(*Fighter) SkillData {
	return SkillData{Identifier: "strike", Name: "Strike", EtherCost: strikeSkillCost}
}
func (s *strikeSkill) CanUse(*API) bool                       { return true }
func (s *strikeSkill) AIChanceToPick(*API) domain.Probability { return domain.Never }
func (s *strikeSkill) Display(*Fighter) SkillDisplay          { return SkillDisplay{Header: "Strike"} }

func (s *strikeSkill) OnUse(api *API) error {
	api.ApplyDamage(DamageSpec{
		Culprit:  api.FighterIndex(),
		Target:   api.TargetIndex(),
		Kind:     domain.DamageKindPhysical,
		Amount:   12,
		Accuracy: 80,
	})
	return nil
}

func (s *strikeSkill) PassiveOnDamage(*API, *DamageReport)  { s.hits++ }
func (s *strikeSkill) PassiveOnDamageMiss(*API, DamageSpec) { s.misses++ }
