package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttributeClamping(t *testing.T) {
	a := NewAttribute(100)

	a.Subtract(150)
	assert.Equal(t, int32(0), a.Value)

	a.Add(250)
	assert.Equal(t, int32(100), a.Value)

	a.SubtractUnchecked(120)
	assert.Equal(t, int32(-20), a.Value, "unchecked subtraction may go negative")
}

func TestAttributeFraction(t *testing.T) {
	assert.InDelta(t, 0.5, Attribute{Value: 50, Max: 100}.Fraction(), 1e-9)
	assert.Equal(t, 0.0, Attribute{Value: 10, Max: 0}.Fraction())
	assert.Equal(t, 0.0, Attribute{Value: -5, Max: 100}.Fraction())
}

func TestCharacterClampInvariants(t *testing.T) {
	c := Character{
		Vitality:        Attribute{Value: 150, Max: 100},
		Resistance:      Attribute{Value: -10, Max: 100},
		Ether:           Attribute{Value: 20, Max: 50},
		ActionPoints:    9,
		MaxActionPoints: 5,
		Potential:       1.4,
	}
	c.ClampInvariants()

	assert.Equal(t, int32(100), c.Vitality.Value)
	assert.Equal(t, int32(0), c.Resistance.Value)
	assert.Equal(t, int32(5), c.ActionPoints)
	assert.Equal(t, 1.0, c.Potential)
}

func TestCharacterSerializationRoundTrip(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	c := Character{
		ID:             "c1",
		UserHandle:     "user#1",
		Name:           "Abel",
		Region:         RegionForest,
		Personalities:  []Personality{PersonalityCalm, PersonalityCourage},
		LearnedSkills:  []SkillKind{SkillCharge, SkillSimpleCut, SkillRefresh},
		EquippedSkills: []SkillKind{SkillCharge, SkillSimpleCut},
		Pacts:          []PactKind{PactSolidity, PactApollo},
		Vitality:       NewAttribute(100),
		Resistance:     NewAttribute(100),
		Ether:          NewAttribute(50),
		Potential:      0.3,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	data, err := json.Marshal(c)
	require.NoError(t, err)

	var back Character
	require.NoError(t, json.Unmarshal(data, &back))

	assert.Equal(t, c.EquippedSkills, back.EquippedSkills, "skill order must survive the round trip")
	assert.Equal(t, c.Pacts, back.Pacts)
	assert.Equal(t, c, back)
}

func TestCharacterInventory(t *testing.T) {
	c := Character{}

	c.AddItem("vital_potion", 3)
	c.AddItem("vital_potion", 2)
	require.Len(t, c.Inventory, 1, "stackable items merge")
	assert.Equal(t, int32(5), c.ItemAmount("vital_potion"))

	c.AddItem("sword", 1)
	require.Len(t, c.Inventory, 2)
	require.NotNil(t, c.Inventory[1].Durability)
	assert.Equal(t, int32(60), *c.Inventory[1].Durability)

	removed := c.RemoveItem("vital_potion", 4)
	assert.Equal(t, int32(4), removed)
	assert.Equal(t, int32(1), c.ItemAmount("vital_potion"))

	removed = c.RemoveItem("vital_potion", 10)
	assert.Equal(t, int32(1), removed)
	assert.Equal(t, int32(0), c.ItemAmount("vital_potion"))
}

func TestFindItemByName(t *testing.T) {
	t.Run("by display name", func(t *testing.T) {
		it, ok := FindItemByName("Vital Potion")
		require.True(t, ok)
		assert.Equal(t, "vital_potion", it.Identifier)
	})

	t.Run("by alternative name", func(t *testing.T) {
		it, ok := FindItemByName("KEY")
		require.True(t, ok)
		assert.Equal(t, "gate_key", it.Identifier)
	})

	t.Run("unknown name", func(t *testing.T) {
		_, ok := FindItemByName("excalibur")
		assert.False(t, ok)
	})
}

// Golden values for the locked power-level formula. If these fail, the
// formula changed - which is a contract break, not a tuning tweak.
func TestPowerLevelGolden(t *testing.T) {
	base := FighterData{
		Vitality:          NewAttribute(100),
		Resistance:        NewAttribute(100),
		Ether:             NewAttribute(50),
		StrengthLevel:     10,
		IntelligenceLevel: 10,
	}
	// 0.4*100 + 0.5*100 + 0.4*50 + 60 + 60 = 230
	assert.Equal(t, int64(230), base.PowerLevel())

	withSkills := base
	withSkills.SkillKinds = []SkillKind{SkillImbuedPunch, SkillCharge}
	// avg cost (1.0+1.2)/2 = 1.1; 1.1/0.2 = 5.5 -> 235.5 rounds to 236
	assert.Equal(t, int64(236), withSkills.PowerLevel())
}

func TestBodyImmunitiesClamp(t *testing.T) {
	b := BodyImmunities{ImmunityFire: 1.8, ImmunityIce: -2.0}
	assert.Equal(t, 1.0, b.Resistance(ImmunityFire))
	assert.Equal(t, -1.0, b.Resistance(ImmunityIce))
	assert.Equal(t, 0.0, b.Resistance(ImmunityPoison))
}

func TestDamageKindImmunities(t *testing.T) {
	assert.Equal(t, []ImmunityKind{ImmunityPhysical, ImmunityCut}, DamageKindPhysicalCut.Immunities())
	assert.Equal(t, []ImmunityKind{ImmunitySpecial, ImmunityPhysical}, DamageKindSpecialPhysical.Immunities())
}
