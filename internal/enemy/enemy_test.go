package enemy

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/etheris-rpg/etheris/internal/domain"
)

func TestRegistry(t *testing.T) {
	t.Run("lookup by identifier", func(t *testing.T) {
		tmpl, err := Get("bandit")
		require.NoError(t, err)
		assert.Equal(t, "Bandit", tmpl.Name)
	})

	t.Run("unknown identifier", func(t *testing.T) {
		_, err := Get("gelatinous_accountant")
		assert.ErrorIs(t, err, domain.ErrUnknownEnemy)
	})

	t.Run("skills and pacts resolve", func(t *testing.T) {
		for _, tmpl := range All() {
			for _, kind := range tmpl.SkillKinds {
				_, ok := domain.GetSkillMeta(kind)
				assert.True(t, ok, "%s carries unknown skill %s", tmpl.Identifier, kind)
			}
			for region := range tmpl.RegionWeights {
				assert.True(t, region.Valid(), "%s spawns in unknown region %s", tmpl.Identifier, region)
			}
		}
	})
}

func TestBrainResolution(t *testing.T) {
	assert.Equal(t, domain.BrainSimple, MustGet("bandit").BrainKind())
	assert.Equal(t, domain.BrainInsane, MustGet("mad_hermit").BrainKind())
	// Bosses without an explicit override get the boss brain.
	assert.Equal(t, domain.BrainBoss, MustGet("ogre_king").BrainKind())
}

func TestFighterData(t *testing.T) {
	tmpl := MustGet("pale_executioner")
	data := tmpl.FighterData(1)

	assert.Equal(t, uint8(1), data.Team)
	assert.Equal(t, tmpl.Name, data.Name)
	assert.False(t, data.IsHuman())
	assert.Equal(t, tmpl.Vitality, data.Vitality.Value)
	assert.Equal(t, tmpl.Vitality, data.Vitality.Max)
	require.NotNil(t, data.Weapon)
	assert.Equal(t, domain.WeaponScythe, data.Weapon.Kind)
	assert.Equal(t, "pale_executioner", data.BossTag)
	require.NotNil(t, data.Brain)
	assert.Equal(t, domain.BrainBoss, *data.Brain)

	// The snapshot must not alias template state.
	data.Immunities[domain.ImmunityFire] = -1
	data.Drop.Items[0].AmountHi = 99
	assert.NotContains(t, tmpl.Immunities, domain.ImmunityFire)
	assert.Equal(t, int32(1), tmpl.Drop.Items[0].AmountHi)
}

func TestPowerLevel(t *testing.T) {
	// Bosses must outclass the trash of their own regions.
	assert.Greater(t, MustGet("ogre_king").PowerLevel(), MustGet("bandit").PowerLevel())
	assert.Greater(t, MustGet("pale_executioner").PowerLevel(), MustGet("ruin_sentinel").PowerLevel())
}

func TestSpawnTables(t *testing.T) {
	t.Run("region filter", func(t *testing.T) {
		for _, tmpl := range ForRegion(domain.RegionSwamp) {
			assert.Greater(t, tmpl.SpawnWeight(domain.RegionSwamp), 0.0)
		}
		names := func(region domain.Region) []string {
			var out []string
			for _, tmpl := range ForRegion(region) {
				out = append(out, tmpl.Identifier)
			}
			return out
		}
		assert.Contains(t, names(domain.RegionSwamp), "swamp_lurker")
		assert.NotContains(t, names(domain.RegionTundra), "swamp_lurker")
	})

	t.Run("weighted sampling", func(t *testing.T) {
		rng := rand.New(rand.NewSource(5))
		counts := make(map[string]int)
		for i := 0; i < 500; i++ {
			tmpl, ok := SampleForRegion(rng, domain.RegionPlains)
			require.True(t, ok)
			counts[tmpl.Identifier]++
		}
		// stray_dog (80×1.2) dominates ogre_king (20×0.3) on the plains.
		assert.Greater(t, counts["stray_dog"], counts["ogre_king"])
		assert.Positive(t, counts["bandit"])
	})

	t.Run("empty region", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))
		_, ok := SampleForRegion(rng, domain.Region("the_moon"))
		assert.False(t, ok)
	})
}

func TestRollAllies(t *testing.T) {
	tmpl := MustGet("ogre_king")
	rng := rand.New(rand.NewSource(2))

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		for _, ally := range tmpl.RollAllies(rng) {
			seen[ally.Identifier] = true
		}
	}
	assert.True(t, seen["stray_dog"])
	assert.True(t, seen["bandit"])

	// Solo templates roll nothing.
	assert.Empty(t, MustGet("frost_wraith").RollAllies(rng))
}
