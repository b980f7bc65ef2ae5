package worldevent

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/etheris-rpg/etheris/internal/domain"
	"github.com/etheris-rpg/etheris/internal/enemy"
)

func testCharacter() *domain.Character {
	return &domain.Character{
		ID:                "char-1",
		UserHandle:        "alice",
		Name:              "Alice",
		Region:            domain.RegionPlains,
		Vitality:          domain.NewAttribute(100),
		Resistance:        domain.NewAttribute(100),
		Ether:             domain.NewAttribute(100),
		StrengthLevel:     5,
		IntelligenceLevel: 5,
		Orbs:              200,
	}
}

func testState(ch *domain.Character, region domain.Region, seed int64) *BuildState {
	return &BuildState{
		Character: ch,
		Region:    region,
		RNG:       rand.New(rand.NewSource(seed)),
	}
}

func mustEvent(t *testing.T, identifier string) Event {
	t.Helper()
	e, ok := GetEvent(identifier)
	require.True(t, ok, "event %s not registered", identifier)
	return e
}

func mustAction(t *testing.T, e Event, name string) Action {
	t.Helper()
	for _, a := range e.Actions {
		if a.Name == name {
			return a
		}
	}
	t.Fatalf("event %s has no action %q", e.Identifier, name)
	return Action{}
}

func TestConditions(t *testing.T) {
	ch := testCharacter()
	s := testState(ch, domain.RegionPlains, 1)

	t.Run("items and tags", func(t *testing.T) {
		assert.False(t, HasItem("knife", 1)(s))
		ch.AddItem("knife", 1)
		assert.True(t, HasItem("knife", 1)(s))
		assert.False(t, HasItem("knife", 2)(s))

		assert.False(t, HasTag("chosen")(s))
		ch.Tags = append(ch.Tags, "chosen")
		assert.True(t, HasTag("chosen")(s))
		assert.False(t, Not(HasTag("chosen"))(s))
	})

	t.Run("record and traits", func(t *testing.T) {
		assert.False(t, DefeatedBoss("ogre_king")(s))
		ch.DefeatedBosses = append(ch.DefeatedBosses, "ogre_king")
		assert.True(t, DefeatedBoss("ogre_king")(s))

		assert.False(t, HasPersonality(domain.PersonalityCourage)(s))
		ch.Personalities = append(ch.Personalities, domain.PersonalityCourage)
		assert.True(t, HasPersonality(domain.PersonalityCourage)(s))
	})

	t.Run("power comparisons", func(t *testing.T) {
		// A fresh character is far below the mountain boss but above a dog.
		assert.True(t, WeakerThan("ogre_king")(s))
		assert.False(t, StrongerThan("ogre_king")(s))
		assert.False(t, SimilarPowerTo("ogre_king")(s))
		assert.True(t, StrongerThan("stray_dog")(s))

		// Pump the character until the gap closes within a quarter.
		strong := testCharacter()
		strong.StrengthLevel = 18
		strong.IntelligenceLevel = 10
		strong.Vitality = domain.NewAttribute(260)
		strong.Resistance = domain.NewAttribute(220)
		ss := testState(strong, domain.RegionMountain, 1)
		assert.True(t, SimilarPowerTo("ogre_king")(ss))
	})

	t.Run("unknown enemy never matches", func(t *testing.T) {
		assert.False(t, SimilarPowerTo("void_emperor")(s))
		assert.False(t, StrongerThan("void_emperor")(s))
	})
}

func TestPickEvent(t *testing.T) {
	t.Run("region weighting", func(t *testing.T) {
		s := testState(testCharacter(), domain.RegionPlains, 4)
		seen := make(map[string]int)
		for i := 0; i < 300; i++ {
			e, ok := PickEvent(s)
			require.True(t, ok)
			seen[e.Identifier]++
		}
		assert.Positive(t, seen["wandering_merchant"])
		assert.Positive(t, seen["roadside_ambush"])
		assert.Positive(t, seen["strange_tracks"])
		// Mountain-only events never spawn on the plains.
		assert.Zero(t, seen["ogre_challenge"])
		assert.Zero(t, seen["forgotten_shrine"])
	})

	t.Run("spawn conditions", func(t *testing.T) {
		// The ogre challenge demands a near-peer who has not beaten it.
		weakling := testState(testCharacter(), domain.RegionMountain, 4)
		for i := 0; i < 100; i++ {
			e, ok := PickEvent(weakling)
			require.True(t, ok)
			assert.NotEqual(t, "ogre_challenge", e.Identifier)
		}

		peer := testCharacter()
		peer.StrengthLevel = 18
		peer.Vitality = domain.NewAttribute(260)
		peer.Resistance = domain.NewAttribute(220)
		s := testState(peer, domain.RegionMountain, 4)
		found := false
		for i := 0; i < 300; i++ {
			if e, ok := PickEvent(s); ok && e.Identifier == "ogre_challenge" {
				found = true
				break
			}
		}
		assert.True(t, found)
	})

	t.Run("nowhere to spawn", func(t *testing.T) {
		s := testState(testCharacter(), domain.Region("the_moon"), 4)
		_, ok := PickEvent(s)
		assert.False(t, ok)
	})
}

func TestOfferedActions(t *testing.T) {
	e := mustEvent(t, "wandering_merchant")
	s := testState(testCharacter(), domain.RegionCity, 2)

	offered := e.OfferedActions(s)
	require.Len(t, offered, 1, "robbery needs an aggressive streak")
	assert.Equal(t, "Browse the wares", offered[0].Name)

	s.Character.Personalities = []domain.Personality{domain.PersonalityAggressiveness}
	assert.Len(t, e.OfferedActions(s), 2)
}

func TestExecuteAction(t *testing.T) {
	t.Run("unavailable action is rejected", func(t *testing.T) {
		e := mustEvent(t, "strange_tracks")
		s := testState(testCharacter(), domain.RegionForest, 3)
		_, err := ExecuteAction(s, e, mustAction(t, e, "Set a snare first"))
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("instant battle", func(t *testing.T) {
		e := mustEvent(t, "roadside_ambush")
		s := testState(testCharacter(), domain.RegionForest, 3)
		out, err := ExecuteAction(s, e, mustAction(t, e, "Stand and fight"))
		require.NoError(t, err)
		require.Len(t, out.Battles, 1)
		assert.True(t, out.Battles[0].Instant)
		assert.Equal(t, "bandit", out.Battles[0].Enemies[0].Identifier)
	})

	t.Run("prejudice takes orbs", func(t *testing.T) {
		e := mustEvent(t, "roadside_ambush")
		s := testState(testCharacter(), domain.RegionForest, 3)
		out, err := ExecuteAction(s, e, mustAction(t, e, "Throw your coin purse and run"))
		require.NoError(t, err)
		// 20 flat + 10% of 200.
		assert.Equal(t, int64(160), s.Character.Orbs)
		assert.True(t, out.CharacterDirty)
		assert.Contains(t, out.Messages, "You lost 40 orbs.")
	})

	t.Run("tags karma and extras", func(t *testing.T) {
		e := mustEvent(t, "forgotten_shrine")
		s := testState(testCharacter(), domain.RegionRuins, 3)
		out, err := ExecuteAction(s, e, mustAction(t, e, "Desecrate the shrine"))
		require.NoError(t, err)
		assert.True(t, s.Character.HasTag("shrine_cursed"))
		assert.Equal(t, int32(-10), s.Character.Karma)
		assert.Contains(t, out.Messages, "The hum stops. The silence feels like a held breath.")
	})

	t.Run("rewards pay out", func(t *testing.T) {
		e := mustEvent(t, "lucky_find")
		ch := testCharacter()
		s := testState(ch, domain.RegionRuins, 6)
		out, err := ExecuteAction(s, e, mustAction(t, e, "Dig it out"))
		require.NoError(t, err)
		assert.Greater(t, ch.Orbs, int64(200))
		assert.Positive(t, ch.StrengthXP+ch.IntelligenceXP+ch.KnowledgeXP)
		assert.NotEmpty(t, ch.Inventory, "one item sampled from the table")
		assert.True(t, out.CharacterDirty)
	})

	t.Run("region encounter sampling", func(t *testing.T) {
		e := mustEvent(t, "strange_tracks")
		s := testState(testCharacter(), domain.RegionSwamp, 3)
		out, err := ExecuteAction(s, e, mustAction(t, e, "Follow the tracks"))
		require.NoError(t, err)
		require.Len(t, out.Battles, 1)
		assert.False(t, out.Battles[0].Instant)
		assert.Greater(t, out.Battles[0].Enemies[0].SpawnWeight(domain.RegionSwamp), 0.0)
	})

	t.Run("durability wear and breakage", func(t *testing.T) {
		e := mustEvent(t, "strange_tracks")
		ch := testCharacter()
		ch.AddItem("knife", 1)
		require.NotNil(t, ch.Inventory[0].Durability)
		*ch.Inventory[0].Durability = 6

		s := testState(ch, domain.RegionForest, 3)
		action := mustAction(t, e, "Set a snare first")

		_, err := ExecuteAction(s, e, action)
		require.NoError(t, err)
		assert.Equal(t, int32(2), *ch.Inventory[0].Durability)

		out, err := ExecuteAction(s, e, action)
		require.NoError(t, err)
		assert.Zero(t, ch.ItemAmount("knife"))
		assert.Contains(t, out.Messages, "Your Knife broke.")
	})

	t.Run("boss encounter includes ally roll", func(t *testing.T) {
		peer := testCharacter()
		peer.StrengthLevel = 18
		peer.Vitality = domain.NewAttribute(260)
		peer.Resistance = domain.NewAttribute(220)

		e := mustEvent(t, "ogre_challenge")
		s := testState(peer, domain.RegionMountain, 8)
		out, err := ExecuteAction(s, e, mustAction(t, e, "Answer the challenge"))
		require.NoError(t, err)
		require.Len(t, out.Battles, 1)
		req := out.Battles[0]
		assert.False(t, req.Instant, "boss encounters go through the prompt")
		assert.Equal(t, "ogre_king", req.Enemies[0].Identifier)
		assert.LessOrEqual(t, len(req.Enemies), 1+len(enemy.MustGet("ogre_king").Allies))
	})
}

func TestSampleAction(t *testing.T) {
	e := mustEvent(t, "roadside_ambush")
	s := testState(testCharacter(), domain.RegionForest, 5)

	seen := make(map[string]int)
	for i := 0; i < 200; i++ {
		a, ok := SampleAction(s, e)
		require.True(t, ok)
		seen[a.Name]++
	}
	// High-probability fight outweighs the flee option.
	assert.Greater(t, seen["Stand and fight"], seen["Throw your coin purse and run"])
}
