package worldevent

import "github.com/etheris-rpg/etheris/internal/domain"

// eventTable is the shared read-only event registry, sampled by PickEvent.
var eventTable = []Event{
	{
		Identifier: "wandering_merchant",
		Emoji:      "🧳",
		Spawn: Spawn{
			BaseProbability: domain.Medium,
			WeightedRegions: map[domain.Region]float64{
				domain.RegionCity:   1.4,
				domain.RegionPlains: 1.0,
				domain.RegionDesert: 0.7,
			},
		},
		Message: "A wandering merchant waves you over to a cart full of wares.",
		Actions: []Action{
			{
				Name:        "Browse the wares",
				Emoji:       "🛒",
				Probability: domain.High,
				Consequences: []Consequence{
					Sure(Shop{}),
				},
			},
			{
				Name:        "Rob the merchant",
				Emoji:       "🗡️",
				Probability: domain.Low,
				Conditions:  []Condition{HasPersonality(domain.PersonalityAggressiveness)},
				Consequences: []Consequence{
					{
						Probability: domain.Medium,
						Kind:        Rewards{Iterations: 2, OrbsLo: 30, OrbsHi: 80},
						Extra: []Consequence{
							Sure(RemoveKarma{Amount: 5}),
							Sure(AddTag{Tag: "merchant_robber"}),
						},
					},
					{
						Probability: domain.Medium,
						Kind:        Message{Text: "The merchant's bodyguard steps out of the shadows."},
						Extra: []Consequence{
							Sure(InstantBattle{Enemies: []string{"city_duelist"}}),
						},
					},
				},
			},
		},
	},
	{
		Identifier: "roadside_ambush",
		Emoji:      "🏹",
		Spawn: Spawn{
			BaseProbability: domain.Medium,
			WeightedRegions: map[domain.Region]float64{
				domain.RegionPlains:   1.0,
				domain.RegionForest:   1.2,
				domain.RegionMountain: 0.8,
			},
		},
		Message: "Figures rise from the tall grass, blades drawn.",
		Actions: []Action{
			{
				Name:        "Stand and fight",
				Emoji:       "⚔️",
				Probability: domain.High,
				Consequences: []Consequence{
					Sure(InstantBattle{Enemies: []string{"bandit"}}),
				},
			},
			{
				Name:        "Throw your coin purse and run",
				Emoji:       "💨",
				Probability: domain.Medium,
				Consequences: []Consequence{
					Sure(Prejudice{FixedOrbs: 20, OrbsPercentage: 0.1}),
					Sure(Message{Text: "The bandits scramble for the coins as you slip away."}),
				},
			},
		},
	},
	{
		Identifier: "forgotten_shrine",
		Emoji:      "⛩️",
		Spawn: Spawn{
			BaseProbability: domain.Low,
			WeightedRegions: map[domain.Region]float64{
				domain.RegionRuins:    1.5,
				domain.RegionMountain: 0.8,
				domain.RegionForest:   0.5,
			},
		},
		Message: "A moss-eaten shrine hums with a faint, patient power.",
		Actions: []Action{
			{
				Name:        "Offer orbs",
				Emoji:       "🪙",
				Probability: domain.Medium,
				Consequences: []Consequence{
					Sure(Prejudice{FixedOrbs: 50}),
					{
						Probability: domain.High,
						Kind:        Rewards{XPLo: 40, XPHi: 90},
					},
					{
						Probability: domain.Low,
						Kind:        AddItem{Item: "ember_crystal", AmountLo: 1, AmountHi: 1},
					},
				},
			},
			{
				Name:        "Desecrate the shrine",
				Emoji:       "🔨",
				Probability: domain.Low,
				Conditions:  []Condition{Not(HasTag("shrine_cursed"))},
				Consequences: []Consequence{
					Sure(AddTag{Tag: "shrine_cursed"}),
					Sure(RemoveKarma{Amount: 10}),
					{
						Probability: domain.Medium,
						Kind:        InstantBattle{Enemies: []string{"ruin_sentinel"}},
					},
				},
				ExtraConsequences: []Consequence{
					Sure(Message{Text: "The hum stops. The silence feels like a held breath."}),
				},
			},
		},
	},
	{
		Identifier: "strange_tracks",
		Emoji:      "🐾",
		Spawn: Spawn{
			BaseProbability: domain.High,
			WeightedRegions: map[domain.Region]float64{
				domain.RegionForest: 1.0,
				domain.RegionSwamp:  1.0,
				domain.RegionTundra: 1.0,
				domain.RegionDesert: 1.0,
				domain.RegionPlains: 0.8,
			},
		},
		Message: "Fresh tracks cut across your path.",
		Actions: []Action{
			{
				Name:        "Follow the tracks",
				Emoji:       "🔎",
				Probability: domain.High,
				Consequences: []Consequence{
					Sure(MultiplePossibleEncounters{}),
				},
			},
			{
				Name:        "Set a snare first",
				Emoji:       "🪤",
				Probability: domain.Low,
				Conditions:  []Condition{HasItem("knife", 1)},
				Consequences: []Consequence{
					Sure(RemoveItemDurability{Item: "knife", Amount: 4}),
					Sure(MultiplePossibleEncounters{}),
				},
			},
		},
	},
	{
		Identifier: "ogre_challenge",
		Emoji:      "👹",
		Spawn: Spawn{
			BaseProbability: domain.Low,
			WeightedRegions: map[domain.Region]float64{
				domain.RegionMountain: 1.0,
			},
			Conditions: []Condition{
				Not(DefeatedBoss("ogre_king")),
				SimilarPowerTo("ogre_king"),
			},
		},
		Message: "Boulders shift above the pass. Something enormous is waiting for a worthy fight.",
		Actions: []Action{
			{
				Name:        "Answer the challenge",
				Emoji:       "👊",
				Probability: domain.Medium,
				Consequences: []Consequence{
					Sure(Encounter{Enemy: "ogre_king"}),
				},
			},
			{
				Name:        "Back away slowly",
				Emoji:       "🚶",
				Probability: domain.Medium,
				Consequences: []Consequence{
					Sure(Message{Text: "A disappointed bellow follows you down the trail."}),
				},
			},
		},
	},
	{
		Identifier: "lucky_find",
		Emoji:      "✨",
		Spawn: Spawn{
			BaseProbability: domain.Low,
			WeightedRegions: map[domain.Region]float64{
				domain.RegionPlains: 1.0,
				domain.RegionCity:   1.0,
				domain.RegionRuins:  1.3,
			},
		},
		Message: "Something glints beneath the dust.",
		Actions: []Action{
			{
				Name:        "Dig it out",
				Emoji:       "⛏️",
				Probability: domain.High,
				Consequences: []Consequence{
					Sure(Rewards{Iterations: 1, OrbsLo: 10, OrbsHi: 60, XPLo: 5, XPHi: 20}),
				},
				ExtraConsequences: []Consequence{
					{
						Probability: domain.Low,
						Kind:        SubEvent{Event: "roadside_ambush"},
					},
				},
			},
		},
	},
}
