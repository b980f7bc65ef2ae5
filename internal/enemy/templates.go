package enemy

import "github.com/etheris-rpg/etheris/internal/domain"

func brainPtr(k domain.BrainKind) *domain.BrainKind { return &k }

func weaponPtr(k domain.WeaponKind) *domain.WeaponKind { return &k }

// templateTable is the shared read-only enemy registry. Validated once at
// init; never mutated at runtime.
var templateTable = []Template{
	{
		Identifier:       "stray_dog",
		Name:             "Stray Dog",
		SpawnProbability: domain.High,
		RegionWeights: map[domain.Region]float64{
			domain.RegionPlains: 1.2,
			domain.RegionCity:   1.5,
			domain.RegionForest: 0.8,
		},
		Personalities:     []domain.Personality{domain.PersonalityAggressiveness},
		SkillKinds:        []domain.SkillKind{domain.SkillBite},
		StrengthLevel:     3,
		IntelligenceLevel: 1,
		Vitality:          60,
		Resistance:        50,
		Ether:             20,
		Potential:         0.05,
		Drop: &domain.DropReward{
			OrbsLo: 5, OrbsHi: 15,
			XPLo: 8, XPHi: 14,
		},
	},
	{
		Identifier:       "bandit",
		Name:             "Bandit",
		SpawnProbability: domain.High,
		RegionWeights: map[domain.Region]float64{
			domain.RegionPlains:   1.0,
			domain.RegionForest:   1.0,
			domain.RegionDesert:   0.9,
			domain.RegionMountain: 0.6,
		},
		Personalities:     []domain.Personality{domain.PersonalityCowardice},
		SkillKinds:        []domain.SkillKind{domain.SkillSimpleCut},
		PactKinds:         []domain.PactKind{domain.PactCoward},
		StrengthLevel:     6,
		IntelligenceLevel: 4,
		Vitality:          90,
		Resistance:        80,
		Ether:             40,
		Potential:         0.1,
		WeaponKind:        weaponPtr(domain.WeaponKnife),
		Allies: []AllyRef{
			{Probability: domain.Medium, Enemy: "bandit"},
			{Probability: domain.Low, Enemy: "stray_dog"},
		},
		Drop: &domain.DropReward{
			OrbsLo: 15, OrbsHi: 40,
			XPLo: 18, XPHi: 30,
			Items: []domain.ItemReward{
				{ItemIdentifier: "knife", AmountLo: 1, AmountHi: 1, Probability: domain.Low},
			},
		},
	},
	{
		Identifier:       "swamp_lurker",
		Name:             "Swamp Lurker",
		SpawnProbability: domain.Medium,
		RegionWeights: map[domain.Region]float64{
			domain.RegionSwamp:  1.6,
			domain.RegionForest: 0.4,
		},
		Personalities:     []domain.Personality{domain.PersonalityCalm},
		SkillKinds:        []domain.SkillKind{domain.SkillPoisonGas, domain.SkillWaterJet},
		StrengthLevel:     5,
		IntelligenceLevel: 7,
		Vitality:          110,
		Resistance:        90,
		Ether:             80,
		Potential:         0.15,
		Immunities: domain.BodyImmunities{
			domain.ImmunityPoison: 1,
			domain.ImmunityWater:  0.5,
			domain.ImmunityFire:   -0.3,
		},
		Drop: &domain.DropReward{
			OrbsLo: 25, OrbsHi: 60,
			XPLo: 30, XPHi: 45,
			Items: []domain.ItemReward{
				{ItemIdentifier: "ether_vial", AmountLo: 1, AmountHi: 2, Probability: domain.Medium},
			},
		},
	},
	{
		Identifier:       "frost_wraith",
		Name:             "Frost Wraith",
		SpawnProbability: domain.Medium,
		RegionWeights: map[domain.Region]float64{
			domain.RegionTundra:   1.5,
			domain.RegionMountain: 0.7,
		},
		Personalities:     []domain.Personality{domain.PersonalityCalm, domain.PersonalityIntelligence},
		SkillKinds:        []domain.SkillKind{domain.SkillIcyShot, domain.SkillEtherFlow},
		StrengthLevel:     4,
		IntelligenceLevel: 10,
		Vitality:          90,
		Resistance:        100,
		Ether:             120,
		Potential:         0.2,
		Immunities: domain.BodyImmunities{
			domain.ImmunityIce:  1,
			domain.ImmunityFire: -0.5,
		},
		Drop: &domain.DropReward{
			OrbsLo: 35, OrbsHi: 80,
			XPLo: 40, XPHi: 60,
		},
	},
	{
		Identifier:       "dune_stalker",
		Name:             "Dune Stalker",
		SpawnProbability: domain.Medium,
		RegionWeights: map[domain.Region]float64{
			domain.RegionDesert: 1.4,
			domain.RegionRuins:  0.5,
		},
		Personalities:     []domain.Personality{domain.PersonalityAggressiveness, domain.PersonalityCourage},
		SkillKinds:        []domain.SkillKind{domain.SkillTornadoKick, domain.SkillCyclonePush},
		StrengthLevel:     9,
		IntelligenceLevel: 5,
		Vitality:          120,
		Resistance:        110,
		Ether:             60,
		Potential:         0.2,
		WeaponKind:        weaponPtr(domain.WeaponSpear),
		Drop: &domain.DropReward{
			OrbsLo: 40, OrbsHi: 90,
			XPLo: 45, XPHi: 70,
		},
	},
	{
		Identifier:       "mad_hermit",
		Name:             "Mad Hermit",
		SpawnProbability: domain.Low,
		RegionWeights: map[domain.Region]float64{
			domain.RegionMountain: 1.0,
			domain.RegionRuins:    0.8,
			domain.RegionSwamp:    0.4,
		},
		Personalities:     []domain.Personality{domain.PersonalityInsanity},
		Brain:             brainPtr(domain.BrainInsane),
		SkillKinds:        []domain.SkillKind{domain.SkillThunderFang, domain.SkillParalyzingBet},
		StrengthLevel:     7,
		IntelligenceLevel: 9,
		Vitality:          100,
		Resistance:        120,
		Ether:             100,
		Potential:         0.25,
		Drop: &domain.DropReward{
			OrbsLo: 50, OrbsHi: 110,
			XPLo: 55, XPHi: 85,
			Items: []domain.ItemReward{
				{ItemIdentifier: "stamina_root", AmountLo: 1, AmountHi: 3, Probability: domain.Medium},
			},
		},
	},
	{
		Identifier:       "ruin_sentinel",
		Name:             "Ruin Sentinel",
		SpawnProbability: domain.Low,
		RegionWeights: map[domain.Region]float64{
			domain.RegionRuins: 1.3,
		},
		Personalities:     []domain.Personality{domain.PersonalityCalm, domain.PersonalityCourage},
		SkillKinds:        []domain.SkillKind{domain.SkillEarthquake, domain.SkillImbuedPunch},
		PactKinds:         []domain.PactKind{domain.PactSolidity},
		StrengthLevel:     12,
		IntelligenceLevel: 6,
		Vitality:          160,
		Resistance:        150,
		Ether:             80,
		Potential:         0.3,
		Immunities: domain.BodyImmunities{
			domain.ImmunityBleeding: 1,
			domain.ImmunityPoison:   1,
			domain.ImmunityElectric: -0.4,
		},
		Drop: &domain.DropReward{
			OrbsLo: 70, OrbsHi: 150,
			XPLo: 80, XPHi: 120,
		},
	},
	{
		Identifier:       "city_duelist",
		Name:             "City Duelist",
		SpawnProbability: domain.Medium,
		RegionWeights: map[domain.Region]float64{
			domain.RegionCity: 1.2,
		},
		Personalities:     []domain.Personality{domain.PersonalityArrogance, domain.PersonalityCourage},
		SkillKinds:        []domain.SkillKind{domain.SkillCharge, domain.SkillInstinctiveReaction},
		PactKinds:         []domain.PactKind{domain.PactApollo},
		StrengthLevel:     10,
		IntelligenceLevel: 8,
		Vitality:          130,
		Resistance:        130,
		Ether:             90,
		Potential:         0.25,
		WeaponKind:        weaponPtr(domain.WeaponSword),
		Drop: &domain.DropReward{
			OrbsLo: 60, OrbsHi: 130,
			XPLo: 70, XPHi: 100,
			Items: []domain.ItemReward{
				{ItemIdentifier: "sword", AmountLo: 1, AmountHi: 1, Probability: domain.Low},
			},
		},
	},
	{
		Identifier:       "ogre_king",
		Name:             "Ogre King",
		SpawnProbability: domain.Low,
		RegionWeights: map[domain.Region]float64{
			domain.RegionMountain: 0.8,
			domain.RegionPlains:   0.3,
		},
		Personalities:     []domain.Personality{domain.PersonalityAggressiveness, domain.PersonalityArrogance},
		BossTag:           "ogre_king",
		SkillKinds:        []domain.SkillKind{domain.SkillEarthquake, domain.SkillSuplex, domain.SkillOvercoming},
		PactKinds:         []domain.PactKind{domain.PactHercules, domain.PactHydra},
		StrengthLevel:     18,
		IntelligenceLevel: 4,
		Vitality:          260,
		Resistance:        220,
		Ether:             100,
		Potential:         0.4,
		Allies: []AllyRef{
			{Probability: domain.High, Enemy: "stray_dog"},
			{Probability: domain.Medium, Enemy: "bandit"},
		},
		Drop: &domain.DropReward{
			OrbsLo: 250, OrbsHi: 500,
			XPLo: 300, XPHi: 450,
			Items: []domain.ItemReward{
				{ItemIdentifier: "vital_potion", AmountLo: 2, AmountHi: 4, Probability: domain.Always},
			},
		},
	},
	{
		Identifier:       "pale_executioner",
		Name:             "Pale Executioner",
		SpawnProbability: domain.Low,
		RegionWeights: map[domain.Region]float64{
			domain.RegionRuins:  0.9,
			domain.RegionTundra: 0.4,
		},
		Personalities:     []domain.Personality{domain.PersonalityInsanity, domain.PersonalityCourage},
		BossTag:           "pale_executioner",
		Brain:             brainPtr(domain.BrainBoss),
		SkillKinds:        []domain.SkillKind{domain.SkillMirrorDamage, domain.SkillFinalCrucifix, domain.SkillYinYang},
		PactKinds:         []domain.PactKind{domain.PactAres, domain.PactPhoenix},
		StrengthLevel:     14,
		IntelligenceLevel: 14,
		Vitality:          220,
		Resistance:        240,
		Ether:             160,
		Potential:         0.5,
		WeaponKind:        weaponPtr(domain.WeaponScythe),
		Immunities: domain.BodyImmunities{
			domain.ImmunityIce:    0.5,
			domain.ImmunityPoison: 1,
		},
		Drop: &domain.DropReward{
			OrbsLo: 400, OrbsHi: 800,
			XPLo: 450, XPHi: 700,
			Items: []domain.ItemReward{
				{ItemIdentifier: "katana", AmountLo: 1, AmountHi: 1, Probability: domain.Medium},
			},
		},
	},
}
