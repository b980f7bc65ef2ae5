package domain

// SkillKind identifies a combat skill. The string values are part of the
// persisted wire format; dynamic per-skill state lives with the fighter.
type SkillKind string

const (
	SkillImbuedPunch         SkillKind = "imbued_punch"
	SkillSimpleCut           SkillKind = "simple_cut"
	SkillCyclonePush         SkillKind = "cyclone_push"
	SkillBite                SkillKind = "bite"
	SkillCharge              SkillKind = "charge"
	SkillMirrorDamage        SkillKind = "mirror_damage"
	SkillEarthquake          SkillKind = "earthquake"
	SkillFinalCrucifix       SkillKind = "final_crucifix"
	SkillParalyzingBet       SkillKind = "paralyzing_bet"
	SkillTenkuKikan          SkillKind = "tenku_kikan"
	SkillRefresh             SkillKind = "refresh"
	SkillWoundHealing        SkillKind = "wound_healing"
	SkillBloodDonation       SkillKind = "blood_donation"
	SkillYinYang             SkillKind = "yin_yang"
	SkillHakikotenchou       SkillKind = "hakikotenchou"
	SkillInstinctiveReaction SkillKind = "instinctive_reaction"
	SkillEtherFlow           SkillKind = "ether_flow"
	SkillOvercoming          SkillKind = "overcoming"
	SkillFlameBall           SkillKind = "flame_ball"
	SkillIcyShot             SkillKind = "icy_shot"
	SkillThunderFang         SkillKind = "thunder_fang"
	SkillWaterJet            SkillKind = "water_jet"
	SkillTornadoKick         SkillKind = "tornado_kick"
	SkillSuplex              SkillKind = "suplex"
	SkillPoisonGas           SkillKind = "poison_gas"
)

// SkillComplexity categorizes how hard a skill is to learn and to use.
// It governs AI interest and intelligence-gated learning, not scheduling.
type SkillComplexity string

const (
	ComplexityVerySimple  SkillComplexity = "very_simple"
	ComplexitySimple      SkillComplexity = "simple"
	ComplexityNormal      SkillComplexity = "normal"
	ComplexityHard        SkillComplexity = "hard"
	ComplexityVeryHard    SkillComplexity = "very_hard"
	ComplexityMaster      SkillComplexity = "master"
	ComplexitySuperMaster SkillComplexity = "super_master"
)

// SkillMeta is the static learning profile of a skill kind. Combat data
// (costs, damage) lives with the concrete skill implementation.
type SkillMeta struct {
	Complexity              SkillComplexity
	KnowledgeCost           float64
	IntelligenceRequirement int32
}

var skillMeta = map[SkillKind]SkillMeta{
	SkillImbuedPunch:         {ComplexityVerySimple, 1.0, 0},
	SkillSimpleCut:           {ComplexityVerySimple, 1.0, 0},
	SkillCyclonePush:         {ComplexitySimple, 1.2, 2},
	SkillBite:                {ComplexityVerySimple, 0.8, 0},
	SkillCharge:              {ComplexitySimple, 1.2, 2},
	SkillMirrorDamage:        {ComplexityHard, 2.4, 12},
	SkillEarthquake:          {ComplexityHard, 2.6, 14},
	SkillFinalCrucifix:       {ComplexitySuperMaster, 4.0, 30},
	SkillParalyzingBet:       {ComplexityNormal, 1.8, 8},
	SkillTenkuKikan:          {ComplexitySuperMaster, 4.2, 32},
	SkillRefresh:             {ComplexityNormal, 1.6, 8},
	SkillWoundHealing:        {ComplexityNormal, 1.6, 8},
	SkillBloodDonation:       {ComplexityNormal, 1.8, 10},
	SkillYinYang:             {ComplexityMaster, 3.2, 22},
	SkillHakikotenchou:       {ComplexityMaster, 3.4, 24},
	SkillInstinctiveReaction: {ComplexityVeryHard, 2.8, 16},
	SkillEtherFlow:           {ComplexityNormal, 1.8, 10},
	SkillOvercoming:          {ComplexityVeryHard, 2.8, 18},
	SkillFlameBall:           {ComplexitySimple, 1.4, 4},
	SkillIcyShot:             {ComplexitySimple, 1.4, 4},
	SkillThunderFang:         {ComplexityNormal, 1.6, 6},
	SkillWaterJet:            {ComplexitySimple, 1.2, 2},
	SkillTornadoKick:         {ComplexityNormal, 1.6, 6},
	SkillSuplex:              {ComplexityNormal, 1.8, 6},
	SkillPoisonGas:           {ComplexityNormal, 1.8, 8},
}

// GetSkillMeta returns the static profile for a skill kind.
func GetSkillMeta(kind SkillKind) (SkillMeta, bool) {
	m, ok := skillMeta[kind]
	return m, ok
}

// AllSkillKinds lists every known skill kind in stable order.
func AllSkillKinds() []SkillKind {
	return []SkillKind{
		SkillImbuedPunch, SkillSimpleCut, SkillCyclonePush, SkillBite,
		SkillCharge, SkillMirrorDamage, SkillEarthquake, SkillFinalCrucifix,
		SkillParalyzingBet, SkillTenkuKikan, SkillRefresh, SkillWoundHealing,
		SkillBloodDonation, SkillYinYang, SkillHakikotenchou,
		SkillInstinctiveReaction, SkillEtherFlow, SkillOvercoming,
		SkillFlameBall, SkillIcyShot, SkillThunderFang, SkillWaterJet,
		SkillTornadoKick, SkillSuplex, SkillPoisonGas,
	}
}
