package domain

// Personality is a character trait shaping AI priors and the learnable
// skill pool. The string values are part of the persisted wire format.
type Personality string

const (
	PersonalityAggressiveness Personality = "aggressiveness"
	PersonalityCalm           Personality = "calm"
	PersonalityCourage        Personality = "courage"
	PersonalityCowardice      Personality = "cowardice"
	PersonalityInsanity       Personality = "insanity"
	PersonalityIntelligence   Personality = "intelligence"
	PersonalityArrogance      Personality = "arrogance"
)

// AllPersonalities lists every known personality in stable order.
func AllPersonalities() []Personality {
	return []Personality{
		PersonalityAggressiveness,
		PersonalityCalm,
		PersonalityCourage,
		PersonalityCowardice,
		PersonalityInsanity,
		PersonalityIntelligence,
		PersonalityArrogance,
	}
}
