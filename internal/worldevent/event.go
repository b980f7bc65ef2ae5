package worldevent

import "github.com/etheris-rpg/etheris/internal/domain"

// Spawn controls where and how often an event appears.
type Spawn struct {
	BaseProbability domain.Probability
	WeightedRegions map[domain.Region]float64
	Conditions      []Condition
}

// Action is one choice offered to the user on an event. Consequences run
// in order and stop the world for battles; extra consequences always run
// afterwards, subject to their own gates.
type Action struct {
	Name              string
	Emoji             string
	Probability       domain.Probability
	Conditions        []Condition
	Consequences      []Consequence
	ExtraConsequences []Consequence
}

// Event is a static world event definition.
type Event struct {
	Identifier string
	Emoji      string
	Spawn      Spawn
	Message    string
	Actions    []Action
}

// Weight is the sampling weight of the event in the region.
func (e Event) Weight(region domain.Region) float64 {
	return float64(e.Spawn.BaseProbability) * e.Spawn.WeightedRegions[region]
}

// OfferedActions filters the event's actions by their conditions; only
// these may be shown to the user.
func (e Event) OfferedActions(s *BuildState) []Action {
	var out []Action
	for _, a := range e.Actions {
		if satisfied(a.Conditions, s) {
			out = append(out, a)
		}
	}
	return out
}
