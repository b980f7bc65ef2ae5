package worldevent

import "github.com/etheris-rpg/etheris/internal/domain"

// ConsequenceKind is one arm of the consequence union. Concrete kinds are
// dispatched by the engine in resolveKind.
type ConsequenceKind interface {
	consequenceKind()
}

// Rewards samples the sellable item table and pays out orbs and XP.
type Rewards struct {
	Iterations int
	OrbsLo     int64
	OrbsHi     int64
	XPLo       int64
	XPHi       int64
}

// Prejudice strips the character: random items up to a valuability cap,
// flat plus proportional orbs, and named items.
type Prejudice struct {
	ItemsAmount        int32
	MaxItemValuability int64
	FixedOrbs          int64
	OrbsPercentage     float64
	SpecificItems      []string
}

// Battle queues a fight against the named enemies, preceded by the
// encounter confirmation prompt.
type Battle struct {
	Enemies []string
}

// InstantBattle queues a fight that skips the confirmation prompt.
type InstantBattle struct {
	Enemies []string
}

// Encounter offers the named enemy plus its ally roll.
type Encounter struct {
	Enemy string
}

// MultiplePossibleEncounters samples one enemy from the region's spawn
// table and offers it with its ally roll.
type MultiplePossibleEncounters struct{}

// FindARegionEnemy forces an instant fight against a sampled region enemy.
type FindARegionEnemy struct{}

// SubEvent resolves another event in place.
type SubEvent struct {
	Event string
}

// Message emits narrative text.
type Message struct {
	Text string
}

// Shop opens the shop surface.
type Shop struct{}

// AddTag / RemoveTag mutate the character's story tags.
type AddTag struct{ Tag string }
type RemoveTag struct{ Tag string }

// AddKarma / RemoveKarma shift the character's karma.
type AddKarma struct{ Amount int32 }
type RemoveKarma struct{ Amount int32 }

// AddItem / RemoveItem mutate the inventory.
type AddItem struct {
	Item     string
	AmountLo int32
	AmountHi int32
}
type RemoveItem struct {
	Item   string
	Amount int32
}

// RemoveItemDurability wears down a carried tool.
type RemoveItemDurability struct {
	Item   string
	Amount int32
}

func (Rewards) consequenceKind()                    {}
func (Prejudice) consequenceKind()                  {}
func (Battle) consequenceKind()                     {}
func (InstantBattle) consequenceKind()              {}
func (Encounter) consequenceKind()                  {}
func (MultiplePossibleEncounters) consequenceKind() {}
func (FindARegionEnemy) consequenceKind()           {}
func (SubEvent) consequenceKind()                   {}
func (Message) consequenceKind()                    {}
func (Shop) consequenceKind()                       {}
func (AddTag) consequenceKind()                     {}
func (RemoveTag) consequenceKind()                  {}
func (AddKarma) consequenceKind()                   {}
func (RemoveKarma) consequenceKind()                {}
func (AddItem) consequenceKind()                    {}
func (RemoveItem) consequenceKind()                 {}
func (RemoveItemDurability) consequenceKind()       {}

// Consequence is one gated, probabilistic effect. Extra consequences run
// only after the parent succeeds.
type Consequence struct {
	Probability domain.Probability
	Conditions  []Condition
	Kind        ConsequenceKind
	Extra       []Consequence
}

// Sure wraps a kind into an unconditional consequence.
func Sure(kind ConsequenceKind) Consequence {
	return Consequence{Probability: domain.Always, Kind: kind}
}
