package domain

import "time"

// BrainKind selects the AI that drives a non-user fighter.
type BrainKind string

const (
	BrainSimple BrainKind = "simple"
	BrainInsane BrainKind = "insane"
	BrainBoss   BrainKind = "boss"
)

// Character is the persistent profile of a registered player. It enters a
// battle only as a FighterData snapshot; the battle publishes back a result
// and at most one save follows.
type Character struct {
	ID         string `json:"id"`
	UserHandle string `json:"user_handle"`
	Name       string `json:"name"`

	Region        Region        `json:"region"`
	Personalities []Personality `json:"personalities"`

	LearnedSkills  []SkillKind `json:"learned_skills"`
	EquippedSkills []SkillKind `json:"equipped_skills"`
	Pacts          []PactKind  `json:"pacts"`

	Weapon    *Weapon          `json:"weapon,omitempty"`
	Inventory []InventoryStack `json:"inventory"`

	Vitality   Attribute `json:"vitality"`
	Resistance Attribute `json:"resistance"`
	Ether      Attribute `json:"ether"`

	StrengthLevel     int32 `json:"strength_level"`
	IntelligenceLevel int32 `json:"intelligence_level"`

	StrengthXP     int64 `json:"strength_xp"`
	IntelligenceXP int64 `json:"intelligence_xp"`
	KnowledgeXP    int64 `json:"knowledge_xp"`

	KnowledgePoints float64 `json:"knowledge_points"`
	ActionPoints    int32   `json:"action_points"`
	MaxActionPoints int32   `json:"max_action_points"`
	Orbs            int64   `json:"orbs"`

	// Potential caps power; power is the active fraction of it.
	Potential   float64 `json:"potential"`
	MentalLevel int32   `json:"mental_level"`

	Karma int32    `json:"karma"`
	Tags  []string `json:"tags"`

	DefeatedBosses []string `json:"defeated_bosses"`

	IsDefeated   bool       `json:"is_defeated"`
	IsDead       bool       `json:"is_dead"`
	DeathCause   string     `json:"death_cause,omitempty"`
	NotifyRefill bool       `json:"notify_refill"`
	LastRefillAt *time.Time `json:"last_refill_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Clone returns a deep copy. Callers that hand a character across an
// ownership boundary (the cache, battle snapshots) copy first so later
// mutation of one side cannot leak into the other.
func (c *Character) Clone() *Character {
	cp := *c
	cp.Personalities = append([]Personality(nil), c.Personalities...)
	cp.LearnedSkills = append([]SkillKind(nil), c.LearnedSkills...)
	cp.EquippedSkills = append([]SkillKind(nil), c.EquippedSkills...)
	cp.Pacts = append([]PactKind(nil), c.Pacts...)
	cp.Tags = append([]string(nil), c.Tags...)
	cp.DefeatedBosses = append([]string(nil), c.DefeatedBosses...)
	if c.Weapon != nil {
		weapon := *c.Weapon
		cp.Weapon = &weapon
	}
	if c.Inventory != nil {
		cp.Inventory = make([]InventoryStack, len(c.Inventory))
		for i, stack := range c.Inventory {
			cp.Inventory[i] = stack
			if stack.Durability != nil {
				durability := *stack.Durability
				cp.Inventory[i].Durability = &durability
			}
		}
	}
	if c.LastRefillAt != nil {
		at := *c.LastRefillAt
		cp.LastRefillAt = &at
	}
	return &cp
}

// ClampInvariants forces the documented bounds: attribute values in
// [0, max], action points in [0, max], potential in [0, 1].
func (c *Character) ClampInvariants() {
	for _, attr := range []*Attribute{&c.Vitality, &c.Resistance, &c.Ether} {
		if attr.Value > attr.Max {
			attr.Value = attr.Max
		}
		if attr.Value < 0 {
			attr.Value = 0
		}
	}
	if c.ActionPoints > c.MaxActionPoints {
		c.ActionPoints = c.MaxActionPoints
	}
	if c.ActionPoints < 0 {
		c.ActionPoints = 0
	}
	if c.Potential < 0 {
		c.Potential = 0
	}
	if c.Potential > 1 {
		c.Potential = 1
	}
}

// HasPersonality reports whether the character carries the trait.
func (c *Character) HasPersonality(p Personality) bool {
	for _, have := range c.Personalities {
		if have == p {
			return true
		}
	}
	return false
}

// HasTag reports whether the character carries the story tag.
func (c *Character) HasTag(tag string) bool {
	for _, have := range c.Tags {
		if have == tag {
			return true
		}
	}
	return false
}

// HasDefeatedBoss reports whether the boss identifier is on record.
func (c *Character) HasDefeatedBoss(identifier string) bool {
	for _, have := range c.DefeatedBosses {
		if have == identifier {
			return true
		}
	}
	return false
}

// ItemAmount returns how many of the item the character owns.
func (c *Character) ItemAmount(identifier string) int32 {
	var total int32
	for _, stack := range c.Inventory {
		if stack.ItemIdentifier == identifier {
			total += stack.Amount
		}
	}
	return total
}

// AddItem adds an amount of the item, stacking when allowed.
func (c *Character) AddItem(identifier string, amount int32) {
	if amount <= 0 {
		return
	}
	item, ok := GetItem(identifier)
	if ok && item.Stackable {
		for i := range c.Inventory {
			if c.Inventory[i].ItemIdentifier == identifier {
				c.Inventory[i].Amount += amount
				return
			}
		}
	}
	stack := InventoryStack{ItemIdentifier: identifier, Amount: amount}
	if ok && item.MaxDurability > 0 {
		d := item.MaxDurability
		stack.Durability = &d
	}
	c.Inventory = append(c.Inventory, stack)
}

// RemoveItem removes up to amount of the item and reports how many were
// actually removed.
func (c *Character) RemoveItem(identifier string, amount int32) int32 {
	var removed int32
	out := c.Inventory[:0]
	for _, stack := range c.Inventory {
		if stack.ItemIdentifier == identifier && removed < amount {
			take := amount - removed
			if take >= stack.Amount {
				removed += stack.Amount
				continue
			}
			stack.Amount -= take
			removed += take
		}
		out = append(out, stack)
	}
	c.Inventory = out
	return removed
}

// FighterData builds the battle snapshot for this character.
func (c *Character) FighterData(team uint8) FighterData {
	data := FighterData{
		Team:              team,
		Name:              c.Name,
		User:              c.UserHandle,
		Personalities:     append([]Personality(nil), c.Personalities...),
		SkillKinds:        append([]SkillKind(nil), c.EquippedSkills...),
		PactKinds:         append([]PactKind(nil), c.Pacts...),
		StrengthLevel:     c.StrengthLevel,
		IntelligenceLevel: c.IntelligenceLevel,
		Vitality:          c.Vitality,
		Resistance:        c.Resistance,
		Ether:             c.Ether,
		Potential:         c.Potential,
		Immunities:        BodyImmunities{},
	}
	if c.Weapon != nil {
		w := *c.Weapon
		data.Weapon = &w
	}
	return data
}
