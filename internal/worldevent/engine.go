package worldevent

import (
	"fmt"

	"github.com/etheris-rpg/etheris/internal/domain"
	"github.com/etheris-rpg/etheris/internal/enemy"
	"github.com/etheris-rpg/etheris/internal/metrics"
)

// BattleRequest is a fight the event wants started. Instant battles skip
// the encounter confirmation prompt.
type BattleRequest struct {
	Enemies []enemy.Template
	Instant bool
}

// Outcome collects everything an action resolution produced. The caller
// routes battles to the encounter layer and persists the character when
// dirty; the engine itself does no I/O.
type Outcome struct {
	Messages       []string
	Battles        []BattleRequest
	OpenShop       bool
	CharacterDirty bool
}

func (o *Outcome) say(format string, args ...any) {
	o.Messages = append(o.Messages, fmt.Sprintf(format, args...))
}

// maxEventDepth stops runaway SubEvent recursion.
const maxEventDepth = 4

// PickEvent samples one event for the region, honouring spawn conditions
// and region weights. ok is false when nothing can spawn here; the caller
// reports an uneventful stroll.
func PickEvent(s *BuildState) (Event, bool) {
	var pool []Event
	var total float64
	for _, e := range eventTable {
		w := e.Weight(s.Region)
		if w <= 0 || !satisfied(e.Spawn.Conditions, s) {
			continue
		}
		pool = append(pool, e)
		total += w
	}
	if len(pool) == 0 {
		return Event{}, false
	}
	pick := s.RNG.Float64() * total
	for _, e := range pool {
		pick -= e.Weight(s.Region)
		if pick < 0 {
			return e, true
		}
	}
	return pool[len(pool)-1], true
}

// GetEvent looks up an event by identifier.
func GetEvent(identifier string) (Event, bool) {
	for _, e := range eventTable {
		if e.Identifier == identifier {
			return e, true
		}
	}
	return Event{}, false
}

// SampleAction draws one of the event's offered actions weighted by their
// probability. Used when the resolver, not the user, chooses.
func SampleAction(s *BuildState, e Event) (Action, bool) {
	offered := e.OfferedActions(s)
	if len(offered) == 0 {
		return Action{}, false
	}
	var total int64
	for _, a := range offered {
		total += int64(a.Probability)
	}
	if total == 0 {
		return offered[s.RNG.Intn(len(offered))], true
	}
	pick := s.RNG.Int63n(total)
	for _, a := range offered {
		pick -= int64(a.Probability)
		if pick < 0 {
			return a, true
		}
	}
	return offered[len(offered)-1], true
}

// ExecuteAction resolves one chosen action: consequences in order, then
// the extra consequences, each behind its own conditions and roll.
func ExecuteAction(s *BuildState, e Event, action Action) (*Outcome, error) {
	if !satisfied(action.Conditions, s) {
		return nil, fmt.Errorf("%w: action %q is not available", domain.ErrInvalidInput, action.Name)
	}
	metrics.WorldEventsFired.WithLabelValues(string(s.Region), e.Identifier).Inc()

	out := &Outcome{}
	runConsequences(s, out, action.Consequences, 0)
	runConsequences(s, out, action.ExtraConsequences, 0)
	return out, nil
}

func runConsequences(s *BuildState, out *Outcome, conseqs []Consequence, depth int) {
	for _, c := range conseqs {
		if !satisfied(c.Conditions, s) {
			continue
		}
		if !c.Probability.Passes(s.RNG) {
			continue
		}
		resolveKind(s, out, c.Kind, depth)
		runConsequences(s, out, c.Extra, depth)
	}
}

func resolveKind(s *BuildState, out *Outcome, kind ConsequenceKind, depth int) {
	ch := s.Character
	switch k := kind.(type) {
	case Rewards:
		resolveRewards(s, out, k)

	case Prejudice:
		resolvePrejudice(s, out, k)

	case Battle:
		out.Battles = append(out.Battles, BattleRequest{Enemies: lookupEnemies(k.Enemies)})

	case InstantBattle:
		out.Battles = append(out.Battles, BattleRequest{Enemies: lookupEnemies(k.Enemies), Instant: true})

	case Encounter:
		tmpl := enemy.MustGet(k.Enemy)
		out.Battles = append(out.Battles, BattleRequest{
			Enemies: append([]enemy.Template{tmpl}, tmpl.RollAllies(s.RNG)...),
		})

	case MultiplePossibleEncounters:
		if tmpl, ok := enemy.SampleForRegion(s.RNG, s.Region); ok {
			out.Battles = append(out.Battles, BattleRequest{
				Enemies: append([]enemy.Template{tmpl}, tmpl.RollAllies(s.RNG)...),
			})
		} else {
			out.say("The area is strangely quiet.")
		}

	case FindARegionEnemy:
		if tmpl, ok := enemy.SampleForRegion(s.RNG, s.Region); ok {
			out.Battles = append(out.Battles, BattleRequest{
				Enemies: append([]enemy.Template{tmpl}, tmpl.RollAllies(s.RNG)...),
				Instant: true,
			})
		}

	case SubEvent:
		if depth >= maxEventDepth {
			return
		}
		sub, ok := GetEvent(k.Event)
		if !ok {
			panic(fmt.Sprintf("worldevent: unknown sub-event %q", k.Event))
		}
		out.say("%s %s", sub.Emoji, sub.Message)
		if action, ok := SampleAction(s, sub); ok {
			runConsequences(s, out, action.Consequences, depth+1)
			runConsequences(s, out, action.ExtraConsequences, depth+1)
		}

	case Message:
		out.say("%s", k.Text)

	case Shop:
		out.OpenShop = true

	case AddTag:
		if !ch.HasTag(k.Tag) {
			ch.Tags = append(ch.Tags, k.Tag)
			out.CharacterDirty = true
		}

	case RemoveTag:
		tags := ch.Tags[:0]
		for _, tag := range ch.Tags {
			if tag != k.Tag {
				tags = append(tags, tag)
			}
		}
		if len(tags) != len(ch.Tags) {
			ch.Tags = tags
			out.CharacterDirty = true
		}

	case AddKarma:
		ch.Karma += k.Amount
		out.CharacterDirty = true

	case RemoveKarma:
		ch.Karma -= k.Amount
		out.CharacterDirty = true

	case AddItem:
		amount := k.AmountLo
		if k.AmountHi > k.AmountLo {
			amount += s.RNG.Int31n(k.AmountHi - k.AmountLo + 1)
		}
		ch.AddItem(k.Item, amount)
		out.CharacterDirty = true
		if item, ok := domain.GetItem(k.Item); ok {
			out.say("You obtained %dx %s.", amount, item.DisplayName)
		}

	case RemoveItem:
		if removed := ch.RemoveItem(k.Item, k.Amount); removed > 0 {
			out.CharacterDirty = true
			if item, ok := domain.GetItem(k.Item); ok {
				out.say("You lost %dx %s.", removed, item.DisplayName)
			}
		}

	case RemoveItemDurability:
		for i := range ch.Inventory {
			stack := &ch.Inventory[i]
			if stack.ItemIdentifier != k.Item || stack.Durability == nil {
				continue
			}
			*stack.Durability -= k.Amount
			if *stack.Durability <= 0 {
				ch.RemoveItem(k.Item, 1)
				if item, ok := domain.GetItem(k.Item); ok {
					out.say("Your %s broke.", item.DisplayName)
				}
			}
			out.CharacterDirty = true
			break
		}

	default:
		panic(fmt.Sprintf("worldevent: unhandled consequence kind %T", kind))
	}
}

func lookupEnemies(identifiers []string) []enemy.Template {
	out := make([]enemy.Template, 0, len(identifiers))
	for _, id := range identifiers {
		out = append(out, enemy.MustGet(id))
	}
	return out
}

func resolveRewards(s *BuildState, out *Outcome, k Rewards) {
	ch := s.Character

	orbs := rollRange64(s, k.OrbsLo, k.OrbsHi)
	if orbs > 0 {
		ch.Orbs += orbs
		out.say("You found %d orbs.", orbs)
	}

	xp := rollRange64(s, k.XPLo, k.XPHi)
	if xp > 0 {
		share := xp / 3
		ch.StrengthXP += share
		ch.IntelligenceXP += share
		ch.KnowledgeXP += xp - 2*share
		out.say("You gained %d experience.", xp)
	}

	sellable := sellableItems()
	for i := 0; i < k.Iterations && len(sellable) > 0; i++ {
		item := sellable[s.RNG.Intn(len(sellable))]
		ch.AddItem(item.Identifier, 1)
		out.say("You found a %s.", item.DisplayName)
	}
	out.CharacterDirty = true
}

func resolvePrejudice(s *BuildState, out *Outcome, k Prejudice) {
	ch := s.Character

	orbs := k.FixedOrbs + int64(k.OrbsPercentage*float64(ch.Orbs))
	if orbs > ch.Orbs {
		orbs = ch.Orbs
	}
	if orbs > 0 {
		ch.Orbs -= orbs
		out.say("You lost %d orbs.", orbs)
		out.CharacterDirty = true
	}

	for i := int32(0); i < k.ItemsAmount; i++ {
		idx := stealableStack(s, ch, k.MaxItemValuability)
		if idx < 0 {
			break
		}
		identifier := ch.Inventory[idx].ItemIdentifier
		ch.RemoveItem(identifier, 1)
		if item, ok := domain.GetItem(identifier); ok {
			out.say("Your %s was taken.", item.DisplayName)
		}
		out.CharacterDirty = true
	}

	for _, identifier := range k.SpecificItems {
		if ch.RemoveItem(identifier, 1) > 0 {
			if item, ok := domain.GetItem(identifier); ok {
				out.say("Your %s was taken.", item.DisplayName)
			}
			out.CharacterDirty = true
		}
	}
}

// stealableStack picks a random inventory stack whose item sells at or
// under the valuability cap. Zero cap means anything goes.
func stealableStack(s *BuildState, ch *domain.Character, maxValuability int64) int {
	var candidates []int
	for i, stack := range ch.Inventory {
		item, ok := domain.GetItem(stack.ItemIdentifier)
		if !ok {
			continue
		}
		if maxValuability > 0 && item.Purchase.SellPrice > maxValuability {
			continue
		}
		candidates = append(candidates, i)
	}
	if len(candidates) == 0 {
		return -1
	}
	return candidates[s.RNG.Intn(len(candidates))]
}

func sellableItems() []domain.Item {
	var out []domain.Item
	for _, item := range domain.AllItems() {
		if item.Purchase.Sellable && item.Purchase.SellPrice > 0 {
			out = append(out, item)
		}
	}
	return out
}

func rollRange64(s *BuildState, lo, hi int64) int64 {
	if hi <= lo {
		return lo
	}
	return lo + s.RNG.Int63n(hi-lo+1)
}
