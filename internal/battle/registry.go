package battle

import (
	"fmt"
	"sync"

	"github.com/etheris-rpg/etheris/internal/domain"
)

// The registries map closed kind enums to open implementation sets. The
// skill, pact and brain packages register their factories in init(); code
// that constructs battles imports them for side effects, the way database
// drivers are wired.
var (
	registryMu     sync.RWMutex
	skillFactories = map[domain.SkillKind]func() Skill{}
	pactFactories  = map[domain.PactKind]func() Pact{}
	brainFactories = map[domain.BrainKind]func() Brain{}
)

// RegisterSkill installs a factory for a skill kind. Double registration
// is a programmer error and panics at init time.
func RegisterSkill(kind domain.SkillKind, factory func() Skill) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := skillFactories[kind]; exists {
		panic(fmt.Sprintf("battle: skill %q registered twice", kind))
	}
	skillFactories[kind] = factory
}

// RegisterPact installs a factory for a pact kind.
func RegisterPact(kind domain.PactKind, factory func() Pact) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := pactFactories[kind]; exists {
		panic(fmt.Sprintf("battle: pact %q registered twice", kind))
	}
	pactFactories[kind] = factory
}

// RegisterBrain installs a factory for a brain kind.
func RegisterBrain(kind domain.BrainKind, factory func() Brain) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := brainFactories[kind]; exists {
		panic(fmt.Sprintf("battle: brain %q registered twice", kind))
	}
	brainFactories[kind] = factory
}

// NewSkillFromKind builds a fresh skill instance for the kind.
func NewSkillFromKind(kind domain.SkillKind) (Skill, error) {
	registryMu.RLock()
	factory, ok := skillFactories[kind]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownSkill, kind)
	}
	return factory(), nil
}

// NewPactFromKind builds a fresh pact instance for the kind.
func NewPactFromKind(kind domain.PactKind) (Pact, error) {
	registryMu.RLock()
	factory, ok := pactFactories[kind]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownPact, kind)
	}
	return factory(), nil
}

// NewBrainFromKind builds a fresh brain instance for the kind.
func NewBrainFromKind(kind domain.BrainKind) (Brain, error) {
	registryMu.RLock()
	factory, ok := brainFactories[kind]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("battle: unknown brain kind %q", kind)
	}
	return factory(), nil
}
