package character

import (
	"context"
	"sort"
	"sync"

	"github.com/etheris-rpg/etheris/internal/domain"
)

// FakeRepository is an in-memory repository.Character used by tests and
// local development. Safe for concurrent use.
type FakeRepository struct {
	mu    sync.RWMutex
	byID  map[string]*domain.Character
	Saves int
}

// NewFakeRepository creates an empty fake.
func NewFakeRepository() *FakeRepository {
	return &FakeRepository{byID: make(map[string]*domain.Character)}
}

func (r *FakeRepository) GetByUser(_ context.Context, userHandle string) (*domain.Character, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, ch := range r.byID {
		if ch.UserHandle == userHandle {
			clone := *ch
			return &clone, nil
		}
	}
	return nil, domain.ErrCharacterNotFound
}

func (r *FakeRepository) GetByID(_ context.Context, id string) (*domain.Character, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ch, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrCharacterNotFound
	}
	clone := *ch
	return &clone, nil
}

func (r *FakeRepository) IsUserRegistered(ctx context.Context, userHandle string) (bool, error) {
	_, err := r.GetByUser(ctx, userHandle)
	if err == nil {
		return true, nil
	}
	if err == domain.ErrCharacterNotFound {
		return false, nil
	}
	return false, err
}

func (r *FakeRepository) Register(_ context.Context, ch *domain.Character) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *ch
	r.byID[ch.ID] = &clone
	return nil
}

func (r *FakeRepository) Save(_ context.Context, ch *domain.Character) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *ch
	r.byID[ch.ID] = &clone
	r.Saves++
	return nil
}

func (r *FakeRepository) GetAllRefillable(_ context.Context) ([]domain.Character, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Character
	for _, ch := range r.byID {
		if ch.IsDead {
			continue
		}
		if ch.ActionPoints < ch.MaxActionPoints || ch.IsDefeated ||
			ch.Vitality.Value < ch.Vitality.Max ||
			ch.Resistance.Value < ch.Resistance.Max {
			out = append(out, *ch)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *FakeRepository) TopByOrbs(_ context.Context, limit int) ([]domain.Character, error) {
	return r.top(limit, func(a, b *domain.Character) bool { return a.Orbs > b.Orbs })
}

func (r *FakeRepository) TopByPowerLevel(_ context.Context, limit int) ([]domain.Character, error) {
	return r.top(limit, func(a, b *domain.Character) bool {
		return a.FighterData(0).PowerLevel() > b.FighterData(0).PowerLevel()
	})
}

func (r *FakeRepository) top(limit int, less func(a, b *domain.Character) bool) ([]domain.Character, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Character
	for _, ch := range r.byID {
		out = append(out, *ch)
	}
	sort.Slice(out, func(i, j int) bool { return less(&out[i], &out[j]) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
