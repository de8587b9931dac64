package sensor

import (
	"context"
	"maps"
	"slices"
	"sync"

	"ecbrates/internal/domain"
)

// Registry is the in-process publisher backing the HTTP sensor endpoints.
type Registry struct {
	mu     sync.RWMutex
	states map[string]domain.SensorState
}

func (r *Registry) Publish(_ context.Context, state domain.SensorState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states[state.UniqueID] = copyState(state)
	return nil
}

func (r *Registry) Get(uniqueID string) (domain.SensorState, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	st, ok := r.states[uniqueID]
	if !ok {
		return domain.SensorState{}, domain.ErrSensorNotFound
	}
	return copyState(st), nil
}

// List returns all known states ordered by unique id.
func (r *Registry) List() []domain.SensorState {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := slices.Sorted(maps.Keys(r.states))
	out := make([]domain.SensorState, 0, len(ids))
	for _, id := range ids {
		out = append(out, copyState(r.states[id]))
	}
	return out
}

func NewRegistry() *Registry {
	return &Registry{states: make(map[string]domain.SensorState)}
}
