package sensor

import (
	"errors"
	"sync"
	"time"

	"ecbrates/internal/domain"
	"ecbrates/internal/rate"
)

// Sensor exposes one configured pair. It starts Unavailable and only changes on refresh-driven evaluation.
type Sensor struct {
	pair      domain.RatePair
	precision int

	mu    sync.RWMutex
	state domain.SensorState
}

func (s *Sensor) Pair() domain.RatePair { return s.pair }

func (s *Sensor) State() domain.SensorState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyState(s.state)
}

// evaluate recomputes the state from table. The returned error is the valuation failure, if any.
func (s *Sensor) evaluate(table domain.RateTable, now time.Time) (domain.SensorState, error) {
	value, err := rate.Valuate(table, s.pair, s.precision)
	if err != nil {
		return s.markUnavailable(now), err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.State = &value
	s.state.Available = true
	if asOf := table.AsOf(); !asOf.IsZero() {
		s.state.AsOf = &asOf
	} else {
		s.state.AsOf = nil
	}
	s.state.UpdatedAt = now
	return copyState(s.state), nil
}

func (s *Sensor) markUnavailable(now time.Time) domain.SensorState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.State = nil
	s.state.Available = false
	s.state.UpdatedAt = now
	return copyState(s.state)
}

func copyState(st domain.SensorState) domain.SensorState {
	if st.State != nil {
		v := *st.State
		st.State = &v
	}
	if st.AsOf != nil {
		t := *st.AsOf
		st.AsOf = &t
	}
	return st
}

func isLookupMiss(err error) bool {
	return errors.Is(err, domain.ErrCurrencyNotFound)
}

func newSensor(pair domain.RatePair, precision int) *Sensor {
	return &Sensor{
		pair:      pair,
		precision: precision,
		state: domain.SensorState{
			UniqueID:    domain.SensorUniqueID(pair),
			Name:        domain.SensorName(pair),
			Pair:        pair.String(),
			Unit:        pair.Quote,
			DeviceClass: domain.DeviceClassMonetary,
		},
	}
}
