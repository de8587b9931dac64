package sensor

import (
	"context"
	"errors"
	"time"

	"ecbrates/internal/adapters"
	"ecbrates/internal/domain"
	"ecbrates/internal/rate"

	"github.com/sirupsen/logrus"
)

type Options struct {
	// UnavailableOnFetchError marks every sensor Unavailable after a failed refresh instead of
	// evaluating it against the retained table.
	UnavailableOnFetchError bool
}

// Board owns the sensors for all configured pairs and republishes them after every refresh attempt.
type Board struct {
	sensors   []*Sensor
	publisher adapters.SensorPublisher
	opts      Options
	now       func() time.Time
}

func (b *Board) OnRefresh(ctx context.Context, table domain.RateTable, refreshErr error) {
	now := b.now().UTC()
	for _, s := range b.sensors {
		log := logrus.WithField("sensor", domain.SensorUniqueID(s.pair))
		wasAvailable := s.State().Available

		var (
			state domain.SensorState
			err   error
		)
		if refreshErr != nil && b.opts.UnavailableOnFetchError {
			state = s.markUnavailable(now)
		} else {
			state, err = s.evaluate(table, now)
		}

		switch {
		case isLookupMiss(err):
			log.Warnf("Currency pair %s not found in ECB data", s.pair)
		case errors.Is(err, domain.ErrRateOutOfRange):
			log.Warnf("Exchange rate %s is out of range", s.pair)
		case errors.Is(err, domain.ErrTableNotPopulated):
			log.Debugf("Currency pair %s waits for the first successful refresh", s.pair)
		case err != nil:
			log.WithError(err).Error("Failed to evaluate sensor")
		case state.State != nil:
			log.Debugf("ECB exchange rate updated: %s = %v", s.pair, *state.State)
		}
		if wasAvailable != state.Available {
			log.Infof("Sensor %s availability changed to %t", s.pair, state.Available)
		}

		b.publish(ctx, state)
	}
}

// PublishAll pushes the current state of every sensor, used once at startup so the host knows them.
func (b *Board) PublishAll(ctx context.Context) {
	for _, s := range b.sensors {
		b.publish(ctx, s.State())
	}
}

func (b *Board) States() []domain.SensorState {
	states := make([]domain.SensorState, 0, len(b.sensors))
	for _, s := range b.sensors {
		states = append(states, s.State())
	}
	return states
}

func (b *Board) publish(ctx context.Context, state domain.SensorState) {
	if b.publisher == nil {
		return
	}
	if err := b.publisher.Publish(ctx, state); err != nil {
		logrus.WithError(err).WithField("sensor", state.UniqueID).Warn("Failed to publish sensor state")
	}
}

func NewBoard(pairs []domain.RatePair, precision int, publisher adapters.SensorPublisher, opts Options) *Board {
	if precision < 0 {
		precision = rate.DefaultPrecision
	}
	sensors := make([]*Sensor, 0, len(pairs))
	for _, p := range pairs {
		sensors = append(sensors, newSensor(p, precision))
	}
	return &Board{
		sensors:   sensors,
		publisher: publisher,
		opts:      opts,
		now:       time.Now,
	}
}
