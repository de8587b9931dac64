package sensor

import (
	"context"

	"ecbrates/internal/adapters"
	"ecbrates/internal/domain"

	"github.com/hashicorp/go-multierror"
)

// FanOut publishes to every publisher and reports all failures together.
type FanOut []adapters.SensorPublisher

func (f FanOut) Publish(ctx context.Context, state domain.SensorState) error {
	var result *multierror.Error
	for _, p := range f {
		if err := p.Publish(ctx, state); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return result.ErrorOrNil()
}
