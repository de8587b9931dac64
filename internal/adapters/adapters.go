package adapters

import (
	"context"
	"ecbrates/internal/domain"
)

type FeedClient interface {
	FetchTable(ctx context.Context) (domain.RateTable, error)
}

type RateArchive interface {
	SaveTable(ctx context.Context, table domain.RateTable) error
	LatestTable(ctx context.Context) (domain.RateTable, error)
}

type ValuationCache interface {
	Get(key string) (float64, bool)
	Set(key string, value float64)
	Clear()
}

// RefreshListener is notified after every refresh attempt, err is nil on success.
type RefreshListener interface {
	OnRefresh(ctx context.Context, table domain.RateTable, err error)
}

type SensorPublisher interface {
	Publish(ctx context.Context, state domain.SensorState) error
}
