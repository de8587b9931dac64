package rate

import (
	"context"
	"fmt"
	"sync"

	"ecbrates/internal/adapters"
	"ecbrates/internal/domain"

	"github.com/sirupsen/logrus"
)

// Refresher performs a single rate table refresh. Calls are serialized, so at most one fetch runs at a time.
type Refresher struct {
	client    adapters.FeedClient
	store     *Store
	cache     adapters.ValuationCache
	archive   adapters.RateArchive
	listeners []adapters.RefreshListener

	mu sync.Mutex
}

// Refresh fetches the feed and swaps the new table into the store. On failure the store keeps the previous
// table and the error is returned wrapped. Listeners are notified in both cases.
func (r *Refresher) Refresh(ctx context.Context, execID string) (domain.RateTable, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	log := logrus.WithField("exec_id", execID)

	// STEP 1: fetching and decoding the feed, nothing is touched if this fails
	table, err := r.client.FetchTable(ctx)
	if err != nil {
		err = fmt.Errorf("failed to refresh rate table: %w", err)
		current := r.store.Load()
		r.notify(ctx, current, err)
		return current, err
	}

	// STEP 2: publishing the new snapshot, memoized valuations belong to the old one
	previous := r.store.Swap(table)
	if r.cache != nil {
		r.cache.Clear()
	}
	if previous.Equal(table) {
		log.Debugf("Rate table unchanged, %d currencies as of %s", table.Len(), table.AsOf().Format("2006-01-02"))
	} else {
		log.Infof("Rate table refreshed, %d currencies as of %s", table.Len(), table.AsOf().Format("2006-01-02"))
	}

	// STEP 3: archiving is best effort
	if r.archive != nil {
		if archErr := r.archive.SaveTable(ctx, table); archErr != nil {
			log.WithError(archErr).Warn("Failed to archive rate table")
		}
	}

	r.notify(ctx, table, nil)
	return table, nil
}

// WarmStart seeds the store from the archive when nothing has been fetched yet.
func (r *Refresher) WarmStart(ctx context.Context) error {
	if r.archive == nil {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.store.Load().Populated() {
		return nil
	}
	table, err := r.archive.LatestTable(ctx)
	if err != nil {
		return fmt.Errorf("failed to load archived rate table: %w", err)
	}
	if !table.Populated() {
		return nil
	}

	r.store.Swap(table)
	if r.cache != nil {
		r.cache.Clear()
	}
	logrus.Infof("Rate table restored from archive, %d currencies as of %s", table.Len(), table.AsOf().Format("2006-01-02"))
	r.notify(ctx, table, nil)
	return nil
}

func (r *Refresher) notify(ctx context.Context, table domain.RateTable, err error) {
	for _, l := range r.listeners {
		l.OnRefresh(ctx, table, err)
	}
}

// NewRefresher builds a refresher. cache and archive are optional and may be nil.
func NewRefresher(client adapters.FeedClient, store *Store, cache adapters.ValuationCache, archive adapters.RateArchive, listeners ...adapters.RefreshListener) *Refresher {
	return &Refresher{
		client:    client,
		store:     store,
		cache:     cache,
		archive:   archive,
		listeners: listeners,
	}
}
