package postgres

import (
	"context"
	"fmt"
	"time"

	"ecbrates/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RateArchive keeps every successfully fetched reference table, one row per day and currency.
type RateArchive struct {
	pool *pgxpool.Pool
}

func (r *RateArchive) SaveTable(ctx context.Context, table domain.RateTable) error {
	if !table.Populated() {
		return nil
	}
	if table.AsOf().IsZero() {
		return fmt.Errorf("failed to archive rate table: missing reference date")
	}

	const q = `
		insert into ecb_reference_rates (as_of, currency, rate, fetched_at)
		values ($1, $2, $3, $4)
		on conflict (as_of, currency) do update
		set rate = excluded.rate, fetched_at = excluded.fetched_at;
	`

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	batch := &pgx.Batch{}
	for code, rate := range table.Rates() {
		batch.Queue(q, table.AsOf(), code, rate, table.FetchedAt())
	}
	if err = tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to upsert reference rates: %w", err)
	}
	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// LatestTable returns the most recent archived day, or an empty table when nothing is archived.
func (r *RateArchive) LatestTable(ctx context.Context) (domain.RateTable, error) {
	const q = `
		select as_of, currency, rate::float8, fetched_at
		from ecb_reference_rates
		where as_of = (select max(as_of) from ecb_reference_rates);
	`

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return domain.EmptyRateTable(), fmt.Errorf("failed to query archived rates: %w", err)
	}
	defer rows.Close()

	var (
		asOf      time.Time
		fetchedAt time.Time
		rates     = make(map[string]float64, 32)
	)
	for rows.Next() {
		var (
			day      time.Time
			code     string
			rate     float64
			rowFetch time.Time
		)
		if err = rows.Scan(&day, &code, &rate, &rowFetch); err != nil {
			return domain.EmptyRateTable(), fmt.Errorf("failed to scan archived rate: %w", err)
		}
		asOf = day
		if rowFetch.After(fetchedAt) {
			fetchedAt = rowFetch
		}
		rates[code] = rate
	}
	if err = rows.Err(); err != nil {
		return domain.EmptyRateTable(), fmt.Errorf("error iterating archived rates: %w", err)
	}
	if len(rates) == 0 {
		return domain.EmptyRateTable(), nil
	}
	return domain.NewRateTable(rates, asOf.UTC(), fetchedAt.UTC()), nil
}

func NewRateArchive(pool *pgxpool.Pool) *RateArchive {
	return &RateArchive{pool: pool}
}
