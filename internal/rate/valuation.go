package rate

import (
	"fmt"
	"math"

	"ecbrates/internal/domain"

	"github.com/shopspring/decimal"
)

const DefaultPrecision = 4

// Valuate returns the price of one unit of pair.Base expressed in pair.Quote, rounded to precision digits.
// Feed rates are units per 1 EUR, so the value is rate[quote] / rate[base].
func Valuate(table domain.RateTable, pair domain.RatePair, precision int) (float64, error) {
	if !table.Populated() {
		return 0, domain.ErrTableNotPopulated
	}
	base, ok := table.Rate(pair.Base)
	if !ok || base <= 0 {
		return 0, fmt.Errorf("%w: %s", domain.ErrCurrencyNotFound, pair.Base)
	}
	quote, ok := table.Rate(pair.Quote)
	if !ok || quote <= 0 {
		return 0, fmt.Errorf("%w: %s", domain.ErrCurrencyNotFound, pair.Quote)
	}
	value := quote / base
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, fmt.Errorf("%w: %s", domain.ErrRateOutOfRange, pair)
	}
	return Round(value, precision), nil
}

// Round rounds half away from zero. A negative precision means DefaultPrecision.
// Non-finite values are returned unchanged.
func Round(value float64, precision int) float64 {
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return value
	}
	if precision < 0 {
		precision = DefaultPrecision
	}
	return decimal.NewFromFloat(value).Round(int32(precision)).InexactFloat64()
}
