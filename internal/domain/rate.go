package domain

import (
	"maps"
	"slices"
	"strings"
	"time"
)

// BaseCurrency is the currency every feed rate is quoted against.
const BaseCurrency = "EUR"

type RatePair struct {
	Base  string
	Quote string
}

func (p RatePair) Reversed() RatePair {
	return RatePair{
		Base:  p.Quote,
		Quote: p.Base,
	}
}

func (p RatePair) String() string { return p.Base + "/" + p.Quote }

func (p RatePair) Key() string { return p.Base + ":" + p.Quote }

// ParsePair splits a "BASE/QUOTE" string into a normalized pair. Codes are trimmed and upper-cased;
// no other validation happens here.
func ParsePair(raw string) (RatePair, bool) {
	base, quote, ok := strings.Cut(raw, "/")
	if !ok || strings.Contains(quote, "/") {
		return RatePair{}, false
	}
	return RatePair{
		Base:  strings.ToUpper(strings.TrimSpace(base)),
		Quote: strings.ToUpper(strings.TrimSpace(quote)),
	}, true
}

// RateTable is an immutable snapshot of the reference rates: units of currency per 1 EUR.
// A table is never mutated after construction, consumers get copies of its data.
type RateTable struct {
	rates     map[string]float64
	asOf      time.Time
	fetchedAt time.Time
}

// NewRateTable copies rates and seeds EUR at 1.0. A zero fetchedAt marks the table as never populated.
func NewRateTable(rates map[string]float64, asOf, fetchedAt time.Time) RateTable {
	m := make(map[string]float64, len(rates)+1)
	maps.Copy(m, rates)
	m[BaseCurrency] = 1.0
	return RateTable{rates: m, asOf: asOf, fetchedAt: fetchedAt}
}

// EmptyRateTable is the table in effect before the first successful refresh.
func EmptyRateTable() RateTable {
	return NewRateTable(nil, time.Time{}, time.Time{})
}

func (t RateTable) Rate(code string) (float64, bool) {
	v, ok := t.rates[code]
	return v, ok
}

func (t RateTable) Rates() map[string]float64 { return maps.Clone(t.rates) }

func (t RateTable) Codes() []string {
	codes := slices.Collect(maps.Keys(t.rates))
	slices.Sort(codes)
	return codes
}

func (t RateTable) Len() int { return len(t.rates) }

// AsOf is the publication date the feed reported for the rates.
func (t RateTable) AsOf() time.Time { return t.asOf }

func (t RateTable) FetchedAt() time.Time { return t.fetchedAt }

func (t RateTable) Populated() bool { return !t.fetchedAt.IsZero() }

// Equal reports whether both tables carry the same rates and publication date.
func (t RateTable) Equal(other RateTable) bool {
	return t.asOf.Equal(other.asOf) && maps.Equal(t.rates, other.rates)
}
