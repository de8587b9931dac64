package rate

import (
	"math"
	"testing"
	"time"

	"ecbrates/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestValuate_PinnedDirection(t *testing.T) {
	table := sampleTable()

	cases := []struct {
		pair      domain.RatePair
		precision int
		want      float64
	}{
		{pair: domain.RatePair{Base: "USD", Quote: "JPY"}, precision: 4, want: 145.4545},
		{pair: domain.RatePair{Base: "JPY", Quote: "USD"}, precision: 4, want: 0.0069},
		{pair: domain.RatePair{Base: "EUR", Quote: "USD"}, precision: 4, want: 1.1},
		{pair: domain.RatePair{Base: "USD", Quote: "EUR"}, precision: 4, want: 0.9091},
		{pair: domain.RatePair{Base: "USD", Quote: "JPY"}, precision: 0, want: 145},
		{pair: domain.RatePair{Base: "USD", Quote: "JPY"}, precision: 2, want: 145.45},
		{pair: domain.RatePair{Base: "EUR", Quote: "EUR"}, precision: 4, want: 1},
	}
	for _, tc := range cases {
		t.Run(tc.pair.String(), func(t *testing.T) {
			got, err := Valuate(table, tc.pair, tc.precision)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestValuate_MatchesQuotientFormula(t *testing.T) {
	table := domain.NewRateTable(map[string]float64{"USD": 1.0876, "CZK": 24.724, "GBP": 0.85785}, time.Time{}, time.Now())
	codes := table.Codes()
	for _, base := range codes {
		for _, quote := range codes {
			b, _ := table.Rate(base)
			q, _ := table.Rate(quote)
			got, err := Valuate(table, domain.RatePair{Base: base, Quote: quote}, 4)
			require.NoError(t, err)
			require.Equal(t, Round(q/b, 4), got)
		}
	}
}

func TestValuate_LookupMiss(t *testing.T) {
	_, err := Valuate(sampleTable(), domain.RatePair{Base: "XYZ", Quote: "USD"}, 4)
	require.ErrorIs(t, err, domain.ErrCurrencyNotFound)
	require.ErrorContains(t, err, "XYZ")

	_, err = Valuate(sampleTable(), domain.RatePair{Base: "USD", Quote: "XYZ"}, 4)
	require.ErrorIs(t, err, domain.ErrCurrencyNotFound)
}

func TestValuate_NotPopulated(t *testing.T) {
	_, err := Valuate(domain.EmptyRateTable(), domain.RatePair{Base: "EUR", Quote: "EUR"}, 4)
	require.ErrorIs(t, err, domain.ErrTableNotPopulated)
}

func TestRound(t *testing.T) {
	require.Equal(t, 0.0069, Round(0.006875, 4))
	require.Equal(t, 1.2346, Round(1.23456, 4))
	require.Equal(t, 1.2346, Round(1.23456, -1))
	require.Equal(t, -1.5, Round(-1.45, 1))
	require.Equal(t, 3.0, Round(2.5, 0))
}

func TestValuate_QuotientOverflow(t *testing.T) {
	table := domain.NewRateTable(map[string]float64{"AAA": 1e-200, "BBB": 1e200}, time.Time{}, time.Now())

	require.NotPanics(t, func() {
		_, err := Valuate(table, domain.RatePair{Base: "AAA", Quote: "BBB"}, 4)
		require.ErrorIs(t, err, domain.ErrRateOutOfRange)
	})

	v, err := Valuate(table, domain.RatePair{Base: "BBB", Quote: "AAA"}, 4)
	require.NoError(t, err)
	require.Zero(t, v)
}

func TestValuate_InfiniteRateInTable(t *testing.T) {
	table := domain.NewRateTable(map[string]float64{"USD": math.Inf(1)}, time.Time{}, time.Now())

	require.NotPanics(t, func() {
		_, err := Valuate(table, domain.RatePair{Base: "EUR", Quote: "USD"}, 4)
		require.ErrorIs(t, err, domain.ErrRateOutOfRange)
	})
}

func TestRound_NonFinite(t *testing.T) {
	require.True(t, math.IsInf(Round(math.Inf(1), 4), 1))
	require.True(t, math.IsNaN(Round(math.NaN(), 4)))
}
