package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParsePair(t *testing.T) {
	cases := []struct {
		raw    string
		want   RatePair
		wantOK bool
	}{
		{raw: "USD/JPY", want: RatePair{Base: "USD", Quote: "JPY"}, wantOK: true},
		{raw: " usd / czk ", want: RatePair{Base: "USD", Quote: "CZK"}, wantOK: true},
		{raw: "USDJPY", wantOK: false},
		{raw: "USD/JPY/EUR", wantOK: false},
		{raw: "/JPY", want: RatePair{Base: "", Quote: "JPY"}, wantOK: true},
	}
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			got, ok := ParsePair(tc.raw)
			require.Equal(t, tc.wantOK, ok)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestRatePair_Helpers(t *testing.T) {
	p := RatePair{Base: "USD", Quote: "JPY"}
	require.Equal(t, RatePair{Base: "JPY", Quote: "USD"}, p.Reversed())
	require.Equal(t, "USD/JPY", p.String())
	require.Equal(t, "USD:JPY", p.Key())
	require.Equal(t, "ecb_USD_JPY", SensorUniqueID(p))
	require.Equal(t, "Exchange Rate USD/JPY", SensorName(p))
}

func TestNewRateTable_SeedsEURAndCopies(t *testing.T) {
	src := map[string]float64{"USD": 1.1, "EUR": 3}
	table := NewRateTable(src, time.Time{}, time.Now())

	eur, ok := table.Rate("EUR")
	require.True(t, ok)
	require.Equal(t, 1.0, eur)

	src["USD"] = 99
	usd, _ := table.Rate("USD")
	require.Equal(t, 1.1, usd)

	out := table.Rates()
	out["USD"] = 42
	usd, _ = table.Rate("USD")
	require.Equal(t, 1.1, usd)
}

func TestEmptyRateTable(t *testing.T) {
	table := EmptyRateTable()
	require.False(t, table.Populated())
	require.Equal(t, []string{"EUR"}, table.Codes())
	require.Equal(t, 1, table.Len())
}

func TestRateTable_Equal(t *testing.T) {
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	a := NewRateTable(map[string]float64{"USD": 1.1}, day, time.Now())
	b := NewRateTable(map[string]float64{"USD": 1.1}, day, time.Now().Add(time.Hour))
	c := NewRateTable(map[string]float64{"USD": 1.2}, day, time.Now())

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
}
