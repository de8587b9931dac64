package rate

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_InitialTable(t *testing.T) {
	s := NewStore()
	table := s.Load()
	require.False(t, table.Populated())
	require.Equal(t, map[string]float64{"EUR": 1.0}, table.Rates())
}

func TestStore_SwapReturnsPrevious(t *testing.T) {
	s := NewStore()
	prev := s.Swap(sampleTable())
	require.False(t, prev.Populated())
	require.True(t, s.Load().Equal(sampleTable()))
}

func TestStore_ConcurrentReadersSeeWholeTables(t *testing.T) {
	s := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.Swap(sampleTable())
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				table := s.Load()
				eur, ok := table.Rate("EUR")
				assert.True(t, ok)
				assert.Equal(t, 1.0, eur)
				if table.Populated() {
					assert.Equal(t, 3, table.Len())
				}
			}
		}()
	}
	wg.Wait()
}
