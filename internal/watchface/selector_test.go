package watchface

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedSource replays fixed draws and counts them.
type scriptedSource struct {
	draws []int
	calls int
}

func (s *scriptedSource) IntN(n int) int {
	v := s.draws[s.calls%len(s.draws)] % n
	s.calls++
	return v
}

func TestNewSelector(t *testing.T) {
	t.Parallel()

	_, err := NewSelector(1, NewSource(1))
	require.ErrorIs(t, err, ErrTooFewVariants)

	_, err = NewSelector(3, nil)
	require.Error(t, err)

	selector, err := NewSelector(3, NewSource(1))
	require.NoError(t, err)
	_, ok := selector.Current().Index()
	assert.False(t, ok)
	assert.Equal(t, "unset", selector.Current().String())
}

// TestSelectorScenario: the first draw from the unset state is accepted,
// a repeat on the next tick is rejected and redrawn.
func TestSelectorScenario(t *testing.T) {
	t.Parallel()

	source := &scriptedSource{draws: []int{1, 1, 1, 2}}
	selector, err := NewSelector(3, source)
	require.NoError(t, err)

	assert.Equal(t, 1, selector.Next())
	assert.Equal(t, 1, source.calls)

	assert.Equal(t, 2, selector.Next())
	assert.Equal(t, 4, source.calls)
	assert.Equal(t, 4, selector.Draws())

	index, ok := selector.Current().Index()
	assert.True(t, ok)
	assert.Equal(t, 2, index)
}

// TestSelectorNeverRepeats checks consecutive picks differ for several N
// and seeds.
func TestSelectorNeverRepeats(t *testing.T) {
	t.Parallel()

	for n := 2; n <= 6; n++ {
		for seed := uint64(1); seed <= 5; seed++ {
			selector, err := NewSelector(n, NewSource(seed))
			require.NoError(t, err)

			previous := selector.Next()
			for i := 0; i < 500; i++ {
				next := selector.Next()
				require.NotEqual(t, previous, next, "n=%d seed=%d step=%d", n, seed, i)
				require.GreaterOrEqual(t, next, 0)
				require.Less(t, next, n)
				previous = next
			}
		}
	}
}

// TestSelectorExpectedDraws: a warmed-up call takes N/(N-1) draws on
// average.
func TestSelectorExpectedDraws(t *testing.T) {
	t.Parallel()

	const calls = 30000
	selector, err := NewSelector(VariantCount, NewSource(2024))
	require.NoError(t, err)

	selector.Next()
	before := selector.Draws()
	for i := 0; i < calls; i++ {
		selector.Next()
	}

	mean := float64(selector.Draws()-before) / calls
	assert.InDelta(t, float64(VariantCount)/float64(VariantCount-1), mean, 0.05)
}

// TestSelectorCoversAllVariants: every variant shows up.
func TestSelectorCoversAllVariants(t *testing.T) {
	t.Parallel()

	selector, err := NewSelector(VariantCount, NewSource(7))
	require.NoError(t, err)

	seen := map[int]bool{}
	for i := 0; i < 100; i++ {
		seen[selector.Next()] = true
	}
	assert.Len(t, seen, VariantCount)
}
