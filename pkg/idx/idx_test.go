package idx_test

import (
	"testing"
	"time"

	"github.com/clinsuite/endotrace/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestNewIsMonotonic(t *testing.T) {
	t.Parallel()

	prev := idx.New()
	for range 100 {
		next := idx.New()
		require.Greater(t, next.String(), prev.String())
		prev = next
	}
}

func TestNewAtSortsByTime(t *testing.T) {
	t.Parallel()

	earlier := idx.NewAt(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	later := idx.NewAt(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	require.Less(t, earlier.String(), later.String())
}

func TestParse(t *testing.T) {
	t.Parallel()

	id := idx.New()
	parsed, err := idx.Parse(id.String())
	require.NoError(t, err)
	require.Equal(t, id, parsed)

	_, err = idx.Parse("")
	require.ErrorIs(t, err, idx.ErrInvalid)

	_, err = idx.Parse("not-a-ulid")
	require.ErrorIs(t, err, idx.ErrInvalid)

	require.True(t, idx.Zero.IsZero())
	require.False(t, id.IsZero())
}
