package collision

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/tempo/errs"
)

func TestTracker(t *testing.T) {
	tr := NewTracker()

	require.NoError(t, tr.Track("sunrise", 1))
	require.NoError(t, tr.Track("sunset", 2))
	require.Equal(t, 2, tr.Count())

	t.Run("empty name", func(t *testing.T) {
		require.ErrorIs(t, tr.Track("", 3), errs.ErrInvalidValueName)
	})

	t.Run("duplicate name", func(t *testing.T) {
		require.ErrorIs(t, tr.Track("sunrise", 1), errs.ErrNameCollision)
	})

	t.Run("different name, same hash", func(t *testing.T) {
		require.ErrorIs(t, tr.Track("other", 1), errs.ErrNameCollision)
	})

	t.Run("reset clears state", func(t *testing.T) {
		tr.Reset()
		require.Equal(t, 0, tr.Count())
		require.NoError(t, tr.Track("sunrise", 1))
	})
}
