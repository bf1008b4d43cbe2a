package env

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type otherAction struct{}

func (otherAction) Equal(Action) bool { return false }

func TestVectorEqual(t *testing.T) {
	t.Run("elementwise equality", func(t *testing.T) {
		require.True(t, Vector{1, 2}.Equal(Vector{1, 2}))
		require.False(t, Vector{1, 2}.Equal(Vector{1, 3}))
	})

	t.Run("different lengths never match", func(t *testing.T) {
		require.False(t, Vector{1, 2}.Equal(Vector{1}))
	})

	t.Run("different action types never match", func(t *testing.T) {
		require.False(t, Vector{1}.Equal(otherAction{}))
	})
}
