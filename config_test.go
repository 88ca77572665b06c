package steroids

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadCatalog(t *testing.T) {
	catalog, err := LoadCatalog()
	require.NoError(t, err)
	require.Greater(t, catalog.Len(), 0)

	for _, shape := range catalog.shapes {
		require.GreaterOrEqual(t, len(shape.Verts), 6)
		require.Zero(t, len(shape.Verts)%2)
		require.Greater(t, shape.Scale, 0.0)
	}
}

func TestLoadRules(t *testing.T) {
	for _, difficulty := range []string{"easy", "normal", "hard"} {
		t.Run(difficulty, func(t *testing.T) {
			rules, err := LoadRules(difficulty)
			require.NoError(t, err)

			require.Greater(t, rules.MaxTotal, 0)
			require.Greater(t, rules.MaxTime, rules.MinTime)
			require.Greater(t, rules.Weights.Small+rules.Weights.Medium+rules.Weights.Large+rules.Weights.Huge, 0.0)
		})
	}

	_, err := LoadRules("nightmare")
	require.ErrorContains(t, err, "unknown difficulty")
}
