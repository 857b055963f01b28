package fixedwidth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitSecond_ConcreteScenarios(t *testing.T) {
	sec, frac := SplitSecond(-1, 1_000_000_000)
	require.Equal(t, int64(-1), sec)
	require.Equal(t, uint32(999_999_999), frac)

	sec, frac = SplitSecond(-1_001, 1_000)
	require.Equal(t, int64(-2), sec)
	require.Equal(t, uint32(999), frac)

	sec, frac = SplitSecond(-123_000_000_001, 1_000_000_000)
	require.Equal(t, int64(-124), sec)
	require.Equal(t, uint32(999_999_999), frac)
}

func TestSplitSecond_Invariant(t *testing.T) {
	bases := []int64{1, 1_000, 1_000_000, 1_000_000_000}
	values := []int64{0, 1, -1, 999, -999, 1_500_000_000, -1_500_000_000, 9_223_372_036}

	for _, base := range bases {
		for _, v := range values {
			sec, frac := SplitSecond(v, base)
			require.GreaterOrEqual(t, frac, uint32(0))
			require.Less(t, frac, uint32(base))
			require.Equal(t, v, sec*base+int64(frac))
		}
	}
}
