package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNullSentinel(t *testing.T) {
	tests := []struct {
		name string
		opt  SortOption
		want byte
	}{
		{"ascending nulls last (default)", Ascending, 0xFF},
		{"ascending nulls first", SortOption{NullsFirst: true}, 0x00},
		{"descending nulls last", Descending, 0xFF},
		{"descending nulls first", SortOption{Descending: true, NullsFirst: true}, 0x00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.opt.NullSentinel())
		})
	}
}

// TestNullSentinel_SortsRelativeToValidityByte verifies the sentinel places
// nulls on the requested side of every present row's leading validity byte.
// A null row's on-wire byte is the raw sentinel (never itself inverted); a
// present row's leading byte is 0x01, inverted when the column is
// descending. This is the invariant the literal spec.md formula (0x00 iff
// nulls_first == descending) gets backwards for the ascending/nulls-last
// default.
func TestNullSentinel_SortsRelativeToValidityByte(t *testing.T) {
	const present = 0x01

	tests := []struct {
		name       string
		opt        SortOption
		nullBefore bool // whether a null row's leading byte must sort before a present row's
	}{
		{"ascending, nulls last", Ascending, false},
		{"ascending, nulls first", SortOption{NullsFirst: true}, true},
		{"descending, nulls last", Descending, false},
		{"descending, nulls first", SortOption{Descending: true, NullsFirst: true}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sentinel := tt.opt.NullSentinel()
			validity := tt.opt.Invert(byte(present))

			require.Equal(t, tt.nullBefore, sentinel < validity)
		})
	}
}

func TestSortOption_Invert(t *testing.T) {
	require.Equal(t, byte(0x3C), Ascending.Invert(0x3C))
	require.Equal(t, ^byte(0x3C), Descending.Invert(0x3C))
}

func TestSortOption_Terminator(t *testing.T) {
	require.Equal(t, byte(0x00), Ascending.Terminator())
	require.Equal(t, byte(0xFF), Descending.Terminator())
}
