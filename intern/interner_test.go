package intern

import (
	"bytes"
	"math/rand"
	"sort"
	"testing"

	"github.com/arloliu/rowcodec/fixedwidth"
	"github.com/stretchr/testify/require"
)

func TestInterner_MonotoneOrder(t *testing.T) {
	values := [][]byte{
		[]byte("banana"),
		[]byte("apple"),
		[]byte("cherry"),
		[]byte("blueberry"),
		[]byte("avocado"),
	}

	in := New()
	handles := in.Intern(values)

	type pair struct {
		input      []byte
		normalized []byte
	}

	pairs := make([]pair, len(values))
	for i, h := range handles {
		pairs[i] = pair{input: values[i], normalized: in.Normalized(h)}
	}

	byInput := append([]pair(nil), pairs...)
	sort.Slice(byInput, func(i, j int) bool { return bytes.Compare(byInput[i].input, byInput[j].input) < 0 })

	byNorm := append([]pair(nil), pairs...)
	sort.Slice(byNorm, func(i, j int) bool { return bytes.Compare(byNorm[i].normalized, byNorm[j].normalized) < 0 })

	for i := range byInput {
		require.Equal(t, byInput[i].input, byNorm[i].input, "sorted order by input must match sorted order by normalized bytes")
	}
}

func TestInterner_DeduplicatesEqualValues(t *testing.T) {
	in := New()
	handles := in.Intern([][]byte{[]byte("x"), []byte("y"), []byte("x")})
	require.Equal(t, handles[0], handles[2])
	require.NotEqual(t, handles[0], handles[1])
	require.Equal(t, 2, in.Len())
}

func TestInterner_NullValues(t *testing.T) {
	in := New()
	handles := in.Intern([][]byte{[]byte("x"), nil, []byte("y")})
	require.Equal(t, NullHandle, handles[1])
	require.Equal(t, 2, in.Len())
}

func TestInterner_LookupRoundTrip(t *testing.T) {
	in := New()
	handles := in.Intern([][]byte{[]byte("a"), []byte("b"), []byte("c")})

	for _, h := range handles {
		norm := in.Normalized(h)
		got, ok := in.Lookup(norm)
		require.True(t, ok)
		require.Equal(t, h, got)
	}
}

func TestInterner_NormalizedNeverHasInteriorZero(t *testing.T) {
	in := New()
	rnd := rand.New(rand.NewSource(1))

	var values [][]byte
	for i := 0; i < 500; i++ {
		b := make([]byte, 1+rnd.Intn(8))
		rnd.Read(b)
		values = append(values, b)
	}

	handles := in.Intern(values)
	for _, h := range handles {
		norm := in.Normalized(h)
		require.Equal(t, byte(0x00), norm[len(norm)-1], "terminator must be last byte")
		for _, b := range norm[:len(norm)-1] {
			require.NotEqual(t, byte(0x00), b, "interior byte must never be the terminator")
		}
	}
}

func TestInterner_StrictlyDecreasingInsertionPreservesOrder(t *testing.T) {
	// Regression: inserting strictly decreasing values one at a time always
	// assigns each new value as the new least element, so every insertion
	// hits the "no lower neighbor" path of between() while an upper neighbor
	// (the previous least element) does exist. A run-out hi byte string must
	// be treated as hi's own terminator (0), not as unbounded (256), or a
	// later, more-negative value can normalize to a string that sorts above
	// an earlier one.
	in := New()

	values := []int64{6, 5, 4, 3, 2, 1, 0, -1, -2}

	var handles []Handle
	for _, v := range values {
		h := in.Intern([][]byte{fixedwidth.EncodeInt(8, v)})[0]
		handles = append(handles, h)
	}

	var norms [][]byte
	for _, h := range handles {
		norms = append(norms, in.Normalized(h))
	}

	for i := 1; i < len(norms); i++ {
		require.True(t, bytes.Compare(norms[i], norms[i-1]) < 0,
			"normalized(%d) must sort before normalized(%d)", values[i], values[i-1])
	}
}

func TestInterner_IncrementalInsertionPreservesOrder(t *testing.T) {
	// Insert values one at a time, in random order, and check that the
	// order invariant (I4) holds after every single insertion, not just at
	// the end.
	rnd := rand.New(rand.NewSource(42))
	in := New()

	type pair struct {
		input      []byte
		normalized []byte
	}

	var known []pair

	for i := 0; i < 300; i++ {
		v := make([]byte, 1+rnd.Intn(6))
		rnd.Read(v)

		h := in.Intern([][]byte{v})[0]
		known = append(known, pair{input: v, normalized: in.Normalized(h)})

		byInput := append([]pair(nil), known...)
		sort.Slice(byInput, func(a, b int) bool { return bytes.Compare(byInput[a].input, byInput[b].input) < 0 })
		byNorm := append([]pair(nil), known...)
		sort.Slice(byNorm, func(a, b int) bool { return bytes.Compare(byNorm[a].normalized, byNorm[b].normalized) < 0 })

		for j := range byInput {
			require.Equal(t, byInput[j].input, byNorm[j].input, "iteration %d", i)
		}
	}
}
