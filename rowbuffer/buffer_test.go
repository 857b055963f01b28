package rowbuffer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuffer_AdvanceAndFreeze(t *testing.T) {
	b := New(3, 9)

	for row := 0; row < 3; row++ {
		dst := b.Advance(row, 3)
		dst[0] = byte(row)
		dst[1] = byte(row + 1)
		dst[2] = byte(row + 2)
	}

	require.NoError(t, b.Freeze())
	require.Equal(t, []byte{0, 1, 2}, b.RowBytes(0))
	require.Equal(t, []byte{1, 2, 3}, b.RowBytes(1))
	require.Equal(t, []byte{2, 3, 4}, b.RowBytes(2))
	require.Equal(t, []int{0, 3, 6, 9}, b.Offsets())
}

func TestBuffer_MultipleColumnsAccumulateOffsets(t *testing.T) {
	b := New(2, 6)

	// column 1: 2 bytes/row
	for row := 0; row < 2; row++ {
		dst := b.Advance(row, 2)
		dst[0], dst[1] = 0xAA, 0xBB
	}
	// column 2: 1 byte/row
	for row := 0; row < 2; row++ {
		dst := b.Advance(row, 1)
		dst[0] = 0xCC
	}

	require.NoError(t, b.Freeze())
	require.Equal(t, []byte{0xAA, 0xBB, 0xCC}, b.RowBytes(0))
	require.Equal(t, []byte{0xAA, 0xBB, 0xCC}, b.RowBytes(1))
}

func TestBuffer_FreezeDetectsShortWrite(t *testing.T) {
	b := New(2, 4)
	b.Advance(0, 2)
	b.Advance(1, 1) // under-writes row 1 by one byte
	require.Error(t, b.Freeze())
}
