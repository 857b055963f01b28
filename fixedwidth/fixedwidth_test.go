package fixedwidth

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeInt_Order(t *testing.T) {
	// signed-8 values [-1, 0, 1] must encode to [0x7F, 0x80, 0x81] and sort
	// in that order under unsigned lexicographic comparison.
	neg := EncodeInt(1, -1)
	zero := EncodeInt(1, 0)
	pos := EncodeInt(1, 1)

	require.Equal(t, []byte{0x7F}, neg)
	require.Equal(t, []byte{0x80}, zero)
	require.Equal(t, []byte{0x81}, pos)

	require.True(t, bytes.Compare(neg, zero) < 0)
	require.True(t, bytes.Compare(zero, pos) < 0)
}

func TestEncodeInt_RoundTrip(t *testing.T) {
	for _, v := range []int64{math.MinInt64, -1, 0, 1, math.MaxInt64, 12345, -98765} {
		enc := EncodeInt(8, v)
		require.Equal(t, v, DecodeInt(enc))
	}
}

func TestEncodeUint_RoundTrip(t *testing.T) {
	for _, v := range []uint64{0, 1, math.MaxUint32, math.MaxUint64} {
		enc := EncodeUint(8, v)
		require.Equal(t, v, DecodeUint(enc))
	}
}

func TestEncodeInt128_RoundTrip(t *testing.T) {
	cases := []struct{ hi int64; lo uint64 }{
		{0, 0},
		{-1, 0},
		{math.MinInt64, 0},
		{math.MaxInt64, math.MaxUint64},
	}
	for _, c := range cases {
		enc := EncodeInt128(c.hi, c.lo)
		hi, lo := DecodeInt128(enc)
		require.Equal(t, c.hi, hi)
		require.Equal(t, c.lo, lo)
	}
}

func TestEncodeFloat64_OrderAndRoundTrip(t *testing.T) {
	values := []float64{-1.0, -0.0, 0.0, 1.0}
	encoded := make([][]byte, len(values))
	for i, v := range values {
		encoded[i] = EncodeFloat64(math.Float64bits(v))
	}

	for i := 1; i < len(encoded); i++ {
		require.True(t, bytes.Compare(encoded[i-1], encoded[i]) <= 0, "expected %v <= %v", values[i-1], values[i])
	}

	for i, v := range values {
		bits := DecodeFloat64(encoded[i])
		require.Equal(t, v, math.Float64frombits(bits))
	}
}

func TestEncodeFloat32_RoundTrip(t *testing.T) {
	for _, v := range []float32{-1.5, 0, 1.5, float32(math.Inf(1)), float32(math.Inf(-1))} {
		enc := EncodeFloat32(math.Float32bits(v))
		require.Equal(t, v, math.Float32frombits(DecodeFloat32(enc)))
	}
}

func TestEncodeFloat16_RoundTrip(t *testing.T) {
	for _, bits := range []uint16{0x0000, 0x8000, 0x3C00, 0xBC00} {
		enc := EncodeFloat16(bits)
		require.Equal(t, bits, DecodeFloat16(enc))
	}
}

func TestEncodeDecimal_RoundTrip(t *testing.T) {
	little := make([]byte, 16)
	little[0] = 0x01
	little[15] = 0x80 // negative in two's complement little-endian

	enc := EncodeDecimal(little)
	require.Len(t, enc, 16)
	require.Equal(t, little, DecodeDecimal(enc))
}

func TestEncodeDecimal256_RoundTrip(t *testing.T) {
	little := make([]byte, 32)
	for i := range little {
		little[i] = byte(i)
	}

	enc := EncodeDecimal(little)
	require.Len(t, enc, 32)
	require.Equal(t, little, DecodeDecimal(enc))
}

func TestEncodeBool(t *testing.T) {
	require.Equal(t, []byte{0x00}, EncodeBool(false))
	require.Equal(t, []byte{0x01}, EncodeBool(true))
	require.False(t, DecodeBool([]byte{0x00}))
	require.True(t, DecodeBool([]byte{0x01}))
}
