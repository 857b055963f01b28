// Package fixedwidth implements the order-preserving payload codec for
// scalar types: the byte-level transforms that make unsigned lexicographic
// comparison of the encoded payload agree with the type's natural order.
//
// Every function here operates on a payload only; the leading validity byte
// and the column's descending inversion are the caller's responsibility
// (they live one layer up, in package column), matching the source's
// "write ascending, invert as a post-pass" design.
package fixedwidth

import "github.com/arloliu/rowcodec/endian"

var be = endian.GetBigEndianEngine()

// EncodeBool returns the one-byte ascending-order payload for a boolean.
func EncodeBool(v bool) []byte {
	if v {
		return []byte{0x01}
	}

	return []byte{0x00}
}

// DecodeBool inverts EncodeBool.
func DecodeBool(b []byte) bool {
	return b[0] != 0
}

// EncodeUint writes v as width big-endian bytes. Big-endian unsigned bytes
// already sort the same as the unsigned integer itself, so no further
// transform is required.
func EncodeUint(width int, v uint64) []byte {
	out := make([]byte, width)
	putUintBE(out, v)

	return out
}

// DecodeUint inverts EncodeUint.
func DecodeUint(b []byte) uint64 {
	return getUintBE(b)
}

// EncodeInt writes v as width big-endian bytes with the sign bit of the
// first byte toggled, mapping the signed range monotonically onto unsigned
// lexicographic order (most negative -> 0x00.., most positive -> 0xFF..).
func EncodeInt(width int, v int64) []byte {
	out := make([]byte, width)
	putUintBE(out, uint64(v))
	out[0] ^= 0x80

	return out
}

// DecodeInt inverts EncodeInt.
func DecodeInt(b []byte) int64 {
	tmp := make([]byte, len(b))
	copy(tmp, b)
	tmp[0] ^= 0x80

	// Sign-extend payloads narrower than 8 bytes.
	shift := 64 - 8*len(b)

	return int64(getUintBE(tmp)<<shift) >> shift
}

// EncodeInt128 encodes a signed 128-bit integer given as (hi, lo) two's
// complement words into the order-preserving 16-byte payload.
func EncodeInt128(hi int64, lo uint64) []byte {
	out := make([]byte, 16)
	putUintBE(out[:8], uint64(hi))
	putUintBE(out[8:], lo)
	out[0] ^= 0x80

	return out
}

// DecodeInt128 inverts EncodeInt128, returning the (hi, lo) two's complement
// words.
func DecodeInt128(b []byte) (hi int64, lo uint64) {
	tmp := make([]byte, 16)
	copy(tmp, b)
	tmp[0] ^= 0x80

	return int64(getUintBE(tmp[:8])), getUintBE(tmp[8:])
}

// EncodeFloat16 applies the order-preserving transform to an IEEE-754
// binary16 bit pattern and encodes the result as a signed 16-bit integer.
func EncodeFloat16(bits uint16) []byte {
	return EncodeInt(2, int64(floatTransform16(int16(bits))))
}

// DecodeFloat16 inverts EncodeFloat16, returning the original bit pattern.
func DecodeFloat16(b []byte) uint16 {
	s := int16(DecodeInt(b))

	return uint16(floatTransform16(s))
}

// EncodeFloat32 applies the order-preserving transform to an IEEE-754
// binary32 bit pattern and encodes the result as a signed 32-bit integer.
func EncodeFloat32(bits uint32) []byte {
	return EncodeInt(4, int64(floatTransform32(int32(bits))))
}

// DecodeFloat32 inverts EncodeFloat32, returning the original bit pattern.
func DecodeFloat32(b []byte) uint32 {
	s := int32(DecodeInt(b))

	return uint32(floatTransform32(s))
}

// EncodeFloat64 applies the order-preserving transform to an IEEE-754
// binary64 bit pattern and encodes the result as a signed 64-bit integer.
func EncodeFloat64(bits uint64) []byte {
	return EncodeInt(8, floatTransform64(int64(bits)))
}

// DecodeFloat64 inverts EncodeFloat64, returning the original bit pattern.
func DecodeFloat64(b []byte) uint64 {
	s := DecodeInt(b)

	return uint64(floatTransform64(s))
}

// floatTransform{16,32,64} implement `s XOR ((s >> (W-1)) >>u 1)`: for a
// negative bit pattern this flips every bit except the sign bit (reversing
// negative magnitudes so more-negative sorts first); a non-negative pattern
// is left unchanged. The sign-bit toggle EncodeInt applies afterwards is what
// places all positives after all negatives. The transform is a self-inverse (applying it twice is the identity),
// which is why encode and decode share the same helper.
func floatTransform16(s int16) int16 {
	mask := int16(uint16(s>>15) >> 1) //nolint:gosec
	return s ^ mask
}

func floatTransform32(s int32) int32 {
	mask := int32(uint32(s>>31) >> 1) //nolint:gosec
	return s ^ mask
}

func floatTransform64(s int64) int64 {
	mask := int64(uint64(s>>63) >> 1) //nolint:gosec
	return s ^ mask
}

// EncodeDecimal encodes a two's-complement little-endian decimal payload
// (width 16 or 32 bytes) by reversing it to big-endian and toggling the sign
// bit, the same rule used for plain signed integers.
func EncodeDecimal(little []byte) []byte {
	out := make([]byte, len(little))
	for i, b := range little {
		out[len(little)-1-i] = b
	}
	out[0] ^= 0x80

	return out
}

// DecodeDecimal inverts EncodeDecimal, returning the little-endian payload.
func DecodeDecimal(big []byte) []byte {
	tmp := make([]byte, len(big))
	copy(tmp, big)
	tmp[0] ^= 0x80

	out := make([]byte, len(tmp))
	for i, b := range tmp {
		out[len(tmp)-1-i] = b
	}

	return out
}

// putUintBE writes v as len(dst) big-endian bytes. The 8-byte case, the one
// every Int64-family and Float64 payload goes through, delegates to the
// endian package's engine; every other width (1, 2 and 4 bytes) uses a plain
// byte-at-a-time shift.
func putUintBE(dst []byte, v uint64) {
	if len(dst) == 8 {
		be.PutUint64(dst, v)
		return
	}

	for i := len(dst) - 1; i >= 0; i-- {
		dst[i] = byte(v)
		v >>= 8
	}
}

func getUintBE(src []byte) uint64 {
	if len(src) == 8 {
		return be.Uint64(src)
	}

	var v uint64
	for _, b := range src {
		v = v<<8 | uint64(b)
	}

	return v
}
