package column

import (
	"github.com/arloliu/rowcodec/fixedwidth"
	"github.com/arloliu/rowcodec/format"
)

// payloadWidth returns the fixed-width payload length in bytes for a scalar
// DataType (§4.6's dispatch table), or 0 for the variable-length types,
// which have no fixed width.
func payloadWidth(t format.DataType) (int, error) {
	switch t {
	case format.Bool, format.Int8, format.Uint8:
		return 1, nil
	case format.Int16, format.Uint16, format.Float16:
		return 2, nil
	case format.Int32, format.Uint32, format.Float32,
		format.Date32, format.Time32Sec, format.Time32Milli,
		format.IntervalYearMonth:
		return 4, nil
	case format.Int64, format.Uint64, format.Float64,
		format.Date64, format.Time64Micro, format.Time64Nano,
		format.TimestampSec, format.TimestampMilli, format.TimestampMicro, format.TimestampNano,
		format.DurationSec, format.DurationMilli, format.DurationMicro, format.DurationNano,
		format.IntervalDayTime:
		return 8, nil
	case format.Int128, format.Decimal128, format.IntervalMonthDayNano:
		return 16, nil
	case format.Decimal256:
		return 32, nil
	case format.String, format.Binary:
		return 0, nil
	default:
		return 0, &UnsupportedTypeError{Type: t}
	}
}

// encodePayload writes the ascending-order payload for a fixed-width value
// at row into dst, which must be exactly payloadWidth(t) bytes. Composite
// types (the two interval kinds) are written as the concatenation of their
// independently order-preserving-encoded sub-fields, so the byte-wise
// comparison of the whole payload agrees with comparing the sub-fields as a
// tuple (months, then days, then nanos; or days, then millis).
func encodePayload(t format.DataType, src ValueSource, row int, dst []byte) error {
	switch t {
	case format.Bool:
		copy(dst, fixedwidth.EncodeBool(src.Bool(row)))
	case format.Int8:
		copy(dst, fixedwidth.EncodeInt(1, src.Int64(row)))
	case format.Int16:
		copy(dst, fixedwidth.EncodeInt(2, src.Int64(row)))
	case format.Int32, format.Date32, format.Time32Sec, format.Time32Milli, format.IntervalYearMonth:
		copy(dst, fixedwidth.EncodeInt(4, src.Int64(row)))
	case format.Int64, format.Date64, format.Time64Micro, format.Time64Nano,
		format.TimestampSec, format.TimestampMilli, format.TimestampMicro, format.TimestampNano,
		format.DurationSec, format.DurationMilli, format.DurationMicro, format.DurationNano:
		copy(dst, fixedwidth.EncodeInt(8, src.Int64(row)))
	case format.Uint8:
		copy(dst, fixedwidth.EncodeUint(1, src.Uint64(row)))
	case format.Uint16:
		copy(dst, fixedwidth.EncodeUint(2, src.Uint64(row)))
	case format.Uint32:
		copy(dst, fixedwidth.EncodeUint(4, src.Uint64(row)))
	case format.Uint64:
		copy(dst, fixedwidth.EncodeUint(8, src.Uint64(row)))
	case format.Float16:
		copy(dst, fixedwidth.EncodeFloat16(src.Float16Bits(row)))
	case format.Float32:
		copy(dst, fixedwidth.EncodeFloat32(src.Float32Bits(row)))
	case format.Float64:
		copy(dst, fixedwidth.EncodeFloat64(src.Float64Bits(row)))
	case format.Int128:
		hi, lo := src.Int128(row)
		copy(dst, fixedwidth.EncodeInt128(hi, lo))
	case format.Decimal128, format.Decimal256:
		copy(dst, fixedwidth.EncodeDecimal(src.Decimal(row)))
	case format.IntervalDayTime:
		days, millis := src.IntervalDayTime(row)
		copy(dst[0:4], fixedwidth.EncodeInt(4, int64(days)))
		copy(dst[4:8], fixedwidth.EncodeInt(4, int64(millis)))
	case format.IntervalMonthDayNano:
		months, days, nanos := src.IntervalMonthDayNano(row)
		copy(dst[0:4], fixedwidth.EncodeInt(4, int64(months)))
		copy(dst[4:8], fixedwidth.EncodeInt(4, int64(days)))
		copy(dst[8:16], fixedwidth.EncodeInt(8, nanos))
	default:
		return &UnsupportedTypeError{Type: t}
	}

	return nil
}

// decodePayload inverts encodePayload, appending the reconstructed value to
// dst.
func decodePayload(t format.DataType, payload []byte, dst Builder) error {
	switch t {
	case format.Bool:
		dst.AppendBool(fixedwidth.DecodeBool(payload))
	case format.Int8, format.Int16, format.Int32, format.Int64,
		format.Date32, format.Date64, format.Time32Sec, format.Time32Milli,
		format.Time64Micro, format.Time64Nano,
		format.TimestampSec, format.TimestampMilli, format.TimestampMicro, format.TimestampNano,
		format.DurationSec, format.DurationMilli, format.DurationMicro, format.DurationNano,
		format.IntervalYearMonth:
		dst.AppendInt64(fixedwidth.DecodeInt(payload))
	case format.Uint8, format.Uint16, format.Uint32, format.Uint64:
		dst.AppendUint64(fixedwidth.DecodeUint(payload))
	case format.Float16:
		dst.AppendFloat16Bits(fixedwidth.DecodeFloat16(payload))
	case format.Float32:
		dst.AppendFloat32Bits(fixedwidth.DecodeFloat32(payload))
	case format.Float64:
		dst.AppendFloat64Bits(fixedwidth.DecodeFloat64(payload))
	case format.Int128:
		hi, lo := fixedwidth.DecodeInt128(payload)
		dst.AppendInt128(hi, lo)
	case format.Decimal128, format.Decimal256:
		dst.AppendDecimal(fixedwidth.DecodeDecimal(payload))
	case format.IntervalDayTime:
		days := fixedwidth.DecodeInt(payload[0:4])
		millis := fixedwidth.DecodeInt(payload[4:8])
		dst.AppendIntervalDayTime(int32(days), int32(millis))
	case format.IntervalMonthDayNano:
		months := fixedwidth.DecodeInt(payload[0:4])
		days := fixedwidth.DecodeInt(payload[4:8])
		nanos := fixedwidth.DecodeInt(payload[8:16])
		dst.AppendIntervalMonthDayNano(int32(months), int32(days), nanos)
	default:
		return &UnsupportedTypeError{Type: t}
	}

	return nil
}

// internInput returns the bytes fed to the interner for a dictionary or
// plain variable-length column's value at row (§4.3/§4.4 step 1): the raw
// bytes for string/binary, or the ascending-order fixed-width payload for
// every other type, so lexicographic comparison of the interned bytes
// already matches the value's natural order.
func internInput(t format.DataType, src ValueSource, row int) ([]byte, error) {
	if t.IsVariableLength() {
		return src.Bytes(row), nil
	}

	width, err := payloadWidth(t)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, width)
	if err := encodePayload(t, src, row, buf); err != nil {
		return nil, err
	}

	return buf, nil
}

// decodeInternedValue inverts internInput: given the original bytes an
// interner handle was built from, it appends the reconstructed value to
// dst.
func decodeInternedValue(t format.DataType, value []byte, dst Builder) error {
	if t.IsVariableLength() {
		dst.AppendBytes(value)
		return nil
	}

	return decodePayload(t, value, dst)
}
