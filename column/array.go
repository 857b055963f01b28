package column

import "github.com/arloliu/rowcodec/format"

// ValueSource is the read interface (§6.1) the encoder consumes for one
// column's values. Only the accessor matching the column's DataType is
// ever called, and only for rows where IsValid returns true.
//
// Floating point values are exposed as their raw IEEE bit pattern rather
// than as float32/float64, since the order-preserving transform (§4.1)
// operates on bits, not on the language's float semantics (this also
// sidesteps NaN equality surprises when round-tripping through float64).
type ValueSource interface {
	// Len returns the number of rows in the column.
	Len() int
	// IsValid reports whether row holds a non-null value.
	IsValid(row int) bool

	Bool(row int) bool
	Int64(row int) int64
	Uint64(row int) uint64
	Int128(row int) (hi int64, lo uint64)
	Float16Bits(row int) uint16
	Float32Bits(row int) uint32
	Float64Bits(row int) uint64
	// Decimal returns the two's-complement little-endian payload for a
	// decimal128/decimal256 value; its length must match the column's
	// declared width (16 or 32 bytes).
	Decimal(row int) []byte
	IntervalDayTime(row int) (days, millis int32)
	IntervalMonthDayNano(row int) (months, days int32, nanos int64)
	// Bytes returns the raw UTF-8 or binary payload for a string/binary
	// value (or a dictionary's child value, §4.4 step 1).
	Bytes(row int) []byte
}

// Builder is the construction interface (§6.1, reverse direction) the
// decoder feeds, one call per row in order.
type Builder interface {
	AppendNull()
	AppendBool(v bool)
	AppendInt64(v int64)
	AppendUint64(v uint64)
	AppendInt128(hi int64, lo uint64)
	AppendFloat16Bits(v uint16)
	AppendFloat32Bits(v uint32)
	AppendFloat64Bits(v uint64)
	AppendDecimal(little []byte)
	AppendIntervalDayTime(days, millis int32)
	AppendIntervalMonthDayNano(months, days int32, nanos int64)
	AppendBytes(b []byte)
}

// DictSource is the read interface for a dictionary-encoded column: a keys
// array plus a child ValueSource holding the distinct values (§4.4).
type DictSource interface {
	Len() int
	IsValid(row int) bool
	// KeyAt returns the index into Values() for row. Only called when
	// IsValid(row) is true.
	KeyAt(row int) int
	Values() ValueSource
}

// DictBuilder is the construction interface for decoding a dictionary
// column (§4.4 decode): a per-row key append, plus a builder to receive the
// deduplicated child array once every row has been scanned.
type DictBuilder interface {
	AppendNull()
	AppendKey(key int)
	// ChildBuilder returns the Builder the decoder feeds the distinct
	// child values into, one Append call per value in dense-index order.
	// It is never asked to append a null: a dictionary row's nullness
	// lives on the row itself (§4.4 step 2), not on its referenced value.
	ChildBuilder(valueType format.DataType) Builder
}
