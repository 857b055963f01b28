package column

import (
	"github.com/arloliu/rowcodec/internal/pool"
)

// This file provides concrete ValueSource/Builder implementations over plain
// Go slices, so a caller encoding or decoding a single scalar column doesn't
// need to hand-write one. Each type only implements the accessor its
// DataType actually needs; the rest panic, the same contract testSource
// uses in this package's own tests.

// Int64Values is a ValueSource over a []int64, with an optional validity
// slice (nil meaning every row is present).
type Int64Values struct {
	Data  []int64
	Valid []bool
}

func (v *Int64Values) Len() int { return len(v.Data) }
func (v *Int64Values) IsValid(row int) bool {
	if v.Valid == nil {
		return true
	}

	return v.Valid[row]
}
func (v *Int64Values) Int64(row int) int64 { return v.Data[row] }
func (v *Int64Values) Bool(int) bool       { panic("column: Int64Values does not support Bool") }
func (v *Int64Values) Uint64(int) uint64   { panic("column: Int64Values does not support Uint64") }
func (v *Int64Values) Int128(int) (int64, uint64) {
	panic("column: Int64Values does not support Int128")
}
func (v *Int64Values) Float16Bits(int) uint16 {
	panic("column: Int64Values does not support Float16Bits")
}
func (v *Int64Values) Float32Bits(int) uint32 {
	panic("column: Int64Values does not support Float32Bits")
}
func (v *Int64Values) Float64Bits(int) uint64 {
	panic("column: Int64Values does not support Float64Bits")
}
func (v *Int64Values) Decimal(int) []byte { panic("column: Int64Values does not support Decimal") }
func (v *Int64Values) IntervalDayTime(int) (int32, int32) {
	panic("column: Int64Values does not support IntervalDayTime")
}
func (v *Int64Values) IntervalMonthDayNano(int) (int32, int32, int64) {
	panic("column: Int64Values does not support IntervalMonthDayNano")
}
func (v *Int64Values) Bytes(int) []byte { panic("column: Int64Values does not support Bytes") }

// Float64Values is a ValueSource over a []float64, with an optional
// validity slice. Values are converted via math.Float64bits at the call
// site that constructs it; this type deals only in the raw bit pattern so
// it can feed the fixed-width codec directly.
type Float64Values struct {
	Data  []uint64 // IEEE-754 binary64 bit patterns
	Valid []bool
}

func (v *Float64Values) Len() int { return len(v.Data) }
func (v *Float64Values) IsValid(row int) bool {
	if v.Valid == nil {
		return true
	}

	return v.Valid[row]
}
func (v *Float64Values) Float64Bits(row int) uint64 { return v.Data[row] }
func (v *Float64Values) Bool(int) bool              { panic("column: Float64Values does not support Bool") }
func (v *Float64Values) Int64(int) int64            { panic("column: Float64Values does not support Int64") }
func (v *Float64Values) Uint64(int) uint64          { panic("column: Float64Values does not support Uint64") }
func (v *Float64Values) Int128(int) (int64, uint64) {
	panic("column: Float64Values does not support Int128")
}
func (v *Float64Values) Float16Bits(int) uint16 {
	panic("column: Float64Values does not support Float16Bits")
}
func (v *Float64Values) Float32Bits(int) uint32 {
	panic("column: Float64Values does not support Float32Bits")
}
func (v *Float64Values) Decimal(int) []byte { panic("column: Float64Values does not support Decimal") }
func (v *Float64Values) IntervalDayTime(int) (int32, int32) {
	panic("column: Float64Values does not support IntervalDayTime")
}
func (v *Float64Values) IntervalMonthDayNano(int) (int32, int32, int64) {
	panic("column: Float64Values does not support IntervalMonthDayNano")
}
func (v *Float64Values) Bytes(int) []byte { panic("column: Float64Values does not support Bytes") }

// StringValues is a ValueSource over a []string, with an optional validity
// slice. It also satisfies the ValueSource half of a dictionary's child
// array when wrapped in DictValues below.
type StringValues struct {
	Data  []string
	Valid []bool
}

func (v *StringValues) Len() int { return len(v.Data) }
func (v *StringValues) IsValid(row int) bool {
	if v.Valid == nil {
		return true
	}

	return v.Valid[row]
}
func (v *StringValues) Bytes(row int) []byte { return []byte(v.Data[row]) }
func (v *StringValues) Bool(int) bool        { panic("column: StringValues does not support Bool") }
func (v *StringValues) Int64(int) int64      { panic("column: StringValues does not support Int64") }
func (v *StringValues) Uint64(int) uint64    { panic("column: StringValues does not support Uint64") }
func (v *StringValues) Int128(int) (int64, uint64) {
	panic("column: StringValues does not support Int128")
}
func (v *StringValues) Float16Bits(int) uint16 {
	panic("column: StringValues does not support Float16Bits")
}
func (v *StringValues) Float32Bits(int) uint32 {
	panic("column: StringValues does not support Float32Bits")
}
func (v *StringValues) Float64Bits(int) uint64 {
	panic("column: StringValues does not support Float64Bits")
}
func (v *StringValues) Decimal(int) []byte { panic("column: StringValues does not support Decimal") }
func (v *StringValues) IntervalDayTime(int) (int32, int32) {
	panic("column: StringValues does not support IntervalDayTime")
}
func (v *StringValues) IntervalMonthDayNano(int) (int32, int32, int64) {
	panic("column: StringValues does not support IntervalMonthDayNano")
}

// DictValues adapts a child ValueSource plus a per-row key/validity slice
// into a DictSource.
type DictValues struct {
	Keys   []int
	Valid  []bool
	Source ValueSource
}

func (d *DictValues) Len() int { return len(d.Keys) }
func (d *DictValues) IsValid(row int) bool {
	if d.Valid == nil {
		return true
	}

	return d.Valid[row]
}
func (d *DictValues) KeyAt(row int) int   { return d.Keys[row] }
func (d *DictValues) Values() ValueSource { return d.Source }

// Int64Builder is a Builder that decodes a Fixed int64-family column into a
// plain []int64 plus a parallel validity slice. Its backing storage is
// drawn from the shared int64 slice pool; call Release once the decoded
// values have been copied out or are no longer needed, to return the
// backing array for reuse by the next DecodeRows call.
type Int64Builder struct {
	Values  []int64
	Valid   []bool
	idx     int
	release func()
}

// NewInt64Builder allocates a builder sized for exactly rowCount values.
func NewInt64Builder(rowCount int) *Int64Builder {
	values, release := pool.GetInt64Slice(rowCount)

	return &Int64Builder{
		Values:  values,
		Valid:   make([]bool, rowCount),
		release: release,
	}
}

// Release returns the builder's backing array to the pool. The builder
// must not be used again afterward.
func (b *Int64Builder) Release() {
	if b.release == nil {
		return
	}

	b.release()
	b.release = nil
}

func (b *Int64Builder) AppendNull() { b.idx++ }
func (b *Int64Builder) AppendInt64(v int64) {
	b.Values[b.idx] = v
	b.Valid[b.idx] = true
	b.idx++
}
func (b *Int64Builder) AppendBool(bool)       { panic("column: Int64Builder does not support AppendBool") }
func (b *Int64Builder) AppendUint64(uint64)   { panic("column: Int64Builder does not support AppendUint64") }
func (b *Int64Builder) AppendInt128(int64, uint64) {
	panic("column: Int64Builder does not support AppendInt128")
}
func (b *Int64Builder) AppendFloat16Bits(uint16) {
	panic("column: Int64Builder does not support AppendFloat16Bits")
}
func (b *Int64Builder) AppendFloat32Bits(uint32) {
	panic("column: Int64Builder does not support AppendFloat32Bits")
}
func (b *Int64Builder) AppendFloat64Bits(uint64) {
	panic("column: Int64Builder does not support AppendFloat64Bits")
}
func (b *Int64Builder) AppendDecimal([]byte) { panic("column: Int64Builder does not support AppendDecimal") }
func (b *Int64Builder) AppendIntervalDayTime(int32, int32) {
	panic("column: Int64Builder does not support AppendIntervalDayTime")
}
func (b *Int64Builder) AppendIntervalMonthDayNano(int32, int32, int64) {
	panic("column: Int64Builder does not support AppendIntervalMonthDayNano")
}
func (b *Int64Builder) AppendBytes([]byte) { panic("column: Int64Builder does not support AppendBytes") }

// Float64Builder is a Builder that decodes a Float64 column into a plain
// []uint64 of bit patterns (convert with math.Float64frombits) plus a
// validity slice. Unlike Int64Builder and StringBuilder, its storage is a
// plain allocation, not drawn from a slice pool.
type Float64Builder struct {
	Bits    []uint64
	Valid   []bool
	idx     int
	release func()
}

// NewFloat64Builder allocates a builder sized for exactly rowCount values.
// It also takes a []float64 from the float64 slice pool, which the builder
// never reads or writes; Bits is allocated separately, and Release only
// returns that unused pooled slice.
func NewFloat64Builder(rowCount int) *Float64Builder {
	_, release := pool.GetFloat64Slice(rowCount)

	return &Float64Builder{
		Bits:    make([]uint64, rowCount),
		Valid:   make([]bool, rowCount),
		release: release,
	}
}

// Release returns the builder's pooled backing array. The builder must not
// be used again afterward.
func (b *Float64Builder) Release() {
	if b.release == nil {
		return
	}

	b.release()
	b.release = nil
}

func (b *Float64Builder) AppendNull() { b.idx++ }
func (b *Float64Builder) AppendFloat64Bits(v uint64) {
	b.Bits[b.idx] = v
	b.Valid[b.idx] = true
	b.idx++
}
func (b *Float64Builder) AppendBool(bool)     { panic("column: Float64Builder does not support AppendBool") }
func (b *Float64Builder) AppendInt64(int64)   { panic("column: Float64Builder does not support AppendInt64") }
func (b *Float64Builder) AppendUint64(uint64) { panic("column: Float64Builder does not support AppendUint64") }
func (b *Float64Builder) AppendInt128(int64, uint64) {
	panic("column: Float64Builder does not support AppendInt128")
}
func (b *Float64Builder) AppendFloat16Bits(uint16) {
	panic("column: Float64Builder does not support AppendFloat16Bits")
}
func (b *Float64Builder) AppendFloat32Bits(uint32) {
	panic("column: Float64Builder does not support AppendFloat32Bits")
}
func (b *Float64Builder) AppendDecimal([]byte) {
	panic("column: Float64Builder does not support AppendDecimal")
}
func (b *Float64Builder) AppendIntervalDayTime(int32, int32) {
	panic("column: Float64Builder does not support AppendIntervalDayTime")
}
func (b *Float64Builder) AppendIntervalMonthDayNano(int32, int32, int64) {
	panic("column: Float64Builder does not support AppendIntervalMonthDayNano")
}
func (b *Float64Builder) AppendBytes([]byte) {
	panic("column: Float64Builder does not support AppendBytes")
}

// StringBuilder is a Builder that decodes a Variable string/binary column
// into a plain []string plus a validity slice, backed by the shared string
// slice pool.
type StringBuilder struct {
	Values  []string
	Valid   []bool
	idx     int
	release func()
}

// NewStringBuilder allocates a builder sized for exactly rowCount values.
func NewStringBuilder(rowCount int) *StringBuilder {
	values, release := pool.GetStringSlice(rowCount)

	return &StringBuilder{
		Values:  values,
		Valid:   make([]bool, rowCount),
		release: release,
	}
}

// Release returns the builder's pooled backing array. The builder must not
// be used again afterward.
func (b *StringBuilder) Release() {
	if b.release == nil {
		return
	}

	b.release()
	b.release = nil
}

func (b *StringBuilder) AppendNull() { b.idx++ }
func (b *StringBuilder) AppendBytes(v []byte) {
	b.Values[b.idx] = string(v)
	b.Valid[b.idx] = true
	b.idx++
}
func (b *StringBuilder) AppendBool(bool)     { panic("column: StringBuilder does not support AppendBool") }
func (b *StringBuilder) AppendInt64(int64)   { panic("column: StringBuilder does not support AppendInt64") }
func (b *StringBuilder) AppendUint64(uint64) { panic("column: StringBuilder does not support AppendUint64") }
func (b *StringBuilder) AppendInt128(int64, uint64) {
	panic("column: StringBuilder does not support AppendInt128")
}
func (b *StringBuilder) AppendFloat16Bits(uint16) {
	panic("column: StringBuilder does not support AppendFloat16Bits")
}
func (b *StringBuilder) AppendFloat32Bits(uint32) {
	panic("column: StringBuilder does not support AppendFloat32Bits")
}
func (b *StringBuilder) AppendFloat64Bits(uint64) {
	panic("column: StringBuilder does not support AppendFloat64Bits")
}
func (b *StringBuilder) AppendDecimal([]byte) {
	panic("column: StringBuilder does not support AppendDecimal")
}
func (b *StringBuilder) AppendIntervalDayTime(int32, int32) {
	panic("column: StringBuilder does not support AppendIntervalDayTime")
}
func (b *StringBuilder) AppendIntervalMonthDayNano(int32, int32, int64) {
	panic("column: StringBuilder does not support AppendIntervalMonthDayNano")
}
