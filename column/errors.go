package column

import (
	"fmt"

	"github.com/arloliu/rowcodec/format"
)

// UnsupportedTypeError is returned when dispatch is asked to encode or
// decode a DataType it does not recognize, or a type/kind combination that
// is not legal for the column being built (e.g. a variable-length type
// routed through the fixed-width writer).
type UnsupportedTypeError struct {
	Type format.DataType
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("column: unsupported type %s", e.Type)
}

// DictionaryKeyOverflowError is returned when a dictionary column accumulates
// more distinct values than its declared key width can index.
type DictionaryKeyOverflowError struct {
	KeyWidth  int
	NumValues int
}

func (e *DictionaryKeyOverflowError) Error() string {
	return fmt.Sprintf("column: dictionary has %d distinct values, which overflows a %d-bit key", e.NumValues, e.KeyWidth)
}

// MalformedRowError is returned when a decoder encounters a row whose bytes
// do not match what the column's type and sort option predict: a row that
// ends early, a validity byte that is neither the sentinel nor 0x01, or a
// dictionary key segment with no terminator.
type MalformedRowError struct {
	Row    int
	Reason string
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("column: malformed row %d: %s", e.Row, e.Reason)
}

// InternerInvariantViolationError signals that an interner handle produced
// during decode could not be resolved against its interner. It indicates a
// bug in the codec itself (a decode-side interner out of sync with the one
// used at encode time) rather than bad input. It is returned on every build,
// not only in debug builds.
type InternerInvariantViolationError struct {
	Reason string
}

func (e *InternerInvariantViolationError) Error() string {
	return fmt.Sprintf("column: interner invariant violated: %s", e.Reason)
}
