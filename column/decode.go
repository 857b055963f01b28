package column

import (
	"github.com/arloliu/rowcodec/format"
	"github.com/arloliu/rowcodec/intern"
)

// DecodeColumn describes one column to DecodeRows: its type, sort option,
// and where to append reconstructed values. Builder is used for Fixed and
// Variable columns; DictBuilder is used for Dictionary columns. Interner
// must be the same (or an equivalent, identically populated) interner used
// to encode the column.
type DecodeColumn struct {
	Type        format.DataType
	Sort        format.SortOption
	Kind        Kind
	Builder     Builder
	DictBuilder DictBuilder
	Interner    *intern.Interner
	MaxDictSize int // Dictionary only; 0 means unbounded. Must match the value used at encode time.
}

// DecodeRows walks rows (one byte slice per row, in row order, typically
// from rowbuffer.Buffer.RowBytes) through cols in order, feeding each
// column's builder. Columns must be supplied in the same order they were
// encoded in, since each column reader only knows how to consume its own
// prefix of whatever bytes remain in a row.
func DecodeRows(rows [][]byte, cols []DecodeColumn) error {
	cursors := make([][]byte, len(rows))
	copy(cursors, rows)

	for _, col := range cols {
		switch col.Kind {
		case Fixed:
			if err := ReadFixedColumn(cursors, col.Type, col.Sort, col.Builder); err != nil {
				return err
			}
		case Variable:
			if err := ReadVariableColumn(cursors, col.Type, col.Sort, col.Interner, col.Builder); err != nil {
				return err
			}
		case Dictionary:
			if err := ReadDictionaryColumn(cursors, col.Type, col.Sort, col.Interner, col.MaxDictSize, col.DictBuilder); err != nil {
				return err
			}
		default:
			return &UnsupportedTypeError{Type: col.Type}
		}
	}

	return nil
}
