package column

import (
	"github.com/arloliu/rowcodec/format"
	"github.com/arloliu/rowcodec/intern"
	"github.com/arloliu/rowcodec/rowbuffer"
)

// Kind selects which column writer/reader an EncodeColumn or DecodeColumn dispatches to
// (§4.6). It is deliberately a closed enum rather than something inferred
// from DataType alone, since the same DataType (e.g. String) can appear
// either as a plain variable-length column or as a dictionary's child type.
type Kind uint8

const (
	// Fixed columns hold one of the scalar fixed-width types (§4.1).
	Fixed Kind = iota
	// Variable columns hold string/binary values, normalized through an
	// interner the same way a dictionary's child array would be (§3, §4.4).
	Variable
	// Dictionary columns hold an index into a deduplicated child array
	// (§4.4).
	Dictionary
)

// EncodeColumn describes one column to EncodeRows: its type, sort option,
// and where to read values from. Source is used for Fixed and Variable
// columns; DictSource is used for Dictionary columns. Interner is required
// for Variable and Dictionary columns and is left to the caller so that a
// dictionary (or a plain string column's normalization table) can be
// reused across multiple encode calls sharing the same universe of values.
type EncodeColumn struct {
	Type        format.DataType
	Sort        format.SortOption
	Kind        Kind
	Source      ValueSource // Fixed, Variable
	DictSource  DictSource  // Dictionary
	Interner    *intern.Interner
	MaxDictSize int // Dictionary only; 0 means unbounded
}

type preparedColumn struct {
	col     EncodeColumn
	handles []intern.Handle // Variable, Dictionary only
}

// EncodeRows lays out rowCount rows of cols into a fresh rowbuffer.Buffer
// (§4.5/§4.6): a prepass computes each row's total length (interning every
// Variable/Dictionary column's values along the way, since their on-wire
// length depends on the normalized key assigned), then a second pass writes
// every column's bytes into the correctly sized buffer.
func EncodeRows(rowCount int, cols []EncodeColumn) (*rowbuffer.Buffer, error) {
	rowLens := make([]int, rowCount)
	prepared := make([]preparedColumn, len(cols))

	for ci, col := range cols {
		switch col.Kind {
		case Fixed:
			width, err := payloadWidth(col.Type)
			if err != nil {
				return nil, err
			}

			for row := 0; row < rowCount; row++ {
				rowLens[row] += fixedColumnLen(width, col.Source.IsValid(row))
			}

			prepared[ci] = preparedColumn{col: col}

		case Variable:
			handles, err := InternColumn(col.Interner, col.Type, col.Source)
			if err != nil {
				return nil, err
			}

			for row, l := range VariableColumnLen(col.Interner, handles) {
				rowLens[row] += l
			}

			prepared[ci] = preparedColumn{col: col, handles: handles}

		case Dictionary:
			childHandles, err := EncodeDictionaryColumn(col.Type, col.DictSource, col.Interner, col.MaxDictSize)
			if err != nil {
				return nil, err
			}

			rowHandles := RowHandles(col.DictSource, childHandles)
			for row, l := range VariableColumnLen(col.Interner, rowHandles) {
				rowLens[row] += l
			}

			prepared[ci] = preparedColumn{col: col, handles: rowHandles}

		default:
			return nil, &UnsupportedTypeError{Type: col.Type}
		}
	}

	total := 0
	for _, l := range rowLens {
		total += l
	}

	buf := rowbuffer.New(rowCount, total)

	for _, p := range prepared {
		switch p.col.Kind {
		case Fixed:
			if err := WriteFixedColumn(buf, p.col.Type, p.col.Sort, p.col.Source); err != nil {
				return nil, err
			}
		case Variable:
			WriteVariableColumn(buf, p.col.Sort, p.col.Interner, p.handles)
		case Dictionary:
			WriteDictionaryColumn(buf, p.col.Sort, p.col.Interner, p.handles)
		}
	}

	if err := buf.Freeze(); err != nil {
		return nil, err
	}

	return buf, nil
}
