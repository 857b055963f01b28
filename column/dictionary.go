package column

import (
	"github.com/arloliu/rowcodec/format"
	"github.com/arloliu/rowcodec/intern"
	"github.com/arloliu/rowcodec/rowbuffer"
)

// RowHandles projects a dictionary column's per-row keys (§4.4) onto the
// handles already assigned to its child array by InternColumn, producing
// the same per-row []intern.Handle shape a plain variable-length column
// would have. A dictionary column is then just a variable-length column
// whose handles happen to repeat.
func RowHandles(src DictSource, childHandles []intern.Handle) []intern.Handle {
	n := src.Len()
	out := make([]intern.Handle, n)

	for row := 0; row < n; row++ {
		if !src.IsValid(row) {
			out[row] = intern.NullHandle
			continue
		}

		out[row] = childHandles[src.KeyAt(row)]
	}

	return out
}

// EncodeDictionaryColumn interns src's child array and checks it against
// maxDictSize (0 meaning unbounded); it writes nothing itself. It returns
// the child handles so the caller can size the row buffer (via
// VariableColumnLen(in, RowHandles(src, childHandles))) before writing the
// keys with WriteDictionaryColumn, matching the two-pass prepass-then-write shape every
// variable-length column needs.
func EncodeDictionaryColumn(valueType format.DataType, src DictSource, in *intern.Interner, maxDictSize int) ([]intern.Handle, error) {
	childHandles, err := InternColumn(in, valueType, src.Values())
	if err != nil {
		return nil, err
	}

	if maxDictSize > 0 && in.Len() > maxDictSize {
		return nil, &DictionaryKeyOverflowError{KeyWidth: dictKeyWidth(maxDictSize), NumValues: in.Len()}
	}

	return childHandles, nil
}

func dictKeyWidth(maxDictSize int) int {
	switch {
	case maxDictSize <= 1<<8:
		return 8
	case maxDictSize <= 1<<16:
		return 16
	case maxDictSize <= 1<<32:
		return 32
	default:
		return 64
	}
}

// WriteDictionaryColumn writes a dictionary column's rows into buf: each
// row gets the normalized key of its referenced child value, or the null
// sentinel (§4.4 step 2).
func WriteDictionaryColumn(buf *rowbuffer.Buffer, sort format.SortOption, in *intern.Interner, rowHandles []intern.Handle) {
	WriteVariableColumn(buf, sort, in, rowHandles)
}

// ReadDictionaryColumn consumes the key segment of every row slice in rows,
// reconstructing both the keys array (via dst.AppendKey/AppendNull) and the
// child array (via dst.ChildBuilder), and advances rows[i] past whatever it
// consumed (§4.4 steps 2-5).
//
// Distinct handles are assigned dense child indices in first-seen order
// during this scan, mirroring a HashMap<Interned, K::Native>-style dense
// remap: a handle seen for the first time at row i gets the next free dense
// index, and every later row referencing the same handle reuses it.
//
// maxDictSize bounds how many distinct dense indices the scan may assign (0
// means unbounded) and must match the bound the column was encoded with;
// exceeding it returns DictionaryKeyOverflowError, mirroring the key-integer
// range check arrow-rs's decode_dictionary performs against K::Native.
func ReadDictionaryColumn(rows [][]byte, valueType format.DataType, sort format.SortOption, in *intern.Interner, maxDictSize int, dst DictBuilder) error {
	denseIndex := make(map[intern.Handle]int)
	var childValues [][]byte

	for i, row := range rows {
		key, isNull, consumed, err := scanKeySegment(row, i, sort)
		if err != nil {
			return err
		}

		if isNull {
			dst.AppendNull()
			rows[i] = row[consumed:]

			continue
		}

		h, ok := in.Lookup(key)
		if !ok {
			return &InternerInvariantViolationError{Reason: "decoded dictionary key not found in interner"}
		}

		idx, seen := denseIndex[h]
		if !seen {
			idx = len(childValues)
			if maxDictSize > 0 && idx >= maxDictSize {
				return &DictionaryKeyOverflowError{KeyWidth: dictKeyWidth(maxDictSize), NumValues: idx + 1}
			}

			denseIndex[h] = idx
			childValues = append(childValues, in.Value(h))
		}

		dst.AppendKey(idx)
		rows[i] = row[consumed:]
	}

	child := dst.ChildBuilder(valueType)
	for _, v := range childValues {
		if err := decodeInternedValue(valueType, v, child); err != nil {
			return err
		}
	}

	return nil
}
