package column

import (
	"github.com/arloliu/rowcodec/format"
	"github.com/arloliu/rowcodec/intern"
	"github.com/arloliu/rowcodec/rowbuffer"
)

// InternColumn interns every row of a variable-length (string/binary) or
// scalar dictionary-child column, returning one handle per row (§4.3, §4.4
// step 1). A null row gets intern.NullHandle without consulting the
// interner. This is shared by plain string/binary columns, which are
// encoded as if they were a single-column dictionary over their own values
// (§3's data model groups them under one normalized-key rule), and by
// genuine dictionary columns encoding their child array.
func InternColumn(in *intern.Interner, t format.DataType, src ValueSource) ([]intern.Handle, error) {
	n := src.Len()
	values := make([][]byte, n)

	for row := 0; row < n; row++ {
		if !src.IsValid(row) {
			continue
		}

		v, err := internInput(t, src, row)
		if err != nil {
			return nil, err
		}

		values[row] = v
	}

	return in.Intern(values), nil
}

// VariableColumnLen returns the number of bytes a plain string/binary or
// dictionary-key column contributes to each row, given the handles already
// assigned by InternColumn.
func VariableColumnLen(in *intern.Interner, handles []intern.Handle) []int {
	lens := make([]int, len(handles))
	for i, h := range handles {
		if h == intern.NullHandle {
			lens[i] = 1
			continue
		}

		lens[i] = 1 + len(in.Normalized(h))
	}

	return lens
}

// WriteVariableColumn writes a plain (non-dictionary) string/binary column:
// one normalized key per row, directly in the row's own segment (§4.4's
// "0x01 || normalized_key" rule, applied with the column's own values as
// the dictionary).
func WriteVariableColumn(buf *rowbuffer.Buffer, sort format.SortOption, in *intern.Interner, handles []intern.Handle) {
	for row, h := range handles {
		if h == intern.NullHandle {
			dst := buf.Advance(row, 1)
			dst[0] = sort.NullSentinel()

			continue
		}

		norm := in.Normalized(h)
		dst := buf.Advance(row, 1+len(norm))
		dst[0] = 0x01
		copy(dst[1:], norm)

		if sort.Descending {
			for i := range dst {
				dst[i] = ^dst[i]
			}
		}
	}
}

// scanKeySegment consumes one row's normalized-key segment: the validity
// byte, the key bytes up to and including the terminator, or just the
// sentinel for a null. It returns the un-inverted key (including its
// terminator, ready for Interner.Lookup), whether the row was null, and how
// many bytes of row were consumed.
func scanKeySegment(row []byte, rowIdx int, sort format.SortOption) (key []byte, isNull bool, consumed int, err error) {
	if len(row) == 0 {
		return nil, false, 0, &MalformedRowError{Row: rowIdx, Reason: "row ended before variable-length column"}
	}

	if row[0] == sort.NullSentinel() {
		return nil, true, 1, nil
	}

	terminator := sort.Terminator()

	end := -1
	for j := 1; j < len(row); j++ {
		if row[j] == terminator {
			end = j
			break
		}
	}

	if end < 0 {
		return nil, false, 0, &MalformedRowError{Row: rowIdx, Reason: "variable-length column key has no terminator"}
	}

	seg := row[:end+1]

	key = make([]byte, len(seg)-1)
	if sort.Descending {
		if seg[0] != ^byte(0x01) {
			return nil, false, 0, &MalformedRowError{Row: rowIdx, Reason: "invalid validity byte in variable-length column"}
		}

		for j, b := range seg[1:] {
			key[j] = ^b
		}
	} else {
		if seg[0] != 0x01 {
			return nil, false, 0, &MalformedRowError{Row: rowIdx, Reason: "invalid validity byte in variable-length column"}
		}

		copy(key, seg[1:])
	}

	// key already ends with the un-inverted terminator (0x00), matching
	// what Normalized(h) produces via withTerminator.
	return key, false, end + 1, nil
}

// ReadVariableColumn consumes the key segment of every row slice in rows,
// decoding each directly into dst via the supplied interner, and advances
// rows[i] past whatever it consumed.
//
// Decoding scans forward from the validity byte for the terminator byte
// (§4.4 step 2: 0x00 ascending, 0xFF descending, after un-inverting), then
// looks the key up in the interner to recover the original value bytes.
func ReadVariableColumn(rows [][]byte, t format.DataType, sort format.SortOption, in *intern.Interner, dst Builder) error {
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
			return &InternerInvariantViolationError{Reason: "decoded key not found in interner"}
		}

		if err := decodeInternedValue(t, in.Value(h), dst); err != nil {
			return err
		}

		rows[i] = row[consumed:]
	}

	return nil
}
