package column

import (
	"github.com/arloliu/rowcodec/format"
	"github.com/arloliu/rowcodec/rowbuffer"
)

// fixedColumnLen returns the number of bytes a fixed-width column
// contributes to one row (§4.5 prepass): 1 for a null (the sentinel alone),
// 1+width for a present value (validity byte plus payload).
func fixedColumnLen(width int, valid bool) int {
	if !valid {
		return 1
	}

	return 1 + width
}

// FixedColumnLen reports the contribution of one row of a fixed-width
// column of type t to the row's total byte length, for use in the §4.5
// prepass that sizes the row buffer before any column is written.
func FixedColumnLen(t format.DataType, valid bool) (int, error) {
	width, err := payloadWidth(t)
	if err != nil {
		return 0, err
	}

	return fixedColumnLen(width, valid), nil
}

// WriteFixedColumn encodes one fixed-width column into every row of buf
// (§4.1, §4.6). buf must already be sized so each row's cursor has room for
// fixedColumnLen(width, valid) bytes at this column's position.
func WriteFixedColumn(buf *rowbuffer.Buffer, t format.DataType, sort format.SortOption, src ValueSource) error {
	width, err := payloadWidth(t)
	if err != nil {
		return err
	}

	if width == 0 {
		return &UnsupportedTypeError{Type: t}
	}

	n := src.Len()
	for row := 0; row < n; row++ {
		if !src.IsValid(row) {
			dst := buf.Advance(row, 1)
			dst[0] = sort.NullSentinel()

			continue
		}

		dst := buf.Advance(row, 1+width)
		dst[0] = 0x01
		if err := encodePayload(t, src, row, dst[1:]); err != nil {
			return err
		}

		if sort.Descending {
			for i := range dst {
				dst[i] = ^dst[i]
			}
		}
	}

	return nil
}

// ReadFixedColumn consumes the fixed-width prefix of every row slice in
// rows, decoding each into dst, and advances rows[i] past whatever it
// consumed so the next column's reader can pick up where this one left off.
func ReadFixedColumn(rows [][]byte, t format.DataType, sort format.SortOption, dst Builder) error {
	width, err := payloadWidth(t)
	if err != nil {
		return err
	}

	if width == 0 {
		return &UnsupportedTypeError{Type: t}
	}

	sentinel := sort.NullSentinel()
	scratch := make([]byte, 1+width)

	for i, row := range rows {
		if len(row) == 0 {
			return &MalformedRowError{Row: i, Reason: "row ended before fixed-width column"}
		}

		if row[0] == sentinel {
			dst.AppendNull()
			rows[i] = row[1:]

			continue
		}

		if len(row) < 1+width {
			return &MalformedRowError{Row: i, Reason: "row too short for fixed-width column"}
		}

		seg := row[:1+width]
		if sort.Descending {
			for j, b := range seg {
				scratch[j] = ^b
			}

			seg = scratch
		}

		if seg[0] != 0x01 {
			return &MalformedRowError{Row: i, Reason: "invalid validity byte in fixed-width column"}
		}

		if err := decodePayload(t, seg[1:], dst); err != nil {
			return err
		}

		rows[i] = row[1+width:]
	}

	return nil
}
