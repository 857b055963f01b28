// Package rowbuffer implements the packed byte arena described in §4.5: a
// contiguous byte array holding every encoded row back to back, plus an
// offsets array that frames each row and doubles as the write cursor while
// columns are being encoded.
package rowbuffer

// Buffer is the row arena. Once Freeze is called offsets are no longer
// mutated and RowBytes returns the final per-row slices.
type Buffer struct {
	data    []byte
	offsets []int // length rowCount+1; row i spans offsets[i]:offsets[i+1], and offsets[i+1] is its write cursor until frozen
	frozen  bool
}

// New allocates a buffer sized to hold rowCount rows whose total encoded
// length is totalLen bytes. The caller (the column dispatch prepass,
// §4.5/§4.6) is responsible for computing totalLen up front, since string
// and dictionary columns have data-dependent lengths.
func New(rowCount, totalLen int) *Buffer {
	b := &Buffer{
		data:    make([]byte, totalLen),
		offsets: make([]int, rowCount+1),
	}

	return b
}

// RowCount returns the number of rows the buffer was sized for.
func (b *Buffer) RowCount() int {
	if len(b.offsets) == 0 {
		return 0
	}

	return len(b.offsets) - 1
}

// Cursor returns the current write position for row i: the end of
// whatever has been written for previous columns of that row so far.
func (b *Buffer) Cursor(row int) int {
	return b.offsets[row+1]
}

// Advance appends n bytes, starting at the row's current cursor, and moves
// the cursor forward by n. Bytes already written for later rows are shifted
// right by n to make room, so rows stay packed back to back. It returns the
// (zeroed) slice just reserved, so the caller can fill it in place.
func (b *Buffer) Advance(row, n int) []byte {
	start := b.offsets[row+1]
	used := b.offsets[len(b.offsets)-1]
	copy(b.data[start+n:used+n], b.data[start:used])

	for i := row + 1; i < len(b.offsets); i++ {
		b.offsets[i] += n
	}

	dst := b.data[start : start+n]
	clear(dst)

	return dst
}

// Freeze finalizes the offsets table: offsets[0] is defined as 0 and
// offsets[rowCount] as the total length, matching the invariant that
// offsets are strictly monotone once every column has been written.
//
// Freeze must be called after the last column has been encoded; it exists
// mainly as a cheap sanity check that every row's cursor actually reached
// the buffer's end, catching a column dispatch that under- or
// over-advanced a row.
func (b *Buffer) Freeze() error {
	if b.frozen {
		return nil
	}

	for i := 1; i < len(b.offsets); i++ {
		if b.offsets[i] < b.offsets[i-1] {
			return errNonMonotoneOffsets
		}
	}

	if n := len(b.offsets); n > 0 && b.offsets[n-1] != len(b.data) {
		return errShortWrite
	}

	b.frozen = true

	return nil
}

// RowBytes returns the encoded bytes for row i. The returned slice aliases
// the buffer's backing array and must not be retained past the buffer's
// lifetime if the buffer is reused.
func (b *Buffer) RowBytes(i int) []byte {
	return b.data[b.offsets[i]:b.offsets[i+1]]
}

// Bytes returns the full packed byte array across all rows.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Offsets returns the frozen offsets table.
func (b *Buffer) Offsets() []int {
	return b.offsets
}
