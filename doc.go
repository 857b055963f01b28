// Package rowcodec implements an order-preserving row encoding: given a set
// of typed columns and a sort direction per column, it produces one byte
// slice per row such that unsigned lexicographic comparison of two rows'
// bytes agrees with comparing the original values column-by-column under
// the requested directions.
//
// The codec is split across several packages, each owning one layer of the
// on-wire format:
//
//   - format holds the closed DataType enum and the SortOption/null-sentinel
//     rules every other package depends on.
//   - fixedwidth implements the byte-level transform for scalar types
//     (sign-bit toggling, float bit-twiddling, decimal byte reversal).
//   - intern implements the order-preserving interner used to turn
//     dictionary and plain string/binary values into normalized,
//     null-terminated byte keys.
//   - rowbuffer implements the packed byte arena rows are written into.
//   - column ties the above together into per-column encode/decode
//     functions and the EncodeRows/DecodeRows entry points.
//
// Package rowcodec itself adds a thin Table type on top of column.EncodeRows
// for callers who want column-level defaults (sort direction, dictionary
// size bound) applied across a whole row set instead of repeating them on
// every column.
package rowcodec
