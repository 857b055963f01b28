// Package intern implements the order-preserving interner used to turn
// dictionary values into normalized, null-terminated byte keys: distinct
// value bytes in, a monotone byte string out, such that normalized byte
// order always matches the natural order of the input bytes (§4.3).
//
// Callers feed it either the fixed-width encoding of a scalar (so the input
// bytes already sort like the value) or raw UTF-8/binary bytes for
// string/binary columns. The interner never reorders or rewrites an
// existing assignment: new values are slotted strictly between their
// neighbors, extending the byte string when no single byte fits between
// them.
package intern

import (
	"bytes"
	"sort"
	"sync"
)

// Handle is a stable, small identifier for an interned value. It is only
// valid for the lifetime of the Interner that produced it.
type Handle int32

// NullHandle is returned in place of a Handle for a null input value.
const NullHandle Handle = -1

type entry struct {
	input      []byte
	normalized []byte // without the trailing 0x00 terminator
}

// Interner is the persistent, insert-only, order-preserving mapping from
// input byte strings to normalized byte strings described in §4.3.
//
// Per the concurrency model (§5), Intern must be called with exclusive
// access; Lookup and Value may be called concurrently with each other
// provided no Intern call is in flight.
type Interner struct {
	mu      sync.RWMutex
	entries []entry
	order   []Handle // entries, indexed by position in sorted input order
	byInput map[string]Handle
	byNorm  map[string]Handle // normalized+terminator -> handle
}

// New creates an empty interner.
func New() *Interner {
	return &Interner{
		byInput: make(map[string]Handle),
		byNorm:  make(map[string]Handle),
	}
}

// Intern inserts any values not already known to the interner and returns,
// for every input, the handle assigned to it (or NullHandle for a nil
// entry, representing a null value).
func (in *Interner) Intern(values [][]byte) []Handle {
	in.mu.Lock()
	defer in.mu.Unlock()

	out := make([]Handle, len(values))
	for i, v := range values {
		if v == nil {
			out[i] = NullHandle
			continue
		}

		out[i] = in.internLocked(v)
	}

	return out
}

func (in *Interner) internLocked(v []byte) Handle {
	key := string(v)
	if h, ok := in.byInput[key]; ok {
		return h
	}

	pos := sort.Search(len(in.order), func(i int) bool {
		return bytes.Compare(in.entries[in.order[i]].input, v) >= 0
	})

	var lo, hi []byte
	if pos > 0 {
		lo = in.entries[in.order[pos-1]].normalized
	}

	if pos < len(in.order) {
		hi = in.entries[in.order[pos]].normalized
	}

	norm := between(lo, hi)

	h := Handle(len(in.entries))
	in.entries = append(in.entries, entry{
		input:      append([]byte(nil), v...),
		normalized: norm,
	})

	in.order = append(in.order, NullHandle)
	copy(in.order[pos+1:], in.order[pos:len(in.order)-1])
	in.order[pos] = h

	in.byInput[key] = h
	in.byNorm[string(withTerminator(norm))] = h

	return h
}

// Lookup is the reverse of Normalized: given normalized bytes exactly as
// produced by this interner (including the trailing terminator), it
// returns the handle that produced them.
func (in *Interner) Lookup(normalized []byte) (Handle, bool) {
	in.mu.RLock()
	defer in.mu.RUnlock()

	h, ok := in.byNorm[string(normalized)]

	return h, ok
}

// Value returns the original input bytes for a handle.
func (in *Interner) Value(h Handle) []byte {
	in.mu.RLock()
	defer in.mu.RUnlock()

	return in.entries[h].input
}

// Normalized returns the null-terminated normalized byte string for a
// handle, suitable for writing directly into a row's dictionary segment.
func (in *Interner) Normalized(h Handle) []byte {
	in.mu.RLock()
	defer in.mu.RUnlock()

	return withTerminator(in.entries[h].normalized)
}

// Len returns the number of distinct values interned so far.
func (in *Interner) Len() int {
	in.mu.RLock()
	defer in.mu.RUnlock()

	return len(in.entries)
}

func withTerminator(norm []byte) []byte {
	out := make([]byte, len(norm)+1)
	copy(out, norm)
	out[len(norm)] = 0x00

	return out
}

// between returns a normalized byte string that lexicographically sorts
// strictly between lo and hi (either of which may be nil, meaning no lower
// or no upper bound respectively). The alphabet used for interior bytes is
// 1..255: 0x00 is reserved exclusively for the terminator appended by
// withTerminator, so it can never appear as an interior byte here.
//
// At each byte position it tries to pick a value strictly between the
// neighbors' bytes at that position. A lo that has run out contributes the
// virtual byte 0 (lo's own terminator). A hi that has run out contributes
// its own terminator too (0), *unless* hi is nil, meaning there is no upper
// neighbor at all — an unbounded hi contributes the virtual byte 256,
// strictly above every representable byte, so a value can always be
// appended after the last entry. Conflating "hi ran out" with "hi is nil"
// here would place new values after an existing hi whose own normalized
// string happened to be a byte-wise prefix of the candidate, corrupting
// order for any subsequent insertion that lands between them. When the
// neighbors are adjacent at that position it commits to the lower
// neighbor's byte (or 1, if lo has run out) and descends a level, widening
// the string by one byte, until room opens up; once the committed byte is
// below hi's byte, hi no longer bounds the later positions. The returned
// string never ends in byte 1, so there is always room below it for a later
// insertion.
func between(lo, hi []byte) []byte {
	var out []byte

	for i := 0; ; i++ {
		loB := 0
		if i < len(lo) {
			loB = int(lo[i])
		}

		hiB := 0
		switch {
		case hi == nil:
			hiB = 256
		case i < len(hi):
			hiB = int(hi[i])
		}

		if mid := loB + (hiB-loB)/2; hiB-loB > 1 && mid > 1 {
			return append(out, byte(mid))
		}

		b := loB
		if b == 0 {
			b = 1
		}

		out = append(out, byte(b))
		if b < hiB {
			hi = nil
		}
	}
}
