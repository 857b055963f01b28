package rowbuffer

import "errors"

var (
	errNonMonotoneOffsets = errors.New("rowbuffer: offsets are not monotone, a column writer advanced a row backwards")
	errShortWrite         = errors.New("rowbuffer: buffer was not fully written, a column writer under- or over-advanced a row")
)
