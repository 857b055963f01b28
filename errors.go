package rowcodec

import "fmt"

// InvalidMaxDictSizeError is returned by WithMaxDictSize for a negative
// bound.
type InvalidMaxDictSizeError struct {
	MaxDictSize int
}

func (e *InvalidMaxDictSizeError) Error() string {
	return fmt.Sprintf("rowcodec: invalid max dictionary size %d", e.MaxDictSize)
}
