package domain

import "errors"

// DefaultSequenceKey names the single process-wide consignment counter.
const DefaultSequenceKey = "global"

// ErrInvalidKey is returned for an empty sequence key.
var ErrInvalidKey = errors.New("sequence key is required")

// Sequence is the consignment counter record. CurrentNumber is the last number issued.
type Sequence struct {
	Key           string `json:"key"`
	CurrentNumber int64  `json:"currentNumber"`
}

// Allocation is one issued consignment number.
type Allocation struct {
	ConsignmentNumber int64 `json:"consignmentNumber"`
}

// Floor is the lowest value the counter may hold before the next increment: the highest
// of base and every known maximum. The counter's own value is applied atomically by the
// store.
func Floor(base int64, maxima ...int64) int64 {
	floor := base
	for _, m := range maxima {
		if m > floor {
			floor = m
		}
	}
	return floor
}
