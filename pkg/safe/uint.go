// Package safe narrows integer widths with range checks.
package safe

import (
	"fmt"
	"math"
)

// Uint32 converts an unsigned value to uint32, rejecting anything that
// does not fit. Schedule ids are 32-bit on the wire and in storage, so
// every externally supplied id passes through here.
func Uint32[T ~uint | ~uint32 | ~uint64](v T) (uint32, error) {
	if uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("value %d out of uint32 range", v)
	}
	return uint32(v), nil
}
