package style

import (
	"fmt"

	"github.com/katalvlaran/bbd/cell"
)

// There is exactly one documented BCD variant: tens digit in the left
// column, ones digit in the right column, digit MSB in the top row.
const bcdMSBTop = true

// encodeBCD maps a decimal value 0–99 to a cell offset. Values ≥ 100 are
// a domain violation, never truncated or wrapped.
func encodeBCD(v byte) (byte, error) {
	if v > 99 {
		return 0, fmt.Errorf("%w: bcd cannot encode %d (valid range 0..99)", ErrDomain, v)
	}
	return nibbleOffset(v/10, cell.Left, bcdMSBTop) |
		nibbleOffset(v%10, cell.Right, bcdMSBTop), nil
}

// decodeBCD rebuilds a decimal value from a cell offset. A recovered
// digit above 9 means the cell was not produced by encodeBCD.
func decodeBCD(offset byte) (byte, error) {
	tens := nibbleValue(offset, cell.Left, bcdMSBTop)
	ones := nibbleValue(offset, cell.Right, bcdMSBTop)
	if tens > 9 || ones > 9 {
		return 0, fmt.Errorf("%w: bcd cell %q holds digits %d and %d", ErrDomain, cell.Rune(offset), tens, ones)
	}
	return 10*tens + ones, nil
}
