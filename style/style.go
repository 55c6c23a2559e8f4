package style

import (
	"fmt"

	"github.com/katalvlaran/bbd/cell"
)

// EncodeByte maps one byte to one Braille Patterns rune under s.
//
// For the five byte styles every value 0–255 is valid. For BCD only
// values 0–99 are representable; anything larger returns an error
// wrapping ErrDomain.
func (s Style) EncodeByte(b byte) (rune, error) {
	switch s {
	case NLBB, NLBT, NRBB, NRBT:
		return cell.Rune(layouts[s].offset(b)), nil
	case Direct:
		return cell.Rune(b), nil
	case BCD:
		offset, err := encodeBCD(b)
		if err != nil {
			return 0, err
		}
		return cell.Rune(offset), nil
	default:
		panic(fmt.Sprintf("style: EncodeByte on undefined style %d", int(s)))
	}
}

// DecodeRune maps one Braille Patterns rune back to the byte that
// EncodeByte produced it from.
//
// A rune outside U+2800–U+28FF returns an error wrapping
// ErrInvalidCharacter. Under BCD, a cell whose recovered tens or ones
// digit exceeds 9 returns an error wrapping ErrDomain.
func (s Style) DecodeRune(r rune) (byte, error) {
	offset, ok := cell.Offset(r)
	if !ok {
		return 0, fmt.Errorf("%w: %q (%U)", ErrInvalidCharacter, r, r)
	}
	switch s {
	case NLBB, NLBT, NRBB, NRBT:
		return layouts[s].value(offset), nil
	case Direct:
		return offset, nil
	case BCD:
		return decodeBCD(offset)
	default:
		panic(fmt.Sprintf("style: DecodeRune on undefined style %d", int(s)))
	}
}
