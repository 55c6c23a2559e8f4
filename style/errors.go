package style

import "errors"

var (
	// ErrDomain indicates a value outside the active style's domain:
	// a byte ≥ 100 encoded as BCD, or a BCD cell whose recovered
	// digit exceeds 9.
	ErrDomain = errors.New("style: value outside the style's domain")

	// ErrInvalidCharacter indicates a decode input rune outside the
	// Braille Patterns block (U+2800–U+28FF).
	ErrInvalidCharacter = errors.New("style: character outside the Braille Patterns block")

	// ErrUnknownStyle indicates a style name that is not one of
	// bcd, direct, nlbb, nlbt, nrbb, nrbt.
	ErrUnknownStyle = errors.New("style: unknown style name")
)
