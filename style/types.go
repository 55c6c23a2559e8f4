package style

import "fmt"

// Style names one bijection between byte values and Braille cells.
//
// The zero value is NLBB, the codec's default style.
type Style int

const (
	// NLBB places the most significant nibble in the left column with
	// each nibble's most significant bit in the bottom row. Default.
	NLBB Style = iota

	// NLBT places the most significant nibble in the left column with
	// each nibble's most significant bit in the top row.
	NLBT

	// NRBB places the most significant nibble in the right column with
	// each nibble's most significant bit in the bottom row.
	NRBB

	// NRBT places the most significant nibble in the right column with
	// each nibble's most significant bit in the top row.
	NRBT

	// Direct uses the byte value itself as the cell offset: byte bit i
	// raises dot i+1.
	Direct

	// BCD encodes decimal values 0–99 as a tens/ones digit pair, tens
	// in the left column and ones in the right, digit MSB in the top row.
	BCD
)

// String returns the lower-case name used by Parse and the CLI.
func (s Style) String() string {
	switch s {
	case NLBB:
		return "nlbb"
	case NLBT:
		return "nlbt"
	case NRBB:
		return "nrbb"
	case NRBT:
		return "nrbt"
	case Direct:
		return "direct"
	case BCD:
		return "bcd"
	default:
		return fmt.Sprintf("style(%d)", int(s))
	}
}

// Parse resolves a style name. It returns ErrUnknownStyle (wrapped with
// the offending name) for anything other than the six defined names.
func Parse(name string) (Style, error) {
	switch name {
	case "nlbb":
		return NLBB, nil
	case "nlbt":
		return NLBT, nil
	case "nrbb":
		return NRBB, nil
	case "nrbt":
		return NRBT, nil
	case "direct":
		return Direct, nil
	case "bcd":
		return BCD, nil
	default:
		return NLBB, fmt.Errorf("%w: %q", ErrUnknownStyle, name)
	}
}

// Styles returns all six styles in listing order (bcd, direct, nlbb,
// nlbt, nrbb, nrbt), for help text and exhaustive tests.
func Styles() []Style {
	return []Style{BCD, Direct, NLBB, NLBT, NRBB, NRBT}
}
