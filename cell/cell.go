package cell

import "fmt"

// Column selects one of the two dot columns of a Braille cell.
type Column int

const (
	// Left is the column holding dots 1, 2, 3, 7 (rows 0..3).
	Left Column = iota

	// Right is the column holding dots 4, 5, 6, 8 (rows 0..3).
	Right
)

// String returns "left" or "right".
func (c Column) String() string {
	if c == Left {
		return "left"
	}
	return "right"
}

const (
	// Base is the first code point of the Unicode Braille Patterns block.
	Base rune = 0x2800

	// Rows is the number of dot rows per column, numbered 0 (top) to 3 (bottom).
	Rows = 4
)

// dots maps (column, row) to the conventional dot number 1..8.
var dots = [2][Rows]int{
	{1, 2, 3, 7}, // Left
	{4, 5, 6, 8}, // Right
}

// Dot returns the conventional dot number (1..8) at the given grid
// position. Panics if col or row is out of range.
func Dot(col Column, row int) int {
	if col != Left && col != Right {
		panic(fmt.Sprintf("cell: invalid column %d", col))
	}
	if row < 0 || row >= Rows {
		panic(fmt.Sprintf("cell: invalid row %d", row))
	}
	return dots[col][row]
}

// Bit returns the offset bit index (0..7) contributed by the dot at the
// given grid position: dot d sets bit d−1. Panics on an invalid position.
func Bit(col Column, row int) uint8 {
	return uint8(Dot(col, row) - 1)
}

// Position is the inverse of Bit: it returns the grid position of the
// dot contributing the given offset bit. Panics if bit > 7.
func Position(bit uint8) (Column, int) {
	for col := Left; col <= Right; col++ {
		for row := 0; row < Rows; row++ {
			if dots[col][row] == int(bit)+1 {
				return col, row
			}
		}
	}
	panic(fmt.Sprintf("cell: invalid bit index %d", bit))
}

// Rune returns the Braille Patterns rune whose raised dots are described
// by offset: dot d is raised iff bit d−1 of offset is set.
func Rune(offset byte) rune {
	return Base + rune(offset)
}

// Offset returns the dot-state offset of r and true when r lies inside
// the Braille Patterns block, or 0 and false otherwise.
func Offset(r rune) (byte, bool) {
	if !IsPattern(r) {
		return 0, false
	}
	return byte(r - Base), true
}

// IsPattern reports whether r is a Braille Patterns character
// (U+2800–U+28FF).
func IsPattern(r rune) bool {
	return r >= Base && r <= Base+0xFF
}
