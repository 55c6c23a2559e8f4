// Package cell defines the canonical addressing of a Braille cell: the
// fixed correspondence between the 8 dot positions of a 2-column × 4-row
// grid, the 8 bits of the 0–255 offset into the Unicode Braille Patterns
// block, and the block's code points (U+2800–U+28FF).
//
// What:
//
//   - Dots are numbered by Unicode convention: 1,2,3,7 down the left
//     column, 4,5,6,8 down the right column.
//   - Dot d contributes bit d−1 to the cell offset; the cell's rune is
//     Base + offset.
//   - Bit/Position translate between (column, row) grid coordinates and
//     offset bit indices; Rune/Offset translate between offsets and runes.
//
// Why:
//
//   - Every encoding style in package style is a permutation over this one
//     coordinate system; defining it once keeps the six styles honest.
//
// Invariants:
//
//   - Position(Bit(c, r)) == (c, r) for all 8 grid positions.
//   - Offset↔rune is a fixed bijection over 256 values, independent of
//     any style.
//
// All operations are pure; the only failure mode is a panic on a grid
// coordinate or bit index that cannot exist (programmer error).
package cell
