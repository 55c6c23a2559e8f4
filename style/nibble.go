package style

import "github.com/katalvlaran/bbd/cell"

// layout parameterizes the four nibble-column styles: which column
// receives the most significant nibble, and whether each nibble's most
// significant bit sits in the top or bottom row of its column.
type layout struct {
	msnLeft bool
	msbTop  bool
}

// layouts holds the four mutually exclusive combinations, indexed by
// style. Only NLBB..NRBT appear here.
var layouts = map[Style]layout{
	NLBB: {msnLeft: true, msbTop: false},
	NLBT: {msnLeft: true, msbTop: true},
	NRBB: {msnLeft: false, msbTop: false},
	NRBT: {msnLeft: false, msbTop: true},
}

// columns returns the columns holding the most and least significant
// nibble, in that order.
func (l layout) columns() (msn, lsn cell.Column) {
	if l.msnLeft {
		return cell.Left, cell.Right
	}
	return cell.Right, cell.Left
}

// offset builds the cell offset for byte b under this layout.
func (l layout) offset(b byte) byte {
	msnCol, lsnCol := l.columns()
	return nibbleOffset(b>>4, msnCol, l.msbTop) |
		nibbleOffset(b&0x0F, lsnCol, l.msbTop)
}

// value rebuilds the byte from a cell offset under this layout.
func (l layout) value(offset byte) byte {
	msnCol, lsnCol := l.columns()
	return nibbleValue(offset, msnCol, l.msbTop)<<4 |
		nibbleValue(offset, lsnCol, l.msbTop)
}

// nibbleOffset spreads the 4 bits of n down the rows of col: bit k lands
// in row k when the MSB belongs at the bottom, in row 3−k when at the top.
func nibbleOffset(n byte, col cell.Column, msbTop bool) byte {
	var offset byte
	for k := 0; k < 4; k++ {
		if n&(1<<k) == 0 {
			continue
		}
		row := k
		if msbTop {
			row = 3 - k
		}
		offset |= 1 << cell.Bit(col, row)
	}
	return offset
}

// nibbleValue is the inverse of nibbleOffset: it collects the 4 row bits
// of col back into a nibble under the same row rule.
func nibbleValue(offset byte, col cell.Column, msbTop bool) byte {
	var n byte
	for k := 0; k < 4; k++ {
		row := k
		if msbTop {
			row = 3 - k
		}
		if offset&(1<<cell.Bit(col, row)) != 0 {
			n |= 1 << k
		}
	}
	return n
}
