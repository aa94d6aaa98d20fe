package braille

// Cell is a 6-dot Braille cell as a bitmask. Bit n set means dot n+1 is
// raised, using the Unicode dot numbering: dots 1-3 are the left column
// top to bottom, dots 4-6 the right column.
type Cell uint8

// blank is the empty cell, rendered as U+2800 and decoded as a space.
const blank Cell = 0

// cellBase is the start of the Unicode Braille Patterns block; the low six
// bits of a code point in the block are exactly the dot mask.
const cellBase = 0x2800

// Rune returns the Unicode code point for the cell.
func (c Cell) Rune() rune { return rune(cellBase + int(c)) }

// Dot reports whether the dot at (col, row) is raised, with col in 0..1
// and row in 0..2.
func (c Cell) Dot(col, row int) bool {
	return c&(1<<(col*3+row)) != 0
}

// cellFromRune converts a code point back to a cell mask. The second
// return is false for anything outside the 6-dot range of the block.
func cellFromRune(r rune) (Cell, bool) {
	if r < cellBase || r > cellBase+0x3F {
		return 0, false
	}
	return Cell(r - cellBase), true
}
