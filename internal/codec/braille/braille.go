package braille

import (
	"fmt"
	"strings"

	"senscode/internal/domain"
)

// Default punchcard block dimensions, matching the tool surface.
const (
	DefaultCellWidth  = 4
	DefaultCellHeight = 6
)

// Dot grid dimensions of a single Braille cell.
const (
	dotCols = 2
	dotRows = 3
)

const raised = '█'

// Encode maps text to Braille Unicode cells, one cell per character.
//
// Input is uppercased before lookup; spaces map to the blank cell and
// characters outside the alphabet are dropped, so the cell count of the
// output equals the eligible-character count of the input.
func Encode(text string) string {
	var b strings.Builder
	for _, c := range cells(text) {
		b.WriteRune(c.Rune())
	}
	return b.String()
}

// Decode maps Braille Unicode cells back to uppercase text.
//
// The blank cell decodes to a space; code points outside the block and
// cells with no table entry are dropped. Decode never returns an error.
func Decode(braille string) string {
	var b strings.Builder
	for _, r := range braille {
		c, ok := cellFromRune(r)
		if !ok {
			continue
		}
		if ch, ok := inverse[c]; ok {
			b.WriteRune(ch)
		}
	}
	return b.String()
}

// Punchcard renders text as a physical punch pattern: one cellWidth by
// cellHeight block per eligible character, blocks separated by a single
// blank column, raised dots as solid marks. Every output line has the same
// length and the line count equals cellHeight regardless of text length.
//
// Dimensions smaller than the 2x3 dot grid are rejected; scaling down
// would drop dots and corrupt the punched artifact.
func Punchcard(text string, cellWidth, cellHeight int) (string, error) {
	if cellWidth < dotCols || cellHeight < dotRows {
		return "", fmt.Errorf("%w (got %dx%d)", domain.ErrCellTooSmall, cellWidth, cellHeight)
	}

	cs := cells(text)
	lines := make([]string, cellHeight)
	for row := 0; row < cellHeight; row++ {
		var b strings.Builder
		for i, c := range cs {
			if i > 0 {
				b.WriteByte(' ')
			}
			for col := 0; col < cellWidth; col++ {
				// Map the block position onto the 2x3 dot grid.
				if c.Dot(col*dotCols/cellWidth, row*dotRows/cellHeight) {
					b.WriteRune(raised)
				} else {
					b.WriteByte(' ')
				}
			}
		}
		lines[row] = b.String()
	}
	return strings.Join(lines, "\n"), nil
}

// BinaryGrid produces the dot pattern as a 0/1 matrix: 3 rows, and two
// columns per eligible character. Empty input yields three empty rows.
func BinaryGrid(text string) domain.Grid {
	cs := cells(text)
	grid := make(domain.Grid, dotRows)
	for row := range grid {
		grid[row] = make([]int, 0, len(cs)*dotCols)
		for _, c := range cs {
			for col := 0; col < dotCols; col++ {
				bit := 0
				if c.Dot(col, row) {
					bit = 1
				}
				grid[row] = append(grid[row], bit)
			}
		}
	}
	return grid
}

// cells maps text to its cell sequence under the encode policy.
func cells(text string) []Cell {
	var out []Cell
	for _, r := range strings.ToUpper(text) {
		if c, ok := alphabet[r]; ok {
			out = append(out, c)
		}
	}
	return out
}
