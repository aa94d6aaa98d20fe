package braille

// alphabet maps each canonical character to its dot mask. Letters follow
// standard literary Braille; digits use the dropped cells of A-J (each dot
// shifted one row down), which keeps the table injective.
var alphabet = map[rune]Cell{
	'A': 0x01, 'B': 0x03, 'C': 0x09, 'D': 0x19, 'E': 0x11,
	'F': 0x0B, 'G': 0x1B, 'H': 0x13, 'I': 0x0A, 'J': 0x1A,
	'K': 0x05, 'L': 0x07, 'M': 0x0D, 'N': 0x1D, 'O': 0x15,
	'P': 0x0F, 'Q': 0x1F, 'R': 0x17, 'S': 0x0E, 'T': 0x1E,
	'U': 0x25, 'V': 0x27, 'W': 0x3A, 'X': 0x2D, 'Y': 0x3D,
	'Z': 0x35,

	'1': 0x02, '2': 0x06, '3': 0x12, '4': 0x32, '5': 0x22,
	'6': 0x16, '7': 0x36, '8': 0x26, '9': 0x14, '0': 0x34,

	' ': blank,
}

// inverse is the cell to character table, built once at init.
var inverse = make(map[Cell]rune, len(alphabet))

func init() {
	for r, c := range alphabet {
		inverse[c] = r
	}
	if len(inverse) != len(alphabet) {
		panic("braille: alphabet table is not injective")
	}
}
