// Package braille encodes text to and from 6-dot Braille Unicode cells and
// renders encoded messages as physical dot patterns.
//
// Contents
//
//   - Encode/Decode map characters to cells in the U+2800 block
//   - Punchcard renders a message as an ASCII block pattern sized for
//     physical punching
//   - BinaryGrid produces the same arrangement as a 3-row 0/1 matrix for
//     machine-driven cutting
//
// # Notes
//
// Digits use the direct dropped-cell convention (1 is dot 2, 2 is dots 2-3,
// and so on) rather than the number-indicator prefix, keeping the table
// injective and decode stateless at one cell per character. The fallback
// policy matches the morse package: unsupported characters are dropped on
// encode, unknown code points on decode, and neither direction errors.
package braille
