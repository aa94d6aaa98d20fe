// Package mcpserver exposes the codecs as MCP tools over stdio.
//
// Tools
//
//   - morse_encode         text to Morse (standard, visual or binary)
//   - morse_decode         Morse back to text
//   - morse_timing         keying schedule for audio/light drivers (JSON)
//   - braille_encode       text to Braille Unicode cells
//   - braille_decode       Braille back to text
//   - braille_punchcard    ASCII punch pattern
//   - braille_binary_grid  3-row 0/1 dot matrix (JSON)
//   - transcode            any supported format to any other via text
//
// # Implementation
//
// Each tool parses its arguments, calls the pure codec functions, and
// returns a single text content block; structured results (timing, grids)
// are serialized as JSON. Missing required arguments become tool errors
// visible to the caller, never process faults. The server is stateless, so
// concurrent tool calls need no locking.
package mcpserver
