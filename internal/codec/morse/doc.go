// Package morse encodes text to and from International Morse code.
//
// Contents
//
//   - Encode renders text as dot/dash sequences in standard, visual or
//     binary form (Encode)
//   - Decode maps a standard-form Morse string back to uppercase text
//     (Decode)
//   - ToTiming derives an on/off schedule for audio or light keying
//     (ToTiming)
//
// # Notes
//
// The alphabet tables are package constants built once at init and never
// mutated, so every function here is pure and safe for concurrent callers.
// Characters outside the alphabet are dropped on encode; unknown token
// sequences are dropped on decode. Neither direction ever returns an error.
package morse
