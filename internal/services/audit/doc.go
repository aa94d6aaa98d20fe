// Package audit fingerprints encoded artifacts.
//
// A punched card or a logged Morse transmission has no inherent link back
// to the message it was produced from. The short digest printed here can
// be written on the physical artifact so it can later be checked against a
// re-encoding of the claimed source text.
package audit
