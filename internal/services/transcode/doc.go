// Package transcode converts between sensory encodings.
//
// Every conversion goes through plain text as the universal intermediate:
// the input is decoded to text, then encoded to the target. This is the
// single canonical path; there are no direct format-to-format shortcuts,
// so adding a format means adding one decode and one encode arm.
package transcode
