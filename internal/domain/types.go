package domain

// MorseFormat selects the rendering of an encoded Morse message.
//
// The set is closed; Encode dispatches on it with an exhaustive switch.
type MorseFormat int

const (
	// MorseStandard renders dots and dashes as "." and "-", letters joined
	// by a single space and words by " / ".
	MorseStandard MorseFormat = iota
	// MorseVisual renders a dot as "▄" (short press) and a dash as "█"
	// (long press), keeping the standard separators.
	MorseVisual
	// MorseBinary renders a dot as "1" and a dash as "0", keeping the
	// standard separators as framing.
	MorseBinary
)

// String returns the wire name of the format ("standard", "visual", "binary").
func (f MorseFormat) String() string {
	switch f {
	case MorseVisual:
		return "visual"
	case MorseBinary:
		return "binary"
	default:
		return "standard"
	}
}

// ParseMorseFormat maps a wire name to a MorseFormat. Unknown names fall
// back to MorseStandard, matching the tool surface's default.
func ParseMorseFormat(name string) MorseFormat {
	switch name {
	case "visual":
		return MorseVisual
	case "binary":
		return MorseBinary
	default:
		return MorseStandard
	}
}

// Format names an encoding on the transcode surface.
type Format string

const (
	FormatText        Format = "text"
	FormatMorse       Format = "morse"
	FormatBraille     Format = "braille"
	FormatMorseVisual Format = "morse_visual"
	FormatPunchcard   Format = "punchcard"
)

// SignalState is the state of a Morse signal line: on (keyed) or off (gap).
type SignalState string

const (
	SignalOn  SignalState = "on"
	SignalOff SignalState = "off"
)

// TimingEntry is one step of a Morse timing schedule, consumable by an
// audio or light driver.
type TimingEntry struct {
	State      SignalState `json:"state"`
	DurationMS int         `json:"duration_ms"`
}

// Grid is a machine-readable dot matrix: Grid[row][col] is 1 for a raised
// dot and 0 for a flat position. A Braille grid always has 3 rows.
type Grid [][]int

// Fingerprint is a short hex digest used to tie a physical artifact
// (punchcard, logged transmission) back to its encoded message.
type Fingerprint string
