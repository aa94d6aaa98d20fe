package morse

import (
	"strings"

	"senscode/internal/domain"
)

const (
	letterSep = " "
	wordSep   = " / "

	// DefaultUnitMS is the base time unit used when a caller passes a
	// non-positive unit to ToTiming.
	DefaultUnitMS = 100
)

// Visual glyphs: a dot is a short press, a dash a long one.
const (
	glyphDot  = "▄"
	glyphDash = "█"
)

// Encode renders text as Morse code in the requested format.
//
// Input is uppercased before lookup; characters outside the alphabet are
// dropped. Letters are joined by a single space and words by " / ". The
// visual and binary formats are per-token substitutions over the standard
// rendering, so framing is identical across all three.
func Encode(text string, format domain.MorseFormat) string {
	var words []string
	for _, w := range strings.Fields(strings.ToUpper(text)) {
		var letters []string
		for _, r := range w {
			if seq, ok := alphabet[r]; ok {
				letters = append(letters, seq)
			}
		}
		if len(letters) > 0 {
			words = append(words, strings.Join(letters, letterSep))
		}
	}
	std := strings.Join(words, wordSep)

	switch format {
	case domain.MorseStandard:
		return std
	case domain.MorseVisual:
		return substitute(std, glyphDot, glyphDash)
	case domain.MorseBinary:
		return substitute(std, "1", "0")
	}
	return std
}

// substitute rewrites dot and dash tokens, leaving separators untouched.
func substitute(std, dot, dash string) string {
	var b strings.Builder
	b.Grow(len(std))
	for _, r := range std {
		switch r {
		case '.':
			b.WriteString(dot)
		case '-':
			b.WriteString(dash)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Decode maps a standard-form Morse string back to uppercase text.
//
// Words are separated by " / "; a bare double-space word gap is tolerated.
// Unknown token sequences are dropped. Decode never returns an error.
func Decode(morse string) string {
	// Normalize the double-space word convention to the slash one.
	morse = strings.ReplaceAll(morse, "  ", " / ")

	var words []string
	for _, w := range strings.Split(morse, "/") {
		var letters []rune
		for _, tok := range strings.Fields(w) {
			if r, ok := inverse[tok]; ok {
				letters = append(letters, r)
			}
		}
		if len(letters) > 0 {
			words = append(words, string(letters))
		}
	}
	return strings.Join(words, " ")
}

// ToTiming derives the on/off keying schedule for a standard-form Morse
// string: dot = 1 unit on, dash = 3 units on, intra-letter gap 1 unit off,
// inter-letter gap 3 units off, inter-word gap 7 units off. These ratios
// are the standardized Morse convention. No gap follows the final symbol.
func ToTiming(morse string, unitMS int) []domain.TimingEntry {
	if unitMS <= 0 {
		unitMS = DefaultUnitMS
	}

	morse = strings.ReplaceAll(morse, "  ", " / ")

	var out []domain.TimingEntry
	on := func(units int) {
		out = append(out, domain.TimingEntry{State: domain.SignalOn, DurationMS: units * unitMS})
	}
	off := func(units int) {
		out = append(out, domain.TimingEntry{State: domain.SignalOff, DurationMS: units * unitMS})
	}

	words := splitNonEmpty(morse, "/")
	for wi, word := range words {
		// Keep only tokens that carry signal; garbage must not add gaps.
		var letters []string
		for _, tok := range strings.Fields(word) {
			if strings.ContainsAny(tok, ".-") {
				letters = append(letters, tok)
			}
		}
		for li, letter := range letters {
			emitted := false
			for _, tok := range letter {
				switch tok {
				case '.':
					if emitted {
						off(1)
					}
					on(1)
					emitted = true
				case '-':
					if emitted {
						off(1)
					}
					on(3)
					emitted = true
				}
			}
			if li < len(letters)-1 {
				off(3)
			}
		}
		if wi < len(words)-1 {
			off(7)
		}
	}
	return out
}

// splitNonEmpty splits s on sep and keeps only fields with content.
func splitNonEmpty(s, sep string) []string {
	var out []string
	for _, part := range strings.Split(s, sep) {
		if strings.TrimSpace(part) != "" {
			out = append(out, part)
		}
	}
	return out
}
