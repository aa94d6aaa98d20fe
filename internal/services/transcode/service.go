package transcode

import (
	"fmt"

	"senscode/internal/codec/braille"
	"senscode/internal/codec/morse"
	"senscode/internal/domain"
)

// Service composes the Morse and Braille codecs through the text pivot.
type Service struct{}

// New returns a transcoder over the built-in codecs.
func New() *Service { return &Service{} }

// Transcode decodes input from one format and encodes it to another.
//
// Source formats are text, morse and braille; targets additionally include
// morse_visual and punchcard (rendered with the default block size).
// Unknown format names are rejected with domain.ErrUnknownFormat.
func (s *Service) Transcode(input string, from, to domain.Format) (string, error) {
	text, err := toText(input, from)
	if err != nil {
		return "", err
	}
	return fromText(text, to)
}

// toText decodes input into the plain-text pivot.
func toText(input string, from domain.Format) (string, error) {
	switch from {
	case domain.FormatText:
		return input, nil
	case domain.FormatMorse:
		return morse.Decode(input), nil
	case domain.FormatBraille:
		return braille.Decode(input), nil
	}
	return "", fmt.Errorf("%w: source %q", domain.ErrUnknownFormat, from)
}

// fromText encodes the pivot text into the target format.
func fromText(text string, to domain.Format) (string, error) {
	switch to {
	case domain.FormatText:
		return text, nil
	case domain.FormatMorse:
		return morse.Encode(text, domain.MorseStandard), nil
	case domain.FormatMorseVisual:
		return morse.Encode(text, domain.MorseVisual), nil
	case domain.FormatBraille:
		return braille.Encode(text), nil
	case domain.FormatPunchcard:
		return braille.Punchcard(text, braille.DefaultCellWidth, braille.DefaultCellHeight)
	}
	return "", fmt.Errorf("%w: target %q", domain.ErrUnknownFormat, to)
}

// Compile-time assertion that Service implements domain.Transcoder.
var _ domain.Transcoder = (*Service)(nil)
