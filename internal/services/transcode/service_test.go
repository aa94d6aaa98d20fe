package transcode_test

import (
	"errors"
	"strings"
	"testing"

	"senscode/internal/domain"
	"senscode/internal/services/transcode"
)

func TestTextToMorseAndBack(t *testing.T) {
	svc := transcode.New()

	enc, err := svc.Transcode("hello world", domain.FormatText, domain.FormatMorse)
	if err != nil {
		t.Fatalf("Transcode to morse: %v", err)
	}
	dec, err := svc.Transcode(enc, domain.FormatMorse, domain.FormatText)
	if err != nil {
		t.Fatalf("Transcode to text: %v", err)
	}
	if dec != "HELLO WORLD" {
		t.Fatalf("round trip = %q, want %q", dec, "HELLO WORLD")
	}
}

func TestMorseToBraille(t *testing.T) {
	svc := transcode.New()

	got, err := svc.Transcode("... --- ...", domain.FormatMorse, domain.FormatBraille)
	if err != nil {
		t.Fatalf("Transcode: %v", err)
	}
	if got != "⠎⠕⠎" {
		t.Fatalf("morse to braille = %q, want %q", got, "⠎⠕⠎")
	}
}

func TestBrailleToMorseVisual(t *testing.T) {
	svc := transcode.New()

	got, err := svc.Transcode("⠁", domain.FormatBraille, domain.FormatMorseVisual)
	if err != nil {
		t.Fatalf("Transcode: %v", err)
	}
	if got != "▄█" {
		t.Fatalf("braille A as visual morse = %q, want %q", got, "▄█")
	}
}

func TestTextToPunchcard(t *testing.T) {
	svc := transcode.New()

	got, err := svc.Transcode("AB", domain.FormatText, domain.FormatPunchcard)
	if err != nil {
		t.Fatalf("Transcode: %v", err)
	}
	lines := strings.Split(got, "\n")
	if len(lines) != 6 {
		t.Fatalf("punchcard has %d lines, want 6 (default cell height)", len(lines))
	}
}

func TestTextPassThrough(t *testing.T) {
	svc := transcode.New()

	// Text to text is the identity, including characters no codec accepts.
	got, err := svc.Transcode("mixed Case #42", domain.FormatText, domain.FormatText)
	if err != nil {
		t.Fatalf("Transcode: %v", err)
	}
	if got != "mixed Case #42" {
		t.Fatalf("text pass-through = %q", got)
	}
}

func TestUnknownFormats(t *testing.T) {
	svc := transcode.New()

	if _, err := svc.Transcode("x", domain.Format("smoke"), domain.FormatText); !errors.Is(err, domain.ErrUnknownFormat) {
		t.Fatalf("unknown source: err = %v, want ErrUnknownFormat", err)
	}
	if _, err := svc.Transcode("x", domain.FormatText, domain.Format("pigeon")); !errors.Is(err, domain.ErrUnknownFormat) {
		t.Fatalf("unknown target: err = %v, want ErrUnknownFormat", err)
	}
	// Punchcard is a target-only rendering, not a decodable source.
	if _, err := svc.Transcode("x", domain.FormatPunchcard, domain.FormatText); !errors.Is(err, domain.ErrUnknownFormat) {
		t.Fatalf("punchcard source: err = %v, want ErrUnknownFormat", err)
	}
}
