package morse_test

import (
	"strings"
	"testing"

	"senscode/internal/codec/morse"
	"senscode/internal/domain"
)

func TestEncodeStandard(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"SOS", "... --- ..."},
		{"sos", "... --- ..."},
		{"HELLO WORLD", ".... . .-.. .-.. --- / .-- --- .-. .-.. -.."},
		{"A1", ".- .----"},
		{"", ""},
		{"   ", ""},
	}
	for _, c := range cases {
		if got := morse.Encode(c.in, domain.MorseStandard); got != c.want {
			t.Fatalf("Encode(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestEncodeDropsUnsupportedRunes(t *testing.T) {
	// '#' and 'ü' are outside the alphabet and must vanish without trace.
	got := morse.Encode("S#OüS", domain.MorseStandard)
	if got != "... --- ..." {
		t.Fatalf("Encode with unsupported runes = %q, want %q", got, "... --- ...")
	}
}

func TestEncodeVisual(t *testing.T) {
	got := morse.Encode("AN", domain.MorseVisual)
	want := "▄█ █▄"
	if got != want {
		t.Fatalf("Encode visual = %q, want %q", got, want)
	}
}

func TestEncodeBinary(t *testing.T) {
	got := morse.Encode("AN B", domain.MorseBinary)
	want := "10 01 / 0111"
	if got != want {
		t.Fatalf("Encode binary = %q, want %q", got, want)
	}
}

func TestDecode(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"... --- ...", "SOS"},
		{".... . .-.. .-.. --- / .-- --- .-. .-.. -..", "HELLO WORLD"},
		// Double-space word gap convention.
		{"....  ---", "H O"},
		{"", ""},
	}
	for _, c := range cases {
		if got := morse.Decode(c.in); got != c.want {
			t.Fatalf("Decode(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestDecodeDropsUnknownTokens(t *testing.T) {
	// "......." is not a valid letter; it must be skipped, not fail.
	if got := morse.Decode("... ....... ---"); got != "SO" {
		t.Fatalf("Decode with junk token = %q, want %q", got, "SO")
	}
}

func TestRoundTripAlphabet(t *testing.T) {
	const chars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789.,?'!/()&:;=+-_\"$@"
	for _, r := range chars {
		enc := morse.Encode(string(r), domain.MorseStandard)
		if enc == "" {
			t.Fatalf("Encode(%q) produced empty output", r)
		}
		if got := morse.Decode(enc); got != string(r) {
			t.Fatalf("round trip %q: got %q via %q", r, got, enc)
		}
	}
}

func TestRoundTripSentence(t *testing.T) {
	in := "the quick brown fox 123"
	enc := morse.Encode(in, domain.MorseStandard)
	if got, want := morse.Decode(enc), strings.ToUpper(in); got != want {
		t.Fatalf("round trip = %q, want %q", got, want)
	}
}

func TestToTimingSingleSymbols(t *testing.T) {
	dot := morse.ToTiming(".", 100)
	if len(dot) != 1 || dot[0] != (domain.TimingEntry{State: domain.SignalOn, DurationMS: 100}) {
		t.Fatalf("timing of dot = %v", dot)
	}
	dash := morse.ToTiming("-", 100)
	if len(dash) != 1 || dash[0] != (domain.TimingEntry{State: domain.SignalOn, DurationMS: 300}) {
		t.Fatalf("timing of dash = %v", dash)
	}
}

func TestToTimingDotDash(t *testing.T) {
	got := morse.ToTiming(".-", 100)
	want := []domain.TimingEntry{
		{State: domain.SignalOn, DurationMS: 100},
		{State: domain.SignalOff, DurationMS: 100},
		{State: domain.SignalOn, DurationMS: 300},
	}
	if len(got) != len(want) {
		t.Fatalf("timing = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("timing[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestToTimingGaps(t *testing.T) {
	// "E E / E" exercises inter-letter (3u) and inter-word (7u) gaps.
	got := morse.ToTiming(". . / .", 10)
	want := []domain.TimingEntry{
		{State: domain.SignalOn, DurationMS: 10},
		{State: domain.SignalOff, DurationMS: 30},
		{State: domain.SignalOn, DurationMS: 10},
		{State: domain.SignalOff, DurationMS: 70},
		{State: domain.SignalOn, DurationMS: 10},
	}
	if len(got) != len(want) {
		t.Fatalf("timing = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("timing[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestToTimingNoTrailingGap(t *testing.T) {
	got := morse.ToTiming(morse.Encode("SOS", domain.MorseStandard), 100)
	if len(got) == 0 {
		t.Fatal("empty timing for SOS")
	}
	if got[len(got)-1].State != domain.SignalOn {
		t.Fatalf("schedule ends with %v, want trailing on entry", got[len(got)-1])
	}
}

func TestToTimingDefaultsUnit(t *testing.T) {
	got := morse.ToTiming(".", 0)
	if len(got) != 1 || got[0].DurationMS != morse.DefaultUnitMS {
		t.Fatalf("timing with zero unit = %v", got)
	}
}

func TestToTimingEmpty(t *testing.T) {
	if got := morse.ToTiming("", 100); len(got) != 0 {
		t.Fatalf("timing of empty string = %v, want empty", got)
	}
}
