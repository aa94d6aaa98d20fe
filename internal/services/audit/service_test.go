package audit_test

import (
	"testing"

	"senscode/internal/services/audit"
)

func TestFingerprintIsStable(t *testing.T) {
	svc := audit.New()

	a := svc.Fingerprint("... --- ...")
	b := svc.Fingerprint("... --- ...")
	if a != b {
		t.Fatalf("fingerprint not deterministic: %q vs %q", a, b)
	}
	if len(a) != 20 {
		t.Fatalf("fingerprint length = %d, want 20 hex chars", len(a))
	}
}

func TestFingerprintDistinguishesArtifacts(t *testing.T) {
	svc := audit.New()

	if svc.Fingerprint("... --- ...") == svc.Fingerprint("...---...") {
		t.Fatal("distinct artifacts share a fingerprint")
	}
}
