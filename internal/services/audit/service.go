package audit

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"

	"senscode/internal/domain"
)

// fingerprintLen is the number of digest bytes kept (20 hex chars), short
// enough to hand-copy onto a card.
const fingerprintLen = 10

// Service computes audit fingerprints of encoded artifacts.
type Service struct{}

// New returns an audit service.
func New() *Service { return &Service{} }

// Fingerprint returns a short hex fingerprint of an encoded artifact.
//
// It hashes with BLAKE2b-256 and truncates to 10 bytes.
func (s *Service) Fingerprint(artifact string) domain.Fingerprint {
	sum := blake2b.Sum256([]byte(artifact))
	return domain.Fingerprint(hex.EncodeToString(sum[:fingerprintLen]))
}

// Compile-time assertion that Service implements domain.Fingerprinter.
var _ domain.Fingerprinter = (*Service)(nil)
