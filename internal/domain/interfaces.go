package domain

// Transcoder converts between encodings via plain text as the pivot.
//
// Implementations must decode the input to text first and then encode to
// the target; there is deliberately no direct any-to-any path.
type Transcoder interface {
	Transcode(input string, from, to Format) (string, error)
}

// Fingerprinter produces short audit digests of encoded artifacts.
type Fingerprinter interface {
	Fingerprint(artifact string) Fingerprint
}
