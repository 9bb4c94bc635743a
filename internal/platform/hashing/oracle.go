package hashing

import (
	"bytes"
	"encoding/hex"
	"hash"
	"strings"

	"owaspkit/internal/platform/errors"
)

// ErrInvalidDigest is returned when a target is not a hex string.
var ErrInvalidDigest = errors.Wrap(errors.ErrInvalidInput, "target digest must be a hex string")

// Oracle computes H(salt ++ candidate) for one algorithm. Algorithm and salt
// are fixed at construction; an Oracle is safe for concurrent use.
type Oracle struct {
	alg  Algorithm
	salt string
}

// New builds an Oracle for alg. Unknown algorithms fail here, before any
// candidate is evaluated.
func New(alg Algorithm, salt string) (*Oracle, error) {
	if !alg.Valid() {
		return nil, errors.Wrapf(ErrUnsupportedAlgorithm, "%q", string(alg))
	}
	return &Oracle{alg: alg, salt: salt}, nil
}

// NewByName parses name and builds the Oracle.
func NewByName(name, salt string) (*Oracle, error) {
	alg, err := ParseAlgorithm(name)
	if err != nil {
		return nil, err
	}
	return New(alg, salt)
}

func (o *Oracle) Algorithm() Algorithm { return o.alg }
func (o *Oracle) Salt() string         { return o.salt }

// Digest returns the lowercase hex digest of salt ++ candidate.
func (o *Oracle) Digest(candidate string) string {
	h, _ := o.alg.New()
	h.Write([]byte(o.salt))
	h.Write([]byte(candidate))
	return hex.EncodeToString(h.Sum(nil))
}

// Matches reports whether candidate hashes to target, ignoring letter case.
func (o *Oracle) Matches(candidate, target string) bool {
	return strings.EqualFold(o.Digest(candidate), strings.TrimSpace(target))
}

// Matcher binds target once and reuses one hash state and buffer per
// candidate. It is not safe for concurrent use; give each worker its own.
type Matcher struct {
	h      hash.Hash
	target []byte
	buf    []byte
	sum    []byte
	salt   int
}

// Matcher returns a Matcher for target. The target must be hex of the
// algorithm's digest length.
func (o *Oracle) Matcher(target string) (*Matcher, error) {
	raw, err := DecodeDigest(target)
	if err != nil {
		return nil, err
	}
	if len(raw) != o.alg.Size() {
		return nil, errors.Wrapf(ErrInvalidDigest, "%s digests have %d hex chars, got %d",
			o.alg, o.alg.HexLen(), len(strings.TrimSpace(target)))
	}

	h, err := o.alg.New()
	if err != nil {
		return nil, err
	}

	buf := make([]byte, len(o.salt), len(o.salt)+32)
	copy(buf, o.salt)

	return &Matcher{
		h:      h,
		target: raw,
		buf:    buf,
		sum:    make([]byte, 0, h.Size()),
		salt:   len(o.salt),
	}, nil
}

// Match hashes salt ++ candidate and compares it with the bound target.
func (m *Matcher) Match(candidate string) bool {
	m.buf = append(m.buf[:m.salt], candidate...)
	m.h.Reset()
	m.h.Write(m.buf)
	m.sum = m.h.Sum(m.sum[:0])
	return bytes.Equal(m.sum, m.target)
}

// DecodeDigest parses a hex digest in either case.
func DecodeDigest(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.Wrap(ErrInvalidDigest, "empty digest")
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidDigest, "%q", s)
	}
	return raw, nil
}
