// Package hashing holds the closed set of digest algorithms the cracker
// supports and the Oracle that evaluates candidates against a target.
package hashing

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"hash"
	"sort"
	"strings"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/md4"
	"golang.org/x/crypto/ripemd160"
	"golang.org/x/crypto/sha3"

	"owaspkit/internal/platform/errors"
)

// ErrUnsupportedAlgorithm is returned for names outside the registry.
var ErrUnsupportedAlgorithm = errors.Wrap(errors.ErrUnsupported, "unsupported hash algorithm")

// Algorithm identifies one digest function of the registry.
type Algorithm string

const (
	MD4        Algorithm = "md4"
	MD5        Algorithm = "md5"
	SHA1       Algorithm = "sha1"
	SHA224     Algorithm = "sha224"
	SHA256     Algorithm = "sha256"
	SHA384     Algorithm = "sha384"
	SHA512     Algorithm = "sha512"
	SHA512_224 Algorithm = "sha512_224"
	SHA512_256 Algorithm = "sha512_256"
	SHA3_224   Algorithm = "sha3_224"
	SHA3_256   Algorithm = "sha3_256"
	SHA3_384   Algorithm = "sha3_384"
	SHA3_512   Algorithm = "sha3_512"
	BLAKE2b256 Algorithm = "blake2b_256"
	BLAKE2b512 Algorithm = "blake2b_512"
	BLAKE2s256 Algorithm = "blake2s_256"
	RIPEMD160  Algorithm = "ripemd160"
)

type spec struct {
	size int
	new  func() hash.Hash
}

// mustKeyless adapts the blake2 constructors, which only fail for oversized keys.
func mustKeyless(fn func([]byte) (hash.Hash, error)) func() hash.Hash {
	return func() hash.Hash {
		h, err := fn(nil)
		if err != nil {
			panic(err)
		}
		return h
	}
}

var registry = map[Algorithm]spec{
	MD4:        {md4.Size, md4.New},
	MD5:        {md5.Size, md5.New},
	SHA1:       {sha1.Size, sha1.New},
	SHA224:     {sha256.Size224, sha256.New224},
	SHA256:     {sha256.Size, sha256.New},
	SHA384:     {sha512.Size384, sha512.New384},
	SHA512:     {sha512.Size, sha512.New},
	SHA512_224: {sha512.Size224, sha512.New512_224},
	SHA512_256: {sha512.Size256, sha512.New512_256},
	SHA3_224:   {28, sha3.New224},
	SHA3_256:   {32, sha3.New256},
	SHA3_384:   {48, sha3.New384},
	SHA3_512:   {64, sha3.New512},
	BLAKE2b256: {blake2b.Size256, mustKeyless(blake2b.New256)},
	BLAKE2b512: {blake2b.Size, mustKeyless(blake2b.New512)},
	BLAKE2s256: {blake2s.Size, mustKeyless(blake2s.New256)},
	RIPEMD160:  {ripemd160.Size, ripemd160.New},
}

// aliases maps spellings commonly found in tooling to registry names.
var aliases = map[string]Algorithm{
	"sha_1":       SHA1,
	"sha_224":     SHA224,
	"sha_256":     SHA256,
	"sha_384":     SHA384,
	"sha_512":     SHA512,
	"sha512224":   SHA512_224,
	"sha512256":   SHA512_256,
	"sha3224":     SHA3_224,
	"sha3256":     SHA3_256,
	"sha3384":     SHA3_384,
	"sha3512":     SHA3_512,
	"blake2b":     BLAKE2b512,
	"blake2s":     BLAKE2s256,
	"blake2b512":  BLAKE2b512,
	"blake2b256":  BLAKE2b256,
	"blake2s256":  BLAKE2s256,
	"ripemd":      RIPEMD160,
	"ripemd_160":  RIPEMD160,
	"rmd160":      RIPEMD160,
}

// ParseAlgorithm resolves a user supplied name. Matching ignores case and
// treats '-' and '_' alike, so "SHA-256", "sha3-256" and "blake2b" all work.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	if _, ok := registry[Algorithm(key)]; ok {
		return Algorithm(key), nil
	}
	if alg, ok := aliases[key]; ok {
		return alg, nil
	}
	return "", errors.Wrapf(ErrUnsupportedAlgorithm, "%q (supported: %s)", name, strings.Join(SupportedNames(), ", "))
}

// Valid reports whether a is part of the registry.
func (a Algorithm) Valid() bool {
	_, ok := registry[a]
	return ok
}

func (a Algorithm) String() string {
	return string(a)
}

// Size returns the digest size in bytes, or 0 for unknown algorithms.
func (a Algorithm) Size() int {
	return registry[a].size
}

// HexLen returns the length of the hex encoded digest.
func (a Algorithm) HexLen() int {
	return a.Size() * 2
}

// New returns a fresh hash.Hash for a.
func (a Algorithm) New() (hash.Hash, error) {
	s, ok := registry[a]
	if !ok {
		return nil, errors.Wrapf(ErrUnsupportedAlgorithm, "%q", string(a))
	}
	return s.new(), nil
}

// Supported lists every registered algorithm in name order.
func Supported() []Algorithm {
	out := make([]Algorithm, 0, len(registry))
	for a := range registry {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// SupportedNames is Supported as strings.
func SupportedNames() []string {
	algs := Supported()
	out := make([]string, len(algs))
	for i, a := range algs {
		out[i] = a.String()
	}
	return out
}
