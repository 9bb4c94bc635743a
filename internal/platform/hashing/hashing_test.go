package hashing

import (
	"strings"
	"testing"

	"owaspkit/internal/platform/errors"
	"owaspkit/internal/testutil"
)

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		input string
		want  Algorithm
	}{
		{"sha1", SHA1},
		{"SHA1", SHA1},
		{" md5 ", MD5},
		{"SHA-256", SHA256},
		{"sha3-256", SHA3_256},
		{"sha3_512", SHA3_512},
		{"sha512-224", SHA512_224},
		{"blake2b", BLAKE2b512},
		{"blake2s", BLAKE2s256},
		{"ripemd160", RIPEMD160},
		{"md4", MD4},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAlgorithm(tt.input)
			testutil.RequireNoError(t, err, "ParseAlgorithm")
			testutil.AssertEqual(t, got, tt.want, "algorithm")
		})
	}
}

func TestParseAlgorithm_Unsupported(t *testing.T) {
	for _, name := range []string{"", "crc32", "sha", "bcrypt", "getattr"} {
		t.Run(name, func(t *testing.T) {
			_, err := ParseAlgorithm(name)
			testutil.AssertTrue(t, errors.Is(err, ErrUnsupportedAlgorithm), "should be ErrUnsupportedAlgorithm")
			testutil.AssertEqual(t, errors.Kind(err), errors.KindConfiguration, "kind")
		})
	}
}

func TestKnownVectors(t *testing.T) {
	// Digests of "abc".
	tests := []struct {
		alg  Algorithm
		want string
	}{
		{MD4, "a448017aaf21d8525fc10ae87aa6729d"},
		{MD5, "900150983cd24fb0d6963f7d28e17f72"},
		{SHA1, testutil.SHA1Abc},
		{SHA224, "23097d223405d8228642a477bda255b32aadbce4bda0b3f7e36c9da7"},
		{SHA256, testutil.SHA256Abc},
		{SHA3_256, "3a985da74fe225b2045c172d6bd390bd855f086e3e9d525b46bfe24511431532"},
		{RIPEMD160, "8eb208f7e05d987a9b044a8e98c6b087f15a0bfc"},
		{BLAKE2s256, "508c5e8c327c14e2e1a72ba34eeb452f37458b209ed63a294d999b4c86675982"},
	}

	for _, tt := range tests {
		t.Run(tt.alg.String(), func(t *testing.T) {
			o, err := New(tt.alg, "")
			testutil.RequireNoError(t, err, "New")
			testutil.AssertEqual(t, o.Digest("abc"), tt.want, "digest")
			testutil.AssertEqual(t, len(tt.want), tt.alg.HexLen(), "hex length")
		})
	}
}

func TestEveryAlgorithmHasConsistentSize(t *testing.T) {
	for _, alg := range Supported() {
		h, err := alg.New()
		testutil.RequireNoError(t, err, alg.String())
		testutil.AssertEqual(t, h.Size(), alg.Size(), alg.String()+" size")
	}
}

func TestOracle_SaltIsPrefix(t *testing.T) {
	salted, _ := New(SHA1, "ab")
	plain, _ := New(SHA1, "")

	testutil.AssertEqual(t, salted.Digest("c"), plain.Digest("abc"), "salt ++ candidate")
	testutil.AssertEqual(t, salted.Salt(), "ab", "salt")
}

func TestOracle_MatchesIgnoresCase(t *testing.T) {
	o, _ := New(SHA1, "")

	testutil.AssertTrue(t, o.Matches("abc", strings.ToUpper(testutil.SHA1Abc)), "uppercase target")
	testutil.AssertTrue(t, o.Matches("abc", testutil.SHA1Abc), "lowercase target")
	testutil.AssertFalse(t, o.Matches("abd", testutil.SHA1Abc), "different candidate")
}

func TestOracle_DigestIsLowercase(t *testing.T) {
	o, _ := New(SHA512, "pepper")
	d := o.Digest("candidate")
	testutil.AssertEqual(t, d, strings.ToLower(d), "digest should be lowercase")
}

func TestMatcher(t *testing.T) {
	o, _ := New(MD5, "")
	m, err := o.Matcher(strings.ToUpper(testutil.MD5Password))
	testutil.RequireNoError(t, err, "Matcher")

	testutil.AssertFalse(t, m.Match("passwor"), "prefix")
	testutil.AssertTrue(t, m.Match("password"), "exact")
	testutil.AssertFalse(t, m.Match("password1"), "buffer reuse must not leak previous candidate")
	testutil.AssertTrue(t, m.Match("password"), "repeatable")
}

func TestMatcher_Salted(t *testing.T) {
	o, _ := New(SHA256, "s4lt")
	m, err := o.Matcher(o.Digest("abc"))
	testutil.RequireNoError(t, err, "Matcher")
	testutil.AssertTrue(t, m.Match("abc"), "salted match")
	testutil.AssertFalse(t, m.Match("s4ltabc"), "salt must not be applied twice")
}

func TestMatcher_InvalidTarget(t *testing.T) {
	o, _ := New(SHA1, "")

	for _, target := range []string{"", "xyz", testutil.MD5Password} {
		_, err := o.Matcher(target)
		testutil.AssertTrue(t, errors.Is(err, ErrInvalidDigest), "target "+target)
	}
}

func TestNew_UnknownAlgorithm(t *testing.T) {
	_, err := New(Algorithm("whirlpool"), "")
	testutil.AssertTrue(t, errors.Is(err, ErrUnsupportedAlgorithm), "unknown algorithm")

	_, err = NewByName("whirlpool", "")
	testutil.AssertTrue(t, errors.Is(err, ErrUnsupportedAlgorithm), "unknown name")
}
