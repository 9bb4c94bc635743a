// internal/testutil/fixtures.go
package testutil

// Fixture data para tests (valores primitivos solamente, sin dependencias de domain)

// Known digests, lowercase hex.
const (
	MD5Password    = "5f4dcc3b5aa765d61d8327deb882cf99" // md5("password")
	MD5Abc123      = "e99a18c428cb38d5f260853678922e03" // md5("abc123")
	SHA1Abc        = "a9993e364706816aba3e25717850c26c9cd0d89d"
	SHA256Abc      = "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"
	SHA1EmptyInput = "da39a3ee5e6b4b0d3255bfef95601890afd80709"
)

// FixtureTableLines is a plaintext:hash table with uppercase digests and a
// malformed line in the middle.
var FixtureTableLines = []string{
	"pass1:5F4DCC3B5AA765D61D8327DEB882CF99",
	"this line has no separator",
	"pass2:E99A18C428CB38D5F260853678922E03",
}

// FixtureWordlist mixes comments and blank lines with real candidates.
var FixtureWordlist = []string{
	"# top passwords",
	"",
	"foo",
	"  // legacy entries",
	"bar",
	"   ",
	"baz",
}

// FixtureWords is FixtureWordlist after filtering.
var FixtureWords = []string{"foo", "bar", "baz"}
