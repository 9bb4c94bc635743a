// internal/core/domain/enums.go
package domain

import "strings"

// Mode define la estrategia de búsqueda del preimage.
type Mode string

const (
	// ModeTable busca el hash en una tabla precomputada plaintext:hash
	ModeTable Mode = "table"

	// ModeDictionary prueba cada palabra de un wordlist
	ModeDictionary Mode = "dictionary"

	// ModeBruteForce enumera todo el keyspace charset^1..maxLen
	ModeBruteForce Mode = "bruteforce"
)

// modeAliases keeps the short names used by the original cracking scripts.
var modeAliases = map[string]Mode{
	"rainbow":     ModeTable,
	"lookup":      ModeTable,
	"dict":        ModeDictionary,
	"wordlist":    ModeDictionary,
	"brute":       ModeBruteForce,
	"brute-force": ModeBruteForce,
	"brute_force": ModeBruteForce,
}

// ParseMode resolves a mode name or alias. Unknown names yield ErrUnknownMode.
func ParseMode(s string) (Mode, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	m := Mode(key)
	if m.IsValid() {
		return m, nil
	}
	if alias, ok := modeAliases[key]; ok {
		return alias, nil
	}
	return "", wrapf(ErrUnknownMode, "%q (expected table, dictionary or bruteforce)", s)
}

// IsValid verifica si el modo es válido.
func (m Mode) IsValid() bool {
	switch m {
	case ModeTable, ModeDictionary, ModeBruteForce:
		return true
	default:
		return false
	}
}

// String retorna la representación string del modo.
func (m Mode) String() string {
	return string(m)
}

// Hashes reports whether the mode computes digests of candidates. Table
// lookups only compare stored digests.
func (m Mode) Hashes() bool {
	return m == ModeDictionary || m == ModeBruteForce
}

// Modes lists every mode in display order.
func Modes() []Mode {
	return []Mode{ModeTable, ModeDictionary, ModeBruteForce}
}

// Outcome is the terminal state of a run.
type Outcome string

const (
	OutcomeFound   Outcome = "found"
	OutcomeNoMatch Outcome = "no_match"
)
