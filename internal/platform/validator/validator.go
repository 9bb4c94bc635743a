// internal/platform/validator/validator.go
package validator

import (
	"net/http"
	"net/url"
	"regexp"
	"strings"
)

// Placeholder es el marcador que se reemplaza por cada payload.
const Placeholder = "{}"

var (
	hexRegex   = regexp.MustCompile(`^[0-9a-fA-F]+$`)
	tokenRegex = regexp.MustCompile("^[!#$%&'*+\\-.^_`|~0-9A-Za-z]+$")
)

// Hash validators

// IsHexDigest verifica que s sea un digest hexadecimal: no vacío, longitud
// par y solo dígitos hex. No valida la longitud contra un algoritmo.
func IsHexDigest(s string) bool {
	s = strings.TrimSpace(s)
	return len(s) > 0 && len(s)%2 == 0 && hexRegex.MatchString(s)
}

// NormalizeHash normaliza un hash a su forma canónica.
func NormalizeHash(hash string) string {
	return strings.ToLower(strings.TrimSpace(hash))
}

// URL validators

// IsURL verifica si un string es una URL http(s) con host.
func IsURL(urlStr string) bool {
	if len(urlStr) == 0 {
		return false
	}

	parsed, err := url.Parse(urlStr)
	if err != nil {
		return false
	}

	scheme := strings.ToLower(parsed.Scheme)
	return (scheme == "http" || scheme == "https") && parsed.Host != ""
}

// HasPlaceholder reporta si s contiene el marcador de payload.
func HasPlaceholder(s string) bool {
	return strings.Contains(s, Placeholder)
}

// ExpandPlaceholder reemplaza todas las apariciones del marcador.
func ExpandPlaceholder(template, payload string) string {
	return strings.ReplaceAll(template, Placeholder, payload)
}

// IsTemplateURL verifica que la URL sea válida una vez expandido el marcador.
func IsTemplateURL(template string) bool {
	return IsURL(ExpandPlaceholder(template, "1"))
}

// HTTP validators

// IsHTTPMethod verifica que method sea un token HTTP válido (RFC 9110).
// Los métodos no estándar se aceptan.
func IsHTTPMethod(method string) bool {
	return tokenRegex.MatchString(method)
}

// NormalizeMethod pasa el método a mayúsculas; vacío equivale a GET.
func NormalizeMethod(method string) string {
	method = strings.ToUpper(strings.TrimSpace(method))
	if method == "" {
		return http.MethodGet
	}
	return method
}

// ParseHeader separa "Key: value". El nombre debe ser un token válido.
func ParseHeader(raw string) (key, value string, ok bool) {
	key, value, found := strings.Cut(raw, ":")
	if !found {
		return "", "", false
	}

	key = strings.TrimSpace(key)
	if !tokenRegex.MatchString(key) {
		return "", "", false
	}
	return key, strings.TrimSpace(value), true
}
