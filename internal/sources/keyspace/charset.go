package keyspace

import "strings"

// Presets de charset, seleccionables con "@nombre".
const (
	Digits  = "0123456789"
	Lower   = "abcdefghijklmnopqrstuvwxyz"
	Upper   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Special = "!@#$%^&*()-_=+,.?/"
	All     = Digits + Lower + Upper + Special
)

var presets = map[string]string{
	"digits":  Digits,
	"lower":   Lower,
	"upper":   Upper,
	"alpha":   Lower + Upper,
	"alnum":   Lower + Upper + Digits,
	"special": Special,
	"all":     All,
}

// ResolveCharset expande un preset ("@lower") o retorna s tal cual. Los
// nombres desconocidos se tratan como charset literal.
func ResolveCharset(s string) string {
	if name, ok := strings.CutPrefix(s, "@"); ok {
		if set, found := presets[strings.ToLower(name)]; found {
			return set
		}
	}
	return s
}

// PresetNames lists the preset names accepted by ResolveCharset.
func PresetNames() []string {
	return []string{"@digits", "@lower", "@upper", "@alpha", "@alnum", "@special", "@all"}
}
