// internal/platform/config/config.go
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"owaspkit/internal/platform/errors"
)

// EnvPrefix prefija todas las variables de entorno reconocidas.
const EnvPrefix = "OWASPKIT_"

// EnvConfig apunta a un archivo YAML cuando no se pasa --config.
const EnvConfig = EnvPrefix + "CONFIG"

// configPath busca --config en args antes del parseo completo, para que el
// archivo se aplique por debajo de env y flags.
func configPath(args []string) string {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}
		if v, ok := strings.CutPrefix(arg, "--config="); ok {
			return v
		}
		if arg == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return getenv(EnvConfig, "")
}

// loadFromFile aplica un archivo YAML sobre out. Las claves ausentes
// conservan su valor; las desconocidas son error.
func loadFromFile(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrapf(errors.ErrNotFound, "config file %s", path)
		}
		return errors.Wrapf(err, "read config file %s", path)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && err != io.EOF {
		return fmt.Errorf("%w: parse config file %s: %v", errors.ErrInvalidInput, path, err)
	}
	return nil
}

// parseFlags parsea args y clasifica el error. -h/--help retorna
// pflag.ErrHelp sin envolver.
func parseFlags(fs *pflag.FlagSet, args []string) error {
	err := fs.Parse(args)
	if err == nil || errors.Is(err, pflag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", errors.ErrInvalidInput, err)
}

func invalid(format string, args ...any) error {
	return errors.Wrapf(errors.ErrInvalidInput, format, args...)
}

// Helpers

func getenv(k, def string) string {
	if v, ok := os.LookupEnv(k); ok && v != "" {
		return v
	}
	return def
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "t", "true", "y", "yes", "on":
		return true
	default:
		return false
	}
}

func parseInt(v string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(v))
}

// parseDuration acepta "250ms", "5s" o un número de segundos ("1.5").
func parseDuration(v string) (time.Duration, error) {
	v = strings.TrimSpace(v)
	if d, err := time.ParseDuration(v); err == nil {
		return d, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, err
	}
	return time.Duration(f * float64(time.Second)), nil
}

// envInt copia en dst el entero de la variable key. Si key no está definida
// dst no cambia; un valor que no es entero es error.
func envInt(key string, dst *int) error {
	v := getenv(key, "")
	if v == "" {
		return nil
	}
	i, err := parseInt(v)
	if err != nil {
		return invalid("%s=%q is not an integer", key, v)
	}
	*dst = i
	return nil
}

// envDuration es envInt para duraciones.
func envDuration(key string, dst *time.Duration) error {
	v := getenv(key, "")
	if v == "" {
		return nil
	}
	d, err := parseDuration(v)
	if err != nil {
		return invalid("%s=%q is not a duration", key, v)
	}
	*dst = d
	return nil
}

func splitList(v, sep string) []string {
	var out []string
	for _, part := range strings.Split(v, sep) {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func secondsToDuration(s int) time.Duration {
	if s <= 0 {
		return 0
	}
	return time.Duration(s) * time.Second
}
