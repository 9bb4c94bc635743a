// internal/platform/config/testserver.go
package config

import (
	"os"
	"strings"

	"github.com/spf13/pflag"
)

// TestServerConfig es la configuración de cmd/testserver.
type TestServerConfig struct {
	Addr       string  `yaml:"addr"`
	Accessible IDRange `yaml:"accessible"`
	Forbidden  IDRange `yaml:"forbidden"`
	FilesDir   string  `yaml:"files_dir"` // vacío = archivos de ejemplo en memoria
	Verbose    bool    `yaml:"verbose"`

	ConfigFile   string `yaml:"-"`
	PrintVersion bool   `yaml:"-"`
}

// IDRange es un rango cerrado [From, To].
type IDRange struct {
	From int `yaml:"from"`
	To   int `yaml:"to"`
}

// Contains reporta si id está en el rango.
func (r IDRange) Contains(id int) bool {
	return id >= r.From && id <= r.To
}

// DefaultTestServerConfig: ids 1..10 accesibles, 11..20 prohibidos.
func DefaultTestServerConfig() TestServerConfig {
	return TestServerConfig{
		Addr:       "127.0.0.1:5000",
		Accessible: IDRange{From: 1, To: 10},
		Forbidden:  IDRange{From: 11, To: 20},
	}
}

// LoadTestServer lee la configuración de os.Args con pflag.CommandLine.
func LoadTestServer() (TestServerConfig, error) {
	return loadTestServer(pflag.CommandLine, os.Args[1:])
}

func loadTestServer(fs *pflag.FlagSet, args []string) (TestServerConfig, error) {
	cfg := DefaultTestServerConfig()

	if path := configPath(args); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return cfg, err
		}
		cfg.ConfigFile = path
	}

	if v := getenv(EnvPrefix+"ADDR", ""); v != "" {
		cfg.Addr = v
	}
	if v := getenv(EnvPrefix+"FILES_DIR", ""); v != "" {
		cfg.FilesDir = v
	}
	if v := getenv(EnvPrefix+"VERBOSE", ""); v != "" {
		cfg.Verbose = parseBool(v)
	}

	fs.StringVarP(&cfg.Addr, "addr", "a", cfg.Addr, "Dirección de escucha")
	fs.IntVar(&cfg.Accessible.From, "accessible-from", cfg.Accessible.From, "Primer id accesible")
	fs.IntVar(&cfg.Accessible.To, "accessible-to", cfg.Accessible.To, "Último id accesible")
	fs.IntVar(&cfg.Forbidden.From, "forbidden-from", cfg.Forbidden.From, "Primer id prohibido")
	fs.IntVar(&cfg.Forbidden.To, "forbidden-to", cfg.Forbidden.To, "Último id prohibido")
	fs.StringVar(&cfg.FilesDir, "files-dir", cfg.FilesDir, "Directorio servido en /files/")
	fs.BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Logs en nivel debug")
	fs.StringVar(&cfg.ConfigFile, "config", cfg.ConfigFile, "Archivo de configuración YAML")
	fs.BoolVar(&cfg.PrintVersion, "version", false, "Imprimir versión y salir")
	fs.Usage = func() { PrintTestServerHelp(os.Stderr) }

	if err := parseFlags(fs, args); err != nil {
		return cfg, err
	}

	cfg.Addr = strings.TrimSpace(cfg.Addr)
	return cfg, nil
}

// Validate verifica la configuración.
func (c TestServerConfig) Validate() error {
	if c.Addr == "" {
		return invalid("addr is required")
	}
	if c.Accessible.From > c.Accessible.To {
		return invalid("accessible range %d..%d is empty", c.Accessible.From, c.Accessible.To)
	}
	if c.Forbidden.From > c.Forbidden.To {
		return invalid("forbidden range %d..%d is empty", c.Forbidden.From, c.Forbidden.To)
	}
	return nil
}
