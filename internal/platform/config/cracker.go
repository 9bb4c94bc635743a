// internal/platform/config/cracker.go
package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"owaspkit/internal/core/domain"
	"owaspkit/internal/platform/errors"
	"owaspkit/internal/platform/validator"
)

// CrackerConfig es la configuración de cmd/cracker.
type CrackerConfig struct {
	Core   CrackerCore  `yaml:"core"`
	Hash   HashConfig   `yaml:"hash"`
	Source SourceConfig `yaml:"source"`
	Output OutputConfig `yaml:"output"`

	ConfigFile     string `yaml:"-"`
	PrintVersion   bool   `yaml:"-"`
	ListAlgorithms bool   `yaml:"-"`
}

type CrackerCore struct {
	Mode     string `yaml:"mode"`
	Workers  int    `yaml:"workers"`
	TimeoutS int    `yaml:"timeout"` // segundos (0 = sin timeout)
}

type HashConfig struct {
	Target    string `yaml:"target"`
	Algorithm string `yaml:"algorithm"`
	Salt      string `yaml:"salt"`
}

type SourceConfig struct {
	Table           string `yaml:"table"`
	Wordlist        string `yaml:"wordlist"`
	ArchivePassword string `yaml:"archive_password"`
	Charset         string `yaml:"charset"`
	MaxLen          int    `yaml:"max_len"`
}

type OutputConfig struct {
	File    string `yaml:"file"` // resultado JSON, vacío = no se escribe
	Quiet   bool   `yaml:"quiet"`
	Verbose bool   `yaml:"verbose"`
}

// DefaultCrackerConfig retorna la configuración por defecto.
func DefaultCrackerConfig() CrackerConfig {
	return CrackerConfig{
		Core: CrackerCore{
			Mode:     string(domain.ModeBruteForce),
			Workers:  4,
			TimeoutS: 0,
		},
		Hash: HashConfig{
			Algorithm: "sha1",
		},
		Source: SourceConfig{
			Table:    "rainbow_table.txt",
			Wordlist: "rockyou.txt",
			Charset:  "abcdefghijklmnopqrstuvwxyz0123456789",
			MaxLen:   5,
		},
	}
}

// LoadCracker lee la configuración de os.Args con pflag.CommandLine.
// Precedencia: flags > ENV > archivo > defaults.
func LoadCracker() (CrackerConfig, error) {
	return loadCracker(pflag.CommandLine, os.Args[1:])
}

func loadCracker(fs *pflag.FlagSet, args []string) (CrackerConfig, error) {
	cfg := DefaultCrackerConfig()

	if path := configPath(args); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return cfg, err
		}
		cfg.ConfigFile = path
	}

	if err := loadCrackerEnv(&cfg); err != nil {
		return cfg, err
	}

	bindCrackerFlags(fs, &cfg)
	fs.Usage = func() { PrintCrackerHelp(os.Stderr) }
	if err := parseFlags(fs, args); err != nil {
		return cfg, err
	}

	normalizeCracker(&cfg)
	return cfg, nil
}

// loadCrackerEnv carga configuración desde variables de entorno. Los
// valores numéricos mal formados son error, no el default.
func loadCrackerEnv(cfg *CrackerConfig) error {
	if v := getenv(EnvPrefix+"HASH", ""); v != "" {
		cfg.Hash.Target = v
	}
	if v := getenv(EnvPrefix+"ALGORITHM", ""); v != "" {
		cfg.Hash.Algorithm = v
	}
	if v := getenv(EnvPrefix+"SALT", ""); v != "" {
		cfg.Hash.Salt = v
	}
	if v := getenv(EnvPrefix+"MODE", ""); v != "" {
		cfg.Core.Mode = v
	}

	// Source
	if v := getenv(EnvPrefix+"TABLE", ""); v != "" {
		cfg.Source.Table = v
	}
	if v := getenv(EnvPrefix+"WORDLIST", ""); v != "" {
		cfg.Source.Wordlist = v
	}
	if v := getenv(EnvPrefix+"ARCHIVE_PASSWORD", ""); v != "" {
		cfg.Source.ArchivePassword = v
	}
	if v := getenv(EnvPrefix+"CHARSET", ""); v != "" {
		cfg.Source.Charset = v
	}

	// Output
	if v := getenv(EnvPrefix+"OUTPUT_FILE", ""); v != "" {
		cfg.Output.File = v
	}
	if v := getenv(EnvPrefix+"QUIET", ""); v != "" {
		cfg.Output.Quiet = parseBool(v)
	}
	if v := getenv(EnvPrefix+"VERBOSE", ""); v != "" {
		cfg.Output.Verbose = parseBool(v)
	}

	return errors.Join(
		envInt(EnvPrefix+"WORKERS", &cfg.Core.Workers),
		envInt(EnvPrefix+"TIMEOUT", &cfg.Core.TimeoutS),
		envInt(EnvPrefix+"MAX_LEN", &cfg.Source.MaxLen),
	)
}

func bindCrackerFlags(fs *pflag.FlagSet, cfg *CrackerConfig) {
	fs.StringVarP(&cfg.Hash.Target, "hash", "H", cfg.Hash.Target, "Hash objetivo en hex")
	fs.StringVarP(&cfg.Hash.Algorithm, "algorithm", "a", cfg.Hash.Algorithm, "Algoritmo de hash")
	fs.StringVarP(&cfg.Hash.Salt, "salt", "s", cfg.Hash.Salt, "Salt concatenado al candidato")
	fs.StringVarP(&cfg.Core.Mode, "mode", "m", cfg.Core.Mode, "Modo: table, dictionary o bruteforce")
	fs.IntVarP(&cfg.Core.Workers, "workers", "j", cfg.Core.Workers, "Número de workers")
	fs.IntVarP(&cfg.Core.TimeoutS, "timeout", "T", cfg.Core.TimeoutS, "Timeout global en segundos (0 = sin timeout)")

	fs.StringVar(&cfg.Source.Table, "table", cfg.Source.Table, "Tabla plaintext:hash (.txt, .zip o SQLite)")
	fs.StringVarP(&cfg.Source.Wordlist, "wordlist", "w", cfg.Source.Wordlist, "Wordlist (.txt o .zip)")
	fs.StringVar(&cfg.Source.ArchivePassword, "archive-password", cfg.Source.ArchivePassword, "Password del .zip cifrado")
	fs.StringVarP(&cfg.Source.Charset, "charset", "c", cfg.Source.Charset, "Charset literal o preset (@lower, @digits, ...)")
	fs.IntVarP(&cfg.Source.MaxLen, "max-len", "l", cfg.Source.MaxLen, "Longitud máxima en bruteforce")

	fs.StringVarP(&cfg.Output.File, "out", "o", cfg.Output.File, "Archivo JSON con el resultado")
	fs.BoolVarP(&cfg.Output.Quiet, "quiet", "q", cfg.Output.Quiet, "Solo imprimir el resultado")
	fs.BoolVarP(&cfg.Output.Verbose, "verbose", "v", cfg.Output.Verbose, "Logs en nivel debug")

	fs.StringVar(&cfg.ConfigFile, "config", cfg.ConfigFile, "Archivo de configuración YAML")
	fs.BoolVar(&cfg.ListAlgorithms, "list-algorithms", false, "Listar algoritmos soportados y salir")
	fs.BoolVar(&cfg.PrintVersion, "version", false, "Imprimir versión y salir")
}

func normalizeCracker(c *CrackerConfig) {
	c.Hash.Target = validator.NormalizeHash(c.Hash.Target)
	c.Hash.Algorithm = strings.ToLower(strings.TrimSpace(c.Hash.Algorithm))
	c.Core.Mode = strings.ToLower(strings.TrimSpace(c.Core.Mode))
	c.Source.Table = strings.TrimSpace(c.Source.Table)
	c.Source.Wordlist = strings.TrimSpace(c.Source.Wordlist)
	if c.Core.TimeoutS < 0 {
		c.Core.TimeoutS = 0
	}
	if c.Output.Quiet {
		c.Output.Verbose = false
	}
}

// Validate verifica la configuración construyendo el Job.
func (c CrackerConfig) Validate() error {
	_, err := c.Job()
	return err
}

// Job construye el domain.Job que describe la ejecución.
func (c CrackerConfig) Job() (*domain.Job, error) {
	if c.Hash.Target == "" {
		return nil, errors.Wrap(domain.ErrInvalidConfig, "hash is required (--hash)")
	}
	if !validator.IsHexDigest(c.Hash.Target) {
		return nil, errors.Wrapf(domain.ErrInvalidDigest, "%q is not hex", c.Hash.Target)
	}

	mode, err := domain.ParseMode(c.Core.Mode)
	if err != nil {
		return nil, err
	}

	src := domain.SourceParams{ArchivePassword: c.Source.ArchivePassword}
	switch mode {
	case domain.ModeTable:
		src.Path = c.Source.Table
	case domain.ModeDictionary:
		src.Path = c.Source.Wordlist
	case domain.ModeBruteForce:
		src.Charset = c.Source.Charset
		src.MaxLen = c.Source.MaxLen
	}

	return domain.NewJob(c.Hash.Target, c.Hash.Algorithm, c.Hash.Salt, string(mode), src, c.Core.Workers)
}

// Timeout devuelve el timeout global como time.Duration (0 = sin timeout).
func (c CrackerConfig) Timeout() time.Duration {
	return secondsToDuration(c.Core.TimeoutS)
}
