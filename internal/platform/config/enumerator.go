// internal/platform/config/enumerator.go
package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"owaspkit/internal/platform/errors"
	"owaspkit/internal/platform/validator"
)

// EnumeratorConfig es la configuración de cmd/enumerator.
type EnumeratorConfig struct {
	Core    EnumeratorCore `yaml:"core"`
	Request RequestConfig  `yaml:"request"`
	Payload PayloadConfig  `yaml:"payload"`
	Output  ReportConfig   `yaml:"output"`

	ConfigFile   string `yaml:"-"`
	PrintVersion bool   `yaml:"-"`
}

type EnumeratorCore struct {
	Workers  int `yaml:"workers"`
	TimeoutS int `yaml:"timeout"` // segundos (0 = sin timeout)
}

type RequestConfig struct {
	URL     string        `yaml:"url"` // con marcador {}
	Method  string        `yaml:"method"`
	Body    string        `yaml:"body"` // plantilla, puede contener {}
	Headers []string      `yaml:"headers"`
	Timeout time.Duration `yaml:"timeout"`

	// Interval es la separación mínima entre peticiones
	Interval        time.Duration `yaml:"interval"`
	Retries         int           `yaml:"retries"`
	FollowRedirects bool          `yaml:"follow_redirects"`

	// BreakerThreshold fallos de transporte consecutivos que abortan el resto
	BreakerThreshold int `yaml:"breaker_threshold"`
}

type PayloadConfig struct {
	Start    int      `yaml:"start"`
	End      int      `yaml:"end"`
	File     string   `yaml:"file"`
	Password string   `yaml:"password"` // .zip cifrado
	Names    []string `yaml:"names"`
}

type ReportConfig struct {
	CSV      string `yaml:"csv"` // vacío = no se escribe
	SaveBody bool   `yaml:"save_body"`
	Quiet    bool   `yaml:"quiet"`
	Verbose  bool   `yaml:"verbose"`
}

// PayloadKind identifica de dónde salen los payloads.
type PayloadKind string

const (
	PayloadRange PayloadKind = "range"
	PayloadFile  PayloadKind = "file"
	PayloadNames PayloadKind = "names"
)

// DefaultEnumeratorConfig retorna la configuración por defecto, apuntando
// al servidor de pruebas local.
func DefaultEnumeratorConfig() EnumeratorConfig {
	return EnumeratorConfig{
		Core: EnumeratorCore{
			Workers: 10,
		},
		Request: RequestConfig{
			URL:              "http://127.0.0.1:5000/api/items/{}",
			Method:           "GET",
			Timeout:          5 * time.Second,
			BreakerThreshold: 5,
		},
		Payload: PayloadConfig{
			Start: 1,
			End:   20,
		},
		Output: ReportConfig{
			CSV: "results.csv",
		},
	}
}

// LoadEnumerator lee la configuración de os.Args con pflag.CommandLine.
// Precedencia: flags > ENV > archivo > defaults.
func LoadEnumerator() (EnumeratorConfig, error) {
	return loadEnumerator(pflag.CommandLine, os.Args[1:])
}

func loadEnumerator(fs *pflag.FlagSet, args []string) (EnumeratorConfig, error) {
	cfg := DefaultEnumeratorConfig()

	if path := configPath(args); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return cfg, err
		}
		cfg.ConfigFile = path
	}

	if err := loadEnumeratorEnv(&cfg); err != nil {
		return cfg, err
	}

	bindEnumeratorFlags(fs, &cfg)
	fs.Usage = func() { PrintEnumeratorHelp(os.Stderr) }
	if err := parseFlags(fs, args); err != nil {
		return cfg, err
	}

	normalizeEnumerator(&cfg)
	return cfg, nil
}

// loadEnumeratorEnv carga configuración desde variables de entorno.
// OWASPKIT_HEADERS separa headers con saltos de línea. Los valores
// numéricos mal formados son error.
func loadEnumeratorEnv(cfg *EnumeratorConfig) error {
	// Request
	if v := getenv(EnvPrefix+"URL", ""); v != "" {
		cfg.Request.URL = v
	}
	if v := getenv(EnvPrefix+"METHOD", ""); v != "" {
		cfg.Request.Method = v
	}
	if v := getenv(EnvPrefix+"BODY", ""); v != "" {
		cfg.Request.Body = v
	}
	if v := getenv(EnvPrefix+"HEADERS", ""); v != "" {
		cfg.Request.Headers = splitList(v, "\n")
	}

	// Payload
	if v := getenv(EnvPrefix+"PAYLOADS", ""); v != "" {
		cfg.Payload.File = v
	}
	if v := getenv(EnvPrefix+"NAMES", ""); v != "" {
		cfg.Payload.Names = splitList(v, ",")
	}

	// Output
	if v, ok := os.LookupEnv(EnvPrefix + "CSV"); ok {
		cfg.Output.CSV = v // vacío desactiva el CSV
	}
	if v := getenv(EnvPrefix+"SAVE_BODY", ""); v != "" {
		cfg.Output.SaveBody = parseBool(v)
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
		envDuration(EnvPrefix+"REQUEST_TIMEOUT", &cfg.Request.Timeout),
		envDuration(EnvPrefix+"INTERVAL", &cfg.Request.Interval),
		envInt(EnvPrefix+"RETRIES", &cfg.Request.Retries),
		envInt(EnvPrefix+"START", &cfg.Payload.Start),
		envInt(EnvPrefix+"END", &cfg.Payload.End),
	)
}

func bindEnumeratorFlags(fs *pflag.FlagSet, cfg *EnumeratorConfig) {
	fs.StringVarP(&cfg.Request.URL, "url", "u", cfg.Request.URL, "URL con el marcador {}")
	fs.StringVarP(&cfg.Request.Method, "method", "X", cfg.Request.Method, "Método HTTP")
	fs.StringVarP(&cfg.Request.Body, "data", "d", cfg.Request.Body, "Cuerpo de la petición, puede contener {}")
	fs.StringArrayVarP(&cfg.Request.Headers, "header", "H", cfg.Request.Headers, "Header 'Key: value' (repetible)")
	fs.DurationVarP(&cfg.Request.Timeout, "request-timeout", "t", cfg.Request.Timeout, "Timeout por petición")
	fs.DurationVarP(&cfg.Request.Interval, "interval", "i", cfg.Request.Interval, "Intervalo mínimo entre peticiones")
	fs.IntVar(&cfg.Request.Retries, "retries", cfg.Request.Retries, "Reintentos por petición")
	fs.BoolVar(&cfg.Request.FollowRedirects, "follow-redirects", cfg.Request.FollowRedirects, "Seguir redirecciones")
	fs.IntVar(&cfg.Request.BreakerThreshold, "breaker-threshold", cfg.Request.BreakerThreshold, "Fallos de transporte seguidos que abortan el escaneo")

	fs.IntVar(&cfg.Payload.Start, "start", cfg.Payload.Start, "Primer ID del rango")
	fs.IntVar(&cfg.Payload.End, "end", cfg.Payload.End, "Último ID del rango (incluido)")
	fs.StringVarP(&cfg.Payload.File, "payloads", "p", cfg.Payload.File, "Archivo de payloads (.txt o .zip)")
	fs.StringVar(&cfg.Payload.Password, "payloads-password", cfg.Payload.Password, "Password del .zip cifrado")
	fs.StringSliceVarP(&cfg.Payload.Names, "names", "n", cfg.Payload.Names, "Lista de payloads separada por comas")

	fs.IntVarP(&cfg.Core.Workers, "workers", "j", cfg.Core.Workers, "Peticiones concurrentes")
	fs.IntVarP(&cfg.Core.TimeoutS, "timeout", "T", cfg.Core.TimeoutS, "Timeout global en segundos (0 = sin timeout)")

	fs.StringVarP(&cfg.Output.CSV, "out", "o", cfg.Output.CSV, "Archivo CSV (vacío = no guardar)")
	fs.BoolVarP(&cfg.Output.SaveBody, "save-body", "b", cfg.Output.SaveBody, "Guardar el cuerpo de la respuesta en el CSV")
	fs.BoolVarP(&cfg.Output.Quiet, "quiet", "q", cfg.Output.Quiet, "Sin presentación, solo errores")
	fs.BoolVarP(&cfg.Output.Verbose, "verbose", "v", cfg.Output.Verbose, "Logs en nivel debug")

	fs.StringVar(&cfg.ConfigFile, "config", cfg.ConfigFile, "Archivo de configuración YAML")
	fs.BoolVar(&cfg.PrintVersion, "version", false, "Imprimir versión y salir")
}

func normalizeEnumerator(c *EnumeratorConfig) {
	c.Request.URL = strings.TrimSpace(c.Request.URL)
	c.Request.Method = validator.NormalizeMethod(c.Request.Method)
	c.Payload.File = strings.TrimSpace(c.Payload.File)
	c.Payload.Names = splitList(strings.Join(c.Payload.Names, ","), ",")
	if c.Core.TimeoutS < 0 {
		c.Core.TimeoutS = 0
	}
	if c.Request.Interval < 0 {
		c.Request.Interval = 0
	}
	if c.Output.Quiet {
		c.Output.Verbose = false
	}
}

// PayloadKind indica la fuente de payloads: names tiene prioridad sobre
// file, y file sobre el rango.
func (c EnumeratorConfig) PayloadKind() PayloadKind {
	switch {
	case len(c.Payload.Names) > 0:
		return PayloadNames
	case c.Payload.File != "":
		return PayloadFile
	default:
		return PayloadRange
	}
}

// Validate verifica la configuración.
func (c EnumeratorConfig) Validate() error {
	if !validator.IsTemplateURL(c.Request.URL) {
		return invalid("url %q is not a valid http(s) URL", c.Request.URL)
	}
	if !validator.HasPlaceholder(c.Request.URL) && !validator.HasPlaceholder(c.Request.Body) {
		return invalid("url or body must contain the %s placeholder", validator.Placeholder)
	}
	if !validator.IsHTTPMethod(c.Request.Method) {
		return invalid("method %q is not a valid HTTP method", c.Request.Method)
	}
	if _, err := c.HeaderMap(); err != nil {
		return err
	}
	if c.Request.Timeout <= 0 {
		return invalid("request timeout must be positive, got %s", c.Request.Timeout)
	}
	if c.Request.Retries < 0 {
		return invalid("retries cannot be negative, got %d", c.Request.Retries)
	}
	if c.Core.Workers <= 0 {
		return invalid("workers must be a positive integer, got %d", c.Core.Workers)
	}
	if c.PayloadKind() == PayloadRange && c.Payload.Start > c.Payload.End {
		return invalid("start (%d) is greater than end (%d)", c.Payload.Start, c.Payload.End)
	}
	return nil
}

// HeaderMap parsea los headers "Key: value". Un header repetido conserva
// el último valor.
func (c EnumeratorConfig) HeaderMap() (map[string]string, error) {
	headers := make(map[string]string, len(c.Request.Headers))
	for _, raw := range c.Request.Headers {
		key, value, ok := validator.ParseHeader(raw)
		if !ok {
			return nil, invalid("header %q must look like 'Key: value'", raw)
		}
		headers[key] = value
	}
	return headers, nil
}

// Timeout devuelve el timeout global como time.Duration (0 = sin timeout).
func (c EnumeratorConfig) Timeout() time.Duration {
	return secondsToDuration(c.Core.TimeoutS)
}
