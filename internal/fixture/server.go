// Package fixture implementa un servidor HTTP deliberadamente vulnerable
// para practicar enumeración: los recursos se identifican por id o por
// nombre y ninguno verifica quién los pide.
package fixture

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"owaspkit/internal/platform/config"
	"owaspkit/internal/platform/logx"
)

// SampleFiles se sirven en /files/ cuando no hay FilesDir.
var SampleFiles = map[string]string{
	"invoice-1001.txt": "invoice 1001\ncustomer: alice\ntotal: 120.00\n",
	"invoice-1002.txt": "invoice 1002\ncustomer: bob\ntotal: 75.50\n",
	"backup.sql":       "INSERT INTO users (id, username, password) VALUES (1, 'admin', 'admin123');\n",
}

// Options configura el servidor.
type Options struct {
	Accessible config.IDRange
	Forbidden  config.IDRange

	// FilesDir reemplaza a SampleFiles
	FilesDir string

	Logger logx.Logger
}

// Item es la respuesta de /api/items/{id}.
type Item struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Method string `json:"method"`
}

type server struct {
	opts   Options
	logger logx.Logger
}

// NewHandler arma el mux con logging de peticiones.
func NewHandler(opts Options) http.Handler {
	if opts.Logger == nil {
		opts.Logger = logx.New()
	}
	s := &server{opts: opts, logger: opts.Logger.With("component", "fixture")}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/items/{id}", s.handleItem)
	mux.HandleFunc("GET /files/{name}", s.handleFile)

	return s.logRequests(mux)
}

func (s *server) handleItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	switch {
	case s.opts.Accessible.Contains(id):
		writeJSON(w, http.StatusOK, Item{ID: id, Name: "Item " + strconv.Itoa(id), Method: r.Method})
	case s.opts.Forbidden.Contains(id):
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
	default:
		http.NotFound(w, r)
	}
}

// handleFile no comprueba permisos: cualquiera que adivine el nombre lo lee.
func (s *server) handleFile(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == "" || strings.Contains(name, "..") || strings.ContainsAny(name, `/\`) {
		http.Error(w, "invalid file name", http.StatusBadRequest)
		return
	}

	content, ok := s.lookupFile(name)
	if !ok {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(content)
}

func (s *server) lookupFile(name string) ([]byte, bool) {
	if s.opts.FilesDir == "" {
		content, ok := SampleFiles[name]
		return []byte(content), ok
	}

	content, err := os.ReadFile(filepath.Join(s.opts.FilesDir, name))
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("read file failed", "name", name, "error", err.Error())
		}
		return nil, false
	}
	return content, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// statusRecorder captura el status para el log.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"remote", r.RemoteAddr,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}
