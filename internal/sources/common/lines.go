// Package common provides shared helpers for file-backed candidate sources:
// opening plain or zipped resources and scanning them line by line.
package common

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/yeka/zip"

	"owaspkit/internal/core/domain"
)

const (
	initialBuffer = 64 * 1024

	// ctxCheckEvery controla cada cuántas líneas se consulta ctx.Err()
	ctxCheckEvery = 4096
)

// maxLineSize es el largo máximo de una línea, sin el salto de línea. Las
// más largas se descartan.
var maxLineSize = 10 * 1024 * 1024

// ResourceKind identifica el formato de un recurso por su extensión.
type ResourceKind int

const (
	KindText ResourceKind = iota
	KindZip
	KindSQLite
)

// String returns the name used in logs.
func (k ResourceKind) String() string {
	switch k {
	case KindZip:
		return "zip"
	case KindSQLite:
		return "sqlite"
	default:
		return "text"
	}
}

// DetectKind classifies path by extension.
func DetectKind(path string) ResourceKind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zip":
		return KindZip
	case ".db", ".sqlite", ".sqlite3":
		return KindSQLite
	default:
		return KindText
	}
}

// Stat verifica que path exista y sea un archivo regular. Un recurso ausente
// envuelve domain.ErrSourceNotFound.
func Stat(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s: %w", path, domain.ErrSourceNotFound)
		}
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory: %w", path, domain.ErrSourceNotFound)
	}
	return nil
}

// Open abre path como texto. Los .zip se leen desde su primer archivo
// regular, descifrado con password si está cifrado.
func Open(path, password string) (io.ReadCloser, error) {
	if err := Stat(path); err != nil {
		return nil, err
	}

	if DetectKind(path) != KindZip {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
		return f, nil
	}

	return openZipped(path, password)
}

// zipEntry cierra la entrada y el archivo contenedor juntos.
type zipEntry struct {
	io.ReadCloser
	archive *zip.ReadCloser
}

func (z *zipEntry) Close() error {
	err := z.ReadCloser.Close()
	if cerr := z.archive.Close(); err == nil {
		err = cerr
	}
	return err
}

func openZipped(path, password string) (io.ReadCloser, error) {
	archive, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open archive %s: %w", path, err)
	}

	for _, f := range archive.File {
		if f.FileInfo().IsDir() {
			continue
		}
		if f.IsEncrypted() {
			if password == "" {
				archive.Close()
				return nil, fmt.Errorf("archive %s entry %s is encrypted and no password was given: %w", path, f.Name, domain.ErrInvalidConfig)
			}
			f.SetPassword(password)
		}

		rc, err := f.Open()
		if err != nil {
			archive.Close()
			return nil, fmt.Errorf("open archive entry %s: %w", f.Name, err)
		}
		return &zipEntry{ReadCloser: rc, archive: archive}, nil
	}

	archive.Close()
	return nil, fmt.Errorf("archive %s has no regular files: %w", path, domain.ErrSourceNotFound)
}

// ScanLines llama a fn con cada línea de r (sin el salto de línea) hasta
// EOF, hasta que fn retorne false o hasta que ctx se cancele. Las líneas de
// más de maxLineSize bytes no llegan a fn; retorna cuántas se descartaron.
func ScanLines(ctx context.Context, r io.Reader, fn func(line string) bool) (int64, error) {
	br := bufio.NewReaderSize(r, initialBuffer)

	var (
		line     []byte
		overlong bool
		skipped  int64
		n        int
	)
	for {
		part, err := br.ReadSlice('\n')
		if err != nil && err != bufio.ErrBufferFull && err != io.EOF {
			return skipped, err
		}

		if !overlong {
			line = append(line, part...)
			if len(line) > maxLineSize+2 { // cabe "\r\n"
				overlong, line = true, line[:0]
			}
		}
		if err == bufio.ErrBufferFull {
			continue
		}
		if err == io.EOF && len(line) == 0 && !overlong {
			return skipped, nil
		}

		text := strings.TrimSuffix(strings.TrimSuffix(string(line), "\n"), "\r")
		long := overlong || len(text) > maxLineSize
		line, overlong = line[:0], false

		n++
		if n%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return skipped, err
			}
		}
		if long {
			skipped++
		} else if !fn(text) {
			return skipped, nil
		}

		if err == io.EOF {
			return skipped, nil
		}
	}
}

// ReadLines abre path y lo recorre con ScanLines.
func ReadLines(ctx context.Context, path, password string, fn func(line string) bool) (int64, error) {
	rc, err := Open(path, password)
	if err != nil {
		return 0, err
	}
	defer rc.Close()

	skipped, err := ScanLines(ctx, rc, fn)
	if err != nil {
		return skipped, fmt.Errorf("read %s: %w", path, err)
	}
	return skipped, nil
}

// CleanWord aplica las reglas de wordlist: recorta espacios y descarta
// líneas vacías o comentarios ("#" o "//").
func CleanWord(line string) (string, bool) {
	word := strings.TrimSpace(line)
	if word == "" || strings.HasPrefix(word, "#") || strings.HasPrefix(word, "//") {
		return "", false
	}
	return word, true
}
