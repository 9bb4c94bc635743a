// internal/core/domain/errors.go
package domain

import (
	"owaspkit/internal/platform/errors"
)

// Errores de dominio. Los de configuración envuelven errors.ErrInvalidInput,
// los de recursos errors.ErrNotFound.
var (
	// Configuration errors
	ErrInvalidConfig  = errors.Wrap(errors.ErrInvalidInput, "invalid configuration")
	ErrUnknownMode    = errors.Wrap(ErrInvalidConfig, "unknown mode")
	ErrInvalidDigest  = errors.Wrap(ErrInvalidConfig, "invalid target digest")
	ErrInvalidWorkers = errors.Wrap(ErrInvalidConfig, "concurrency must be a positive integer")
	ErrInvalidMaxLen  = errors.Wrap(ErrInvalidConfig, "max length must be a positive integer")
	ErrEmptyCharset   = errors.Wrap(ErrInvalidConfig, "charset cannot be empty")
	ErrMissingSource  = errors.Wrap(ErrInvalidConfig, "source path is required")

	// Source errors
	ErrSourceNotFound = errors.Wrap(errors.ErrNotFound, "source not found")

	// ErrMalformedRecord marks a line that could not be parsed. Sources skip
	// such lines; it never aborts a run.
	ErrMalformedRecord = errors.Wrap(errors.ErrMalformed, "malformed record")
)

func wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}
