package table

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"

	_ "github.com/mattn/go-sqlite3" // SQLite driver

	"owaspkit/internal/core/domain"
	"owaspkit/internal/platform/logx"
)

// Esquema esperado:
//
//	CREATE TABLE rainbow (plaintext TEXT NOT NULL, hash TEXT NOT NULL);
//	CREATE INDEX rainbow_hash ON rainbow (lower(hash));
const (
	countQuery  = "SELECT COUNT(*) FROM rainbow"
	lookupQuery = "SELECT plaintext FROM rainbow WHERE lower(hash) = ? ORDER BY rowid LIMIT 1"
)

type sqliteBackend struct {
	path   string
	logger logx.Logger

	db    *sql.DB
	count int64
}

// dsn abre la base en solo lectura para no crear archivos vacíos.
func (b *sqliteBackend) dsn() string {
	return "file:" + (&url.URL{Path: b.path}).EscapedPath() + "?mode=ro"
}

func (b *sqliteBackend) load(ctx context.Context) error {
	db, err := sql.Open("sqlite3", b.dsn())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.QueryRowContext(ctx, countQuery).Scan(&b.count); err != nil {
		db.Close()
		return fmt.Errorf("%s is not a rainbow table database: %w (%v)", b.path, domain.ErrSourceNotFound, err)
	}

	b.db = db
	return nil
}

func (b *sqliteBackend) lookup(ctx context.Context, target domain.Digest) (string, bool, error) {
	if b.db == nil {
		return "", false, fmt.Errorf("database %s not loaded", b.path)
	}

	var plaintext string
	err := b.db.QueryRowContext(ctx, lookupQuery, target.String()).Scan(&plaintext)
	switch {
	case err == sql.ErrNoRows:
		return "", false, nil
	case err != nil:
		return "", false, fmt.Errorf("failed to query rainbow table: %w", err)
	}
	return plaintext, true, nil
}

func (b *sqliteBackend) size() int64 { return b.count }

func (b *sqliteBackend) close() error {
	if b.db == nil {
		return nil
	}
	err := b.db.Close()
	b.db = nil
	return err
}
