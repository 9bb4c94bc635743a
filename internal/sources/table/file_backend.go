package table

import (
	"context"

	"owaspkit/internal/core/domain"
	"owaspkit/internal/platform/logx"
	"owaspkit/internal/sources/common"
)

// fileBackend mantiene en memoria los registros de un archivo de texto o zip,
// en el orden del archivo.
type fileBackend struct {
	path     string
	password string
	logger   logx.Logger

	records []record
	skipped int64
}

func (b *fileBackend) load(ctx context.Context) error {
	records := make([]record, 0, 1024)
	var skipped int64

	overlong, err := common.ReadLines(ctx, b.path, b.password, func(line string) bool {
		plaintext, hash, err := ParseRecord(line)
		if err != nil {
			skipped++
			b.logger.Debug("skipping malformed record", "error", err.Error())
			return true
		}
		records = append(records, record{plaintext: plaintext, hash: hash})
		return true
	})
	if err != nil {
		return err
	}
	if overlong > 0 {
		b.logger.Warn("skipping overlong lines", "path", b.path, "lines", overlong)
	}

	b.records, b.skipped = records, skipped+overlong
	return nil
}

func (b *fileBackend) lookup(ctx context.Context, target domain.Digest) (string, bool, error) {
	for i, rec := range b.records {
		if i%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return "", false, err
			}
		}
		if target.Equal(rec.hash) {
			return rec.plaintext, true, nil
		}
	}
	return "", false, nil
}

func (b *fileBackend) size() int64 { return int64(len(b.records)) }

func (b *fileBackend) close() error {
	b.records = nil
	return nil
}
