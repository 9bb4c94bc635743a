package table

import (
	"owaspkit/internal/core/domain"
	"owaspkit/internal/core/ports"
	"owaspkit/internal/platform/logx"
	"owaspkit/internal/platform/registry"
)

// Auto-registration on package import
func init() {
	if err := registry.Global().Register(
		domain.ModeTable,
		factory,
		ports.SourceMetadata{
			Name:        sourceName,
			Description: "Sequential lookup in a plaintext:hash table (text, zip or SQLite)",
			Sequential:  true,
		},
	); err != nil {
		logx.New().Warn("failed to register table source", "error", err.Error())
	}
}

func factory(params domain.SourceParams, logger logx.Logger) (ports.CandidateSource, error) {
	if params.Path == "" {
		return nil, domain.ErrMissingSource
	}
	return New(logger, params.Path, params.ArchivePassword), nil
}
