package keyspace

import (
	"owaspkit/internal/core/domain"
	"owaspkit/internal/core/ports"
	"owaspkit/internal/platform/logx"
	"owaspkit/internal/platform/registry"
)

// Auto-registration on package import
func init() {
	if err := registry.Global().Register(
		domain.ModeBruteForce,
		factory,
		ports.SourceMetadata{
			Name:        sourceName,
			Description: "Lazy charset^1..max-len enumeration split by first character",
		},
	); err != nil {
		logx.New().Warn("failed to register keyspace source", "error", err.Error())
	}
}

func factory(params domain.SourceParams, logger logx.Logger) (ports.CandidateSource, error) {
	return New(logger, params.Charset, params.MaxLen)
}
