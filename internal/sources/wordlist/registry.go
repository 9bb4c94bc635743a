package wordlist

import (
	"owaspkit/internal/core/domain"
	"owaspkit/internal/core/ports"
	"owaspkit/internal/platform/logx"
	"owaspkit/internal/platform/registry"
)

// Auto-registration on package import
func init() {
	if err := registry.Global().Register(
		domain.ModeDictionary,
		factory,
		ports.SourceMetadata{
			Name:        sourceName,
			Description: "Filtered wordlist (text or zip) split across workers",
		},
	); err != nil {
		logx.New().Warn("failed to register wordlist source", "error", err.Error())
	}
}

func factory(params domain.SourceParams, logger logx.Logger) (ports.CandidateSource, error) {
	if params.Path == "" {
		return nil, domain.ErrMissingSource
	}
	return New(logger, params.Path, params.ArchivePassword), nil
}
