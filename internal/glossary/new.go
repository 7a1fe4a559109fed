package glossary

import (
	"lingua-pipeline/internal/config"
	"lingua-pipeline/internal/inference"
	"lingua-pipeline/internal/logger"
)

type implExtractor struct {
	client    inference.Client
	logger    logger.Logger
	chunkSize int
	maxTerms  int
	buffer    int
}

// New creates an Extractor using the configured chunking and output bounds.
func New(cfg *config.Config, client inference.Client, log logger.Logger) Extractor {
	return &implExtractor{
		client:    client,
		logger:    log,
		chunkSize: cfg.Glossary.ChunkSize,
		maxTerms:  cfg.Glossary.MaxTerms,
		buffer:    cfg.Glossary.OverRequestBuffer,
	}
}
