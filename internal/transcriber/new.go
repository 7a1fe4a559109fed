package transcriber

import (
	"lingua-pipeline/internal/config"
	"lingua-pipeline/internal/logger"
	"lingua-pipeline/pkg/executor"
)

type implTranscriber struct {
	cfg      *config.Config
	executor executor.Executor
	logger   logger.Logger
}

// New creates a whisper.cpp backed transcriber.
func New(cfg *config.Config, exec executor.Executor, l logger.Logger) Transcriber {
	return &implTranscriber{
		cfg:      cfg,
		executor: exec,
		logger:   l,
	}
}
