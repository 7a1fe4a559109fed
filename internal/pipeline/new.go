package pipeline

import (
	"sync"

	"lingua-pipeline/internal/config"
	"lingua-pipeline/internal/inference"
	"lingua-pipeline/internal/logger"
	"lingua-pipeline/internal/store"
	"lingua-pipeline/internal/transcriber"
)

type implCoordinator struct {
	cfg         *config.Config
	store       *store.Store
	client      inference.Client
	transcriber transcriber.Transcriber
	logger      logger.Logger

	// mu guards locks; each (media, stage) pair gets its own mutex so that
	// concurrent requests for the same stage serialize instead of racing.
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// New creates the stage coordinator.
func New(cfg *config.Config, st *store.Store, client inference.Client, tr transcriber.Transcriber, l logger.Logger) Coordinator {
	return &implCoordinator{
		cfg:         cfg,
		store:       st,
		client:      client,
		transcriber: tr,
		logger:      l,
		locks:       make(map[string]*sync.Mutex),
	}
}

func (c *implCoordinator) stageLock(mediaID, stage string) *sync.Mutex {
	c.mu.Lock()
	defer c.mu.Unlock()
	key := mediaID + "|" + stage
	l, ok := c.locks[key]
	if !ok {
		l = &sync.Mutex{}
		c.locks[key] = l
	}
	return l
}
