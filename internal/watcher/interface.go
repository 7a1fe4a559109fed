package watcher

import "context"

// Watcher monitors the inbox directory for newly dropped media files.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler processes one detected media file.
type EventHandler func(ctx context.Context, filePath string) error
