package watcher

import "context"

// Watcher defines the interface for subtitle-directory monitoring.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler handles a newly dropped subtitle file.
type EventHandler func(ctx context.Context, filePath string) error
