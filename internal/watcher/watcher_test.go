package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexlaverty/yts/internal/logger"
)

func TestWatcherHandlesNewSubtitleFile(t *testing.T) {
	dir := t.TempDir()
	handled := make(chan string, 1)

	w, err := New(dir, func(ctx context.Context, path string) error {
		handled <- path
		return nil
	}, logger.New("error"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Start(ctx)

	target := filepath.Join(dir, "episode.vtt")
	if err := os.WriteFile(target, []byte("WEBVTT\n"), 0644); err != nil {
		t.Fatal(err)
	}

	select {
	case got := <-handled:
		if got != target {
			t.Errorf("handler got %q, want %q", got, target)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("handler never invoked for new subtitle file")
	}
}

func TestWatcherBadDirectory(t *testing.T) {
	_, err := New("/nonexistent/path/for/sure", func(ctx context.Context, path string) error {
		return nil
	}, logger.New("error"))
	if err == nil {
		t.Error("New() should fail for a missing directory")
	}
}

func TestIsSubtitleFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"a/b/captions.vtt", true},
		{"a/b/captions.SRT", true},
		{"a/b/movie.mp4", false},
		{"a/b/notes.txt", false},
		{"vtt", false},
	}

	for _, tt := range tests {
		if got := isSubtitleFile(tt.path); got != tt.want {
			t.Errorf("isSubtitleFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
