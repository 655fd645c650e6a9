package executor

import "context"

// Executor defines the interface for running external commands.
// yt-dlp and the claude CLI are both invoked through it, which keeps
// subprocess calls substitutable in tests.
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
}
