package logger

import "context"

// Logger defines leveled, printf-style logging for the pipeline.
// All output goes to stderr so the final summary is the only thing
// written to stdout.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...interface{})
	Info(ctx context.Context, msg string, args ...interface{})
	Warn(ctx context.Context, msg string, args ...interface{})
	Error(ctx context.Context, msg string, args ...interface{})
}
