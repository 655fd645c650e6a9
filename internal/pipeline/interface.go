package pipeline

import "context"

// Result carries the outcome of a full pipeline run.
type Result struct {
	Title   string
	Summary string
}

// Pipeline runs the fetch → clean → summarize sequence.
type Pipeline interface {
	// Run handles a video URL end to end.
	Run(ctx context.Context, url string) (Result, error)
	// Summarize handles the tail of the pipeline for an already cleaned
	// transcript: minimum-content gate, truncation, generation.
	Summarize(ctx context.Context, title, transcript string) (string, error)
}
