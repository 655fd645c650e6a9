package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMetadataFetch marks video-info failures: bad URL, network error, or
// a service-reported error from yt-dlp.
var ErrMetadataFetch = errors.New("fetch video info")

// Video holds the metadata fields the pipeline cares about. ID is opaque;
// Title feeds the summarization prompt.
type Video struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Channel  string  `json:"channel"`
	Duration float64 `json:"duration"`
	URL      string  `json:"webpage_url"`
}

// Metadata resolves a video URL to its metadata via yt-dlp --dump-json.
func (c *implClient) Metadata(ctx context.Context, url string) (Video, error) {
	out, err := c.executor.Execute(ctx, "yt-dlp",
		"--dump-json",
		"--no-warnings",
		"--skip-download",
		url,
	)
	if err != nil {
		return Video{}, fmt.Errorf("%w: %w", ErrMetadataFetch, err)
	}

	var v Video
	if err := json.Unmarshal([]byte(out), &v); err != nil {
		return Video{}, fmt.Errorf("%w: decode yt-dlp output: %w", ErrMetadataFetch, err)
	}

	if v.Title == "" {
		v.Title = "Unknown Title"
	}

	c.logger.Debug(ctx, "Resolved video %s (%s)", v.ID, v.Title)
	return v, nil
}
