package youtube

import "context"

// Client defines the interface for talking to the video platform.
// Both operations shell out to yt-dlp.
type Client interface {
	Metadata(ctx context.Context, url string) (Video, error)
	Subtitles(ctx context.Context, url string) (string, error)
}
