package youtube

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

var (
	// ErrSubtitleFetch marks a failed subtitle download.
	ErrSubtitleFetch = errors.New("download subtitles")
	// ErrNoSubtitles means the download succeeded but the service produced
	// no matching caption file for the requested language.
	ErrNoSubtitles = errors.New("no matching subtitles found")
)

// Subtitles downloads English captions (manual or auto-generated) in VTT
// format and returns the raw markup. The download lands in a per-call
// temp directory that is removed on every exit path.
func (c *implClient) Subtitles(ctx context.Context, url string) (string, error) {
	tmpDir, err := os.MkdirTemp(c.cfg.Paths.Temp, "yts-subs-*")
	if err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	_, err = c.executor.Execute(ctx, "yt-dlp",
		"--skip-download",
		"--write-subs",
		"--write-auto-subs",
		"--sub-langs", c.cfg.Language,
		"--sub-format", "vtt",
		"--no-warnings",
		"-o", filepath.Join(tmpDir, "subs.%(ext)s"),
		url,
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSubtitleFetch, err)
	}

	vttPath, err := c.findVTT(tmpDir)
	if err != nil {
		return "", err
	}

	raw, err := os.ReadFile(vttPath)
	if err != nil {
		return "", fmt.Errorf("%w: read %s: %w", ErrSubtitleFetch, vttPath, err)
	}

	c.logger.Debug(ctx, "Downloaded %d bytes of VTT to %s", len(raw), vttPath)
	return string(raw), nil
}

// findVTT locates the caption file yt-dlp wrote. The language tag in the
// filename varies (subs.en.vtt, subs.en-orig.vtt), so match on extension.
func (c *implClient) findVTT(dir string) (string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.vtt"))
	if err != nil {
		return "", fmt.Errorf("%w: glob: %w", ErrSubtitleFetch, err)
	}
	if len(matches) == 0 {
		return "", ErrNoSubtitles
	}
	return matches[0], nil
}
