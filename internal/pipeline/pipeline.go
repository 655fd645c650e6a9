package pipeline

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/alexlaverty/yts/internal/subtitle"
	"github.com/alexlaverty/yts/internal/summarizer"
)

// ErrInsufficientContent means the cleaned transcript is below the usable
// minimum. Distinct from youtube.ErrNoSubtitles: a caption file existed
// but carried no real dialogue.
var ErrInsufficientContent = errors.New("subtitles too short or empty")

// Run executes the full pipeline for a video URL. Strictly sequential;
// the first failing stage aborts the run.
func (p *implPipeline) Run(ctx context.Context, url string) (Result, error) {
	p.logger.Info(ctx, "Fetching video info...")
	video, err := p.youtube.Metadata(ctx, url)
	if err != nil {
		return Result{}, err
	}
	p.logger.Info(ctx, "Title: %s", video.Title)

	p.logger.Info(ctx, "Extracting subtitles...")
	raw, err := p.youtube.Subtitles(ctx, url)
	if err != nil {
		return Result{}, err
	}

	summary, err := p.Summarize(ctx, video.Title, subtitle.Clean(raw))
	if err != nil {
		return Result{}, err
	}

	return Result{Title: video.Title, Summary: summary}, nil
}

// Summarize gates, truncates, and hands a cleaned transcript to the
// generator. Both limits count characters, not bytes: auto-generated
// captions routinely carry multibyte runes (music notes, curly quotes).
func (p *implPipeline) Summarize(ctx context.Context, title, transcript string) (string, error) {
	if utf8.RuneCountInString(transcript) < p.cfg.Limits.MinChars {
		return "", fmt.Errorf("%w: video may not have usable captions", ErrInsufficientContent)
	}

	if truncated, ok := truncateRunes(transcript, p.cfg.Limits.MaxChars); ok {
		transcript = truncated
		p.logger.Info(ctx, "Transcript truncated to %d characters.", p.cfg.Limits.MaxChars)
	}

	p.logger.Info(ctx, "Summarizing with %s (%s)...", backendLabel(p.cfg.Backend), p.cfg.Model)
	return p.generator.Generate(ctx, summarizer.Prompt(title, transcript))
}

func backendLabel(backend string) string {
	if backend == "gemini" {
		return "Gemini"
	}
	return "Claude"
}

// truncateRunes cuts s to its first max runes. The second return reports
// whether anything was cut; the cut always lands on a rune boundary.
func truncateRunes(s string, max int) (string, bool) {
	count := 0
	for i := range s {
		if count == max {
			return s[:i], true
		}
		count++
	}
	return s, false
}
