// yts summarizes a YouTube video from its captions.
//
// Fetches video metadata and English subtitles with yt-dlp, cleans the
// VTT into plain text, and asks a text-generation backend (claude CLI by
// default, Gemini API optionally) for a summary. The summary is the only
// thing printed to stdout; progress and errors go to stderr.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/alexlaverty/yts/internal/config"
	"github.com/alexlaverty/yts/internal/logger"
	"github.com/alexlaverty/yts/internal/pipeline"
	"github.com/alexlaverty/yts/internal/subtitle"
	"github.com/alexlaverty/yts/internal/summarizer"
	"github.com/alexlaverty/yts/internal/watcher"
	"github.com/alexlaverty/yts/internal/youtube"
	"github.com/alexlaverty/yts/pkg/executor"
)

func main() {
	var (
		modelFlag   string
		configFlag  string
		backendFlag string
		outputFlag  string
		watchFlag   string
		docxFlag    bool
		verboseFlag bool
	)

	flag.StringVar(&modelFlag, "m", "", "generation model to use")
	flag.StringVar(&modelFlag, "model", "", "generation model to use")
	flag.StringVar(&configFlag, "c", "", "path to config file")
	flag.StringVar(&configFlag, "config", "", "path to config file")
	flag.StringVar(&backendFlag, "b", "", "generation backend: claude or gemini")
	flag.StringVar(&backendFlag, "backend", "", "generation backend: claude or gemini")
	flag.StringVar(&outputFlag, "o", "", "also write the summary to this file (.md or .docx)")
	flag.StringVar(&outputFlag, "output", "", "also write the summary to this file (.md or .docx)")
	flag.StringVar(&watchFlag, "w", "", "watch a directory for subtitle files instead of fetching a URL")
	flag.StringVar(&watchFlag, "watch", "", "watch a directory for subtitle files instead of fetching a URL")
	flag.BoolVar(&docxFlag, "docx", false, "write watch-mode summaries as .docx instead of .md")
	flag.BoolVar(&verboseFlag, "v", false, "enable debug logging")
	flag.BoolVar(&verboseFlag, "verbose", false, "enable debug logging")
	flag.Usage = usage
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.Load(configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	applyFlags(cfg, modelFlag, backendFlag, verboseFlag)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level)
	exec := executor.New()
	gen := summarizer.New(cfg, exec, log)
	pipe := pipeline.New(cfg, youtube.New(cfg, exec, log), gen, log)

	if err := modeError(watchFlag, flag.NArg()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		usage()
		os.Exit(1)
	}

	if watchFlag != "" {
		if err := runWatch(ctx, cfg, pipe, log, watchFlag, docxFlag); err != nil && err != context.Canceled {
			log.Error(ctx, "%v", err)
			os.Exit(1)
		}
		return
	}

	url := flag.Arg(0)

	res, err := pipe.Run(ctx, url)
	if err != nil {
		log.Error(ctx, "%v", err)
		os.Exit(1)
	}

	if outputFlag != "" {
		if err := summarizer.WriteSummary(outputFlag, res.Title, res.Summary); err != nil {
			log.Error(ctx, "%v", err)
			os.Exit(1)
		}
		log.Info(ctx, "Summary written to %s", outputFlag)
	}

	fmt.Println()
	fmt.Println(res.Summary)
}

// modeError validates the watch/URL combination: watch mode takes no
// positional arguments, URL mode takes exactly one.
func modeError(watch string, nargs int) error {
	switch {
	case watch != "" && nargs != 0:
		return errors.New("-w cannot be combined with a video URL")
	case watch == "" && nargs != 1:
		return errors.New("a video URL is required")
	}
	return nil
}

// applyFlags layers CLI flags over the loaded config. An explicit -m wins;
// otherwise switching to the Gemini backend also switches the default model.
func applyFlags(cfg *config.Config, model, backend string, verbose bool) {
	if backend != "" {
		cfg.Backend = backend
	}
	if model != "" {
		cfg.Model = model
	} else if cfg.Backend == "gemini" && cfg.Model == config.DefaultModel {
		cfg.Model = config.DefaultGeminiModel
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
}

// runWatch monitors a directory for dropped subtitle files and writes a
// summary next to each one. Files are handled strictly one at a time.
func runWatch(ctx context.Context, cfg *config.Config, pipe pipeline.Pipeline, log logger.Logger, dir string, docx bool) error {
	handler := func(ctx context.Context, path string) error {
		raw, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read subtitle file: %w", err)
		}

		stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		summary, err := pipe.Summarize(ctx, stem, subtitle.Clean(string(raw)))
		if err != nil {
			return err
		}

		ext := ".md"
		if docx {
			ext = ".docx"
		}
		outPath := filepath.Join(filepath.Dir(path), stem+ext)
		if err := summarizer.WriteSummary(outPath, stem, summary); err != nil {
			return err
		}
		log.Info(ctx, "Summary written to %s", outPath)
		return nil
	}

	w, err := watcher.New(dir, handler, log)
	if err != nil {
		return err
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	return w.Start(ctx)
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage: yts [options] <video-url>
       yts [options] -w <directory>

Summarize a YouTube video using its subtitles.

Options:
  -m, -model string    generation model (default %q, or %q with -b gemini)
  -b, -backend string  generation backend: claude or gemini (default "claude")
  -c, -config string   path to YAML config file
  -o, -output string   also write the summary to this file (.md or .docx)
  -w, -watch string    watch a directory for .vtt/.srt files and summarize each
  -docx                write watch-mode summaries as .docx instead of .md
  -v, -verbose         enable debug logging
`, config.DefaultModel, config.DefaultGeminiModel)
}
