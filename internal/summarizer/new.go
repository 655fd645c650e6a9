package summarizer

import (
	"errors"
	"os"
	"strings"

	"github.com/alexlaverty/yts/internal/config"
	"github.com/alexlaverty/yts/internal/logger"
	"github.com/alexlaverty/yts/pkg/executor"
)

// ErrGeneration marks a failed summary generation: the claude CLI exited
// non-zero or the Gemini API refused the request.
var ErrGeneration = errors.New("generate summary")

// New creates a Generator for the configured backend.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Generator {
	if cfg.Backend == "gemini" {
		return &implGemini{
			apiKeys: geminiKeys(cfg),
			model:   cfg.Model,
			logger:  log,
		}
	}

	return &implClaude{
		executor: exec,
		model:    cfg.Model,
		logger:   log,
	}
}

// geminiKeys merges config keys with the GEMINI_API_KEY environment
// variable (comma-separated to allow rotation).
func geminiKeys(cfg *config.Config) []string {
	keys := append([]string(nil), cfg.Gemini.APIKeys...)
	if env := os.Getenv("GEMINI_API_KEY"); env != "" {
		for _, k := range strings.Split(env, ",") {
			if k = strings.TrimSpace(k); k != "" {
				keys = append(keys, k)
			}
		}
	}
	return keys
}
