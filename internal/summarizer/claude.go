package summarizer

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexlaverty/yts/internal/logger"
	"github.com/alexlaverty/yts/pkg/executor"
)

type implClaude struct {
	executor executor.Executor
	model    string
	logger   logger.Logger
}

// Generate invokes the claude CLI with the prompt and captures its stdout
// as the summary. A non-zero exit surfaces the CLI's stderr through the
// executor's error.
func (g *implClaude) Generate(ctx context.Context, prompt string) (string, error) {
	g.logger.Debug(ctx, "Invoking claude CLI (model %s, prompt %d chars)", g.model, len(prompt))

	out, err := g.executor.Execute(ctx, "claude",
		"-p", prompt,
		"--model", g.model,
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrGeneration, err)
	}

	return strings.TrimSpace(out), nil
}
