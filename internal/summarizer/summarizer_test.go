package summarizer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexlaverty/yts/internal/config"
	"github.com/alexlaverty/yts/internal/logger"
)

type fakeExecutor struct {
	out     string
	err     error
	gotName string
	gotArgs []string
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	f.gotName = name
	f.gotArgs = args
	return f.out, f.err
}

func TestPrompt(t *testing.T) {
	p := Prompt(`Why "everyone" is WRONG`, "the actual transcript text")

	if !strings.Contains(p, `Video title: "Why "everyone" is WRONG"`) {
		t.Errorf("prompt missing quoted title:\n%s", p)
	}
	if !strings.Contains(p, "--- SUBTITLES ---") || !strings.Contains(p, "--- END SUBTITLES ---") {
		t.Errorf("prompt missing subtitle delimiters:\n%s", p)
	}
	if !strings.Contains(p, "the actual transcript text") {
		t.Errorf("prompt missing transcript:\n%s", p)
	}
	if strings.Index(p, "--- SUBTITLES ---") > strings.Index(p, "the actual transcript text") {
		t.Error("transcript appears before the opening delimiter")
	}
}

func TestClaudeGenerate(t *testing.T) {
	exec := &fakeExecutor{out: "  A summary.\n"}
	g := &implClaude{executor: exec, model: "claude-haiku-4-5-20251001", logger: logger.New("error")}

	got, err := g.Generate(context.Background(), "some prompt")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if got != "A summary." {
		t.Errorf("Generate() = %q, want trimmed summary", got)
	}

	if exec.gotName != "claude" {
		t.Errorf("command = %v, want claude", exec.gotName)
	}
	want := []string{"-p", "some prompt", "--model", "claude-haiku-4-5-20251001"}
	if len(exec.gotArgs) != len(want) {
		t.Fatalf("args = %v, want %v", exec.gotArgs, want)
	}
	for i := range want {
		if exec.gotArgs[i] != want[i] {
			t.Errorf("args[%d] = %v, want %v", i, exec.gotArgs[i], want[i])
		}
	}
}

func TestClaudeGenerateFailure(t *testing.T) {
	exec := &fakeExecutor{err: fmt.Errorf("command 'claude' failed: exit status 1: rate limited")}
	g := &implClaude{executor: exec, model: "m", logger: logger.New("error")}

	_, err := g.Generate(context.Background(), "p")
	if !errors.Is(err, ErrGeneration) {
		t.Errorf("error = %v, want ErrGeneration", err)
	}
	if !strings.Contains(err.Error(), "rate limited") {
		t.Errorf("error %q should surface the process stderr", err)
	}
}

func TestNewBackendSelection(t *testing.T) {
	tests := []struct {
		name       string
		backend    string
		wantGemini bool
	}{
		{"claude backend", "claude", false},
		{"gemini backend", "gemini", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{Backend: tt.backend}
			if err := cfg.Validate(); err != nil {
				t.Fatal(err)
			}

			g := New(cfg, &fakeExecutor{}, logger.New("error"))
			_, isGemini := g.(*implGemini)
			if isGemini != tt.wantGemini {
				t.Errorf("backend %q: gemini = %v, want %v", tt.backend, isGemini, tt.wantGemini)
			}
		})
	}
}

func TestGeminiKeysFromEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "key-a, key-b,")

	cfg := &config.Config{Gemini: config.GeminiConfig{APIKeys: []string{"key-cfg"}}}
	keys := geminiKeys(cfg)

	want := []string{"key-cfg", "key-a", "key-b"}
	if len(keys) != len(want) {
		t.Fatalf("keys = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("keys[%d] = %v, want %v", i, keys[i], want[i])
		}
	}
}

func TestGeminiGenerateNoKeys(t *testing.T) {
	g := &implGemini{model: "gemini-2.5-flash", logger: logger.New("error")}
	_, err := g.Generate(context.Background(), "p")
	if !errors.Is(err, ErrGeneration) {
		t.Errorf("error = %v, want ErrGeneration", err)
	}
}

func TestWriteSummaryMarkdown(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.md")
	if err := WriteSummary(path, "Some Video", "The summary body.\n"); err != nil {
		t.Fatalf("WriteSummary() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	got := string(data)

	if !strings.HasPrefix(got, "# Some Video\n") {
		t.Errorf("markdown missing title heading:\n%s", got)
	}
	if !strings.Contains(got, "The summary body.") {
		t.Errorf("markdown missing summary body:\n%s", got)
	}
}

func TestWriteSummaryDocx(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.docx")
	summary := "# Heading\n\nA paragraph with **bold** text.\n\n- point one\n- point two\n"
	if err := WriteSummary(path, "Some Video", summary); err != nil {
		t.Fatalf("WriteSummary() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("docx file is empty")
	}
}
