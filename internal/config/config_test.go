package config

import (
	"os"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "empty config gets defaults",
			config:  Config{},
			wantErr: false,
		},
		{
			name:    "explicit claude backend",
			config:  Config{Backend: "claude"},
			wantErr: false,
		},
		{
			name:    "explicit gemini backend",
			config:  Config{Backend: "gemini"},
			wantErr: false,
		},
		{
			name:    "unknown backend",
			config:  Config{Backend: "openai"},
			wantErr: true,
		},
		{
			name:    "min chars above max chars",
			config:  Config{Limits: LimitsConfig{MinChars: 200, MaxChars: 100}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	cfg := Config{}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Model != DefaultModel {
		t.Errorf("Model = %v, want %v", cfg.Model, DefaultModel)
	}
	if cfg.Backend != "claude" {
		t.Errorf("Backend = %v, want claude", cfg.Backend)
	}
	if cfg.Language != "en" {
		t.Errorf("Language = %v, want en", cfg.Language)
	}
	if cfg.Limits.MaxChars != 100_000 {
		t.Errorf("MaxChars = %v, want 100000", cfg.Limits.MaxChars)
	}
	if cfg.Limits.MinChars != 50 {
		t.Errorf("MinChars = %v, want 50", cfg.Limits.MinChars)
	}
}

func TestValidateGeminiDefaultModel(t *testing.T) {
	cfg := Config{Backend: "gemini"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if cfg.Model != DefaultGeminiModel {
		t.Errorf("Model = %v, want %v", cfg.Model, DefaultGeminiModel)
	}
}

func TestLoad(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
model: "claude-sonnet-4-5"
backend: "claude"
language: "en"

limits:
  max_chars: 50000

logging:
  level: "debug"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Model != "claude-sonnet-4-5" {
		t.Errorf("Model = %v, want claude-sonnet-4-5", cfg.Model)
	}
	if cfg.Limits.MaxChars != 50000 {
		t.Errorf("MaxChars = %v, want 50000", cfg.Limits.MaxChars)
	}
	if cfg.Limits.MinChars != 50 {
		t.Errorf("MinChars = %v, want default 50", cfg.Limits.MinChars)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %v, want debug", cfg.Logging.Level)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	if cfg.Model != DefaultModel {
		t.Errorf("Model = %v, want %v", cfg.Model, DefaultModel)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	if _, err := Load("nonexistent.yaml"); err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}
