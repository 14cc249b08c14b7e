package config

import (
	"testing"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.File != "" {
		t.Fatalf("expected no startup file, got %q", cfg.App.File)
	}
	if cfg.App.ShowFooter || cfg.Features.Verbose || cfg.Logging.Trace {
		t.Fatalf("expected all features off by default, got %+v", cfg)
	}
}

func TestLoadArgsPositionalFile(t *testing.T) {
	cfg, err := LoadArgs([]string{"-verbose", "notes.txt"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.File != "notes.txt" {
		t.Fatalf("expected startup file notes.txt, got %q", cfg.App.File)
	}
	if !cfg.App.Verbose {
		t.Fatalf("expected verbose enabled")
	}
}

func TestLoadArgsRejectsMultipleFiles(t *testing.T) {
	if _, err := LoadArgs([]string{"a.txt", "b.txt"}, nil); err == nil {
		t.Fatalf("expected error for two positional files")
	}
}

func TestEnvFallbacks(t *testing.T) {
	environ := []string{
		"PENNA_DIR=/tmp",
		"PENNA_FOOTER=true",
		"PENNA_TRACE=1",
		"PENNA_LOG_FILE=/tmp/penna.log",
	}
	cfg, err := LoadArgs(nil, environ)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Dir != "/tmp" {
		t.Fatalf("expected dir from env, got %q", cfg.App.Dir)
	}
	if !cfg.App.ShowFooter || !cfg.Logging.Trace {
		t.Fatalf("expected footer and trace from env, got %+v", cfg)
	}
	if cfg.Logging.FilePath != "/tmp/penna.log" {
		t.Fatalf("expected log file from env, got %q", cfg.Logging.FilePath)
	}
}

func TestFlagsOverrideEnv(t *testing.T) {
	cfg, err := LoadArgs([]string{"-footer=false"}, []string{"PENNA_FOOTER=true"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.ShowFooter {
		t.Fatalf("expected flag to override environment")
	}
}
