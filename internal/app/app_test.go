package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/riskibarqy/roster-manager/internal/config"
)

func TestNewSession_FileBackendEndToEnd(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Config{
		Backend:        config.BackendFile,
		FileFormat:     config.FormatText,
		InputFile:      filepath.Join(dir, "roster.txt"),
		OutputFile:     filepath.Join(dir, "update.txt"),
		MalformedLines: config.MalformedFail,
	}
	if err := os.WriteFile(cfg.InputFile, []byte("10 3\n20 9\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	var out bytes.Buffer
	session, closeFn, err := NewSession(cfg, strings.NewReader("5\n5\n7\n"), &out, nil)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	t.Cleanup(func() { _ = closeFn() })

	if err := session.Run(context.Background()); err != nil {
		t.Fatalf("run session: %v", err)
	}

	raw, err := os.ReadFile(cfg.OutputFile)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(raw) != "20 9\n" {
		t.Fatalf("unexpected output file: %q", raw)
	}
	input, _ := os.ReadFile(cfg.InputFile)
	if string(input) != "10 3\n20 9\n" {
		t.Fatalf("input file must not be modified, got %q", input)
	}
	if !strings.Contains(out.String(), "Players cut from roster:\n10\n") {
		t.Fatalf("unexpected transcript:\n%s", out.String())
	}
}

func TestNewSession_MalformedInputFailsStartup(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Config{
		Backend:        config.BackendFile,
		FileFormat:     config.FormatText,
		InputFile:      filepath.Join(dir, "roster.txt"),
		OutputFile:     filepath.Join(dir, "update.txt"),
		MalformedLines: config.MalformedFail,
	}
	if err := os.WriteFile(cfg.InputFile, []byte("10 three\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	session, closeFn, err := NewSession(cfg, strings.NewReader("7\n"), &bytes.Buffer{}, nil)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	t.Cleanup(func() { _ = closeFn() })

	if err := session.Run(context.Background()); err == nil {
		t.Fatalf("expected startup failure for malformed roster file")
	}
	if _, err := os.Stat(cfg.OutputFile); !os.IsNotExist(err) {
		t.Fatalf("output file must not be written on startup failure")
	}
}

func TestNewSession_MemoryBackendIsSeeded(t *testing.T) {
	cfg := config.Config{
		Backend:        config.BackendMemory,
		InputSnapshot:  "roster",
		OutputSnapshot: "update",
	}

	var out bytes.Buffer
	session, closeFn, err := NewSession(cfg, strings.NewReader("6\n7\n"), &out, nil)
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	t.Cleanup(func() { _ = closeFn() })

	if err := session.Run(context.Background()); err != nil {
		t.Fatalf("run session: %v", err)
	}
	if !strings.Contains(out.String(), "Number Rating\n   4      5\n") {
		t.Fatalf("expected seeded roster in output:\n%s", out.String())
	}
}

func TestNewSession_UnknownBackend(t *testing.T) {
	if _, _, err := NewSession(config.Config{Backend: "redis"}, strings.NewReader(""), &bytes.Buffer{}, nil); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}
