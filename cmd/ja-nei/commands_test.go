package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/ja-nei/config"
	"github.com/lixenwraith/ja-nei/itinerary"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd, ctx := newRootCommand()
	defer ctx.close()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestExportWritesFiles(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, "export", "--format", "txt", "--out", dir)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	path := filepath.Join(dir, "plan-2026-02-13.txt")
	if !strings.Contains(out, path) {
		t.Errorf("Expected output to name %s, got %q", path, out)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Expected exported file: %v", err)
	}
	if !strings.HasPrefix(string(data), "Euse Plan 13.02.2026\n\n17:30 — Abhole bim Bahnhof\n") {
		t.Errorf("Unexpected text export %q", data)
	}
}

func TestExportAll(t *testing.T) {
	dir := t.TempDir()

	if _, err := execute(t, "export", "--out", dir); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	for _, ext := range []string{"txt", "ics", "docx"} {
		if _, err := os.Stat(filepath.Join(dir, "plan-2026-02-13."+ext)); err != nil {
			t.Errorf("Expected %s export: %v", ext, err)
		}
	}
}

func TestExportToStdout(t *testing.T) {
	out, err := execute(t, "export", "--format", "ics", "--out", "-")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.HasPrefix(out, "BEGIN:VCALENDAR") {
		t.Errorf("Expected calendar on stdout, got %q", out)
	}
	if !strings.Contains(out, "Apéro am See") {
		t.Errorf("Expected plan entries in calendar, got %q", out)
	}
}

func TestExportErrors(t *testing.T) {
	_, err := execute(t, "export", "--format", "pdf", "--out", t.TempDir())
	if !errors.Is(err, itinerary.ErrUnknownFormat) {
		t.Errorf("Expected ErrUnknownFormat, got %v", err)
	}

	if _, err := execute(t, "export", "--format", "all", "--out", "-"); err == nil {
		t.Error("Expected error exporting all formats to stdout")
	}
}

func TestPlanPlainOutput(t *testing.T) {
	out, err := execute(t, "plan")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.Contains(out, "18:00 — Apéro am See") {
		t.Errorf("Expected plain plan lines, got %q", out)
	}
	if strings.Contains(out, "╭") {
		t.Errorf("Expected no table outside a terminal, got %q", out)
	}
}

func TestRenderPlanTable(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	plan, err := cfg.Plan()
	if err != nil {
		t.Fatal(err)
	}

	out := renderPlanTable(plan)
	for _, want := range []string{"╭", "Euse Plan 13.02.2026", "ZYT", "21:30", "Spaziergang under de Stärne"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected table to contain %q, got:\n%s", want, out)
		}
	}
}

func TestPlainColors(t *testing.T) {
	var buf bytes.Buffer
	t.Setenv("NO_COLOR", "")

	tests := []struct {
		mode string
		want bool
	}{
		{"never", true},
		{"always", false},
		{"auto", true}, // buffer is not a terminal
	}
	for _, tt := range tests {
		if got := plainColors(tt.mode, &buf); got != tt.want {
			t.Errorf("plainColors(%q): expected %v, got %v", tt.mode, tt.want, got)
		}
	}
}

func TestConfigInitValidateShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ja-nei.toml")

	out, err := execute(t, "config", "init", path)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.Contains(out, "created "+path) {
		t.Errorf("Unexpected init output %q", out)
	}

	if _, err := execute(t, "config", "init", path); err == nil {
		t.Error("Expected init to refuse overwriting")
	}

	out, err = execute(t, "--config", path, "config", "validate")
	if err != nil {
		t.Fatalf("Expected sample to validate, got %v", err)
	}
	if !strings.Contains(out, "config ok: "+path) {
		t.Errorf("Unexpected validate output %q", out)
	}

	out, err = execute(t, "--config", path, "config", "show")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	for _, want := range []string{"[evasion]", "max_scale = 2.5", "[[music.songs]]"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected shown config to contain %q, got:\n%s", want, out)
		}
	}
}

func TestInvalidConfigFailsEveryCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[music]\nvolume = 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	for _, args := range [][]string{
		{"--config", path, "config", "validate"},
		{"--config", path, "plan"},
	} {
		if _, err := execute(t, args...); !errors.Is(err, config.ErrInvalid) {
			t.Errorf("%v: expected ErrInvalid, got %v", args, err)
		}
	}
}

func TestFailedCommandStillFlushesDebugLog(t *testing.T) {
	t.Chdir(t.TempDir())

	cmd, ctx := newRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--debug", "export", "--format", "pdf", "--out", t.TempDir()})
	if err := cmd.Execute(); !errors.Is(err, itinerary.ErrUnknownFormat) {
		t.Fatalf("Expected ErrUnknownFormat, got %v", err)
	}
	if ctx.logFile == nil {
		t.Fatal("Expected debug log open after a failed command")
	}

	ctx.close()
	if ctx.logFile != nil {
		t.Error("Expected log file released on close")
	}
	data, err := os.ReadFile(filepath.Join(logDir, logFileName))
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "config loaded") {
		t.Errorf("Expected config load entry in the debug log, got %q", data)
	}

	// Closing twice is harmless
	ctx.close()
}
