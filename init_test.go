package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fennwick/csconform/internal/config"
)

func runInitCmd(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := runInit(args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestInitWritesLoadableConfig(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), config.DefaultPath)

	_, errOut, err := runInitCmd(t, path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(errOut, "wrote "+path) {
		t.Errorf("stderr = %q", errOut)
	}

	cfg, err := config.Load(path, true)
	if err != nil {
		t.Fatalf("generated config does not load: %v", err)
	}
	if len(cfg.Header) != 2 || cfg.Header[0] != config.Default().Header[0] {
		t.Errorf("header = %v", cfg.Header)
	}
	if cfg.Workers != 0 {
		t.Errorf("workers = %d", cfg.Workers)
	}
	if len(cfg.Rules) != 0 {
		t.Errorf("starter config must leave rule overrides commented out: %v", cfg.Rules)
	}
}

func TestInitDryRun(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), config.DefaultPath)

	out, _, err := runInitCmd(t, "-dry-run", path)
	if err != nil {
		t.Fatal(err)
	}
	if out != defaultConfigFile() {
		t.Error("dry run output differs from generated file content")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("dry run must not write the file")
	}
}

func TestInitRefusesExistingFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), config.DefaultPath)
	if err := os.WriteFile(path, []byte("header: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, _, err := runInitCmd(t, path); err == nil {
		t.Fatal("expected refusal to overwrite")
	}

	if _, _, err := runInitCmd(t, "-force", path); err != nil {
		t.Fatalf("-force: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != defaultConfigFile() {
		t.Error("-force did not replace the file")
	}
}
