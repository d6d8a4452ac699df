package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danmuck/minectl/internal/messages"
	"github.com/danmuck/minectl/internal/testutil/testlog"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadConfigExample(t *testing.T) {
	testlog.Start(t)
	cfg, err := loadConfig("ex.config.toml")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Quantity != 120.5 {
		t.Fatalf("unexpected quantity: %v", cfg.Quantity)
	}
	if cfg.Locale != messages.LocalePortuguese {
		t.Fatalf("unexpected locale: %q", cfg.Locale)
	}
	if cfg.ServeAddr != "127.0.0.1:9090" {
		t.Fatalf("unexpected serve addr: %q", cfg.ServeAddr)
	}
	if len(cfg.CorsOrigins) != 1 || cfg.CorsOrigins[0] != "http://localhost:5173" {
		t.Fatalf("unexpected cors origins: %+v", cfg.CorsOrigins)
	}
}

func TestLoadConfigKeepsDefaults(t *testing.T) {
	testlog.Start(t)
	path := writeFile(t, "config.toml", "locale = \"en\"\n")
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Quantity != 50 {
		t.Fatalf("expected default quantity, got %v", cfg.Quantity)
	}
}

func TestLoadConfigZeroQuantityIsExplicit(t *testing.T) {
	testlog.Start(t)
	path := writeFile(t, "config.toml", "quantity = 0.0\n")
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Quantity != 0 {
		t.Fatalf("expected explicit zero quantity, got %v", cfg.Quantity)
	}
}

func TestLoadConfigUnknownKey(t *testing.T) {
	testlog.Start(t)
	path := writeFile(t, "config.toml", "depth = 3\n")
	if _, err := loadConfig(path); !errors.Is(err, errInvalidConfig) {
		t.Fatalf("expected errInvalidConfig, got %v", err)
	}
}

func TestParseArgsFlagsOverrideFile(t *testing.T) {
	testlog.Start(t)
	cfg, err := parseArgs([]string{"-config", "ex.config.toml", "-quantity", "-7", "-locale", "en"}, io.Discard)
	if err != nil {
		t.Fatalf("parse args: %v", err)
	}
	if cfg.Quantity != -7 {
		t.Fatalf("unexpected quantity: %v", cfg.Quantity)
	}
	if cfg.Locale != "en" {
		t.Fatalf("unexpected locale: %q", cfg.Locale)
	}
	if cfg.ServeAddr != "127.0.0.1:9090" {
		t.Fatalf("file value should survive: %q", cfg.ServeAddr)
	}
}

func TestParseArgsRejectsUnknownLocale(t *testing.T) {
	testlog.Start(t)
	if _, err := parseArgs([]string{"-locale", "fr"}, io.Discard); !errors.Is(err, errInvalidConfig) {
		t.Fatalf("expected errInvalidConfig, got %v", err)
	}
}

func TestParseArgsRejectsEmptyServeAddr(t *testing.T) {
	testlog.Start(t)
	if _, err := parseArgs([]string{"-serve", "-addr", " "}, io.Discard); !errors.Is(err, errInvalidConfig) {
		t.Fatalf("expected errInvalidConfig, got %v", err)
	}
}

func TestRunDefaultScenario(t *testing.T) {
	testlog.Start(t)
	var out bytes.Buffer
	if err := run(context.Background(), nil, &out, io.Discard); err != nil {
		t.Fatalf("run: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) != 7 {
		t.Fatalf("expected 7 lines, got %q", lines)
	}
	if lines[5] != messages.Default().Record(50) {
		t.Fatalf("unexpected record line: %q", lines[5])
	}
}

func TestRunCustomCatalog(t *testing.T) {
	testlog.Start(t)
	catalog := writeFile(t, "catalog.toml", "[messages]\nproduction_recorded = \"ledger: {quantity}\"\n")
	var out bytes.Buffer
	if err := run(context.Background(), []string{"-catalog", catalog, "-quantity", "0"}, &out, io.Discard); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "ledger: 0\n") {
		t.Fatalf("unexpected output: %q", out.String())
	}
}
