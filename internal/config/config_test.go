package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"redzebra/internal/config"
	"redzebra/internal/testsupport"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv("REDZEBRA_DOCUMENTS_DIR", "")

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	wantPath := filepath.Join(tempHome, ".config", "redzebra", "config.toml")
	if resolved != wantPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, wantPath)
	}
	wantDocs := filepath.Join(tempHome, "Documents", "RedZebra")
	if cfg.Paths.DocumentsDir != wantDocs {
		t.Fatalf("unexpected documents dir: got %q want %q", cfg.Paths.DocumentsDir, wantDocs)
	}
	if cfg.Editor.FontSize != 17 {
		t.Fatalf("expected default font size 17, got %v", cfg.Editor.FontSize)
	}
	if cfg.Editor.FontName() != "Menlo" {
		t.Fatalf("expected Menlo by default, got %q", cfg.Editor.FontName())
	}
	if cfg.Decorate.ZalgoMaxMarks != 8 {
		t.Fatalf("expected zalgo max marks 8, got %d", cfg.Decorate.ZalgoMaxMarks)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "warn" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if cfg.NeedsSave() {
		t.Fatal("defaults should not need saving")
	}
}

func TestLoadRepairsUnsetFontSize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := "[editor]\nfont_family = 1\nfont_size = 0\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to exist")
	}
	if cfg.Editor.FontSize != 17 {
		t.Fatalf("expected font size repaired to 17, got %v", cfg.Editor.FontSize)
	}
	if cfg.Editor.FontName() != "System" {
		t.Fatalf("expected system font, got %q", cfg.Editor.FontName())
	}
	if !cfg.NeedsSave() {
		t.Fatal("expected repaired config to need saving")
	}

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if cfg.NeedsSave() {
		t.Fatal("expected NeedsSave cleared after Save")
	}
	reloaded, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.Editor.FontSize != 17 || reloaded.NeedsSave() {
		t.Fatalf("expected persisted font size, got %+v needsSave=%v", reloaded.Editor, reloaded.NeedsSave())
	}
}

func TestSaveRoundTrip(t *testing.T) {
	t.Setenv("REDZEBRA_DOCUMENTS_DIR", "")
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.toml")

	cfg := config.Default()
	cfg.Editor.FontFamily = config.FontFamilySystem
	cfg.Editor.FontSize = 22.5
	cfg.Paths.DocumentsDir = filepath.Join(dir, "docs")
	cfg.Decorate.ZalgoMaxMarks = 3
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read saved config: %v", err)
	}
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		t.Fatalf("saved config is not valid TOML: %v", err)
	}
	if _, ok := raw["editor"]; !ok {
		t.Fatalf("expected editor table in %s", data)
	}

	loaded, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if loaded.Editor != cfg.Editor {
		t.Fatalf("editor mismatch: got %+v want %+v", loaded.Editor, cfg.Editor)
	}
	if loaded.Paths.DocumentsDir != cfg.Paths.DocumentsDir {
		t.Fatalf("documents dir mismatch: %q", loaded.Paths.DocumentsDir)
	}
	if loaded.Decorate.ZalgoMaxMarks != 3 {
		t.Fatalf("zalgo max marks mismatch: %d", loaded.Decorate.ZalgoMaxMarks)
	}
}

func TestSaveRejectsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := config.Default()
	cfg.Editor.FontSize = 500
	if err := cfg.Save(path); err == nil {
		t.Fatal("expected Save to reject invalid font size")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no file written, stat err=%v", err)
	}
}

func TestDocumentsDirEnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("REDZEBRA_DOCUMENTS_DIR", dir)

	cfg, _, _, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Paths.DocumentsDir != dir {
		t.Fatalf("expected env override %q, got %q", dir, cfg.Paths.DocumentsDir)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
		want   string
	}{
		{"negative family", func(c *config.Config) { c.Editor.FontFamily = -1 }, "editor.font_family"},
		{"font too small", func(c *config.Config) { c.Editor.FontSize = 4 }, "editor.font_size"},
		{"font too large", func(c *config.Config) { c.Editor.FontSize = 97 }, "editor.font_size"},
		{"zalgo negative", func(c *config.Config) { c.Decorate.ZalgoMaxMarks = -1 }, "decorate.zalgo_max_marks"},
		{"zalgo too many", func(c *config.Config) { c.Decorate.ZalgoMaxMarks = 33 }, "decorate.zalgo_max_marks"},
		{"log format", func(c *config.Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"log level", func(c *config.Config) { c.Logging.Level = "loud" }, "logging.level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("expected error mentioning %q, got %v", tt.want, err)
			}
		})
	}
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[editor\nfont_size = "), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(path); err == nil || !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("expected parse error, got %v", err)
	}
}

func TestExpandPathTilde(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	got, err := config.ExpandPath("~/notes")
	if err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	if got != filepath.Join(home, "notes") {
		t.Fatalf("ExpandPath = %q", got)
	}
}

func TestSaveCreatesLockFileAlongside(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithFont(config.FontFamilySystem, 12))
	path := filepath.Join(t.TempDir(), "config.toml")
	testsupport.WriteConfig(t, path, cfg)

	if _, err := os.Stat(path + ".lock"); err != nil {
		t.Fatalf("expected lock file next to config: %v", err)
	}
	loaded, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if loaded.Editor.FontSize != 12 || loaded.Editor.FontName() != "System" {
		t.Fatalf("unexpected editor settings %+v", loaded.Editor)
	}
}

func TestLoadRepairsOutOfRangeValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[editor]\nfont_family = -2\nfont_size = 120\n\n[decorate]\nzalgo_max_marks = 500\n"
	testsupport.WriteText(t, path, content)

	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Editor.FontSize != 96 {
		t.Fatalf("expected font size clamped to 96, got %v", cfg.Editor.FontSize)
	}
	if cfg.Editor.FontFamily != config.FontFamilyMenlo {
		t.Fatalf("expected negative font family reset to Menlo, got %d", cfg.Editor.FontFamily)
	}
	if cfg.Decorate.ZalgoMaxMarks != config.MaxZalgoMarks {
		t.Fatalf("expected zalgo max marks clamped to %d, got %d", config.MaxZalgoMarks, cfg.Decorate.ZalgoMaxMarks)
	}
	if !cfg.NeedsSave() {
		t.Fatal("expected repaired config to need saving")
	}
}
