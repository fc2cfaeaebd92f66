package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeEditor()
	c.normalizeDecorate()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	if value, ok := os.LookupEnv("REDZEBRA_DOCUMENTS_DIR"); ok && strings.TrimSpace(value) != "" {
		c.Paths.DocumentsDir = strings.TrimSpace(value)
	}
	if strings.TrimSpace(c.Paths.DocumentsDir) == "" {
		c.Paths.DocumentsDir = defaultDocumentsDir
	}
	var err error
	if c.Paths.DocumentsDir, err = expandPath(c.Paths.DocumentsDir); err != nil {
		return fmt.Errorf("paths.documents_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(strings.TrimSpace(c.Paths.LogDir)); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

// normalizeEditor repairs editor values that would fail validation. A fresh
// install reads back a font size of 0, so anything under the minimum falls back
// to the default; oversized fonts are clamped. Repaired values are flagged for
// saving.
func (c *Config) normalizeEditor() {
	switch {
	case c.Editor.FontSize < minFontSize:
		c.Editor.FontSize = defaultFontSize
		c.needsSave = true
	case c.Editor.FontSize > maxFontSize:
		c.Editor.FontSize = maxFontSize
		c.needsSave = true
	}
	if c.Editor.FontFamily < 0 {
		c.Editor.FontFamily = defaultFontFamily
		c.needsSave = true
	}
}

func (c *Config) normalizeDecorate() {
	clamped := min(max(c.Decorate.ZalgoMaxMarks, 0), MaxZalgoMarks)
	if clamped != c.Decorate.ZalgoMaxMarks {
		c.Decorate.ZalgoMaxMarks = clamped
		c.needsSave = true
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
