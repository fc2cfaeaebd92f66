package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateEditor(); err != nil {
		return err
	}
	if err := c.validateDecorate(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateEditor() error {
	if c.Editor.FontFamily < 0 {
		return errors.New("editor.font_family must be 0 (Menlo) or a positive index (system font)")
	}
	if c.Editor.FontSize < minFontSize || c.Editor.FontSize > maxFontSize {
		return fmt.Errorf("editor.font_size must be between %d and %d", minFontSize, maxFontSize)
	}
	return nil
}

func (c *Config) validateDecorate() error {
	if c.Decorate.ZalgoMaxMarks < 0 || c.Decorate.ZalgoMaxMarks > MaxZalgoMarks {
		return fmt.Errorf("decorate.zalgo_max_marks must be between 0 and %d", MaxZalgoMarks)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
