package main

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"redzebra/internal/config"
	"redzebra/internal/logging"
)

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configPath string
	configErr  error

	log *slog.Logger
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

// ensureConfig loads settings once per invocation. Settings repaired during
// normalization are written back when a file already exists.
func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolved, exists, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = resolved
		c.log = logger.With("component", "cli")

		if exists && cfg.NeedsSave() {
			if err := cfg.Save(resolved); err != nil {
				c.configErr = fmt.Errorf("save repaired config: %w", err)
				return
			}
			c.log.Info("repaired config saved", "path", resolved)
		}
	})
	return c.config, c.configErr
}

// resolvedConfigPath returns the settings file path without requiring it to load.
func (c *commandContext) resolvedConfigPath() (string, error) {
	if c.configPath != "" {
		return c.configPath, nil
	}
	if c.configFlag != nil && strings.TrimSpace(*c.configFlag) != "" {
		return config.ExpandPath(strings.TrimSpace(*c.configFlag))
	}
	return config.DefaultConfigPath()
}

func (c *commandContext) logger() *slog.Logger {
	if c.log == nil {
		return logging.NewNop()
	}
	return c.log
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
