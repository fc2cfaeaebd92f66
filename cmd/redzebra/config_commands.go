package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"redzebra/internal/config"
)

func newConfigCommand(ctx *commandContext) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}

	configCmd.AddCommand(newConfigInitCommand(ctx))
	configCmd.AddCommand(newConfigShowCommand(ctx))
	configCmd.AddCommand(newConfigSetCommand(ctx))
	configCmd.AddCommand(newConfigValidateCommand(ctx))

	return configCmd
}

func newConfigInitCommand(ctx *commandContext) *cobra.Command {
	var overwrite bool

	cmd := &cobra.Command{
		Use:         "init",
		Short:       "Create a configuration file with default settings",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := ctx.resolvedConfigPath()
			if err != nil {
				return fmt.Errorf("resolve config path: %w", err)
			}

			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("config file already exists at %s (use --overwrite to replace it)", target)
				} else if !os.IsNotExist(err) {
					return fmt.Errorf("check config path: %w", err)
				}
			}

			if err := config.CreateSample(target); err != nil {
				return fmt.Errorf("create sample config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote default configuration to %s\n", target)
			return nil
		},
	}

	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing configuration if present")
	return cmd
}

func newConfigShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if jsonOut {
				return writeJSON(cmd, configView(cfg, ctx.configPath))
			}
			rows := [][]string{
				{"config path", ctx.configPath},
				{"editor.font_family", fmt.Sprintf("%d (%s)", cfg.Editor.FontFamily, cfg.Editor.FontName())},
				{"editor.font_size", strconv.FormatFloat(cfg.Editor.FontSize, 'f', -1, 64)},
				{"paths.documents_dir", cfg.Paths.DocumentsDir},
				{"paths.log_dir", valueOrDash(cfg.Paths.LogDir)},
				{"decorate.zalgo_max_marks", strconv.Itoa(cfg.Decorate.ZalgoMaxMarks)},
				{"logging.format", cfg.Logging.Format},
				{"logging.level", cfg.Logging.Level},
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(out, []string{"Setting", "Value"}, rows, nil))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output settings as JSON")
	return cmd
}

func newConfigSetCommand(ctx *commandContext) *cobra.Command {
	var fontFamily int
	var fontSize float64
	var zalgoMax int
	var documentsDir string

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update settings and save them",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			changed := false
			if flags.Changed("font-family") {
				cfg.Editor.FontFamily = fontFamily
				changed = true
			}
			if flags.Changed("font-size") {
				cfg.Editor.FontSize = fontSize
				changed = true
			}
			if flags.Changed("zalgo-max-marks") {
				cfg.Decorate.ZalgoMaxMarks = zalgoMax
				changed = true
			}
			if flags.Changed("documents-dir") {
				dir, err := config.ExpandPath(strings.TrimSpace(documentsDir))
				if err != nil {
					return err
				}
				cfg.Paths.DocumentsDir = dir
				changed = true
			}
			if !changed {
				return errors.New("nothing to update; pass at least one of --font-family, --font-size, --zalgo-max-marks, --documents-dir")
			}

			if err := cfg.Save(ctx.configPath); err != nil {
				return fmt.Errorf("save config: %w", err)
			}
			ctx.logger().Info("config saved", "path", ctx.configPath)
			fmt.Fprintf(cmd.OutOrStdout(), "Saved settings to %s\n", ctx.configPath)
			return nil
		},
	}

	cmd.Flags().IntVar(&fontFamily, "font-family", config.FontFamilyMenlo, "Font family index (0 = Menlo, 1 = system)")
	cmd.Flags().Float64Var(&fontSize, "font-size", 17, "Editor font size in points")
	cmd.Flags().IntVar(&zalgoMax, "zalgo-max-marks", 8, "Maximum zalgo marks per pool and character")
	cmd.Flags().StringVar(&documentsDir, "documents-dir", "", "Directory where new documents are created")
	return cmd
}

func newConfigValidateCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := ctx.ensureConfig(); err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config path: %s\n", ctx.configPath)
			if _, err := os.Stat(ctx.configPath); os.IsNotExist(err) {
				fmt.Fprintln(out, "Config file did not exist; defaults were used")
			}
			fmt.Fprintln(out, "Configuration valid")
			return nil
		},
	}
}

type settingsView struct {
	Path          string  `json:"path"`
	FontFamily    int     `json:"font_family"`
	FontName      string  `json:"font_name"`
	FontSize      float64 `json:"font_size"`
	DocumentsDir  string  `json:"documents_dir"`
	LogDir        string  `json:"log_dir,omitempty"`
	ZalgoMaxMarks int     `json:"zalgo_max_marks"`
	LogFormat     string  `json:"log_format"`
	LogLevel      string  `json:"log_level"`
}

func configView(cfg *config.Config, path string) settingsView {
	return settingsView{
		Path:          path,
		FontFamily:    cfg.Editor.FontFamily,
		FontName:      cfg.Editor.FontName(),
		FontSize:      cfg.Editor.FontSize,
		DocumentsDir:  cfg.Paths.DocumentsDir,
		LogDir:        cfg.Paths.LogDir,
		ZalgoMaxMarks: cfg.Decorate.ZalgoMaxMarks,
		LogFormat:     cfg.Logging.Format,
		LogLevel:      cfg.Logging.Level,
	}
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}
