package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"redzebra/internal/config"
	"redzebra/internal/glyph"
)

func newZalgoCommand(ctx *commandContext) *cobra.Command {
	var seed uint64
	var maxMarks int
	var toClipboard bool

	cmd := &cobra.Command{
		Use:   "zalgo [file]",
		Short: "Mangle text with random combining marks",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("seed") {
				seed = rand.Uint64()
			}
			limit := cfg.Decorate.ZalgoMaxMarks
			if cmd.Flags().Changed("max") {
				if maxMarks < 0 || maxMarks > config.MaxZalgoMarks {
					return fmt.Errorf("--max must be between 0 and %d", config.MaxZalgoMarks)
				}
				limit = maxMarks
			}

			z := glyph.NewZalgo(glyph.NewSource(seed), glyph.WithMaxMarks(limit))
			ctx.logger().Debug("zalgo transform", "seed", seed, "max_marks", z.MaxMarks())
			return emitText(cmd, z.Transform(text), toClipboard)
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for reproducible output")
	cmd.Flags().IntVar(&maxMarks, "max", 0, "Maximum marks per pool and character (defaults to config)")
	cmd.Flags().BoolVar(&toClipboard, "copy", false, "Copy the result to the clipboard instead of printing it")
	return cmd
}

func newStrikeCommand(ctx *commandContext) *cobra.Command {
	var toClipboard bool

	cmd := &cobra.Command{
		Use:   "strike [file]",
		Short: "Strike through every character",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			ctx.logger().Debug("strike transform", "bytes", len(text))
			return emitText(cmd, glyph.StrikeThrough(text), toClipboard)
		},
	}

	cmd.Flags().BoolVar(&toClipboard, "copy", false, "Copy the result to the clipboard instead of printing it")
	return cmd
}

func newCleanCommand(ctx *commandContext) *cobra.Command {
	var toClipboard bool

	cmd := &cobra.Command{
		Use:   "clean [file]",
		Short: "Remove combining marks added by zalgo or strike",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			ctx.logger().Debug("strip transform", "bytes", len(text))
			return emitText(cmd, glyph.Strip(text), toClipboard)
		},
	}

	cmd.Flags().BoolVar(&toClipboard, "copy", false, "Copy the result to the clipboard instead of printing it")
	return cmd
}
