package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"redzebra/internal/config"
	"redzebra/internal/filename"
	"redzebra/internal/fileutil"
)

// nameRejectedError carries the user-facing hint for a rejected document name
// while still matching the filename sentinel errors.
type nameRejectedError struct {
	err  error
	hint string
}

func (e *nameRejectedError) Error() string { return e.hint }

func (e *nameRejectedError) Unwrap() error { return e.err }

func rejectionHint(rule filename.Rule) string {
	switch rule {
	case filename.RuleStartsWithLetter:
		return `You have to begin your file name with a letter ("a-z" or "A-Z")`
	case filename.RuleHasExtension:
		return `You have to give your file an extension (e.g.: ".txt", ".swift" etc.)`
	case filename.RuleAllowedCharacters:
		return `You can only use characters "a-z", "A-Z", "0-9", "_", "-", "(", ")", "." and spaces, followed by an extension name (e.g.: "Hello_World_v2.swift")`
	default:
		return "Invalid file name"
	}
}

func newNewCommand(ctx *commandContext) *cobra.Command {
	var dirFlag string

	cmd := &cobra.Command{
		Use:   "new <name>",
		Short: "Create an empty document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			name := args[0]
			if err := filename.Validate(name); err != nil {
				ctx.logger().Debug("document name rejected", "name", name, "rule", filename.RuleOf(err).String())
				return &nameRejectedError{err: err, hint: rejectionHint(filename.RuleOf(err))}
			}

			dir := cfg.Paths.DocumentsDir
			if strings.TrimSpace(dirFlag) != "" {
				if dir, err = config.ExpandPath(dirFlag); err != nil {
					return err
				}
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("create directory %q: %w", dir, err)
				}
			} else if err := cfg.EnsureDirectories(); err != nil {
				return err
			}

			path := filepath.Join(dir, name)
			if err := fileutil.CreateExclusive(path, 0o644); err != nil {
				if errors.Is(err, fs.ErrExist) {
					return fmt.Errorf("document %s already exists", path)
				}
				return fmt.Errorf("unable to create new document: %w", err)
			}
			ctx.logger().Info("document created", "path", path)
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&dirFlag, "dir", "d", "", "Directory for the new document (defaults to paths.documents_dir)")
	return cmd
}
