package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"redzebra/internal/config"
)

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

// readInput returns the text of the file named by args[0], or stdin when no
// file (or "-") is given.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 && args[0] != "-" {
		path, err := config.ExpandPath(args[0])
		if err != nil {
			return "", err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", args[0], err)
		}
		return string(data), nil
	}

	in := cmd.InOrStdin()
	if isTerminal(in) {
		return "", errors.New("no input: pass a file or pipe text on stdin")
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}

// emitText writes a transformed text to stdout, or to the clipboard when
// toClipboard is set.
func emitText(cmd *cobra.Command, text string, toClipboard bool) error {
	out := cmd.OutOrStdout()
	if toClipboard {
		if err := writeClipboard(text); err != nil {
			return fmt.Errorf("copy to clipboard: %w (install xclip, xsel or wl-clipboard on Linux)", err)
		}
		fmt.Fprintln(out, "Copied to clipboard.")
		return nil
	}
	fmt.Fprint(out, text)
	if text != "" && !strings.HasSuffix(text, "\n") {
		fmt.Fprintln(out)
	}
	return nil
}

func isTerminal(v any) bool {
	file, ok := v.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
