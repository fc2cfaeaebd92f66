package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

type cliTestEnv struct {
	baseDir    string
	configPath string
	docsDir    string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	t.Setenv("HOME", base)
	docs := filepath.Join(base, "docs")
	t.Setenv("REDZEBRA_DOCUMENTS_DIR", docs)

	return &cliTestEnv{
		baseDir:    base,
		configPath: filepath.Join(base, "config.toml"),
		docsDir:    docs,
	}
}

// run executes the root command with stdin and returns everything written to
// stdout and stderr.
func (e *cliTestEnv) run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--config", e.configPath}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func (e *cliTestEnv) mustRun(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	out, err := e.run(t, stdin, args...)
	if err != nil {
		t.Fatalf("redzebra %v: %v\noutput: %s", args, err, out)
	}
	return out
}

func lineContaining(output, needle string) string {
	for line := range strings.SplitSeq(output, "\n") {
		if strings.Contains(line, needle) {
			return line
		}
	}
	return ""
}
