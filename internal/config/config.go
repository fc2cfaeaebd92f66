package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/pelletier/go-toml/v2"

	"redzebra/internal/fileutil"
)

// Font family indexes stored in the settings file.
const (
	FontFamilyMenlo  = 0
	FontFamilySystem = 1
)

// Editor contains the text view appearance settings.
type Editor struct {
	// FontFamily is 0 for Menlo; any other value selects the system font.
	FontFamily int     `toml:"font_family"`
	FontSize   float64 `toml:"font_size"`
}

// FontName returns the display name of the configured font family.
func (e Editor) FontName() string {
	if e.FontFamily == FontFamilyMenlo {
		return "Menlo"
	}
	return "System"
}

// Paths contains directory configuration.
type Paths struct {
	DocumentsDir string `toml:"documents_dir"`
	LogDir       string `toml:"log_dir"`
}

// Decorate contains settings for the text decorations.
type Decorate struct {
	ZalgoMaxMarks int `toml:"zalgo_max_marks"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all user settings.
type Config struct {
	Editor   Editor   `toml:"editor"`
	Paths    Paths    `toml:"paths"`
	Decorate Decorate `toml:"decorate"`
	Logging  Logging  `toml:"logging"`

	needsSave bool
}

// NeedsSave reports whether normalization repaired a value that should be
// written back to disk.
func (c *Config) NeedsSave() bool {
	return c.needsSave
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

// Load locates, parses, and validates a configuration file. A missing file is
// not an error; defaults are returned and exists is false.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

// Save writes the configuration to path as TOML. The write is atomic and is
// serialized with other writers through a lock file next to path.
func (c *Config) Save(path string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	target, err := expandPath(path)
	if err != nil {
		return err
	}
	if target == "" {
		return errors.New("save config: path is required")
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	lock := flock.New(target + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("lock config: %w", err)
	}
	defer lock.Unlock() //nolint:errcheck

	if err := fileutil.WriteFileAtomic(target, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	c.needsSave = false
	return nil
}

// CreateSample writes the default configuration to path.
func CreateSample(path string) error {
	cfg := Default()
	return cfg.Save(path)
}

// EnsureDirectories creates the documents directory.
func (c *Config) EnsureDirectories() error {
	if strings.TrimSpace(c.Paths.DocumentsDir) == "" {
		return nil
	}
	if err := os.MkdirAll(c.Paths.DocumentsDir, 0o755); err != nil {
		return fmt.Errorf("create directory %q: %w", c.Paths.DocumentsDir, err)
	}
	return nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path == "" {
		path = defaultConfigPath
	}
	expanded, err := expandPath(path)
	if err != nil {
		return "", false, err
	}
	info, err := os.Stat(expanded)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return expanded, false, nil
		}
		return "", false, fmt.Errorf("stat config: %w", err)
	}
	if info.IsDir() {
		return "", false, fmt.Errorf("config path %s is a directory", expanded)
	}
	return expanded, true, nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}
