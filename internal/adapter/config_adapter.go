package adapter

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	m "github.com/mouse-blink/inlay/internal/model"
)

// ConfigFileName is the project configuration file looked up by the CLI.
const ConfigFileName = "inlay.toml"

// ConfigAdapter locates, reads and writes project configuration files.
type ConfigAdapter interface {
	// Find walks up from startDir looking for ConfigFileName.
	Find(startDir m.Path) (m.Path, bool, error)
	// Load decodes the configuration file at path.
	Load(path m.Path) (m.ProjectConfig, error)
	// Write creates a configuration file at path. It refuses to overwrite.
	Write(path m.Path, cfg m.ProjectConfig) error
}

// TOMLConfigAdapter stores project configuration as TOML.
type TOMLConfigAdapter struct{}

// NewTOMLConfigAdapter constructs a TOMLConfigAdapter.
func NewTOMLConfigAdapter() *TOMLConfigAdapter {
	return &TOMLConfigAdapter{}
}

// Find walks up from startDir until it finds a configuration file.
func (a *TOMLConfigAdapter) Find(startDir m.Path) (m.Path, bool, error) {
	start := string(startDir)
	if start == "" {
		start = "."
	}

	dir, err := filepath.Abs(start)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return m.Path(candidate), true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}

		dir = parent
	}
}

// Load decodes and validates the configuration at path.
func (a *TOMLConfigAdapter) Load(path m.Path) (m.ProjectConfig, error) {
	var cfg m.ProjectConfig

	meta, err := toml.DecodeFile(string(path), &cfg)
	if err != nil {
		return m.ProjectConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return m.ProjectConfig{}, fmt.Errorf("%s: unknown key %s", path, undecoded[0])
	}

	for i, lang := range cfg.CustomLanguages {
		if strings.TrimSpace(lang.Name) == "" {
			return m.ProjectConfig{}, fmt.Errorf("%s: custom_languages[%d] is missing a name", path, i)
		}

		if len(lang.Extensions) == 0 {
			return m.ProjectConfig{}, fmt.Errorf("%s: custom language %q has no extensions", path, lang.Name)
		}
	}

	for _, name := range cfg.Languages {
		if _, ok := m.LookupLanguage(name, cfg.CustomLanguages); !ok {
			return m.ProjectConfig{}, fmt.Errorf("%s: unknown language %q", path, name)
		}
	}

	if cfg.Parallel < 0 {
		return m.ProjectConfig{}, fmt.Errorf("%s: parallel must not be negative", path)
	}

	return cfg, nil
}

// encodeConfig serializes cfg. Tests replace it to simulate encoder failures.
var encodeConfig = func(w io.Writer, cfg m.ProjectConfig) error {
	return toml.NewEncoder(w).Encode(cfg)
}

// Write encodes cfg as TOML into a new file at path. A failed write leaves no
// file behind, so a later Write can still create it.
func (a *TOMLConfigAdapter) Write(path m.Path, cfg m.ProjectConfig) (err error) {
	var buf bytes.Buffer
	if err := encodeConfig(&buf, cfg); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}

	f, err := os.OpenFile(string(path), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("project already initialized: %s exists", path)
		}

		return err
	}

	defer func() {
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}

		if err != nil {
			_ = os.Remove(string(path))
		}
	}()

	if _, err := f.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
