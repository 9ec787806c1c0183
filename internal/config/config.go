package config

import (
    "errors"
    "fmt"
    "os"
    "path/filepath"
    "strings"

    "github.com/pelletier/go-toml/v2"
)

// Store backends.
const (
    StoreMemory = "memory"
    StoreDir    = "dir"
    StoreSQLite = "sqlite"
)

// Diff views.
const (
    DiffUnified    = "unified"
    DiffSideBySide = "side-by-side"
)

const (
    dirName  = ".statepad"
    fileName = "config.toml"
)

// Config is the on-disk statepad configuration (~/.statepad/config.toml).
// Flags override whatever is loaded here.
type Config struct {
    Store          string `toml:"store"`           // memory | dir | sqlite
    DataDir        string `toml:"data_dir"`        // where dir/sqlite keep documents
    Suffix         string `toml:"suffix"`          // appended to prompted names
    ConfirmDiscard bool   `toml:"confirm_discard"` // ask before new/open drops unsaved edits
    NoColor        bool   `toml:"no_color"`
    Verbose        bool   `toml:"verbose"`
    LogFile        string `toml:"log_file,omitempty"`
    DiffView       string `toml:"diff_view"` // unified | side-by-side
}

// Default returns the built-in configuration.
func Default() *Config {
    return &Config{
        Store:          StoreDir,
        DataDir:        filepath.Join(HomeDir(), "documents"),
        Suffix:         ".txt",
        ConfirmDiscard: true,
        DiffView:       DiffUnified,
    }
}

// HomeDir is the statepad state directory, ~/.statepad when the home
// directory is known and ./.statepad otherwise.
func HomeDir() string {
    if h, err := os.UserHomeDir(); err == nil && h != "" {
        return filepath.Join(h, dirName)
    }
    return filepath.Join(".", dirName)
}

// DefaultPath is the config file used when --config is not given.
func DefaultPath() string {
    return filepath.Join(HomeDir(), fileName)
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
    c := Default()
    data, err := os.ReadFile(path)
    if errors.Is(err, os.ErrNotExist) {
        return c, nil
    }
    if err != nil {
        return nil, fmt.Errorf("read config: %w", err)
    }
    if err := toml.Unmarshal(data, c); err != nil {
        return nil, fmt.Errorf("parse config TOML: %w", err)
    }
    c.DataDir = ExpandPath(c.DataDir)
    c.LogFile = ExpandPath(c.LogFile)
    if err := c.Validate(); err != nil {
        return nil, err
    }
    return c, nil
}

// Validate checks enumerated fields.
func (c *Config) Validate() error {
    switch c.Store {
    case StoreMemory, StoreDir, StoreSQLite:
    default:
        return fmt.Errorf("config: unknown store %q (want memory, dir or sqlite)", c.Store)
    }
    switch c.DiffView {
    case DiffUnified, DiffSideBySide:
    default:
        return fmt.Errorf("config: unknown diff_view %q", c.DiffView)
    }
    if c.Store != StoreMemory && strings.TrimSpace(c.DataDir) == "" {
        return fmt.Errorf("config: %s store needs data_dir", c.Store)
    }
    return nil
}

// Clone returns a copy of c.
func Clone(c *Config) *Config {
    out := *c
    return &out
}

// Save writes c as TOML, creating the parent directory.
func Save(path string, c *Config) error {
    if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
        return err
    }
    data, err := toml.Marshal(c)
    if err != nil {
        return err
    }
    return os.WriteFile(path, data, 0644)
}

// ExpandPath resolves a leading ~/ and environment variables.
func ExpandPath(p string) string {
    p = strings.TrimSpace(p)
    if p == "" {
        return p
    }
    if strings.HasPrefix(p, "~/") {
        if h, err := os.UserHomeDir(); err == nil {
            p = filepath.Join(h, p[2:])
        }
    }
    return os.ExpandEnv(p)
}
