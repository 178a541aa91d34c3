package update

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sandeepkv93/snaplist/internal/store"
	"gopkg.in/yaml.v3"
)

const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

type RuntimeConfig struct {
	Backend        string `yaml:"backend"`
	KeyScheme      string `yaml:"key_scheme"`
	DarkMode       bool   `yaml:"dark_mode"`
	PickerDir      string `yaml:"picker_dir"`
	LogLevel       string `yaml:"log_level"`
	LogFile        string `yaml:"log_file"`
	SnapshotBuffer int    `yaml:"snapshot_buffer"`
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		Backend:        BackendMemory,
		KeyScheme:      store.KeySchemeCounter,
		DarkMode:       false,
		PickerDir:      "",
		LogLevel:       "info",
		LogFile:        filepath.Join(os.TempDir(), "snaplist.log"),
		SnapshotBuffer: 16,
	}
}

// LoadRuntimeConfigFile overlays the YAML file at path on base. Keys missing
// from the file keep their base value; unknown keys are an error.
func LoadRuntimeConfigFile(path string, base RuntimeConfig) (RuntimeConfig, error) {
	cfg := base
	raw, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("config: read %s: %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return base, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v, ok := getEnvString("SNAPLIST_BACKEND"); ok {
		cfg.Backend = strings.ToLower(v)
	}
	if v, ok := getEnvString("SNAPLIST_KEY_SCHEME"); ok {
		cfg.KeyScheme = strings.ToLower(v)
	}
	if v, ok := getEnvBool("SNAPLIST_DARK_MODE"); ok {
		cfg.DarkMode = v
	}
	if v, ok := getEnvString("SNAPLIST_PICKER_DIR"); ok {
		cfg.PickerDir = v
	}
	if v, ok := getEnvString("SNAPLIST_LOG_LEVEL"); ok {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v, ok := getEnvString("SNAPLIST_LOG_FILE"); ok {
		cfg.LogFile = v
	}
	if v, ok := getEnvInt("SNAPLIST_SNAPSHOT_BUFFER"); ok && v > 0 {
		cfg.SnapshotBuffer = v
	}
	return cfg
}

func (c RuntimeConfig) Validate() error {
	switch c.Backend {
	case BackendMemory, BackendSQLite:
	default:
		return fmt.Errorf("config: unknown backend %q", c.Backend)
	}
	switch c.KeyScheme {
	case store.KeySchemeCounter, store.KeySchemeULID, store.KeySchemeUUID:
	default:
		return fmt.Errorf("config: unknown key scheme %q", c.KeyScheme)
	}
	if c.SnapshotBuffer <= 0 {
		return fmt.Errorf("config: snapshot buffer must be positive, got %d", c.SnapshotBuffer)
	}
	return nil
}

func getEnvString(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	return raw, raw != ""
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
