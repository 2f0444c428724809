// Package config loads flowcheck configuration from INI files layered over embedded defaults.
package config

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
)

//go:embed defaults/config
var defaultsFS embed.FS

// LocalConfigPath is the project-level config file, relative to the working directory.
const LocalConfigPath = ".flowcheck/config"

// Config is the fully merged configuration.
type Config struct {
	Values
	Colors ColorConfig

	configDir string   // global config directory
	localPath string   // local config file used for this load
	sources   []string // config files that existed and were applied, global first
}

// Load reads configuration with the default local config path.
// empty configDir uses ~/.config/flowcheck.
func Load(configDir string) (*Config, error) {
	return LoadWithLocal(configDir, LocalConfigPath)
}

// LoadWithLocal reads configuration from the global directory and the given local config file.
// missing files are not an error; the embedded defaults always apply.
func LoadWithLocal(configDir, localPath string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}
	globalPath := filepath.Join(configDir, "config")

	values, err := newValuesLoader(defaultsFS).Load(localPath, globalPath)
	if err != nil {
		return nil, fmt.Errorf("load values: %w", err)
	}
	if err := values.validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	colors, err := newColorLoader(defaultsFS).Load(localPath, globalPath)
	if err != nil {
		return nil, fmt.Errorf("load colors: %w", err)
	}

	var sources []string
	for _, p := range []string{globalPath, localPath} {
		if fi, statErr := os.Stat(p); statErr == nil && !fi.IsDir() {
			sources = append(sources, p)
		}
	}

	return &Config{Values: values, Colors: colors, configDir: configDir, localPath: localPath, sources: sources}, nil
}

// DefaultConfigDir returns ~/.config/flowcheck, or a relative fallback if home is unknown.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".config", "flowcheck")
	}
	return filepath.Join(home, ".config", "flowcheck")
}

// ConfigDir returns the global config directory used for this load.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// LocalPath returns the local config file used for this load.
func (c *Config) LocalPath() string {
	return c.localPath
}

// Sources returns the config files applied on top of the embedded defaults, global first.
// empty when only the defaults are in effect.
func (c *Config) Sources() []string {
	return c.sources
}

// InstallLocal writes the embedded default config to path unless a file already exists there.
// returns true if the file was written.
func InstallLocal(path string) (bool, error) {
	return newDefaultsInstaller(defaultsFS).Install(path)
}
