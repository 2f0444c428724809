package config

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
)

// defaultsInstaller writes the embedded default config as a starting template.
type defaultsInstaller struct {
	embedFS embed.FS
}

// newDefaultsInstaller creates a new defaultsInstaller with the given embedded filesystem.
func newDefaultsInstaller(embedFS embed.FS) *defaultsInstaller {
	return &defaultsInstaller{embedFS: embedFS}
}

// Install creates the parent directory and writes the default config file if it doesn't exist.
// never overwrites an existing file.
func (d *defaultsInstaller) Install(configPath string) (bool, error) {
	_, statErr := os.Stat(configPath)
	if statErr == nil {
		return false, nil
	}
	if !os.IsNotExist(statErr) {
		return false, fmt.Errorf("check config file: %w", statErr)
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o750); err != nil {
		return false, fmt.Errorf("create config dir: %w", err)
	}

	data, err := d.embedFS.ReadFile("defaults/config")
	if err != nil {
		return false, fmt.Errorf("read embedded config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return false, fmt.Errorf("write config file: %w", err)
	}
	return true, nil
}
