package config

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"
)

// ColorConfig holds "r,g,b" strings per output role, parsed from hex values in config.
type ColorConfig struct {
	Setup     string
	Login     string
	Task      string
	Verify    string
	Capture   string
	Warn      string
	Error     string
	Timestamp string
	Info      string
}

// colorLoader loads ColorConfig with embedded filesystem fallback.
type colorLoader struct {
	embedFS embed.FS
}

// newColorLoader creates a new colorLoader with the given embedded filesystem.
func newColorLoader(embedFS embed.FS) *colorLoader {
	return &colorLoader{embedFS: embedFS}
}

// Load loads colors from config files with fallback chain: local → global → embedded.
//
//nolint:dupl // intentional structural similarity with valuesLoader.Load
func (cl *colorLoader) Load(localConfigPath, globalConfigPath string) (ColorConfig, error) {
	embedded, err := cl.parseColorsFromEmbedded()
	if err != nil {
		return ColorConfig{}, fmt.Errorf("parse embedded defaults: %w", err)
	}

	global, err := cl.parseColorsFromFile(globalConfigPath)
	if err != nil {
		return ColorConfig{}, fmt.Errorf("parse global config: %w", err)
	}

	local, err := cl.parseColorsFromFile(localConfigPath)
	if err != nil {
		return ColorConfig{}, fmt.Errorf("parse local config: %w", err)
	}

	result := embedded
	result.mergeFrom(&global)
	result.mergeFrom(&local)

	return result, nil
}

// parseColorsFromFile reads a config file and parses colors from it.
// returns empty ColorConfig (not error) if file doesn't exist.
func (cl *colorLoader) parseColorsFromFile(path string) (ColorConfig, error) {
	if path == "" {
		return ColorConfig{}, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is constructed internally or given by the user
	if err != nil {
		if os.IsNotExist(err) {
			return ColorConfig{}, nil
		}
		return ColorConfig{}, fmt.Errorf("read config %s: %w", path, err)
	}

	return cl.parseColorsFromBytes(data)
}

func (cl *colorLoader) parseColorsFromEmbedded() (ColorConfig, error) {
	data, err := cl.embedFS.ReadFile("defaults/config")
	if err != nil {
		return ColorConfig{}, fmt.Errorf("read embedded defaults: %w", err)
	}
	return cl.parseColorsFromBytes(data)
}

// parseColorsFromBytes parses color configuration from INI data.
func (cl *colorLoader) parseColorsFromBytes(data []byte) (ColorConfig, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{IgnoreInlineComment: true}, data)
	if err != nil {
		return ColorConfig{}, fmt.Errorf("parse config: %w", err)
	}

	var colors ColorConfig
	section := cfg.Section("")
	colorKeys := []struct {
		key   string
		field *string
	}{
		{"color_setup", &colors.Setup},
		{"color_login", &colors.Login},
		{"color_task", &colors.Task},
		{"color_verify", &colors.Verify},
		{"color_capture", &colors.Capture},
		{"color_warn", &colors.Warn},
		{"color_error", &colors.Error},
		{"color_timestamp", &colors.Timestamp},
		{"color_info", &colors.Info},
	}

	for _, ck := range colorKeys {
		key, err := section.GetKey(ck.key)
		if err != nil {
			continue
		}
		hex := strings.TrimSpace(key.String())
		if hex == "" {
			continue
		}
		r, g, b, err := parseHexColor(hex)
		if err != nil {
			return ColorConfig{}, fmt.Errorf("invalid %s: %w", ck.key, err)
		}
		*ck.field = fmt.Sprintf("%d,%d,%d", r, g, b)
	}

	return colors, nil
}

// parseHexColor parses a hex color string (e.g., "#ff0000") into RGB components.
func parseHexColor(hex string) (r, g, b int, err error) {
	if hex == "" || hex[0] != '#' {
		return 0, 0, 0, errors.New("hex color must start with #")
	}
	if len(hex) != 7 {
		return 0, 0, 0, errors.New("hex color must be 7 characters (e.g., #ff0000)")
	}

	val, err := strconv.ParseInt(hex[1:], 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}

	r = int((val >> 16) & 0xFF)
	g = int((val >> 8) & 0xFF)
	b = int(val & 0xFF)
	return r, g, b, nil
}

// mergeFrom merges non-empty color values from src into dst.
func (dst *ColorConfig) mergeFrom(src *ColorConfig) {
	pairs := []struct {
		d *string
		s string
	}{
		{&dst.Setup, src.Setup},
		{&dst.Login, src.Login},
		{&dst.Task, src.Task},
		{&dst.Verify, src.Verify},
		{&dst.Capture, src.Capture},
		{&dst.Warn, src.Warn},
		{&dst.Error, src.Error},
		{&dst.Timestamp, src.Timestamp},
		{&dst.Info, src.Info},
	}
	for _, p := range pairs {
		if p.s != "" {
			*p.d = p.s
		}
	}
}
