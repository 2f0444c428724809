package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_defaultsFS(t *testing.T) {
	data, err := defaultsFS.ReadFile("defaults/config")
	require.NoError(t, err)
	assert.Contains(t, string(data), "base_url")
	assert.Contains(t, string(data), "screenshot_path")
	assert.Contains(t, string(data), "notify_channels")
}

func TestLoad_EmbeddedDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	cfg, err := LoadWithLocal(filepath.Join(tmpDir, "global"), filepath.Join(tmpDir, "missing-local"))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:5173", cfg.BaseURL)
	assert.Equal(t, "http://localhost:5173/login", cfg.LoginURL())
	assert.Equal(t, ".*/dashboard/board", cfg.DashboardPattern)
	assert.Equal(t, "testuser", cfg.Username)
	assert.Equal(t, "password", cfg.Password)
	assert.Equal(t, "My New Test Task", cfg.TaskTitle)
	assert.Equal(t, "This is a description for the test task.", cfg.TaskDescription)
	assert.Equal(t, "jules-scratch/verification/verification.png", cfg.ScreenshotPath)
	assert.Equal(t, "chromium", cfg.Browser)
	assert.True(t, cfg.Headless)
	assert.Equal(t, 30000, cfg.TimeoutMs)
	assert.Equal(t, 5000, cfg.ExpectTimeoutMs)
	assert.Empty(t, cfg.LogFile)
	assert.Empty(t, cfg.ReportFile)
	assert.Empty(t, cfg.Notify.Channels)
	assert.Equal(t, "0,255,0", cfg.Colors.Login)
	assert.Equal(t, filepath.Join(tmpDir, "global"), cfg.ConfigDir())
	assert.Equal(t, filepath.Join(tmpDir, "missing-local"), cfg.LocalPath())
	assert.Empty(t, cfg.Sources())
	assert.Empty(t, cfg.SummaryStyle)
}

func TestLoad_LocalOverridesGlobal(t *testing.T) {
	tmpDir := t.TempDir()
	globalDir := filepath.Join(tmpDir, "global")
	require.NoError(t, os.MkdirAll(globalDir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(globalDir, "config"),
		[]byte("base_url = http://staging:8080\nusername = global-user\nheadless = false\n"), 0o600))

	localPath := filepath.Join(tmpDir, "local", "config")
	require.NoError(t, os.MkdirAll(filepath.Dir(localPath), 0o700))
	require.NoError(t, os.WriteFile(localPath, []byte("username = local-user\ncolor_task = #010203\n"), 0o600))

	cfg, err := LoadWithLocal(globalDir, localPath)
	require.NoError(t, err)
	assert.Equal(t, "http://staging:8080", cfg.BaseURL)
	assert.Equal(t, "local-user", cfg.Username)
	assert.False(t, cfg.Headless)
	assert.Equal(t, "1,2,3", cfg.Colors.Task)
	assert.Equal(t, []string{filepath.Join(globalDir, "config"), localPath}, cfg.Sources())
}

func TestLoad_SourcesLocalOnly(t *testing.T) {
	tmpDir := t.TempDir()
	localPath := filepath.Join(tmpDir, "config")
	require.NoError(t, os.WriteFile(localPath, []byte("summary_style = notty\n"), 0o600))

	cfg, err := LoadWithLocal(filepath.Join(tmpDir, "global"), localPath)
	require.NoError(t, err)
	assert.Equal(t, []string{localPath}, cfg.Sources())
	assert.Equal(t, "notty", cfg.SummaryStyle)
}

func TestValues_Validate_AfterChange(t *testing.T) {
	tmpDir := t.TempDir()
	cfg, err := LoadWithLocal(filepath.Join(tmpDir, "global"), filepath.Join(tmpDir, "local"))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	cfg.BaseURL = "localhost:5173"
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scheme must be http or https")
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "bad scheme", content: "base_url = ftp://host", wantErr: "scheme must be http or https"},
		{name: "bad login path", content: "login_path = login", wantErr: "must start with /"},
		{name: "bad pattern", content: "dashboard_pattern = (", wantErr: "invalid dashboard_pattern"},
		{name: "bad browser", content: "browser = lynx", wantErr: "unsupported browser"},
		{name: "negative timeout", content: "timeout_ms = -5", wantErr: "must be non-negative"},
		{name: "bad bool", content: "headless = maybe", wantErr: "invalid headless"},
		{name: "bad color", content: "color_info = red", wantErr: "invalid color_info"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			localPath := filepath.Join(tmpDir, "config")
			require.NoError(t, os.WriteFile(localPath, []byte(tc.content), 0o600))

			_, err := LoadWithLocal(filepath.Join(tmpDir, "global"), localPath)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestDefaultConfigDir(t *testing.T) {
	dir := DefaultConfigDir()
	assert.Equal(t, "flowcheck", filepath.Base(dir))
}

func TestInstallLocal(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, ".flowcheck", "config")

	written, err := InstallLocal(path)
	require.NoError(t, err)
	assert.True(t, written)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	embedded, err := defaultsFS.ReadFile("defaults/config")
	require.NoError(t, err)
	assert.Equal(t, embedded, data)

	// existing file is never overwritten
	require.NoError(t, os.WriteFile(path, []byte("username = mine\n"), 0o600))
	written, err = InstallLocal(path)
	require.NoError(t, err)
	assert.False(t, written)
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "username = mine\n", string(data))
}
