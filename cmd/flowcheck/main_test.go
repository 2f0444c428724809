package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/flowcheck/pkg/config"
	"github.com/umputun/flowcheck/pkg/report"
	"github.com/umputun/flowcheck/pkg/status"
)

func defaultValues(t *testing.T) config.Values {
	t.Helper()
	cfg, err := config.LoadWithLocal(t.TempDir(), filepath.Join(t.TempDir(), "missing"))
	require.NoError(t, err)
	return cfg.Values
}

func TestRun_Init(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".flowcheck", "config")

	require.NoError(t, run(context.Background(), opts{Init: true, Config: path}))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "base_url = http://localhost:5173")

	require.NoError(t, os.WriteFile(path, []byte("username = someone\n"), 0o600))
	require.NoError(t, run(context.Background(), opts{Init: true, Config: path}))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "username = someone\n", string(data), "existing config is kept")
}

func TestApplyOverrides(t *testing.T) {
	v := defaultValues(t)
	require.True(t, v.Headless)

	require.NoError(t, applyOverrides(&v, opts{}))
	assert.Equal(t, "http://localhost:5173", v.BaseURL)
	assert.True(t, v.Headless)

	require.NoError(t, applyOverrides(&v, opts{BaseURL: "http://127.0.0.1:9000", Headed: true}))
	assert.Equal(t, "http://127.0.0.1:9000", v.BaseURL)
	assert.False(t, v.Headless)
}

func TestApplyOverrides_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		wantErr string
	}{
		{name: "missing scheme", baseURL: "localhost:5173", wantErr: "scheme must be http or https"},
		{name: "ftp scheme", baseURL: "ftp://localhost", wantErr: "scheme must be http or https"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := defaultValues(t)
			err := applyOverrides(&v, opts{BaseURL: tc.baseURL})
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid command-line override")
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestRun_DemoWithBaseURL(t *testing.T) {
	err := run(context.Background(), opts{Demo: true, BaseURL: "http://example.com", Config: filepath.Join(t.TempDir(), "none")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "can't be combined with --base-url")
}

func TestConfigSources(t *testing.T) {
	assert.Equal(t, "built-in defaults", configSources(nil))
	assert.Equal(t, "built-in defaults + /home/u/.config/flowcheck/config + .flowcheck/config",
		configSources([]string{"/home/u/.config/flowcheck/config", ".flowcheck/config"}))
}

func TestFirstLine(t *testing.T) {
	assert.Equal(t, `step 5 "wait for dashboard": navigation timeout: timed out`,
		firstLine("step 5 \"wait for dashboard\": navigation timeout: timed out\nCall log:\n  - waiting"))
	assert.Equal(t, "single", firstLine("single"))
	assert.Empty(t, firstLine(""))
}

func TestFlowConfig(t *testing.T) {
	v := defaultValues(t)

	fc, err := flowConfig(v)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5173/login", fc.LoginURL)
	assert.True(t, fc.DashboardPattern.MatchString("http://localhost:5173/dashboard/board"))
	assert.False(t, fc.DashboardPattern.MatchString("http://localhost:5173/login"))
	assert.Equal(t, "testuser", fc.Username)
	assert.Equal(t, "password", fc.Password)
	assert.Equal(t, "My New Test Task", fc.TaskTitle)
	assert.Equal(t, "This is a description for the test task.", fc.TaskDescription)
	assert.Equal(t, "jules-scratch/verification/verification.png", fc.ScreenshotPath)
	assert.Equal(t, "chromium", fc.Browser)

	v.DashboardPattern = "(["
	_, err = flowConfig(v)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "compile dashboard pattern")
}

func TestBrowserOptions(t *testing.T) {
	v := defaultValues(t)
	v.SlowMoMs = 250

	o := browserOptions(v)
	assert.Equal(t, "chromium", o.Browser)
	assert.True(t, o.Headless)
	assert.Equal(t, 250*time.Millisecond, o.SlowMo)
	assert.Equal(t, 1280, o.ViewportWidth)
	assert.Equal(t, 720, o.ViewportHeight)
	assert.Equal(t, 30*time.Second, o.Timeout)
	assert.Equal(t, 5*time.Second, o.ExpectTimeout)
	assert.True(t, o.Install)
}

func TestSummaryOptions(t *testing.T) {
	t.Setenv("COLUMNS", "132")
	v := defaultValues(t)

	ro := summaryOptions(v, opts{})
	assert.Equal(t, 132, ro.Width)
	assert.Empty(t, ro.Style, "empty style auto-detects")
	assert.False(t, ro.NoColor)

	v.SummaryStyle = "notty"
	ro = summaryOptions(v, opts{NoColor: true})
	assert.Equal(t, "notty", ro.Style)
	assert.True(t, ro.NoColor)
}

func TestNotifyResult(t *testing.T) {
	r := report.Report{
		Status:     status.OutcomeFailed,
		Target:     "http://localhost:5173/login",
		Browser:    "chromium",
		Branch:     "master",
		Commit:     "abc1234",
		FailedStep: "wait for dashboard",
		Error:      "navigation timeout",
		Steps: []report.StepResult{
			{Index: 1, Status: report.StepPassed},
			{Index: 2, Status: report.StepFailed},
			{Index: 3, Status: report.StepSkipped},
		},
	}

	res := notifyResult(r, "3s")
	assert.Equal(t, status.OutcomeFailed, res.Status)
	assert.Equal(t, "http://localhost:5173/login", res.Target)
	assert.Equal(t, "master", res.Branch)
	assert.Equal(t, "abc1234", res.Commit)
	assert.Equal(t, "3s", res.Duration)
	assert.Equal(t, 2, res.Steps)
	assert.Equal(t, "wait for dashboard", res.FailedStep)
	assert.Equal(t, "navigation timeout", res.Error)
}
