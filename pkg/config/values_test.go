package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValuesLoader_Load_EmbeddedOnly(t *testing.T) {
	values, err := newValuesLoader(defaultsFS).Load("", "")
	require.NoError(t, err)

	assert.Equal(t, "/login", values.LoginPath)
	assert.True(t, values.HeadlessSet)
	assert.True(t, values.InstallBrowsers)
	assert.Equal(t, 0, values.SlowMoMs)
	assert.True(t, values.SlowMoMsSet)
	assert.Equal(t, 1280, values.ViewportWidth)
	assert.Equal(t, 720, values.ViewportHeight)
	assert.True(t, values.Notify.OnError)
	assert.False(t, values.Notify.OnComplete)
	assert.True(t, values.Notify.SMTPStartTLS)
	assert.Equal(t, 587, values.Notify.SMTPPort)
	assert.Equal(t, 10000, values.Notify.TimeoutMs)
}

func TestValuesLoader_Load_GlobalOnly(t *testing.T) {
	tmpDir := t.TempDir()
	globalConfig := filepath.Join(tmpDir, "config")
	content := `
base_url = https://board.example.com/
timeout_ms = 10000
notify_channels = webhook, slack
notify_webhook_urls = https://hooks.example.com/a,https://hooks.example.com/b
`
	require.NoError(t, os.WriteFile(globalConfig, []byte(content), 0o600))

	values, err := newValuesLoader(defaultsFS).Load("", globalConfig)
	require.NoError(t, err)

	assert.Equal(t, "https://board.example.com/", values.BaseURL)
	assert.Equal(t, "https://board.example.com/login", values.LoginURL())
	assert.Equal(t, 10000, values.TimeoutMs)
	assert.Equal(t, []string{"webhook", "slack"}, values.Notify.Channels)
	assert.Equal(t, []string{"https://hooks.example.com/a", "https://hooks.example.com/b"}, values.Notify.WebhookURLs)

	// untouched values come from embedded defaults
	assert.Equal(t, 5000, values.ExpectTimeoutMs)
	assert.Equal(t, "testuser", values.Username)
}

func TestValuesLoader_Load_ExplicitZeroOverrides(t *testing.T) {
	tmpDir := t.TempDir()
	globalConfig := filepath.Join(tmpDir, "global")
	localConfig := filepath.Join(tmpDir, "local")
	require.NoError(t, os.WriteFile(globalConfig, []byte("slow_mo_ms = 250\nnotify_on_complete = true\n"), 0o600))
	require.NoError(t, os.WriteFile(localConfig, []byte("slow_mo_ms = 0\nheadless = false\nnotify_on_error = false\n"), 0o600))

	values, err := newValuesLoader(defaultsFS).Load(localConfig, globalConfig)
	require.NoError(t, err)

	assert.Equal(t, 0, values.SlowMoMs, "local explicit zero wins over global")
	assert.False(t, values.Headless)
	assert.False(t, values.Notify.OnError)
	assert.True(t, values.Notify.OnComplete, "global value kept when local doesn't set it")
}

func TestValuesLoader_Load_CommentedTemplate(t *testing.T) {
	tmpDir := t.TempDir()
	localConfig := filepath.Join(tmpDir, "config")
	require.NoError(t, os.WriteFile(localConfig, []byte("# base_url = http://nowhere\n; username = x\n\n"), 0o600))

	values, err := newValuesLoader(defaultsFS).Load(localConfig, "")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:5173", values.BaseURL)
	assert.Equal(t, "testuser", values.Username)
}

func TestValuesLoader_Load_HashInValue(t *testing.T) {
	tmpDir := t.TempDir()
	localConfig := filepath.Join(tmpDir, "config")
	require.NoError(t, os.WriteFile(localConfig, []byte("password = p#ss;word\n"), 0o600))

	values, err := newValuesLoader(defaultsFS).Load(localConfig, "")
	require.NoError(t, err)
	assert.Equal(t, "p#ss;word", values.Password)
}

func TestValues_validate(t *testing.T) {
	base := func() Values {
		v, err := newValuesLoader(defaultsFS).Load("", "")
		require.NoError(t, err)
		return v
	}

	v := base()
	require.NoError(t, v.validate())

	v = base()
	v.BaseURL = ""
	assert.ErrorContains(t, v.validate(), "base_url is required")

	v = base()
	v.ScreenshotPath = ""
	assert.ErrorContains(t, v.validate(), "screenshot_path is required")

	v = base()
	v.TaskTitle = ""
	assert.ErrorContains(t, v.validate(), "task_title and task_description are required")
}

func Test_stripComments(t *testing.T) {
	assert.Equal(t, "a = 1\n", stripComments("# c\na = 1\n; d"))
	assert.Empty(t, strings.TrimSpace(stripComments("  # only comment\n")))
}
