package config

import (
	"embed"
	"errors"
	"fmt"
	"net/url"
	"os"
	"regexp"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/umputun/flowcheck/pkg/notify"
)

// Values holds scalar configuration values.
// Fields ending in *Set (e.g., HeadlessSet) track whether that field was explicitly
// set in config. This allows distinguishing explicit false/0 from "not set", enabling
// proper merge behavior where local config can override global config with zero values.
type Values struct {
	BaseURL          string
	LoginPath        string
	DashboardPattern string

	Username        string
	Password        string
	TaskTitle       string
	TaskDescription string

	ScreenshotPath string

	Browser            string
	Headless           bool
	HeadlessSet        bool // tracks if headless was explicitly set
	SlowMoMs           int
	SlowMoMsSet        bool // tracks if slow_mo_ms was explicitly set
	ViewportWidth      int
	ViewportHeight     int
	InstallBrowsers    bool
	InstallBrowsersSet bool // tracks if install_browsers was explicitly set

	TimeoutMs       int
	ExpectTimeoutMs int

	LogFile      string
	ReportFile   string
	SummaryStyle string // glamour style for the run summary, empty auto-detects

	Notify notify.Params
	// notify flags with explicit-set tracking, copied into Notify on merge
	NotifyOnErrorSet    bool
	NotifyOnCompleteSet bool
	SMTPStartTLSSet     bool
}

// supportedBrowsers lists browser engines playwright can launch.
var supportedBrowsers = map[string]bool{"chromium": true, "firefox": true, "webkit": true}

// valuesLoader loads Values with embedded filesystem fallback.
type valuesLoader struct {
	embedFS embed.FS
}

// newValuesLoader creates a new valuesLoader with the given embedded filesystem.
func newValuesLoader(embedFS embed.FS) *valuesLoader {
	return &valuesLoader{embedFS: embedFS}
}

// Load loads values from config files with fallback chain: local → global → embedded.
// localConfigPath and globalConfigPath are full paths to config files (not directories).
//
//nolint:dupl // intentional structural similarity with colorLoader.Load
func (vl *valuesLoader) Load(localConfigPath, globalConfigPath string) (Values, error) {
	embedded, err := vl.parseValuesFromEmbedded()
	if err != nil {
		return Values{}, fmt.Errorf("parse embedded defaults: %w", err)
	}

	global, err := vl.parseValuesFromFile(globalConfigPath)
	if err != nil {
		return Values{}, fmt.Errorf("parse global config: %w", err)
	}

	local, err := vl.parseValuesFromFile(localConfigPath)
	if err != nil {
		return Values{}, fmt.Errorf("parse local config: %w", err)
	}

	// merge: embedded → global → local (local wins)
	result := embedded
	result.mergeFrom(&global)
	result.mergeFrom(&local)

	return result, nil
}

// parseValuesFromFile reads a config file and parses it into Values.
// returns empty Values (not error) if file doesn't exist or contains only comments/whitespace.
func (vl *valuesLoader) parseValuesFromFile(path string) (Values, error) {
	if path == "" {
		return Values{}, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is constructed internally or given by the user
	if err != nil {
		if os.IsNotExist(err) {
			return Values{}, nil
		}
		return Values{}, fmt.Errorf("read config %s: %w", path, err)
	}

	if strings.TrimSpace(stripComments(string(data))) == "" {
		return Values{}, nil
	}

	return vl.parseValuesFromBytes(data)
}

// parseValuesFromEmbedded parses values from the embedded defaults/config file.
func (vl *valuesLoader) parseValuesFromEmbedded() (Values, error) {
	data, err := vl.embedFS.ReadFile("defaults/config")
	if err != nil {
		return Values{}, fmt.Errorf("read embedded defaults: %w", err)
	}
	return vl.parseValuesFromBytes(data)
}

// parseValuesFromBytes parses configuration from a byte slice into Values.
func (vl *valuesLoader) parseValuesFromBytes(data []byte) (Values, error) {
	// ignoreInlineComment: true prevents # from being treated as inline comment marker (hex colors, passwords)
	cfg, err := ini.LoadSources(ini.LoadOptions{IgnoreInlineComment: true}, data)
	if err != nil {
		return Values{}, fmt.Errorf("parse config: %w", err)
	}

	var v Values
	s := section{cfg.Section("")}

	// target and scenario strings
	strKeys := []struct {
		key   string
		field *string
	}{
		{"base_url", &v.BaseURL},
		{"login_path", &v.LoginPath},
		{"dashboard_pattern", &v.DashboardPattern},
		{"username", &v.Username},
		{"password", &v.Password},
		{"task_title", &v.TaskTitle},
		{"task_description", &v.TaskDescription},
		{"screenshot_path", &v.ScreenshotPath},
		{"browser", &v.Browser},
		{"log_file", &v.LogFile},
		{"report_file", &v.ReportFile},
		{"summary_style", &v.SummaryStyle},
		{"notify_telegram_token", &v.Notify.TelegramToken},
		{"notify_telegram_chat", &v.Notify.TelegramChat},
		{"notify_slack_token", &v.Notify.SlackToken},
		{"notify_slack_channel", &v.Notify.SlackChannel},
		{"notify_smtp_host", &v.Notify.SMTPHost},
		{"notify_smtp_username", &v.Notify.SMTPUsername},
		{"notify_smtp_password", &v.Notify.SMTPPassword},
		{"notify_email_from", &v.Notify.EmailFrom},
		{"notify_custom_script", &v.Notify.CustomScript},
	}
	for _, sk := range strKeys {
		s.str(sk.key, sk.field)
	}

	// non-negative integers
	intKeys := []struct {
		key   string
		field *int
		set   *bool
	}{
		{"slow_mo_ms", &v.SlowMoMs, &v.SlowMoMsSet},
		{"viewport_width", &v.ViewportWidth, nil},
		{"viewport_height", &v.ViewportHeight, nil},
		{"timeout_ms", &v.TimeoutMs, nil},
		{"expect_timeout_ms", &v.ExpectTimeoutMs, nil},
		{"notify_timeout_ms", &v.Notify.TimeoutMs, nil},
		{"notify_smtp_port", &v.Notify.SMTPPort, nil},
	}
	for _, ik := range intKeys {
		if err := s.nonNegativeInt(ik.key, ik.field, ik.set); err != nil {
			return Values{}, err
		}
	}

	boolKeys := []struct {
		key   string
		field *bool
		set   *bool
	}{
		{"headless", &v.Headless, &v.HeadlessSet},
		{"install_browsers", &v.InstallBrowsers, &v.InstallBrowsersSet},
		{"notify_on_error", &v.Notify.OnError, &v.NotifyOnErrorSet},
		{"notify_on_complete", &v.Notify.OnComplete, &v.NotifyOnCompleteSet},
		{"notify_smtp_starttls", &v.Notify.SMTPStartTLS, &v.SMTPStartTLSSet},
	}
	for _, bk := range boolKeys {
		if err := s.boolean(bk.key, bk.field, bk.set); err != nil {
			return Values{}, err
		}
	}

	// comma-separated lists
	s.list("notify_channels", &v.Notify.Channels)
	s.list("notify_email_to", &v.Notify.EmailTo)
	s.list("notify_webhook_urls", &v.Notify.WebhookURLs)

	v.Browser = strings.ToLower(v.Browser)
	return v, nil
}

// section wraps an ini section with typed getters that leave fields untouched for missing keys.
type section struct {
	*ini.Section
}

func (s section) str(name string, field *string) {
	if key, err := s.GetKey(name); err == nil {
		*field = strings.TrimSpace(key.String())
	}
}

func (s section) nonNegativeInt(name string, field *int, set *bool) error {
	key, err := s.GetKey(name)
	if err != nil || strings.TrimSpace(key.String()) == "" {
		return nil
	}
	val, intErr := key.Int()
	if intErr != nil {
		return fmt.Errorf("invalid %s: %w", name, intErr)
	}
	if val < 0 {
		return fmt.Errorf("invalid %s: must be non-negative, got %d", name, val)
	}
	*field = val
	if set != nil {
		*set = true
	}
	return nil
}

func (s section) boolean(name string, field, set *bool) error {
	key, err := s.GetKey(name)
	if err != nil || strings.TrimSpace(key.String()) == "" {
		return nil
	}
	val, boolErr := key.Bool()
	if boolErr != nil {
		return fmt.Errorf("invalid %s: %w", name, boolErr)
	}
	*field = val
	*set = true
	return nil
}

func (s section) list(name string, field *[]string) {
	key, err := s.GetKey(name)
	if err != nil {
		return
	}
	for p := range strings.SplitSeq(key.String(), ",") {
		if t := strings.TrimSpace(p); t != "" {
			*field = append(*field, t)
		}
	}
}

// mergeFrom merges non-empty values from src into dst.
//
//nolint:gocyclo // flat list of independent field merges
func (dst *Values) mergeFrom(src *Values) {
	mergeStr := func(d *string, s string) {
		if s != "" {
			*d = s
		}
	}
	mergeInt := func(d *int, s int) {
		if s > 0 {
			*d = s
		}
	}
	mergeList := func(d *[]string, s []string) {
		if len(s) > 0 {
			*d = s
		}
	}

	mergeStr(&dst.BaseURL, src.BaseURL)
	mergeStr(&dst.LoginPath, src.LoginPath)
	mergeStr(&dst.DashboardPattern, src.DashboardPattern)
	mergeStr(&dst.Username, src.Username)
	mergeStr(&dst.Password, src.Password)
	mergeStr(&dst.TaskTitle, src.TaskTitle)
	mergeStr(&dst.TaskDescription, src.TaskDescription)
	mergeStr(&dst.ScreenshotPath, src.ScreenshotPath)
	mergeStr(&dst.Browser, src.Browser)
	mergeStr(&dst.LogFile, src.LogFile)
	mergeStr(&dst.ReportFile, src.ReportFile)
	mergeStr(&dst.SummaryStyle, src.SummaryStyle)

	if src.HeadlessSet {
		dst.Headless = src.Headless
		dst.HeadlessSet = true
	}
	if src.SlowMoMsSet {
		dst.SlowMoMs = src.SlowMoMs
		dst.SlowMoMsSet = true
	}
	if src.InstallBrowsersSet {
		dst.InstallBrowsers = src.InstallBrowsers
		dst.InstallBrowsersSet = true
	}
	mergeInt(&dst.ViewportWidth, src.ViewportWidth)
	mergeInt(&dst.ViewportHeight, src.ViewportHeight)
	mergeInt(&dst.TimeoutMs, src.TimeoutMs)
	mergeInt(&dst.ExpectTimeoutMs, src.ExpectTimeoutMs)

	// notifications
	mergeList(&dst.Notify.Channels, src.Notify.Channels)
	mergeList(&dst.Notify.EmailTo, src.Notify.EmailTo)
	mergeList(&dst.Notify.WebhookURLs, src.Notify.WebhookURLs)
	mergeInt(&dst.Notify.TimeoutMs, src.Notify.TimeoutMs)
	mergeInt(&dst.Notify.SMTPPort, src.Notify.SMTPPort)
	mergeStr(&dst.Notify.TelegramToken, src.Notify.TelegramToken)
	mergeStr(&dst.Notify.TelegramChat, src.Notify.TelegramChat)
	mergeStr(&dst.Notify.SlackToken, src.Notify.SlackToken)
	mergeStr(&dst.Notify.SlackChannel, src.Notify.SlackChannel)
	mergeStr(&dst.Notify.SMTPHost, src.Notify.SMTPHost)
	mergeStr(&dst.Notify.SMTPUsername, src.Notify.SMTPUsername)
	mergeStr(&dst.Notify.SMTPPassword, src.Notify.SMTPPassword)
	mergeStr(&dst.Notify.EmailFrom, src.Notify.EmailFrom)
	mergeStr(&dst.Notify.CustomScript, src.Notify.CustomScript)
	if src.NotifyOnErrorSet {
		dst.Notify.OnError = src.Notify.OnError
		dst.NotifyOnErrorSet = true
	}
	if src.NotifyOnCompleteSet {
		dst.Notify.OnComplete = src.Notify.OnComplete
		dst.NotifyOnCompleteSet = true
	}
	if src.SMTPStartTLSSet {
		dst.Notify.SMTPStartTLS = src.Notify.SMTPStartTLS
		dst.SMTPStartTLSSet = true
	}
}

// Validate checks values for consistency. Load already does it, callers changing values
// afterwards (command-line overrides) call it again.
func (v *Values) Validate() error {
	return v.validate()
}

// validate checks merged values for consistency.
func (v *Values) validate() error {
	if v.BaseURL == "" {
		return errors.New("base_url is required")
	}
	u, err := url.Parse(v.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base_url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid base_url %q: scheme must be http or https", v.BaseURL)
	}
	if !strings.HasPrefix(v.LoginPath, "/") {
		return fmt.Errorf("invalid login_path %q: must start with /", v.LoginPath)
	}
	if _, err := regexp.Compile(v.DashboardPattern); err != nil {
		return fmt.Errorf("invalid dashboard_pattern: %w", err)
	}
	if !supportedBrowsers[v.Browser] {
		return fmt.Errorf("unsupported browser %q, expected chromium, firefox or webkit", v.Browser)
	}
	if v.ScreenshotPath == "" {
		return errors.New("screenshot_path is required")
	}
	if v.TaskTitle == "" || v.TaskDescription == "" {
		return errors.New("task_title and task_description are required")
	}
	return nil
}

// LoginURL returns the absolute login page URL.
func (v *Values) LoginURL() string {
	return strings.TrimRight(v.BaseURL, "/") + v.LoginPath
}

// stripComments removes full-line # and ; comments, used to detect commented-out templates.
func stripComments(s string) string {
	var b strings.Builder
	for line := range strings.SplitSeq(s, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, ";") {
			continue
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
