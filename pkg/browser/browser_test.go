package browser

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocator_String(t *testing.T) {
	tests := []struct {
		name string
		loc  Locator
		want string
	}{
		{name: "css", loc: CSS(`input[name="username"]`), want: `input[name="username"]`},
		{name: "role", loc: Role("button", "Add New Task"), want: `role=button[name="Add New Task"]`},
		{name: "label", loc: Label("Title"), want: `label="Title"`},
		{name: "text", loc: Text("My New Test Task"), want: `text="My New Test Task"`},
		{name: "unknown", loc: Locator{By: "xpath", Value: "//a"}, want: `xpath="//a"`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.loc.String())
		})
	}
}

func TestLocator_Constructors(t *testing.T) {
	assert.Equal(t, Locator{By: ByRole, Role: "heading", Value: "Add New Task", Exact: true}, Role("heading", "Add New Task"))
	assert.True(t, Label("Title").Exact)
	assert.True(t, Text("x").Exact)
	assert.False(t, CSS("#id").Exact)
}

func TestAriaRoles(t *testing.T) {
	for _, role := range []string{"button", "heading"} {
		_, ok := ariaRoles[role]
		assert.True(t, ok, "role %s must be supported", role)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantIs  error
		wantRaw bool
	}{
		{name: "timeout", err: fmt.Errorf("waiting for locator: %w", playwright.ErrTimeout), wantIs: ErrTimeout},
		{name: "target closed", err: fmt.Errorf("click: %w", playwright.ErrTargetClosed), wantIs: ErrClosed},
		{name: "strict mode", err: errors.New(`strict mode violation: getByText("My New Test Task") resolved to 2 elements`),
			wantIs: ErrStrictMode},
		{name: "strict mode wins over timeout",
			err:    fmt.Errorf("strict mode violation: resolved to 3 elements: %w", playwright.ErrTimeout),
			wantIs: ErrStrictMode},
		{name: "zero elements", err: errors.New("locator resolved to 0 elements"), wantIs: ErrNotFound},
		{name: "other", err: errors.New("net::ERR_CONNECTION_REFUSED"), wantRaw: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := classify(tc.err)
			require.Error(t, got)
			require.ErrorIs(t, got, tc.err, "raw error stays in the chain")
			if tc.wantRaw {
				assert.Equal(t, tc.err, got)
				return
			}
			assert.ErrorIs(t, got, tc.wantIs)
		})
	}

	assert.NoError(t, classify(nil))
}

func TestClassifyAssertion(t *testing.T) {
	err := classifyAssertion(errors.New("Locator expected to be visible"))
	require.ErrorIs(t, err, ErrTimeout)

	err = classifyAssertion(errors.New("strict mode violation: resolved to 2 elements"))
	require.ErrorIs(t, err, ErrStrictMode)
	assert.NotErrorIs(t, err, ErrTimeout)

	err = classifyAssertion(fmt.Errorf("x: %w", playwright.ErrTimeout))
	require.ErrorIs(t, err, ErrTimeout)

	assert.NoError(t, classifyAssertion(nil))
}

func TestSession_Closed(t *testing.T) {
	s := &Session{}
	require.NoError(t, s.Close())
	require.NoError(t, s.Close(), "second close is a no-op")

	require.ErrorIs(t, s.Goto("http://localhost"), ErrClosed)
	require.ErrorIs(t, s.Fill(Label("Title"), "x"), ErrClosed)
	require.ErrorIs(t, s.Click(Role("button", "Login")), ErrClosed)
	require.ErrorIs(t, s.WaitForURL(regexp.MustCompile(`.*`)), ErrClosed)
	require.ErrorIs(t, s.WaitVisible(Text("x")), ErrClosed)
	_, err := s.Screenshot()
	require.ErrorIs(t, err, ErrClosed)
	_, err = s.URL()
	require.ErrorIs(t, err, ErrClosed)
}

func TestLaunch(t *testing.T) {
	origInstall, origRun := installFn, runFn
	t.Cleanup(func() { installFn, runFn = origInstall, origRun })

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := Launch(ctx, Options{})
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("install failure", func(t *testing.T) {
		var gotBrowsers []string
		installFn = func(opts ...*playwright.RunOptions) error {
			gotBrowsers = opts[0].Browsers
			return errors.New("no network")
		}
		_, err := Launch(context.Background(), Options{Browser: "firefox", Install: true})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "install playwright firefox")
		assert.Equal(t, []string{"firefox"}, gotBrowsers)
	})

	t.Run("driver failure", func(t *testing.T) {
		installFn = func(...*playwright.RunOptions) error { return nil }
		runFn = func(...*playwright.RunOptions) (*playwright.Playwright, error) {
			return nil, errors.New("driver missing")
		}
		_, err := Launch(context.Background(), Options{Install: true})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "start playwright: driver missing")
	})
}
