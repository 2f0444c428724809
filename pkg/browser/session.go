// Package browser wraps a playwright-go browser session with a single page behind a small,
// error-classifying API.
package browser

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sync"
	"time"

	"github.com/playwright-community/playwright-go"
)

// Options configures a browser session.
type Options struct {
	Browser        string        // chromium, firefox or webkit
	Headless       bool
	SlowMo         time.Duration // delay between browser operations
	ViewportWidth  int
	ViewportHeight int
	Timeout        time.Duration // default for actions and page loads
	ExpectTimeout  time.Duration // limit for WaitForURL and WaitVisible, 5s when zero
	Install        bool          // install the driver and browser before launch
}

// Session owns one playwright driver, one browser, one browser context and the single page in it.
// all methods return ErrClosed once Close was called.
type Session struct {
	pw       *playwright.Playwright
	browser  playwright.Browser
	bctx     playwright.BrowserContext
	page     playwright.Page
	expect   playwright.PlaywrightAssertions
	expectMs float64

	mu     sync.Mutex
	closed bool
}

// installFn and runFn are variables so tests can stub the driver setup.
var (
	installFn = playwright.Install
	runFn     = playwright.Run
)

// Launch starts the driver and the browser and opens the page. on any failure everything already
// acquired is released before returning.
func Launch(ctx context.Context, opts Options) (s *Session, err error) {
	if err = ctx.Err(); err != nil {
		return nil, fmt.Errorf("launch: %w", err)
	}

	name := opts.Browser
	if name == "" {
		name = "chromium"
	}

	if opts.Install {
		if err = installFn(&playwright.RunOptions{Browsers: []string{name}, Verbose: false}); err != nil {
			return nil, fmt.Errorf("install playwright %s: %w", name, err)
		}
	}

	pw, err := runFn()
	if err != nil {
		return nil, fmt.Errorf("start playwright: %w", err)
	}
	s = &Session{pw: pw}
	defer func() {
		if err != nil {
			_ = s.Close()
			s = nil
		}
	}()

	bt, err := browserType(pw, name)
	if err != nil {
		return nil, err
	}

	launchOpts := playwright.BrowserTypeLaunchOptions{Headless: playwright.Bool(opts.Headless)}
	if opts.SlowMo > 0 {
		launchOpts.SlowMo = playwright.Float(float64(opts.SlowMo.Milliseconds()))
	}
	if s.browser, err = bt.Launch(launchOpts); err != nil {
		return nil, fmt.Errorf("launch %s: %w", name, err)
	}

	ctxOpts := playwright.BrowserNewContextOptions{}
	if opts.ViewportWidth > 0 && opts.ViewportHeight > 0 {
		ctxOpts.Viewport = &playwright.Size{Width: opts.ViewportWidth, Height: opts.ViewportHeight}
	}
	if s.bctx, err = s.browser.NewContext(ctxOpts); err != nil {
		return nil, fmt.Errorf("create browser context: %w", err)
	}

	if s.page, err = s.bctx.NewPage(); err != nil {
		return nil, fmt.Errorf("create page: %w", err)
	}
	if opts.Timeout > 0 {
		s.page.SetDefaultTimeout(float64(opts.Timeout.Milliseconds()))
		s.page.SetDefaultNavigationTimeout(float64(opts.Timeout.Milliseconds()))
	}

	expectMs := float64(5000)
	if opts.ExpectTimeout > 0 {
		expectMs = float64(opts.ExpectTimeout.Milliseconds())
	}
	s.expectMs = expectMs
	s.expect = playwright.NewPlaywrightAssertions(expectMs)

	return s, nil
}

func browserType(pw *playwright.Playwright, name string) (playwright.BrowserType, error) {
	switch name {
	case "chromium":
		return pw.Chromium, nil
	case "firefox":
		return pw.Firefox, nil
	case "webkit":
		return pw.WebKit, nil
	default:
		return nil, fmt.Errorf("unsupported browser %q", name)
	}
}

// Goto navigates the page to url and waits for the load event.
func (s *Session) Goto(url string) error {
	page, err := s.livePage()
	if err != nil {
		return err
	}
	if _, err := page.Goto(url); err != nil {
		return fmt.Errorf("goto %s: %w", url, classify(err))
	}
	return nil
}

// Fill sets the value of the single element matched by loc.
func (s *Session) Fill(loc Locator, value string) error {
	l, err := s.locate(loc)
	if err != nil {
		return err
	}
	if err := l.Fill(value); err != nil {
		return fmt.Errorf("fill %s: %w", loc, classify(err))
	}
	return nil
}

// Click clicks the single element matched by loc.
func (s *Session) Click(loc Locator) error {
	l, err := s.locate(loc)
	if err != nil {
		return err
	}
	if err := l.Click(); err != nil {
		return fmt.Errorf("click %s: %w", loc, classify(err))
	}
	return nil
}

// WaitForURL blocks until the page url matches pattern or the expect timeout elapses.
func (s *Session) WaitForURL(pattern *regexp.Regexp) error {
	page, err := s.livePage()
	if err != nil {
		return err
	}
	if err := page.WaitForURL(pattern, playwright.PageWaitForURLOptions{Timeout: playwright.Float(s.expectMs)}); err != nil {
		return fmt.Errorf("wait for url %s: %w", pattern, classify(err))
	}
	return nil
}

// WaitVisible asserts that loc becomes visible within the expect timeout.
func (s *Session) WaitVisible(loc Locator) error {
	l, err := s.locate(loc)
	if err != nil {
		return err
	}
	if err := s.expect.Locator(l).ToBeVisible(); err != nil {
		return fmt.Errorf("wait visible %s: %w", loc, classifyAssertion(err))
	}
	return nil
}

// URL returns the current page url.
func (s *Session) URL() (string, error) {
	page, err := s.livePage()
	if err != nil {
		return "", err
	}
	return page.URL(), nil
}

// Screenshot captures the full scrollable page as PNG.
func (s *Session) Screenshot() ([]byte, error) {
	page, err := s.livePage()
	if err != nil {
		return nil, err
	}
	data, err := page.Screenshot(playwright.PageScreenshotOptions{
		FullPage: playwright.Bool(true),
		Type:     playwright.ScreenshotTypePng,
	})
	if err != nil {
		return nil, fmt.Errorf("screenshot: %w", classify(err))
	}
	return data, nil
}

// Close releases the page, the context, the browser and the driver, in that order.
// safe to call more than once; only the first call does the work.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true

	var errs []error
	if s.page != nil {
		if err := s.page.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close page: %w", err))
		}
	}
	if s.bctx != nil {
		if err := s.bctx.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close context: %w", err))
		}
	}
	if s.browser != nil {
		if err := s.browser.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close browser: %w", err))
		}
	}
	if s.pw != nil {
		if err := s.pw.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("stop playwright: %w", err))
		}
	}
	return errors.Join(errs...)
}

func (s *Session) livePage() (playwright.Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.page == nil {
		return nil, ErrClosed
	}
	return s.page, nil
}

func (s *Session) locate(loc Locator) (playwright.Locator, error) {
	page, err := s.livePage()
	if err != nil {
		return nil, err
	}
	l, err := loc.resolve(page)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", loc, err)
	}
	return l, nil
}
