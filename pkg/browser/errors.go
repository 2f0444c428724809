package browser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/playwright-community/playwright-go"
)

// error classes for browser failures, callers match them with errors.Is.
var (
	ErrTimeout    = errors.New("timed out")
	ErrNotFound   = errors.New("no matching element")
	ErrStrictMode = errors.New("locator matched more than one element")
	ErrClosed     = errors.New("browser session closed")
)

// classify wraps a raw playwright error with its class. the original error stays in the chain.
func classify(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "strict mode violation"):
		return fmt.Errorf("%w: %w", ErrStrictMode, err)
	case errors.Is(err, playwright.ErrTimeout):
		return fmt.Errorf("%w: %w", ErrTimeout, err)
	case errors.Is(err, playwright.ErrTargetClosed):
		return fmt.Errorf("%w: %w", ErrClosed, err)
	case strings.Contains(msg, "resolved to 0 elements"), strings.Contains(msg, "element(s) not found"):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	default:
		return err
	}
}

// classifyAssertion wraps an expect-style assertion failure. those retry until the expect timeout,
// so a failure without a more specific class is reported as a timeout.
func classifyAssertion(err error) error {
	if err == nil {
		return nil
	}
	c := classify(err)
	if errors.Is(c, ErrStrictMode) || errors.Is(c, ErrClosed) || errors.Is(c, ErrTimeout) {
		return c
	}
	return fmt.Errorf("%w: %w", ErrTimeout, err)
}
