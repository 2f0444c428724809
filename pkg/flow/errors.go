package flow

import (
	"errors"
	"fmt"

	"github.com/umputun/flowcheck/pkg/browser"
)

// failure kinds reported by Run, matched with errors.Is.
var (
	ErrElementNotFound   = errors.New("element not found")
	ErrAmbiguousElement  = errors.New("locator matched several elements")
	ErrNavigationTimeout = errors.New("navigation timeout")
	ErrVisibilityTimeout = errors.New("visibility timeout")
	ErrScreenshotWrite   = errors.New("screenshot write failure")
	ErrBrowserLaunch     = errors.New("browser launch failure")
)

// StepError reports the step a run failed at. it wraps both the failure kind and the cause.
type StepError struct {
	Index int    // 1-based step number, 0 for browser launch
	Name  string // step name
	Kind  error  // one of the Err* kinds above, nil when the failure has no kind
	Err   error  // underlying cause
}

func (e *StepError) Error() string {
	if e.Kind == nil {
		return fmt.Sprintf("step %d %q: %v", e.Index, e.Name, e.Err)
	}
	return fmt.Sprintf("step %d %q: %v: %v", e.Index, e.Name, e.Kind, e.Err)
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *StepError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// kindOf maps a browser error class to a failure kind, depending on what the step was doing.
// a click or fill waits for its element, so a timeout there means the element never appeared.
func kindOf(action Action, err error) error {
	if errors.Is(err, browser.ErrClosed) {
		return nil
	}
	if errors.Is(err, browser.ErrStrictMode) {
		return ErrAmbiguousElement
	}

	timeout := errors.Is(err, browser.ErrTimeout) || errors.Is(err, browser.ErrNotFound)
	switch action {
	case ActionScreenshot:
		return ErrScreenshotWrite
	case ActionFill, ActionClick:
		if timeout {
			return ErrElementNotFound
		}
	case ActionWaitURL, ActionGoto:
		if errors.Is(err, browser.ErrTimeout) {
			return ErrNavigationTimeout
		}
	case ActionWaitVisible:
		if timeout {
			return ErrVisibilityTimeout
		}
	}
	return nil
}
