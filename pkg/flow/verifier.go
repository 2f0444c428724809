// Package flow runs the login and add-task scenario against a task board through a browser
// and reports where it failed.
package flow

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/umputun/flowcheck/pkg/browser"
	"github.com/umputun/flowcheck/pkg/report"
	"github.com/umputun/flowcheck/pkg/status"
)

//go:generate moq -out mocks/driver.go -pkg mocks -skip-ensure -fmt goimports . Driver
//go:generate moq -out mocks/logger.go -pkg mocks -skip-ensure -fmt goimports . Logger

// Driver is the page the scenario drives. *browser.Session implements it.
type Driver interface {
	Goto(url string) error
	Fill(loc browser.Locator, value string) error
	Click(loc browser.Locator) error
	WaitForURL(pattern *regexp.Regexp) error
	WaitVisible(loc browser.Locator) error
	Screenshot() ([]byte, error)
	URL() (string, error)
	Close() error
}

// Logger provides progress output.
type Logger interface {
	Print(format string, args ...any)
	PrintStep(index, total int, name string)
	Debug(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// LaunchFunc acquires a driver with a loaded, empty page.
type LaunchFunc func(ctx context.Context) (Driver, error)

// Config holds the scenario inputs.
type Config struct {
	LoginURL         string
	DashboardPattern *regexp.Regexp
	Username         string
	Password         string
	TaskTitle        string
	TaskDescription  string
	ScreenshotPath   string
	Browser          string // reported only
}

// Verifier runs the scenario once per Run call.
type Verifier struct {
	cfg    Config
	launch LaunchFunc
	log    Logger
	phase  *status.PhaseHolder
}

// New makes a Verifier. phase may be nil, in which case a private holder is used.
func New(cfg Config, launch LaunchFunc, log Logger, phase *status.PhaseHolder) *Verifier {
	if phase == nil {
		phase = &status.PhaseHolder{}
	}
	return &Verifier{cfg: cfg, launch: launch, log: log, phase: phase}
}

// BrowserLauncher adapts browser.Launch to LaunchFunc.
func BrowserLauncher(opts browser.Options) LaunchFunc {
	return func(ctx context.Context) (Driver, error) {
		s, err := browser.Launch(ctx, opts)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
}

// Run executes the scenario. the first failing step aborts the run with a *StepError.
// the driver is closed on every path, and the returned report is filled in either way.
func (v *Verifier) Run(ctx context.Context) (rep report.Report, err error) {
	steps := Scenario(v.cfg)
	started := time.Now()

	rep = report.Report{
		Status:    status.OutcomeFailed,
		Target:    v.cfg.LoginURL,
		Browser:   v.cfg.Browser,
		StartedAt: started,
		Steps:     make([]report.StepResult, len(steps)),
	}
	for i, s := range steps {
		rep.Steps[i] = report.StepResult{Index: i + 1, Name: s.Name, Phase: s.Phase, Status: report.StepSkipped}
	}
	defer func() {
		rep.Duration = time.Since(started)
		if err == nil {
			rep.Status = status.OutcomePassed
			return
		}
		rep.Error = err.Error()
		var se *StepError
		if errors.As(err, &se) {
			rep.FailedStep = se.Name
		}
	}()

	if v.cfg.DashboardPattern == nil {
		return rep, errors.New("dashboard pattern is required")
	}

	v.phase.Set(status.PhaseSetup)
	v.log.Print("launching %s", v.cfg.Browser)
	drv, err := v.launch(ctx)
	if err != nil {
		return rep, &StepError{Index: 0, Name: "launch browser", Kind: ErrBrowserLaunch, Err: err}
	}
	defer func() {
		v.phase.Set(status.PhaseTeardown)
		if cerr := drv.Close(); cerr != nil {
			v.log.Warn("release browser: %v", cerr)
		}
	}()

	for i, step := range steps {
		if cerr := ctx.Err(); cerr != nil {
			return rep, fmt.Errorf("run interrupted before step %d %q: %w", i+1, step.Name, cerr)
		}

		v.phase.Set(step.Phase)
		v.log.PrintStep(i+1, len(steps), step.Name)

		stepStart := time.Now()
		serr := v.exec(drv, step)
		rep.Steps[i].Duration = time.Since(stepStart)
		if serr != nil {
			rep.Steps[i].Status = report.StepFailed
			rep.Steps[i].Error = serr.Error()
			se := &StepError{Index: i + 1, Name: step.Name, Kind: kindOf(step.Action, serr), Err: serr}
			v.log.Error("%v", se)
			rep.PageURL = v.pageURL(drv)
			return rep, se
		}
		rep.Steps[i].Status = report.StepPassed
		if step.Action == ActionScreenshot {
			rep.Screenshot = step.Value
		}
	}

	v.log.Print("all %d steps passed in %s", len(steps), time.Since(started).Round(time.Millisecond))
	return rep, nil
}

// pageURL returns where the page stopped, for failure diagnostics. empty if the page is gone.
func (v *Verifier) pageURL(drv Driver) string {
	u, err := drv.URL()
	if err != nil {
		v.log.Debug("page url unavailable: %v", err)
		return ""
	}
	v.log.Print("page url: %s", u)
	return u
}

// exec performs one step on the driver.
func (v *Verifier) exec(drv Driver, step Step) error {
	switch step.Action {
	case ActionGoto:
		v.log.Debug("goto %s", step.Value)
		return drv.Goto(step.Value)
	case ActionFill:
		v.log.Debug("fill %s", step.Target)
		return drv.Fill(step.Target, step.Value)
	case ActionClick:
		v.log.Debug("click %s", step.Target)
		return drv.Click(step.Target)
	case ActionWaitURL:
		v.log.Debug("wait for url %s", v.cfg.DashboardPattern)
		return drv.WaitForURL(v.cfg.DashboardPattern)
	case ActionWaitVisible:
		v.log.Debug("wait visible %s", step.Target)
		return drv.WaitVisible(step.Target)
	case ActionScreenshot:
		return v.capture(drv, step.Value)
	default:
		return fmt.Errorf("unknown action %q", step.Action)
	}
}

// capture takes a full-page screenshot and writes it to path, replacing any previous file.
func (v *Verifier) capture(drv Driver, path string) error {
	data, err := drv.Screenshot()
	if err != nil {
		return err
	}
	if len(data) == 0 {
		return errors.New("screenshot is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("create screenshot dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write screenshot: %w", err)
	}

	fi, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat screenshot: %w", err)
	}
	if fi.Size() == 0 {
		return fmt.Errorf("screenshot %s is empty", path)
	}
	v.log.Print("screenshot saved to %s (%d bytes)", path, fi.Size())
	return nil
}
