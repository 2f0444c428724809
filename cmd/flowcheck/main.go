// Package main provides flowcheck - a browser smoke check of the login and add-task flow of a task board.
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"regexp"
	"strings"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/umputun/flowcheck/pkg/browser"
	"github.com/umputun/flowcheck/pkg/config"
	"github.com/umputun/flowcheck/pkg/flow"
	"github.com/umputun/flowcheck/pkg/git"
	"github.com/umputun/flowcheck/pkg/notify"
	"github.com/umputun/flowcheck/pkg/progress"
	"github.com/umputun/flowcheck/pkg/render"
	"github.com/umputun/flowcheck/pkg/report"
	"github.com/umputun/flowcheck/pkg/status"
	"github.com/umputun/flowcheck/pkg/web"
)

// opts holds all command-line options.
type opts struct {
	Config  string `short:"c" long:"config" default:".flowcheck/config" description:"local config file"`
	BaseURL string `short:"u" long:"base-url" description:"target application url, overrides base_url"`
	Headed  bool   `long:"headed" description:"show the browser window"`
	Debug   bool   `short:"d" long:"debug" description:"enable debug logging"`
	NoColor bool   `long:"no-color" description:"disable color output"`
	Version bool   `short:"v" long:"version" description:"print version and exit"`
	Init    bool   `long:"init" description:"write the default config to the local config file and exit"`
	Demo    bool   `long:"demo" description:"run against the built-in demo board"`
	Serve   bool   `short:"s" long:"serve" description:"serve the built-in demo board until interrupted"`
	Port    int    `short:"p" long:"port" default:"5173" description:"demo board port"`
}

var revision = "unknown"

func main() {
	fmt.Printf("flowcheck %s\n", revision)

	var o opts
	parser := flags.NewParser(&o, flags.Default)
	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if o.Version {
		os.Exit(0)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	restoreTerm := quietInterrupt()

	err := run(ctx, o)
	restoreTerm()
	cancel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, o opts) error {
	if o.Init {
		return initConfig(o.Config)
	}
	if o.Demo && o.BaseURL != "" {
		return errors.New("--demo verifies the built-in board, it can't be combined with --base-url")
	}

	cfg, err := config.LoadWithLocal("", o.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	colors := progress.NewColors(cfg.Colors)

	if o.Serve {
		colors.Info().Printf("demo board: http://localhost:%d/login (%s / %s)\n", o.Port, cfg.Username, cfg.Password)
		srv, srvErr := newDemoServer(cfg, o.Port)
		if srvErr != nil {
			return srvErr
		}
		return srv.Start(ctx)
	}

	if o.Demo {
		stop, demoErr := startDemo(ctx, cfg, o.Port)
		if demoErr != nil {
			return demoErr
		}
		defer stop()
		cfg.BaseURL = fmt.Sprintf("http://localhost:%d", o.Port)
		colors.Info().Printf("demo board started on %s\n", cfg.BaseURL)
	}
	if err = applyOverrides(&cfg.Values, o); err != nil {
		return err
	}

	flowCfg, err := flowConfig(cfg.Values)
	if err != nil {
		return err
	}

	logger, err := progress.NewLogger(progress.Config{
		LogFile: cfg.LogFile,
		Target:  flowCfg.LoginURL,
		Browser: cfg.Browser,
		NoColor: o.NoColor,
		Debug:   o.Debug,
	}, colors)
	if err != nil {
		return fmt.Errorf("create progress logger: %w", err)
	}
	defer logger.Close()

	notifier, err := notify.New(cfg.Notify, logger)
	if err != nil {
		return fmt.Errorf("create notifier: %w", err)
	}

	repo := repoInfo(logger)
	printStartupInfo(flowCfg, cfg, repo, logger.Path(), colors)

	phase := &status.PhaseHolder{}
	phase.OnChange(func(_, cur status.Phase) { logger.SetPhase(cur) })

	verifier := flow.New(flowCfg, flow.BrowserLauncher(browserOptions(cfg.Values)), logger, phase)
	rep, runErr := verifier.Run(ctx)
	rep.Branch, rep.Commit = repo.Branch, repo.Commit

	summary, err := render.Summary(rep, summaryOptions(cfg.Values, o))
	if err != nil {
		logger.Warn("render summary: %v", err)
		summary = rep.Markdown()
	}
	fmt.Print("\n" + summary)

	if err := rep.WriteYAML(cfg.ReportFile); err != nil {
		logger.Warn("%v", err)
	} else if cfg.ReportFile != "" {
		colors.Info().Printf("report written to %s\n", cfg.ReportFile)
	}

	notifier.Send(context.WithoutCancel(ctx), notifyResult(rep, logger.Elapsed()))

	if runErr != nil {
		// the full error, call log included, is already in the step log
		return fmt.Errorf("verification failed: %s", firstLine(runErr.Error()))
	}
	colors.Info().Printf("\ncompleted in %s\n", logger.Elapsed())
	return nil
}

// initConfig writes the embedded defaults to path, leaving an existing file untouched.
func initConfig(path string) error {
	written, err := config.InstallLocal(path)
	if err != nil {
		return fmt.Errorf("init config: %w", err)
	}
	if !written {
		fmt.Printf("config %s already exists, not overwritten\n", path)
		return nil
	}
	fmt.Printf("default config written to %s\n", path)
	return nil
}

// applyOverrides applies command-line overrides on top of the loaded config and validates the result.
func applyOverrides(v *config.Values, o opts) error {
	if o.BaseURL != "" {
		v.BaseURL = o.BaseURL
	}
	if o.Headed {
		v.Headless = false
	}
	if err := v.Validate(); err != nil {
		return fmt.Errorf("invalid command-line override: %w", err)
	}
	return nil
}

// firstLine returns s up to the first newline.
func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// flowConfig builds the scenario inputs from config values.
func flowConfig(v config.Values) (flow.Config, error) {
	pattern, err := regexp.Compile(v.DashboardPattern)
	if err != nil {
		return flow.Config{}, fmt.Errorf("compile dashboard pattern: %w", err)
	}
	return flow.Config{
		LoginURL:         v.LoginURL(),
		DashboardPattern: pattern,
		Username:         v.Username,
		Password:         v.Password,
		TaskTitle:        v.TaskTitle,
		TaskDescription:  v.TaskDescription,
		ScreenshotPath:   v.ScreenshotPath,
		Browser:          v.Browser,
	}, nil
}

// browserOptions maps config values to browser session options.
func browserOptions(v config.Values) browser.Options {
	return browser.Options{
		Browser:        v.Browser,
		Headless:       v.Headless,
		SlowMo:         time.Duration(v.SlowMoMs) * time.Millisecond,
		ViewportWidth:  v.ViewportWidth,
		ViewportHeight: v.ViewportHeight,
		Timeout:        time.Duration(v.TimeoutMs) * time.Millisecond,
		ExpectTimeout:  time.Duration(v.ExpectTimeoutMs) * time.Millisecond,
		Install:        v.InstallBrowsers,
	}
}

// summaryOptions sizes the run summary to the terminal and applies the configured glamour style.
func summaryOptions(v config.Values, o opts) render.Options {
	return render.Options{NoColor: o.NoColor, Width: progress.TerminalWidth(), Style: v.SummaryStyle}
}

// notifyResult converts a run report into a notification payload.
func notifyResult(r report.Report, elapsed string) notify.Result {
	return notify.Result{
		Status:     r.Status,
		Target:     r.Target,
		Browser:    r.Browser,
		Branch:     r.Branch,
		Commit:     r.Commit,
		Duration:   elapsed,
		Steps:      r.Executed(),
		FailedStep: r.FailedStep,
		Screenshot: r.Screenshot,
		Error:      r.Error,
	}
}

// repoInfo reads branch and commit of the working directory. failures other than
// "not a repository" are logged and ignored.
func repoInfo(logger *progress.Logger) git.Info {
	info, err := git.Read(".")
	if err != nil {
		if !errors.Is(err, git.ErrNotRepo) {
			logger.Warn("git info unavailable: %v", err)
		}
		return git.Info{}
	}
	return info
}

// configSources describes the config layers in effect, so a stray global or local file
// changing the scenario inputs is visible.
func configSources(files []string) string {
	if len(files) == 0 {
		return "built-in defaults"
	}
	return "built-in defaults + " + strings.Join(files, " + ")
}

func newDemoServer(cfg *config.Config, port int) (*web.Server, error) {
	srv, err := web.NewServer(web.ServerConfig{Port: port, Username: cfg.Username, Password: cfg.Password})
	if err != nil {
		return nil, fmt.Errorf("create demo board: %w", err)
	}
	return srv, nil
}

// startDemo binds the demo board port and serves it in the background.
// the returned func stops the server.
func startDemo(ctx context.Context, cfg *config.Config, port int) (func(), error) {
	srv, err := newDemoServer(cfg, port)
	if err != nil {
		return nil, err
	}
	ln, err := net.Listen("tcp", fmt.Sprintf("localhost:%d", port))
	if err != nil {
		return nil, fmt.Errorf("listen on demo port %d: %w", port, err)
	}
	go func() {
		if srvErr := srv.Serve(ctx, ln); srvErr != nil {
			fmt.Fprintf(os.Stderr, "demo board error: %v\n", srvErr)
		}
	}()
	return func() { _ = srv.Stop() }, nil
}

func printStartupInfo(fc flow.Config, cfg *config.Config, repo git.Info, logPath string, colors *progress.Colors) {
	mode := "headless"
	if !cfg.Headless {
		mode = "headed"
	}
	colors.Info().Printf("verifying %s with %s (%s)\n", fc.LoginURL, cfg.Browser, mode)
	colors.Info().Printf("config: %s\n", configSources(cfg.Sources()))
	if rev := repo.Revision(); rev != "" {
		colors.Info().Printf("branch: %s\n", rev)
	}
	colors.Info().Printf("screenshot: %s\n", fc.ScreenshotPath)
	if logPath != "" {
		colors.Info().Printf("log: %s\n", logPath)
	}
	fmt.Println()
}
