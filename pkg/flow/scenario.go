package flow

import (
	"github.com/umputun/flowcheck/pkg/browser"
	"github.com/umputun/flowcheck/pkg/status"
)

// Action is what a step does with the page.
type Action string

// step actions
const (
	ActionGoto        Action = "goto"
	ActionFill        Action = "fill"
	ActionClick       Action = "click"
	ActionWaitURL     Action = "wait-url"
	ActionWaitVisible Action = "wait-visible"
	ActionScreenshot  Action = "screenshot"
)

// Step is one interaction of the scenario.
type Step struct {
	Name   string
	Phase  status.Phase
	Action Action
	Target browser.Locator // element for fill, click and wait-visible
	Value  string          // url for goto, text for fill, pattern for wait-url, path for screenshot
}

// Scenario returns the ordered steps: log in, wait for the board, add a task through the dialog,
// check that the task shows up and capture the page.
func Scenario(cfg Config) []Step {
	pattern := ""
	if cfg.DashboardPattern != nil {
		pattern = cfg.DashboardPattern.String()
	}
	return []Step{
		{Name: "open login page", Phase: status.PhaseLogin, Action: ActionGoto, Value: cfg.LoginURL},
		{Name: "fill username", Phase: status.PhaseLogin, Action: ActionFill,
			Target: browser.CSS(`input[name="username"]`), Value: cfg.Username},
		{Name: "fill password", Phase: status.PhaseLogin, Action: ActionFill,
			Target: browser.CSS(`input[name="password"]`), Value: cfg.Password},
		{Name: "click Login", Phase: status.PhaseLogin, Action: ActionClick, Target: browser.Role("button", "Login")},
		{Name: "wait for dashboard", Phase: status.PhaseLogin, Action: ActionWaitURL, Value: pattern},
		{Name: "click Add New Task", Phase: status.PhaseTask, Action: ActionClick,
			Target: browser.Role("button", "Add New Task")},
		{Name: "wait for Add New Task dialog", Phase: status.PhaseTask, Action: ActionWaitVisible,
			Target: browser.Role("heading", "Add New Task")},
		{Name: "fill Title", Phase: status.PhaseTask, Action: ActionFill, Target: browser.Label("Title"), Value: cfg.TaskTitle},
		{Name: "fill Description", Phase: status.PhaseTask, Action: ActionFill,
			Target: browser.Label("Description"), Value: cfg.TaskDescription},
		{Name: "click Add Task", Phase: status.PhaseTask, Action: ActionClick, Target: browser.Role("button", "Add Task")},
		{Name: "verify task title", Phase: status.PhaseVerify, Action: ActionWaitVisible, Target: browser.Text(cfg.TaskTitle)},
		{Name: "verify task description", Phase: status.PhaseVerify, Action: ActionWaitVisible,
			Target: browser.Text(cfg.TaskDescription)},
		{Name: "capture screenshot", Phase: status.PhaseCapture, Action: ActionScreenshot, Value: cfg.ScreenshotPath},
	}
}
