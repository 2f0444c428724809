// Package status defines shared execution-model types for flowcheck.
// phase types used by flow, progress and report packages.
package status

// Phase represents a scenario phase, used for color coding and report grouping.
type Phase string

// Phase constants for scenario stages.
const (
	PhaseSetup    Phase = "setup"    // browser acquisition and release (white)
	PhaseLogin    Phase = "login"    // login form and dashboard navigation (green)
	PhaseTask     Phase = "task"     // add-task dialog interaction (cyan)
	PhaseVerify   Phase = "verify"   // rendered text assertions (magenta)
	PhaseCapture  Phase = "capture"  // screenshot capture (info color)
	PhaseTeardown Phase = "teardown" // session release
)

// Phases returns all scenario phases in execution order.
func Phases() []Phase {
	return []Phase{PhaseSetup, PhaseLogin, PhaseTask, PhaseVerify, PhaseCapture, PhaseTeardown}
}

// Outcome values shared by report and notify.
const (
	OutcomePassed = "passed"
	OutcomeFailed = "failed"
)
