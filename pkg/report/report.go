// Package report holds the outcome of a verification run and renders it as markdown or YAML.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/umputun/flowcheck/pkg/status"
)

// step statuses
const (
	StepPassed  = "passed"
	StepFailed  = "failed"
	StepSkipped = "skipped"
)

// Report is the outcome of one run.
type Report struct {
	Status     string        `yaml:"status"` // status.OutcomePassed or status.OutcomeFailed
	Target     string        `yaml:"target"`
	Browser    string        `yaml:"browser"`
	Branch     string        `yaml:"branch,omitempty"`
	Commit     string        `yaml:"commit,omitempty"`
	StartedAt  time.Time     `yaml:"started_at"`
	Duration   time.Duration `yaml:"duration"`
	Screenshot string        `yaml:"screenshot,omitempty"`
	FailedStep string        `yaml:"failed_step,omitempty"`
	PageURL    string        `yaml:"page_url,omitempty"` // page url when the failed step stopped
	Error      string        `yaml:"error,omitempty"`
	Steps      []StepResult  `yaml:"steps"`
}

// StepResult is the outcome of one scenario step.
type StepResult struct {
	Index    int           `yaml:"index"`
	Name     string        `yaml:"name"`
	Phase    status.Phase  `yaml:"phase"`
	Status   string        `yaml:"status"`
	Duration time.Duration `yaml:"duration"`
	Error    string        `yaml:"error,omitempty"`
}

// Passed reports whether the run succeeded.
func (r Report) Passed() bool { return r.Status == status.OutcomePassed }

// Executed returns the number of steps that actually ran.
func (r Report) Executed() int {
	n := 0
	for _, s := range r.Steps {
		if s.Status != StepSkipped {
			n++
		}
	}
	return n
}

// Markdown renders the report as a markdown summary.
func (r Report) Markdown() string {
	var b strings.Builder

	fmt.Fprintf(&b, "# flowcheck %s\n\n", r.Status)
	b.WriteString("| | |\n|---|---|\n")
	row := func(k, v string) {
		if v != "" {
			fmt.Fprintf(&b, "| %s | %s |\n", k, escapeCell(v))
		}
	}
	row("target", r.Target)
	row("browser", r.Browser)
	if r.Branch != "" {
		rev := r.Branch
		if r.Commit != "" {
			rev += " @ " + r.Commit
		}
		row("branch", rev)
	}
	row("duration", roundDuration(r.Duration))
	row("screenshot", r.Screenshot)

	if len(r.Steps) > 0 {
		b.WriteString("\n## Steps\n\n")
		b.WriteString("| # | phase | step | status | duration |\n|---|---|---|---|---|\n")
		for _, s := range r.Steps {
			dur := ""
			if s.Status != StepSkipped {
				dur = roundDuration(s.Duration)
			}
			fmt.Fprintf(&b, "| %d | %s | %s | %s | %s |\n", s.Index, s.Phase, escapeCell(s.Name), s.Status, dur)
		}
	}

	if r.FailedStep != "" || r.Error != "" {
		b.WriteString("\n## Failure\n\n")
		if r.FailedStep != "" {
			fmt.Fprintf(&b, "**step:** %s\n\n", r.FailedStep)
		}
		if r.PageURL != "" {
			fmt.Fprintf(&b, "**page:** %s\n\n", r.PageURL)
		}
		if r.Error != "" {
			fmt.Fprintf(&b, "```\n%s\n```\n", r.Error)
		}
	}

	return b.String()
}

// WriteYAML writes the report to path, creating the parent directory. empty path is a no-op.
func (r Report) WriteYAML(path string) error {
	if path == "" {
		return nil
	}
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func roundDuration(d time.Duration) string {
	if d <= 0 {
		return "0s"
	}
	return d.Round(time.Millisecond).String()
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.ReplaceAll(s, "\n", " ")
}
