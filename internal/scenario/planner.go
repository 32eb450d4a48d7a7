package scenario

import (
	"fmt"
	"path/filepath"
	"time"

	"timewalker/internal/ptysession"
	"timewalker/internal/script"
	"timewalker/internal/twerr"
)

// PlannedRun pairs a lowered script.Config with the Scenario it came from,
// so callers keep access to Scenario.Name/Description for reporting.
type PlannedRun struct {
	Config   script.Config
	Scenario Scenario
}

// BuildScriptConfig lowers scenario into a script.Config ready for
// script.Driver.Run. outputDirOverride, when non-empty, takes precedence
// over the scenario's own meta.output_dir.
func BuildScriptConfig(sc Scenario, outputDirOverride string) (PlannedRun, error) {
	steps, err := planSteps(sc.Steps)
	if err != nil {
		return PlannedRun{}, err
	}

	config := script.Config{
		Command:     sc.Meta.Command,
		Steps:       steps,
		OutputDir:   resolveOutputDir(sc.Meta, outputDirOverride),
		Env:         sc.Meta.Env,
		Cwd:         sc.Meta.Cwd,
		PtySize:     sc.Meta.PtySize,
		Timeout:     sc.Meta.Timeout,
		ReadTimeout: sc.Meta.ReadTimeout,
	}
	return PlannedRun{Config: config, Scenario: sc}, nil
}

func resolveOutputDir(meta Meta, override string) string {
	if override != "" {
		return override
	}
	if meta.OutputDir != "" {
		return meta.OutputDir
	}
	identifier := meta.Identifier
	if identifier == "" {
		identifier = "session"
	}
	return filepath.Join("e2e_timewalker_runs", identifier)
}

func planSteps(steps []Step) ([]script.Step, error) {
	planned := make([]script.Step, 0, len(steps))
	for _, s := range steps {
		step, err := planStep(s)
		if err != nil {
			return nil, err
		}
		planned = append(planned, step)
	}
	return planned, nil
}

func planStep(s Step) (script.Step, error) {
	switch s.Kind {
	case StepCommand:
		var expectTimeout time.Duration
		if s.Timeout != nil {
			expectTimeout = *s.Timeout
		}
		cond, err := toCondition(s.Expect)
		if err != nil {
			return nil, err
		}
		return script.InputStep{
			Payload:       s.Run,
			Mark:          s.Mark,
			Expect:        cond,
			ExpectTimeout: expectTimeout,
			Delay:         s.Delay,
			SendNewline:   s.SendNewline,
		}, nil

	case StepWait:
		cond, err := toCondition(s.Expect)
		if err != nil {
			return nil, err
		}
		if cond == nil {
			return nil, fmt.Errorf("wait step: %w: requires expect", twerr.ErrInvalidArgument)
		}
		var timeout time.Duration
		if s.Timeout != nil {
			timeout = *s.Timeout
		}
		return script.WaitStep{Condition: *cond, Timeout: timeout}, nil

	case StepSnapshot:
		return script.MarkStep{Label: s.Label}, nil

	case StepResize:
		return script.ResizeStep{Size: ptysession.Size{Rows: s.Rows, Cols: s.Cols}}, nil

	default:
		return nil, fmt.Errorf("plan step: %w: unsupported step kind %q", twerr.ErrInvariantViolation, s.Kind)
	}
}

func toCondition(exp *Expectation) (*script.Condition, error) {
	if exp == nil {
		return nil, nil
	}
	cond, err := script.NewCondition(exp.Contains, exp.Regex, nil)
	if err != nil {
		return nil, err
	}
	return &cond, nil
}
