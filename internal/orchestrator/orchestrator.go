// Package orchestrator wires scenario loading, planning, and script
// execution into a single entry point, then correlates the recorded
// keyframes against a VT replay of the capture.
package orchestrator

import (
	"timewalker/internal/correlate"
	"timewalker/internal/keyframe"
	"timewalker/internal/normalize"
	"timewalker/internal/scenario"
	"timewalker/internal/script"
	"timewalker/internal/vtreplay"
)

// runner abstracts script.Driver so tests can substitute a stub without a
// real PTY.
type runner interface {
	Run(config script.Config) (script.SessionArtifacts, error)
}

// Result is what Orchestrator.Run returns: the raw artifacts
// plus a replay of the capture and the keyframes resolved against it.
type Result struct {
	Artifacts script.SessionArtifacts
	Replay    vtreplay.ReplayResult
	Keyframes map[string]vtreplay.ScreenState
	Scenario  scenario.Scenario
}

// Orchestrator runs a scenario end to end: load, plan, execute, replay,
// correlate.
type Orchestrator struct {
	driver runner

	// Capabilities controls which escape sequence classes the post-capture
	// replay strips before feeding the VT engine. Zero value strips both
	// DEC private mode sequences and OSC sequences.
	Capabilities normalize.Capabilities
}

// New constructs an Orchestrator. driver defaults to script.NewDriver()
// when nil.
func New(driver runner) *Orchestrator {
	if driver == nil {
		driver = script.NewDriver()
	}
	return &Orchestrator{driver: driver}
}

// RunFile loads a scenario document from path, plans it (outputDirOverride
// takes precedence over the scenario's own output_dir when non-empty),
// executes it, and replays+correlates the resulting capture.
func (o *Orchestrator) RunFile(path string, outputDirOverride string) (Result, error) {
	sc, err := scenario.LoadFile(path)
	if err != nil {
		return Result{}, err
	}
	return o.Run(sc, outputDirOverride)
}

// Run plans and executes an already-loaded scenario.
func (o *Orchestrator) Run(sc scenario.Scenario, outputDirOverride string) (Result, error) {
	planned, err := scenario.BuildScriptConfig(sc, outputDirOverride)
	if err != nil {
		return Result{}, err
	}

	artifacts, err := o.driver.Run(planned.Config)
	if err != nil {
		return Result{}, err
	}

	parser := vtreplay.NewParser(vtreplay.Options{
		Rows:         planned.Config.PtySize.Rows,
		Cols:         planned.Config.PtySize.Cols,
		Capabilities: o.Capabilities,
	})
	replay, err := parser.Parse(artifacts.AnsiPath)
	if err != nil {
		return Result{}, err
	}

	resolved := correlate.Correlate(replay.States, keyframesFrom(artifacts))

	return Result{
		Artifacts: artifacts,
		Replay:    replay,
		Keyframes: resolved,
		Scenario:  sc,
	}, nil
}

func keyframesFrom(artifacts script.SessionArtifacts) []keyframe.Frame {
	return artifacts.Keyframes
}
