// Package script implements the Script Driver: a single-threaded step
// interpreter that drives a PTY session, records keyframes, and
// cooperates with a background Output Pump via a thread-safe buffer.
package script

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"timewalker/internal/keyframe"
	"timewalker/internal/outputbuffer"
	"timewalker/internal/ptysession"
	"timewalker/internal/pump"
	"timewalker/internal/recorder"
	"timewalker/internal/twerr"
)

// pumpJoinTimeout bounds how long Run waits for the pump's drain phase
// during cleanup before giving up and releasing resources anyway.
const pumpJoinTimeout = 2 * time.Second

// Driver executes a scripted scenario against a fresh PTY session and
// returns the captured artifacts.
type Driver struct{}

// NewDriver constructs a Driver. It holds no state: every run opens and
// releases its own Session/Recorder/Registry/Buffer/Pump.
func NewDriver() *Driver {
	return &Driver{}
}

// Run executes config end to end. On any exit path — success or a step
// failure — the pump is stopped and joined, the registry is flushed with
// whatever keyframes were recorded, and the Recorder and Session are
// released, before the error (if any) propagates to the caller.
func (d *Driver) Run(config Config) (SessionArtifacts, error) {
	runID := uuid.New().String()

	if err := os.MkdirAll(config.OutputDir, 0o755); err != nil {
		return SessionArtifacts{}, fmt.Errorf("create output dir: %w: %v", twerr.ErrIO, err)
	}
	ansiPath := filepath.Join(config.OutputDir, "ansi.bin")
	keyframePath := filepath.Join(config.OutputDir, "keyframes.json")

	session, err := ptysession.Open(config.Command, config.PtySize, config.Env, config.Cwd)
	if err != nil {
		return SessionArtifacts{}, err
	}

	rec, err := recorder.Open(ansiPath)
	if err != nil {
		_ = session.Close()
		return SessionArtifacts{}, err
	}

	registry := keyframe.NewRegistry(rec, keyframePath)
	buffer := outputbuffer.New()

	readTimeout := config.ReadTimeout
	if readTimeout <= 0 {
		readTimeout = 200 * time.Millisecond
	}
	p := pump.New(session, rec, buffer, readTimeout)
	p.Start()

	var exitStatus ptysession.ExitStatus
	var runErr error
	func() {
		defer func() {
			p.Stop()
			p.Join(pumpJoinTimeout)
			_ = registry.Flush()
			_ = rec.Close()
			_ = session.Close()
		}()

		if runErr = d.executeSteps(config.Steps, session, registry, buffer); runErr != nil {
			return
		}

		timeout := config.Timeout
		if timeout <= 0 {
			timeout = 60 * time.Second
		}
		exitStatus, runErr = session.Wait(timeout)
	}()

	if runErr != nil {
		return SessionArtifacts{}, runErr
	}

	return SessionArtifacts{
		RunID:      runID,
		ExitStatus: exitStatus.Returncode,
		Signal:     exitStatus.Signal,
		AnsiPath:   ansiPath,
		Keyframes:  registry.Records(),
	}, nil
}

func (d *Driver) executeSteps(steps []Step, session *ptysession.Session, registry *keyframe.Registry, buffer *outputbuffer.Buffer) error {
	for _, step := range steps {
		switch s := step.(type) {
		case InputStep:
			if err := d.runInputStep(s, session, registry, buffer); err != nil {
				return err
			}
		case WaitStep:
			if err := d.runWaitStep(s, buffer); err != nil {
				return err
			}
		case MarkStep:
			registry.Mark(s.Label)
		case ResizeStep:
			if err := session.Resize(s.Size); err != nil {
				return err
			}
		default:
			return fmt.Errorf("execute step: %w: unsupported step type %T", twerr.ErrInvariantViolation, step)
		}
	}
	return nil
}

// runInputStep sleeps the configured delay, writes the UTF-8 payload
// (appending a trailing newline when SendNewline is set and the payload
// does not already end in one), marks the registry before waiting on Expect so the
// recorded offset denotes the post-write/pre-output boundary, then waits
// on Expect if present.
func (d *Driver) runInputStep(step InputStep, session *ptysession.Session, registry *keyframe.Registry, buffer *outputbuffer.Buffer) error {
	if step.Delay > 0 {
		time.Sleep(step.Delay)
	}

	payload := []byte(step.Payload)
	if step.SendNewline && (len(payload) == 0 || payload[len(payload)-1] != '\n') {
		payload = append(payload, '\n')
	}
	if _, err := session.Write(payload); err != nil {
		return err
	}

	if step.Mark != "" {
		registry.Mark(step.Mark)
	}

	if step.Expect != nil {
		timeout := step.ExpectTimeout
		if timeout <= 0 {
			timeout = DefaultExpectTimeout
		}
		if !buffer.WaitUntil(step.Expect.Matches, timeout) {
			return newExpectationTimeout(*step.Expect, tail(buffer.AsText(), 200))
		}
	}
	return nil
}

func (d *Driver) runWaitStep(step WaitStep, buffer *outputbuffer.Buffer) error {
	if !buffer.WaitUntil(step.Condition.Matches, step.Timeout) {
		return newWaitTimeout(step.Condition, tail(buffer.AsText(), 200))
	}
	return nil
}
