package script

import (
	"time"

	"timewalker/internal/ptysession"
)

// Step is the tagged union of scripted actions the driver interprets. A
// single type switch in Driver.executeSteps dispatches the four cases.
type Step interface {
	isStep()
}

// InputStep writes payload to the PTY, optionally marking a keyframe
// before waiting for an output condition.
type InputStep struct {
	Payload       string
	Mark          string        // empty means "no mark"
	Expect        *Condition    // nil means "don't wait"
	ExpectTimeout time.Duration // used only when Expect != nil; 0 means "use the 5s default"
	Delay         time.Duration
	SendNewline   bool
}

// WaitStep blocks until condition holds or timeout elapses.
type WaitStep struct {
	Condition Condition
	Timeout   time.Duration
}

// MarkStep records a keyframe under label without writing any input.
type MarkStep struct {
	Label string
}

// ResizeStep changes the PTY window size.
type ResizeStep struct {
	Size ptysession.Size
}

func (InputStep) isStep()  {}
func (WaitStep) isStep()   {}
func (MarkStep) isStep()   {}
func (ResizeStep) isStep() {}

// DefaultExpectTimeout is used for InputStep.Expect when ExpectTimeout is
// unset (zero).
const DefaultExpectTimeout = 5 * time.Second
