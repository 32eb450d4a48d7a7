package scenario

import (
	"time"

	"timewalker/internal/ptysession"
)

// Expectation is the output condition attached to a command or wait step
// in scenario source: "contains" and/or "regex" text to match against the
// accumulated output buffer.
type Expectation struct {
	Contains string
	Regex    string
}

// Meta is a scenario's top-level run configuration.
type Meta struct {
	Command     []string
	Cwd         string
	Env         map[string]string
	PtySize     ptysession.Size
	Timeout     time.Duration
	ReadTimeout time.Duration
	OutputDir   string
	Identifier  string
}

// StepKind discriminates the four scenario step shapes.
type StepKind string

const (
	StepCommand  StepKind = "command"
	StepWait     StepKind = "wait"
	StepSnapshot StepKind = "snapshot"
	StepResize   StepKind = "resize"
)

// Step is one entry in a scenario's step list. Only the fields relevant
// to Kind are populated.
type Step struct {
	Kind        StepKind
	Run         string
	Mark        string
	Expect      *Expectation
	Timeout     *time.Duration
	Delay       time.Duration
	SendNewline bool
	Label       string
	Rows        int
	Cols        int
}

// Scenario is a fully parsed and schema-validated scenario document.
type Scenario struct {
	Meta        Meta
	Steps       []Step
	Name        string
	Description string
}
