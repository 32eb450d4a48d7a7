package script

import (
	"fmt"

	"timewalker/internal/twerr"
)

// ConditionTimeoutError is raised when an InputStep.Expect or WaitStep
// condition does not become true within its budget. It carries the
// expectation and the last <=200 bytes of decoded buffer tail, per the
// driver's error-payload contract.
type ConditionTimeoutError struct {
	Kind       string // "expectation" or "wait"
	Condition  Condition
	BufferTail string
	sentinel   error
}

func (e *ConditionTimeoutError) Error() string {
	label := "Condition not met for input step"
	if e.Kind == "wait" {
		label = "Wait step timed out"
	}
	return fmt.Sprintf("%s. Expectation: %s, buffer tail: %s", label, e.Condition.String(), e.BufferTail)
}

func (e *ConditionTimeoutError) Unwrap() error {
	return e.sentinel
}

func newExpectationTimeout(cond Condition, tail string) *ConditionTimeoutError {
	return &ConditionTimeoutError{Kind: "expectation", Condition: cond, BufferTail: tail, sentinel: twerr.ErrExpectationTimeout}
}

func newWaitTimeout(cond Condition, tail string) *ConditionTimeoutError {
	return &ConditionTimeoutError{Kind: "wait", Condition: cond, BufferTail: tail, sentinel: twerr.ErrWaitTimeout}
}

// tail returns the last n bytes of s, safe for any string length.
func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
