// Package twerr defines the sentinel error kinds shared across the capture
// and replay engine. Call sites wrap one of these with fmt.Errorf("...: %w",
// ...) for context; callers use errors.Is against the sentinel to classify
// a failure.
package twerr

import "errors"

var (
	// ErrInvalidArgument covers malformed input: an empty command, an
	// OutputCondition with no predicate set, an unknown step variant.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrTimeout covers a PTY read or child-exit wait exceeding its budget.
	ErrTimeout = errors.New("timeout")

	// ErrExpectationTimeout covers an InputStep's expect condition not
	// becoming true within its budget.
	ErrExpectationTimeout = errors.New("expectation timeout")

	// ErrWaitTimeout covers a WaitStep's condition not becoming true
	// within its budget.
	ErrWaitTimeout = errors.New("wait timeout")

	// ErrIO covers PTY/fd syscall failures surfaced unchanged.
	ErrIO = errors.New("io error")

	// ErrSchemaValidation covers a scenario document rejected by the
	// scenario JSON schema.
	ErrSchemaValidation = errors.New("schema validation")

	// ErrInvariantViolation covers internal defensive errors that should
	// be unreachable absent a bug.
	ErrInvariantViolation = errors.New("invariant violation")

	// ErrNotInitialized covers use of a PTY session before open or after
	// close.
	ErrNotInitialized = errors.New("not initialized")
)
