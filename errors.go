package subprocess

import (
	"fmt"

	"al.essio.dev/pkg/shellescape"
	"github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/subprocess/spawn"
)

// LaunchError reports a command that could not be started.
// It is returned unchanged from the spawn package.
type LaunchError = spawn.LaunchError

// TypeError reports a value that is neither a string nor a PathLike where
// one was required. It implements errors.PlatformError with code
// INVALID_INPUT.
type TypeError struct {
	// Field names the offending value, e.g. "argument 2" or `env["HOME"]`.
	Field string

	// Value is the rejected value.
	Value any
}

var _ errors.PlatformError = (*TypeError)(nil)

// Error implements the error interface.
func (e *TypeError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code(), e.Message())
}

// Code returns errors.CodeInvalidInput.
func (e *TypeError) Code() errors.ErrorCode {
	return errors.CodeInvalidInput
}

// Classification returns errors.ClassificationPermanent.
func (e *TypeError) Classification() errors.ErrorClassification {
	return errors.ClassificationPermanent
}

// Message returns the error message.
func (e *TypeError) Message() string {
	if e.Value == nil {
		return fmt.Sprintf("%s: expected string or PathLike, got nil", e.Field)
	}
	return fmt.Sprintf("%s: expected string or PathLike, got %T %#v", e.Field, e.Value, e.Value)
}

// Context returns the field name and a rendering of the rejected value.
func (e *TypeError) Context() map[string]interface{} {
	return map[string]interface{}{
		"field": e.Field,
		"value": fmt.Sprintf("%#v", e.Value),
	}
}

// Unwrap returns nil; a TypeError has no cause.
func (e *TypeError) Unwrap() error {
	return nil
}

// CommandFailedError reports a command that ran but exited with a non-zero
// status while success-checking was enabled. It implements
// errors.PlatformError with code EXECUTION_FAILED.
type CommandFailedError struct {
	// Args is the argument vector that was executed.
	Args []string

	// ExitCode is the exit status, or -1 if the process was killed by a signal.
	ExitCode int

	// Stdout is the captured standard output, if it was captured.
	Stdout string

	// Stderr is the captured standard error, if it was captured.
	Stderr string
}

var _ errors.PlatformError = (*CommandFailedError)(nil)

// Error implements the error interface.
func (e *CommandFailedError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code(), e.Message())
}

// Code returns errors.CodeExecutionFailed.
func (e *CommandFailedError) Code() errors.ErrorCode {
	return errors.CodeExecutionFailed
}

// Classification returns errors.ClassificationPermanent.
func (e *CommandFailedError) Classification() errors.ErrorClassification {
	return errors.ClassificationPermanent
}

// Message returns the error message.
func (e *CommandFailedError) Message() string {
	return fmt.Sprintf("command %s exited with status %d", shellescape.QuoteCommand(e.Args), e.ExitCode)
}

// Context returns the command, its exit status and any captured output.
func (e *CommandFailedError) Context() map[string]interface{} {
	ctx := map[string]interface{}{
		"args":      append([]string(nil), e.Args...),
		"exit_code": e.ExitCode,
	}
	if e.Stdout != "" {
		ctx["stdout"] = e.Stdout
	}
	if e.Stderr != "" {
		ctx["stderr"] = e.Stderr
	}
	return ctx
}

// Unwrap returns nil; the failure is the exit status itself.
func (e *CommandFailedError) Unwrap() error {
	return nil
}
