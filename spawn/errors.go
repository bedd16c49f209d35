package spawn

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	osexec "os/exec"

	"github.com/jmgilman/go/errors"
)

// ErrEmptyCommand is the cause of a LaunchError for an empty argument vector.
var ErrEmptyCommand = stderrors.New("empty command")

// LaunchError reports a process that could not be started: the program was
// not found, was not executable, or the working directory was unusable.
// It implements errors.PlatformError.
type LaunchError struct {
	// Args is the argument vector that was requested.
	Args []string

	// Err is the failure reported by the operating system.
	Err error
}

var _ errors.PlatformError = (*LaunchError)(nil)

// Error implements the error interface.
func (e *LaunchError) Error() string {
	return fmt.Sprintf("[%s] %s: %v", e.Code(), e.Message(), e.Err)
}

// Code maps the launch failure onto a workspace error code.
func (e *LaunchError) Code() errors.ErrorCode {
	switch {
	case errors.Is(e.Err, ErrEmptyCommand):
		return errors.CodeInvalidInput
	case errors.Is(e.Err, osexec.ErrNotFound), errors.Is(e.Err, fs.ErrNotExist):
		return errors.CodeNotFound
	case errors.Is(e.Err, fs.ErrPermission):
		return errors.CodeForbidden
	default:
		return errors.CodeExecutionFailed
	}
}

// Classification reports launch failures as permanent.
func (e *LaunchError) Classification() errors.ErrorClassification {
	return errors.ClassificationPermanent
}

// Message returns the error message without the cause.
func (e *LaunchError) Message() string {
	if len(e.Args) == 0 {
		return "could not start command"
	}
	return fmt.Sprintf("could not start command %q", e.Args)
}

// Context returns the requested argument vector.
func (e *LaunchError) Context() map[string]interface{} {
	return map[string]interface{}{
		"args": append([]string(nil), e.Args...),
	}
}

// Unwrap returns the underlying error.
func (e *LaunchError) Unwrap() error {
	return e.Err
}
