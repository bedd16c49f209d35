package spawn

import (
	"context"
	"io"
)

//go:generate go run github.com/matryer/moq@latest -out mocks/spawner.go -pkg mocks . Spawner

// Spawner runs a process described by a Request and waits for it to exit.
type Spawner interface {
	// Spawn starts the process and blocks until it exits.
	// A non-zero exit status is reported in the Outcome rather than as an error.
	// A process that cannot be started yields a *LaunchError.
	Spawn(ctx context.Context, req *Request) (*Outcome, error)
}

// Request describes a single process invocation.
type Request struct {
	// Args is the argument vector. Args[0] names the program and is resolved
	// through PATH when it contains no path separator.
	Args []string

	// Dir is the working directory. Empty inherits the caller's directory.
	Dir string

	// Env is the complete environment in "KEY=value" form.
	// A nil Env inherits the caller's environment; a non-nil empty Env runs
	// the process with no variables at all.
	Env []string

	// Stdin is the process's standard input. Nil uses the Command default.
	Stdin io.Reader

	// Stdout receives standard output. Nil uses the Command default, unless
	// the stream is captured.
	Stdout io.Writer

	// Stderr receives standard error. Nil uses the Command default, unless
	// the stream is captured.
	Stderr io.Writer

	// CaptureStdout records standard output in Outcome.Stdout.
	CaptureStdout bool

	// CaptureStderr records standard error in Outcome.Stderr.
	CaptureStderr bool
}

// Outcome is what a finished process left behind.
type Outcome struct {
	// ExitCode is the exit status, or -1 if the process was killed by a signal.
	ExitCode int

	// Stdout is the captured standard output, empty unless captured.
	Stdout string

	// Stderr is the captured standard error, empty unless captured.
	Stderr string
}
