package subprocess

import (
	"context"
	"io"
	"log/slog"
	"maps"
)

// CallOption overrides a default for a single call.
type CallOption func(*Call)

// WithCheck returns a CallOption that turns success-checking on or off.
func WithCheck(check bool) CallOption {
	return func(c *Call) {
		c.check = &check
	}
}

// WithCwd returns a CallOption that sets the working directory, a string or
// PathLike. Nil or "" inherits the caller's directory.
func WithCwd(cwd any) CallOption {
	return func(c *Call) {
		c.cwd = cwd
		c.cwdSet = true
	}
}

// WithEnv returns a CallOption that replaces the whole environment with env.
// Neither the inherited environment nor the defaults' overlay is merged in.
// A nil map runs the command with the caller's environment as it is.
func WithEnv(env map[string]any) CallOption {
	env = maps.Clone(env)
	return func(c *Call) {
		c.env = env
		c.envSet = true
	}
}

// WithLogLevel returns a CallOption that sets the level the command is
// logged at. LevelDisabled suppresses the log line.
func WithLogLevel(level slog.Level) CallOption {
	return func(c *Call) {
		c.logLevel = &level
	}
}

// WithContext returns a CallOption that sets the context.
// The process is killed if the context is done before it exits.
func WithContext(ctx context.Context) CallOption {
	return func(c *Call) {
		c.ctx = ctx
	}
}

// WithStdin returns a CallOption that sets the process's standard input.
func WithStdin(r io.Reader) CallOption {
	return func(c *Call) {
		c.stdin = r
	}
}

// WithStdout returns a CallOption that sets the standard output writer.
// If standard output is also captured, output goes to both.
func WithStdout(w io.Writer) CallOption {
	return func(c *Call) {
		c.stdout = w
	}
}

// WithStderr returns a CallOption that sets the standard error writer.
// If standard error is also captured, output goes to both.
func WithStderr(w io.Writer) CallOption {
	return func(c *Call) {
		c.stderr = w
	}
}

// WithCaptureStdout returns a CallOption that captures standard output in
// Result.Stdout.
func WithCaptureStdout() CallOption {
	return func(c *Call) {
		c.captureStdout = true
	}
}

// WithCaptureStderr returns a CallOption that captures standard error in
// Result.Stderr.
func WithCaptureStderr() CallOption {
	return func(c *Call) {
		c.captureStderr = true
	}
}

// WithDisableColors returns a CallOption that disables color output by
// setting NO_COLOR=1, TERM=dumb and the other common color variables on top
// of the final environment.
func WithDisableColors() CallOption {
	return func(c *Call) {
		c.disableColors = true
	}
}
