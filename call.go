package subprocess

import (
	"context"
	"io"
	"log/slog"

	"al.essio.dev/pkg/shellescape"
	"github.com/jmgilman/go/subprocess/spawn"
)

// Call is a command invocation being configured: a Defaults record plus
// overrides that apply to this call only. A Call is not modified by running
// it and may be reused.
type Call struct {
	defaults *Defaults
	ctx      context.Context

	check    *bool
	logLevel *slog.Level

	cwd    any
	cwdSet bool

	env    map[string]any
	envSet bool

	stdin         io.Reader
	stdout        io.Writer
	stderr        io.Writer
	captureStdout bool
	captureStderr bool
	disableColors bool
}

// With returns a copy of the call with opts applied on top.
func (c *Call) With(opts ...CallOption) *Call {
	clone := *c
	for _, opt := range opts {
		opt(&clone)
	}
	return &clone
}

// Run executes the defaults' ArgsPrefix followed by args and blocks until
// the process exits.
//
// Every argument must be a string or a PathLike; anything else fails with a
// *TypeError before anything runs. Unless logging is disabled, the command is
// logged once, shell-escaped, before it starts. A process that cannot be
// started fails with a *LaunchError. When success-checking is on, a non-zero
// exit status fails with a *CommandFailedError and the Result is returned
// alongside it.
func (c *Call) Run(args ...any) (*Result, error) {
	d := c.defaults

	argv, err := asStrings(d.ArgsPrefix, "args prefix element")
	if err != nil {
		return nil, err
	}
	callArgs, err := asStrings(args, "argument")
	if err != nil {
		return nil, err
	}
	argv = append(argv, callArgs...)

	dir, err := c.effectiveCwd()
	if err != nil {
		return nil, err
	}
	env, err := c.effectiveEnv()
	if err != nil {
		return nil, err
	}

	ctx := c.effectiveContext()
	if level := c.effectiveLogLevel(); level > LevelDisabled {
		d.logger().Log(ctx, level, logMarker+" "+shellescape.QuoteCommand(argv))
	}

	outcome, err := d.spawner().Spawn(ctx, &spawn.Request{
		Args:          argv,
		Dir:           dir,
		Env:           env,
		Stdin:         c.stdin,
		Stdout:        c.stdout,
		Stderr:        c.stderr,
		CaptureStdout: c.captureStdout,
		CaptureStderr: c.captureStderr,
	})
	if outcome == nil {
		return nil, err
	}

	result := &Result{
		Args:     argv,
		ExitCode: outcome.ExitCode,
		Stdout:   outcome.Stdout,
		Stderr:   outcome.Stderr,
	}
	if err != nil {
		return result, err
	}

	if c.effectiveCheck() && result.ExitCode != 0 {
		return result, &CommandFailedError{
			Args:     argv,
			ExitCode: result.ExitCode,
			Stdout:   result.Stdout,
			Stderr:   result.Stderr,
		}
	}

	return result, nil
}

// StdoutText runs the command with standard output captured and returns it
// as text. Line endings are translated to "\n"; the final newline is kept.
func (c *Call) StdoutText(args ...any) (string, error) {
	result, err := c.With(WithCaptureStdout()).Run(args...)
	if err != nil {
		return "", err
	}
	return translateNewlines(result.Stdout), nil
}

// StdoutLines is like StdoutText but splits the output into lines.
// A trailing newline does not produce an empty last line.
func (c *Call) StdoutLines(args ...any) ([]string, error) {
	text, err := c.StdoutText(args...)
	if err != nil {
		return nil, err
	}
	return splitLines(text), nil
}

func (c *Call) effectiveContext() context.Context {
	if c.ctx != nil {
		return c.ctx
	}
	return context.Background()
}

func (c *Call) effectiveCheck() bool {
	if c.check != nil {
		return *c.check
	}
	return c.defaults.Check
}

func (c *Call) effectiveLogLevel() slog.Level {
	if c.logLevel != nil {
		return *c.logLevel
	}
	return c.defaults.LogLevel
}

// effectiveCwd returns the working directory, "" meaning inherit.
func (c *Call) effectiveCwd() (string, error) {
	cwd := c.defaults.Cwd
	if c.cwdSet {
		cwd = c.cwd
	}
	if cwd == nil {
		return "", nil
	}
	return asString(cwd, "cwd")
}

// effectiveEnv returns the complete environment, or nil to inherit the
// caller's environment untouched.
func (c *Call) effectiveEnv() ([]string, error) {
	var env []string

	switch {
	case c.envSet && c.env == nil:
		// inherit as-is
	case c.envSet:
		vars, err := coerceEnv(c.env)
		if err != nil {
			return nil, err
		}
		env = mergeEnv(nil, vars)
	default:
		vars, err := coerceEnv(c.defaults.Env)
		if err != nil {
			return nil, err
		}
		env = mergeEnv(environ(), vars)
	}

	if c.disableColors {
		if env == nil {
			env = environ()
		}
		env = mergeEnv(env, colorEnv)
	}

	return env, nil
}
