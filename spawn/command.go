package spawn

import (
	"context"
	"io"
	"os"
	osexec "os/exec"

	"github.com/jmgilman/go/errors"
)

// Command is the os/exec backed implementation of Spawner.
type Command struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

var _ Spawner = (*Command)(nil)

// New creates a Command wired to the caller's own standard streams.
// Options replace those default streams.
func New(opts ...Option) *Command {
	cmd := &Command{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}

	for _, opt := range opts {
		opt(cmd)
	}

	return cmd
}

// Spawn runs the requested process to completion.
func (c *Command) Spawn(ctx context.Context, req *Request) (*Outcome, error) {
	if req == nil || len(req.Args) == 0 {
		return nil, &LaunchError{Err: ErrEmptyCommand}
	}
	if ctx == nil {
		ctx = context.Background()
	}

	cmd := osexec.CommandContext(ctx, req.Args[0], req.Args[1:]...)
	cmd.Dir = req.Dir
	cmd.Env = req.Env
	cmd.Stdin = readerOr(req.Stdin, c.stdin)

	var stdoutCapture, stderrCapture *outputCapture
	if req.CaptureStdout {
		stdoutCapture = newOutputCapture(req.Stdout)
		cmd.Stdout = stdoutCapture
	} else {
		cmd.Stdout = writerOr(req.Stdout, c.stdout)
	}
	if req.CaptureStderr {
		stderrCapture = newOutputCapture(req.Stderr)
		cmd.Stderr = stderrCapture
	} else {
		cmd.Stderr = writerOr(req.Stderr, c.stderr)
	}

	if err := cmd.Start(); err != nil {
		return nil, &LaunchError{Args: req.Args, Err: err}
	}

	err := cmd.Wait()
	outcome := &Outcome{
		ExitCode: cmd.ProcessState.ExitCode(),
		Stdout:   stdoutCapture.String(),
		Stderr:   stderrCapture.String(),
	}

	// A cancelled context kills the process, which then looks like an
	// ordinary signal exit; report the interruption instead.
	if ctxErr := ctx.Err(); ctxErr != nil {
		code := errors.CodeExecutionFailed
		if errors.Is(ctxErr, context.DeadlineExceeded) {
			code = errors.CodeTimeout
		}
		return outcome, errors.WrapWithContext(ctxErr, code, "command interrupted", map[string]interface{}{
			"args": req.Args,
		})
	}

	var exitErr *osexec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return outcome, errors.Wrap(err, errors.CodeExecutionFailed, "failed to collect command output")
	}

	return outcome, nil
}

func readerOr(r, fallback io.Reader) io.Reader {
	if r != nil {
		return r
	}
	return fallback
}

func writerOr(w, fallback io.Writer) io.Writer {
	if w != nil {
		return w
	}
	return fallback
}
