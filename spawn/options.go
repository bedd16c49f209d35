package spawn

import "io"

// Option configures the default streams of a Command.
// A Request that names its own stream takes precedence over these defaults.
type Option func(*Command)

// WithStdin returns an Option that sets the default standard input.
func WithStdin(r io.Reader) Option {
	return func(c *Command) {
		c.stdin = r
	}
}

// WithStdout returns an Option that sets the default standard output writer.
func WithStdout(w io.Writer) Option {
	return func(c *Command) {
		c.stdout = w
	}
}

// WithStderr returns an Option that sets the default standard error writer.
func WithStderr(w io.Writer) Option {
	return func(c *Command) {
		c.stderr = w
	}
}
