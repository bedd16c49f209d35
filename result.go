package subprocess

// Result represents a finished command.
type Result struct {
	// Args is the argument vector that was executed.
	Args []string

	// ExitCode is the exit status, or -1 if the process was killed by a signal.
	ExitCode int

	// Stdout is the captured standard output, empty unless captured.
	Stdout string

	// Stderr is the captured standard error, empty unless captured.
	Stderr string
}
