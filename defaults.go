package subprocess

import (
	"log/slog"
	"maps"
	"math"
	"slices"

	"github.com/jmgilman/go/subprocess/spawn"
)

// LevelDisabled is the log level that suppresses the command log line.
// Any level above it logs.
const LevelDisabled = slog.Level(math.MinInt)

// logMarker prefixes every logged command.
const logMarker = "🐚"

// Defaults holds the values applied to every command run through it unless
// a call overrides them. Fields may be changed directly between calls.
//
// The zero value has success-checking disabled; use New for the usual
// defaults.
type Defaults struct {
	// ArgsPrefix is prepended to the arguments of every command, typically
	// the program itself. Elements are strings or PathLike values.
	ArgsPrefix []any

	// Check makes a non-zero exit status an error (*CommandFailedError).
	Check bool

	// Cwd is the working directory, a string or PathLike. Nil or "" inherits
	// the caller's directory.
	Cwd any

	// Env holds variables added to the inherited environment. Values are
	// strings or PathLike values.
	Env map[string]any

	// LogLevel is the level at which each command is logged.
	// LevelDisabled turns logging off.
	LogLevel slog.Level

	// Logger receives the command log line. Nil uses slog.Default().
	Logger *slog.Logger

	// Spawner starts the processes. Nil uses spawn.New().
	Spawner spawn.Spawner
}

// New returns Defaults with an empty prefix and environment overlay,
// success-checking enabled, the inherited working directory and commands
// logged at slog.LevelInfo.
func New() *Defaults {
	return &Defaults{
		ArgsPrefix: []any{},
		Check:      true,
		Env:        map[string]any{},
		LogLevel:   slog.LevelInfo,
	}
}

// Copy returns Defaults with the same values. The prefix and environment
// are copied, so changes to either record never affect the other.
func (d *Defaults) Copy() *Defaults {
	clone := *d
	clone.ArgsPrefix = slices.Clone(d.ArgsPrefix)
	clone.Env = maps.Clone(d.Env)
	return &clone
}

// Update applies opts to d. If any option fails, d is left unchanged.
func (d *Defaults) Update(opts ...UpdateOption) error {
	updated := d.Copy()
	for _, opt := range opts {
		if err := opt(updated); err != nil {
			return err
		}
	}
	*d = *updated
	return nil
}

// With starts a call that applies opts on top of d. The call reads d when it
// runs, so later changes to d are seen.
func (d *Defaults) With(opts ...CallOption) *Call {
	return (&Call{defaults: d}).With(opts...)
}

// Run executes ArgsPrefix followed by args and waits for it to exit.
// See Call.Run.
func (d *Defaults) Run(args ...any) (*Result, error) {
	return d.With().Run(args...)
}

// StdoutText runs the command and returns its standard output.
// See Call.StdoutText.
func (d *Defaults) StdoutText(args ...any) (string, error) {
	return d.With().StdoutText(args...)
}

// StdoutLines runs the command and returns its standard output as lines.
// See Call.StdoutLines.
func (d *Defaults) StdoutLines(args ...any) ([]string, error) {
	return d.With().StdoutLines(args...)
}

func (d *Defaults) logger() *slog.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return slog.Default()
}

func (d *Defaults) spawner() spawn.Spawner {
	if d.Spawner != nil {
		return d.Spawner
	}
	return spawn.New()
}
