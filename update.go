package subprocess

import (
	"log/slog"
	"maps"
	"slices"

	"github.com/jmgilman/go/subprocess/spawn"
)

// UpdateOption changes one field of a Defaults record. Options are applied
// by Defaults.Update and UpdateDefaults; fields without an option keep their
// value.
type UpdateOption func(*Defaults) error

// SetCwd returns an UpdateOption that replaces the working directory.
// The value must be a string or PathLike; nil or "" restores inheriting the
// caller's directory.
func SetCwd(cwd any) UpdateOption {
	return func(d *Defaults) error {
		if cwd == nil {
			d.Cwd = nil
			return nil
		}
		dir, err := asString(cwd, "cwd")
		if err != nil {
			return err
		}
		d.Cwd = dir
		return nil
	}
}

// SetEnv returns an UpdateOption that merges env into the environment
// overlay key by key. A string or PathLike value sets the variable; a nil
// value removes it from the overlay.
func SetEnv(env map[string]any) UpdateOption {
	return func(d *Defaults) error {
		overlay := maps.Clone(d.Env)
		if overlay == nil {
			overlay = make(map[string]any, len(env))
		}
		for _, key := range slices.Sorted(maps.Keys(env)) {
			if env[key] == nil {
				delete(overlay, key)
				continue
			}
			value, err := asString(env[key], envField(key))
			if err != nil {
				return err
			}
			overlay[key] = value
		}
		d.Env = overlay
		return nil
	}
}

// SetLogLevel returns an UpdateOption that sets the command log level.
func SetLogLevel(level slog.Level) UpdateOption {
	return func(d *Defaults) error {
		d.LogLevel = level
		return nil
	}
}

// SetArgsPrefix returns an UpdateOption that replaces the argument prefix.
// Every element must be a string or PathLike.
func SetArgsPrefix(args ...any) UpdateOption {
	return func(d *Defaults) error {
		prefix, err := asStrings(args, "args prefix element")
		if err != nil {
			return err
		}
		d.ArgsPrefix = make([]any, len(prefix))
		for i, arg := range prefix {
			d.ArgsPrefix[i] = arg
		}
		return nil
	}
}

// SetCheck returns an UpdateOption that turns success-checking on or off.
func SetCheck(check bool) UpdateOption {
	return func(d *Defaults) error {
		d.Check = check
		return nil
	}
}

// SetLogger returns an UpdateOption that sets the logger for command lines.
func SetLogger(logger *slog.Logger) UpdateOption {
	return func(d *Defaults) error {
		d.Logger = logger
		return nil
	}
}

// SetSpawner returns an UpdateOption that sets the process spawner.
func SetSpawner(spawner spawn.Spawner) UpdateOption {
	return func(d *Defaults) error {
		d.Spawner = spawner
		return nil
	}
}
