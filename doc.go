// Package subprocess runs external commands with reusable defaults.
//
// A Defaults record holds the settings shared by many invocations: an
// argument prefix (usually the program itself), a working directory, an
// environment overlay, whether a non-zero exit is an error, and the level at
// which each command is logged. Commands are built from those defaults plus
// per-call arguments and overrides, and run synchronously through the spawn
// package.
//
// # Basic Usage
//
//	git := subprocess.New()
//	git.ArgsPrefix = []any{"git", "-C", subprocess.Path("/repo")}
//
//	branch, err := git.StdoutText("rev-parse", "--abbrev-ref", "HEAD")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	files, err := git.StdoutLines("ls-files")
//
// Arguments, prefix elements, working directories and environment values may
// be strings or PathLike values. Anything else fails with a *TypeError.
//
// # Environment
//
// Env is an overlay: its variables are added to the environment inherited
// from the calling process, after all inherited variables. A single call can
// replace the environment entirely:
//
//	sub := subprocess.New()
//	sub.Env = map[string]any{"GOFLAGS": "-mod=mod"}
//	sub.Run("go", "build", "./...")               // inherited + GOFLAGS
//	sub.With(subprocess.WithEnv(map[string]any{ // exactly HOME
//		"HOME": "/tmp/home",
//	})).Run("env")
//
// # Per-Call Overrides
//
// With returns a Call that applies options on top of the defaults for one
// invocation without changing them:
//
//	result, err := sub.With(
//		subprocess.WithCheck(false),
//		subprocess.WithCwd("/tmp"),
//		subprocess.WithCaptureStderr(),
//	).Run("make", "test")
//	if err == nil && result.ExitCode != 0 {
//		fmt.Println(result.Stderr)
//	}
//
// # Logging
//
// Before starting, each command is logged once at LogLevel through Logger
// (slog.Default() when nil) as a shell-escaped line:
//
//	INFO 🐚 echo Hello 'World!'
//
// Set LogLevel to LevelDisabled to turn this off.
//
// # Errors
//
// Three error types are returned, all implementing the workspace's
// errors.PlatformError:
//
//   - *TypeError (INVALID_INPUT): a value was not a string or PathLike.
//   - *LaunchError (NOT_FOUND, FORBIDDEN or EXECUTION_FAILED): the process
//     could not be started.
//   - *CommandFailedError (EXECUTION_FAILED): the process exited non-zero
//     while Check was on. It carries the exit status and captured output.
//
// # Process-Wide Defaults
//
// The package-level Run, StdoutText, StdoutLines and With use a single
// process-wide Defaults record. UpdateDefaults replaces it for the duration
// of a scope:
//
//	scope, err := subprocess.UpdateDefaults(
//		subprocess.SetCwd(buildDir),
//		subprocess.SetEnv(map[string]any{"CGO_ENABLED": "0", "GOOS": nil}),
//	)
//	if err != nil {
//		return err
//	}
//	defer scope.Restore()
//
// A nil environment value removes that variable from the overlay. Scopes
// nest and unwind in stack order. InScope wraps a function in a scope and
// restores the defaults on every exit path, panics included.
//
// Scoped updates assume properly nested use from a single goroutine.
package subprocess
