// Package spawn starts external processes and reports how they exited.
//
// It is the process-spawning layer underneath the subprocess package: a
// Spawner receives a fully resolved Request (argument vector, working
// directory, environment, streams) and blocks until the process exits. The
// package deliberately has no notion of defaults, prefixes or success
// checking; those belong to the caller.
//
// # Basic Usage
//
//	cmd := spawn.New()
//	outcome, err := cmd.Spawn(ctx, &spawn.Request{
//		Args:          []string{"git", "status", "--short"},
//		Dir:           "/repo",
//		CaptureStdout: true,
//	})
//	if err != nil {
//		log.Fatal(err) // the process never ran
//	}
//	fmt.Println(outcome.ExitCode, outcome.Stdout)
//
// # Exit Status
//
// A non-zero exit status is not an error at this layer. It is reported in
// Outcome.ExitCode (-1 when the process was terminated by a signal). Errors
// are reserved for processes that could not be started (*LaunchError) and for
// invocations interrupted through the context.
//
// # Output
//
// Streams that are not captured are connected to the writers given in the
// Request, falling back to the Command's defaults (the caller's own stdio
// unless overridden with WithStdout/WithStderr). A captured stream is
// buffered and returned in the Outcome; if the Request also names a writer
// for it, the output is written there as well.
//
// # Testing
//
// Code that spawns processes should accept the Spawner interface. The mocks
// package holds a generated SpawnerMock:
//
//	mock := &mocks.SpawnerMock{
//		SpawnFunc: func(ctx context.Context, req *spawn.Request) (*spawn.Outcome, error) {
//			return &spawn.Outcome{Stdout: "mocked output"}, nil
//		},
//	}
package spawn
