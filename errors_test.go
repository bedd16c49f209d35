package subprocess

import (
	"testing"

	"github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/subprocess/spawn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeError(t *testing.T) {
	err := &TypeError{Field: "argument 0", Value: 3}

	assert.Equal(t, "[INVALID_INPUT] argument 0: expected string or PathLike, got int 3", err.Error())
	assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err))
	assert.False(t, errors.IsRetryable(err))
	assert.Nil(t, err.Unwrap())

	resp := errors.ToJSON(err)
	require.NotNil(t, resp)
	assert.Equal(t, "INVALID_INPUT", resp.Code)
	assert.Equal(t, "argument 0", resp.Context["field"])
	assert.Equal(t, "3", resp.Context["value"])
}

func TestTypeErrorNilValue(t *testing.T) {
	err := &TypeError{Field: "cwd"}
	assert.Equal(t, "[INVALID_INPUT] cwd: expected string or PathLike, got nil", err.Error())
}

func TestCommandFailedError(t *testing.T) {
	err := &CommandFailedError{
		Args:     []string{"sh", "-c", "exit 2"},
		ExitCode: 2,
		Stderr:   "boom\n",
	}

	assert.Equal(t, "[EXECUTION_FAILED] command sh -c 'exit 2' exited with status 2", err.Error())
	assert.Equal(t, errors.CodeExecutionFailed, errors.GetCode(err))
	assert.Equal(t, errors.ClassificationPermanent, errors.GetClassification(err))

	ctx := err.Context()
	assert.Equal(t, 2, ctx["exit_code"])
	assert.Equal(t, "boom\n", ctx["stderr"])
	assert.NotContains(t, ctx, "stdout", "uncaptured output is left out")
}

func TestLaunchErrorIsSpawnLaunchError(t *testing.T) {
	var err error = &spawn.LaunchError{Args: []string{"nope"}, Err: spawn.ErrEmptyCommand}

	var launchErr *LaunchError
	require.True(t, errors.As(err, &launchErr))
	assert.Equal(t, []string{"nope"}, launchErr.Args)
}
