package subprocess

import (
	stderrors "errors"
	"log/slog"
	"testing"

	"github.com/jmgilman/go/errors"
	"github.com/jmgilman/go/subprocess/spawn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrentDefaults(t *testing.T) {
	stubGlobal(t)

	d := Current()
	assert.Equal(t, New(), d)

	d.ArgsPrefix = append(d.ArgsPrefix, "mutated")
	d.Env["MUTATED"] = "1"
	assert.Equal(t, New(), Current(), "Current returns a copy")
}

func TestUpdateDefaults(t *testing.T) {
	stubGlobal(t)
	original := global.current

	scope, err := UpdateDefaults(
		SetCwd(Path("/work")),
		SetEnv(map[string]any{"A": "1"}),
		SetLogLevel(slog.LevelDebug),
		SetArgsPrefix("make", Path("-C"), "src"),
	)
	require.NoError(t, err)

	d := Current()
	assert.Equal(t, "/work", d.Cwd)
	assert.Equal(t, map[string]any{"A": "1"}, d.Env)
	assert.Equal(t, slog.LevelDebug, d.LogLevel)
	assert.Equal(t, []any{"make", "-C", "src"}, d.ArgsPrefix)
	assert.True(t, d.Check, "fields without an option keep their value")

	scope.Restore()
	assert.Same(t, original, global.current)
	assert.Empty(t, global.scopes)
}

func TestUpdateDefaultsEnvMerge(t *testing.T) {
	stubGlobal(t)

	outer, err := UpdateDefaults(SetEnv(map[string]any{"A": "1", "B": "2"}))
	require.NoError(t, err)
	defer outer.Restore()

	inner, err := UpdateDefaults(SetEnv(map[string]any{"A": nil, "C": Path("3"), "MISSING": nil}))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"B": "2", "C": "3"}, Current().Env)

	inner.Restore()
	assert.Equal(t, map[string]any{"A": "1", "B": "2"}, Current().Env)
}

func TestUpdateDefaultsTypeError(t *testing.T) {
	stubGlobal(t)
	original := global.current

	scope, err := UpdateDefaults(SetCwd("/ok"), SetArgsPrefix("echo", 3))
	assert.Nil(t, scope)

	var typeErr *TypeError
	require.True(t, errors.As(err, &typeErr))
	assert.Equal(t, "args prefix element 1", typeErr.Field)
	assert.Same(t, original, global.current, "a failed update changes nothing")
	assert.Empty(t, global.scopes)
}

func TestNestedScopesRestoreInReverseOrder(t *testing.T) {
	stubGlobal(t)

	var seen []any
	record := func() { seen = append(seen, Current().Cwd) }

	record()
	first, err := UpdateDefaults(SetCwd("/one"))
	require.NoError(t, err)
	record()
	second, err := UpdateDefaults(SetCwd("/two"))
	require.NoError(t, err)
	record()
	third, err := UpdateDefaults(SetCwd("/three"))
	require.NoError(t, err)
	record()

	third.Restore()
	record()
	second.Restore()
	record()
	first.Restore()
	record()

	assert.Equal(t, []any{nil, "/one", "/two", "/three", "/two", "/one", nil}, seen)
}

func TestInScopeRestoresOnError(t *testing.T) {
	stubGlobal(t)
	original := global.current
	boom := stderrors.New("boom")

	err := InScope(func() error {
		assert.Equal(t, "/outer", Current().Cwd)

		innerErr := InScope(func() error {
			assert.Equal(t, "/inner", Current().Cwd)
			return boom
		}, SetCwd("/inner"))

		assert.Equal(t, "/outer", Current().Cwd, "inner scope restored despite its error")
		return innerErr
	}, SetCwd("/outer"))

	assert.ErrorIs(t, err, boom)
	assert.Same(t, original, global.current)
	assert.Empty(t, global.scopes)
}

func TestInScopeRestoresOnPanic(t *testing.T) {
	stubGlobal(t)
	original := global.current

	assert.Panics(t, func() {
		_ = InScope(func() error {
			panic("unexpected")
		}, SetArgsPrefix("git"))
	})

	assert.Same(t, original, global.current)
	assert.Empty(t, global.scopes)
}

func TestInScopeTypeErrorSkipsFn(t *testing.T) {
	stubGlobal(t)

	called := false
	err := InScope(func() error {
		called = true
		return nil
	}, SetEnv(map[string]any{"K": 1}))

	var typeErr *TypeError
	require.True(t, errors.As(err, &typeErr))
	assert.False(t, called)
}

func TestRestoreOuterUnwindsInner(t *testing.T) {
	stubGlobal(t)
	original := global.current

	outer, err := UpdateDefaults(SetCwd("/outer"))
	require.NoError(t, err)
	inner, err := UpdateDefaults(SetCwd("/inner"))
	require.NoError(t, err)

	outer.Restore()
	assert.Same(t, original, global.current)
	assert.Empty(t, global.scopes)

	inner.Restore()
	assert.Same(t, original, global.current, "an unwound inner scope must not reinstate its saved defaults")
}

func TestRestoreIsIdempotent(t *testing.T) {
	stubGlobal(t)

	outer, err := UpdateDefaults(SetCwd("/outer"))
	require.NoError(t, err)
	defer outer.Restore()

	inner, err := UpdateDefaults(SetCwd("/inner"))
	require.NoError(t, err)
	inner.Restore()
	inner.Restore()

	assert.Equal(t, "/outer", Current().Cwd)
	assert.Len(t, global.scopes, 1)
}

func TestGlobalRunUsesCurrentDefaults(t *testing.T) {
	stubGlobal(t)
	mock := newMockSpawner(&spawn.Outcome{Stdout: "main\n"}, nil)

	err := InScope(func() error {
		if _, err := Run("status"); err != nil {
			return err
		}
		assert.Equal(t, []string{"git", "status"}, lastRequest(t, mock).Args)
		assert.Equal(t, "/repo", lastRequest(t, mock).Dir)

		text, err := StdoutText("branch", "--show-current")
		if err != nil {
			return err
		}
		assert.Equal(t, "main\n", text)

		lines, err := StdoutLines("branch", "--show-current")
		if err != nil {
			return err
		}
		assert.Equal(t, []string{"main"}, lines)
		return nil
	}, SetSpawner(mock), SetArgsPrefix("git"), SetCwd("/repo"), SetLogLevel(LevelDisabled))
	require.NoError(t, err)
	assert.Len(t, mock.SpawnCalls(), 3)
}

func TestGlobalRunCheckFailure(t *testing.T) {
	stubGlobal(t)
	mock := newMockSpawner(&spawn.Outcome{ExitCode: 1}, nil)

	scope, err := UpdateDefaults(SetSpawner(mock), SetLogLevel(LevelDisabled))
	require.NoError(t, err)
	defer scope.Restore()

	_, err = Run("false")
	var failed *CommandFailedError
	assert.True(t, errors.As(err, &failed))

	result, err := With(WithCheck(false)).Run("false")
	require.NoError(t, err)
	assert.Equal(t, 1, result.ExitCode)
}

func TestGlobalWithSnapshotsDefaults(t *testing.T) {
	stubGlobal(t)
	mock := newMockSpawner(&spawn.Outcome{}, nil)

	scope, err := UpdateDefaults(SetSpawner(mock), SetLogLevel(LevelDisabled), SetArgsPrefix("old"))
	require.NoError(t, err)
	defer scope.Restore()

	call := With()

	inner, err := UpdateDefaults(SetArgsPrefix("new"))
	require.NoError(t, err)
	defer inner.Restore()

	_, err = call.Run("x")
	require.NoError(t, err)
	assert.Equal(t, []string{"old", "x"}, lastRequest(t, mock).Args)

	_, err = Run("x")
	require.NoError(t, err)
	assert.Equal(t, []string{"new", "x"}, lastRequest(t, mock).Args)
}
