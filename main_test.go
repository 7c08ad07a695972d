package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	// a nil slice makes cobra fall back to os.Args
	cmd.SetArgs(append([]string{}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestDefaultRunsDemo(t *testing.T) {
	out, err := execute(t)
	require.NoError(t, err)
	assert.Equal(t, "[4 9 7 5 4]\n", out)

	out, err = execute(t, "demo", "--verbose")
	require.NoError(t, err)
	assert.Equal(t, "[4 9 7 5 4]\n", out, "intermediate results are logged, not printed")
}

func TestDemoRecordsHistory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absval.db")
	_, err := execute(t, "--dbpath", path)
	require.NoError(t, err)

	db, err := NewDB(path)
	require.NoError(t, err)
	runs := db.Runs()
	require.Len(t, runs, 4)

	byKind := map[string][]int{}
	var order []string
	for _, run := range runs {
		key := string(run.Variant)
		if run.Sorted {
			key += "+sort"
		}
		byKind[key] = run.Output
		order = append(order, key)
	}
	assert.Equal(t, []string{"comprehension", "comprehension+sort", "map", "loop"}, order)
	assert.Equal(t, map[string][]int{
		"comprehension":      {4, 9, 7, 9},
		"comprehension+sort": {4, 7, 9, 9},
		"map":                {4, 9, 7, 9},
		"loop":               {4, 9, 7, 5, 4},
	}, byKind)
}

func TestDemo(t *testing.T) {
	out, err := demo(nil, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, []int{4, 9, 7, 5, 4}, out)
}

func TestAbsCommand(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"abs", "--", "4", "-9", "7", "9"}, "[4 9 7 9]\n"},
		{[]string{"abs", "--variant", "map", "--", "4", "-9", "7", "9"}, "[4 9 7 9]\n"},
		{[]string{"abs", "--variant", "loop", "--sort", "--", "4", "-9", "7", "-5", "-4"}, "[4 4 5 7 9]\n"},
		{[]string{"abs", "--sort", "[4, -9, 7, 9]"}, "[4 7 9 9]\n"},
		{[]string{"abs", "0"}, "[0]\n"},
	}
	for _, test := range tests {
		out, err := execute(t, test.args...)
		require.NoError(t, err, test.args)
		assert.Equal(t, test.want, out, test.args)
	}
}

func TestAbsCommandErrors(t *testing.T) {
	_, err := execute(t, "abs", "--variant", "recursion", "--", "1")
	assert.ErrorIs(t, err, ErrUnknownVariant)

	_, err = execute(t, "abs", "--", "1", "one")
	assert.ErrorIs(t, err, ErrInvalidInteger)

	_, err = execute(t, "abs")
	assert.Error(t, err)

	_, err = execute(t, "--cron", "never", "demo")
	assert.Error(t, err)
}

func TestScheduleFlags(t *testing.T) {
	_, err := execute(t, "--count", "2")
	assert.ErrorIs(t, err, errCountWithoutCron)

	_, err = execute(t, "abs", "--count", "1", "--", "-1")
	assert.ErrorIs(t, err, errCountWithoutCron)

	for _, count := range []string{"0", "-2"} {
		out, err := execute(t, "--cron", "* * * * * *", "--count", count)
		assert.ErrorIs(t, err, errInvalidCount, count)
		assert.Empty(t, out)
	}
}

func TestScheduledDemo(t *testing.T) {
	out, err := execute(t, "--cron", "* * * * * *", "--count", "2")
	require.NoError(t, err)
	assert.Equal(t, "[4 9 7 5 4]\n[4 9 7 5 4]\n", out)
}

func TestDescribe(t *testing.T) {
	run := NewRun(Map, []int{-1}, []int{1}, false)
	assert.Equal(t, "1. map                [-1] → [1]", describe(0, run))
	run.Sorted = true
	assert.Equal(t, "2. map+sort           [-1] → [1]", describe(1, run))
}
