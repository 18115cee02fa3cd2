package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errBuf strings.Builder
	err = run(append([]string{"mandelgrid"}, args...), &out, &errBuf)
	return out.String(), errBuf.String(), err
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	var exitErr *exitError
	require.ErrorAs(t, err, &exitErr)
	return exitErr.code
}

func TestRunWrongArgCount(t *testing.T) {
	for _, args := range [][]string{
		{},
		{"4"},
		{"4", "100", "extra"},
	} {
		stdout, _, err := runCLI(t, args...)
		require.Error(t, err, "args=%v", args)
		assert.Equal(t, 2, exitCode(t, err), "args=%v", args)
		assert.Contains(t, err.Error(), "usage:", "args=%v", args)
		assert.Empty(t, stdout, "args=%v", args)
	}
}

func TestRunBadParameters(t *testing.T) {
	for _, args := range [][]string{
		{"0", "100"},
		{"-2", "100"},
		{"4", "-5"},
		{"4", "1"},
		{"four", "100"},
		{"4", "many"},
	} {
		stdout, _, err := runCLI(t, args...)
		require.Error(t, err, "args=%v", args)
		assert.Equal(t, 2, exitCode(t, err), "args=%v", args)
		assert.Empty(t, stdout, "args=%v", args)
	}
}

func TestRunSmallGrid(t *testing.T) {
	stdout, stderr, err := runCLI(t, "2", "3")
	require.NoError(t, err)

	// The 3x3 grid keeps exactly one point, the center column sample on
	// the real axis.
	want := "x,y\n-0.5000000000,0.0000000000\n"
	assert.Equal(t, want, stdout)

	assert.Contains(t, stderr, "TIME_SECONDS=")
}

func TestRunTimingGoesToStderrOnly(t *testing.T) {
	stdout, stderr, err := runCLI(t, "1", "2")
	require.NoError(t, err)
	assert.Equal(t, "x,y\n", stdout)
	assert.True(t, strings.HasPrefix(stderr, "TIME_SECONDS="), "stderr=%q", stderr)
}
