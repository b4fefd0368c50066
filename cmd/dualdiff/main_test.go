package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/dualdiff/internal/forward"
)

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "dualdiff "+version+"\n", out)
}

func TestList(t *testing.T) {
	out, _, err := run(t, "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, len(catalog))
	assert.Contains(t, out, "sinsq")
	assert.Contains(t, out, "sin(x^2)")
}

func TestGrad(t *testing.T) {
	out, _, err := run(t, "grad", "--fn", "square", "--at", "3")
	require.NoError(t, err)
	assert.Equal(t, "Gradient of x^2 at 3 is 6\n", out)

	out, _, err = run(t, "grad", "--fn", "sin", "--at", "0")
	require.NoError(t, err)
	assert.Equal(t, "Gradient of sin(x) at 0 is 1\n", out)
}

func TestEval(t *testing.T) {
	out, _, err := run(t, "eval", "--fn", "square", "--at", "3")
	require.NoError(t, err)
	assert.Equal(t, "Value of x^2 at 3 is 9 and gradient is 6\n", out)

	out, _, err = run(t, "eval", "--fn", "sin", "--at=0")
	require.NoError(t, err)
	assert.Equal(t, "Value of sin(x) at 0 is 0 and gradient is 1\n", out)
}

func TestGrad_DomainError(t *testing.T) {
	_, _, err := run(t, "grad", "--fn", "recip", "--at", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "division by zero")
}

func TestGrad_UnknownFunction(t *testing.T) {
	_, _, err := run(t, "grad", "--fn", "nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown function "nope"`)
}

func TestGrad_RequiresFn(t *testing.T) {
	_, _, err := run(t, "grad", "--at", "1")
	require.Error(t, err)
}

func TestCheck(t *testing.T) {
	out, _, err := run(t, "check", "--fn", "poly", "--at", "2")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "ok: x^3 - 2x^2 + x at 2: forward 5,"), out)
}

func TestTable(t *testing.T) {
	out, stderr, err := run(t, "table", "--fn", "square", "--from=-1", "--to=1", "--steps", "3", "--workers", "2", "--log-level", "info")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, []string{"x", "x^2", "d/dx"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"-1", "1", "-2"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"0", "0", "0"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"1", "1", "2"}, strings.Fields(lines[3]))

	assert.Contains(t, stderr, "sweeping")
}

func TestTable_InvalidSteps(t *testing.T) {
	_, _, err := run(t, "table", "--fn", "square", "--steps", "0")
	require.Error(t, err)
}

func TestInvalidLogLevel(t *testing.T) {
	_, _, err := run(t, "version", "--log-level", "loud")
	require.Error(t, err)
}

func TestCatalogPassesCheck(t *testing.T) {
	points := []float64{-1.3, 0.4, 0.9, 2.1}
	for _, name := range catalogNames() {
		fn := catalog[name]
		assert.Equal(t, name, fn.name)
		for _, x := range points {
			assert.NoError(t, forward.Check(fn.f, fn.plain, x, 1e-6), "%s at %g", name, x)
		}
	}
}
