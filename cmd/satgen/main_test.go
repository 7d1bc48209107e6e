package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/crillab/gophersat/solver"
	"github.com/limaJavier/satgen/pkg/generator"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCommand(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestGenerateToStandardOutput(t *testing.T) {
	stdout, stderr, err := execute(t, "--variables", "12", "--clauses", "40")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	require.Len(t, lines, 43)
	assert.Equal(t, "c probability for each", lines[0])
	assert.Equal(t, "p cnf 12 40", lines[2])
	for _, line := range lines[3:] {
		assert.True(t, strings.HasSuffix(line, " 0"), "unterminated clause %q", line)
	}

	problem, err := solver.ParseCNF(strings.NewReader(stdout))
	require.NoError(t, err)
	assert.Equal(t, 12, problem.NbVars)

	assert.Contains(t, stderr, "instance generated")
	assert.NotContains(t, stdout, "instance generated")
}

func TestGenerateToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "instance.cnf")

	stdout, _, err := execute(t, "-n", "5", "-m", "3", "-o", path)
	require.NoError(t, err)
	assert.Empty(t, stdout)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "p cnf 5 3\n")
	assert.Equal(t, 6, strings.Count(string(content), "\n"))
}

func TestSingleVariableFails(t *testing.T) {
	stdout, stderr, err := execute(t, "--variables", "1", "--clauses", "1")

	require.Error(t, err)
	assert.True(t, errors.Is(err, generator.ErrEmptyRepairRange))
	assert.Contains(t, stderr, "any clause needing repair will fail")
	assert.Contains(t, stdout, "p cnf 1 1\n")
}

func TestInvalidConfiguration(t *testing.T) {
	_, _, err := execute(t, "--clauses=-4")
	assert.ErrorContains(t, err, "clauses must not be negative")

	_, _, err = execute(t, "unexpected")
	assert.Error(t, err)
}
