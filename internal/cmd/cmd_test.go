package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/sieve/pkg/sieve"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := NewRootCommand(&out, &errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func TestRun_PrintsPrimes(t *testing.T) {
	out, _, err := execute(t, "run", "20", "--log-level", "error")
	require.NoError(t, err)
	assert.Equal(t, "2\n3\n5\n7\n11\n13\n17\n19\n", out)
}

func TestRun_SmallCapacity(t *testing.T) {
	out, _, err := execute(t, "run", "30", "--capacity", "1", "--log-level", "error")
	require.NoError(t, err)
	assert.Equal(t, "2\n3\n5\n7\n11\n13\n17\n19\n23\n29\n", out)
}

func TestRun_InvalidLimit(t *testing.T) {
	out, _, err := execute(t, "run", "twelve", "--log-level", "error")
	assert.ErrorIs(t, err, sieve.ErrInvalidLimit)
	assert.Empty(t, out)

	_, _, err = execute(t, "run", "-5", "--log-level", "error")
	assert.Error(t, err)
}

func TestRun_BelowTwo(t *testing.T) {
	out, _, err := execute(t, "run", "1", "--log-level", "error")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRun_Metrics(t *testing.T) {
	_, errOut, err := execute(t, "run", "10", "--metrics", "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, errOut, "sieve_primes_found_total 4")
}

func TestRun_BadLogLevel(t *testing.T) {
	_, _, err := execute(t, "run", "10", "--log-level", "chatty")
	assert.Error(t, err)
}

func TestBench_WritesCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")

	out, _, err := execute(t, "bench", "--limits", "10,20,50", "--out", path, "--log-level", "error")
	require.NoError(t, err)
	assert.Contains(t, out, "3 results saved")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "limit,time_seconds", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "10,"))
	assert.True(t, strings.HasPrefix(lines[3], "50,"))
}

func TestBench_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "from-config.csv")
	cfgPath := filepath.Join(dir, "sieve.yaml")
	content := "logging:\n  level: error\nbench:\n  output: " + csvPath + "\n  limits: [5, 7]\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0644))

	out, _, err := execute(t, "bench", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "2 results saved")

	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(string(data), "\n"))
}

func TestRun_ZeroCapacityRejected(t *testing.T) {
	_, _, err := execute(t, "run", "10", "--capacity", "0")
	assert.Error(t, err)
}

func TestBench_Metrics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")

	_, errOut, err := execute(t, "bench", "--limits", "10,20", "--out", path, "--metrics", "--log-level", "error")
	require.NoError(t, err)

	// 4 + 8 primes over two runs
	assert.Contains(t, errOut, "sieve_primes_found_total 12")
	assert.Contains(t, errOut, "sieve_runs_total 2")
	assert.Contains(t, errOut, "sieve_run_duration_seconds_count 2")
}
