package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const requestYAML = `budget: 100
cards:
  - cardNickName: travel
    cardBalance: 1000
    cardApr: 24
    minPayment: 25
    maxPayment: 1000
    actualPayments: 40
  - cardNickName: store
    cardBalance: 500
    cardApr: 12
    minPayment: 15
`

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(append(args, "--config", filepath.Join(dir, "missing.toml")))
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func writeRequest(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "request.yaml")
	require.NoError(t, os.WriteFile(path, []byte(requestYAML), 0o644))
	return path
}

func TestAllocateCommandJSON(t *testing.T) {
	out, err := run(t, "allocate", "-i", writeRequest(t), "-f", "json")
	require.NoError(t, err)

	var summary map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	assert.Equal(t, "Optimal", summary["solution"])
	assert.Equal(t, "61.2", summary["interestSaved"])
}

func TestAllocateCommandConsole(t *testing.T) {
	out, err := run(t, "allocate", "-i", writeRequest(t), "-f", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "PAYMENT ALLOCATION")
	assert.Contains(t, out, "travel")
}

func TestCompareCommandCSV(t *testing.T) {
	out, err := run(t, "compare", "-i", writeRequest(t), "-f", "csv")
	require.NoError(t, err)
	lines := bytes.Count([]byte(out), []byte("\n"))
	assert.Equal(t, 1+2*13, lines)
}

func TestCommandErrors(t *testing.T) {
	_, err := run(t, "allocate", "-i", filepath.Join(t.TempDir(), "nope.yaml"), "-f", "json")
	assert.ErrorContains(t, err, "failed to read file")

	_, err = run(t, "compare", "-i", writeRequest(t), "-f", "pdf")
	assert.ErrorContains(t, err, "unsupported output format")
}

func TestExampleCommand(t *testing.T) {
	out, err := run(t, "example", "-o", "")
	require.NoError(t, err)
	assert.Contains(t, out, "budget: 450")
	assert.Contains(t, out, "Travel Rewards")

	target := filepath.Join(t.TempDir(), "example.yaml")
	out, err = run(t, "example", "-o", target)
	require.NoError(t, err)
	assert.Contains(t, out, target)
	_, err = run(t, "allocate", "-i", target, "-f", "json")
	assert.NoError(t, err)
}

func TestConfigCommand(t *testing.T) {
	out, err := run(t, "config")
	require.NoError(t, err)
	assert.Contains(t, out, "using defaults")
	assert.Contains(t, out, "solver:          greedy")
	assert.Contains(t, out, "backend: memory")
}
