package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testDataset = `{"funds": [
	{"name": "FUNDX", "stocks": ["S1", "S2", "S3"]},
	{"name": "FUNDY", "stocks": ["S2", "S3", "S4"]},
	{"name": "FUNDZ", "stocks": ["S9"]}
]}`

// setFlag sets a global flag value for the duration of the test.
func setFlag[T any](t *testing.T, p *T, v T) {
	t.Helper()
	old := *p
	*p = v
	t.Cleanup(func() { *p = old })
}

// setupCLI isolates the CLI from the environment: a dataset file in a
// temporary directory, no configuration file, and captured outputs.
func setupCLI(t *testing.T, dataset string) (dir string, out, errOut *bytes.Buffer) {
	t.Helper()
	dir = t.TempDir()

	for _, k := range []string{EnvFundsFile, EnvFundsPath, EnvFundsFormat, EnvLogLevel, EnvOutputFormat} {
		t.Setenv(k, "")
	}

	path := filepath.Join(dir, "funds.json")
	require.NoError(t, os.WriteFile(path, []byte(dataset), 0o644))

	setFlag(t, configFile, filepath.Join(dir, "mfo.toml"))
	setFlag(t, fundsFile, path)
	setFlag(t, fundsPath, "")
	setFlag(t, fundsFormat, "")
	setFlag(t, Verbose, false)
	setFlag(t, &markdownStyle, "notty")

	out, errOut = new(bytes.Buffer), new(bytes.Buffer)
	oldIn, oldOut, oldErr := stdin, stdout, stderr
	stdout, stderr = out, errOut
	t.Cleanup(func() { stdin, stdout, stderr = oldIn, oldOut, oldErr })
	return dir, out, errOut
}

// writeFile writes content to name in dir and returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
