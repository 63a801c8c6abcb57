package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)

	dir := t.TempDir()
	logPath := writeFixture(t, dir, "log.json", `[
    {"type": "delete", "text": "Sir", "context_before": "Dear ", "context_after": ","},
    {"type": "insert", "text": "Madam", "context_before": "Dear ", "context_after": ","}
]`)
	letter := writeFixture(t, dir, "letter.txt", "Dear Sir,\nKind regards\n")
	memo := writeFixture(t, dir, "memo.txt", "To the team,\n")

	_, stderr, err := runDT(t, binaryPath, home, "log", "import", logPath)
	require.NoError(t, err, "stderr: %s", stderr)

	stdout, stderr, err := runDT(t, binaryPath, home, "log", "show")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "records: 2")

	_, _, err = runDT(t, binaryPath, home, "replay", "--json", letter, memo)
	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.ExitCode())

	assert.Equal(t, "Dear Madam,\nKind regards\n", readFixture(t, letter))
	assert.Equal(t, "To the team,\n", readFixture(t, memo))
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "dt-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/dt")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build dt binary: %s", string(output))
	return binaryPath
}

func runDT(t *testing.T, binaryPath, home string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+home)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func readFixture(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}
