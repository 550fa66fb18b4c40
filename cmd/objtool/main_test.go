package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	pterm.DisableStyling()
}

// run executes objtool with args and stdin, isolated from any user config.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var out bytes.Buffer
	root := newRootCmd()
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&out)
	err := root.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestCheck(t *testing.T) {
	good := writeFile(t, "good.obj", "o tri\nv 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n")
	bad := writeFile(t, "bad.obj", "v 0 zero 0\n")
	dangling := writeFile(t, "dangling.obj", "v 0 0 0\np 1 2\n")

	out, err := run(t, "", "check", good)
	require.NoError(t, err)
	assert.Contains(t, out, "good.obj: 1 object")

	out, err = run(t, "", "check", good, bad)
	assert.ErrorIs(t, err, errReported)
	assert.Contains(t, out, `line 1: invalid number "zero"`)

	_, err = run(t, "", "check", dangling)
	assert.NoError(t, err)

	out, err = run(t, "", "check", "--validate", dangling)
	assert.ErrorIs(t, err, errReported)
	assert.Contains(t, out, "vertex index 2 out of range (pool has 1)")
}

func TestCheck_NeedsFiles(t *testing.T) {
	_, err := run(t, "", "check")
	assert.Error(t, err)
}

func TestFmt_Stdin(t *testing.T) {
	out, err := run(t, "v 1.50 2 3\n\np 1\np 1   # again\n", "fmt")
	require.NoError(t, err)
	assert.Equal(t, "v 1.5 2 3\np 1 1\n", out)

	out, err = run(t, "p 1\np 1\n", "fmt", "--no-fold", "--header", "generated")
	require.NoError(t, err)
	assert.Equal(t, "# generated\np 1\np 1\n", out)
}

func TestFmt_Write(t *testing.T) {
	path := writeFile(t, "model.obj", "o  square\nv 0 0 0\nl 1 2\nl 2 3\n")

	out, err := run(t, "", "fmt", "-w", path)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "o square\nv 0 0 0\nl 1 2 3\n", string(data))

	_, err = run(t, "p 1\n", "fmt", "-w")
	assert.ErrorContains(t, err, "-w requires a file argument")
}

func TestFmt_ParseError(t *testing.T) {
	_, err := run(t, "f 1 2\n", "fmt")
	assert.ErrorContains(t, err, "<stdin>: line 1: face record has 2 indices, need at least 3")
}

func TestInfo(t *testing.T) {
	path := writeFile(t, "cube.obj", "o cube\nv -1 -1 -1\nv 1 1 1\nl 1 2\n")

	out, err := run(t, "", "info", path)
	require.NoError(t, err)
	assert.Contains(t, out, "cube.obj (utf-8, 1 objects)")
	assert.Contains(t, out, "[-1 -1 -1] - [1 1 1]")
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "objtool.yaml")

	out, err := run(t, "", "config", "init", path)
	require.NoError(t, err)
	assert.Equal(t, path+"\n", out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "fold: true")

	_, err = run(t, "", "config", "init", path)
	assert.ErrorContains(t, err, "already exists")

	_, err = run(t, "", "config", "init", "--force", path)
	assert.NoError(t, err)
}

func TestConfigShow(t *testing.T) {
	path := writeFile(t, "objtool.yaml", "output:\n  header: from file\n")

	out, err := run(t, "", "--config", path, "--no-fold", "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "header: from file")
	assert.Contains(t, out, "fold: false")
}
