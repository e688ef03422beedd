package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	out := new(bytes.Buffer)
	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	err := cmd.Execute()
	return out.String(), err
}

func TestBuildText(t *testing.T) {
	out, err := execute(t, "", "build", "50", "30", "70", "20", "40", "60", "80", "40")
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"size: 7",
		"values: 20 30 40 50 60 70 80",
		"50 black",
		"  L 30 black",
		"    L 20 red",
		"    R 40 red",
		"  R 70 black",
		"    L 60 red",
		"    R 80 red",
		"",
	}, "\n"), out)
}

func TestBuildDuplicates(t *testing.T) {
	out, err := execute(t, "", "build", "--unique=false", "--format", "yaml", "1", "1", "1")
	require.NoError(t, err)

	r := new(report)
	require.NoError(t, yaml.Unmarshal([]byte(out), r))
	assert.Equal(t, 3, r.Size)
	assert.Equal(t, []int{1, 1, 1}, r.Values)
}

func TestBuildFromStdin(t *testing.T) {
	out, err := execute(t, "3 1\n2\n", "build", "--file", "-", "--format", "yaml")
	require.NoError(t, err)

	r := new(report)
	require.NoError(t, yaml.Unmarshal([]byte(out), r))
	assert.Equal(t, []int{1, 2, 3}, r.Values)
	require.NotNil(t, r.Root)
	assert.Equal(t, 2, r.Root.Value)
	assert.Equal(t, "black", r.Root.Color)
	require.NotNil(t, r.Root.Left)
	assert.Equal(t, "red", r.Root.Left.Color)
}

func TestBuildFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "values.txt")
	require.NoError(t, os.WriteFile(path, []byte("10 20\n30"), 0644))

	out, err := execute(t, "", "build", "-f", path, "5")
	require.NoError(t, err)
	assert.Contains(t, out, "values: 5 10 20 30\n")
}

func TestErase(t *testing.T) {
	out, err := execute(t, "", "erase", "--erase", "50,99", "50", "30", "70", "20", "40", "60", "80")
	require.NoError(t, err)
	assert.Contains(t, out, "erase 50: 1\n")
	assert.Contains(t, out, "erase 99: 0\n")
	assert.Contains(t, out, "size: 6\n")
	assert.Contains(t, out, "values: 20 30 40 60 70 80\n")
	assert.Contains(t, out, "\n60 red\n")
}

func TestErrors(t *testing.T) {
	tests := []struct {
		scenario string
		args     []string
		message  string
	}{
		{
			scenario: "values must be integers",
			args:     []string{"build", "1", "two"},
			message:  `invalid value argument "two"`,
		},

		{
			scenario: "the output format must be supported",
			args:     []string{"build", "--format", "json", "1"},
			message:  `unsupported output format: "json"`,
		},

		{
			scenario: "the values file must exist",
			args:     []string{"build", "--file", filepath.Join(os.TempDir(), "rbtree-missing", "values.txt")},
			message:  "opening values file",
		},
	}

	for _, test := range tests {
		t.Run(test.scenario, func(t *testing.T) {
			_, err := execute(t, "", test.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), test.message)
		})
	}
}

func TestScanValuesInvalid(t *testing.T) {
	_, err := scanValues(nil, strings.NewReader("1 x 3"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid value "x"`)
}
