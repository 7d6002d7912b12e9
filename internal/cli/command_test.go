package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fieldArray = `[{"field":"value1","array":["item1","item2"]}]`

// execute runs the command with an isolated HOME so no user config leaks in.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	var stdout, stderr bytes.Buffer
	cmd := NewCommand()
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCommandInlineData(t *testing.T) {
	out, _, err := execute(t, "", "--data", fieldArray)
	require.NoError(t, err)
	assert.Equal(t, "field,array\nvalue1,item1\n,item2\n", out)
}

func TestCommandStdin(t *testing.T) {
	out, _, err := execute(t, `{"field":"value1"}`, "-f", "markdown")
	require.NoError(t, err)
	assert.Equal(t, "field \n------\nvalue1\n", out)

	out, _, err = execute(t, `[{"field":"value1"}]`, "-")
	require.NoError(t, err)
	assert.Equal(t, "field\nvalue1\n", out)
}

func TestCommandFileInput(t *testing.T) {
	path := writeFile(t, "in.json", `[{"user":{"name":"John","age":30},"settings":{"theme":"dark"}}]`)
	out, _, err := execute(t, "", path)
	require.NoError(t, err)
	assert.Equal(t, "user,,settings\nname,age,theme\nJohn,30,dark\n", out)
}

func TestCommandYAMLByExtension(t *testing.T) {
	path := writeFile(t, "in.yaml", "- field: value1\n  array: [item1, item2]\n")
	out, _, err := execute(t, "", path)
	require.NoError(t, err)
	assert.Equal(t, "field,array\nvalue1,item1\n,item2\n", out)
}

func TestCommandYAMLFlag(t *testing.T) {
	out, _, err := execute(t, "field: value1\n", "--input-format", "yaml")
	require.NoError(t, err)
	assert.Equal(t, "field\nvalue1\n", out)
}

func TestCommandOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	out, _, err := execute(t, "", "--data", fieldArray, "-o", path)
	require.NoError(t, err)
	assert.Empty(t, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "field,array\nvalue1,item1\n,item2\n", string(data))
}

func TestCommandCustomRender(t *testing.T) {
	out, _, err := execute(t, "", "--data", fieldArray, "--delimiter", ";", "--header-separator", "=")
	require.NoError(t, err)
	assert.Equal(t, "field;array\n============\nvalue1;item1\n;item2\n", out)
}

func TestCommandConfigFile(t *testing.T) {
	cfg := writeFile(t, "jsontable.yaml", "format: tsv\n")
	out, _, err := execute(t, "", "--config", cfg, "--data", `[{"a":"x","b":"y"}]`)
	require.NoError(t, err)
	assert.Equal(t, "a\tb\nx\ty\n", out)
}

func TestCommandFlagBeatsConfigFile(t *testing.T) {
	cfg := writeFile(t, "jsontable.yaml", "format: tsv\n")
	out, _, err := execute(t, "", "--config", cfg, "-f", "csv", "--data", `[{"a":"x","b":"y"}]`)
	require.NoError(t, err)
	assert.Equal(t, "a,b\nx,y\n", out)
}

func TestCommandEnvOverride(t *testing.T) {
	t.Setenv("JSONTABLE_FORMAT", "md")
	out, _, err := execute(t, "", "--data", `[{"field":"value1"}]`)
	require.NoError(t, err)
	assert.Equal(t, "field \n------\nvalue1\n", out)
}

func TestCommandVerboseLogs(t *testing.T) {
	_, stderr, err := execute(t, "", "--data", fieldArray, "-v")
	require.NoError(t, err)
	assert.Contains(t, stderr, "rendered table")
	assert.Contains(t, stderr, "inline")
}

func TestCommandJSONLogs(t *testing.T) {
	_, stderr, err := execute(t, "", "--data", fieldArray, "--log-level", "debug", "--log-format", "json")
	require.NoError(t, err)
	assert.Contains(t, stderr, `"msg":"rendered table"`)
	assert.Contains(t, stderr, `"records":1`)
}

func TestCommandErrors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.json")
	tests := map[string]struct {
		stdin string
		args  []string
		code  int
	}{
		"unsupported format": {args: []string{"--data", "[]", "-f", "xml"}, code: ExitUsage},
		"invalid json":       {args: []string{"--data", `[{"a":}]`}, code: ExitData},
		"invalid yaml":       {args: []string{"--data", "a: [1", "--input-format", "yaml"}, code: ExitData},
		"empty stdin":        {stdin: "", args: nil, code: ExitUsage},
		"data and file":      {args: []string{"--data", "[]", "in.json"}, code: ExitUsage},
		"too many args":      {args: []string{"a.json", "b.json"}, code: ExitUsage},
		"unknown flag":       {args: []string{"--nope"}, code: ExitUsage},
		"missing file":       {args: []string{missing}, code: ExitUsage},
		"bad input format":   {args: []string{"--data", "[]", "--input-format", "xml"}, code: ExitUsage},
		"bad log level":      {args: []string{"--data", "[]", "--log-level", "loud"}, code: ExitUsage},
		"bad log format":     {args: []string{"--data", "[]", "--log-format", "xml"}, code: ExitUsage},
		"long separator":     {args: []string{"--data", "[]", "--delimiter", ",", "--header-separator", "=="}, code: ExitError},
		"missing config":     {args: []string{"--data", "[]", "--config", missing}, code: ExitError},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			_, _, err := execute(t, tt.stdin, tt.args...)
			require.Error(t, err)
			assert.Equal(t, tt.code, ExitCode(err))
		})
	}
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "jsontable dev\n", out)
}

func TestInputFormat(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		configured string
		src        string
		want       string
	}{
		"auto json":     {configured: "auto", src: "in.json", want: "json"},
		"auto yaml":     {configured: "auto", src: "in.YAML", want: "yaml"},
		"auto yml":      {configured: "", src: "in.yml", want: "yaml"},
		"auto inline":   {configured: "auto", src: "inline", want: "json"},
		"explicit wins": {configured: "yaml", src: "in.json", want: "yaml"},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, inputFormat(tt.configured, tt.src))
		})
	}
}
