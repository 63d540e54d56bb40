package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test data constants
const (
	testTemplateContent = "Hello, @name! You owe @(amount,8:f2)."
	testDataJSON        = `{"name": "Alice", "amount": 12.5}`
	testExpectedOutput  = "Hello, Alice! You owe    12.50."
	testLinesTemplate   = "@(sku,-4)@(qty,3:d)"
	testLinesData       = "{\"sku\": \"ab\", \"qty\": 2}\n{\"sku\": \"cd\", \"qty\": 10.6}\n"
	testLinesOutput     = "ab    2\ncd   11\n"
	testConfigContent   = "trigger: \"%\"\ndispatch: stable\n"
	testBadConfig       = "trigger: \"(\"\n"
)

// setupTestData creates test files in a temp directory
func setupTestData(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()

	files := map[string]string{
		"template.txt": testTemplateContent,
		"data.json":    testDataJSON,
		"lines.jsonl":  testLinesData,
		"config.yaml":  testConfigContent,
		"bad.yaml":     testBadConfig,
		"invalid.json": `{"name": `,
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, name), []byte(content), FilePermissions))
	}

	return tmpDir
}

// runCLI runs the CLI and returns exit code, stdout and stderr
func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	code := run(args, strings.NewReader(stdin), stdout, stderr)
	return code, stdout.String(), stderr.String()
}

// ==================== run() dispatch tests ====================

func TestRun_NoArgs_ShowsHelp(t *testing.T) {
	code, stdout, _ := runCLI(t, "")

	assert.Equal(t, ExitCodeSuccess, code)
	assert.Contains(t, stdout, CLIName)
	assert.Contains(t, stdout, CmdNameRender)
	assert.Contains(t, stdout, CmdNameInspect)
}

func TestRun_HelpCommand(t *testing.T) {
	for _, cmd := range []string{CmdNameRender, CmdNameInspect, CmdNameVersion, CmdNameHelp} {
		t.Run(cmd, func(t *testing.T) {
			code, stdout, _ := runCLI(t, "", CmdNameHelp, cmd)
			assert.Equal(t, ExitCodeSuccess, code)
			assert.Contains(t, stdout, "Usage:")
		})
	}
}

func TestRun_UnknownCommand(t *testing.T) {
	code, stdout, _ := runCLI(t, "", "unknown")

	assert.Equal(t, ExitCodeUsageError, code)
	assert.Contains(t, stdout, ErrMsgUnknownCommand)
}

// ==================== render tests ====================

func TestRender_TemplateFileWithDataFile(t *testing.T) {
	dir := setupTestData(t)

	code, stdout, stderr := runCLI(t, "", CmdNameRender,
		"-t", filepath.Join(dir, "template.txt"),
		"-f", filepath.Join(dir, "data.json"))

	require.Equal(t, ExitCodeSuccess, code, stderr)
	assert.Equal(t, testExpectedOutput, stdout)
}

func TestRender_InlineWithData(t *testing.T) {
	code, stdout, stderr := runCLI(t, "", CmdNameRender, "-i", testTemplateContent, "-d", testDataJSON)

	require.Equal(t, ExitCodeSuccess, code, stderr)
	assert.Equal(t, testExpectedOutput, stdout)
}

func TestRender_TemplateFromStdin(t *testing.T) {
	code, stdout, stderr := runCLI(t, testTemplateContent, CmdNameRender, "-t", InputSourceStdin, "-d", testDataJSON)

	require.Equal(t, ExitCodeSuccess, code, stderr)
	assert.Equal(t, testExpectedOutput, stdout)
}

func TestRender_DataFromStdin(t *testing.T) {
	code, stdout, stderr := runCLI(t, testDataJSON, CmdNameRender, "-i", testTemplateContent, "-f", InputSourceStdin)

	require.Equal(t, ExitCodeSuccess, code, stderr)
	assert.Equal(t, testExpectedOutput, stdout)
}

func TestRender_PositionalArgs(t *testing.T) {
	code, stdout, stderr := runCLI(t, "", CmdNameRender, "-i", "@(0,-8)|@(1,:x4)|@2", "--", "Ann", "42")

	require.Equal(t, ExitCodeSuccess, code, stderr)
	assert.Equal(t, "Ann     |002a|", stdout)
}

func TestRender_ScalarAndArrayInput(t *testing.T) {
	tests := []struct {
		name     string
		template string
		data     string
		expected string
	}{
		{"number", "@(,:f1)", "3.14159", "3.1"},
		{"array", "@(,:[1,]-)", `["a", "b", "c"]`, "b-c"},
		{"string", "<@>", `"text"`, "<text>"},
		{"null", "[@]", "null", "[]"},
		{"large integer", "@", "12345678901234567890", "12345678901234567890"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := runCLI(t, "", CmdNameRender, "-i", tt.template, "-d", tt.data)
			require.Equal(t, ExitCodeSuccess, code, stderr)
			assert.Equal(t, tt.expected, stdout)
		})
	}
}

func TestRender_NoData(t *testing.T) {
	code, stdout, _ := runCLI(t, "", CmdNameRender, "-i", "a@(x)b@@")

	assert.Equal(t, ExitCodeSuccess, code)
	assert.Equal(t, "ab@", stdout)
}

func TestRender_Lines(t *testing.T) {
	dir := setupTestData(t)

	code, stdout, stderr := runCLI(t, "", CmdNameRender,
		"-i", testLinesTemplate, "-f", filepath.Join(dir, "lines.jsonl"), "-l")

	require.Equal(t, ExitCodeSuccess, code, stderr)
	assert.Equal(t, testLinesOutput, stdout)
}

func TestRender_MultipleValuesWithoutLines(t *testing.T) {
	dir := setupTestData(t)

	code, _, stderr := runCLI(t, "", CmdNameRender,
		"-i", testLinesTemplate, "-f", filepath.Join(dir, "lines.jsonl"))

	assert.Equal(t, ExitCodeInputError, code)
	assert.Contains(t, stderr, ErrMsgInvalidJSON)
}

func TestRender_Config(t *testing.T) {
	dir := setupTestData(t)

	code, stdout, stderr := runCLI(t, "", CmdNameRender,
		"-c", filepath.Join(dir, "config.yaml"),
		"-i", "%name is 100%% @name", "-d", testDataJSON)

	require.Equal(t, ExitCodeSuccess, code, stderr)
	assert.Equal(t, "Alice is 100% @name", stdout)
}

func TestRender_OutputFile(t *testing.T) {
	dir := setupTestData(t)
	outPath := filepath.Join(dir, "out.txt")

	code, stdout, stderr := runCLI(t, "", CmdNameRender,
		"-i", testTemplateContent, "-d", testDataJSON, "-o", outPath)

	require.Equal(t, ExitCodeSuccess, code, stderr)
	assert.Empty(t, stdout)
	content, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, testExpectedOutput, string(content))
}

func TestRender_Verbose(t *testing.T) {
	code, _, stderr := runCLI(t, "", CmdNameRender, "-v", "-i", "@a @a", "-d", `{"a": 1}`)

	assert.Equal(t, ExitCodeSuccess, code)
	assert.Contains(t, stderr, "compile complete")
}

func TestRender_Errors(t *testing.T) {
	dir := setupTestData(t)

	tests := []struct {
		name     string
		args     []string
		code     int
		contains string
	}{
		{"missing template", []string{}, ExitCodeUsageError, ErrMsgMissingTemplate},
		{"both sources", []string{"-i", "x", "-t", "y"}, ExitCodeUsageError, ErrMsgConflictingSources},
		{"both data", []string{"-i", "x", "-d", "1", "-f", "y"}, ExitCodeUsageError, ErrMsgConflictingData},
		{"args with data", []string{"-i", "x", "-d", "1", "a"}, ExitCodeUsageError, ErrMsgArgsWithData},
		{"template and data from stdin", []string{"-t", "-", "-f", "-"}, ExitCodeUsageError, ErrMsgStdinTwice},
		{"unknown flag", []string{"--bogus"}, ExitCodeUsageError, ErrMsgInvalidFlags},
		{"invalid JSON", []string{"-i", "x", "-f", filepath.Join(dir, "invalid.json")}, ExitCodeInputError, ErrMsgInvalidJSON},
		{"missing template file", []string{"-t", filepath.Join(dir, "nope.txt")}, ExitCodeInputError, ErrMsgReadFileFailed},
		{"bad config", []string{"-i", "x", "-c", filepath.Join(dir, "bad.yaml")}, ExitCodeConfigErr, ErrMsgConfigFailed},
		{"missing config", []string{"-i", "x", "-c", filepath.Join(dir, "nope.yaml")}, ExitCodeConfigErr, ErrMsgConfigFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := runCLI(t, "", append([]string{CmdNameRender}, tt.args...)...)
			assert.Equal(t, tt.code, code)
			assert.Contains(t, stderr, tt.contains)
		})
	}
}

// ==================== inspect tests ====================

func TestInspect_Text(t *testing.T) {
	code, stdout, stderr := runCLI(t, "", CmdNameInspect, "-i", "@a and @(a,:) cost @n(p,8:f2)")

	require.Equal(t, ExitCodeSuccess, code, stderr)
	assert.Contains(t, stdout, `Skeleton: "@(a,:) and @(a,:) cost @n(p,8:f2)"`)
	assert.Contains(t, stdout, "Constant: false")
	assert.Contains(t, stdout, "Tokens (2):")
	assert.Contains(t, stdout, InspectTypeDynamic)
	assert.Contains(t, stdout, "number")
}

func TestInspect_JSON(t *testing.T) {
	code, stdout, stderr := runCLI(t, "", CmdNameInspect, "-i", "@a and @(a,:) cost @n(p,8:f2)", "-F", OutputFormatJSON)
	require.Equal(t, ExitCodeSuccess, code, stderr)

	var out struct {
		Skeleton     string `json:"skeleton"`
		Constant     bool   `json:"constant"`
		Trigger      string `json:"trigger"`
		Placeholders []struct {
			Key         string   `json:"key"`
			Path        []string `json:"path"`
			Alignment   int      `json:"alignment"`
			Type        string   `json:"type"`
			SubFormat   string   `json:"sub_format"`
			Occurrences int      `json:"occurrences"`
		} `json:"placeholders"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))

	assert.False(t, out.Constant)
	assert.Equal(t, "@", out.Trigger)
	require.Len(t, out.Placeholders, 2)
	assert.Equal(t, "@(a,:)", out.Placeholders[0].Key)
	assert.Equal(t, 2, out.Placeholders[0].Occurrences)
	assert.Empty(t, out.Placeholders[0].Type)
	assert.Equal(t, "@n(p,8:f2)", out.Placeholders[1].Key)
	assert.Equal(t, []string{"p"}, out.Placeholders[1].Path)
	assert.Equal(t, 8, out.Placeholders[1].Alignment)
	assert.Equal(t, "number", out.Placeholders[1].Type)
	assert.Equal(t, "f2", out.Placeholders[1].SubFormat)
}

func TestInspect_ConstantTemplate(t *testing.T) {
	code, stdout, _ := runCLI(t, "", CmdNameInspect, "-i", "plain @@ text", "-F", OutputFormatJSON)
	require.Equal(t, ExitCodeSuccess, code)

	var out map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.Equal(t, true, out["constant"])
	assert.Equal(t, "plain @ text", out["skeleton"])
	assert.Equal(t, []any{}, out["placeholders"])
}

func TestInspect_Errors(t *testing.T) {
	code, _, stderr := runCLI(t, "", CmdNameInspect, "-i", "x", "-F", "xml")
	assert.Equal(t, ExitCodeUsageError, code)
	assert.Contains(t, stderr, ErrMsgInvalidFormat)

	code, _, stderr = runCLI(t, "", CmdNameInspect)
	assert.Equal(t, ExitCodeUsageError, code)
	assert.Contains(t, stderr, ErrMsgMissingTemplate)
}

// ==================== version tests ====================

func TestVersion_Text(t *testing.T) {
	code, stdout, _ := runCLI(t, "", CmdNameVersion)

	assert.Equal(t, ExitCodeSuccess, code)
	assert.Contains(t, stdout, "go-ssf version")
	assert.Contains(t, stdout, "Default trigger: @")
}

func TestVersion_JSON(t *testing.T) {
	code, stdout, _ := runCLI(t, "", CmdNameVersion, "-F", OutputFormatJSON)
	require.Equal(t, ExitCodeSuccess, code)

	var v versionInfo
	require.NoError(t, json.Unmarshal([]byte(stdout), &v))
	assert.NotEmpty(t, v.Version)
	assert.NotEmpty(t, v.GoVersion)
}

func TestVersion_InvalidFormat(t *testing.T) {
	code, _, stderr := runCLI(t, "", CmdNameVersion, "-F", "xml")

	assert.Equal(t, ExitCodeUsageError, code)
	assert.Contains(t, stderr, ErrMsgInvalidFormat)
}

func TestGetVersionInfo(t *testing.T) {
	t.Run("reads first parsable file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "versions.yaml")
		content := "project:\n  version: 1.2.3\ngit:\n  commit: abc123\n  branch: main\nbuild:\n  time: today\n"
		require.NoError(t, os.WriteFile(path, []byte(content), FilePermissions))

		v := getVersionInfo([]string{filepath.Join(dir, "missing.yaml"), path})
		assert.Equal(t, "1.2.3", v.Version)
		assert.Equal(t, "abc123", v.Commit)
		assert.Equal(t, "main", v.Branch)
		assert.Equal(t, "today", v.BuildTime)
		assert.Equal(t, runtime.Version(), v.GoVersion, "empty go_version keeps the runtime value")
		assert.Equal(t, VersionDefaultName, v.Name)
	})

	t.Run("skips unparsable files", func(t *testing.T) {
		dir := t.TempDir()
		broken := filepath.Join(dir, "broken.yaml")
		good := filepath.Join(dir, "good.yaml")
		require.NoError(t, os.WriteFile(broken, []byte("project: [\n"), FilePermissions))
		require.NoError(t, os.WriteFile(good, []byte("project:\n  name: ssf-fork\n  version: 2.0.0\n"), FilePermissions))

		v := getVersionInfo([]string{broken, good})
		assert.Equal(t, "ssf-fork", v.Name)
		assert.Equal(t, "2.0.0", v.Version)
		assert.Equal(t, VersionUnknown, v.Branch)
	})

	t.Run("defaults without a file", func(t *testing.T) {
		v := getVersionInfo([]string{filepath.Join(t.TempDir(), "missing.yaml")})
		assert.Equal(t, VersionUnknown, v.Version)
		assert.Equal(t, VersionUnknown, v.Commit)
		assert.Equal(t, "@", v.Trigger)
	})
}
