package cli_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdidvp/docck/internal/adapters/inbound/cli"
	"github.com/abdidvp/docck/internal/domain"
)

const fixturesDir = "../../../../testdata/projects"

func fixture(name string) string { return filepath.Join(fixturesDir, name) }

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func decodeReport(t *testing.T, out string) domain.AggregateReport {
	t.Helper()
	var report domain.AggregateReport
	require.NoError(t, json.Unmarshal([]byte(out), &report), "output should be valid JSON")
	return report
}

func TestCheckCommand_CompletePluginPasses(t *testing.T) {
	out, err := runCLI(t, "check", fixture("complete-plugin"), "--format", "json")
	require.NoError(t, err)

	report := decodeReport(t, out)
	assert.True(t, report.Passed)
	require.Len(t, report.Projects, 1)
	p := report.Projects[0]
	assert.Equal(t, "Docck Demo Plugin", p.Project)
	assert.Zero(t, p.Errors)
	assert.Equal(t, 5, p.Warnings, "offline mode leaves every URL unverified")
}

func TestCheckCommand_IncompletePluginFails(t *testing.T) {
	out, err := runCLI(t, "check", fixture("incomplete-plugin"), "--format", "json")
	require.Error(t, err)

	var docErr *domain.DocumentationError
	require.True(t, errors.As(err, &docErr))
	assert.Equal(t, cli.ExitProblems, cli.ExitCode(err))
	assert.Equal(t, "Documentation problems were found. Please see the JSON report for more information.", err.Error())

	report := decodeReport(t, out)
	assert.False(t, report.Passed)
	require.Len(t, report.Projects, 1)
	p := report.Projects[0]
	assert.Equal(t, "incomplete-maven-plugin", p.Project)
	assert.Equal(t, 8, p.Errors)
	assert.Equal(t, 3, p.Warnings)

	var messages []string
	for _, f := range p.Findings {
		messages = append(messages, f.Message)
	}
	assert.Contains(t, messages, "pom.xml is missing the <name> tag.")
	assert.Contains(t, messages, "pom.xml is missing the <licenses>/<license>/<url> tag for the license 'MIT'.")
	assert.Contains(t, messages, "pom.xml is missing the <url> tag in <issueManagement>.")
	assert.Contains(t, messages, "There is no 'usage' file in your site directory (in apt|fml|html|md|xml[.vm] format).")
}

func TestCheckCommand_MultiModule(t *testing.T) {
	out, err := runCLI(t, "check", fixture("multi-module"), "--format", "json")
	require.NoError(t, err)

	report := decodeReport(t, out)
	assert.True(t, report.Passed)
	require.Len(t, report.Projects, 2)
	assert.Equal(t, "Docck Parent", report.Projects[0].Project)
	assert.Equal(t, "Docck Maven Plugin", report.Projects[1].Project)
	assert.Equal(t, []string{"Docck Core"}, report.Skipped)
}

func TestCheckCommand_OutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docck.txt")
	_, err := runCLI(t, "check", fixture("incomplete-plugin"), "--output", path)
	require.Error(t, err)
	assert.Equal(t, "Documentation problems were found. Please see '"+path+"' for more information.", err.Error())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.True(t, strings.HasPrefix(text, "The following documentation problems were found:\n"))
	assert.Contains(t, text, "\no incomplete-maven-plugin (8 errors, 3 warnings)\n")
	assert.Contains(t, text, "  pom.xml is missing the <inceptionYear> tag.\n")
	assert.NotContains(t, text, "No documentation errors were found.")
}

func TestCheckCommand_OutputFileWarningsOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docck.txt")
	_, err := runCLI(t, "check", fixture("complete-plugin"), "-o", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "o Docck Demo Plugin (0 errors, 5 warnings)")
	assert.True(t, strings.HasSuffix(string(data), "No documentation errors were found."))
}

func TestCheckCommand_UnwritableOutputIsFatal(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	_, err := runCLI(t, "check", fixture("complete-plugin"), "--output", filepath.Join(blocker, "out.txt"))
	require.Error(t, err)

	var outErr *domain.OutputError
	assert.True(t, errors.As(err, &outErr))
	assert.Equal(t, cli.ExitFatal, cli.ExitCode(err))
}

func TestCheckCommand_Pretty(t *testing.T) {
	out, err := runCLI(t, "check", fixture("complete-plugin"), "--format", "pretty")
	require.NoError(t, err)
	assert.Contains(t, out, "docck")
	assert.Contains(t, out, "Docck Demo Plugin")
	assert.Contains(t, out, "PASSED")
}

func TestCheckCommand_UnknownFormat(t *testing.T) {
	_, err := runCLI(t, "check", fixture("complete-plugin"), "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown format "xml"`)
	assert.Equal(t, cli.ExitFatal, cli.ExitCode(err))
}

func TestCheckCommand_InvalidProxyFlags(t *testing.T) {
	_, err := runCLI(t, "check", fixture("complete-plugin"), "--proxy-host", "proxy.example", "--format", "json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid flags: proxy.port must be between 1 and 65535")
	assert.Equal(t, cli.ExitFatal, cli.ExitCode(err))
}

func TestCheckCommand_MissingDescriptorIsFatal(t *testing.T) {
	_, err := runCLI(t, "check", t.TempDir(), "--offline", "--format", "json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no project.yaml or pom.xml found")
	assert.Equal(t, cli.ExitFatal, cli.ExitCode(err))
}

func TestCheckCommand_ConfigFlag(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "ci.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("offline: true\nrecord_history: false\nsupported_packaging: [plugin]\n"), 0644))

	out, err := runCLI(t, "check", fixture("multi-module"), "--config", cfgPath, "--format", "json")
	require.NoError(t, err)

	report := decodeReport(t, out)
	require.Len(t, report.Projects, 1)
	assert.Equal(t, "Docck Maven Plugin", report.Projects[0].Project)
	assert.Equal(t, []string{"Docck Parent", "Docck Core"}, report.Skipped)
}

func TestCheckCommand_SiteDirFlag(t *testing.T) {
	out, _ := runCLI(t, "check", fixture("complete-plugin"), "--site-dir", "docs", "--format", "json")

	report := decodeReport(t, out)
	require.Len(t, report.Projects, 1)
	assert.Equal(t, 4, report.Projects[0].Errors, "no document is found under docs/")
}

func TestCheckCommand_History(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "project.yaml"), []byte("name: Demo\npackaging: plugin\n"), 0644))

	_, err := runCLI(t, "check", dir, "--offline", "--format", "json")
	require.Error(t, err)
	assert.FileExists(t, filepath.Join(dir, ".docck", "history", "runs.json"))

	out, err := runCLI(t, "check", dir, "--history")
	require.NoError(t, err)
	assert.Contains(t, out, "Run History")
	assert.Contains(t, out, "fail")
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, cli.ExitOK, cli.ExitCode(nil))
	assert.Equal(t, cli.ExitProblems, cli.ExitCode(&domain.DocumentationError{Location: "x"}))
	assert.Equal(t, cli.ExitFatal, cli.ExitCode(&domain.OutputError{Path: "p", Err: os.ErrPermission}))
	assert.Equal(t, cli.ExitFatal, cli.ExitCode(errors.New("loading config: boom")))
}
