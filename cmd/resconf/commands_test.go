// cmd/resconf/commands_test.go
// TEST TYPE: CLI Integration
// DEPENDENCIES: Isolated config and state directories
// PURPOSE: Test the commands end to end through the root command

package resconf_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/resconf/cmd/resconf"
	"github.com/arthur-debert/resconf/pkg/commands/device"
	"github.com/arthur-debert/resconf/pkg/commands/filter"
	"github.com/arthur-debert/resconf/pkg/commands/match"
	"github.com/arthur-debert/resconf/pkg/commands/order"
	"github.com/arthur-debert/resconf/pkg/commands/parse"
	"github.com/arthur-debert/resconf/pkg/config"
	"github.com/arthur-debert/resconf/pkg/errors"
	"github.com/arthur-debert/resconf/pkg/testutil"
)

func isolate(t *testing.T) string {
	t.Helper()
	return testutil.NewEnvironment(t).ProjectDir
}

func run(t *testing.T, project string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := resconf.NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"-C", project}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestParseCmd(t *testing.T) {
	project := isolate(t)

	out, err := run(t, project, "--format", "json", "parse", "values-en-rUS-hdpi", "sw600dp")
	require.NoError(t, err)

	var result parse.Result
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Len(t, result.Folders, 2)
	assert.Equal(t, "values-en-rUS-hdpi-v4", result.Folders[0].Normalized)
	assert.Equal(t, "sw600dp-v13", result.Folders[1].Normalized)
}

func TestParseCmd_InvalidInput(t *testing.T) {
	project := isolate(t)

	out, err := run(t, project, "--format", "text", "parse", "values", "values-hdpi-en")
	require.Error(t, err)
	assert.Equal(t, errors.ErrFolderInvalid, errors.GetErrorCode(err))
	assert.Contains(t, out, "values-hdpi-en", "the report is still printed")
}

func TestMatchCmd(t *testing.T) {
	project := isolate(t)

	out, err := run(t, project, "--format", "text", "match", "--ref", "en-rUS",
		"values", "values-en", "values-en-rUS", "values-fr")
	require.NoError(t, err)
	assert.Contains(t, out, "Best match: values-en-rUS")
}

func TestMatchCmd_Device(t *testing.T) {
	project := isolate(t)

	out, err := run(t, project, "--format", "json", "match", "--device", "pixel_7", "--locale", "fr_FR",
		"values", "values-fr", "values-sw600dp")
	require.NoError(t, err)

	var result match.Result
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "pixel_7", result.Device)
	assert.Equal(t, []string{"values-fr"}, result.Best)
}

func TestMatchCmd_NoMatch(t *testing.T) {
	project := isolate(t)

	_, err := run(t, project, "--format", "text", "match", "--ref", "fr", "values-en")
	require.Error(t, err)
	assert.Equal(t, errors.ErrNoMatch, errors.GetErrorCode(err))
}

func TestMatchCmd_DefaultDevice(t *testing.T) {
	project := isolate(t)

	_, err := run(t, project, "--format", "text", "match", "values")
	require.Error(t, err)
	assert.Equal(t, errors.ErrInvalidInput, errors.GetErrorCode(err))

	out, err := run(t, project, "--format", "json", "--set", "devices.default=wear_round",
		"match", "values", "values-watch")
	require.NoError(t, err)

	var result match.Result
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "wear_round", result.Device)
	assert.Equal(t, []string{"values-watch"}, result.Best)
}

func TestMatchCmd_NormalizeFromConfig(t *testing.T) {
	project := isolate(t)
	args := []string{"--format", "json", "match", "--ref", "ldrtl-v16", "values", "values-ldrtl"}

	out, err := run(t, project, args...)
	require.NoError(t, err)
	var normalized match.Result
	require.NoError(t, json.Unmarshal([]byte(out), &normalized))
	assert.Equal(t, []string{"values"}, normalized.Best)

	out, err = run(t, project, append([]string{"--set", "match.normalize=false"}, args...)...)
	require.NoError(t, err)
	var raw match.Result
	require.NoError(t, json.Unmarshal([]byte(out), &raw))
	assert.Equal(t, []string{"values-ldrtl"}, raw.Best)
}

func TestSortCmd(t *testing.T) {
	project := isolate(t)

	out, err := run(t, project, "--format", "json", "sort", "values-en", "values", "values-v21")
	require.NoError(t, err)

	var result order.Result
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, []string{"values", "values-v21", "values-en"}, result.Names())
}

func TestFilterCmd_ProjectConfig(t *testing.T) {
	env := testutil.NewEnvironment(t)
	env.WriteProjectConfig(t, "[product]\npreferred_density = \"xhdpi\"\n")
	project := env.ProjectDir

	out, err := run(t, project, "--format", "json", "filter", "drawable-hdpi", "drawable-xhdpi", "drawable-xxhdpi")
	require.NoError(t, err)

	var result filter.Result
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, []string{"drawable-xhdpi"}, result.Kept)

	out, err = run(t, project, "--format", "json", "filter", "-c", "hdpi", "--preferred-density", "",
		"drawable-hdpi", "drawable-xhdpi")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, []string{"drawable-hdpi"}, result.Kept)
}

func TestDevicesCmd(t *testing.T) {
	project := isolate(t)

	out, err := run(t, project, "--format", "text", "devices", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "pixel_7")
	assert.Contains(t, out, "wear_round")

	out, err = run(t, project, "--format", "json", "devices", "show", "nexus_one", "--locale", "en_GB")
	require.NoError(t, err)

	var result device.ShowResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "nexus_one", result.ID)
	require.NotEmpty(t, result.Details)
	assert.Contains(t, result.Details[0].Configuration, "en-rGB-")
}

func TestDevicesCmd_UserDevicesDir(t *testing.T) {
	env := testutil.NewEnvironment(t)
	env.WriteDevices(t, "lab.yaml", `devices:
  - id: lab_phone
    name: Lab Phone
    screen: {size: normal, density: xhdpi, width: 720, height: 1280}
    api_level: 30
`)

	out, err := run(t, env.ProjectDir, "--format", "text", "devices", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "lab_phone")
}

func TestAxesCmd(t *testing.T) {
	project := isolate(t)

	out, err := run(t, project, "--format", "text", "axes")
	require.NoError(t, err)
	assert.Contains(t, out, "| 1 | Mobile Country Code |")
	assert.Contains(t, out, "| 21 | Version |")
}

func TestConfigCmd(t *testing.T) {
	project := isolate(t)

	out, err := run(t, project, "config", "--defaults")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultContent(), out)

	out, err = run(t, project, "--set", "match.normalize=false", "config")
	require.NoError(t, err)
	assert.Contains(t, out, "normalize = false")
	assert.Contains(t, out, "format = 'auto'")
}

func TestVersionCmd(t *testing.T) {
	project := isolate(t)

	out, err := run(t, project, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "resconf version")
}

func TestInvalidFormat(t *testing.T) {
	project := isolate(t)

	_, err := run(t, project, "--format", "yaml", "sort", "values")
	require.Error(t, err)
	assert.Equal(t, errors.ErrConfigValid, errors.GetErrorCode(err))
}

func TestInvalidSetFlag(t *testing.T) {
	project := isolate(t)

	_, err := run(t, project, "--set", "novalue", "sort", "values")
	require.Error(t, err)
	assert.Equal(t, errors.ErrInvalidInput, errors.GetErrorCode(err))
}

func TestHelpTopics(t *testing.T) {
	project := isolate(t)

	out, err := run(t, project, "--format", "text", "help", "matching")
	require.NoError(t, err)
	assert.Contains(t, out, "# Matching")

	out, err = run(t, project, "--format", "text", "help", "normalize")
	require.NoError(t, err)
	assert.Contains(t, out, "values-ldrtl-v17")

	out, err = run(t, project, "topics")
	require.NoError(t, err)
	assert.Contains(t, out, "  qualifiers\n")
	assert.Contains(t, out, "  --with\n")

	_, err = run(t, project, "help", "nonsense")
	assert.Error(t, err)
}
