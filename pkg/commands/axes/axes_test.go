package axes_test

import (
	"testing"

	"github.com/arthur-debert/resconf/pkg/commands/axes"
	"github.com/arthur-debert/resconf/pkg/folderconfig"
	"github.com/arthur-debert/resconf/pkg/qualifiers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAxes(t *testing.T) {
	result := axes.Axes()
	require.Len(t, result.Axes, int(qualifiers.AxisCount))

	assert.Equal(t, "Mobile Country Code", result.Axes[0].Name)
	assert.Equal(t, "Version", result.Axes[len(result.Axes)-1].Name)
	assert.Equal(t, 17, result.Axes[qualifiers.AxisLayoutDirection].Since)
}

func TestAxes_ExamplesParseOnTheirAxis(t *testing.T) {
	for _, a := range axes.Axes().Axes {
		require.NotEmpty(t, a.Examples, a.Name)
		for _, example := range a.Examples {
			config := folderconfig.GetConfigForQualifierString(example)
			require.NotNil(t, config, example)
			assert.NotNil(t, config.Qualifier(qualifiers.Axis(a.Index)), "%s should set %s", example, a.Name)
			assert.Equal(t, example, config.QualifierString())
		}
	}
}

func TestMarkdown(t *testing.T) {
	md := axes.Axes().Markdown()
	assert.Contains(t, md, "# Configuration axes")
	assert.Contains(t, md, "| 1 | Mobile Country Code | 1 | `mcc310`, `mcc208` |")
	assert.Contains(t, md, "| 21 | Version |")
}
