// pkg/commands/parse/parse_test.go
// TEST TYPE: Business Logic
// DEPENDENCIES: None
// PURPOSE: Test folder name and qualifier string decoding

package parse_test

import (
	"testing"

	"github.com/arthur-debert/resconf/pkg/commands/parse"
	"github.com/arthur-debert/resconf/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_FolderName(t *testing.T) {
	result, err := parse.Parse(parse.Options{Inputs: []string{"values-en-rUS-hdpi"}})
	require.NoError(t, err)
	require.Len(t, result.Folders, 1)

	f := result.Folders[0]
	assert.True(t, f.Valid)
	assert.Equal(t, "values", f.Type)
	assert.Equal(t, "values-en-rUS-hdpi", f.Canonical)
	assert.Equal(t, "values-en-rUS-hdpi-v4", f.Normalized)
	assert.Equal(t, 4, f.MinSdk)

	require.Len(t, f.Qualifiers, 3)
	assert.Equal(t, "Language", f.Qualifiers[0].Axis)
	assert.Equal(t, "en", f.Qualifiers[0].Segment)
	assert.Equal(t, "rUS", f.Qualifiers[1].Segment)
	assert.Equal(t, "Density", f.Qualifiers[2].Axis)
	assert.Equal(t, "hdpi", f.Qualifiers[2].Segment)
	assert.Equal(t, 4, f.Qualifiers[2].Since)
}

func TestParse_QualifierString(t *testing.T) {
	result, err := parse.Parse(parse.Options{Inputs: []string{"en-rUS"}})
	require.NoError(t, err)

	f := result.Folders[0]
	assert.True(t, f.Valid)
	assert.Empty(t, f.Type)
	assert.Equal(t, "en-rUS", f.Canonical)
	assert.Equal(t, "en-rUS", f.Normalized, "nothing to normalize below API 2")
	assert.Equal(t, 1, f.MinSdk)
}

func TestParse_DefaultFolder(t *testing.T) {
	result, err := parse.Parse(parse.Options{Inputs: []string{"values"}})
	require.NoError(t, err)

	f := result.Folders[0]
	assert.True(t, f.Valid)
	assert.Equal(t, "values", f.Canonical)
	assert.Equal(t, "default", f.Display)
	assert.Empty(t, f.Qualifiers)
}

func TestParse_InvalidInputsAreReported(t *testing.T) {
	inputs := []string{"values-hdpi-en", "layout-land", "notatype-xx"}
	result, err := parse.Parse(parse.Options{Inputs: inputs})
	require.NoError(t, err)
	require.Len(t, result.Folders, 3)

	assert.False(t, result.Folders[0].Valid)
	assert.NotEmpty(t, result.Folders[0].Error)
	assert.True(t, result.Folders[1].Valid)
	assert.False(t, result.Folders[2].Valid)
	assert.Equal(t, []string{"values-hdpi-en", "notatype-xx"}, result.Invalid())
}

func TestParse_NoInputs(t *testing.T) {
	_, err := parse.Parse(parse.Options{})
	require.Error(t, err)
	assert.Equal(t, errors.ErrInvalidInput, errors.GetErrorCode(err))
}

func TestConfiguration_ErrorCodes(t *testing.T) {
	_, _, err := parse.Configuration("values-hdpi-en")
	assert.Equal(t, errors.ErrFolderInvalid, errors.GetErrorCode(err))

	_, _, err = parse.Configuration("hdpi-en")
	assert.Equal(t, errors.ErrQualifierInvalid, errors.GetErrorCode(err))

	folderType, config, err := parse.Configuration("drawable-sw600dp")
	require.NoError(t, err)
	assert.Equal(t, "drawable", string(folderType))
	assert.Equal(t, "sw600dp", config.QualifierString())
}
