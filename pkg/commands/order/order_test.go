// pkg/commands/order/order_test.go
// TEST TYPE: Business Logic
// DEPENDENCIES: None
// PURPOSE: Test specificity ordering of folders

package order_test

import (
	"testing"

	"github.com/arthur-debert/resconf/pkg/commands/order"
	"github.com/arthur-debert/resconf/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSort_LeastSpecificFirst(t *testing.T) {
	result, err := order.Sort(order.Options{
		Inputs: []string{"values-en-rUS", "values", "values-hdpi", "values-en", "values-v21"},
	})
	require.NoError(t, err)

	assert.Equal(t,
		[]string{"values", "values-v21", "values-hdpi", "values-en", "values-en-rUS"},
		result.Names())
	assert.Equal(t, 4, result.Entries[2].MinSdk)
	assert.Equal(t, "en-rUS", result.Entries[4].Configuration)
}

func TestSort_Reverse(t *testing.T) {
	result, err := order.Sort(order.Options{
		Inputs:  []string{"values", "values-en", "values-en-rUS"},
		Reverse: true,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"values-en-rUS", "values-en", "values"}, result.Names())
}

func TestSort_EqualConfigurationsKeepInputOrder(t *testing.T) {
	result, err := order.Sort(order.Options{
		Inputs: []string{"values-land", "layout-land", "en", "drawable-land"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"values-land", "layout-land", "drawable-land", "en"}, result.Names())
}

func TestSort_Errors(t *testing.T) {
	_, err := order.Sort(order.Options{})
	assert.Equal(t, errors.ErrInvalidInput, errors.GetErrorCode(err))

	_, err = order.Sort(order.Options{Inputs: []string{"values", "values-hdpi-en"}})
	assert.Equal(t, errors.ErrFolderInvalid, errors.GetErrorCode(err))
}
