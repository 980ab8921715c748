package registry_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/resconf/pkg/errors"
	"github.com/arthur-debert/resconf/pkg/registry"
)

type device struct {
	ID  string
	DPI int
}

func TestRegister(t *testing.T) {
	reg := registry.New[device]()
	assert.Equal(t, 0, reg.Count())

	require.NoError(t, reg.Register("pixel_7", device{ID: "pixel_7", DPI: 420}))
	assert.Equal(t, 1, reg.Count())

	err := reg.Register("", device{})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	err = reg.Register("  ", device{})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	err = reg.Register("PIXEL_7", device{ID: "dup"})
	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))
	assert.Equal(t, "PIXEL_7", errors.GetErrorDetails(err)["name"])
}

func TestGetIsCaseInsensitive(t *testing.T) {
	reg := registry.New[device]()
	require.NoError(t, reg.Register("Nexus_One", device{ID: "nexus_one", DPI: 240}))

	got, err := reg.Get("nexus_one")
	require.NoError(t, err)
	assert.Equal(t, 240, got.DPI)

	assert.True(t, reg.Has("NEXUS_ONE"))
	assert.Equal(t, []string{"Nexus_One"}, reg.List())

	_, err = reg.Get("pixel_7")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestPutReplaces(t *testing.T) {
	reg := registry.New[device]()
	require.NoError(t, reg.Put("tv_1080p", device{DPI: 320}))
	require.NoError(t, reg.Put("TV_1080P", device{DPI: 213}))

	assert.Equal(t, 1, reg.Count())
	got, err := reg.Get("tv_1080p")
	require.NoError(t, err)
	assert.Equal(t, 213, got.DPI)
	assert.Equal(t, []string{"tv_1080p"}, reg.List())

	err = reg.Put("", device{})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestListAndValuesAreSorted(t *testing.T) {
	reg := registry.New[device]()
	for _, id := range []string{"wear_round", "Automotive", "pixel_7"} {
		require.NoError(t, reg.Register(id, device{ID: id}))
	}

	assert.Equal(t, []string{"Automotive", "pixel_7", "wear_round"}, reg.List())

	values := reg.Values()
	require.Len(t, values, 3)
	assert.Equal(t, "Automotive", values[0].ID)
	assert.Equal(t, "wear_round", values[2].ID)
}

func TestRemove(t *testing.T) {
	reg := registry.New[device]()
	require.NoError(t, reg.Register("pixel_7", device{}))

	require.NoError(t, reg.Remove("Pixel_7"))
	assert.False(t, reg.Has("pixel_7"))

	err := reg.Remove("pixel_7")
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestConcurrentAccess(t *testing.T) {
	reg := registry.New[device]()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := fmt.Sprintf("device_%02d", i)
			assert.NoError(t, reg.Register(name, device{ID: name, DPI: i}))
			_ = reg.Has(name)
			_ = reg.List()
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 20, reg.Count())
	assert.Equal(t, "device_00", reg.List()[0])
}
