package capability

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newABC() *Registry[string] {
	return New("letters",
		Entry[string]{Name: "a", Value: "A"},
		Entry[string]{Name: "b", Value: "B"},
		Entry[string]{Name: "c", Value: "C"},
	)
}

func TestRegistry_UnsetReturnsAllInOrder(t *testing.T) {
	reg := newABC()

	assert.Equal(t, []string{"A", "B", "C"}, reg.Active())
	assert.Equal(t, []string{"a", "b", "c"}, reg.ActiveNames())

	_, ok := reg.Enabled()
	assert.False(t, ok)
}

func TestRegistry_EnableKeepsRegistryOrder(t *testing.T) {
	reg := newABC()

	require.NoError(t, reg.Enable("c", "a"))

	assert.Equal(t, []string{"A", "C"}, reg.Active())
	enabled, ok := reg.Enabled()
	require.True(t, ok)
	assert.Equal(t, []string{"c", "a"}, enabled, "stored set keeps caller order")
}

func TestRegistry_EnableUnknownIsAtomic(t *testing.T) {
	reg := newABC()
	require.NoError(t, reg.Enable("b"))

	err := reg.Enable("a", "x", "y", "x")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.EqualError(t, err, "letters don't exist: x, y")

	var unknown *UnknownNamesError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, []string{"x", "y"}, unknown.Names)

	assert.Equal(t, []string{"B"}, reg.Active())
}

func TestRegistry_EnableEmpty(t *testing.T) {
	reg := newABC()

	require.NoError(t, reg.Enable())

	assert.Empty(t, reg.Active())
	enabled, ok := reg.Enabled()
	assert.True(t, ok)
	assert.Empty(t, enabled)
}

func TestRegistry_EnableCopiesInput(t *testing.T) {
	reg := newABC()
	names := []string{"a"}

	require.NoError(t, reg.Enable(names...))
	names[0] = "c"

	assert.Equal(t, []string{"A"}, reg.Active())
}

func TestRegistry_AddOverwriteKeepsPosition(t *testing.T) {
	reg := newABC()

	reg.Add("a", "A2")
	reg.Add("d", "D")

	assert.Equal(t, []string{"a", "b", "c", "d"}, reg.Names())
	assert.Equal(t, []string{"A2", "B", "C", "D"}, reg.Active())
}

func TestRegistry_AddedEntryNotActiveWhenSetExplicit(t *testing.T) {
	reg := newABC()
	require.NoError(t, reg.Enable("a"))

	reg.Add("d", "D")
	assert.Equal(t, []string{"A"}, reg.Active())

	require.NoError(t, reg.Enable("d", "a"))
	assert.Equal(t, []string{"A", "D"}, reg.Active())
}

func TestRegistry_Get(t *testing.T) {
	reg := newABC()

	v, ok := reg.Get("b")
	assert.True(t, ok)
	assert.Equal(t, "B", v)

	v, ok = reg.Get("z")
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestSelector(t *testing.T) {
	sel := NewSelector("storage", "yaml",
		Entry[int]{Name: "json", Value: 1},
		Entry[int]{Name: "yaml", Value: 2},
	)

	name, v := sel.Selected()
	assert.Equal(t, "yaml", name)
	assert.Equal(t, 2, v)

	require.NoError(t, sel.Select("json"))
	name, v = sel.Selected()
	assert.Equal(t, "json", name)
	assert.Equal(t, 1, v)

	err := sel.Select("xml")
	assert.ErrorIs(t, err, ErrKeyNotFound)
	assert.EqualError(t, err, "storage 'xml' not available")

	name, _ = sel.Selected()
	assert.Equal(t, "json", name)
	assert.Equal(t, []string{"json", "yaml"}, sel.Names())
}

func TestNewSelector_UnknownDefaultPanics(t *testing.T) {
	assert.Panics(t, func() {
		NewSelector[int]("storage", "xml", Entry[int]{Name: "json", Value: 1})
	})
}
