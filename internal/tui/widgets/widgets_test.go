package widgets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yat-Muk/realm/internal/tui/props"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, Clamp(5, 0))
	assert.Equal(t, 0, Clamp(-1, 3))
	assert.Equal(t, 2, Clamp(7, 3))
	assert.Equal(t, 1, Clamp(1, 3))
}

func TestFrame(t *testing.T) {
	assert.Nil(t, Frame(props.Default(), true))

	b := props.NewBuilder("x", props.AttrTitle)
	b.Set(props.AttrTitle, "T")
	p, err := b.Build()
	require.NoError(t, err)

	f := Frame(p, true)
	require.NotNil(t, f)
	assert.Equal(t, "T", f.Title)
	assert.True(t, f.Active)
}

func TestEnabled(t *testing.T) {
	assert.True(t, Enabled(props.Default()))
	assert.False(t, Enabled(props.Props{}), "invisible")

	b := props.NewBuilder("x", props.AttrDisabled)
	b.Set(props.AttrDisabled, true)
	p, err := b.Build()
	require.NoError(t, err)
	assert.False(t, Enabled(p))
}
