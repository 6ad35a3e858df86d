package component

import (
	"testing"

	"github.com/Yat-Muk/realm/internal/tui/props"
	"github.com/stretchr/testify/assert"
)

func TestTag(t *testing.T) {
	assert.Nil(t, Tag("a", nil))

	msg := Tag("a", "changed")
	id, inner := Untag(msg)
	assert.Equal(t, ID("a"), id)
	assert.Equal(t, "changed", inner)

	id, inner = Untag("host")
	assert.Equal(t, ID(""), id)
	assert.Equal(t, "host", inner)
}

func TestDrawableHeight(t *testing.T) {
	d := Drawable{Lines: []Line{TextLine("a", props.Style{}), TextLine("b", props.Style{})}}
	assert.Equal(t, 2, d.Height())

	d.Block = &Block{Borders: props.Borders{Sides: props.AllSides}}
	assert.Equal(t, 4, d.Height())

	d.Block.Borders.Sides = props.Top | props.Left
	assert.Equal(t, 3, d.Height())

	assert.Equal(t, 0, Empty().Height())
}

func TestDrawablePlainText(t *testing.T) {
	d := Drawable{Lines: []Line{
		{{Text: "hello "}, {Text: "world"}},
		TextLine("!", props.Style{}),
	}}
	assert.Equal(t, "hello world\n!", d.PlainText())
}

func TestPayload(t *testing.T) {
	assert.True(t, None().IsNone())
	assert.Equal(t, "x", One("x").One)
	v := Vec(1, 2)
	assert.Equal(t, PayloadVec, v.Kind)
	assert.Equal(t, []interface{}{1, 2}, v.Vec)
}
