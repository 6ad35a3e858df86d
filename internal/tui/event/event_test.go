package event

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsGlobal(t *testing.T) {
	tests := []struct {
		name string
		ev   Event
		want bool
	}{
		{"resize", Resize{Cols: 80, Rows: 24}, true},
		{"tick", Tick{At: time.Unix(0, 0)}, true},
		{"key", Char('x'), false},
		{"paste", Paste{Text: "hello"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsGlobal(tt.ev))
		})
	}
}

func TestKeyPressString(t *testing.T) {
	assert.Equal(t, "x", Char('x').String())
	assert.Equal(t, "ctrl+r", Ctrl('r').String())
	assert.Equal(t, "space", Char(' ').String())
	assert.Equal(t, "enter", Press(KeyEnter).String())
	assert.Equal(t, "shift+tab", KeyPress{Code: KeyBackTab, Modifiers: ModShift}.String())
	assert.Equal(t, "alt+left", KeyPress{Code: KeyLeft, Modifiers: ModAlt}.String())
}

func TestModifierHas(t *testing.T) {
	m := ModCtrl | ModAlt
	assert.True(t, m.Has(ModCtrl))
	assert.True(t, m.Has(ModCtrl|ModAlt))
	assert.False(t, m.Has(ModShift))
	assert.True(t, m.Has(ModNone))
}
