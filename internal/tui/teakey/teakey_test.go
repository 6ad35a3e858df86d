package teakey

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yat-Muk/realm/internal/tui/event"
)

func TestFromMsg(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want event.Event
	}{
		{"rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, event.Char('x')},
		{"alt rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true}, event.KeyPress{Code: event.KeyRune, Rune: 'x', Modifiers: event.ModAlt}},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, event.Char(' ')},
		{"paste", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hello"), Paste: true}, event.Paste{Text: "hello"}},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, event.Press(event.KeyEnter)},
		{"shift tab", tea.KeyMsg{Type: tea.KeyShiftTab}, event.Press(event.KeyBackTab)},
		{"ctrl r", tea.KeyMsg{Type: tea.KeyCtrlR}, event.Ctrl('r')},
		{"ctrl left", tea.KeyMsg{Type: tea.KeyCtrlLeft}, event.KeyPress{Code: event.KeyLeft, Modifiers: event.ModCtrl}},
		{"f5", tea.KeyMsg{Type: tea.KeyF5}, event.Press(event.KeyF5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FromMsg(tt.msg)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := FromMsg(tea.KeyMsg{Type: tea.KeyRunes})
	assert.False(t, ok, "empty runes")
}

func TestToMsg(t *testing.T) {
	msg, ok := ToMsg(event.Char('a'))
	require.True(t, ok)
	assert.Equal(t, "a", msg.String())

	msg, ok = ToMsg(event.Ctrl('w'))
	require.True(t, ok)
	assert.Equal(t, tea.KeyCtrlW, msg.Type)

	msg, ok = ToMsg(event.Press(event.KeyBackspace))
	require.True(t, ok)
	assert.Equal(t, tea.KeyBackspace, msg.Type)

	msg, ok = ToMsg(event.KeyPress{Code: event.KeyLeft, Modifiers: event.ModAlt})
	require.True(t, ok)
	assert.Equal(t, "alt+left", msg.String())

	_, ok = ToMsg(event.Ctrl('1'))
	assert.False(t, ok)
	_, ok = ToMsg(event.KeyPress{Code: event.KeyF1, Modifiers: event.ModCtrl})
	assert.False(t, ok)
}

func TestRoundTrip(t *testing.T) {
	for tt := range fromTea {
		ev, ok := FromMsg(tea.KeyMsg{Type: tt})
		require.True(t, ok, tt.String())
		back, ok := ToMsg(ev.(event.KeyPress))
		require.True(t, ok, tt.String())
		assert.Equal(t, tt, back.Type)
	}
}
