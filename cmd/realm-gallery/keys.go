package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/Yat-Muk/realm/internal/tui/component"
	"github.com/Yat-Muk/realm/internal/tui/event"
)

// command 由快捷鍵映射產生的宿主消息
type command int

const (
	cmdFocusNext command = iota
	cmdFocusPrev
	cmdReset
	cmdQuit
)

type keyMap struct {
	Next  key.Binding
	Prev  key.Binding
	Reset key.Binding
	Quit  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev"),
		),
		Reset: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "reset"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.Reset, k.Quit}
}

// Filter 為 terminal.WithKeyFilter 把綁定按鍵映射為命令
func (k keyMap) Filter(ev event.KeyPress) (component.Msg, bool) {
	switch {
	case key.Matches(ev, k.Next):
		return cmdFocusNext, true
	case key.Matches(ev, k.Prev):
		return cmdFocusPrev, true
	case key.Matches(ev, k.Reset):
		return cmdReset, true
	case key.Matches(ev, k.Quit):
		return cmdQuit, true
	}
	return nil, false
}

// HelpText 在一行內渲染已啟用的綁定
func (k keyMap) HelpText() string {
	parts := make([]string, 0, 4)
	for _, b := range k.ShortHelp() {
		if !b.Enabled() {
			continue
		}
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " • ")
}
