// Package teakey 在 bubbletea 按鍵消息與輸入事件之間轉換
package teakey

import (
	"unicode"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Yat-Muk/realm/internal/tui/event"
)

type press struct {
	code event.Key
	mods event.Modifier
}

var fromTea = map[tea.KeyType]press{
	tea.KeyNull:      {code: event.KeyNull},
	tea.KeyEnter:     {code: event.KeyEnter},
	tea.KeyTab:       {code: event.KeyTab},
	tea.KeyShiftTab:  {code: event.KeyBackTab},
	tea.KeyEsc:       {code: event.KeyEsc},
	tea.KeyBackspace: {code: event.KeyBackspace},
	tea.KeyDelete:    {code: event.KeyDelete},
	tea.KeyInsert:    {code: event.KeyInsert},
	tea.KeyUp:        {code: event.KeyUp},
	tea.KeyDown:      {code: event.KeyDown},
	tea.KeyLeft:      {code: event.KeyLeft},
	tea.KeyRight:     {code: event.KeyRight},
	tea.KeyHome:      {code: event.KeyHome},
	tea.KeyEnd:       {code: event.KeyEnd},
	tea.KeyPgUp:      {code: event.KeyPageUp},
	tea.KeyPgDown:    {code: event.KeyPageDown},
	tea.KeyF1:        {code: event.KeyF1},
	tea.KeyF2:        {code: event.KeyF2},
	tea.KeyF3:        {code: event.KeyF3},
	tea.KeyF4:        {code: event.KeyF4},
	tea.KeyF5:        {code: event.KeyF5},
	tea.KeyF6:        {code: event.KeyF6},
	tea.KeyF7:        {code: event.KeyF7},
	tea.KeyF8:        {code: event.KeyF8},
	tea.KeyF9:        {code: event.KeyF9},
	tea.KeyF10:       {code: event.KeyF10},
	tea.KeyF11:       {code: event.KeyF11},
	tea.KeyF12:       {code: event.KeyF12},

	tea.KeyCtrlUp:        {code: event.KeyUp, mods: event.ModCtrl},
	tea.KeyCtrlDown:      {code: event.KeyDown, mods: event.ModCtrl},
	tea.KeyCtrlLeft:      {code: event.KeyLeft, mods: event.ModCtrl},
	tea.KeyCtrlRight:     {code: event.KeyRight, mods: event.ModCtrl},
	tea.KeyCtrlHome:      {code: event.KeyHome, mods: event.ModCtrl},
	tea.KeyCtrlEnd:       {code: event.KeyEnd, mods: event.ModCtrl},
	tea.KeyCtrlPgUp:      {code: event.KeyPageUp, mods: event.ModCtrl},
	tea.KeyCtrlPgDown:    {code: event.KeyPageDown, mods: event.ModCtrl},
	tea.KeyShiftUp:       {code: event.KeyUp, mods: event.ModShift},
	tea.KeyShiftDown:     {code: event.KeyDown, mods: event.ModShift},
	tea.KeyShiftLeft:     {code: event.KeyLeft, mods: event.ModShift},
	tea.KeyShiftRight:    {code: event.KeyRight, mods: event.ModShift},
	tea.KeyShiftHome:     {code: event.KeyHome, mods: event.ModShift},
	tea.KeyShiftEnd:      {code: event.KeyEnd, mods: event.ModShift},
	tea.KeyCtrlShiftUp:   {code: event.KeyUp, mods: event.ModCtrl | event.ModShift},
	tea.KeyCtrlShiftDown: {code: event.KeyDown, mods: event.ModCtrl | event.ModShift},
}

var toTea = func() map[press]tea.KeyType {
	m := make(map[press]tea.KeyType, len(fromTea))
	for t, p := range fromTea {
		m[p] = t
	}
	return m
}()

// FromMsg 轉換按鍵消息。粘貼或多字符輸入變為 Paste 事件，
// 沒有對應事件的按鍵返回 false。
func FromMsg(msg tea.KeyMsg) (event.Event, bool) {
	k := tea.Key(msg)
	var alt event.Modifier
	if k.Alt {
		alt = event.ModAlt
	}

	switch {
	case k.Type == tea.KeyRunes:
		if len(k.Runes) == 0 {
			return nil, false
		}
		if k.Paste || len(k.Runes) > 1 {
			return event.Paste{Text: string(k.Runes)}, true
		}
		return event.KeyPress{Code: event.KeyRune, Rune: k.Runes[0], Modifiers: alt}, true
	case k.Type == tea.KeySpace:
		return event.KeyPress{Code: event.KeyRune, Rune: ' ', Modifiers: alt}, true
	}

	if p, ok := fromTea[k.Type]; ok {
		return event.KeyPress{Code: p.code, Modifiers: p.mods | alt}, true
	}
	if k.Type >= tea.KeyCtrlA && k.Type <= tea.KeyCtrlZ {
		r := 'a' + rune(k.Type-tea.KeyCtrlA)
		return event.KeyPress{Code: event.KeyRune, Rune: r, Modifiers: event.ModCtrl | alt}, true
	}
	return nil, false
}

// ToMsg FromMsg 對按鍵的逆轉換，
// 用於驅動只理解按鍵消息的 bubbles 模型。
func ToMsg(k event.KeyPress) (tea.KeyMsg, bool) {
	alt := k.Modifiers.Has(event.ModAlt)
	mods := k.Modifiers &^ event.ModAlt

	if k.Code == event.KeyRune {
		switch {
		case mods == event.ModCtrl:
			r := unicode.ToLower(k.Rune)
			if r < 'a' || r > 'z' {
				return tea.KeyMsg{}, false
			}
			return tea.KeyMsg{Type: tea.KeyCtrlA + tea.KeyType(r-'a'), Alt: alt}, true
		case mods == event.ModNone || mods == event.ModShift:
			return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{k.Rune}, Alt: alt}, true
		default:
			return tea.KeyMsg{}, false
		}
	}

	t, ok := toTea[press{code: k.Code, mods: mods}]
	if !ok {
		return tea.KeyMsg{}, false
	}
	return tea.KeyMsg{Type: t, Alt: alt}, true
}
