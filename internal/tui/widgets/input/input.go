// Package input 基於 bubbles textinput 的單行文本框
package input

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/Yat-Muk/realm/internal/tui/component"
	"github.com/Yat-Muk/realm/internal/tui/event"
	"github.com/Yat-Muk/realm/internal/tui/props"
	"github.com/Yat-Muk/realm/internal/tui/teakey"
	"github.com/Yat-Muk/realm/internal/tui/widgets"
)

// Input 編輯字符串。Enter 提交，編輯報告 OnChange，
// Reset 消息清空內容。
type Input struct {
	ti textinput.Model
}

// SetValue 通過 Update 替換輸入框內容
type SetValue struct {
	Value string
}

// New 創建內容為 initial 的輸入框
func New(initial string) *Input {
	ti := textinput.New()
	ti.Prompt = ""
	ti.KeyMap.Paste.SetEnabled(false)
	ti.SetValue(initial)
	ti.Focus()
	return &Input{ti: ti}
}

func (in *Input) Render(p props.Props, focused bool) component.Drawable {
	if !p.Visible {
		return component.Empty()
	}

	style := p.Style()
	value := in.ti.Value()
	shown := value
	if typeOf(p) == TypePassword {
		shown = strings.Repeat("*", len([]rune(value)))
	}

	line := component.TextLine(shown, style)
	if value == "" {
		if ph := p.StrOr(props.AttrPlaceholder, ""); ph != "" {
			line = component.TextLine(ph, style.Patch(props.Style{Modifiers: props.Dim | props.Italic}))
		}
	}

	d := component.Drawable{
		Lines: []component.Line{line},
		Style: style,
		Block: widgets.Frame(p, focused),
	}
	if focused {
		pos := in.ti.Position()
		runes := []rune(shown)
		if pos > len(runes) {
			pos = len(runes)
		}
		d.Cursor = &component.Cursor{Col: runewidth.StringWidth(string(runes[:pos]))}
	}
	return d
}

func (in *Input) Handle(p props.Props, ev event.Event) component.Msg {
	if !widgets.Enabled(p) {
		return nil
	}
	in.sync(p)

	switch ev := ev.(type) {
	case event.KeyPress:
		if ev.Code == event.KeyEnter && ev.Modifiers == event.ModNone {
			return widgets.OnSubmit{Value: component.One(in.ti.Value())}
		}
		if ev.Code == event.KeyRune && ev.Modifiers&(event.ModCtrl|event.ModAlt) == 0 {
			if !accepts(p, ev.Rune) {
				return nil
			}
		}
		msg, ok := teakey.ToMsg(ev)
		if !ok {
			return nil
		}
		return in.apply(msg)
	case event.Paste:
		text := strings.Map(func(r rune) rune {
			if r == '\n' || r == '\r' || !accepts(p, r) {
				return -1
			}
			return r
		}, ev.Text)
		if text == "" {
			return nil
		}
		return in.apply(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text), Paste: true})
	}
	return nil
}

// apply 把按鍵消息交給文本模型並報告變更
func (in *Input) apply(msg tea.KeyMsg) component.Msg {
	before := in.ti.Value()
	in.ti, _ = in.ti.Update(msg)
	if after := in.ti.Value(); after != before {
		return widgets.OnChange{Value: component.One(after)}
	}
	return nil
}

func (in *Input) Update(msg component.Msg) component.Msg {
	switch msg := msg.(type) {
	case widgets.Reset:
		return in.set("")
	case SetValue:
		return in.set(msg.Value)
	}
	return nil
}

func (in *Input) set(value string) component.Msg {
	if in.ti.Value() == value {
		return nil
	}
	in.ti.SetValue(value)
	return widgets.OnChange{Value: component.One(value)}
}

func (in *Input) Focusable(p props.Props) bool {
	return widgets.Enabled(p)
}

// Value 返回當前文本
func (in *Input) Value(props.Props) component.Payload {
	return component.One(in.ti.Value())
}

// sync 同步文本模型在編輯時強制執行的 props
func (in *Input) sync(p props.Props) {
	in.ti.CharLimit = p.IntOr(props.AttrInputLen, 0)
	if typeOf(p) == TypePassword {
		in.ti.EchoMode = textinput.EchoPassword
	} else {
		in.ti.EchoMode = textinput.EchoNormal
	}
}

func accepts(p props.Props, r rune) bool {
	if typeOf(p) == TypeNumber {
		return unicode.IsDigit(r)
	}
	return unicode.IsPrint(r)
}
