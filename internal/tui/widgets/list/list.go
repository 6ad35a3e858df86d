// Package list 可滾動的行表，其中一行高亮
package list

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/mattn/go-runewidth"

	"github.com/Yat-Muk/realm/internal/pkg/errors"
	"github.com/Yat-Muk/realm/internal/tui/component"
	"github.com/Yat-Muk/realm/internal/tui/event"
	"github.com/Yat-Muk/realm/internal/tui/props"
	"github.com/Yat-Muk/realm/internal/tui/widgets"
)

// Kind 列表的 props 種類
const Kind props.Kind = "list"

// DefaultStep 未設置步長時 PageUp/PageDown 移動的行數
const DefaultStep = 8

// Builder 構建列表 props
type Builder struct {
	b *props.Builder
}

// NewProps 開始構建列表 props
func NewProps() *Builder {
	return &Builder{b: props.NewBuilder(Kind,
		props.AttrRows,
		props.AttrTitle,
		props.AttrScrollable,
		props.AttrScrollStep,
		props.AttrHeight,
		props.AttrHighlightSymbol,
		props.AttrHighlightColor,
		props.AttrDisabled,
	)}
}

func (b *Builder) Rows(t props.Table) *Builder {
	b.b.Set(props.AttrRows, t)
	return b
}

func (b *Builder) Title(s string) *Builder {
	b.b.Set(props.AttrTitle, s)
	return b
}

// Scrollable 使列表可聚焦並允許移動高亮
func (b *Builder) Scrollable(v bool) *Builder {
	b.b.Set(props.AttrScrollable, v)
	return b
}

func (b *Builder) Step(n int) *Builder {
	b.b.Set(props.AttrScrollStep, n)
	return b
}

// Height 把列表限制為 n 個可見行，窗口滾動以保持高亮行可見
func (b *Builder) Height(n int) *Builder {
	b.b.Set(props.AttrHeight, n)
	return b
}

func (b *Builder) HighlightedStr(s string) *Builder {
	b.b.Set(props.AttrHighlightSymbol, s)
	return b
}

func (b *Builder) HighlightedColor(c props.Color) *Builder {
	b.b.Set(props.AttrHighlightColor, c)
	return b
}

func (b *Builder) Disabled(v bool) *Builder {
	b.b.Set(props.AttrDisabled, v)
	return b
}

func (b *Builder) Borders(sides props.Sides, typ props.BorderType, c props.Color) *Builder {
	b.b.Borders(sides, typ, c)
	return b
}

func (b *Builder) Foreground(c props.Color) *Builder {
	b.b.Foreground(c)
	return b
}

func (b *Builder) Background(c props.Color) *Builder {
	b.b.Background(c)
	return b
}

// Build 校驗 props
func (b *Builder) Build() (props.Props, error) {
	return b.b.Build(validate)
}

func validate(p props.Props) error {
	if step, ok := p.Int(props.AttrScrollStep); ok && step < 1 {
		return errors.Property(string(Kind), string(props.AttrScrollStep), fmt.Sprintf("must be positive, got %d", step))
	}
	if h, ok := p.Int(props.AttrHeight); ok && h < 1 {
		return errors.Property(string(Kind), string(props.AttrHeight), fmt.Sprintf("must be positive, got %d", h))
	}
	if p.Has(props.AttrHighlightColor) && !p.Has(props.AttrScrollable) {
		return errors.Property(string(Kind), string(props.AttrHighlightColor), "only meaningful on a scrollable list")
	}
	return nil
}

// List 保存高亮行索引。索引按傳入 props 的行數截斷，
// 因此替換行不會重置它。設置高度時 vp 記錄第一個可見行。
type List struct {
	index int
	vp    viewport.Model
}

// New 創建高亮第一行的列表
func New() *List {
	return &List{}
}

func (l *List) Render(p props.Props, focused bool) component.Drawable {
	if !p.Visible {
		return component.Empty()
	}
	rows, _ := p.Rows(props.AttrRows)
	scrollable := p.BoolOr(props.AttrScrollable, false)
	index := widgets.Clamp(l.index, len(rows))
	symbol := p.StrOr(props.AttrHighlightSymbol, "")
	hl, _ := p.Color(props.AttrHighlightColor)

	top := 0
	if h, ok := p.Int(props.AttrHeight); ok && h < len(rows) {
		top = l.window(len(rows), h, index).YOffset
		rows = rows[top : top+h]
	}

	lines := make([]component.Line, 0, len(rows))
	for i, row := range rows {
		selected := scrollable && top+i == index
		line := make(component.Line, 0, len(row)+1)
		if symbol != "" {
			prefix := padding(symbol)
			if selected {
				prefix = symbol
			}
			line = append(line, component.Span{Text: prefix, Style: p.Style()})
		}
		for _, cell := range row {
			style := p.Style().Patch(cell.Style)
			if selected {
				style = style.Patch(props.Style{Foreground: hl})
				if focused {
					style.Modifiers |= props.Reversed
				}
			}
			line = append(line, component.Span{Text: cell.Content, Style: style})
		}
		lines = append(lines, line)
	}

	return component.Drawable{
		Lines: lines,
		Style: p.Style(),
		Block: widgets.Frame(p, focused),
	}
}

// window 返回覆蓋 n 行、高 h 的視口，只移動到剛好顯示 index。
// 偏移只取決於行數，因此內容是 n 個空行。
func (l *List) window(n, h, index int) viewport.Model {
	vp := l.vp
	vp.Height = h
	vp.SetContent(strings.Repeat("\n", max(n-1, 0)))
	vp.SetYOffset(vp.YOffset)
	switch {
	case index < vp.YOffset:
		vp.SetYOffset(index)
	case index >= vp.YOffset+h:
		vp.SetYOffset(index - h + 1)
	}
	return vp
}

func padding(symbol string) string {
	return strings.Repeat(" ", runewidth.StringWidth(symbol))
}

func (l *List) Handle(p props.Props, ev event.Event) component.Msg {
	k, ok := ev.(event.KeyPress)
	if !ok || !widgets.Enabled(p) || !p.BoolOr(props.AttrScrollable, false) {
		return nil
	}
	rows, _ := p.Rows(props.AttrRows)
	n := len(rows)
	step := p.IntOr(props.AttrScrollStep, DefaultStep)
	cur := widgets.Clamp(l.index, n)

	next := cur
	switch k.Code {
	case event.KeyUp:
		next = cur - 1
	case event.KeyDown:
		next = cur + 1
	case event.KeyPageUp:
		next = cur - step
	case event.KeyPageDown:
		next = cur + step
	case event.KeyHome:
		next = 0
	case event.KeyEnd:
		next = n - 1
	case event.KeyEnter:
		l.index = cur
		if n == 0 {
			return nil
		}
		return widgets.OnSubmit{Value: component.One(cur)}
	default:
		return widgets.OnKey{Key: k}
	}

	next = widgets.Clamp(next, n)
	l.index = next
	if h, ok := p.Int(props.AttrHeight); ok {
		l.vp = l.window(n, h, next)
	}
	if next == cur {
		return nil
	}
	return widgets.OnChange{Value: component.One(next)}
}

func (l *List) Update(msg component.Msg) component.Msg {
	if _, ok := msg.(widgets.Reset); ok && l.index != 0 {
		l.index = 0
		l.vp.GotoTop()
		return widgets.OnChange{Value: component.One(0)}
	}
	return nil
}

// Focusable 沒有行的列表無可高亮內容，不可聚焦
func (l *List) Focusable(p props.Props) bool {
	rows, _ := p.Rows(props.AttrRows)
	return widgets.Enabled(p) && p.BoolOr(props.AttrScrollable, false) && len(rows) > 0
}

// Value 返回按 p 的行數截斷的高亮索引，p 沒有行時返回空載荷
func (l *List) Value(p props.Props) component.Payload {
	rows, _ := p.Rows(props.AttrRows)
	if len(rows) == 0 {
		return component.None()
	}
	return component.One(widgets.Clamp(l.index, len(rows)))
}
