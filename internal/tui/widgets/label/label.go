// Package label 單行靜態文本
package label

import (
	"strings"

	"github.com/Yat-Muk/realm/internal/pkg/errors"
	"github.com/Yat-Muk/realm/internal/tui/component"
	"github.com/Yat-Muk/realm/internal/tui/event"
	"github.com/Yat-Muk/realm/internal/tui/props"
	"github.com/Yat-Muk/realm/internal/tui/widgets"
)

// Kind 標籤的 props 種類
const Kind props.Kind = "label"

// Builder 構建標籤 props
type Builder struct {
	b *props.Builder
}

// NewProps 開始構建標籤 props
func NewProps() *Builder {
	return &Builder{b: props.NewBuilder(Kind, props.AttrText, props.AttrAlignment, props.AttrTitle)}
}

// Text 設置標籤文本
func (b *Builder) Text(s string) *Builder {
	b.b.Set(props.AttrText, s)
	return b
}

// Alignment 設置文本對齊
func (b *Builder) Alignment(a props.Alignment) *Builder {
	b.b.Set(props.AttrAlignment, a)
	return b
}

// Title 設置外框標題
func (b *Builder) Title(s string) *Builder {
	b.b.Set(props.AttrTitle, s)
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

func (b *Builder) Modifiers(m props.Modifier) *Builder {
	b.b.Modifiers(m)
	return b
}

func (b *Builder) Visible(v bool) *Builder {
	b.b.Visible(v)
	return b
}

// Build 校驗 props
func (b *Builder) Build() (props.Props, error) {
	return b.b.Build(validate)
}

func validate(p props.Props) error {
	if strings.ContainsAny(p.StrOr(props.AttrText, ""), "\r\n") {
		return errors.Property(string(Kind), string(props.AttrText), "must be a single line")
	}
	return nil
}

// Label 渲染文本並忽略輸入
type Label struct{}

// New 創建標籤
func New() *Label {
	return &Label{}
}

func (l *Label) Render(p props.Props, focused bool) component.Drawable {
	if !p.Visible {
		return component.Empty()
	}
	align, _ := p.Alignment(props.AttrAlignment)
	return component.Drawable{
		Lines:     []component.Line{component.TextLine(p.StrOr(props.AttrText, ""), p.Style())},
		Alignment: align,
		Style:     p.Style(),
		Block:     widgets.Frame(p, focused),
	}
}

func (l *Label) Handle(props.Props, event.Event) component.Msg {
	return nil
}

func (l *Label) Update(component.Msg) component.Msg {
	return nil
}

func (l *Label) Focusable(props.Props) bool {
	return false
}
