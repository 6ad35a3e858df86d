// Package radio 水平排列的互斥選項組
package radio

import (
	"github.com/Yat-Muk/realm/internal/pkg/errors"
	"github.com/Yat-Muk/realm/internal/tui/component"
	"github.com/Yat-Muk/realm/internal/tui/event"
	"github.com/Yat-Muk/realm/internal/tui/props"
	"github.com/Yat-Muk/realm/internal/tui/widgets"
)

// Kind 單選組的 props 種類
const Kind props.Kind = "radio"

const separator = "  "

// Builder 構建單選組 props
type Builder struct {
	b *props.Builder
}

// NewProps 開始構建單選組 props
func NewProps() *Builder {
	return &Builder{b: props.NewBuilder(Kind,
		props.AttrOptions,
		props.AttrTitle,
		props.AttrHighlightColor,
		props.AttrDisabled,
	)}
}

func (b *Builder) Options(opts ...string) *Builder {
	b.b.Set(props.AttrOptions, opts)
	return b
}

func (b *Builder) Title(s string) *Builder {
	b.b.Set(props.AttrTitle, s)
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

// Build 校驗 props
func (b *Builder) Build() (props.Props, error) {
	return b.b.Build(validate)
}

func validate(p props.Props) error {
	opts, _ := p.Strings(props.AttrOptions)
	if len(opts) == 0 {
		return errors.Property(string(Kind), string(props.AttrOptions), "at least one option is required")
	}
	seen := make(map[string]struct{}, len(opts))
	for _, o := range opts {
		if _, dup := seen[o]; dup {
			return errors.Property(string(Kind), string(props.AttrOptions), "duplicate option "+o)
		}
		seen[o] = struct{}{}
	}
	return nil
}

// Radio 保存選中選項的索引
type Radio struct {
	choice  int
	initial int
}

// New 創建選中 choice 的單選組
func New(choice int) *Radio {
	if choice < 0 {
		choice = 0
	}
	return &Radio{choice: choice, initial: choice}
}

func (r *Radio) Render(p props.Props, focused bool) component.Drawable {
	if !p.Visible {
		return component.Empty()
	}
	opts, _ := p.Strings(props.AttrOptions)
	choice := widgets.Clamp(r.choice, len(opts))
	hl, _ := p.Color(props.AttrHighlightColor)

	line := make(component.Line, 0, 2*len(opts))
	for i, o := range opts {
		if i > 0 {
			line = append(line, component.Span{Text: separator, Style: p.Style()})
		}
		style := p.Style()
		mark := "( ) "
		if i == choice {
			mark = "(•) "
			style = style.Patch(props.Style{Foreground: hl, Modifiers: props.Bold})
			if focused {
				style.Modifiers |= props.Reversed
			}
		}
		line = append(line, component.Span{Text: mark + o, Style: style})
	}

	return component.Drawable{
		Lines: []component.Line{line},
		Style: p.Style(),
		Block: widgets.Frame(p, focused),
	}
}

func (r *Radio) Handle(p props.Props, ev event.Event) component.Msg {
	k, ok := ev.(event.KeyPress)
	if !ok || !widgets.Enabled(p) {
		return nil
	}
	opts, _ := p.Strings(props.AttrOptions)
	cur := widgets.Clamp(r.choice, len(opts))

	switch k.Code {
	case event.KeyLeft:
		return r.move(cur, cur-1, len(opts))
	case event.KeyRight:
		return r.move(cur, cur+1, len(opts))
	case event.KeyEnter:
		return widgets.OnSubmit{Value: component.One(cur)}
	}
	return nil
}

func (r *Radio) move(cur, next, n int) component.Msg {
	next = widgets.Clamp(next, n)
	r.choice = next
	if next == cur {
		return nil
	}
	return widgets.OnChange{Value: component.One(next)}
}

func (r *Radio) Update(msg component.Msg) component.Msg {
	if _, ok := msg.(widgets.Reset); ok && r.choice != r.initial {
		r.choice = r.initial
		return widgets.OnChange{Value: component.One(r.choice)}
	}
	return nil
}

func (r *Radio) Focusable(p props.Props) bool {
	return widgets.Enabled(p)
}

// Value 返回按 p 的選項截斷的選中索引
func (r *Radio) Value(p props.Props) component.Payload {
	opts, _ := p.Strings(props.AttrOptions)
	return component.One(widgets.Clamp(r.choice, len(opts)))
}
