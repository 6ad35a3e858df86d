// Package progress 水平進度條
package progress

import (
	"fmt"
	"math"
	"strings"

	"github.com/Yat-Muk/realm/internal/pkg/errors"
	"github.com/Yat-Muk/realm/internal/tui/component"
	"github.com/Yat-Muk/realm/internal/tui/event"
	"github.com/Yat-Muk/realm/internal/tui/props"
	"github.com/Yat-Muk/realm/internal/tui/widgets"
)

// Kind 進度條的 props 種類
const Kind props.Kind = "progress"

// DefaultWidth 未設置寬度時進度條的單元格數
const DefaultWidth = 20

const (
	filled = "█"
	empty  = "░"
)

// Builder 構建進度條 props
type Builder struct {
	b *props.Builder
}

// NewProps 開始構建進度條 props
func NewProps() *Builder {
	return &Builder{b: props.NewBuilder(Kind,
		props.AttrProgress,
		props.AttrLabel,
		props.AttrTitle,
		props.AttrWidth,
	)}
}

// Progress 設置完成比例，範圍 [0, 1]
func (b *Builder) Progress(f float64) *Builder {
	b.b.Set(props.AttrProgress, f)
	return b
}

func (b *Builder) Label(s string) *Builder {
	b.b.Set(props.AttrLabel, s)
	return b
}

func (b *Builder) Title(s string) *Builder {
	b.b.Set(props.AttrTitle, s)
	return b
}

func (b *Builder) Width(n int) *Builder {
	b.b.Set(props.AttrWidth, n)
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
	if f, ok := p.Float(props.AttrProgress); ok && (math.IsNaN(f) || f < 0 || f > 1) {
		return errors.Property(string(Kind), string(props.AttrProgress), fmt.Sprintf("must be within [0, 1], got %v", f))
	}
	if w, ok := p.Int(props.AttrWidth); ok && w < 1 {
		return errors.Property(string(Kind), string(props.AttrWidth), "must be positive")
	}
	return nil
}

// Bar 只繪製 props，不保存狀態
type Bar struct{}

// New 創建進度條
func New() *Bar {
	return &Bar{}
}

func (b *Bar) Render(p props.Props, focused bool) component.Drawable {
	if !p.Visible {
		return component.Empty()
	}
	f, _ := p.Float(props.AttrProgress)
	if math.IsNaN(f) || f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	width := p.IntOr(props.AttrWidth, DefaultWidth)
	if width < 1 {
		width = DefaultWidth
	}
	done := int(math.Round(f * float64(width)))

	style := p.Style()
	line := component.Line{
		{Text: strings.Repeat(filled, done), Style: style},
		{Text: strings.Repeat(empty, width-done), Style: style.Patch(props.Style{Modifiers: props.Dim})},
		{Text: fmt.Sprintf(" %3.0f%%", f*100), Style: style},
	}
	if label := p.StrOr(props.AttrLabel, ""); label != "" {
		line = append(line, component.Span{Text: " " + label, Style: style})
	}

	return component.Drawable{
		Lines: []component.Line{line},
		Style: style,
		Block: widgets.Frame(p, focused),
	}
}

func (b *Bar) Handle(props.Props, event.Event) component.Msg {
	return nil
}

func (b *Bar) Update(component.Msg) component.Msg {
	return nil
}

func (b *Bar) Focusable(props.Props) bool {
	return false
}
