// Package spinner 由 tick 事件推進的活動指示器，
// 幀集合取自 bubbles spinner 預設。
package spinner

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/bubbles/spinner"

	"github.com/Yat-Muk/realm/internal/pkg/errors"
	"github.com/Yat-Muk/realm/internal/tui/component"
	"github.com/Yat-Muk/realm/internal/tui/event"
	"github.com/Yat-Muk/realm/internal/tui/props"
	"github.com/Yat-Muk/realm/internal/tui/widgets"
)

// Kind 旋轉指示器的 props 種類
const Kind props.Kind = "spinner"

var presets = map[string]spinner.Spinner{
	"line":      spinner.Line,
	"dot":       spinner.Dot,
	"minidot":   spinner.MiniDot,
	"jump":      spinner.Jump,
	"pulse":     spinner.Pulse,
	"points":    spinner.Points,
	"globe":     spinner.Globe,
	"moon":      spinner.Moon,
	"monkey":    spinner.Monkey,
	"meter":     spinner.Meter,
	"hamburger": spinner.Hamburger,
	"ellipsis":  spinner.Ellipsis,
}

// Presets 列出預設名稱
func Presets() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Builder 構建旋轉指示器 props
type Builder struct {
	b *props.Builder
}

// NewProps 以 "dot" 幀開始構建 props
func NewProps() *Builder {
	b := &Builder{b: props.NewBuilder(Kind, props.AttrFrames, props.AttrText, props.AttrTitle)}
	return b.Frames(spinner.Dot.Frames...)
}

func (b *Builder) Frames(frames ...string) *Builder {
	b.b.Set(props.AttrFrames, frames)
	return b
}

// Preset 選擇命名的幀集合
func (b *Builder) Preset(name string) *Builder {
	s, ok := presets[name]
	if !ok {
		b.b.Fail(props.AttrFrames, fmt.Sprintf("unknown preset %q", name))
		return b
	}
	return b.Frames(s.Frames...)
}

func (b *Builder) Text(s string) *Builder {
	b.b.Set(props.AttrText, s)
	return b
}

func (b *Builder) Title(s string) *Builder {
	b.b.Set(props.AttrTitle, s)
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
	frames, _ := p.Strings(props.AttrFrames)
	if len(frames) == 0 {
		return errors.Property(string(Kind), string(props.AttrFrames), "at least one frame is required")
	}
	return nil
}

// Spinner 計數 tick
type Spinner struct {
	frame int
}

// New 創建停在第一幀的旋轉指示器
func New() *Spinner {
	return &Spinner{}
}

func (s *Spinner) Render(p props.Props, focused bool) component.Drawable {
	if !p.Visible {
		return component.Empty()
	}
	frames, _ := p.Strings(props.AttrFrames)
	glyph := ""
	if len(frames) > 0 {
		glyph = frames[s.frame%len(frames)]
	}
	line := component.Line{{Text: glyph, Style: p.Style()}}
	if text := p.StrOr(props.AttrText, ""); text != "" {
		line = append(line, component.Span{Text: " " + text, Style: p.Style()})
	}
	return component.Drawable{
		Lines: []component.Line{line},
		Style: p.Style(),
		Block: widgets.Frame(p, focused),
	}
}

func (s *Spinner) Handle(p props.Props, ev event.Event) component.Msg {
	if _, ok := ev.(event.Tick); ok && p.Visible {
		s.frame++
	}
	return nil
}

func (s *Spinner) Update(msg component.Msg) component.Msg {
	if _, ok := msg.(widgets.Reset); ok {
		s.frame = 0
	}
	return nil
}

func (s *Spinner) Focusable(props.Props) bool {
	return false
}

// Value 返回收到的 tick 數
func (s *Spinner) Value(props.Props) component.Payload {
	return component.One(s.frame)
}
