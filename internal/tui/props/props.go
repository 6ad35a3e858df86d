// Package props 保存組件每次渲染使用的配置。
//
// Props 通過種類專用的 builder 構建一次，構建時校驗，
// 跨越 View 邊界時複製，因此組件不會觀察到
// 其渲染所用 props 的修改。
package props

// Kind 組件族名稱（label、input、list 等）
type Kind string

// Attr 種類相關屬性的鍵
type Attr string

// 已知屬性
const (
	AttrText            Attr = "text"
	AttrTexts           Attr = "texts"
	AttrTitle           Attr = "title"
	AttrAlignment       Attr = "text-alignment"
	AttrOptions         Attr = "options"
	AttrValue           Attr = "value"
	AttrValues          Attr = "values"
	AttrProgress        Attr = "progress"
	AttrLabel           Attr = "label"
	AttrInputType       Attr = "input-type"
	AttrInputLen        Attr = "input-len"
	AttrPlaceholder     Attr = "placeholder"
	AttrRows            Attr = "rows"
	AttrScrollable      Attr = "scrollable"
	AttrScrollStep      Attr = "max-step"
	AttrHighlightSymbol Attr = "highlighted-txt"
	AttrHighlightColor  Attr = "highlighted-color"
	AttrFrames          Attr = "frames"
	AttrDisabled        Attr = "disabled"
	AttrWidth           Attr = "width"
	AttrHeight          Attr = "height"
)

// Props 一次渲染交給組件的不可變配置
type Props struct {
	Kind       Kind
	Visible    bool
	Foreground Color
	Background Color
	Modifiers  Modifier
	Borders    Borders

	attrs map[Attr]interface{}
}

// Default 返回可見、無屬性的 props
func Default() Props {
	return Props{Visible: true}
}

// Style 返回組件級文字樣式
func (p Props) Style() Style {
	return Style{Foreground: p.Foreground, Background: p.Background, Modifiers: p.Modifiers}
}

// Has 報告 attr 是否已設置
func (p Props) Has(attr Attr) bool {
	_, ok := p.attrs[attr]
	return ok
}

// Clone 返回 p 的深拷貝
func (p Props) Clone() Props {
	out := p
	if p.attrs == nil {
		return out
	}
	out.attrs = make(map[Attr]interface{}, len(p.attrs))
	for k, v := range p.attrs {
		out.attrs[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v interface{}) interface{} {
	switch t := v.(type) {
	case []string:
		return append([]string(nil), t...)
	case []int:
		return append([]int(nil), t...)
	case []TextSpan:
		return append([]TextSpan(nil), t...)
	case Table:
		return t.clone()
	default:
		return v
	}
}

// 類型化訪問器。屬性缺失或類型不符時返回零值與 false，
// 組件據此退回默認值。

func (p Props) Str(attr Attr) (string, bool) {
	v, ok := p.attrs[attr].(string)
	return v, ok
}

func (p Props) Int(attr Attr) (int, bool) {
	v, ok := p.attrs[attr].(int)
	return v, ok
}

func (p Props) Float(attr Attr) (float64, bool) {
	v, ok := p.attrs[attr].(float64)
	return v, ok
}

func (p Props) Bool(attr Attr) (bool, bool) {
	v, ok := p.attrs[attr].(bool)
	return v, ok
}

func (p Props) Strings(attr Attr) ([]string, bool) {
	v, ok := p.attrs[attr].([]string)
	if !ok {
		return nil, false
	}
	return append([]string(nil), v...), true
}

func (p Props) Ints(attr Attr) ([]int, bool) {
	v, ok := p.attrs[attr].([]int)
	if !ok {
		return nil, false
	}
	return append([]int(nil), v...), true
}

func (p Props) Spans(attr Attr) ([]TextSpan, bool) {
	v, ok := p.attrs[attr].([]TextSpan)
	if !ok {
		return nil, false
	}
	return append([]TextSpan(nil), v...), true
}

func (p Props) Rows(attr Attr) (Table, bool) {
	v, ok := p.attrs[attr].(Table)
	if !ok {
		return nil, false
	}
	return v.clone(), true
}

func (p Props) Alignment(attr Attr) (Alignment, bool) {
	v, ok := p.attrs[attr].(Alignment)
	return v, ok
}

func (p Props) Color(attr Attr) (Color, bool) {
	v, ok := p.attrs[attr].(Color)
	return v, ok
}

// StrOr 返回屬性值或 def
func (p Props) StrOr(attr Attr, def string) string {
	if v, ok := p.Str(attr); ok {
		return v
	}
	return def
}

// IntOr 返回屬性值或 def
func (p Props) IntOr(attr Attr, def int) int {
	if v, ok := p.Int(attr); ok {
		return v
	}
	return def
}

// BoolOr 返回屬性值或 def
func (p Props) BoolOr(attr Attr, def bool) bool {
	if v, ok := p.Bool(attr); ok {
		return v
	}
	return def
}
