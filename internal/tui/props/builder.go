package props

import (
	"fmt"

	"github.com/Yat-Muk/realm/internal/pkg/errors"
)

// Validator 檢查某一組件種類的完整 props
type Validator func(p Props) error

// Builder 為某一組件種類累積 props。setter 本身不會失敗：
// 記住第一個被拒絕的值，由 Build 報告。
type Builder struct {
	kind    Kind
	allowed map[Attr]bool
	p       Props
	err     error
}

// NewBuilder 為 kind 創建可見的空 props，只允許設置列出的屬性
func NewBuilder(kind Kind, allowed ...Attr) *Builder {
	b := &Builder{
		kind:    kind,
		allowed: make(map[Attr]bool, len(allowed)),
		p:       Default(),
	}
	b.p.Kind = kind
	for _, a := range allowed {
		b.allowed[a] = true
	}
	return b
}

// From 重新打開已有 props 以便編輯
func From(p Props, allowed ...Attr) *Builder {
	b := NewBuilder(p.Kind, allowed...)
	b.p = p.Clone()
	return b
}

// Kind 返回正在構建的組件種類
func (b *Builder) Kind() Kind {
	return b.kind
}

// Fail 記錄校驗失敗，已有記錄時忽略
func (b *Builder) Fail(attr Attr, reason string) {
	if b.err == nil {
		b.err = errors.Property(string(b.kind), string(attr), reason)
	}
}

// Visible 切換可見性
func (b *Builder) Visible(v bool) {
	b.p.Visible = v
}

// Foreground 設置文字顏色
func (b *Builder) Foreground(c Color) {
	if !c.Valid() {
		b.Fail("foreground", fmt.Sprintf("invalid colour %q", c))
		return
	}
	b.p.Foreground = c
}

// Background 設置填充顏色
func (b *Builder) Background(c Color) {
	if !c.Valid() {
		b.Fail("background", fmt.Sprintf("invalid colour %q", c))
		return
	}
	b.p.Background = c
}

// Modifiers 追加文字修飾
func (b *Builder) Modifiers(m Modifier) {
	b.p.Modifiers |= m
}

// Borders 設置外圍邊框
func (b *Builder) Borders(sides Sides, typ BorderType, c Color) {
	if !c.Valid() {
		b.Fail("borders", fmt.Sprintf("invalid colour %q", c))
		return
	}
	if typ < BorderPlain || typ > BorderThick {
		b.Fail("borders", fmt.Sprintf("unknown border type %d", typ))
		return
	}
	b.p.Borders = Borders{Sides: sides, Type: typ, Color: c}
}

// Set 保存種類相關的屬性
func (b *Builder) Set(attr Attr, v interface{}) {
	if !b.allowed[attr] {
		b.Fail(attr, "attribute not supported")
		return
	}
	if c, ok := v.(Color); ok && !c.Valid() {
		b.Fail(attr, fmt.Sprintf("invalid colour %q", c))
		return
	}
	if a, ok := v.(Alignment); ok && !a.Valid() {
		b.Fail(attr, fmt.Sprintf("unknown alignment %d", a))
		return
	}
	if b.p.attrs == nil {
		b.p.attrs = make(map[Attr]interface{})
	}
	b.p.attrs[attr] = cloneValue(v)
}

// Build 校驗並返回 props 的副本
func (b *Builder) Build(validators ...Validator) (Props, error) {
	if b.err != nil {
		return Props{}, b.err
	}
	for attr := range b.p.attrs {
		if !b.allowed[attr] {
			return Props{}, errors.Property(string(b.kind), string(attr), "attribute not supported")
		}
	}
	for _, validate := range validators {
		if validate == nil {
			continue
		}
		if err := validate(b.p); err != nil {
			return Props{}, err
		}
	}
	return b.p.Clone(), nil
}
