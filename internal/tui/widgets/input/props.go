package input

import (
	"fmt"
	"strings"

	"github.com/Yat-Muk/realm/internal/pkg/errors"
	"github.com/Yat-Muk/realm/internal/tui/props"
)

// Kind 輸入框的 props 種類
const Kind props.Kind = "input"

// Type 限制輸入框接受的內容與回顯方式
type Type string

const (
	TypeText     Type = "text"
	TypeNumber   Type = "number"
	TypePassword Type = "password"
)

func typeOf(p props.Props) Type {
	if t, ok := p.Str(props.AttrInputType); ok {
		return Type(t)
	}
	return TypeText
}

// Builder 構建輸入框 props
type Builder struct {
	b *props.Builder
}

// NewProps 開始構建輸入框 props
func NewProps() *Builder {
	return &Builder{b: props.NewBuilder(Kind,
		props.AttrInputType,
		props.AttrInputLen,
		props.AttrPlaceholder,
		props.AttrTitle,
		props.AttrDisabled,
	)}
}

func (b *Builder) Type(t Type) *Builder {
	b.b.Set(props.AttrInputType, string(t))
	return b
}

// MaxLen 限制字符數，零表示不限
func (b *Builder) MaxLen(n int) *Builder {
	b.b.Set(props.AttrInputLen, n)
	return b
}

func (b *Builder) Placeholder(s string) *Builder {
	b.b.Set(props.AttrPlaceholder, s)
	return b
}

func (b *Builder) Title(s string) *Builder {
	b.b.Set(props.AttrTitle, s)
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
	switch t := typeOf(p); t {
	case TypeText, TypeNumber, TypePassword:
	default:
		return errors.Property(string(Kind), string(props.AttrInputType), fmt.Sprintf("unknown type %q", t))
	}
	if n := p.IntOr(props.AttrInputLen, 0); n < 0 {
		return errors.Property(string(Kind), string(props.AttrInputLen), "must not be negative")
	}
	if strings.ContainsAny(p.StrOr(props.AttrPlaceholder, ""), "\r\n") {
		return errors.Property(string(Kind), string(props.AttrPlaceholder), "must be a single line")
	}
	return nil
}
