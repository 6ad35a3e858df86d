package props

import (
	"errors"
	"testing"

	apperrors "github.com/Yat-Muk/realm/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Build(t *testing.T) {
	b := NewBuilder("label", AttrText, AttrAlignment)
	b.Foreground(Red)
	b.Background("#1a1a1a")
	b.Modifiers(Bold | Italic)
	b.Set(AttrText, "hello")
	b.Set(AttrAlignment, AlignCenter)

	p, err := b.Build()
	require.NoError(t, err)

	assert.Equal(t, Kind("label"), p.Kind)
	assert.True(t, p.Visible)
	assert.Equal(t, Red, p.Foreground)
	assert.Equal(t, Color("#1a1a1a"), p.Background)
	assert.True(t, p.Modifiers.Has(Bold|Italic))
	assert.Equal(t, "hello", p.StrOr(AttrText, ""))
	a, ok := p.Alignment(AttrAlignment)
	assert.True(t, ok)
	assert.Equal(t, AlignCenter, a)
}

func TestBuilder_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		build func(b *Builder)
	}{
		{"unsupported attribute", func(b *Builder) { b.Set(AttrRows, NewTable().Build()) }},
		{"bad foreground", func(b *Builder) { b.Foreground("purple") }},
		{"bad background", func(b *Builder) { b.Background("#12") }},
		{"bad border colour", func(b *Builder) { b.Borders(AllSides, BorderRounded, "300") }},
		{"bad border type", func(b *Builder) { b.Borders(AllSides, BorderType(42), Blue) }},
		{"bad alignment", func(b *Builder) { b.Set(AttrAlignment, Alignment(7)) }},
		{"explicit failure", func(b *Builder) { b.Fail(AttrText, "too long") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder("label", AttrText, AttrAlignment)
			tt.build(b)
			_, err := b.Build()
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperrors.ErrProperty))
		})
	}
}

func TestBuilder_Validators(t *testing.T) {
	b := NewBuilder("gauge", AttrProgress)
	b.Set(AttrProgress, 1.5)

	_, err := b.Build(func(p Props) error {
		if v, _ := p.Float(AttrProgress); v > 1 {
			return apperrors.Property("gauge", string(AttrProgress), "out of range")
		}
		return nil
	})
	assert.True(t, errors.Is(err, apperrors.ErrProperty))
}

func TestProps_Immutability(t *testing.T) {
	opts := []string{"a", "b"}
	b := NewBuilder("radio", AttrOptions)
	b.Set(AttrOptions, opts)
	p, err := b.Build()
	require.NoError(t, err)

	// 修改調用方的切片不會影響 props
	opts[0] = "z"
	got, _ := p.Strings(AttrOptions)
	assert.Equal(t, []string{"a", "b"}, got)

	// 修改訪問器結果同樣不會影響
	got[1] = "y"
	again, _ := p.Strings(AttrOptions)
	assert.Equal(t, []string{"a", "b"}, again)

	// 副本彼此獨立
	c := p.Clone()
	b2 := From(c, AttrOptions)
	b2.Set(AttrOptions, []string{"x"})
	_, err = b2.Build()
	require.NoError(t, err)
	orig, _ := p.Strings(AttrOptions)
	assert.Equal(t, []string{"a", "b"}, orig)
}

func TestProps_AccessorsDegrade(t *testing.T) {
	b := NewBuilder("label", AttrText)
	b.Set(AttrText, 42)
	p, err := b.Build()
	require.NoError(t, err)

	_, ok := p.Str(AttrText)
	assert.False(t, ok)
	assert.Equal(t, "fallback", p.StrOr(AttrText, "fallback"))
	assert.Equal(t, 42, p.IntOr(AttrText, 0))
	assert.False(t, p.BoolOr(AttrScrollable, false))
	_, ok = p.Rows(AttrRows)
	assert.False(t, ok)
}

func TestFrom_KeepsKindAndFields(t *testing.T) {
	b := NewBuilder("label", AttrText)
	b.Set(AttrText, "one")
	b.Visible(false)
	p, err := b.Build()
	require.NoError(t, err)

	b2 := From(p, AttrText)
	b2.Set(AttrText, "two")
	p2, err := b2.Build()
	require.NoError(t, err)

	assert.Equal(t, Kind("label"), p2.Kind)
	assert.False(t, p2.Visible)
	assert.Equal(t, "two", p2.StrOr(AttrText, ""))
	assert.Equal(t, "one", p.StrOr(AttrText, ""))
}

func TestTableBuilder(t *testing.T) {
	tbl := NewTable().
		AddCol(Span("0")).AddCol(Span("andreas").Fg(Cyan)).
		AddRow().
		AddCol(Span("1")).AddCol(Span("bohdan").With(Bold)).
		Build()

	require.Len(t, tbl, 2)
	assert.Equal(t, "andreas", tbl[0][1].Content)
	assert.Equal(t, Cyan, tbl[0][1].Style.Foreground)
	assert.True(t, tbl[1][1].Style.Modifiers.Has(Bold))
}

func TestColorValid(t *testing.T) {
	for _, c := range []Color{Reset, Red, "255", "#fff", "#B2FF00"} {
		assert.True(t, c.Valid(), string(c))
	}
	for _, c := range []Color{"256", "-1", "#ggg", "red"} {
		assert.False(t, c.Valid(), string(c))
	}
}

func TestStylePatch(t *testing.T) {
	base := Style{Foreground: White, Background: Black, Modifiers: Bold}
	got := base.Patch(Style{Foreground: Red, Modifiers: Italic})
	assert.Equal(t, Red, got.Foreground)
	assert.Equal(t, Black, got.Background)
	assert.True(t, got.Modifiers.Has(Bold|Italic))
}
