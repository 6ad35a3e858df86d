package style

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Yat-Muk/realm/internal/tui/props"
)

// Color 轉換組件顏色，空值表示終端默認色
func Color(c props.Color) lipgloss.TerminalColor {
	if c == props.Reset {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(string(c))
}

// Text 轉換組件文字樣式
func Text(s props.Style) lipgloss.Style {
	st := lipgloss.NewStyle().
		Foreground(Color(s.Foreground)).
		Background(Color(s.Background))

	m := s.Modifiers
	if m.Has(props.Bold) {
		st = st.Bold(true)
	}
	if m.Has(props.Dim) {
		st = st.Faint(true)
	}
	if m.Has(props.Italic) {
		st = st.Italic(true)
	}
	if m.Has(props.Underlined) {
		st = st.Underline(true)
	}
	if m.Has(props.SlowBlink) || m.Has(props.RapidBlink) {
		st = st.Blink(true)
	}
	if m.Has(props.Reversed) {
		st = st.Reverse(true)
	}
	if m.Has(props.CrossedOut) {
		st = st.Strikethrough(true)
	}
	return st
}

// Border 返回邊框類型對應的字符集
func Border(t props.BorderType) lipgloss.Border {
	switch t {
	case props.BorderRounded:
		return lipgloss.RoundedBorder()
	case props.BorderDouble:
		return lipgloss.DoubleBorder()
	case props.BorderThick:
		return lipgloss.ThickBorder()
	default:
		return lipgloss.NormalBorder()
	}
}

// Align 轉換組件對齊方式
func Align(a props.Alignment) lipgloss.Position {
	switch a {
	case props.AlignCenter:
		return lipgloss.Center
	case props.AlignRight:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}
