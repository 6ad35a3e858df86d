package terminal

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/Yat-Muk/realm/internal/tui/component"
	"github.com/Yat-Muk/realm/internal/tui/props"
	"github.com/Yat-Muk/realm/internal/tui/style"
)

// Painter 把 Drawable 轉換為帶樣式的文本
type Painter struct {
	Theme style.Theme
}

// Paint 把 d 渲染為恰好 height 行、每行 width 個單元格
func (p Painter) Paint(d component.Drawable, width, height int) []string {
	if width <= 0 || height <= 0 {
		return nil
	}
	if d.Hidden {
		return blank(width, height)
	}

	innerW, innerH := width, height
	var sides props.Sides
	if d.Block != nil {
		sides = d.Block.Borders.Sides
	}
	if sides&props.Left != 0 {
		innerW--
	}
	if sides&props.Right != 0 {
		innerW--
	}
	if sides&props.Top != 0 {
		innerH--
	}
	if sides&props.Bottom != 0 {
		innerH--
	}
	if innerW < 0 {
		innerW = 0
	}
	if innerH < 0 {
		innerH = 0
	}

	rows := make([]string, 0, innerH)
	for i, line := range d.Lines {
		if i >= innerH {
			break
		}
		if d.Cursor != nil && d.Cursor.Row == i {
			line = withCursor(line, d.Cursor.Col)
		}
		rows = append(rows, renderLine(truncate(line, innerW)))
	}

	box := lipgloss.NewStyle().
		Width(innerW).
		Height(innerH).
		Align(style.Align(d.Alignment))
	if sides != props.NoSides {
		box = box.
			Border(style.Border(d.Block.Borders.Type),
				sides&props.Top != 0,
				sides&props.Right != 0,
				sides&props.Bottom != 0,
				sides&props.Left != 0,
			).
			BorderForeground(p.borderColor(d.Block))
	}

	out := lipgloss.NewStyle().
		MaxWidth(width).
		MaxHeight(height).
		Render(box.Render(strings.Join(rows, "\n")))
	lines := strings.Split(out, "\n")

	if d.Block != nil && d.Block.Title != "" && sides&props.Top != 0 && len(lines) > 0 {
		lines[0] = p.titledTop(d.Block, width)
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return lines
}

func (p Painter) borderColor(b *component.Block) lipgloss.TerminalColor {
	if b.Active {
		return p.Theme.Focus
	}
	if b.Borders.Color != props.Reset {
		return style.Color(b.Borders.Color)
	}
	return p.Theme.Border
}

// titledTop 繪製上邊框，標題緊接在邊角之後
func (p Painter) titledTop(b *component.Block, width int) string {
	glyphs := style.Border(b.Borders.Type)
	left, right := "", ""
	if b.Borders.Sides&props.Left != 0 {
		left = glyphs.TopLeft
	}
	if b.Borders.Sides&props.Right != 0 {
		right = glyphs.TopRight
	}

	room := width - runewidth.StringWidth(left) - runewidth.StringWidth(right)
	title := runewidth.Truncate(" "+b.Title+" ", room, "…")
	fill := room - runewidth.StringWidth(title)
	if fill < 0 {
		fill = 0
	}

	st := lipgloss.NewStyle().Foreground(p.borderColor(b))
	return st.Render(left) + st.Bold(b.Active).Render(title) + st.Render(strings.Repeat(glyphs.Top, fill)+right)
}

func renderLine(line component.Line) string {
	var b strings.Builder
	for _, s := range line {
		if s.Text == "" {
			continue
		}
		b.WriteString(style.Text(s.Style).Render(s.Text))
	}
	return b.String()
}

// truncate 把 line 截斷到最多 w 個顯示單元格
func truncate(line component.Line, w int) component.Line {
	out := make(component.Line, 0, len(line))
	left := w
	for _, s := range line {
		if left <= 0 {
			break
		}
		sw := runewidth.StringWidth(s.Text)
		if sw > left {
			s.Text = runewidth.Truncate(s.Text, left, "")
			sw = runewidth.StringWidth(s.Text)
		}
		out = append(out, s)
		left -= sw
	}
	return out
}

// withCursor 反色顯示第 col 列的單元格，
// col 超出行尾時追加一個空白單元格。
func withCursor(line component.Line, col int) component.Line {
	out := make(component.Line, 0, len(line)+2)
	x := 0
	placed := false
	for _, s := range line {
		sw := runewidth.StringWidth(s.Text)
		if placed || col >= x+sw {
			out = append(out, s)
			x += sw
			continue
		}
		runes := []rune(s.Text)
		cx := x
		for i, r := range runes {
			if cx >= col {
				if i > 0 {
					out = append(out, component.Span{Text: string(runes[:i]), Style: s.Style})
				}
				out = append(out, component.Span{Text: string(r), Style: reversed(s.Style)})
				if i+1 < len(runes) {
					out = append(out, component.Span{Text: string(runes[i+1:]), Style: s.Style})
				}
				placed = true
				break
			}
			cx += runewidth.RuneWidth(r)
		}
		if !placed {
			out = append(out, s)
		}
		x += sw
	}
	if !placed {
		out = append(out, component.Span{Text: " ", Style: props.Style{Modifiers: props.Reversed}})
	}
	return out
}

func reversed(s props.Style) props.Style {
	s.Modifiers ^= props.Reversed
	return s
}

func blank(width, height int) []string {
	lines := make([]string, height)
	for i := range lines {
		lines[i] = strings.Repeat(" ", width)
	}
	return lines
}

// compose 把繪製好的區域拼接到屏幕行中。區域不應重疊；
// 起點在某行已有內容左側的區域，在該行被跳過。
func compose(area Rect, rects map[component.ID]Rect, painted map[component.ID][]string) []string {
	type seg struct {
		id component.ID
		r  Rect
	}
	byRow := make([][]seg, area.Height)
	for id, r := range rects {
		for y := r.Y; y < r.Y+r.Height; y++ {
			row := y - area.Y
			if row < 0 || row >= area.Height {
				continue
			}
			byRow[row] = append(byRow[row], seg{id: id, r: r})
		}
	}

	rows := make([]string, area.Height)
	for row, segs := range byRow {
		sort.Slice(segs, func(i, j int) bool {
			if segs[i].r.X != segs[j].r.X {
				return segs[i].r.X < segs[j].r.X
			}
			return segs[i].id < segs[j].id
		})
		var b strings.Builder
		cur := area.X
		for _, s := range segs {
			if s.r.X < cur {
				continue
			}
			lines := painted[s.id]
			i := row + area.Y - s.r.Y
			if i >= len(lines) {
				continue
			}
			b.WriteString(strings.Repeat(" ", s.r.X-cur))
			b.WriteString(lines[i])
			cur = s.r.X + s.r.Width
		}
		rows[row] = b.String()
	}
	return rows
}
