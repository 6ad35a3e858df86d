package component

import (
	"strings"

	"github.com/Yat-Muk/realm/internal/tui/props"
)

// Span 行內一段帶樣式的文本
type Span struct {
	Text  string
	Style props.Style
}

// Line 由 span 組成的一行
type Line []Span

// Text 拼接各 span 的內容
func (l Line) Text() string {
	var b strings.Builder
	for _, s := range l {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Block Drawable 外圍的可選邊框
type Block struct {
	Borders props.Borders
	Title   string
	// Active 選擇聚焦時的邊框外觀
	Active bool
}

// Cursor 相對 Drawable 內容的單元格位置
type Cursor struct {
	Col int
	Row int
}

// Drawable Component.Render 的輸出，與佈局無關。
// 後端把它放入外部佈局函數選定的矩形。
type Drawable struct {
	Lines     []Line
	Alignment props.Alignment
	Style     props.Style
	Block     *Block
	Cursor    *Cursor
	Hidden    bool
}

// Empty 隱藏組件的 Drawable
func Empty() Drawable {
	return Drawable{Hidden: true}
}

// TextLine 構建只有一個 span 的行
func TextLine(text string, style props.Style) Line {
	return Line{{Text: text, Style: style}}
}

// Height 以行計的自然高度，包含邊框
func (d Drawable) Height() int {
	if d.Hidden {
		return 0
	}
	h := len(d.Lines)
	if d.Block != nil {
		if d.Block.Borders.Sides&props.Top != 0 {
			h++
		}
		if d.Block.Borders.Sides&props.Bottom != 0 {
			h++
		}
	}
	return h
}

// PlainText 以無樣式文本拼接內容，每行一行
func (d Drawable) PlainText() string {
	rows := make([]string, 0, len(d.Lines))
	for _, l := range d.Lines {
		rows = append(rows, l.Text())
	}
	return strings.Join(rows, "\n")
}
