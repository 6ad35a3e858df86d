package terminal

import (
	"github.com/Yat-Muk/realm/internal/tui/component"
)

// Rect 屏幕上以單元格計的區域
type Rect struct {
	X, Y          int
	Width, Height int
}

// Empty 報告 r 是否沒有面積
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Layout 為每個組件分配區域。order 是 View 的繪製順序，
// 結果中缺失的組件不繪製。
type Layout func(area Rect, order []component.ID, drawables map[component.ID]component.Drawable) map[component.ID]Rect

// Stack 自上而下按自然高度、全寬放置組件，直到區域用完
func Stack(area Rect, order []component.ID, drawables map[component.ID]component.Drawable) map[component.ID]Rect {
	out := make(map[component.ID]Rect, len(order))
	y := area.Y
	bottom := area.Y + area.Height
	for _, id := range order {
		d, ok := drawables[id]
		if !ok || d.Hidden {
			continue
		}
		h := d.Height()
		if h == 0 {
			continue
		}
		if y+h > bottom {
			h = bottom - y
		}
		if h <= 0 {
			break
		}
		out[id] = Rect{X: area.X, Y: y, Width: area.Width, Height: h}
		y += h
	}
	return out
}

// Columns 把區域等分為 n 列，每列內堆疊組件。
// 組件按繪製順序依次分到各列。
func Columns(n int) Layout {
	if n < 1 {
		n = 1
	}
	return func(area Rect, order []component.ID, drawables map[component.ID]component.Drawable) map[component.ID]Rect {
		buckets := make([][]component.ID, n)
		i := 0
		for _, id := range order {
			if d, ok := drawables[id]; !ok || d.Hidden {
				continue
			}
			buckets[i%n] = append(buckets[i%n], id)
			i++
		}

		out := make(map[component.ID]Rect, len(order))
		w := area.Width / n
		for c, ids := range buckets {
			col := Rect{X: area.X + c*w, Y: area.Y, Width: w, Height: area.Height}
			if c == n-1 {
				col.Width = area.Width - c*w
			}
			for id, r := range Stack(col, ids, drawables) {
				out[id] = r
			}
		}
		return out
	}
}
