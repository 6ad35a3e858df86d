package view

import "github.com/Yat-Muk/realm/internal/tui/component"

// HintKind 表示需要重繪的範圍
type HintKind int

const (
	RedrawNone HintKind = iota
	RedrawPartial
	RedrawFull
)

func (k HintKind) String() string {
	switch k {
	case RedrawNone:
		return "none"
	case RedrawPartial:
		return "partial"
	case RedrawFull:
		return "full"
	default:
		return "unknown"
	}
}

// RedrawHint 一次更新週期的結果：不重繪、部分組件或整個 View
type RedrawHint struct {
	Kind HintKind
	IDs  []component.ID
}

// NoRedraw 不需要重繪
func NoRedraw() RedrawHint {
	return RedrawHint{Kind: RedrawNone}
}

// Full 請求重繪所有已掛載組件
func Full() RedrawHint {
	return RedrawHint{Kind: RedrawFull}
}

// Partial 請求重繪指定組件，空集合等同 NoRedraw
func Partial(ids ...component.ID) RedrawHint {
	if len(ids) == 0 {
		return NoRedraw()
	}
	return RedrawHint{Kind: RedrawPartial, IDs: dedupe(ids)}
}

// IsNone 報告是否無需重繪
func (h RedrawHint) IsNone() bool {
	return h.Kind == RedrawNone
}

// Contains 報告 id 是否在 hint 範圍內
func (h RedrawHint) Contains(id component.ID) bool {
	switch h.Kind {
	case RedrawFull:
		return true
	case RedrawPartial:
		for _, x := range h.IDs {
			if x == id {
				return true
			}
		}
	}
	return false
}

// Merge 合併兩個 hint：full 優先，partial 按順序取並集
func (h RedrawHint) Merge(o RedrawHint) RedrawHint {
	switch {
	case h.Kind == RedrawFull || o.Kind == RedrawFull:
		return Full()
	case h.Kind == RedrawNone:
		return o
	case o.Kind == RedrawNone:
		return h
	default:
		return Partial(append(append([]component.ID(nil), h.IDs...), o.IDs...)...)
	}
}

func dedupe(ids []component.ID) []component.ID {
	seen := make(map[component.ID]struct{}, len(ids))
	out := make([]component.ID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
