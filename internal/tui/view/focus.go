package view

import (
	"github.com/Yat-Muk/realm/internal/pkg/errors"
	"github.com/Yat-Muk/realm/internal/tui/component"
	"go.uber.org/zap"
)

// Focused 返回焦點組件（如有）
func (v *View) Focused() (component.ID, bool) {
	return v.focus, v.hasFocus
}

// IsFocused 報告 id 是否持有焦點
func (v *View) IsFocused(id component.ID) bool {
	return v.hasFocus && v.focus == id
}

// SetFocus 把焦點移到 id。未知或不可聚焦的目標被拒絕，
// 焦點保持不變。
func (v *View) SetFocus(id component.ID) error {
	e, ok := v.entries[id]
	if !ok {
		return errors.UnknownID(string(id))
	}
	if !e.comp.Focusable(e.props) {
		return errors.NotFocusable(string(id))
	}
	v.moveFocus(id, true)
	return nil
}

// Blur 清空焦點
func (v *View) Blur() {
	v.moveFocus("", false)
}

// FocusNext 沿焦點順序向前移動焦點，跳過拒絕聚焦的組件。
// 沒有組件接受時焦點清空。
func (v *View) FocusNext() (component.ID, bool) {
	start := 0
	if v.hasFocus {
		start = indexOf(v.focusOrder, v.focus) + 1
	}
	return v.step(start, 1)
}

// FocusPrev 沿焦點順序向後移動焦點
func (v *View) FocusPrev() (component.ID, bool) {
	start := len(v.focusOrder) - 1
	if v.hasFocus {
		start = indexOf(v.focusOrder, v.focus) - 1
	}
	return v.step(start, -1)
}

func (v *View) step(start, dir int) (component.ID, bool) {
	next, ok := v.scan(start, dir)
	v.moveFocus(next, ok)
	return v.focus, v.hasFocus
}

// scan 從 start 起按 dir 方向循環遍歷焦點順序，
// 返回第一個可聚焦組件。
func (v *View) scan(start, dir int) (component.ID, bool) {
	n := len(v.focusOrder)
	if n == 0 {
		return "", false
	}
	i := ((start % n) + n) % n
	for k := 0; k < n; k++ {
		id := v.focusOrder[i]
		if e, ok := v.entries[id]; ok && e.comp.Focusable(e.props) {
			return id, true
		}
		i = ((i+dir)%n + n) % n
	}
	return "", false
}

func (v *View) moveFocus(id component.ID, has bool) {
	if v.hasFocus == has && v.focus == id {
		return
	}
	prev, hadFocus := v.focus, v.hasFocus
	if !has {
		id = ""
	}
	v.focus, v.hasFocus = id, has

	if hadFocus {
		v.markDirty(prev)
	}
	if has {
		v.markDirty(id)
	}
	v.log.Debug("focus changed",
		zap.String("from", string(prev)),
		zap.String("to", string(v.focus)),
	)
}

// FocusOrder 返回遍歷順序，返回值永不為 nil
func (v *View) FocusOrder() []component.ID {
	return copyIDs(v.focusOrder)
}

// SetFocusOrder 替換遍歷順序。ids 必須是已掛載組件的一個排列。
func (v *View) SetFocusOrder(ids []component.ID) error {
	seen := make(map[component.ID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := v.entries[id]; !ok {
			return errors.UnknownID(string(id))
		}
		if _, dup := seen[id]; dup {
			return errors.DuplicateID(string(id))
		}
		seen[id] = struct{}{}
	}
	for _, id := range v.order {
		if _, ok := seen[id]; !ok {
			return errors.UnknownID(string(id))
		}
	}
	v.focusOrder = append([]component.ID(nil), ids...)
	return nil
}
