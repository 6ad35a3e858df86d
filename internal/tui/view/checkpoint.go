package view

import (
	"github.com/Yat-Muk/realm/internal/tui/component"
	"go.uber.org/zap"
)

// Checkpoint View 記錄的副本：已掛載組件、props、各順序與焦點。
// 不包含組件自身狀態。
type Checkpoint struct {
	entries    map[component.ID]entry
	order      []component.ID
	focusOrder []component.ID
	focus      component.ID
	hasFocus   bool
	dirtyAll   bool
	dirty      []component.ID
}

// Checkpoint 捕獲當前記錄
func (v *View) Checkpoint() Checkpoint {
	entries := make(map[component.ID]entry, len(v.entries))
	for id, e := range v.entries {
		entries[id] = entry{comp: e.comp, props: e.props.Clone()}
	}
	return Checkpoint{
		entries:    entries,
		order:      append([]component.ID(nil), v.order...),
		focusOrder: append([]component.ID(nil), v.focusOrder...),
		focus:      v.focus,
		hasFocus:   v.hasFocus,
		dirtyAll:   v.dirtyAll,
		dirty:      append([]component.ID(nil), v.dirty...),
	}
}

// Rollback 恢復 cp 捕獲的記錄。之後卸載的組件
// 以卸載時的狀態重新出現。
func (v *View) Rollback(cp Checkpoint) {
	v.entries = make(map[component.ID]*entry, len(cp.entries))
	for id, e := range cp.entries {
		v.entries[id] = &entry{comp: e.comp, props: e.props.Clone()}
	}
	v.order = append([]component.ID(nil), cp.order...)
	v.focusOrder = append([]component.ID(nil), cp.focusOrder...)
	v.focus, v.hasFocus = cp.focus, cp.hasFocus
	v.dirtyAll = cp.dirtyAll
	v.dirty = append([]component.ID(nil), cp.dirty...)

	v.log.Debug("view rolled back", zap.Int("mounted", len(v.entries)))
}
