// Package view 管理單個畫面上已掛載的組件、焦點順序，
// 以及每一幀的事件分發與渲染編排。
//
// View 不是並發安全的，方法也不可重入。
// 從多個 goroutine 驅動時，必須把所有調用串行化到同一把鎖
// 或單一消費者隊列之後。
package view

import (
	"github.com/Yat-Muk/realm/internal/pkg/errors"
	"github.com/Yat-Muk/realm/internal/tui/component"
	"github.com/Yat-Muk/realm/internal/tui/event"
	"github.com/Yat-Muk/realm/internal/tui/props"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GlobalPolicy 決定全局事件（resize、tick）的接收者
type GlobalPolicy int

const (
	// GlobalBroadcast 把全局事件廣播給所有已掛載組件
	GlobalBroadcast GlobalPolicy = iota
	// GlobalFocusOnly 只把全局事件發給焦點組件
	GlobalFocusOnly
)

func (p GlobalPolicy) String() string {
	if p == GlobalFocusOnly {
		return "focus"
	}
	return "broadcast"
}

// ParseGlobalPolicy 把配置中的寫法映射為策略
func ParseGlobalPolicy(s string) (GlobalPolicy, bool) {
	switch s {
	case "", "broadcast":
		return GlobalBroadcast, true
	case "focus":
		return GlobalFocusOnly, true
	default:
		return GlobalBroadcast, false
	}
}

type entry struct {
	comp  component.Component
	props props.Props
}

// View 已掛載組件的容器
type View struct {
	log    *zap.Logger
	policy GlobalPolicy

	entries    map[component.ID]*entry
	order      []component.ID // 掛載順序，也是繪製順序
	focusOrder []component.ID // 遍歷順序

	focus    component.ID
	hasFocus bool

	dirtyAll bool
	dirty    []component.ID
}

// Option 配置 View
type Option func(*View)

// WithLogger 設置日誌記錄器
func WithLogger(log *zap.Logger) Option {
	return func(v *View) {
		if log != nil {
			v.log = log
		}
	}
}

// WithGlobalPolicy 設置全局事件策略
func WithGlobalPolicy(p GlobalPolicy) Option {
	return func(v *View) {
		v.policy = p
	}
}

// New 創建空的 View
func New(opts ...Option) *View {
	v := &View{
		log:     zap.NewNop(),
		policy:  GlobalBroadcast,
		entries: make(map[component.ID]*entry),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Mount 以 id 掛載組件，並追加到焦點順序末尾；
// 不改變當前焦點。
func (v *View) Mount(id component.ID, c component.Component, p props.Props) error {
	if c == nil {
		return errors.InvalidComponent(string(id), "nil component")
	}
	if _, ok := v.entries[id]; ok {
		return errors.DuplicateID(string(id))
	}

	v.entries[id] = &entry{comp: c, props: p.Clone()}
	v.order = append(v.order, id)
	v.focusOrder = append(v.focusOrder, id)
	v.dirtyAll = true

	v.log.Debug("component mounted", zap.String("id", string(id)), zap.String("kind", string(p.Kind)))
	return nil
}

// MountAnonymous 以新生成的 id 掛載 c
func (v *View) MountAnonymous(c component.Component, p props.Props) (component.ID, error) {
	id := component.ID(uuid.NewString())
	if err := v.Mount(id, c, p); err != nil {
		return "", err
	}
	return id, nil
}

// Umount 卸載組件。若它持有焦點，焦點移到焦點順序中下一個
// 可聚焦的組件（循環），沒有則清空。
func (v *View) Umount(id component.ID) error {
	if _, ok := v.entries[id]; !ok {
		return errors.UnknownID(string(id))
	}

	pos := indexOf(v.focusOrder, id)
	delete(v.entries, id)
	v.order = remove(v.order, id)
	v.focusOrder = remove(v.focusOrder, id)
	v.dirty = remove(v.dirty, id)
	v.dirtyAll = true

	if v.hasFocus && v.focus == id {
		v.hasFocus = false
		v.focus = ""
		if next, ok := v.scan(pos, 1); ok {
			v.focus, v.hasFocus = next, true
		}
		v.log.Debug("focus repaired after umount",
			zap.String("removed", string(id)),
			zap.String("focus", string(v.focus)),
		)
	}

	v.log.Debug("component unmounted", zap.String("id", string(id)))
	return nil
}

// UpdateProps 替換下次渲染使用的 props，不觸碰組件狀態。
// 若焦點組件在新 props 下不再可聚焦，焦點按 Umount 的修復方式
// 移到下一個可聚焦組件。
func (v *View) UpdateProps(id component.ID, p props.Props) error {
	e, ok := v.entries[id]
	if !ok {
		return errors.UnknownID(string(id))
	}
	e.props = p.Clone()
	v.markDirty(id)

	if v.IsFocused(id) && !e.comp.Focusable(e.props) {
		next, ok := v.scan(indexOf(v.focusOrder, id)+1, 1)
		v.moveFocus(next, ok)
		v.log.Debug("focus repaired after props update",
			zap.String("id", string(id)),
			zap.String("focus", string(v.focus)),
		)
	}
	return nil
}

// Props 返回 id 對應 props 的副本
func (v *View) Props(id component.ID) (props.Props, error) {
	e, ok := v.entries[id]
	if !ok {
		return props.Props{}, errors.UnknownID(string(id))
	}
	return e.props.Clone(), nil
}

// Value 返回組件報告的狀態快照；組件不提供時返回空載荷。
func (v *View) Value(id component.ID) (component.Payload, error) {
	e, ok := v.entries[id]
	if !ok {
		return component.None(), errors.UnknownID(string(id))
	}
	if valuer, ok := e.comp.(component.Valuer); ok {
		return valuer.Value(e.props), nil
	}
	return component.None(), nil
}

// Forward 把 msg 交給單個組件的 Update。產生的消息（如有）
// 帶上 id 標記後返回，由調用方入隊。
func (v *View) Forward(id component.ID, msg component.Msg) (component.Msg, error) {
	e, ok := v.entries[id]
	if !ok {
		return nil, errors.UnknownID(string(id))
	}
	out := e.comp.Update(msg)
	v.markDirty(id)
	return component.Tag(id, out), nil
}

// OnEvent 分發輸入事件，按產生順序返回消息。
// 按鍵與粘貼只發給焦點組件；全局事件遵循 GlobalPolicy。
// 沒有焦點時，定向事件被丟棄，View 保持不變。
func (v *View) OnEvent(ev event.Event) []component.Msg {
	if ev == nil {
		return nil
	}

	if event.IsGlobal(ev) && v.policy == GlobalBroadcast {
		var msgs []component.Msg
		ids := append([]component.ID(nil), v.order...)
		for _, id := range ids {
			if msg := v.deliver(id, ev); msg != nil {
				msgs = append(msgs, msg)
			}
		}
		return msgs
	}

	if !v.hasFocus {
		return nil
	}
	if msg := v.deliver(v.focus, ev); msg != nil {
		return []component.Msg{msg}
	}
	return nil
}

func (v *View) deliver(id component.ID, ev event.Event) component.Msg {
	e, ok := v.entries[id]
	if !ok {
		return nil
	}
	msg := e.comp.Handle(e.props, ev)
	v.markDirty(id)
	return component.Tag(id, msg)
}

// Render 按 hint 繪製組件：full 繪製全部，partial 繪製
// 其中仍已掛載的 id，其餘情況不繪製。
func (v *View) Render(hint RedrawHint) map[component.ID]component.Drawable {
	out := make(map[component.ID]component.Drawable)
	switch hint.Kind {
	case RedrawFull:
		for _, id := range v.order {
			out[id] = v.renderOne(id)
		}
	case RedrawPartial:
		for _, id := range hint.IDs {
			if _, ok := v.entries[id]; ok {
				out[id] = v.renderOne(id)
			}
		}
	}
	return out
}

func (v *View) renderOne(id component.ID) component.Drawable {
	e := v.entries[id]
	return e.comp.Render(e.props.Clone(), v.hasFocus && v.focus == id)
}

// TakeHint 返回自上次調用以來的變更並重置追蹤。
// 結構變更（掛載、卸載）產生 full；props 更新、已處理事件、
// 轉發消息與焦點移動只標記相關組件。
func (v *View) TakeHint() RedrawHint {
	var h RedrawHint
	switch {
	case v.dirtyAll:
		h = Full()
	default:
		h = Partial(v.dirty...)
	}
	v.dirtyAll = false
	v.dirty = nil
	return h
}

// Invalidate 強制下一次 TakeHint 為 full
func (v *View) Invalidate() {
	v.dirtyAll = true
}

func (v *View) markDirty(ids ...component.ID) {
	for _, id := range ids {
		if indexOf(v.dirty, id) < 0 {
			v.dirty = append(v.dirty, id)
		}
	}
}

// IDs 按掛載順序列出組件，返回值永不為 nil
func (v *View) IDs() []component.ID {
	return copyIDs(v.order)
}

// Mounted 報告 id 是否已掛載
func (v *View) Mounted(id component.ID) bool {
	_, ok := v.entries[id]
	return ok
}

// Len 已掛載組件數量
func (v *View) Len() int {
	return len(v.entries)
}

// Policy 返回全局事件策略
func (v *View) Policy() GlobalPolicy {
	return v.policy
}

func indexOf(ids []component.ID, id component.ID) int {
	for i, x := range ids {
		if x == id {
			return i
		}
	}
	return -1
}

func remove(ids []component.ID, id component.ID) []component.ID {
	i := indexOf(ids, id)
	if i < 0 {
		return ids
	}
	out := make([]component.ID, 0, len(ids)-1)
	out = append(out, ids[:i]...)
	return append(out, ids[i+1:]...)
}

func copyIDs(ids []component.ID) []component.ID {
	out := make([]component.ID, len(ids))
	copy(out, ids)
	return out
}
