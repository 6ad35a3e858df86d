// Package component 定義掛載到 View 上的每個部件都要實現的契約，
// 以及部件渲染輸出的 Drawable 描述。
package component

import (
	"github.com/Yat-Muk/realm/internal/tui/event"
	"github.com/Yat-Muk/realm/internal/tui/props"
)

// ID 標識單個 View 內已掛載的組件
type ID string

// Msg 由組件產生或宿主注入的應用層事實，
// 從不攜帶原始輸入設備細節。
type Msg interface{}

// Component 有狀態的 UI 單元。狀態保存在實現值中，
// 只在 Handle 與 Update 中修改。
//
// 遇到格式錯誤的 props 時實現不得 panic，
// 應退回默認外觀與行為。
type Component interface {
	// Render 根據給定 props 描述組件，不做 I/O，也不產生消息
	Render(p props.Props, focused bool) Drawable

	// Handle 響應輸入事件，最多返回一條消息；
	// 事件沒有外部效果或無法識別時返回 nil。
	Handle(p props.Props, ev event.Event) Msg

	// Update 應用發給自身的消息。返回的消息不會直接送回 Update，
	// 而是由更新引擎入隊。
	Update(msg Msg) Msg

	// Focusable 報告組件能否持有焦點
	Focusable(p props.Props) bool
}

// Valuer 由提供只讀狀態快照的組件實現。p 是組件當前掛載的 props，
// 以索引保存的狀態會按當前內容截斷後報告。
type Valuer interface {
	Value(p props.Props) Payload
}

// Tagged 用 id 包裝已掛載組件發出的消息
type Tagged struct {
	From ID
	Msg  Msg
}

// Tag 用來源包裝 msg，msg 為 nil 時返回 nil
func Tag(id ID, msg Msg) Msg {
	if msg == nil {
		return nil
	}
	return Tagged{From: id, Msg: msg}
}

// Untag 返回帶標記消息的來源與內部消息。
// 其他消息返回空 id 與消息本身。
func Untag(msg Msg) (ID, Msg) {
	if t, ok := msg.(Tagged); ok {
		return t.From, t.Msg
	}
	return "", msg
}
