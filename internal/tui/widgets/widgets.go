// Package widgets 保存標準組件共用的消息及少量渲染輔助函數。
// 每個組件位於各自的子包中。
package widgets

import (
	"github.com/Yat-Muk/realm/internal/tui/component"
	"github.com/Yat-Muk/realm/internal/tui/event"
	"github.com/Yat-Muk/realm/internal/tui/props"
)

// OnKey 報告組件自身未消費的按鍵
type OnKey struct {
	Key event.KeyPress
}

// OnChange 報告組件值已變更
type OnChange struct {
	Value component.Payload
}

// OnSubmit 報告用戶確認了當前值
type OnSubmit struct {
	Value component.Payload
}

// Reset 請求組件回到初始狀態
type Reset struct{}

// Frame 根據邊框與標題構建組件外框，兩者皆無時返回 nil
func Frame(p props.Props, focused bool) *component.Block {
	title := p.StrOr(props.AttrTitle, "")
	if p.Borders.Sides == props.NoSides && title == "" {
		return nil
	}
	return &component.Block{
		Borders: p.Borders,
		Title:   title,
		Active:  focused,
	}
}

// Enabled 報告組件是否接受輸入
func Enabled(p props.Props) bool {
	return p.Visible && !p.BoolOr(props.AttrDisabled, false)
}

// Clamp 把 i 限制在 [0, n-1]，n 為 0 時返回 0
func Clamp(i, n int) int {
	switch {
	case n <= 0 || i < 0:
		return 0
	case i >= n:
		return n - 1
	default:
		return i
	}
}
