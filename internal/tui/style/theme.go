// Package style 把組件樣式映射到 lipgloss，並保存焦點與
// 界面框架使用的配色主題。
package style

import "github.com/charmbracelet/lipgloss"

// Theme 為組件自身未設置樣式的屏幕部分配色
type Theme struct {
	Focus  lipgloss.Color // 焦點組件的邊框
	Border lipgloss.Color // 其他組件的邊框
	Muted  lipgloss.Color
	Accent lipgloss.Color
}

// DefaultTheme 返回默認配色
func DefaultTheme() Theme {
	return Theme{
		Focus:  Primary,
		Border: Muted,
		Muted:  Muted,
		Accent: Accent,
	}
}

// Override 用 o 中已設置的顏色替換對應顏色
func (t Theme) Override(o Theme) Theme {
	if o.Focus != "" {
		t.Focus = o.Focus
	}
	if o.Border != "" {
		t.Border = o.Border
	}
	if o.Muted != "" {
		t.Muted = o.Muted
	}
	if o.Accent != "" {
		t.Accent = o.Accent
	}
	return t
}

// StatusBarStyle 底部狀態行
func (t Theme) StatusBarStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Muted)
}

// ErrorBadgeStyle 狀態行中的錯誤標記
func (t Theme) ErrorBadgeStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(Ink).
		Background(Error).
		Padding(0, 1).
		Bold(true)
}

// InfoBadgeStyle 狀態行中的提示標記
func (t Theme) InfoBadgeStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(BgDark).
		Background(t.Accent).
		Padding(0, 1).
		Bold(true)
}
