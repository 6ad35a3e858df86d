// Package event 定義終端後端投遞的輸入事件。
//
// 下面四種變體構成後端與 View 之間的全部契約：
// 按鍵、終端尺寸變化、括號粘貼與 tick。
package event

import (
	"strings"
	"time"
)

// Event 一個用戶輸入單元，變體集合是封閉的
type Event interface {
	isEvent()
}

// Key 標識不可打印按鍵，可打印輸入用 KeyRune
type Key int

const (
	KeyRune Key = iota
	KeyEnter
	KeyTab
	KeyBackTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyEsc
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyNull
)

var keyNames = map[Key]string{
	KeyRune:      "rune",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBackTab:   "shift+tab",
	KeyBackspace: "backspace",
	KeyDelete:    "delete",
	KeyInsert:    "insert",
	KeyEsc:       "esc",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPageUp:    "pgup",
	KeyPageDown:  "pgdown",
	KeyF1:        "f1",
	KeyF2:        "f2",
	KeyF3:        "f3",
	KeyF4:        "f4",
	KeyF5:        "f5",
	KeyF6:        "f6",
	KeyF7:        "f7",
	KeyF8:        "f8",
	KeyF9:        "f9",
	KeyF10:       "f10",
	KeyF11:       "f11",
	KeyF12:       "f12",
	KeyNull:      "null",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

// Modifier 按住的修飾鍵位集
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
)

// Has 報告 m2 的所有位是否都已設置
func (m Modifier) Has(m2 Modifier) bool {
	return m&m2 == m2
}

// KeyPress 一次擊鍵
type KeyPress struct {
	Code      Key
	Rune      rune // Code == KeyRune 時設置
	Modifiers Modifier
}

// Resize 以單元格報告新的終端尺寸
type Resize struct {
	Cols int
	Rows int
}

// Paste 攜帶括號粘貼的文本
type Paste struct {
	Text string
}

// Tick 宿主按固定間隔發出
type Tick struct {
	At time.Time
}

func (KeyPress) isEvent() {}
func (Resize) isEvent()   {}
func (Paste) isEvent()    {}
func (Tick) isEvent()     {}

// Char 為可打印字符構建 KeyPress
func Char(r rune) KeyPress {
	return KeyPress{Code: KeyRune, Rune: r}
}

// Ctrl 構建 ctrl+r 這類 KeyPress
func Ctrl(r rune) KeyPress {
	return KeyPress{Code: KeyRune, Rune: r, Modifiers: ModCtrl}
}

// Press 為命名按鍵構建 KeyPress
func Press(k Key) KeyPress {
	return KeyPress{Code: k}
}

// String 以快捷鍵使用的 "ctrl+alt+x" 寫法渲染按鍵
func (k KeyPress) String() string {
	var b strings.Builder
	if k.Modifiers.Has(ModCtrl) {
		b.WriteString("ctrl+")
	}
	if k.Modifiers.Has(ModAlt) {
		b.WriteString("alt+")
	}
	if k.Modifiers.Has(ModShift) && k.Code != KeyBackTab {
		b.WriteString("shift+")
	}
	if k.Code == KeyRune {
		if k.Rune == ' ' {
			b.WriteString("space")
		} else {
			b.WriteRune(k.Rune)
		}
		return b.String()
	}
	b.WriteString(k.Code.String())
	return b.String()
}

// IsGlobal 報告 ev 是否針對整個屏幕而非焦點組件。
// Resize 與 Tick 是全局事件；按鍵與粘貼指向焦點。
func IsGlobal(ev Event) bool {
	switch ev.(type) {
	case Resize, Tick:
		return true
	default:
		return false
	}
}
