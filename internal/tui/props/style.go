package props

import (
	"regexp"
	"strconv"
)

// Color 終端顏色：ANSI 索引（"0"-"255"）、十六進制值
// （"#RGB" 或 "#RRGGBB"），空值表示終端默認色。
type Color string

// ANSI 基礎調色板
const (
	Reset        Color = ""
	Black        Color = "0"
	Red          Color = "1"
	Green        Color = "2"
	Yellow       Color = "3"
	Blue         Color = "4"
	Magenta      Color = "5"
	Cyan         Color = "6"
	Gray         Color = "7"
	DarkGray     Color = "8"
	LightRed     Color = "9"
	LightGreen   Color = "10"
	LightYellow  Color = "11"
	LightBlue    Color = "12"
	LightMagenta Color = "13"
	LightCyan    Color = "14"
	White        Color = "15"
)

var hexColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// Valid 報告 c 是否為空、ANSI 索引或十六進制顏色
func (c Color) Valid() bool {
	if c == Reset {
		return true
	}
	if hexColor.MatchString(string(c)) {
		return true
	}
	n, err := strconv.Atoi(string(c))
	return err == nil && n >= 0 && n <= 255
}

// Modifier 文字屬性位集
type Modifier uint16

const (
	Bold Modifier = 1 << iota
	Dim
	Italic
	Underlined
	SlowBlink
	RapidBlink
	Reversed
	CrossedOut
)

// Has 報告 o 的所有位是否都已設置
func (m Modifier) Has(o Modifier) bool {
	return m&o == o
}

// Alignment 水平對齊方式
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// Valid 報告 a 是否為已知對齊方式
func (a Alignment) Valid() bool {
	return a >= AlignLeft && a <= AlignRight
}

// Sides 選擇哪些邊繪製邊框
type Sides uint8

const (
	NoSides Sides = 0
	Top     Sides = 1 << iota
	Right
	Bottom
	Left
	AllSides = Top | Right | Bottom | Left
)

// BorderType 選擇邊框字符集
type BorderType int

const (
	BorderPlain BorderType = iota
	BorderRounded
	BorderDouble
	BorderThick
)

// Borders 配置組件外圍邊框
type Borders struct {
	Sides Sides
	Type  BorderType
	Color Color
}

// Style 一段文字最終的外觀
type Style struct {
	Foreground Color
	Background Color
	Modifiers  Modifier
}

// Patch 把 o 的非零字段疊加到 s 上
func (s Style) Patch(o Style) Style {
	if o.Foreground != Reset {
		s.Foreground = o.Foreground
	}
	if o.Background != Reset {
		s.Background = o.Background
	}
	s.Modifiers |= o.Modifiers
	return s
}
