package style

import "github.com/charmbracelet/lipgloss"

// 調色板
var (
	FutureGreen = lipgloss.Color("#B2FF00")
	SkyBlue     = lipgloss.Color("#1AAEFC")
	Violet      = lipgloss.Color("#DDAAFF")
	Yellow      = lipgloss.Color("#FFDC65")
	Orange      = lipgloss.Color("#FC7B00")
	Red         = lipgloss.Color("#FF007F")

	White    = lipgloss.Color("#F3F3F0")
	Gray     = lipgloss.Color("#C0C0C0")
	DarkGray = lipgloss.Color("#8A8783")

	BgDark   = lipgloss.Color("#1a1a1a")
	BgMedium = lipgloss.Color("#2a2a2a")
)

// 語義顏色
var (
	Primary = SkyBlue
	Accent  = Violet
	Ink     = White
	Muted   = DarkGray
	Success = FutureGreen
	Warning = Yellow
	Error   = Red
)
