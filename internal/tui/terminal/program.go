// Package terminal 在 bubbletea 程序中承載 View 及其更新引擎：
// 把終端輸入轉換為事件並送入引擎，緩存每個組件最近一次的
// Drawable，再按佈局繪製。
package terminal

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/Yat-Muk/realm/internal/tui/component"
	"github.com/Yat-Muk/realm/internal/tui/event"
	"github.com/Yat-Muk/realm/internal/tui/style"
	"github.com/Yat-Muk/realm/internal/tui/teakey"
	"github.com/Yat-Muk/realm/internal/tui/update"
	"github.com/Yat-Muk/realm/internal/tui/view"
)

const (
	fallbackWidth  = 80
	fallbackHeight = 24
)

type tickMsg time.Time

// injectMsg 把宿主消息帶入更新循環
type injectMsg struct {
	msg component.Msg
}

// Inject 返回一個把 msg 分發給引擎的命令，
// 供其他命令回報異步結果。
func Inject(msg component.Msg) tea.Cmd {
	return func() tea.Msg {
		return injectMsg{msg: msg}
	}
}

// KeyFilter 先於 View 看到每個按鍵。匹配時返回的消息
// 分發給引擎，View 不會收到該按鍵。
type KeyFilter func(k event.KeyPress) (component.Msg, bool)

// Option 配置 Program
type Option func(*options)

type options struct {
	log    *zap.Logger
	layout Layout
	theme  style.Theme
	tick   time.Duration
	status bool
	keys   KeyFilter
}

func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

func WithLayout(l Layout) Option {
	return func(o *options) {
		if l != nil {
			o.layout = l
		}
	}
}

func WithTheme(t style.Theme) Option {
	return func(o *options) {
		o.theme = t
	}
}

// WithTickInterval 按給定間隔發送 Tick 事件，零值關閉
func WithTickInterval(d time.Duration) Option {
	return func(o *options) {
		o.tick = d
	}
}

// WithKeyFilter 安裝應用級快捷鍵
func WithKeyFilter(f KeyFilter) Option {
	return func(o *options) {
		o.keys = f
	}
}

// WithStatusLine 保留最後一行顯示引擎錯誤與提示
func WithStatusLine(on bool) Option {
	return func(o *options) {
		o.status = on
	}
}

// Program 驅動單個引擎的 tea.Model
type Program[S any] struct {
	log     *zap.Logger
	engine  *update.Engine[S]
	view    *view.View
	layout  Layout
	painter Painter
	theme   style.Theme
	tick    time.Duration
	status  bool
	keys    KeyFilter

	width, height int
	cache         map[component.ID]component.Drawable
	notice        string
	failure       string
}

// New 圍繞 engine 創建程序
func New[S any](engine *update.Engine[S], opts ...Option) *Program[S] {
	o := options{
		log:    zap.NewNop(),
		layout: Stack,
		theme:  style.DefaultTheme(),
		status: true,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Program[S]{
		log:     o.log,
		engine:  engine,
		view:    engine.View(),
		layout:  o.layout,
		painter: Painter{Theme: o.theme},
		theme:   o.theme,
		tick:    o.tick,
		status:  o.status,
		keys:    o.keys,
		width:   fallbackWidth,
		height:  fallbackHeight,
		cache:   make(map[component.ID]component.Drawable),
	}
}

func (p *Program[S]) Init() tea.Cmd {
	p.refresh(view.Full())
	return p.scheduleTick()
}

func (p *Program[S]) scheduleTick() tea.Cmd {
	if p.tick <= 0 {
		return nil
	}
	return tea.Tick(p.tick, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (p *Program[S]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		ev, ok := teakey.FromMsg(msg)
		if !ok {
			break
		}
		if k, isKey := ev.(event.KeyPress); isKey && p.keys != nil {
			if m, hit := p.keys(k); hit {
				p.Dispatch(m)
				break
			}
		}
		p.Feed(ev)
	case tea.WindowSizeMsg:
		p.width, p.height = msg.Width, msg.Height
		p.view.Invalidate()
		p.Feed(event.Resize{Cols: msg.Width, Rows: msg.Height})
	case tickMsg:
		p.Feed(event.Tick{At: time.Time(msg)})
		cmd = p.scheduleTick()
	case injectMsg:
		p.Dispatch(msg.msg)
	}

	if p.engine.Quitting() {
		return p, tea.Quit
	}
	return p, cmd
}

// Feed 把一個輸入事件依次交給 View 與引擎
func (p *Program[S]) Feed(ev event.Event) {
	msgs := p.view.OnEvent(ev)
	hint, err := p.engine.DispatchAll(msgs)
	p.settle(hint, err)
}

// Dispatch 把宿主消息直接發給引擎
func (p *Program[S]) Dispatch(msg component.Msg) {
	hint, err := p.engine.Dispatch(msg)
	p.settle(hint, err)
}

func (p *Program[S]) settle(hint view.RedrawHint, err error) {
	if err != nil {
		// 記錄回滾期間組件可能已經變化，
		// 因此全部重繪。
		p.failure = err.Error()
		p.log.Warn("dispatch failed", zap.Error(err))
		p.refresh(view.Full())
		return
	}
	p.failure = ""
	p.refresh(hint)
}

// refresh 把 hint 指定的組件重新渲染到緩存
func (p *Program[S]) refresh(hint view.RedrawHint) {
	if hint.IsNone() {
		return
	}
	drawn := p.view.Render(hint)
	if hint.Kind == view.RedrawFull {
		p.cache = drawn
		return
	}
	for id, d := range drawn {
		p.cache[id] = d
	}
	for id := range p.cache {
		if !p.view.Mounted(id) {
			delete(p.cache, id)
		}
	}
}

// SetNotice 在狀態行顯示 text，直到被替換
func (p *Program[S]) SetNotice(text string) {
	p.notice = text
}

func (p *Program[S]) View() string {
	area := Rect{Width: p.width, Height: p.height}
	if p.status && area.Height > 1 {
		area.Height--
	}

	rects := p.layout(area, p.view.IDs(), p.cache)
	painted := make(map[component.ID][]string, len(rects))
	for id, r := range rects {
		painted[id] = p.painter.Paint(p.cache[id], r.Width, r.Height)
	}
	rows := compose(area, rects, painted)

	if p.status && p.height > 1 {
		rows = append(rows, p.statusLine())
	}
	return strings.Join(rows, "\n")
}

func (p *Program[S]) statusLine() string {
	bar := p.theme.StatusBarStyle().MaxWidth(p.width)
	switch {
	case p.failure != "":
		return bar.Render(p.theme.ErrorBadgeStyle().Render("ERROR") + " " + p.failure)
	case p.notice != "":
		return bar.Render(p.theme.InfoBadgeStyle().Render("INFO") + " " + p.notice)
	default:
		return ""
	}
}

// Failure 返回狀態行中顯示的最近一次分發錯誤
func (p *Program[S]) Failure() string {
	return p.failure
}

// Run 為 p 啟動 bubbletea 程序，阻塞直到退出或 ctx 被取消
func Run[S any](ctx context.Context, p *Program[S], altScreen bool) error {
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if altScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	_, err := tea.NewProgram(p, opts...).Run()
	return err
}
