// Package update 通過單一 reducer 與有界 FIFO 工作隊列，
// 把消息轉換為應用狀態變更與重繪提示。
package update

import (
	"github.com/Yat-Muk/realm/internal/pkg/errors"
	"github.com/Yat-Muk/realm/internal/tui/component"
	"github.com/Yat-Muk/realm/internal/tui/view"
	"go.uber.org/zap"
)

// DefaultMaxSteps 單次分發可處理的消息數
const DefaultMaxSteps = 16

// Reducer 把一條消息應用到應用狀態並返回新狀態。
// 可通過 ctx.View 掛載、卸載、聚焦組件，用 ctx.Emit 追加後續消息，
// 並請求重繪。
//
// S 應表現為值類型：溢出時引擎保留舊值來恢復狀態，
// reducer 若通過 S 中的指針或 map 修改數據，回滾將失效。
type Reducer[S any] func(ctx *Context, state S, msg component.Msg) S

type options struct {
	log      *zap.Logger
	maxSteps int
}

// Option 配置 Engine
type Option func(*options)

// WithLogger 設置日誌記錄器
func WithLogger(log *zap.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

// WithMaxSteps 設置單次分發上限，小於 1 的值保留默認值
func WithMaxSteps(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxSteps = n
		}
	}
}

// Engine 在一個 View 上驅動 reducer
type Engine[S any] struct {
	log      *zap.Logger
	maxSteps int

	view    *view.View
	reducer Reducer[S]
	state   S

	quitting bool
	stats    Stats
}

// Stats 引擎創建以來的活動計數
type Stats struct {
	Dispatches int
	Messages   int
	Overflows  int
}

// New 以 initial 為初始狀態，在 v 上創建引擎
func New[S any](v *view.View, initial S, reducer Reducer[S], opts ...Option) *Engine[S] {
	o := options{
		log:      zap.NewNop(),
		maxSteps: DefaultMaxSteps,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Engine[S]{
		log:      o.log,
		maxSteps: o.maxSteps,
		view:     v,
		reducer:  reducer,
		state:    initial,
	}
}

// Dispatch 處理 msg 及其級聯產生的所有消息
func (e *Engine[S]) Dispatch(msg component.Msg) (view.RedrawHint, error) {
	return e.DispatchAll([]component.Msg{msg})
}

// DispatchAll 按順序處理 msgs 及其級聯產生的所有消息，共用一個 FIFO 隊列。
// 返回的 hint 合併 reducer 的請求與 View 上的變更（包括調用前的變更）。
//
// 處理 MaxSteps 條消息後隊列仍不為空時，返回 ProcessingOverflow 錯誤，
// 應用狀態與 View 記錄都恢復到調用前。經 Forward 修改的組件狀態
// 不會恢復。
func (e *Engine[S]) DispatchAll(msgs []component.Msg) (view.RedrawHint, error) {
	// 1. 快照
	cp := e.view.Checkpoint()
	state := e.state

	ctx := &Context{view: e.view}
	for _, m := range msgs {
		ctx.Emit(m)
	}
	if ctx.Pending() == 0 {
		return e.view.TakeHint(), nil
	}
	e.stats.Dispatches++

	// 2. 排空隊列
	steps := 0
	for ctx.Pending() > 0 {
		if steps == e.maxSteps {
			pending := ctx.Pending()
			e.view.Rollback(cp)
			e.stats.Overflows++
			err := errors.ProcessingOverflow(e.maxSteps, pending)
			e.log.Error("message cascade overflow, state rolled back",
				zap.Int("limit", e.maxSteps),
				zap.Int("pending", pending),
				zap.Error(err),
			)
			return view.NoRedraw(), err
		}
		msg := ctx.queue[0]
		ctx.queue[0] = nil
		ctx.queue = ctx.queue[1:]

		state = e.reducer(ctx, state, msg)
		steps++
	}

	// 3. 提交
	e.state = state
	e.stats.Messages += steps
	if ctx.quit && !e.quitting {
		e.quitting = true
		e.log.Info("quit requested")
	}

	hint := ctx.hint.Merge(e.view.TakeHint())
	e.log.Debug("dispatch done",
		zap.Int("steps", steps),
		zap.String("redraw", hint.Kind.String()),
	)
	return hint, nil
}

// State 返回已提交的應用狀態
func (e *Engine[S]) State() S {
	return e.state
}

// View 返回引擎驅動的 View
func (e *Engine[S]) View() *view.View {
	return e.view
}

// Quitting 報告 reducer 是否請求宿主退出
func (e *Engine[S]) Quitting() bool {
	return e.quitting
}

// MaxSteps 返回單次分發上限
func (e *Engine[S]) MaxSteps() int {
	return e.maxSteps
}

// Stats 返回活動計數
func (e *Engine[S]) Stats() Stats {
	return e.stats
}
