package update

import (
	"github.com/Yat-Muk/realm/internal/tui/component"
	"github.com/Yat-Muk/realm/internal/tui/view"
)

// Context 單次分發調用中交給 reducer 的上下文
type Context struct {
	view  *view.View
	queue []component.Msg
	hint  view.RedrawHint
	quit  bool
}

// View 返回被驅動的 View
func (c *Context) View() *view.View {
	return c.view
}

// Emit 把 msg 追加到隊尾，nil 被忽略
func (c *Context) Emit(msg component.Msg) {
	if msg == nil {
		return
	}
	c.queue = append(c.queue, msg)
}

// Forward 把 msg 交給組件 id 的 Update，並把產生的消息（如有）入隊
func (c *Context) Forward(id component.ID, msg component.Msg) error {
	out, err := c.view.Forward(id, msg)
	if err != nil {
		return err
	}
	c.Emit(out)
	return nil
}

// Redraw 請求重繪指定組件
func (c *Context) Redraw(ids ...component.ID) {
	c.hint = c.hint.Merge(view.Partial(ids...))
}

// RedrawAll 請求全量重繪
func (c *Context) RedrawAll() {
	c.hint = view.Full()
}

// Quit 請求宿主在本次分發提交後退出
func (c *Context) Quit() {
	c.quit = true
}

// Pending 隊列中的消息數
func (c *Context) Pending() int {
	return len(c.queue)
}
