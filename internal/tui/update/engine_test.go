package update

import (
	"errors"
	"fmt"
	"testing"

	apperrors "github.com/Yat-Muk/realm/internal/pkg/errors"
	"github.com/Yat-Muk/realm/internal/tui/component"
	"github.com/Yat-Muk/realm/internal/tui/event"
	"github.com/Yat-Muk/realm/internal/tui/props"
	"github.com/Yat-Muk/realm/internal/tui/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type counter struct {
	n int
}

func (c *counter) Render(props.Props, bool) component.Drawable {
	return component.Drawable{Lines: []component.Line{component.TextLine(fmt.Sprint(c.n), props.Style{})}}
}

func (c *counter) Handle(_ props.Props, ev event.Event) component.Msg {
	if k, ok := ev.(event.KeyPress); ok && k.Code == event.KeyEnter {
		c.n++
		return "bumped"
	}
	return nil
}

func (c *counter) Update(msg component.Msg) component.Msg {
	if msg == "bump" {
		c.n++
		return "bumped"
	}
	return nil
}

func (c *counter) Focusable(props.Props) bool { return true }

type appState struct {
	Log   []string
	Count int
}

func record(ctx *Context, s appState, msg component.Msg) appState {
	s.Log = append(append([]string(nil), s.Log...), fmt.Sprint(msg))
	s.Count++
	return s
}

func TestEngine_FIFOOrder(t *testing.T) {
	v := view.New()
	reducer := func(ctx *Context, s appState, msg component.Msg) appState {
		switch msg {
		case "a":
			ctx.Emit("a1")
			ctx.Emit("a2")
		case "a1":
			ctx.Emit("a1x")
		}
		return record(ctx, s, msg)
	}
	e := New(v, appState{}, reducer)

	_, err := e.DispatchAll([]component.Msg{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "a1", "a2", "a1x"}, e.State().Log)
	assert.Equal(t, Stats{Dispatches: 1, Messages: 5}, e.Stats())
}

func TestEngine_PendingCountsQueuedMessages(t *testing.T) {
	var seen []int
	reducer := func(ctx *Context, s appState, msg component.Msg) appState {
		seen = append(seen, ctx.Pending())
		if msg == "a" {
			ctx.Emit("a1")
			ctx.Emit("a2")
			seen = append(seen, ctx.Pending())
		}
		return record(ctx, s, msg)
	}
	e := New(view.New(), appState{}, reducer)

	_, err := e.DispatchAll([]component.Msg{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 2, 1, 0}, seen, "the message being reduced is no longer queued")
}

func TestEngine_OverflowRollsBack(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	v := view.New()
	require.NoError(t, v.Mount("base", &counter{}, props.Default()))
	require.NoError(t, v.SetFocus("base"))
	v.TakeHint()

	n := 0
	reducer := func(ctx *Context, s appState, msg component.Msg) appState {
		n++
		id := component.ID(fmt.Sprintf("c%d", n))
		_ = ctx.View().Mount(id, &counter{}, props.Default())
		_ = ctx.View().SetFocus(id)
		ctx.Emit(msg)
		ctx.Quit()
		return record(ctx, s, msg)
	}
	e := New(v, appState{Count: 7}, reducer, WithMaxSteps(3), WithLogger(zap.New(core)))
	before := v.Checkpoint()

	hint, err := e.Dispatch("again")
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrProcessingOverflow))
	assert.Equal(t, apperrors.CodeProcessingOverflow, apperrors.CodeOf(err))
	assert.True(t, hint.IsNone())

	assert.Equal(t, 3, n, "exactly the ceiling was processed")
	assert.Equal(t, appState{Count: 7}, e.State())
	assert.Equal(t, before, v.Checkpoint())
	assert.Equal(t, []component.ID{"base"}, v.IDs())
	id, _ := v.Focused()
	assert.Equal(t, component.ID("base"), id)
	assert.False(t, e.Quitting(), "quit from a rolled back cascade is discarded")
	assert.Equal(t, 1, e.Stats().Overflows)

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, zapcore.ErrorLevel, logs.All()[0].Level)
}

func TestEngine_CascadeAtCeilingSucceeds(t *testing.T) {
	v := view.New()
	reducer := func(ctx *Context, s appState, msg component.Msg) appState {
		if i, ok := msg.(int); ok && i < 3 {
			ctx.Emit(i + 1)
		}
		return record(ctx, s, msg)
	}
	e := New(v, appState{}, reducer, WithMaxSteps(3))

	_, err := e.Dispatch(1)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, e.State().Log)

	_, err = e.Dispatch(0)
	assert.True(t, errors.Is(err, apperrors.ErrProcessingOverflow))
	assert.Equal(t, []string{"1", "2", "3"}, e.State().Log)
}

func TestEngine_Deterministic(t *testing.T) {
	run := func() (view.RedrawHint, appState, []component.ID) {
		v := view.New()
		require.NoError(t, v.Mount("a", &counter{}, props.Default()))
		require.NoError(t, v.Mount("b", &counter{}, props.Default()))
		v.TakeHint()

		reducer := func(ctx *Context, s appState, msg component.Msg) appState {
			switch msg {
			case "go":
				_ = ctx.View().SetFocus("b")
				_ = ctx.Forward("a", "bump")
			case "spawn":
				_ = ctx.View().Mount("c", &counter{}, props.Default())
			}
			return record(ctx, s, msg)
		}
		e := New(v, appState{}, reducer)
		hint, err := e.DispatchAll([]component.Msg{"go", "spawn"})
		require.NoError(t, err)
		return hint, e.State(), v.IDs()
	}

	h1, s1, ids1 := run()
	h2, s2, ids2 := run()
	assert.Equal(t, h1, h2)
	assert.Equal(t, s1, s2)
	assert.Equal(t, ids1, ids2)
	assert.Equal(t, view.RedrawFull, h1.Kind)
	assert.Equal(t, []string{"go", "spawn", fmt.Sprint(component.Tagged{From: "a", Msg: "bumped"})}, s1.Log)
}

func TestEngine_ForwardQueuesTaggedMessage(t *testing.T) {
	v := view.New()
	c := &counter{}
	require.NoError(t, v.Mount("a", c, props.Default()))
	v.TakeHint()

	var seen []component.Msg
	reducer := func(ctx *Context, s appState, msg component.Msg) appState {
		seen = append(seen, msg)
		if msg == "poke" {
			require.NoError(t, ctx.Forward("a", "bump"))
			assert.True(t, errors.Is(ctx.Forward("ghost", "bump"), apperrors.ErrUnknownID))
		}
		return s
	}
	e := New(v, appState{}, reducer)

	hint, err := e.Dispatch("poke")
	require.NoError(t, err)
	assert.Equal(t, []component.Msg{"poke", component.Tagged{From: "a", Msg: "bumped"}}, seen)
	assert.Equal(t, 1, c.n)
	assert.Equal(t, view.Partial("a"), hint)
}

func TestEngine_HintMerging(t *testing.T) {
	v := view.New()
	require.NoError(t, v.Mount("a", &counter{}, props.Default()))
	require.NoError(t, v.Mount("b", &counter{}, props.Default()))
	require.NoError(t, v.SetFocus("a"))
	v.TakeHint()

	reducer := func(ctx *Context, s appState, msg component.Msg) appState {
		switch msg {
		case "partial":
			ctx.Redraw("b")
		case "full":
			ctx.RedrawAll()
		}
		return s
	}
	e := New(v, appState{}, reducer)

	msgs := v.OnEvent(event.Press(event.KeyEnter))
	require.Len(t, msgs, 1)
	msgs = append(msgs, "partial")

	hint, err := e.DispatchAll(msgs)
	require.NoError(t, err)
	assert.Equal(t, view.RedrawPartial, hint.Kind)
	assert.ElementsMatch(t, []component.ID{"a", "b"}, hint.IDs)

	hint, err = e.Dispatch("full")
	require.NoError(t, err)
	assert.Equal(t, view.RedrawFull, hint.Kind)

	hint, err = e.Dispatch("nothing")
	require.NoError(t, err)
	assert.True(t, hint.IsNone())
}

func TestEngine_EmptyDispatch(t *testing.T) {
	v := view.New()
	require.NoError(t, v.Mount("a", &counter{}, props.Default()))

	calls := 0
	e := New(v, 0, func(ctx *Context, s int, msg component.Msg) int {
		calls++
		return s + 1
	})

	hint, err := e.DispatchAll(nil)
	require.NoError(t, err)
	assert.Equal(t, view.RedrawFull, hint.Kind, "pending view changes are still reported")

	hint, err = e.Dispatch(nil)
	require.NoError(t, err)
	assert.True(t, hint.IsNone())
	assert.Equal(t, 0, calls)
	assert.Equal(t, 0, e.Stats().Dispatches)
}

func TestEngine_Quit(t *testing.T) {
	e := New(view.New(), appState{}, func(ctx *Context, s appState, msg component.Msg) appState {
		if msg == "quit" {
			ctx.Quit()
		}
		return s
	})
	_, err := e.Dispatch("stay")
	require.NoError(t, err)
	assert.False(t, e.Quitting())

	_, err = e.Dispatch("quit")
	require.NoError(t, err)
	assert.True(t, e.Quitting())
}

func TestEngine_Options(t *testing.T) {
	e := New(view.New(), 0, func(*Context, int, component.Msg) int { return 0 }, WithMaxSteps(0), WithLogger(nil))
	assert.Equal(t, DefaultMaxSteps, e.MaxSteps())

	e = New(view.New(), 0, func(*Context, int, component.Msg) int { return 0 }, WithMaxSteps(4))
	assert.Equal(t, 4, e.MaxSteps())
	assert.NotNil(t, e.View())
}
