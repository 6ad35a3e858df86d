package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Yat-Muk/realm/internal/pkg/inputvalidator"
	"github.com/Yat-Muk/realm/internal/tui/component"
	"github.com/Yat-Muk/realm/internal/tui/props"
	"github.com/Yat-Muk/realm/internal/tui/update"
	"github.com/Yat-Muk/realm/internal/tui/view"
	"github.com/Yat-Muk/realm/internal/tui/widgets"
	"github.com/Yat-Muk/realm/internal/tui/widgets/input"
	"github.com/Yat-Muk/realm/internal/tui/widgets/label"
	"github.com/Yat-Muk/realm/internal/tui/widgets/list"
	"github.com/Yat-Muk/realm/internal/tui/widgets/progress"
	"github.com/Yat-Muk/realm/internal/tui/widgets/radio"
	"github.com/Yat-Muk/realm/internal/tui/widgets/spinner"
)

const (
	idHeader   component.ID = "header"
	idName     component.ID = "name"
	idPort     component.ID = "port"
	idTasks    component.ID = "tasks"
	idAccent   component.ID = "accent"
	idProgress component.ID = "progress"
	idSpinner  component.ID = "spinner"
	idStatus   component.ID = "status"
	idHelp     component.ID = "help"
)

const headerText = "realm widget gallery"

var (
	taskRows = []string{"fetch sources", "resolve deps", "compile", "run tests", "package"}
	accents  = []string{"cyan", "magenta", "yellow"}

	accentColors = map[string]props.Color{
		"cyan":    props.LightCyan,
		"magenta": props.LightMagenta,
		"yellow":  props.LightYellow,
	}
)

// galleryState reducer 折疊出的應用狀態
type galleryState struct {
	Name      string
	Port      string
	Task      int
	Accent    string
	Submitted []string
}

type gallery struct {
	log  *zap.Logger
	keys keyMap
}

func newGallery(log *zap.Logger) *gallery {
	if log == nil {
		log = zap.NewNop()
	}
	return &gallery{log: log, keys: defaultKeyMap()}
}

// mount 放置所有部件並聚焦第一個輸入框
func (g *gallery) mount(v *view.View) error {
	type entry struct {
		id    component.ID
		comp  component.Component
		build func() (props.Props, error)
	}
	entries := []entry{
		{idHeader, label.New(), func() (props.Props, error) { return headerProps(accents[0]) }},
		{idName, input.New(""), input.NewProps().
			Title("name").
			Placeholder("type your name").
			MaxLen(inputvalidator.MaxNameLength).
			Borders(props.AllSides, props.BorderRounded, props.Reset).
			Build},
		{idPort, input.New("8080"), input.NewProps().
			Type(input.TypeNumber).
			Title("port").
			MaxLen(5).
			Borders(props.AllSides, props.BorderRounded, props.Reset).
			Build},
		{idTasks, list.New(), list.NewProps().
			Title("tasks").
			Rows(taskTable()).
			Scrollable(true).
			Step(2).
			Height(3).
			HighlightedStr("➤ ").
			HighlightedColor(props.LightGreen).
			Borders(props.AllSides, props.BorderRounded, props.Reset).
			Build},
		{idAccent, radio.New(0), radio.NewProps().
			Title("accent").
			Options(accents...).
			HighlightedColor(props.LightCyan).
			Borders(props.AllSides, props.BorderRounded, props.Reset).
			Build},
		{idProgress, progress.New(), func() (props.Props, error) { return progressProps(0) }},
		{idSpinner, spinner.New(), spinner.NewProps().Preset("dot").Text("waiting for input").Build},
		{idStatus, label.New(), func() (props.Props, error) { return statusProps("ready") }},
		{idHelp, label.New(), label.NewProps().Text(g.keys.HelpText()).Foreground(props.DarkGray).Build},
	}

	for _, e := range entries {
		p, err := e.build()
		if err != nil {
			return fmt.Errorf("build %s props: %w", e.id, err)
		}
		if err := v.Mount(e.id, e.comp, p); err != nil {
			return err
		}
	}
	return v.SetFocus(idName)
}

func taskTable() props.Table {
	tb := props.NewTable()
	for i, row := range taskRows {
		tb.AddCol(props.Span(fmt.Sprintf("%d.", i+1)).Fg(props.DarkGray)).
			AddCol(props.Span(" " + row)).
			AddRow()
	}
	return tb.Build()
}

func headerProps(accent string) (props.Props, error) {
	return label.NewProps().
		Text(headerText).
		Alignment(props.AlignCenter).
		Foreground(accentColors[accent]).
		Modifiers(props.Bold).
		Borders(props.AllSides, props.BorderDouble, accentColors[accent]).
		Build()
}

func progressProps(task int) (props.Props, error) {
	done := float64(task) / float64(len(taskRows)-1)
	return progress.NewProps().
		Progress(done).
		Label(taskRows[task]).
		Width(30).
		Build()
}

func statusProps(text string) (props.Props, error) {
	return label.NewProps().Text(text).Build()
}

// reduce 把一條消息折疊進狀態
func (g *gallery) reduce(ctx *update.Context, s galleryState, msg component.Msg) galleryState {
	from, inner := component.Untag(msg)

	switch m := inner.(type) {
	case command:
		return g.command(ctx, s, m)
	case widgets.OnChange:
		return g.changed(ctx, s, from, m.Value)
	case widgets.OnSubmit:
		return g.submitted(ctx, s, from, m.Value)
	case widgets.OnKey:
		g.log.Debug("unbound key", zap.String("from", string(from)), zap.Stringer("key", m.Key))
	default:
		g.log.Warn("unexpected message", zap.String("from", string(from)), zap.Any("msg", inner))
	}
	return s
}

func (g *gallery) command(ctx *update.Context, s galleryState, c command) galleryState {
	v := ctx.View()
	switch c {
	case cmdFocusNext:
		v.FocusNext()
	case cmdFocusPrev:
		v.FocusPrev()
	case cmdQuit:
		ctx.Quit()
	case cmdReset:
		for _, id := range []component.ID{idName, idTasks, idAccent} {
			if err := ctx.Forward(id, widgets.Reset{}); err != nil {
				g.log.Error("reset failed", zap.String("id", string(id)), zap.Error(err))
			}
		}
		s.Submitted = nil
		g.setStatus(ctx, "reset")
	}
	return s
}

func (g *gallery) changed(ctx *update.Context, s galleryState, from component.ID, value component.Payload) galleryState {
	switch from {
	case idName:
		s.Name, _ = value.One.(string)
		g.setStatus(ctx, "name: "+s.Name)
	case idPort:
		s.Port, _ = value.One.(string)
		g.setStatus(ctx, "port: "+s.Port)
	case idTasks:
		s.Task, _ = value.One.(int)
		g.update(ctx, idProgress, func() (props.Props, error) { return progressProps(s.Task) })
		g.setStatus(ctx, "task: "+taskRows[s.Task])
	case idAccent:
		i, _ := value.One.(int)
		s.Accent = accents[i]
		g.update(ctx, idHeader, func() (props.Props, error) { return headerProps(s.Accent) })
		g.setStatus(ctx, "accent: "+s.Accent)
	}
	return s
}

func (g *gallery) submitted(ctx *update.Context, s galleryState, from component.ID, value component.Payload) galleryState {
	switch from {
	case idName:
		name, _ := value.One.(string)
		if err := inputvalidator.ValidateName(name); err != nil {
			g.setStatus(ctx, err.Error())
			return s
		}
		s.Submitted = append(s.Submitted, name)
		g.setStatus(ctx, fmt.Sprintf("hello, %s (%d submitted)", name, len(s.Submitted)))
	case idPort:
		raw, _ := value.One.(string)
		port, err := inputvalidator.ParsePort(raw)
		if err != nil {
			g.setStatus(ctx, err.Error())
			return s
		}
		g.setStatus(ctx, fmt.Sprintf("listening on :%d", port))
		ctx.Emit(cmdFocusNext)
	case idTasks:
		i, _ := value.One.(int)
		g.setStatus(ctx, "started "+taskRows[i])
	default:
		ctx.Emit(cmdFocusNext)
	}
	return s
}

func (g *gallery) setStatus(ctx *update.Context, text string) {
	g.update(ctx, idStatus, func() (props.Props, error) { return statusProps(text) })
}

func (g *gallery) update(ctx *update.Context, id component.ID, build func() (props.Props, error)) {
	p, err := build()
	if err == nil {
		err = ctx.View().UpdateProps(id, p)
	}
	if err != nil {
		g.log.Error("update props", zap.String("id", string(id)), zap.Error(err))
	}
}
