package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domainConfig "github.com/Yat-Muk/realm/internal/domain/config"
	infraConfig "github.com/Yat-Muk/realm/internal/infra/config"
	"github.com/Yat-Muk/realm/internal/pkg/appctx"
	"github.com/Yat-Muk/realm/internal/tui/component"
	"github.com/Yat-Muk/realm/internal/tui/event"
	"github.com/Yat-Muk/realm/internal/tui/props"
)

func setupTestEnvironment(t *testing.T) *AppDependencies {
	t.Helper()

	paths, err := appctx.NewPaths(t.TempDir())
	require.NoError(t, err)

	deps, err := initializeDependencies(zap.NewNop(), paths, domainConfig.DefaultConfig())
	require.NoError(t, err)
	deps.Program.Init()
	deps.Program.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	return deps
}

func typeText(deps *AppDependencies, s string) {
	for _, r := range s {
		deps.Program.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func press(deps *AppDependencies, keys ...tea.KeyType) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = deps.Program.Update(tea.KeyMsg{Type: k})
	}
	return cmd
}

func text(t *testing.T, deps *AppDependencies, id component.ID) string {
	t.Helper()
	p, err := deps.Engine.View().Props(id)
	require.NoError(t, err)
	s, _ := p.Str(props.AttrText)
	return s
}

func focused(deps *AppDependencies) component.ID {
	id, _ := deps.Engine.View().Focused()
	return id
}

func TestInitializeDependencies_Success(t *testing.T) {
	deps := setupTestEnvironment(t)

	v := deps.Engine.View()
	assert.Equal(t, 9, v.Len())
	assert.Equal(t, idName, focused(deps))
	assert.Equal(t, "ready", text(t, deps, idStatus))
	assert.Contains(t, deps.Program.View(), headerText)
}

func TestInitializeDependencies_BadPolicy(t *testing.T) {
	paths, err := appctx.NewPaths(t.TempDir())
	require.NoError(t, err)

	cfg := domainConfig.DefaultConfig()
	cfg.Engine.GlobalEvents = "sideways"
	_, err = initializeDependencies(zap.NewNop(), paths, cfg)
	assert.Error(t, err)
}

func TestGallery_TypingUpdatesStatus(t *testing.T) {
	deps := setupTestEnvironment(t)

	typeText(deps, "bob")
	assert.Equal(t, "bob", deps.Engine.State().Name)
	assert.Equal(t, "name: bob", text(t, deps, idStatus))

	press(deps, tea.KeyEnter)
	assert.Equal(t, []string{"bob"}, deps.Engine.State().Submitted)
	assert.Equal(t, "hello, bob (1 submitted)", text(t, deps, idStatus))
}

func TestGallery_EmptySubmit(t *testing.T) {
	deps := setupTestEnvironment(t)

	press(deps, tea.KeyEnter)
	assert.Empty(t, deps.Engine.State().Submitted)
	assert.Equal(t, "name: must not be empty", text(t, deps, idStatus))
}

func TestGallery_FocusTraversal(t *testing.T) {
	deps := setupTestEnvironment(t)

	press(deps, tea.KeyTab)
	assert.Equal(t, idPort, focused(deps))
	press(deps, tea.KeyTab, tea.KeyTab, tea.KeyTab)
	assert.Equal(t, idName, focused(deps), "wraps past the last focusable widget")
	press(deps, tea.KeyShiftTab)
	assert.Equal(t, idAccent, focused(deps))
}

func TestGallery_NumberInput(t *testing.T) {
	deps := setupTestEnvironment(t)
	press(deps, tea.KeyTab)

	typeText(deps, "x1")
	assert.Equal(t, "80801", deps.Engine.State().Port)

	press(deps, tea.KeyEnter)
	assert.Equal(t, "port: must be within 1-65535", text(t, deps, idStatus))
	assert.Equal(t, idPort, focused(deps))

	press(deps, tea.KeyBackspace, tea.KeyBackspace)
	assert.Equal(t, "808", deps.Engine.State().Port)
	press(deps, tea.KeyEnter)
	assert.Equal(t, "listening on :808", text(t, deps, idStatus))
	assert.Equal(t, idTasks, focused(deps), "a valid port moves on")
}

func TestGallery_TasksDriveProgress(t *testing.T) {
	deps := setupTestEnvironment(t)
	require.NoError(t, deps.Engine.View().SetFocus(idTasks))

	press(deps, tea.KeyDown, tea.KeyDown)
	assert.Equal(t, 2, deps.Engine.State().Task)

	p, err := deps.Engine.View().Props(idProgress)
	require.NoError(t, err)
	done, _ := p.Float(props.AttrProgress)
	assert.InDelta(t, 0.5, done, 1e-9)
	assert.Equal(t, "task: compile", text(t, deps, idStatus))
}

func TestGallery_AccentRecoloursHeader(t *testing.T) {
	deps := setupTestEnvironment(t)
	require.NoError(t, deps.Engine.View().SetFocus(idAccent))

	press(deps, tea.KeyRight)
	assert.Equal(t, "magenta", deps.Engine.State().Accent)

	p, err := deps.Engine.View().Props(idHeader)
	require.NoError(t, err)
	assert.Equal(t, props.LightMagenta, p.Style().Foreground)
}

func TestGallery_Reset(t *testing.T) {
	deps := setupTestEnvironment(t)
	typeText(deps, "amy")
	press(deps, tea.KeyEnter)
	require.NoError(t, deps.Engine.View().SetFocus(idTasks))
	press(deps, tea.KeyDown)

	press(deps, tea.KeyCtrlR)

	s := deps.Engine.State()
	assert.Empty(t, s.Name)
	assert.Zero(t, s.Task)
	assert.Empty(t, s.Submitted)
	assert.Empty(t, deps.Program.Failure())

	value, err := deps.Engine.View().Value(idName)
	require.NoError(t, err)
	assert.Equal(t, "", value.One)
}

func TestGallery_Quit(t *testing.T) {
	deps := setupTestEnvironment(t)

	cmd := press(deps, tea.KeyEsc)
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.True(t, deps.Engine.Quitting())
}

func TestKeyMap(t *testing.T) {
	k := defaultKeyMap()

	msg, ok := k.Filter(event.Press(event.KeyTab))
	assert.True(t, ok)
	assert.Equal(t, cmdFocusNext, msg)

	msg, ok = k.Filter(event.Ctrl('r'))
	assert.True(t, ok)
	assert.Equal(t, cmdReset, msg)

	_, ok = k.Filter(event.Char('r'))
	assert.False(t, ok)

	assert.Equal(t, "tab next • shift+tab prev • ctrl+r reset • esc quit", k.HelpText())
}

func TestLoadConfig_WritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	repo := infraConfig.NewFileRepository(path, nil)

	cfg, err := loadConfig(context.Background(), repo, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, domainConfig.DefaultConfig(), cfg)
	assert.FileExists(t, path)
}

func TestLoadConfig_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("engine:\n  max_steps: -3\n"), 0600))

	_, err := loadConfig(context.Background(), infraConfig.NewFileRepository(path, nil), zap.NewNop())
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	paths, err := appctx.NewPaths(t.TempDir())
	require.NoError(t, err)

	log, err := newLogger(domainConfig.DefaultConfig().Log, paths, true)
	require.NoError(t, err)
	log.Debug("hello")
	require.NoError(t, log.Sync())

	assert.FileExists(t, paths.LogPath("realm.log"))
}

func TestThemeFrom(t *testing.T) {
	th := themeFrom(domainConfig.ThemeConfig{Focus: "#ff0000"})
	assert.Equal(t, "#ff0000", string(th.Focus))
	assert.NotEmpty(t, th.Border)
}
