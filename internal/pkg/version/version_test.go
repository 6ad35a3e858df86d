package version

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShort(t *testing.T) {
	oldVersion, oldCommit := Version, GitCommit
	t.Cleanup(func() { Version, GitCommit = oldVersion, oldCommit })

	Version, GitCommit = "1.2.0", ""
	assert.Equal(t, "v1.2.0", Short())

	GitCommit = "abc123"
	assert.Equal(t, "v1.2.0 (abc123)", Short())
}

func stubBuildInfo(t *testing.T, info *debug.BuildInfo, ok bool) {
	t.Helper()
	old := readBuildInfo
	t.Cleanup(func() { readBuildInfo = old })
	readBuildInfo = func() (*debug.BuildInfo, bool) { return info, ok }
}

func TestStack(t *testing.T) {
	stubBuildInfo(t, &debug.BuildInfo{
		Main: debug.Module{Path: Module},
		Deps: []*debug.Module{
			{Path: "golang.org/x/sys", Version: "v0.30.0"},
			{Path: "github.com/charmbracelet/bubbles", Version: "v0.21.0"},
			{Path: "github.com/charmbracelet/bubbletea", Version: "v1.3.4"},
			{
				Path:    "github.com/charmbracelet/lipgloss",
				Version: "v1.1.0",
				Replace: &debug.Module{Path: "../lipgloss", Version: "v1.1.1-local"},
			},
		},
	}, true)

	assert.Equal(t, []string{"bubbletea v1.3.4", "bubbles v0.21.0", "lipgloss v1.1.1-local"}, Stack())
	assert.Contains(t, Info(), "\nTerminal: bubbletea v1.3.4, bubbles v0.21.0, lipgloss v1.1.1-local")
}

func TestStack_NoBuildInfo(t *testing.T) {
	stubBuildInfo(t, nil, false)
	assert.Nil(t, Stack())
	assert.NotContains(t, Info(), "Terminal:")
}

func TestInfo(t *testing.T) {
	info := Info()
	assert.Contains(t, info, "realm v"+Version+" ("+Module+")")
	assert.Contains(t, info, GoVersion)
}
