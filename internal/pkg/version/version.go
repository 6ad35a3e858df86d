// Package version 保存通過 -ldflags 設置的構建信息
package version

import (
	"fmt"
	"path"
	"runtime"
	"runtime/debug"
	"strings"
)

// Module 構建二進制文件使用的導入路徑
const Module = "github.com/Yat-Muk/realm"

var (
	Version   = "dev"
	BuildTime = ""
	GoVersion = runtime.Version()
	GitCommit = ""
)

// terminalStack Info 按順序報告版本的模塊
var terminalStack = []string{
	"github.com/charmbracelet/bubbletea",
	"github.com/charmbracelet/bubbles",
	"github.com/charmbracelet/lipgloss",
}

var readBuildInfo = debug.ReadBuildInfo

func Short() string {
	if GitCommit != "" {
		return fmt.Sprintf("v%s (%s)", Version, GitCommit)
	}
	return "v" + Version
}

// Stack 為二進制中鏈接的每個終端庫返回 "名稱 版本"。
// 被替換的模塊報告替換後的版本，構建信息中缺失的模塊跳過。
func Stack() []string {
	info, ok := readBuildInfo()
	if !ok {
		return nil
	}
	deps := make(map[string]string, len(info.Deps))
	for _, d := range info.Deps {
		v := d.Version
		if d.Replace != nil {
			v = d.Replace.Version
		}
		deps[d.Path] = v
	}

	var out []string
	for _, p := range terminalStack {
		if v, ok := deps[p]; ok {
			out = append(out, path.Base(p)+" "+v)
		}
	}
	return out
}

func Info() string {
	var b strings.Builder
	fmt.Fprintf(&b, "realm v%s (%s)\nBuild Time: %s\nGo Version: %s\nGit Commit: %s",
		Version, Module, BuildTime, GoVersion, GitCommit)
	if stack := Stack(); len(stack) > 0 {
		fmt.Fprintf(&b, "\nTerminal: %s", strings.Join(stack, ", "))
	}
	return b.String()
}
