// Package appctx 解析 realm 宿主使用的目錄
package appctx

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnvHome 覆蓋默認基礎目錄
const EnvHome = "REALM_HOME"

// Paths 宿主使用的路徑
type Paths struct {
	BaseDir    string
	ConfigFile string
	LogDir     string
	LogFile    string
}

// NewPaths 在 baseDir 下解析路徑並創建目錄。
// baseDir 為空時依次使用 $REALM_HOME 與 ~/.realm。
func NewPaths(baseDir string) (*Paths, error) {
	if baseDir == "" {
		baseDir = os.Getenv(EnvHome)
	}
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		baseDir = filepath.Join(home, ".realm")
	}

	absPath, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("resolve absolute path: %w", err)
	}

	paths := &Paths{
		BaseDir:    absPath,
		ConfigFile: filepath.Join(absPath, "config.yaml"),
		LogDir:     filepath.Join(absPath, "logs"),
	}
	paths.LogFile = filepath.Join(paths.LogDir, "realm.log")

	for dir, perm := range map[string]os.FileMode{paths.BaseDir: 0700, paths.LogDir: 0755} {
		if err := os.MkdirAll(dir, perm); err != nil {
			return nil, fmt.Errorf("create dir %s: %w", dir, err)
		}
	}
	return paths, nil
}

// LogPath 定位配置中的日誌文件名，絕對路徑保持不變
func (p *Paths) LogPath(name string) string {
	if name == "" {
		return p.LogFile
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(p.LogDir, name)
}
