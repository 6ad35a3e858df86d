package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Yat-Muk/realm/internal/pkg/errors"
)

// ConfigVersionLatest 當前構建寫入的配置結構版本
const ConfigVersionLatest = 1

// Repository 加載與保存配置
type Repository interface {
	Load(ctx context.Context) (*Config, error)
	Save(ctx context.Context, cfg *Config) error
}

// Config realm 宿主的運行時配置
type Config struct {
	Version  int            `yaml:"version"`
	Engine   EngineConfig   `yaml:"engine"`
	Log      LogConfig      `yaml:"log"`
	Terminal TerminalConfig `yaml:"terminal"`
	Theme    ThemeConfig    `yaml:"theme"`
}

// EngineConfig 調整更新引擎與事件路由
type EngineConfig struct {
	// MaxSteps 單次分發處理的消息上限
	MaxSteps int `yaml:"max_steps"`
	// GlobalEvents 取值 "broadcast" 或 "focus"
	GlobalEvents string `yaml:"global_events"`
}

// LogConfig 日誌文件配置
type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// TerminalConfig 終端宿主配置
type TerminalConfig struct {
	AltScreen    bool          `yaml:"alt_screen"`
	TickInterval time.Duration `yaml:"tick_interval"`
	StatusLine   bool          `yaml:"status_line"`
}

// ThemeConfig 覆蓋主題顏色，空值保留默認
type ThemeConfig struct {
	Focus  string `yaml:"focus,omitempty"`
	Border string `yaml:"border,omitempty"`
	Muted  string `yaml:"muted,omitempty"`
	Accent string `yaml:"accent,omitempty"`
}

// DefaultConfig 返回文件不存在時使用的配置
func DefaultConfig() *Config {
	return &Config{
		Version: ConfigVersionLatest,
		Engine: EngineConfig{
			MaxSteps:     16,
			GlobalEvents: "broadcast",
		},
		Log: LogConfig{
			Level:      "info",
			File:       "realm.log",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
			Compress:   true,
		},
		Terminal: TerminalConfig{
			AltScreen:    true,
			TickInterval: 100 * time.Millisecond,
			StatusLine:   true,
		},
	}
}

// FillDefaults 為所有有默認值的零值字段賦值，
// 用於補全舊版本寫入或手工編輯的文件。
func (c *Config) FillDefaults() {
	def := DefaultConfig()
	if c.Version == 0 {
		c.Version = def.Version
	}
	if c.Engine.MaxSteps == 0 {
		c.Engine.MaxSteps = def.Engine.MaxSteps
	}
	if c.Engine.GlobalEvents == "" {
		c.Engine.GlobalEvents = def.Engine.GlobalEvents
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
	if c.Log.File == "" {
		c.Log.File = def.Log.File
	}
	if c.Log.MaxSizeMB == 0 {
		c.Log.MaxSizeMB = def.Log.MaxSizeMB
	}
	if c.Log.MaxAgeDays == 0 {
		c.Log.MaxAgeDays = def.Log.MaxAgeDays
	}
	if c.Terminal.TickInterval == 0 {
		c.Terminal.TickInterval = def.Terminal.TickInterval
	}
}

// Validate 檢查取值範圍
func (c *Config) Validate() error {
	var problems []string

	if c.Version < 1 || c.Version > ConfigVersionLatest {
		problems = append(problems, fmt.Sprintf("version %d is not supported", c.Version))
	}
	if c.Engine.MaxSteps < 1 || c.Engine.MaxSteps > 10000 {
		problems = append(problems, fmt.Sprintf("engine.max_steps must be within [1, 10000], got %d", c.Engine.MaxSteps))
	}
	switch c.Engine.GlobalEvents {
	case "broadcast", "focus":
	default:
		problems = append(problems, fmt.Sprintf("engine.global_events must be broadcast or focus, got %q", c.Engine.GlobalEvents))
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("log.level %q is unknown", c.Log.Level))
	}
	if c.Log.MaxSizeMB < 1 || c.Log.MaxSizeMB > 100 {
		problems = append(problems, "log.max_size_mb must be within [1, 100]")
	}
	if c.Log.MaxBackups < 0 || c.Log.MaxBackups > 30 {
		problems = append(problems, "log.max_backups must be within [0, 30]")
	}
	if c.Log.MaxAgeDays < 1 || c.Log.MaxAgeDays > 365 {
		problems = append(problems, "log.max_age_days must be within [1, 365]")
	}
	if c.Terminal.TickInterval < 0 {
		problems = append(problems, "terminal.tick_interval must not be negative")
	} else if c.Terminal.TickInterval > 0 && c.Terminal.TickInterval < 10*time.Millisecond {
		problems = append(problems, "terminal.tick_interval must be at least 10ms")
	}

	if len(problems) > 0 {
		return errors.Wrap(errors.ErrConfigInvalid, errors.CodeConfig, strings.Join(problems, "; "))
	}
	return nil
}

// DeepCopy 返回獨立副本
func (c *Config) DeepCopy() *Config {
	if c == nil {
		return nil
	}
	out := *c
	return &out
}
