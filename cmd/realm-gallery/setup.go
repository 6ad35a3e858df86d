package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	domainConfig "github.com/Yat-Muk/realm/internal/domain/config"
	infraConfig "github.com/Yat-Muk/realm/internal/infra/config"
	"github.com/Yat-Muk/realm/internal/pkg/appctx"
	"github.com/Yat-Muk/realm/internal/pkg/logger"
	"github.com/Yat-Muk/realm/internal/tui/style"
	"github.com/Yat-Muk/realm/internal/tui/terminal"
	"github.com/Yat-Muk/realm/internal/tui/update"
	"github.com/Yat-Muk/realm/internal/tui/view"
)

// AppDependencies main 運行展示程序所需的全部依賴
type AppDependencies struct {
	Log     *zap.Logger
	Paths   *appctx.Paths
	Config  *domainConfig.Config
	Engine  *update.Engine[galleryState]
	Program *terminal.Program[galleryState]
}

// loadConfig 讀取配置文件，首次運行時寫入默認配置
func loadConfig(ctx context.Context, repo *infraConfig.FileRepository, log *zap.Logger) (*domainConfig.Config, error) {
	_, statErr := os.Stat(repo.Path())
	cfg, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if errors.Is(statErr, os.ErrNotExist) {
		if err := repo.Save(ctx, cfg); err != nil {
			log.Warn("save default config", zap.Error(err))
		}
	}
	return cfg, nil
}

// newLogger 按 cfg 構建文件日誌記錄器。終端程序佔用屏幕，
// 因此不輸出到控制台。
func newLogger(cfg domainConfig.LogConfig, paths *appctx.Paths, debug bool) (*zap.Logger, error) {
	lc := logger.DefaultConfig()
	lc.Level = cfg.Level
	lc.OutputPath = paths.LogPath(cfg.File)
	lc.MaxSize = cfg.MaxSizeMB
	lc.MaxBackups = cfg.MaxBackups
	lc.MaxAge = cfg.MaxAgeDays
	lc.Compress = cfg.Compress
	lc.Console = false
	if debug {
		lc.Level = "debug"
	}
	return logger.New(lc)
}

func themeFrom(cfg domainConfig.ThemeConfig) style.Theme {
	return style.DefaultTheme().Override(style.Theme{
		Focus:  lipgloss.Color(cfg.Focus),
		Border: lipgloss.Color(cfg.Border),
		Muted:  lipgloss.Color(cfg.Muted),
		Accent: lipgloss.Color(cfg.Accent),
	})
}

func initializeDependencies(log *zap.Logger, paths *appctx.Paths, cfg *domainConfig.Config) (*AppDependencies, error) {
	policy, ok := view.ParseGlobalPolicy(cfg.Engine.GlobalEvents)
	if !ok {
		return nil, fmt.Errorf("unknown global event policy %q", cfg.Engine.GlobalEvents)
	}

	v := view.New(
		view.WithLogger(log.Named("view")),
		view.WithGlobalPolicy(policy),
	)

	g := newGallery(log.Named("gallery"))
	if err := g.mount(v); err != nil {
		return nil, fmt.Errorf("mount gallery: %w", err)
	}

	engine := update.New(v, galleryState{Accent: accents[0]}, g.reduce,
		update.WithLogger(log.Named("engine")),
		update.WithMaxSteps(cfg.Engine.MaxSteps),
	)

	program := terminal.New(engine,
		terminal.WithLogger(log.Named("terminal")),
		terminal.WithTheme(themeFrom(cfg.Theme)),
		terminal.WithTickInterval(cfg.Terminal.TickInterval),
		terminal.WithStatusLine(cfg.Terminal.StatusLine),
		terminal.WithKeyFilter(g.keys.Filter),
	)

	return &AppDependencies{
		Log:     log,
		Paths:   paths,
		Config:  cfg,
		Engine:  engine,
		Program: program,
	}, nil
}
