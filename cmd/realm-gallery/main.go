package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/debug"
	"syscall"

	"go.uber.org/zap"

	infraConfig "github.com/Yat-Muk/realm/internal/infra/config"
	"github.com/Yat-Muk/realm/internal/pkg/appctx"
	"github.com/Yat-Muk/realm/internal/pkg/version"
	"github.com/Yat-Muk/realm/internal/tui/terminal"
)

func main() {
	var (
		workDir    = flag.String("dir", "", "working directory (default: $REALM_HOME or ~/.realm)")
		configPath = flag.String("config", "", "config file (default: <dir>/config.yaml)")
		showVer    = flag.Bool("version", false, "print version information")
		debugFlag  = flag.Bool("debug", false, "log at debug level")
	)
	flag.Parse()

	if *showVer {
		fmt.Println(version.Info())
		os.Exit(0)
	}

	paths, err := appctx.NewPaths(*workDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal: resolve paths: %v\n", err)
		os.Exit(1)
	}
	if *configPath == "" {
		*configPath = paths.ConfigFile
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo := infraConfig.NewFileRepository(*configPath, nil)
	cfg, err := loadConfig(ctx, repo, zap.NewNop())
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}

	log, err := newLogger(cfg.Log, paths, *debugFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fatal: init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	redirectStdErr(filepath.Join(paths.LogDir, "stderr.log"))

	log.Info("realm gallery starting",
		zap.String("version", version.Version),
		zap.String("commit", version.GitCommit),
		zap.String("config", *configPath),
	)

	deps, err := initializeDependencies(log, paths, cfg)
	if err != nil {
		log.Fatal("init dependencies", zap.Error(err))
	}

	if err := runTUI(ctx, deps); err != nil {
		log.Error("terminal program failed", zap.Error(err))
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}
	stats := deps.Engine.Stats()
	log.Info("realm gallery stopped",
		zap.Int("dispatches", stats.Dispatches),
		zap.Int("messages", stats.Messages),
		zap.Int("overflows", stats.Overflows),
	)
}

func runTUI(ctx context.Context, deps *AppDependencies) (err error) {
	defer func() {
		if r := recover(); r != nil {
			deps.Log.Error("panic", zap.Any("error", r), zap.String("stack", string(debug.Stack())))
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return terminal.Run(ctx, deps.Program, deps.Config.Terminal.AltScreen)
}

func redirectStdErr(filename string) {
	_ = os.MkdirAll(filepath.Dir(filename), 0755)
	f, err := os.OpenFile(filename, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0600)
	if err == nil {
		os.Stderr = f
	}
}
