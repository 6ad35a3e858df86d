// Package config 以 YAML 文件保存 realm 配置
package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	domainConfig "github.com/Yat-Muk/realm/internal/domain/config"
	"github.com/Yat-Muk/realm/internal/pkg/errors"
)

// FileRepository 基於文件的 domainConfig.Repository 實現。
// 加載的配置會被緩存，直到文件修改時間變化。
type FileRepository struct {
	filePath     string
	mu           sync.RWMutex
	fileMu       sync.Mutex // 串行化文件 I/O
	logger       *zap.Logger
	cachedConfig *domainConfig.Config
	lastModTime  time.Time
}

var _ domainConfig.Repository = (*FileRepository)(nil)

func NewFileRepository(path string, logger *zap.Logger) *FileRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileRepository{
		filePath: path,
		logger:   logger,
	}
}

// Path 返回倉庫讀寫的文件
func (r *FileRepository) Path() string {
	return r.filePath
}

// Load 返回磁盤上的配置，文件不存在時返回默認配置。
// 返回值是副本，調用方可以修改。
func (r *FileRepository) Load(ctx context.Context) (*domainConfig.Config, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	stat, err := os.Stat(r.filePath)
	if os.IsNotExist(err) {
		r.mu.RUnlock()
		r.logger.Info("config file not found, using defaults", zap.String("path", r.filePath))
		return domainConfig.DefaultConfig(), nil
	}
	if err != nil {
		r.mu.RUnlock()
		return nil, fmt.Errorf("stat config file: %w", err)
	}
	if r.cachedConfig != nil && !stat.ModTime().After(r.lastModTime) {
		cfg := r.cachedConfig.DeepCopy()
		r.mu.RUnlock()
		r.logger.Debug("config unchanged, using cache")
		return cfg, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	// 等待鎖期間可能已有其他調用方重新加載
	stat, err = os.Stat(r.filePath)
	if os.IsNotExist(err) {
		return domainConfig.DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("stat config file: %w", err)
	}
	if r.cachedConfig != nil && !stat.ModTime().After(r.lastModTime) {
		return r.cachedConfig.DeepCopy(), nil
	}

	r.fileMu.Lock()
	content, err := os.ReadFile(r.filePath)
	r.fileMu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &domainConfig.Config{}
	if err := yaml.Unmarshal(content, cfg); err != nil {
		return nil, errors.Wrap(errors.ErrConfigParseFailed, errors.CodeConfig,
			fmt.Sprintf("%s: %v", r.filePath, err))
	}
	cfg.FillDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r.cachedConfig = cfg.DeepCopy()
	r.lastModTime = stat.ModTime()

	r.logger.Info("config loaded",
		zap.String("path", r.filePath),
		zap.Time("mod_time", r.lastModTime),
	)
	return cfg, nil
}

// Save 校驗 cfg 並原子替換文件
func (r *FileRepository) Save(ctx context.Context, cfg *domainConfig.Config) error {
	if cfg == nil {
		return errors.New(errors.CodeConfig, "config is nil")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	r.fileMu.Lock()
	defer r.fileMu.Unlock()

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	dir := filepath.Dir(r.filePath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	tmpFile, err := os.CreateTemp(dir, "config.*.yaml.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmpFile.Name()

	written := false
	defer func() {
		if !written {
			tmpFile.Close()
			os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, r.filePath); err != nil {
		return fmt.Errorf("replace config file: %w", err)
	}
	if err := os.Chmod(r.filePath, 0600); err != nil {
		r.logger.Warn("chmod config file", zap.Error(err))
	}
	written = true

	r.mu.Lock()
	r.cachedConfig = cfg.DeepCopy()
	if stat, err := os.Stat(r.filePath); err == nil {
		r.lastModTime = stat.ModTime()
	}
	r.mu.Unlock()

	return nil
}
