// Package logger 構建 realm 宿主使用的 zap 日誌記錄器
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config 日誌配置
type Config struct {
	Level      string // debug, info, warn, error
	OutputPath string // 輪轉的 JSON 日誌文件，空值關閉
	MaxSize    int    // 單文件 MB 數
	MaxBackups int
	MaxAge     int // 天
	Compress   bool
	// Console 同時寫入 stderr。全屏終端程序佔用 tty 時
	// 應保持關閉。
	Console bool
}

// DefaultConfig 返回只寫 realm.log 的 info 級別配置
func DefaultConfig() Config {
	return Config{
		Level:      "info",
		OutputPath: "realm.log",
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
	}
}

// New 創建同時寫入各已配置輸出的日誌記錄器，
// 沒有輸出時丟棄所有日誌。
func New(cfg Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var cores []zapcore.Core

	if cfg.OutputPath != "" {
		fileWriter := zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.OutputPath,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		})
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderConfig),
			fileWriter,
			level,
		))
	}

	if cfg.Console {
		consoleEncoder := encoderConfig
		consoleEncoder.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(consoleEncoder),
			zapcore.Lock(os.Stderr),
			level,
		))
	}

	if len(cores) == 0 {
		return zap.NewNop(), nil
	}

	return zap.New(
		zapcore.NewTee(cores...),
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
	), nil
}

// NewDevelopment 返回 zap 開發環境日誌記錄器
func NewDevelopment() (*zap.Logger, error) {
	return zap.NewDevelopment()
}
