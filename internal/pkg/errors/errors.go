package errors

import (
	"errors"
	"fmt"
)

// 錯誤碼
const (
	CodeDuplicateID        = "DuplicateId"
	CodeUnknownID          = "UnknownId"
	CodeNotFocusable       = "NotFocusable"
	CodeProperty           = "PropertyError"
	CodeProcessingOverflow = "ProcessingOverflow"
	CodeInvalidComponent   = "InvalidComponent"
	CodeConfig             = "ConfigError"
)

// 預定義錯誤
var (
	// View 記錄
	ErrDuplicateID = errors.New("component id already mounted")
	ErrUnknownID   = errors.New("component id not mounted")
	// 不可聚焦的目標按未知焦點目標報告
	ErrNotFocusable     = fmt.Errorf("component is not focusable: %w", ErrUnknownID)
	ErrInvalidComponent = errors.New("invalid component")

	// 屬性
	ErrProperty = errors.New("invalid properties")

	// 更新引擎
	ErrProcessingOverflow = errors.New("message cascade exceeded processing bound")

	// 配置
	ErrConfigInvalid     = errors.New("configuration is invalid")
	ErrConfigParseFailed = errors.New("failed to parse configuration")
)

// Error 帶錯誤碼與可選原因的錯誤
type Error struct {
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New 創建帶錯誤碼的錯誤
func New(code, message string) error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Wrap 為 err 附加錯誤碼與消息
func Wrap(err error, code, message string) error {
	return &Error{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// DuplicateID 報告以已存在的 id 掛載
func DuplicateID(id string) error {
	return Wrap(ErrDuplicateID, CodeDuplicateID, fmt.Sprintf("component %q", id))
}

// UnknownID 報告對未掛載 id 的操作
func UnknownID(id string) error {
	return Wrap(ErrUnknownID, CodeUnknownID, fmt.Sprintf("component %q", id))
}

// NotFocusable 報告對拒絕聚焦組件的聚焦請求
func NotFocusable(id string) error {
	return Wrap(ErrNotFocusable, CodeNotFocusable, fmt.Sprintf("component %q", id))
}

// InvalidComponent 報告無法滿足的掛載請求
func InvalidComponent(id, reason string) error {
	return Wrap(ErrInvalidComponent, CodeInvalidComponent, fmt.Sprintf("component %q: %s", id, reason))
}

// Property 報告組件種類的無效屬性
func Property(kind, attr, reason string) error {
	msg := fmt.Sprintf("%s: %s", kind, reason)
	if attr != "" {
		msg = fmt.Sprintf("%s.%s: %s", kind, attr, reason)
	}
	return Wrap(ErrProperty, CodeProperty, msg)
}

// ProcessingOverflow 報告分發觸及步數上限
func ProcessingOverflow(limit, pending int) error {
	return Wrap(ErrProcessingOverflow, CodeProcessingOverflow,
		fmt.Sprintf("processed %d messages, %d still queued", limit, pending))
}

// CodeOf 返回鏈中最外層錯誤的錯誤碼，沒有則返回 ""
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
