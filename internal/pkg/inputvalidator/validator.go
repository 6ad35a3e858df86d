// Package inputvalidator 校驗通過文本輸入框提交的值
package inputvalidator

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	MaxNameLength = 32
	MinPort       = 1
	MaxPort       = 65535
)

// ValidationError 指明出錯的字段
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateLength 把輸入限制在 maxLen 個字符以內
func ValidateLength(input string, maxLen int, fieldName string) error {
	if n := utf8.RuneCountInString(input); n > maxLen {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("too long (max %d characters, got %d)", maxLen, n),
		}
	}
	return nil
}

// ValidateName 接受非空白的可打印名稱
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Field: "name", Message: "must not be empty"}
	}
	if err := ValidateLength(name, MaxNameLength, "name"); err != nil {
		return err
	}
	for _, r := range name {
		if !unicode.IsPrint(r) {
			return &ValidationError{Field: "name", Message: fmt.Sprintf("contains control character %U", r)}
		}
	}
	return nil
}

// ParsePort 解析 TCP 端口號
func ParsePort(input string) (int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, &ValidationError{Field: "port", Message: "must not be empty"}
	}
	port, err := strconv.Atoi(input)
	if err != nil {
		return 0, &ValidationError{Field: "port", Message: "must be a number"}
	}
	if port < MinPort || port > MaxPort {
		return 0, &ValidationError{
			Field:   "port",
			Message: fmt.Sprintf("must be within %d-%d", MinPort, MaxPort),
		}
	}
	return port, nil
}

// SanitizeInput 移除控制字符
func SanitizeInput(input string) string {
	var result strings.Builder
	for _, r := range input {
		if r >= 32 && r != 127 {
			result.WriteRune(r)
		}
	}
	return result.String()
}
