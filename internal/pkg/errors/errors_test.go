package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestWrap 檢查包裝後仍能取到原因
func TestWrap(t *testing.T) {
	baseErr := errors.New("base error")

	t.Run("keeps cause", func(t *testing.T) {
		wrapped := Wrap(baseErr, "TestError", "context")
		assert.Error(t, wrapped)
		assert.True(t, errors.Is(wrapped, baseErr))
	})

	t.Run("nil cause still yields an error", func(t *testing.T) {
		wrapped := Wrap(nil, "TestError", "context")
		assert.Error(t, wrapped)
		assert.Contains(t, wrapped.Error(), "TestError")
		assert.Contains(t, wrapped.Error(), "context")
	})

	t.Run("multi level", func(t *testing.T) {
		err1 := New("Level1", "base error")
		err2 := Wrap(err1, "Level2", "context 2")
		err3 := Wrap(err2, "Level3", "context 3")

		assert.True(t, errors.Is(err3, err1))
		assert.True(t, errors.Is(err3, err2))
		assert.Equal(t, "Level3", CodeOf(err3))
	})
}

func TestViewErrors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
		code     string
	}{
		{"duplicate", DuplicateID("a"), ErrDuplicateID, CodeDuplicateID},
		{"unknown", UnknownID("a"), ErrUnknownID, CodeUnknownID},
		{"not focusable", NotFocusable("a"), ErrNotFocusable, CodeNotFocusable},
		{"property", Property("input", "input-len", "must be positive"), ErrProperty, CodeProperty},
		{"overflow", ProcessingOverflow(3, 1), ErrProcessingOverflow, CodeProcessingOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, errors.Is(tt.err, tt.sentinel))
			assert.Equal(t, tt.code, CodeOf(tt.err))
		})
	}
}

func TestNotFocusableIsUnknownID(t *testing.T) {
	err := NotFocusable("label")
	assert.True(t, errors.Is(err, ErrUnknownID))
	assert.Contains(t, err.Error(), `"label"`)
}

func TestPropertyMessage(t *testing.T) {
	assert.Contains(t, Property("list", "scroll-step", "must be > 0").Error(), "list.scroll-step")
	assert.Contains(t, Property("radio", "", "no options").Error(), "radio: no options")
}

func TestCodeOfPlainError(t *testing.T) {
	assert.Equal(t, "", CodeOf(errors.New("plain")))
	assert.Equal(t, "", CodeOf(nil))
}
