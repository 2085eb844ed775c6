package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWrapKeepsCode(t *testing.T) {
	base := NotFound("quest not found")
	wrapped := Wrap(fmt.Errorf("lookup: %w", base), "퀘스트 조회 실패")

	assert.Equal(t, ErrNotFound, CodeOf(wrapped))
	assert.True(t, HasCode(wrapped, ErrNotFound))
	assert.Nil(t, Wrap(nil, "nothing"))
	assert.Equal(t, ErrInternal, CodeOf(Wrap(New("boom"), "x")))
}

func TestToHTTPError(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message interface{}
	}{
		{"invalid argument", InvalidArgument("todo_text is required"), http.StatusBadRequest, "todo_text is required"},
		{"conflict", Conflict("email already registered"), http.StatusConflict, "email already registered"},
		{"internal hides cause", Internal("db down", New("dial tcp")), http.StatusInternalServerError, "Internal Server Error"},
		{"plain error", New("boom"), http.StatusInternalServerError, "Internal Server Error"},
		{"echo passthrough", echo.NewHTTPError(http.StatusTeapot, "tea"), http.StatusTeapot, "tea"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			he := ToHTTPError(tt.err)
			assert.Equal(t, tt.status, he.Code)
			assert.Equal(t, tt.message, he.Message)
		})
	}
	assert.Nil(t, ToHTTPError(nil))
}

func TestFromHTTPError(t *testing.T) {
	err := FromHTTPError(echo.NewHTTPError(http.StatusUnauthorized, "missing token"))
	assert.Equal(t, ErrUnauthenticated, CodeOf(err))
	assert.Equal(t, "missing token", err.Error())
}

func TestLogErrorLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	LogError(logger, InvalidArgument("bad"), "client")
	LogError(logger, Internal("db", New("down")), "server")
	LogError(logger, nil, "ignored")

	entries := logs.All()
	if assert.Len(t, entries, 2) {
		assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
		assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
		assert.Equal(t, ErrInternal, entries[1].ContextMap()["error_code"])
	}
}
