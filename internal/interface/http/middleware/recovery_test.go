package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
	"github.com/xiebiao/bookshelf/pkg/logger"
	"github.com/xiebiao/bookshelf/pkg/response"
)

func TestRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	log := logger.NewWithWriter(&buf, slog.LevelInfo, "json")

	r := gin.New()
	r.Use(AccessLog(log), Recovery(log))
	r.GET("/boom", func(*gin.Context) {
		panic("secret detail")
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, apperrors.ErrCodeInternal, resp.Code)
	assert.NotContains(t, resp.Message, "secret detail")

	// panic日志带上请求ID
	assert.Contains(t, buf.String(), `"msg":"panic recovered"`)
	assert.Contains(t, buf.String(), `"request_id":"req-42"`)
	assert.Contains(t, buf.String(), "secret detail")
}

func TestGetRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var got string
	r := gin.New()
	r.Use(AccessLog(logger.Discard()))
	r.GET("/", func(c *gin.Context) {
		got = GetRequestID(c)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "req-7")
	r.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, "req-7", got)
}
