package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
)

func serve(t *testing.T, h gin.HandlerFunc) Response {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/", h)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestSuccess(t *testing.T) {
	resp := serve(t, func(c *gin.Context) {
		Success(c, gin.H{"id": "1"})
	})

	assert.Equal(t, 0, resp.Code)
	assert.Equal(t, "success", resp.Message)
	assert.Equal(t, map[string]interface{}{"id": "1"}, resp.Data)
}

func TestError(t *testing.T) {
	t.Run("业务错误返回错误码和提示", func(t *testing.T) {
		resp := serve(t, func(c *gin.Context) {
			Error(c, apperrors.ErrNotFound.WithDetail("book 7"))
		})
		assert.Equal(t, apperrors.ErrCodeNotFound, resp.Code)
		assert.Contains(t, resp.Message, "book 7")
		assert.Nil(t, resp.Data)
	})

	t.Run("未知错误不暴露细节", func(t *testing.T) {
		resp := serve(t, func(c *gin.Context) {
			Error(c, errors.New("disk on fire"))
		})
		assert.Equal(t, apperrors.ErrCodeInternal, resp.Code)
		assert.NotContains(t, resp.Message, "disk on fire")
	})

	t.Run("自定义错误码", func(t *testing.T) {
		resp := serve(t, func(c *gin.Context) {
			ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误")
		})
		assert.Equal(t, apperrors.ErrCodeBindError, resp.Code)
		assert.Equal(t, "参数错误", resp.Message)
	})
}
