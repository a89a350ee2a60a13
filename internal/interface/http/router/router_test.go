package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookshelf/internal/application/inventory"
	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/internal/infrastructure/config"
	"github.com/xiebiao/bookshelf/internal/infrastructure/persistence/memory"
	"github.com/xiebiao/bookshelf/internal/interface/http/dto"
	"github.com/xiebiao/bookshelf/internal/interface/http/handler"
	"github.com/xiebiao/bookshelf/internal/interface/http/middleware"
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
	"github.com/xiebiao/bookshelf/pkg/logger"
)

// Response 统一响应结构（data延迟解析）
type Response struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	cfg := &config.Config{
		Server:  config.ServerConfig{Mode: gin.TestMode},
		Tracing: config.TracingConfig{ServiceName: "bookshelf-test"},
		CORS: config.CORSConfig{
			Enabled:      true,
			AllowOrigins: []string{"http://localhost:3000"},
			AllowMethods: []string{"GET", "PUT"},
		},
	}
	svc := book.NewService(memory.NewBookRepository(), book.NewSequenceGenerator())
	h := handler.NewWorkbenchHandler(inventory.NewWorkbench(svc, logger.Discard()))

	r, err := NewRouter(cfg, h, logger.Discard())
	require.NoError(t, err, "创建路由失败")
	return r
}

// doJSON 发送请求并解析统一响应
func doJSON(t *testing.T, r http.Handler, method, url string, body interface{}) *Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body), "JSON序列化失败")
	}
	req := httptest.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code, "业务错误也返回200: %s", w.Body.String())

	var resp Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "解析JSON响应失败: %s", w.Body.String())
	return &resp
}

func decodeWorkbench(t *testing.T, resp *Response) dto.WorkbenchResponse {
	t.Helper()
	require.Equal(t, 0, resp.Code, resp.Message)

	var data dto.WorkbenchResponse
	require.NoError(t, json.Unmarshal(resp.Data, &data), "解析工作台快照失败")
	return data
}

func setField(t *testing.T, r http.Handler, field, value string) dto.WorkbenchResponse {
	t.Helper()
	return decodeWorkbench(t, doJSON(t, r, http.MethodPut, "/api/v1/form/fields/"+field, map[string]string{"value": value}))
}

func addBook(t *testing.T, r http.Handler, title, author, genre, price string) dto.WorkbenchResponse {
	t.Helper()
	setField(t, r, "title", title)
	setField(t, r, "author", author)
	setField(t, r, "genre", genre)
	setField(t, r, "price", price)
	return decodeWorkbench(t, doJSON(t, r, http.MethodPost, "/api/v1/form/submit", nil))
}

func TestPing(t *testing.T) {
	r := newTestRouter(t)

	resp := doJSON(t, r, http.MethodGet, "/ping", nil)
	assert.Equal(t, 0, resp.Code)
	assert.Contains(t, string(resp.Data), "pong")
}

func TestWorkbenchAPI_ExampleScenario(t *testing.T) {
	r := newTestRouter(t)

	v := decodeWorkbench(t, doJSON(t, r, http.MethodGet, "/api/v1/workbench", nil))
	assert.Equal(t, "create", v.Mode)
	assert.Equal(t, inventory.HeadingCreate, v.Heading)
	assert.Equal(t, inventory.EmptyMessage, v.EmptyMessage)
	assert.NotNil(t, v.Books, "空列表应序列化为[]")

	v = addBook(t, r, "A", "X", "Fiction", "10")
	require.Len(t, v.Books, 1)
	id := v.Books[0].ID
	assert.Equal(t, "$10", v.Books[0].PriceLabel)
	assert.Empty(t, v.EmptyMessage)

	// 编辑：追加版次并修改价格
	v = decodeWorkbench(t, doJSON(t, r, http.MethodPost, "/api/v1/form/load/"+id, nil))
	assert.Equal(t, "edit", v.Mode)
	assert.Equal(t, id, v.EditingID)
	assert.Equal(t, inventory.SubmitLabelEdit, v.SubmitLabel)

	doJSON(t, r, http.MethodPut, "/api/v1/form/edition/fields/year", map[string]string{"value": "2000"})
	doJSON(t, r, http.MethodPut, "/api/v1/form/edition/fields/isbn", map[string]string{"value": "111"})
	v = decodeWorkbench(t, doJSON(t, r, http.MethodPost, "/api/v1/form/editions", nil))
	require.Len(t, v.Form.Editions, 1)
	assert.Equal(t, "2000 - 111", v.Form.Editions[0].Label)
	assert.Empty(t, v.EditionDraft.Year)

	setField(t, r, "price", "12")
	v = decodeWorkbench(t, doJSON(t, r, http.MethodPost, "/api/v1/form/submit", nil))

	require.Len(t, v.Books, 1)
	assert.Equal(t, 1, v.Total)
	assert.Equal(t, id, v.Books[0].ID)
	assert.Equal(t, "12", v.Books[0].Price)
	assert.Equal(t, "Fiction", v.Books[0].Genre)
	require.Len(t, v.Books[0].Editions, 1)
	assert.Equal(t, "111", v.Books[0].Editions[0].ISBN)
	assert.Equal(t, "create", v.Mode)
}

func TestWorkbenchAPI_Errors(t *testing.T) {
	r := newTestRouter(t)

	t.Run("缺少必填字段", func(t *testing.T) {
		setField(t, r, "title", "A")
		resp := doJSON(t, r, http.MethodPost, "/api/v1/form/submit", nil)
		assert.Equal(t, apperrors.ErrCodeRequiredFields, resp.Code)
		assert.Contains(t, resp.Message, "author, genre, price")
		doJSON(t, r, http.MethodPost, "/api/v1/form/reset", nil)
	})

	t.Run("未知字段", func(t *testing.T) {
		resp := doJSON(t, r, http.MethodPut, "/api/v1/form/fields/publisher", map[string]string{"value": "x"})
		assert.Equal(t, apperrors.ErrCodeUnknownField, resp.Code)
	})

	t.Run("不支持的分类", func(t *testing.T) {
		resp := doJSON(t, r, http.MethodPut, "/api/v1/form/fields/genre", map[string]string{"value": "Horror"})
		assert.Equal(t, apperrors.ErrCodeInvalidGenre, resp.Code)
	})

	t.Run("价格必须是数字", func(t *testing.T) {
		resp := doJSON(t, r, http.MethodPut, "/api/v1/form/fields/price", map[string]string{"value": "ten"})
		assert.Equal(t, apperrors.ErrCodeBindError, resp.Code)
	})

	t.Run("年份必须是数字", func(t *testing.T) {
		resp := doJSON(t, r, http.MethodPut, "/api/v1/form/edition/fields/year", map[string]string{"value": "MMX"})
		assert.Equal(t, apperrors.ErrCodeBindError, resp.Code)
	})

	t.Run("编辑不存在的图书", func(t *testing.T) {
		resp := doJSON(t, r, http.MethodPost, "/api/v1/form/load/404", nil)
		assert.Equal(t, apperrors.ErrCodeBookNotFound, resp.Code)

		resp = doJSON(t, r, http.MethodGet, "/api/v1/books/404", nil)
		assert.Equal(t, apperrors.ErrCodeBookNotFound, resp.Code)
	})

	t.Run("版次下标不是整数", func(t *testing.T) {
		resp := doJSON(t, r, http.MethodDelete, "/api/v1/form/editions/first", nil)
		assert.Equal(t, apperrors.ErrCodeInvalidParams, resp.Code)
	})

	t.Run("过滤条件分类非法", func(t *testing.T) {
		resp := doJSON(t, r, http.MethodPut, "/api/v1/filter", map[string]string{"genre": "Poetry"})
		assert.Equal(t, apperrors.ErrCodeBindError, resp.Code)

		resp = doJSON(t, r, http.MethodGet, "/api/v1/books?genre=Poetry", nil)
		assert.Equal(t, apperrors.ErrCodeBindError, resp.Code)
	})
}

func TestWorkbenchAPI_FilterAndList(t *testing.T) {
	r := newTestRouter(t)
	addBook(t, r, "Dune", "Frank Herbert", "Sci-Fi", "10")
	addBook(t, r, "Emma", "Jane Austen", "Fiction", "8")
	addBook(t, r, "Hobbit", "J.R.R. Tolkien", "Fantasy", "12")

	v := decodeWorkbench(t, doJSON(t, r, http.MethodPut, "/api/v1/filter", map[string]string{"genre": "Fantasy"}))
	require.Len(t, v.Books, 1)
	assert.Equal(t, "Hobbit", v.Books[0].Title)
	assert.Equal(t, "Fantasy", v.Filter.Genre)
	assert.Equal(t, 3, v.Total)

	// 临时查询不影响工作台过滤条件
	resp := doJSON(t, r, http.MethodGet, "/api/v1/books?author=j", nil)
	require.Equal(t, 0, resp.Code, resp.Message)
	var books []dto.BookResponse
	require.NoError(t, json.Unmarshal(resp.Data, &books))
	require.Len(t, books, 2)
	assert.Equal(t, "Emma", books[0].Title)
	assert.Equal(t, "Hobbit", books[1].Title)

	v = decodeWorkbench(t, doJSON(t, r, http.MethodGet, "/api/v1/workbench", nil))
	assert.Equal(t, "Fantasy", v.Filter.Genre)

	resp = doJSON(t, r, http.MethodGet, "/api/v1/books/2", nil)
	require.Equal(t, 0, resp.Code)
	var b dto.BookResponse
	require.NoError(t, json.Unmarshal(resp.Data, &b))
	assert.Equal(t, "Emma", b.Title)
}

func TestWorkbenchAPI_Delete(t *testing.T) {
	r := newTestRouter(t)
	addBook(t, r, "A", "X", "Fiction", "10")

	for _, want := range []bool{true, false} {
		resp := doJSON(t, r, http.MethodDelete, "/api/v1/books/1", nil)
		require.Equal(t, 0, resp.Code, resp.Message)

		var data dto.DeleteBookResponse
		require.NoError(t, json.Unmarshal(resp.Data, &data))
		assert.Equal(t, want, data.Removed)
		assert.Zero(t, data.View.Total)
	}
}

func TestWorkbenchAPI_RemoveEdition(t *testing.T) {
	r := newTestRouter(t)
	for _, year := range []string{"2001", "2002"} {
		doJSON(t, r, http.MethodPut, "/api/v1/form/edition/fields/year", map[string]string{"value": year})
		doJSON(t, r, http.MethodPost, "/api/v1/form/editions", nil)
	}

	v := decodeWorkbench(t, doJSON(t, r, http.MethodDelete, "/api/v1/form/editions/5", nil))
	assert.Len(t, v.Form.Editions, 2, "越界下标静默忽略")

	v = decodeWorkbench(t, doJSON(t, r, http.MethodDelete, "/api/v1/form/editions/0", nil))
	require.Len(t, v.Form.Editions, 1)
	assert.Equal(t, "2002", v.Form.Editions[0].Year)
}

func TestMiddleware(t *testing.T) {
	r := newTestRouter(t)

	t.Run("响应头带请求ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Len(t, w.Header().Get(middleware.RequestIDHeader), 36)

		req = httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(middleware.RequestIDHeader, "req-1")
		w = httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, "req-1", w.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("CORS预检请求", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/v1/filter", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "GET, PUT", w.Header().Get("Access-Control-Allow-Methods"))
	})

	t.Run("CORS拒绝未知来源", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", "http://evil.example")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
