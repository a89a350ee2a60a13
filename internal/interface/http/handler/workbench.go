package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/bookshelf/internal/application/inventory"
	"github.com/xiebiao/bookshelf/internal/domain/book"
	"github.com/xiebiao/bookshelf/internal/domain/draft"
	"github.com/xiebiao/bookshelf/internal/interface/http/dto"
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
	"github.com/xiebiao/bookshelf/pkg/response"
)

// WorkbenchHandler 书目工作台HTTP处理器
// 每个接口对应工作台的一个事件，返回事件完成后的工作台快照
type WorkbenchHandler struct {
	workbench *inventory.Workbench
}

// NewWorkbenchHandler 创建工作台处理器
func NewWorkbenchHandler(workbench *inventory.Workbench) *WorkbenchHandler {
	return &WorkbenchHandler{workbench: workbench}
}

// reply 事件结果 → 统一响应
func reply(c *gin.Context, v inventory.View, err error) {
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewWorkbenchResponse(v))
}

func bindError(c *gin.Context, err error) {
	response.ErrorWithCode(c, apperrors.ErrCodeBindError, "参数错误: "+err.Error())
}

// View 工作台快照
// @Summary      工作台快照
// @Description  当前表单、版次草稿、过滤条件和过滤后的图书列表
// @Tags         工作台
// @Produce      json
// @Success      200 {object} response.Response{data=dto.WorkbenchResponse}
// @Router       /api/v1/workbench [get]
func (h *WorkbenchHandler) View(c *gin.Context) {
	v, err := h.workbench.View(c.Request.Context())
	reply(c, v, err)
}

// ListBooks 图书列表
// @Summary      图书列表
// @Description  按临时条件查询图书，不修改工作台的过滤条件
// @Tags         图书
// @Produce      json
// @Param        genre  query string false "分类" Enums(Fiction, Non-Fiction, Sci-Fi, Fantasy)
// @Param        author query string false "作者（不区分大小写的子串匹配）"
// @Success      200 {object} response.Response{data=[]dto.BookResponse}
// @Failure      200 {object} response.Response "40901 参数错误"
// @Router       /api/v1/books [get]
func (h *WorkbenchHandler) ListBooks(c *gin.Context) {
	var req dto.ListBooksRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		bindError(c, err)
		return
	}

	books, err := h.workbench.List(c.Request.Context(), req.Filter())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewBookList(books))
}

// GetBook 图书详情
// @Summary      图书详情
// @Tags         图书
// @Produce      json
// @Param        id path string true "图书ID"
// @Success      200 {object} response.Response{data=dto.BookResponse}
// @Failure      200 {object} response.Response "40402 图书不存在"
// @Router       /api/v1/books/{id} [get]
func (h *WorkbenchHandler) GetBook(c *gin.Context) {
	b, err := h.workbench.Get(c.Request.Context(), book.ID(c.Param("id")))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.NewBookResponse(b))
}

// DeleteBook 删除图书
// @Summary      删除图书
// @Description  图书不存在时removed=false，不视为错误
// @Tags         图书
// @Produce      json
// @Param        id path string true "图书ID"
// @Success      200 {object} response.Response{data=dto.DeleteBookResponse}
// @Router       /api/v1/books/{id} [delete]
func (h *WorkbenchHandler) DeleteBook(c *gin.Context) {
	v, removed, err := h.workbench.Delete(c.Request.Context(), book.ID(c.Param("id")))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, dto.DeleteBookResponse{
		Removed: removed,
		View:    dto.NewWorkbenchResponse(v),
	})
}

// SetFilter 设置过滤条件
// @Summary      设置过滤条件
// @Tags         工作台
// @Accept       json
// @Produce      json
// @Param        request body dto.FilterRequest true "过滤条件"
// @Success      200 {object} response.Response{data=dto.WorkbenchResponse}
// @Failure      200 {object} response.Response "40901 参数错误"
// @Router       /api/v1/filter [put]
func (h *WorkbenchHandler) SetFilter(c *gin.Context) {
	var req dto.FilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	v, err := h.workbench.SetFilter(c.Request.Context(), req.Genre, req.Author)
	reply(c, v, err)
}

// SetFormField 修改表单字段
// @Summary      修改表单字段
// @Description  field取值title、author、genre、price；price必须为数字
// @Tags         表单
// @Accept       json
// @Produce      json
// @Param        field   path string                 true "字段" Enums(title, author, genre, price)
// @Param        request body dto.FieldValueRequest true "字段值"
// @Success      200 {object} response.Response{data=dto.WorkbenchResponse}
// @Failure      200 {object} response.Response "40011 未知字段 / 40012 不支持的分类"
// @Router       /api/v1/form/fields/{field} [put]
func (h *WorkbenchHandler) SetFormField(c *gin.Context) {
	field, err := draft.ParseField(c.Param("field"))
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.FieldValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	if field == draft.FieldPrice {
		if err := dto.ValidateNumeric(req.Value); err != nil {
			bindError(c, err)
			return
		}
	}

	v, err := h.workbench.SetFormField(c.Request.Context(), field, req.Value)
	reply(c, v, err)
}

// LoadForEdit 载入图书进入编辑模式
// @Summary      编辑图书
// @Description  把图书副本载入表单，之后的提交按原ID整体替换
// @Tags         表单
// @Produce      json
// @Param        id path string true "图书ID"
// @Success      200 {object} response.Response{data=dto.WorkbenchResponse}
// @Failure      200 {object} response.Response "40402 图书不存在"
// @Router       /api/v1/form/load/{id} [post]
func (h *WorkbenchHandler) LoadForEdit(c *gin.Context) {
	v, err := h.workbench.Edit(c.Request.Context(), book.ID(c.Param("id")))
	reply(c, v, err)
}

// Submit 提交表单
// @Summary      提交表单
// @Description  新建模式追加图书，编辑模式整体替换；成功后表单恢复为新建模式
// @Tags         表单
// @Produce      json
// @Success      200 {object} response.Response{data=dto.WorkbenchResponse}
// @Failure      200 {object} response.Response "40010 缺少必填字段"
// @Router       /api/v1/form/submit [post]
func (h *WorkbenchHandler) Submit(c *gin.Context) {
	v, err := h.workbench.Submit(c.Request.Context())
	reply(c, v, err)
}

// ResetForm 重置表单
// @Summary      重置表单
// @Tags         表单
// @Produce      json
// @Success      200 {object} response.Response{data=dto.WorkbenchResponse}
// @Router       /api/v1/form/reset [post]
func (h *WorkbenchHandler) ResetForm(c *gin.Context) {
	v, err := h.workbench.ResetForm(c.Request.Context())
	reply(c, v, err)
}

// SetEditionField 修改版次草稿字段
// @Summary      修改版次草稿字段
// @Description  field取值year、isbn；year必须为数字
// @Tags         版次
// @Accept       json
// @Produce      json
// @Param        field   path string                 true "字段" Enums(year, isbn)
// @Param        request body dto.FieldValueRequest true "字段值"
// @Success      200 {object} response.Response{data=dto.WorkbenchResponse}
// @Failure      200 {object} response.Response "40011 未知字段"
// @Router       /api/v1/form/edition/fields/{field} [put]
func (h *WorkbenchHandler) SetEditionField(c *gin.Context) {
	field, err := draft.ParseEditionField(c.Param("field"))
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.FieldValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}
	if field == draft.EditionFieldYear {
		if err := dto.ValidateNumeric(req.Value); err != nil {
			bindError(c, err)
			return
		}
	}

	v, err := h.workbench.SetEditionField(c.Request.Context(), field, req.Value)
	reply(c, v, err)
}

// AppendEdition 追加版次
// @Summary      追加版次
// @Description  把版次草稿追加到表单末尾并清空草稿
// @Tags         版次
// @Produce      json
// @Success      200 {object} response.Response{data=dto.WorkbenchResponse}
// @Router       /api/v1/form/editions [post]
func (h *WorkbenchHandler) AppendEdition(c *gin.Context) {
	v, err := h.workbench.AppendEdition(c.Request.Context())
	reply(c, v, err)
}

// RemoveEdition 删除版次
// @Summary      删除版次
// @Description  下标越界时什么也不做
// @Tags         版次
// @Produce      json
// @Param        index path int true "版次下标（从0开始）"
// @Success      200 {object} response.Response{data=dto.WorkbenchResponse}
// @Failure      200 {object} response.Response "40900 参数错误"
// @Router       /api/v1/form/editions/{index} [delete]
func (h *WorkbenchHandler) RemoveEdition(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		response.Error(c, apperrors.ErrInvalidParams.WithDetail("index必须是整数"))
		return
	}

	v, err := h.workbench.RemoveEdition(c.Request.Context(), index)
	reply(c, v, err)
}
