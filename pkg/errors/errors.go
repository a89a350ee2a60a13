package errors

import (
	"errors"
	"fmt"
)

// AppError 自定义应用错误
// 设计说明：
// 1. Code用于客户端判断错误类型（不直接暴露HTTP状态码）
// 2. Message是给操作员看的提示信息
// 3. Err是内部错误，仅记录到日志，不返回给客户端
type AppError struct {
	Code    int    `json:"code"`    // 业务错误码
	Message string `json:"message"` // 用户友好的错误提示
	Err     error  `json:"-"`       // 内部错误（不序列化）
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 支持errors.Is和errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is 按错误码比较，WithDetail派生出的错误仍然可以用errors.Is匹配到预定义错误
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// WithDetail 基于当前错误派生一个带补充说明的新错误（不修改预定义错误本身）
func (e *AppError) WithDetail(detail string) *AppError {
	return &AppError{
		Code:    e.Code,
		Message: e.Message + ": " + detail,
		Err:     e.Err,
	}
}

// New 创建新的AppError
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap 包装系统错误，将底层错误转换为业务错误
func Wrap(err error, message string) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: message,
		Err:     err,
	}
}

// =========================================
// 错误码定义
// =========================================
// 规范：
// - 4xxxx: 客户端错误（参数错误、表单校验失败）
// - 5xxxx: 服务端错误

const (
	// 系统级错误码（50000-50099）
	ErrCodeInternal = 50000 // 内部错误

	// 资源错误（40400-40499）
	ErrCodeNotFound     = 40400 // 资源不存在(通用)
	ErrCodeBookNotFound = 40402 // 图书不存在

	// 表单错误（40000-40099）
	ErrCodeRequiredFields = 40010 // 必填项缺失
	ErrCodeUnknownField   = 40011 // 未知的表单字段
	ErrCodeInvalidGenre   = 40012 // 不支持的分类

	// 参数错误（40900-40999）
	ErrCodeInvalidParams = 40900 // 参数错误
	ErrCodeBindError     = 40901 // 参数绑定失败
)

// =========================================
// 预定义错误
// =========================================

var (
	ErrInternal      = New(ErrCodeInternal, "系统内部错误")
	ErrNotFound      = New(ErrCodeNotFound, "资源不存在")
	ErrInvalidParams = New(ErrCodeInvalidParams, "参数错误")
	ErrBindError     = New(ErrCodeBindError, "参数格式错误")
)

// =========================================
// 辅助函数
// =========================================

// IsAppError 判断是否为AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError 提取AppError（如果不是AppError则包装成Internal错误）
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, "系统内部错误")
}
