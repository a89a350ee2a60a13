package book

import (
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
)

// 图书领域错误定义
var (
	// ErrBookNotFound 图书不存在
	ErrBookNotFound = apperrors.New(apperrors.ErrCodeBookNotFound, "图书不存在")

	// ErrInvalidGenre 不支持的分类
	ErrInvalidGenre = apperrors.New(apperrors.ErrCodeInvalidGenre, "不支持的分类")
)
