package dto

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/xiebiao/bookshelf/internal/domain/book"
)

// RegisterValidators 在gin的binding引擎上注册自定义校验规则
// - genre: 分类必须是枚举值之一
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("gin binding引擎不是validator/v10")
	}
	return v.RegisterValidation("genre", validateGenre)
}

func validateGenre(fl validator.FieldLevel) bool {
	return book.Genre(fl.Field().String()).Valid()
}

// ValidateNumeric 校验数字输入(价格、年份),空值合法
// 与浏览器type=number输入框的约束一致
func ValidateNumeric(value string) error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("gin binding引擎不是validator/v10")
	}
	return v.Var(value, "omitempty,numeric")
}
