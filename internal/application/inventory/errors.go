package inventory

import (
	"strings"

	"github.com/xiebiao/bookshelf/internal/domain/draft"
	apperrors "github.com/xiebiao/bookshelf/pkg/errors"
)

// ErrRequiredFields 提交时必填字段为空
var ErrRequiredFields = apperrors.New(apperrors.ErrCodeRequiredFields, "请填写必填字段")

// requiredFieldsError 列出缺失的字段，如"请填写必填字段: title, price"
func requiredFieldsError(missing []draft.Field) error {
	names := make([]string, len(missing))
	for i, f := range missing {
		names[i] = f.String()
	}
	return ErrRequiredFields.WithDetail(strings.Join(names, ", "))
}
