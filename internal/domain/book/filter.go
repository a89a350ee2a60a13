package book

import "strings"

// Filter 列表过滤条件(仅用于展示,不持久化)
// Genre为空表示不按分类过滤; Author为空表示不按作者过滤
type Filter struct {
	Genre  Genre
	Author string
}

// IsZero 是否为空过滤条件(匹配所有图书)
func (f Filter) IsZero() bool {
	return f.Genre == GenreUnset && f.Author == ""
}

// Matches 判断图书是否满足过滤条件
// 分类精确匹配; 作者按不区分大小写的子串匹配
func (f Filter) Matches(b *Book) bool {
	if f.Genre != GenreUnset && b.Genre != f.Genre {
		return false
	}
	if f.Author != "" && !strings.Contains(strings.ToLower(b.Author), strings.ToLower(f.Author)) {
		return false
	}
	return true
}

// Apply 返回满足条件的子序列,保持原有顺序
func (f Filter) Apply(books []*Book) []*Book {
	out := make([]*Book, 0, len(books))
	for _, b := range books {
		if f.Matches(b) {
			out = append(out, b)
		}
	}
	return out
}
