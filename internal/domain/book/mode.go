package book

// ModeKind 表单提交模式
type ModeKind int

const (
	ModeCreate ModeKind = iota // 新建
	ModeEdit                   // 编辑已有图书
)

// String 实现Stringer接口(方便日志输出)
func (k ModeKind) String() string {
	switch k {
	case ModeCreate:
		return "create"
	case ModeEdit:
		return "edit"
	default:
		return "unknown"
	}
}

// Mode 提交目标: Create 或 Edit(原图书ID)
// 零值即Create模式
type Mode struct {
	kind     ModeKind
	original ID
}

// Create 新建模式
func Create() Mode {
	return Mode{kind: ModeCreate}
}

// Edit 编辑模式,original为被编辑图书的ID
func Edit(original ID) Mode {
	return Mode{kind: ModeEdit, original: original}
}

// Kind 返回模式类型
func (m Mode) Kind() ModeKind {
	return m.kind
}

// IsEdit 是否为编辑模式
func (m Mode) IsEdit() bool {
	return m.kind == ModeEdit
}

// Original 编辑模式下返回原图书ID; Create模式返回("", false)
func (m Mode) Original() (ID, bool) {
	if m.kind != ModeEdit {
		return "", false
	}
	return m.original, true
}

// String 实现Stringer接口
func (m Mode) String() string {
	if m.kind == ModeEdit {
		return "edit(" + string(m.original) + ")"
	}
	return m.kind.String()
}
