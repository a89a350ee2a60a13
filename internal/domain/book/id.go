package book

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator 图书ID生成器
// 时间戳在连续快速创建时可能重复,因此使用单调计数器或UUID
type IDGenerator interface {
	NextID() ID
}

// SequenceGenerator 单调递增计数器,从1开始
type SequenceGenerator struct {
	last atomic.Uint64
}

// NewSequenceGenerator 创建计数器生成器
func NewSequenceGenerator() *SequenceGenerator {
	return &SequenceGenerator{}
}

// NextID 返回下一个ID
func (g *SequenceGenerator) NextID() ID {
	return ID(strconv.FormatUint(g.last.Add(1), 10))
}

// UUIDGenerator 基于UUIDv7的生成器(按时间有序)
type UUIDGenerator struct{}

// NewUUIDGenerator 创建UUID生成器
func NewUUIDGenerator() UUIDGenerator {
	return UUIDGenerator{}
}

// NextID 返回下一个ID
// 极端情况下随机源不可用时退回UUIDv4
func (UUIDGenerator) NextID() ID {
	u, err := uuid.NewV7()
	if err != nil {
		return ID(uuid.NewString())
	}
	return ID(u.String())
}
