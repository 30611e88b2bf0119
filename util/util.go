// Package util 提供解析统计用的通用工具
package util

import (
	"runtime"
	"sync/atomic"
	"unsafe"
)

// maxSlots 最大 slot 数量（覆盖常见 GOMAXPROCS）
const maxSlots = 256

// Stats 包级解析统计快照
type Stats struct {
	Parsed int64 // 成功解析的文档数
	Failed int64 // 解析失败的文档数
}

// PerCPUCounter 低竞争计数器
//
// 包级 Parse/ParseEach 的调用计数走热路径，单个 atomic 计数器在
// 多核并发解析时产生跨核 cache 争用。这里用 goroutine 栈地址哈希
// 把写入分散到不同 cache line，读取时汇总。
type PerCPUCounter struct {
	counters [maxSlots]counterSlot
	mask     int
}

type counterSlot struct {
	count atomic.Int64
	_     [56]byte // cache line padding (64 - 8 bytes for Int64)
}

// NewPerCPUCounter 创建新的计数器
//
// slot 数取 GOMAXPROCS 向上取 2 的幂，最少 8 slot，
// 避免低核环境下栈地址哈希冲突率过高。
func NewPerCPUCounter() *PerCPUCounter {
	n := runtime.GOMAXPROCS(0)
	sz := 1
	for sz < n {
		sz *= 2
	}
	if sz < 8 {
		sz = 8
	}
	if sz > maxSlots {
		sz = maxSlots
	}
	return &PerCPUCounter{mask: sz - 1}
}

// Add 原子加法（per-goroutine 栈地址分散）
//
// 右移 13 位: goroutine 最小栈 8KB = 2^13，不同 goroutine
// 哈希到不同 slot。
//
//go:nosplit
func (c *PerCPUCounter) Add(delta int64) {
	var x uintptr
	id := int(uintptr(unsafe.Pointer(&x)) >> 13)
	c.counters[id&c.mask].count.Add(delta)
}

// Read 读取所有 slot 的累计值
func (c *PerCPUCounter) Read() int64 {
	var sum int64
	n := c.mask + 1
	for i := 0; i < n; i++ {
		sum += c.counters[i].count.Load()
	}
	return sum
}
