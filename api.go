// Package yak 统一API入口
package yak

import (
	"github.com/uniyakcom/yak/json"
	"github.com/uniyakcom/yak/util"
)

// Value 导出Value类型
type Value = json.Value

// Token 导出Token类型
type Token = json.Token

// Kind 导出token类型枚举
type Kind = json.Kind

// Type 导出值类型枚举
type Type = json.Type

// Parser 导出Parser类型
type Parser = json.Parser

// Writer 导出Writer类型
type Writer = json.Writer

// LexError 导出词法阶段错误接口
type LexError = json.LexError

// ParseError 导出解析阶段错误接口
type ParseError = json.ParseError

// ═══════════════════════════════════════════════════════════════════
// 包级便捷 API（内部走 ParserPool，零初始化，并发安全）
// ═══════════════════════════════════════════════════════════════════

// parsedCount/failedCount 包级解析统计（低竞争计数器）
var (
	parsedCount = util.NewPerCPUCounter()
	failedCount = util.NewPerCPUCounter()
)

// Parse 解析 JSON 文本，返回根 Value
//
// 词法扫描与解析两阶段任一失败即短路，错误按阶段分属
// LexError 或 ParseError，可用 errors.As 检取具体变体。
//
// 用法:
//
//	v, err := yak.Parse(`{"name":"Alice","age":30}`)
//	fmt.Println(v.GetString("name")) // "Alice"
func Parse(s string) (*Value, error) {
	p := json.AcquireParser()
	v, err := p.Parse(s)
	json.ReleaseParser(p)
	if err != nil {
		failedCount.Add(1)
		return nil, err
	}
	parsedCount.Add(1)
	return v, nil
}

// ParseBytes 解析 JSON 字节切片
func ParseBytes(b []byte) (*Value, error) {
	p := json.AcquireParser()
	v, err := p.ParseBytes(b)
	json.ReleaseParser(p)
	if err != nil {
		failedCount.Add(1)
		return nil, err
	}
	parsedCount.Add(1)
	return v, nil
}

// MustParse 解析 JSON 文本，失败 panic（用于常量/测试数据）
func MustParse(s string) *Value {
	v, err := Parse(s)
	if err != nil {
		panic("yak: " + err.Error())
	}
	return v
}

// Tokenize 仅做词法扫描，返回有序 token 序列
func Tokenize(s string) ([]Token, error) {
	return json.Tokenize(s)
}

// Stats 包级获取解析统计
func Stats() util.Stats {
	return util.Stats{
		Parsed: parsedCount.Read(),
		Failed: failedCount.Read(),
	}
}
