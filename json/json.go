// Package json 两阶段 JSON 解析与序列化库
//
// 设计原则（两阶段流水线: 词法扫描 → 递归下降解析）:
//   - 阶段分离: Tokenize 先把全文扫描为完整 token 序列，Parser 再以
//     只进不退的游标消费该序列构建值树，两阶段互不交叉
//   - 字符索引: 扫描器按 Unicode 字符（rune）计数定位，错误位置
//     以字符索引而非字节偏移报告
//   - 受限转义集: 字符串仅解码 \" \\ \n \t \r 五种转义，其余反斜杠
//     后的字符原样输出（不支持 \uXXXX）
//   - 延迟校验数字: 扫描阶段贪婪收集数字字符不做合法性检查，
//     解析阶段用标准 strconv.ParseFloat 转换，失败即报 InvalidNumber
//   - 池化复用: Parser/Writer 通过 sync.Pool 复用，并发安全
//
// 用法:
//
//	// 解析
//	var p json.Parser
//	v, err := p.Parse(`{"name":"yak","version":1}`)
//	name := v.GetString("name")     // "yak"
//	ver  := v.GetFloat64("version") // 1
//
//	// 仅词法扫描
//	toks, err := json.Tokenize(`[1,2,3]`)
//
//	// 序列化（追加到已有 buffer）
//	data := v.MarshalTo(nil)
package json

import "unsafe"

// MaxDepth JSON 嵌套最大深度（防栈溢出攻击）
const MaxDepth = 512

// s2b 零拷贝 string → []byte
func s2b(s string) []byte {
	return unsafe.Slice(unsafe.StringData(s), len(s))
}

// b2s 零拷贝 []byte → string
func b2s(b []byte) string {
	return unsafe.String(unsafe.SliceData(b), len(b))
}
