package json

import "fmt"

// Kind token 类型
type Kind uint8

const (
	KindLBrace   Kind = iota // '{'
	KindRBrace               // '}'
	KindLBracket             // '['
	KindRBracket             // ']'
	KindColon                // ':'
	KindComma                // ','
	KindString               // 字符串（转义已解码）
	KindNumber               // 数字（原始字面量，未转换）
	KindTrue                 // true
	KindFalse                // false
	KindNull                 // null
)

// String 返回 token 类型名称
func (k Kind) String() string {
	switch k {
	case KindLBrace:
		return "'{'"
	case KindRBrace:
		return "'}'"
	case KindLBracket:
		return "'['"
	case KindRBracket:
		return "']'"
	case KindColon:
		return "':'"
	case KindComma:
		return "','"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindTrue:
		return "true"
	case KindFalse:
		return "false"
	case KindNull:
		return "null"
	default:
		return "unknown"
	}
}

// Token 词法单元
//
// 结构符与 true/false/null 仅由 Kind 区分，Text 为空。
//   - KindString: Text 为解码后的字符串内容（不含引号）
//   - KindNumber: Text 为原始数字字面量，转换推迟到解析阶段
type Token struct {
	Kind Kind
	Text string
}

// String 返回 token 的可读形式（用于错误消息）
func (t Token) String() string {
	switch t.Kind {
	case KindString:
		return fmt.Sprintf("string %q", t.Text)
	case KindNumber:
		return fmt.Sprintf("number %q", t.Text)
	default:
		return t.Kind.String()
	}
}
