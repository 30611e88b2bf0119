package json

import "fmt"

// 两套互不相交的错误分类，按流水线阶段区分:
//   - 词法阶段: InvalidTokenError、UnterminatedStringError
//   - 解析阶段: UnexpectedEndError、UnexpectedTokenError、
//     InvalidNumberError、MaxDepthError
//
// 调用方可用 errors.As 取具体类型，或通过 LexError/ParseError
// 接口判断失败发生在哪个阶段。

// LexError 词法阶段错误
type LexError interface {
	error
	lexError()
}

// ParseError 解析阶段错误
type ParseError interface {
	error
	parseError()
}

// InvalidTokenError 无法识别的字符
type InvalidTokenError struct {
	Ch  rune // 触发错误的字符
	Pos int  // 字符索引（按 rune 计数）
}

func (e *InvalidTokenError) Error() string {
	return fmt.Sprintf("json: invalid token %q at position %d", e.Ch, e.Pos)
}

func (*InvalidTokenError) lexError() {}

// UnterminatedStringError 字符串未闭合
type UnterminatedStringError struct {
	Pos int // 起始引号的字符索引
}

func (e *UnterminatedStringError) Error() string {
	return fmt.Sprintf("json: unterminated string starting at position %d", e.Pos)
}

func (*UnterminatedStringError) lexError() {}

// UnexpectedEndError token 序列在结构完成前耗尽
type UnexpectedEndError struct{}

func (*UnexpectedEndError) Error() string {
	return "json: unexpected end of tokens (incomplete JSON)"
}

func (*UnexpectedEndError) parseError() {}

// errUnexpectedEnd 单例（无载荷，不必逐次分配）
var errUnexpectedEnd = &UnexpectedEndError{}

// UnexpectedTokenError 当前位置出现了错误类别的 token
type UnexpectedTokenError struct {
	Token Token
}

func (e *UnexpectedTokenError) Error() string {
	return fmt.Sprintf("json: unexpected token %s", e.Token)
}

func (*UnexpectedTokenError) parseError() {}

// InvalidNumberError 数字字面量无法转换为 float64
type InvalidNumberError struct {
	Raw string // 扫描阶段收集的原始字面量
}

func (e *InvalidNumberError) Error() string {
	return fmt.Sprintf("json: invalid number %q", e.Raw)
}

func (*InvalidNumberError) parseError() {}

// MaxDepthError 嵌套深度超过 MaxDepth
type MaxDepthError struct{}

func (*MaxDepthError) Error() string {
	return fmt.Sprintf("json: max depth %d exceeded", MaxDepth)
}

func (*MaxDepthError) parseError() {}
