package json

import (
	"errors"
	"strconv"
	"sync"
)

// Parser 递归下降 JSON 解析器（可复用）
//
// Parse 先把输入整体扫描为 token 序列，再以只进不退的整数游标
// 消费该序列。token 切片底层数组跨调用复用，返回的 Value 树
// 所有权归调用方，与 Parser 的后续复用无关。
// 注意: Parser 不是并发安全的，并发场景请使用 ParserPool。
//
// 用法:
//
//	var p json.Parser
//	v, err := p.Parse(`{"key":"value"}`)
//	fmt.Println(v.GetString("key")) // "value"
type Parser struct {
	tokens []Token // 不可变 token 序列（每次 Parse 重建）
	pos    int     // 游标，只进不退
}

// Parse 解析 JSON 文本，返回根 Value
//
// 恰好一个顶层值必须消费整个 token 序列，完整值之后仍有残留
// token 报 UnexpectedToken（如 "1 2"、"{} {}"）。
// 失败时部分构建的值树被丢弃，不向外泄露。
func (p *Parser) Parse(s string) (*Value, error) {
	toks, err := appendTokens(p.tokens[:0], []rune(s))
	p.tokens = toks
	if err != nil {
		return nil, err
	}
	p.pos = 0
	v, err := p.parseValue(0)
	if err != nil {
		return nil, err
	}
	if p.pos < len(p.tokens) {
		return nil, &UnexpectedTokenError{Token: p.tokens[p.pos]}
	}
	return v, nil
}

// ParseBytes 解析 JSON 字节切片
func (p *Parser) ParseBytes(b []byte) (*Value, error) {
	return p.Parse(b2s(b))
}

// ─── ParserPool（并发安全） ───

// ParserPool 并发安全的 Parser 池
var ParserPool = sync.Pool{
	New: func() any { return new(Parser) },
}

// AcquireParser 从池中获取 Parser
func AcquireParser() *Parser {
	return ParserPool.Get().(*Parser)
}

// ReleaseParser 归还 Parser 到池中
func ReleaseParser(p *Parser) {
	ParserPool.Put(p)
}

// ─── 全局单例: true/false/null（不可变，免逐次分配） ───

var (
	valueTrue  = &Value{t: TypeBool, b: true}
	valueFalse = &Value{t: TypeBool, b: false}
	valueNull  = &Value{t: TypeNull}
)

// ─── 游标（唯一的读取入口和唯一的前进入口） ───

// current 返回游标处 token，序列耗尽返回 false
func (p *Parser) current() (Token, bool) {
	if p.pos >= len(p.tokens) {
		return Token{}, false
	}
	return p.tokens[p.pos], true
}

// advance 游标前进一格
func (p *Parser) advance() { p.pos++ }

// ─── 递归下降 ───

// parseValue 解析任意 JSON 值（按游标处 token 类别分派）
func (p *Parser) parseValue(depth int) (*Value, error) {
	if depth > MaxDepth {
		return nil, &MaxDepthError{}
	}
	tok, ok := p.current()
	if !ok {
		return nil, errUnexpectedEnd
	}
	switch tok.Kind {
	case KindLBrace:
		return p.parseObject(depth + 1)
	case KindLBracket:
		return p.parseArray(depth + 1)
	case KindString:
		p.advance()
		return &Value{t: TypeString, s: tok.Text}, nil
	case KindNumber:
		f, err := parseNumber(tok.Text)
		if err != nil {
			return nil, &InvalidNumberError{Raw: tok.Text}
		}
		p.advance()
		return &Value{t: TypeNumber, f: f}, nil
	case KindTrue:
		p.advance()
		return valueTrue, nil
	case KindFalse:
		p.advance()
		return valueFalse, nil
	case KindNull:
		p.advance()
		return valueNull, nil
	default:
		// 结构闭合符 '}' ']' ':' ',' 出现在期望值的位置
		return nil, &UnexpectedTokenError{Token: tok}
	}
}

// parseObject 解析对象（游标处 token 为 '{'）
func (p *Parser) parseObject(depth int) (*Value, error) {
	p.advance() // 消费 '{'
	v := &Value{t: TypeObject}

	// 空对象短路
	if tok, ok := p.current(); ok && tok.Kind == KindRBrace {
		p.advance()
		return v, nil
	}

	for {
		// 键必须是字符串 token
		tok, ok := p.current()
		if !ok {
			return nil, errUnexpectedEnd
		}
		if tok.Kind != KindString {
			return nil, &UnexpectedTokenError{Token: tok}
		}
		key := tok.Text
		p.advance()

		// 冒号
		tok, ok = p.current()
		if !ok {
			return nil, errUnexpectedEnd
		}
		if tok.Kind != KindColon {
			return nil, &UnexpectedTokenError{Token: tok}
		}
		p.advance()

		// 值
		val, err := p.parseValue(depth)
		if err != nil {
			return nil, err
		}
		v.o.set(key, val)

		// ',' 继续或 '}' 终止
		tok, ok = p.current()
		if !ok {
			return nil, errUnexpectedEnd
		}
		switch tok.Kind {
		case KindComma:
			p.advance()
		case KindRBrace:
			p.advance()
			return v, nil
		default:
			return nil, &UnexpectedTokenError{Token: tok}
		}
	}
}

// parseArray 解析数组（游标处 token 为 '['）
//
// 与 parseObject 对称，无键和冒号。
func (p *Parser) parseArray(depth int) (*Value, error) {
	p.advance() // 消费 '['
	v := &Value{t: TypeArray}

	// 空数组短路
	if tok, ok := p.current(); ok && tok.Kind == KindRBracket {
		p.advance()
		return v, nil
	}

	for {
		elem, err := p.parseValue(depth)
		if err != nil {
			return nil, err
		}
		v.a = append(v.a, elem)

		tok, ok := p.current()
		if !ok {
			return nil, errUnexpectedEnd
		}
		switch tok.Kind {
		case KindComma:
			p.advance()
		case KindRBracket:
			p.advance()
			return v, nil
		default:
			return nil, &UnexpectedTokenError{Token: tok}
		}
	}
}

// parseNumber 标准文本 → float64 转换
//
// 扫描阶段贪婪收集的字面量在这里才做合法性裁定（"1-2-3"、"--5"
// 均在此失败）。超出 float64 范围的指数饱和为 ±Inf，不算错误。
func parseNumber(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var ne *strconv.NumError
		if errors.As(err, &ne) && errors.Is(ne.Err, strconv.ErrRange) {
			return f, nil
		}
		return 0, err
	}
	return f, nil
}
