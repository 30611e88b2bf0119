package json

import (
	"strings"
	"unicode"
)

// Tokenize 词法扫描: 把输入整体转换为有序 token 序列
//
// 单遍从左到右，按首字符分派 token 类别，空白（空格/换行/制表/回车）
// 跳过不产生 token。任一错误立即终止，不返回部分序列。
func Tokenize(s string) ([]Token, error) {
	toks, err := appendTokens(nil, []rune(s))
	if err != nil {
		return nil, err
	}
	return toks, nil
}

// appendTokens 索引模式扫描引擎，向 dst 追加 token（复用底层数组）
//
// src 为 rune 切片，错误位置即切片下标，天然是字符索引。
func appendTokens(dst []Token, src []rune) ([]Token, error) {
	n := len(src)
	i := 0
	for i < n {
		c := src[i]
		switch {
		case c == ' ' || c == '\n' || c == '\t' || c == '\r':
			i++

		case c == '{':
			dst = append(dst, Token{Kind: KindLBrace})
			i++
		case c == '}':
			dst = append(dst, Token{Kind: KindRBrace})
			i++
		case c == '[':
			dst = append(dst, Token{Kind: KindLBracket})
			i++
		case c == ']':
			dst = append(dst, Token{Kind: KindRBracket})
			i++
		case c == ':':
			dst = append(dst, Token{Kind: KindColon})
			i++
		case c == ',':
			dst = append(dst, Token{Kind: KindComma})
			i++

		case c == '"':
			var tok Token
			var err error
			tok, i, err = scanString(src, i)
			if err != nil {
				return dst, err
			}
			dst = append(dst, tok)

		case unicode.IsLetter(c):
			var tok Token
			var err error
			tok, i, err = scanIdent(src, i)
			if err != nil {
				return dst, err
			}
			dst = append(dst, tok)

		case c == '-' || isDigit(c):
			var tok Token
			tok, i = scanNumber(src, i)
			dst = append(dst, tok)

		default:
			return dst, &InvalidTokenError{Ch: c, Pos: i}
		}
	}
	return dst, nil
}

// scanString 扫描引号字符串（src[i] == '"'），返回解码后的内容
//
// 受限转义集: \" \\ \n \t \r 解码为对应字符，反斜杠后的其他字符
// 原样输出。输入在闭合引号前耗尽（含结尾悬空反斜杠）报
// UnterminatedString，携带起始引号的字符索引。
func scanString(src []rune, i int) (Token, int, error) {
	start := i
	i++ // 跳过起始 '"'
	n := len(src)
	var b strings.Builder
	for i < n {
		c := src[i]
		if c == '"' {
			return Token{Kind: KindString, Text: b.String()}, i + 1, nil
		}
		if c == '\\' {
			i++
			if i >= n {
				return Token{}, i, &UnterminatedStringError{Pos: start}
			}
			switch src[i] {
			case '"':
				b.WriteByte('"')
			case '\\':
				b.WriteByte('\\')
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			default:
				// 受限转义集之外: 原样输出
				b.WriteRune(src[i])
			}
			i++
			continue
		}
		b.WriteRune(c)
		i++
	}
	return Token{}, n, &UnterminatedStringError{Pos: start}
}

// scanIdent 扫描字母标识符（src[i] 为字母）
//
// 仅连续消费字母，合法标识符只有 true/false/null 三个（大小写敏感），
// 其他标识符报 InvalidToken，携带首字母及其索引。
// 注意: 数字、下划线不算入标识符，会在下一轮重新分派。
func scanIdent(src []rune, i int) (Token, int, error) {
	start := i
	j := i + 1
	for j < len(src) && unicode.IsLetter(src[j]) {
		j++
	}
	switch string(src[start:j]) {
	case "true":
		return Token{Kind: KindTrue}, j, nil
	case "false":
		return Token{Kind: KindFalse}, j, nil
	case "null":
		return Token{Kind: KindNull}, j, nil
	}
	return Token{}, i, &InvalidTokenError{Ch: src[start], Pos: start}
}

// scanNumber 扫描数字字面量（src[i] 为数字或 '-'）
//
// 贪婪收集 [0-9.eE+-] 字符，不做合法性校验（如 "1-2-3"、"--5" 都会
// 扫描为单个 Number token），合法性由解析阶段的 float64 转换裁定。
func scanNumber(src []rune, i int) (Token, int) {
	start := i
	i++
	for i < len(src) && isNumChar(src[i]) {
		i++
	}
	return Token{Kind: KindNumber, Text: string(src[start:i])}, i
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isNumChar(c rune) bool {
	return isDigit(c) || c == '.' || c == 'e' || c == 'E' || c == '+' || c == '-'
}
