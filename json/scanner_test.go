package json

import (
	"errors"
	"testing"
)

// TestTokenizeStructural 六种结构符各自产生单字符 token
func TestTokenizeStructural(t *testing.T) {
	toks, err := Tokenize("{}[]:,")
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	want := []Kind{KindLBrace, KindRBrace, KindLBracket, KindRBracket, KindColon, KindComma}
	if len(toks) != len(want) {
		t.Fatalf("expected %d tokens, got %d", len(want), len(toks))
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: expected %s, got %s", i, k, toks[i].Kind)
		}
	}
}

// TestTokenizeWhitespace 空白跳过，不产生 token
func TestTokenizeWhitespace(t *testing.T) {
	toks, err := Tokenize(" \n\t\r{ \n }\t")
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	if len(toks) != 2 || toks[0].Kind != KindLBrace || toks[1].Kind != KindRBrace {
		t.Fatalf("expected '{' '}', got %v", toks)
	}
}

// TestTokenizeEmpty 空输入产生空序列而非错误
func TestTokenizeEmpty(t *testing.T) {
	toks, err := Tokenize("")
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	if len(toks) != 0 {
		t.Fatalf("expected no tokens, got %v", toks)
	}
}

// TestTokenizeString 字符串 token 携带解码后的内容
func TestTokenizeString(t *testing.T) {
	toks, err := Tokenize(`"hello"`)
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	if len(toks) != 1 || toks[0].Kind != KindString || toks[0].Text != "hello" {
		t.Fatalf("expected string \"hello\", got %v", toks)
	}
}

// TestTokenizeEscapes 受限转义集在扫描阶段解码
func TestTokenizeEscapes(t *testing.T) {
	toks, err := Tokenize(`"a\nb\tc\rd\"e\\f"`)
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	want := "a\nb\tc\rd\"e\\f"
	if toks[0].Text != want {
		t.Fatalf("expected %q, got %q", want, toks[0].Text)
	}
}

// TestTokenizeUnknownEscape 转义集之外的字符原样输出（\u 不解码）
func TestTokenizeUnknownEscape(t *testing.T) {
	toks, err := Tokenize(`"\u0041x"`)
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	if toks[0].Text != "u0041x" {
		t.Fatalf("expected \"u0041x\", got %q", toks[0].Text)
	}
}

// TestTokenizeUnterminatedString 未闭合字符串报起始引号的索引
func TestTokenizeUnterminatedString(t *testing.T) {
	_, err := Tokenize(`"abc`)
	var ue *UnterminatedStringError
	if !errors.As(err, &ue) {
		t.Fatalf("expected UnterminatedStringError, got %v", err)
	}
	if ue.Pos != 0 {
		t.Errorf("expected position 0, got %d", ue.Pos)
	}

	// 起始引号前有其他 token 时索引随之偏移
	_, err = Tokenize(`[1, "abc`)
	if !errors.As(err, &ue) {
		t.Fatalf("expected UnterminatedStringError, got %v", err)
	}
	if ue.Pos != 4 {
		t.Errorf("expected position 4, got %d", ue.Pos)
	}
}

// TestTokenizeTrailingBackslash 结尾悬空反斜杠同样算未闭合
func TestTokenizeTrailingBackslash(t *testing.T) {
	_, err := Tokenize("\"abc\\")
	var ue *UnterminatedStringError
	if !errors.As(err, &ue) {
		t.Fatalf("expected UnterminatedStringError, got %v", err)
	}
	if ue.Pos != 0 {
		t.Errorf("expected position 0, got %d", ue.Pos)
	}
}

// TestTokenizeKeywords true/false/null 是仅有的合法标识符
func TestTokenizeKeywords(t *testing.T) {
	toks, err := Tokenize("true false null")
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	want := []Kind{KindTrue, KindFalse, KindNull}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: expected %s, got %s", i, k, toks[i].Kind)
		}
	}
}

// TestTokenizeInvalidIdent 非关键字标识符报首字母及其索引
func TestTokenizeInvalidIdent(t *testing.T) {
	_, err := Tokenize("truee")
	var ie *InvalidTokenError
	if !errors.As(err, &ie) {
		t.Fatalf("expected InvalidTokenError, got %v", err)
	}
	if ie.Ch != 't' || ie.Pos != 0 {
		t.Errorf("expected ('t', 0), got (%q, %d)", ie.Ch, ie.Pos)
	}

	_, err = Tokenize("[nul]")
	if !errors.As(err, &ie) {
		t.Fatalf("expected InvalidTokenError, got %v", err)
	}
	if ie.Ch != 'n' || ie.Pos != 1 {
		t.Errorf("expected ('n', 1), got (%q, %d)", ie.Ch, ie.Pos)
	}
}

// TestTokenizeIdentLettersOnly 标识符只吃字母，后续字符重新分派
func TestTokenizeIdentLettersOnly(t *testing.T) {
	toks, err := Tokenize("null5")
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	if len(toks) != 2 || toks[0].Kind != KindNull || toks[1].Kind != KindNumber || toks[1].Text != "5" {
		t.Fatalf("expected null + number \"5\", got %v", toks)
	}
}

// TestTokenizeNumber 数字 token 保留原始字面量
func TestTokenizeNumber(t *testing.T) {
	for _, s := range []string{"0", "123", "-42", "3.14", "-2e10", "1E+5", "2e-3"} {
		toks, err := Tokenize(s)
		if err != nil {
			t.Fatalf("Tokenize(%q) failed: %v", s, err)
		}
		if len(toks) != 1 || toks[0].Kind != KindNumber || toks[0].Text != s {
			t.Errorf("Tokenize(%q): expected one number token with same text, got %v", s, toks)
		}
	}
}

// TestTokenizeNumberGreedy 畸形数字在扫描阶段照单全收
func TestTokenizeNumberGreedy(t *testing.T) {
	for _, s := range []string{"1-2-3", "--5", "1.2.3", "1e", "-"} {
		toks, err := Tokenize(s)
		if err != nil {
			t.Fatalf("Tokenize(%q) failed: %v", s, err)
		}
		if len(toks) != 1 || toks[0].Kind != KindNumber || toks[0].Text != s {
			t.Errorf("Tokenize(%q): expected single raw number token, got %v", s, toks)
		}
	}
}

// TestTokenizeInvalidChar 无法分派的字符立即报错
func TestTokenizeInvalidChar(t *testing.T) {
	_, err := Tokenize("@")
	var ie *InvalidTokenError
	if !errors.As(err, &ie) {
		t.Fatalf("expected InvalidTokenError, got %v", err)
	}
	if ie.Ch != '@' || ie.Pos != 0 {
		t.Errorf("expected ('@', 0), got (%q, %d)", ie.Ch, ie.Pos)
	}
}

// TestTokenizeRuneIndex 错误位置按字符计数而非字节偏移
func TestTokenizeRuneIndex(t *testing.T) {
	// "日本" 占 6 字节但只有 2 个字符，@ 的字符索引是 5
	_, err := Tokenize(`"日本" @`)
	var ie *InvalidTokenError
	if !errors.As(err, &ie) {
		t.Fatalf("expected InvalidTokenError, got %v", err)
	}
	if ie.Pos != 5 {
		t.Errorf("expected rune position 5, got %d", ie.Pos)
	}
}

// TestTokenizeSequence 混合输入的完整 token 序列
func TestTokenizeSequence(t *testing.T) {
	toks, err := Tokenize(`{"a": [1, true]}`)
	if err != nil {
		t.Fatalf("Tokenize failed: %v", err)
	}
	want := []Kind{KindLBrace, KindString, KindColon, KindLBracket, KindNumber, KindComma, KindTrue, KindRBracket, KindRBrace}
	if len(toks) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %v", len(want), len(toks), toks)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: expected %s, got %s", i, k, toks[i].Kind)
		}
	}
}
