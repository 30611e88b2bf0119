package json

import (
	"strconv"
	"sync"
)

// Writer JSON 序列化器（直接向 []byte 追加，可池化复用）
//
// 与解析端保持对称: 字符串转义仅生成受限转义集 \" \\ \n \t \r，
// 数字用 strconv 最短表示，对象按插入顺序输出。
//
// 用法:
//
//	w := json.AcquireWriter()
//	defer json.ReleaseWriter(w)
//	w.Value(v)
//	data := w.Bytes()
type Writer struct {
	buf []byte
}

// ─── Pool ───

var writerPool = sync.Pool{
	New: func() any { return &Writer{buf: make([]byte, 0, 256)} },
}

// AcquireWriter 从池中获取 Writer
func AcquireWriter() *Writer {
	w := writerPool.Get().(*Writer)
	w.buf = w.buf[:0]
	return w
}

// ReleaseWriter 归还 Writer 到池中
func ReleaseWriter(w *Writer) {
	// 保留小 buffer，释放大 buffer（防内存泄漏）
	if cap(w.buf) > 1<<16 {
		w.buf = make([]byte, 0, 256)
	}
	writerPool.Put(w)
}

// ─── 结果获取 ───

// Bytes 返回已生成的 JSON 字节（生命周期绑定到 Writer）
func (w *Writer) Bytes() []byte { return w.buf }

// String 返回已生成的 JSON 字符串
func (w *Writer) String() string { return b2s(w.buf) }

// Len 返回已写入的字节数
func (w *Writer) Len() int { return len(w.buf) }

// Reset 清空 buffer
func (w *Writer) Reset() { w.buf = w.buf[:0] }

// Value 追加一个值树的 JSON 文本
func (w *Writer) Value(v *Value) {
	w.buf = appendValue(w.buf, v)
}

// ─── Value 侧序列化入口 ───

// MarshalTo 把值树渲染为 JSON 文本追加到 dst，返回扩展后的切片
func (v *Value) MarshalTo(dst []byte) []byte {
	return appendValue(dst, v)
}

// String 返回值树的 JSON 文本
func (v *Value) String() string {
	return string(appendValue(nil, v))
}

// ─── 渲染引擎 ───

func appendValue(dst []byte, v *Value) []byte {
	switch v.Type() {
	case TypeNull:
		return append(dst, "null"...)
	case TypeBool:
		if v.b {
			return append(dst, "true"...)
		}
		return append(dst, "false"...)
	case TypeNumber:
		return strconv.AppendFloat(dst, v.f, 'g', -1, 64)
	case TypeString:
		return appendStr(dst, v.s)
	case TypeArray:
		dst = append(dst, '[')
		for i, elem := range v.a {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = appendValue(dst, elem)
		}
		return append(dst, ']')
	case TypeObject:
		dst = append(dst, '{')
		for i := range v.o.kvs {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = appendStr(dst, v.o.kvs[i].k)
			dst = append(dst, ':')
			dst = appendValue(dst, v.o.kvs[i].v)
		}
		return append(dst, '}')
	}
	return dst
}

// appendStr 追加带引号的字符串，仅转义受限转义集
func appendStr(dst []byte, s string) []byte {
	dst = append(dst, '"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"':
			dst = append(dst, '\\', '"')
		case '\\':
			dst = append(dst, '\\', '\\')
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\t':
			dst = append(dst, '\\', 't')
		case '\r':
			dst = append(dst, '\\', 'r')
		default:
			dst = append(dst, c)
		}
	}
	return append(dst, '"')
}
