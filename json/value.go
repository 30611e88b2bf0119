package json

// Type JSON 值类型
type Type uint8

const (
	TypeNull   Type = iota // null
	TypeBool               // true / false
	TypeNumber             // float64
	TypeString             // 字符串
	TypeArray              // 数组
	TypeObject             // 对象
)

// String 返回类型名称
func (t Type) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeBool:
		return "bool"
	case TypeNumber:
		return "number"
	case TypeString:
		return "string"
	case TypeArray:
		return "array"
	case TypeObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value 解析产物值树的节点
//
// 封闭集标签联合: null/bool/number/string/array/object 六种变体，
// 由 t 字段判别。树总是有限、无环、单根，解析成功后所有权归调用方，
// 与 Parser 的后续复用无关（字符串内容在扫描阶段已拷贝）。
//
// 字段布局沿用 o/a/s/t 四字段模式，数字在解析阶段即转换为 float64
// 存入独立的 f 字段，布尔值用 b 字段。
type Value struct {
	o kvPairs  // TypeObject: 有序键值对（键唯一，后写覆盖）
	a []*Value // TypeArray: 子值，保持源顺序
	s string   // TypeString: 已解转义的字符串
	f float64  // TypeNumber: 双精度浮点值
	t Type     // 值类型
	b bool     // TypeBool: 布尔值
}

// kvPairs 有序键值对
//
// 契约只要求键唯一、不保证迭代顺序，这里保留插入顺序以便
// 输出确定（线性查找，JSON 对象通常字段少）。
type kvPairs struct {
	kvs []kv
}

type kv struct {
	k string
	v *Value
}

// set 插入键值对，重复键后写覆盖
func (o *kvPairs) set(key string, val *Value) {
	for i := range o.kvs {
		if o.kvs[i].k == key {
			o.kvs[i].v = val
			return
		}
	}
	o.kvs = append(o.kvs, kv{k: key, v: val})
}

// ─── 类型判断 ───

// Type 返回值类型
func (v *Value) Type() Type {
	if v == nil {
		return TypeNull
	}
	return v.t
}

// IsNull 是否为 null
func (v *Value) IsNull() bool { return v == nil || v.t == TypeNull }

// IsObject 是否为对象
func (v *Value) IsObject() bool { return v != nil && v.t == TypeObject }

// IsArray 是否为数组
func (v *Value) IsArray() bool { return v != nil && v.t == TypeArray }

// ─── 值获取（安全: 类型不匹配返回零值） ───

// GetString 获取字符串值，支持嵌套路径: v.GetString("user", "name")
func (v *Value) GetString(keys ...string) string {
	v = v.Get(keys...)
	if v == nil || v.t != TypeString {
		return ""
	}
	return v.s
}

// GetStringBytes 获取字符串值的字节切片（零拷贝）
func (v *Value) GetStringBytes(keys ...string) []byte {
	s := v.GetString(keys...)
	if len(s) == 0 {
		return nil
	}
	return s2b(s)
}

// GetFloat64 获取浮点数值
func (v *Value) GetFloat64(keys ...string) float64 {
	v = v.Get(keys...)
	if v == nil || v.t != TypeNumber {
		return 0
	}
	return v.f
}

// GetInt 获取整数值（浮点截断）
func (v *Value) GetInt(keys ...string) int {
	return int(v.GetFloat64(keys...))
}

// GetBool 获取布尔值
func (v *Value) GetBool(keys ...string) bool {
	v = v.Get(keys...)
	if v == nil || v.t != TypeBool {
		return false
	}
	return v.b
}

// Get 按路径获取嵌套值
//
//	v.Get("user", "name")  // 获取 {"user":{"name":"..."}} 中的 name
//	v.Get("items", "0")    // 获取数组第 0 个元素
func (v *Value) Get(keys ...string) *Value {
	for _, key := range keys {
		if v == nil {
			return nil
		}
		switch v.t {
		case TypeObject:
			v = v.objGet(key)
		case TypeArray:
			idx, ok := parseIdx(key)
			if !ok || idx < 0 || idx >= len(v.a) {
				return nil
			}
			v = v.a[idx]
		default:
			return nil
		}
	}
	return v
}

// objGet 在对象中查找 key（线性扫描）
func (v *Value) objGet(key string) *Value {
	for i := range v.o.kvs {
		if v.o.kvs[i].k == key {
			return v.o.kvs[i].v
		}
	}
	return nil
}

// Len 返回数组或对象的元素数量
func (v *Value) Len() int {
	if v == nil {
		return 0
	}
	switch v.t {
	case TypeArray:
		return len(v.a)
	case TypeObject:
		return len(v.o.kvs)
	default:
		return 0
	}
}

// ArrayEach 遍历数组元素，返回 false 停止遍历
func (v *Value) ArrayEach(fn func(i int, val *Value) bool) {
	if v == nil || v.t != TypeArray {
		return
	}
	for i, elem := range v.a {
		if !fn(i, elem) {
			return
		}
	}
}

// ObjectEach 遍历对象键值对（按插入顺序），返回 false 停止遍历
func (v *Value) ObjectEach(fn func(key string, val *Value) bool) {
	if v == nil || v.t != TypeObject {
		return
	}
	for i := range v.o.kvs {
		if !fn(v.o.kvs[i].k, v.o.kvs[i].v) {
			return
		}
	}
}

// ─── 相等比较 ───

// Equal 深度相等比较
//
// 数字按 float64 相等，对象不关心键顺序（双方键都唯一，单向
// 包含 + 长度相等即双向相等），数组逐元素有序比较。
func (v *Value) Equal(u *Value) bool {
	if v.Type() != u.Type() {
		return false
	}
	switch v.Type() {
	case TypeNull:
		return true
	case TypeBool:
		return v.b == u.b
	case TypeNumber:
		return v.f == u.f
	case TypeString:
		return v.s == u.s
	case TypeArray:
		if len(v.a) != len(u.a) {
			return false
		}
		for i := range v.a {
			if !v.a[i].Equal(u.a[i]) {
				return false
			}
		}
		return true
	case TypeObject:
		if len(v.o.kvs) != len(u.o.kvs) {
			return false
		}
		for i := range v.o.kvs {
			uv := u.objGet(v.o.kvs[i].k)
			if uv == nil || !v.o.kvs[i].v.Equal(uv) {
				return false
			}
		}
		return true
	}
	return false
}

// ─── 辅助函数 ───

func parseIdx(s string) (int, bool) {
	if len(s) == 0 || len(s) > 10 {
		return 0, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
		if n < 0 {
			return 0, false // 溢出保护（32 位平台）
		}
	}
	return n, true
}
