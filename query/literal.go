package query

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hupe1980/cellgo/physical"
)

// Literal is one typed scalar value appearing in a predicate.
// The zero Literal is Uint8(0).
type Literal struct {
	kind physical.Kind
	u64  uint64
	i64  int64
	f32  float32
	f64  float64
	b    []byte
}

// Uint8 returns a uint8 literal.
func Uint8(v uint8) Literal { return Literal{kind: physical.KindUint8, u64: uint64(v)} }

// Uint16 returns a uint16 literal.
func Uint16(v uint16) Literal { return Literal{kind: physical.KindUint16, u64: uint64(v)} }

// Uint32 returns a uint32 literal.
func Uint32(v uint32) Literal { return Literal{kind: physical.KindUint32, u64: uint64(v)} }

// Uint64 returns a uint64 literal.
func Uint64(v uint64) Literal { return Literal{kind: physical.KindUint64, u64: v} }

// Int8 returns an int8 literal.
func Int8(v int8) Literal { return Literal{kind: physical.KindInt8, i64: int64(v)} }

// Int16 returns an int16 literal.
func Int16(v int16) Literal { return Literal{kind: physical.KindInt16, i64: int64(v)} }

// Int32 returns an int32 literal.
func Int32(v int32) Literal { return Literal{kind: physical.KindInt32, i64: int64(v)} }

// Int64 returns an int64 literal.
func Int64(v int64) Literal { return Literal{kind: physical.KindInt64, i64: v} }

// Float32 returns a float32 literal.
func Float32(v float32) Literal { return Literal{kind: physical.KindFloat32, f32: v} }

// Float64 returns a float64 literal.
func Float64(v float64) Literal { return Literal{kind: physical.KindFloat64, f64: v} }

// Bytes returns a variable-length literal. The slice is not copied.
func Bytes(v []byte) Literal { return Literal{kind: physical.KindBytes, b: v} }

// String returns a variable-length literal holding the bytes of s.
func String(s string) Literal { return Literal{kind: physical.KindBytes, b: []byte(s)} }

// Kind returns the literal's physical type.
func (l Literal) Kind() physical.Kind { return l.kind }

// AsUint8 extracts the value if the literal is a uint8.
func (l Literal) AsUint8() (uint8, bool) { return uint8(l.u64), l.kind == physical.KindUint8 }

// AsUint16 extracts the value if the literal is a uint16.
func (l Literal) AsUint16() (uint16, bool) { return uint16(l.u64), l.kind == physical.KindUint16 }

// AsUint32 extracts the value if the literal is a uint32.
func (l Literal) AsUint32() (uint32, bool) { return uint32(l.u64), l.kind == physical.KindUint32 }

// AsUint64 extracts the value if the literal is a uint64.
func (l Literal) AsUint64() (uint64, bool) { return l.u64, l.kind == physical.KindUint64 }

// AsInt8 extracts the value if the literal is an int8.
func (l Literal) AsInt8() (int8, bool) { return int8(l.i64), l.kind == physical.KindInt8 }

// AsInt16 extracts the value if the literal is an int16.
func (l Literal) AsInt16() (int16, bool) { return int16(l.i64), l.kind == physical.KindInt16 }

// AsInt32 extracts the value if the literal is an int32.
func (l Literal) AsInt32() (int32, bool) { return int32(l.i64), l.kind == physical.KindInt32 }

// AsInt64 extracts the value if the literal is an int64.
func (l Literal) AsInt64() (int64, bool) { return l.i64, l.kind == physical.KindInt64 }

// AsFloat32 extracts the value if the literal is a float32.
func (l Literal) AsFloat32() (float32, bool) { return l.f32, l.kind == physical.KindFloat32 }

// AsFloat64 extracts the value if the literal is a float64.
func (l Literal) AsFloat64() (float64, bool) { return l.f64, l.kind == physical.KindFloat64 }

// AsBytes extracts the value if the literal is variable-length.
func (l Literal) AsBytes() ([]byte, bool) { return l.b, l.kind == physical.KindBytes }

func (l Literal) String() string {
	switch l.kind {
	case physical.KindUint8, physical.KindUint16, physical.KindUint32, physical.KindUint64:
		return strconv.FormatUint(l.u64, 10)
	case physical.KindInt8, physical.KindInt16, physical.KindInt32, physical.KindInt64:
		return strconv.FormatInt(l.i64, 10)
	case physical.KindFloat32:
		return strconv.FormatFloat(float64(l.f32), 'g', -1, 32)
	case physical.KindFloat64:
		return strconv.FormatFloat(l.f64, 'g', -1, 64)
	case physical.KindBytes:
		return "'" + string(l.b) + "'"
	default:
		return fmt.Sprintf("Literal(%d)", uint8(l.kind))
	}
}

// Members is a homogeneous set of literals for membership predicates.
type Members struct {
	kind   physical.Kind
	values []Literal
}

// SetOf builds a member set. It panics when called with no members or with
// members of mixed kinds, because a membership test needs a single physical
// type to compare against.
func SetOf(values ...Literal) Members {
	if len(values) == 0 {
		panic("query: set membership requires at least one member")
	}
	kind := values[0].kind
	for _, v := range values[1:] {
		if v.kind != kind {
			panic(fmt.Sprintf("query: mixed member kinds %s and %s", kind, v.kind))
		}
	}
	return Members{kind: kind, values: values}
}

// Kind returns the shared physical type of the members.
func (m Members) Kind() physical.Kind { return m.kind }

// Values returns the members in construction order.
func (m Members) Values() []Literal { return m.values }

// Len returns the number of members.
func (m Members) Len() int { return len(m.values) }

func (m Members) String() string {
	parts := make([]string, len(m.values))
	for i, v := range m.values {
		parts[i] = v.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
