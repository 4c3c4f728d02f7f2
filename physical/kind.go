package physical

import "fmt"

// Kind identifies one physical value type a column or literal can hold.
type Kind uint8

const (
	KindUint8 Kind = iota
	KindUint16
	KindUint32
	KindUint64
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindFloat32
	KindFloat64
	KindBytes
)

// Unsigned reports whether k is an unsigned integer kind. Enumerated columns
// store variant indices, which must be unsigned.
func (k Kind) Unsigned() bool {
	switch k {
	case KindUint8, KindUint16, KindUint32, KindUint64:
		return true
	default:
		return false
	}
}

func (k Kind) String() string {
	switch k {
	case KindUint8:
		return "uint8"
	case KindUint16:
		return "uint16"
	case KindUint32:
		return "uint32"
	case KindUint64:
		return "uint64"
	case KindInt8:
		return "int8"
	case KindInt16:
		return "int16"
	case KindInt32:
		return "int32"
	case KindInt64:
		return "int64"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	case KindBytes:
		return "bytes"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}
