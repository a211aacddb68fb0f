package primitive

import (
	"math"
	"reflect"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64
	KindBool
	KindChar
	KindUntypedInt   // integer recovered from text without any type information
	KindUntypedFloat // float recovered from text without any type information

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

func (k KindEnum) IsNumber() bool {
	return k.IsInteger() || k.IsFloat()
}

func (k KindEnum) IsInteger() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64,
		KindUint, KindUint8, KindUint16, KindUint32, KindUint64,
		KindUntypedInt:
		return true
	}
}

func (k KindEnum) IsFloat() bool {
	switch k {
	default:
		return false
	case KindFloat32, KindFloat64, KindUntypedFloat:
		return true
	}
}

func (k KindEnum) IsSigned() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64, KindUntypedInt:
		return true
	}
}

func (k KindEnum) IsUnsigned() bool {
	switch k {
	default:
		return false
	case KindUint, KindUint8, KindUint16, KindUint32, KindUint64:
		return true
	}
}

func (k KindEnum) IsUntyped() bool {
	return k == KindUntypedInt || k == KindUntypedFloat
}

func (k KindEnum) Bits() int {
	switch k {
	default:
		panic("only numeric kinds has meaningful bits amount, but requested for: " + k.String())
	case KindInt, KindUint:
		power := 0
		for n := uint(math.MaxUint); n > 0; n >>= 1 {
			power++
		}
		return power
	case KindInt8, KindUint8:
		return 8
	case KindInt16, KindUint16:
		return 16
	case KindInt32, KindUint32, KindFloat32:
		return 32
	case KindInt64, KindUint64, KindFloat64, KindUntypedInt, KindUntypedFloat:
		return 64
	}
}

// RustName returns the primitive type name in Rust syntax, empty for untyped kinds.
func (k KindEnum) RustName() string {
	switch k {
	default:
		return ""
	case KindInt:
		return "isize"
	case KindInt8:
		return "i8"
	case KindInt16:
		return "i16"
	case KindInt32:
		return "i32"
	case KindInt64:
		return "i64"
	case KindUint:
		return "usize"
	case KindUint8:
		return "u8"
	case KindUint16:
		return "u16"
	case KindUint32:
		return "u32"
	case KindUint64:
		return "u64"
	case KindFloat32:
		return "f32"
	case KindFloat64:
		return "f64"
	case KindBool:
		return "bool"
	case KindChar:
		return "char"
	}
}

// GoName returns the predeclared Go type name, empty for untyped kinds.
func (k KindEnum) GoName() string {
	switch k {
	default:
		return ""
	case KindInt:
		return "int"
	case KindInt8:
		return "int8"
	case KindInt16:
		return "int16"
	case KindInt32:
		return "int32"
	case KindInt64:
		return "int64"
	case KindUint:
		return "uint"
	case KindUint8:
		return "uint8"
	case KindUint16:
		return "uint16"
	case KindUint32:
		return "uint32"
	case KindUint64:
		return "uint64"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	case KindBool:
		return "bool"
	case KindChar:
		return "rune"
	}
}

// FromSuffix maps a Rust numeric literal suffix ("u8", "i64", "f32", ...) to its kind.
func FromSuffix(suffix string) KindEnum {
	for k := KindEnum(1); int(k) < KindTotal; k++ {
		if k.IsNumber() && !k.IsUntyped() && k.RustName() == suffix {
			return k
		}
	}

	return 0
}

func FromReflectType(rtype reflect.Type) KindEnum {
	if rtype == nil {
		return 0
	}

	return FromReflectKind(rtype.Kind())
}

// FromReflectKind returns the primitive kind for the underlying reflect kind,
// so named types like `type Celsius float64` map to their base kind.
func FromReflectKind(kind reflect.Kind) KindEnum {
	switch kind {
	default:
		return 0
	case reflect.Int:
		return KindInt
	case reflect.Int8:
		return KindInt8
	case reflect.Int16:
		return KindInt16
	case reflect.Int32:
		return KindInt32
	case reflect.Int64:
		return KindInt64
	case reflect.Uint:
		return KindUint
	case reflect.Uint8:
		return KindUint8
	case reflect.Uint16:
		return KindUint16
	case reflect.Uint32:
		return KindUint32
	case reflect.Uint64:
		return KindUint64
	case reflect.Float32:
		return KindFloat32
	case reflect.Float64:
		return KindFloat64
	case reflect.Bool:
		return KindBool
	}
}
