package primitive_test

import (
	"fmt"
	"reflect"
	"time"

	"literal-generator/primitive"
)

func Example() {
	type IntEnum int
	type Celsius float64
	type Empty struct{}

	fmt.Println(primitive.FromReflectType(reflect.TypeOf(int(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(uint8(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(IntEnum(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(Celsius(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(time.Duration(0))))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(false)))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf(Empty{})))
	fmt.Println(primitive.FromReflectType(reflect.TypeOf("")))
	// Output:
	// KindInt
	// KindUint8
	// KindInt
	// KindFloat64
	// KindInt64
	// KindBool
	// KindEnum(0)
	// KindEnum(0)
}

func ExampleFromSuffix() {
	fmt.Println(primitive.FromSuffix("u64"), primitive.FromSuffix("isize"), primitive.FromSuffix("f32"))
	fmt.Println(primitive.FromSuffix("bool"), primitive.FromSuffix("x"))
	// Output:
	// KindUint64 KindInt KindFloat32
	// KindEnum(0) KindEnum(0)
}

func ExampleFormatFloat() {
	fmt.Println(primitive.FormatFloat(1, 64))
	fmt.Println(primitive.FormatFloat(3.7, 64))
	fmt.Println(primitive.FormatFloat(0.1, 32))
	fmt.Println(primitive.FormatFloat(1e21, 64))
	fmt.Println(primitive.FormatFloat(-2.5e-7, 64))
	// Output:
	// 1.0
	// 3.7
	// 0.1
	// 1.0e21
	// -2.5e-7
}
