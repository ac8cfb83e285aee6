package std140

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"reflect"
)

// Marshal serializes a std140 value, or a struct composed of std140
// values, into little-endian bytes suitable for uniform buffer upload.
//
// Values are written packed in declaration order. The types in this
// package carry their own internal padding, so the output is the exact
// byte image the GPU reads; offsets between members of a caller-defined
// block struct are the caller's responsibility. Marshal panics if it
// encounters a field that is not a float32, int32, uint32 or an
// aggregate of those.
func Marshal(data any) []byte {
	buf := new(bytes.Buffer)
	writeValue(reflect.ValueOf(data), buf)
	return buf.Bytes()
}

func writeValue(v reflect.Value, buf *bytes.Buffer) {
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			writeValue(v.Index(i), buf)
		}

	case reflect.Struct:
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			if t.Field(i).Name == "_" {
				// padding field: emit zeros
				buf.Write(make([]byte, t.Field(i).Type.Size()))
				continue
			}
			writeValue(v.Field(i), buf)
		}

	case reflect.Float32, reflect.Int32, reflect.Uint32:
		if err := binary.Write(buf, binary.LittleEndian, v.Interface()); err != nil {
			panic(fmt.Errorf("failed to write scalar field: %w", err))
		}

	default:
		panic(fmt.Errorf("unsupported uniform type: %v", v.Kind()))
	}
}
