package math32_test

import (
	"fmt"

	"github.com/gekko3d/std140/math32"
)

func ExampleVector2_AsStd140() {
	v := math32.Vec2(1, 2)
	u := v.AsStd140()
	fmt.Println(u[0], u[1])
	// Output: 1 2
}

func ExampleVector4i_AsStd140() {
	v := math32.Vec4i(1, 2, 3, 4)
	u := v.AsStd140()
	fmt.Println(u[0], u[1], u[2], u[3])
	// Output: 1 2 3 4
}

func ExampleColumnMatrix2_AsStd140() {
	m := math32.ColumnMatrix2{
		X: math32.Vec2(0, 1),
		Y: math32.Vec2(2, 3),
	}
	u := m.AsStd140()
	fmt.Println(u.Col(0), u.Col(1))
	// Output: [0 1] [2 3]
}
