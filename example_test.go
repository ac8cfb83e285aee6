package std140_test

import (
	"fmt"

	"github.com/gekko3d/std140"
)

func ExampleMarshal() {
	// A mat2 occupies two 16-byte column slots.
	m := std140.NewMat2(std140.NewVec2(0, 1), std140.NewVec2(2, 3))
	buf := std140.Marshal(m)
	fmt.Println(len(buf))
	// Output: 32
}

func ExampleNewVec4() {
	v := std140.NewVec4(1, 2, 3, 4)
	fmt.Println(v[0], v[3])
	// Output: 1 4
}
