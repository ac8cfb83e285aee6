package std140

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatrixSizesMatchStd140(t *testing.T) {
	// Every column occupies a 16-byte slot, so size is 16 × columns
	// regardless of row count.
	assert.Equal(t, uintptr(32), unsafe.Sizeof(Mat2{}))
	assert.Equal(t, uintptr(48), unsafe.Sizeof(Mat3x2{}))
	assert.Equal(t, uintptr(64), unsafe.Sizeof(Mat4x2{}))
	assert.Equal(t, uintptr(32), unsafe.Sizeof(Mat2x3{}))
	assert.Equal(t, uintptr(48), unsafe.Sizeof(Mat3{}))
	assert.Equal(t, uintptr(64), unsafe.Sizeof(Mat4x3{}))
	assert.Equal(t, uintptr(32), unsafe.Sizeof(Mat2x4{}))
	assert.Equal(t, uintptr(48), unsafe.Sizeof(Mat3x4{}))
	assert.Equal(t, uintptr(64), unsafe.Sizeof(Mat4{}))
}

func TestVectorSizesMatchStd140(t *testing.T) {
	assert.Equal(t, uintptr(8), unsafe.Sizeof(Vec2{}))
	assert.Equal(t, uintptr(12), unsafe.Sizeof(Vec3{}))
	assert.Equal(t, uintptr(16), unsafe.Sizeof(Vec4{}))
	assert.Equal(t, uintptr(8), unsafe.Sizeof(IVec2{}))
	assert.Equal(t, uintptr(12), unsafe.Sizeof(UVec3{}))
	assert.Equal(t, uintptr(16), unsafe.Sizeof(IVec4{}))
}

func TestVectorConstructorsKeepPositionalOrder(t *testing.T) {
	assert.Equal(t, Vec4{1, 2, 3, 4}, NewVec4(1, 2, 3, 4))
	assert.Equal(t, IVec3{-1, 0, 1}, NewIVec3(-1, 0, 1))
	assert.Equal(t, UVec2{8, 9}, NewUVec2(8, 9))
}

func TestMatrixConstructorsKeepColumnOrder(t *testing.T) {
	m := NewMat2x3(NewVec3(0, 1, 2), NewVec3(3, 4, 5))
	require.Equal(t, NewVec3(0, 1, 2), m.Col(0))
	require.Equal(t, NewVec3(3, 4, 5), m.Col(1))

	m4 := NewMat4(
		NewVec4(0, 1, 2, 3),
		NewVec4(4, 5, 6, 7),
		NewVec4(8, 9, 10, 11),
		NewVec4(12, 13, 14, 15),
	)
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			require.Equal(t, float32(c*4+r), m4.Col(c)[r], "col %d row %d", c, r)
		}
	}
}

func TestColOutOfRangePanics(t *testing.T) {
	require.PanicsWithValue(t, "std140: column index out of range", func() {
		NewMat2(NewVec2(0, 0), NewVec2(0, 0)).Col(2)
	})
	require.PanicsWithValue(t, "std140: column index out of range", func() {
		Mat4{}.Col(-1)
	})
}
