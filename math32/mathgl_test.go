package math32

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromVecPreservesComponents(t *testing.T) {
	assert.Equal(t, Vec2(1, 2), FromVec2(mgl32.Vec2{1, 2}))
	assert.Equal(t, Vec3(1, 2, 3), FromVec3(mgl32.Vec3{1, 2, 3}))
	assert.Equal(t, Vec4(1, 2, 3, 4), FromVec4(mgl32.Vec4{1, 2, 3, 4}))
}

func TestFromMat4PreservesColumns(t *testing.T) {
	// mgl32 stores column-major: translation lands in column 3.
	m := mgl32.Translate3D(10, 20, 30)
	cm := FromMat4(m)

	require.Equal(t, Vec4(1, 0, 0, 0), cm.X)
	require.Equal(t, Vec4(0, 1, 0, 0), cm.Y)
	require.Equal(t, Vec4(0, 0, 1, 0), cm.Z)
	require.Equal(t, Vec4(10, 20, 30, 1), cm.W)
}

func TestFromMatToStd140RoundTrip(t *testing.T) {
	m := mgl32.Mat3{0, 1, 2, 3, 4, 5, 6, 7, 8} // column-major literal
	u := FromMat3(m).AsStd140()
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			assert.Equal(t, m.At(r, c), u.Col(c)[r], "col %d row %d", c, r)
		}
	}

	m2 := mgl32.Mat2{1, 2, 3, 4}
	u2 := FromMat2(m2).AsStd140()
	for c := 0; c < 2; c++ {
		for r := 0; r < 2; r++ {
			assert.Equal(t, m2.At(r, c), u2.Col(c)[r], "col %d row %d", c, r)
		}
	}
}
