package math32

import "github.com/go-gl/mathgl/mgl32"

// Adapters from go-gl/mathgl values. Only the square matrix shapes are
// covered: mgl32 names its non-square matrices rows×columns, the
// opposite of the columns×rows convention used here, and silently
// crossing the two is exactly the kind of bug this library exists to
// rule out. mgl32 has no integer vector types.

// FromVec2 returns a [Vector2] with the components of v.
func FromVec2(v mgl32.Vec2) Vector2 {
	return Vec2(v.X(), v.Y())
}

// FromVec3 returns a [Vector3] with the components of v.
func FromVec3(v mgl32.Vec3) Vector3 {
	return Vec3(v.X(), v.Y(), v.Z())
}

// FromVec4 returns a [Vector4] with the components of v.
func FromVec4(v mgl32.Vec4) Vector4 {
	return Vec4(v.X(), v.Y(), v.Z(), v.W())
}

// FromMat2 returns a [ColumnMatrix2] with the columns of m.
func FromMat2(m mgl32.Mat2) ColumnMatrix2 {
	return ColumnMatrix2{
		X: FromVec2(m.Col(0)),
		Y: FromVec2(m.Col(1)),
	}
}

// FromMat3 returns a [ColumnMatrix3] with the columns of m.
func FromMat3(m mgl32.Mat3) ColumnMatrix3 {
	return ColumnMatrix3{
		X: FromVec3(m.Col(0)),
		Y: FromVec3(m.Col(1)),
		Z: FromVec3(m.Col(2)),
	}
}

// FromMat4 returns a [ColumnMatrix4] with the columns of m.
func FromMat4(m mgl32.Mat4) ColumnMatrix4 {
	return ColumnMatrix4{
		X: FromVec4(m.Col(0)),
		Y: FromVec4(m.Col(1)),
		Z: FromVec4(m.Col(2)),
		W: FromVec4(m.Col(3)),
	}
}
