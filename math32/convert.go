package math32

import "github.com/gekko3d/std140"

// AsStd140 conversions relabel a value into its uniform-buffer layout
// type. They copy components in fixed positional order (X, Y, Z, W) and
// never transform values; matrix conversions convert each column and
// hand the columns, in order, to the layout constructor, which owns all
// padding.

// AsStd140 returns the std140 layout form of this vector.
func (v Vector2) AsStd140() std140.Vec2 {
	return std140.NewVec2(v.X, v.Y)
}

// AsStd140 returns the std140 layout form of this vector.
func (v Vector3) AsStd140() std140.Vec3 {
	return std140.NewVec3(v.X, v.Y, v.Z)
}

// AsStd140 returns the std140 layout form of this vector.
func (v Vector4) AsStd140() std140.Vec4 {
	return std140.NewVec4(v.X, v.Y, v.Z, v.W)
}

// AsStd140 returns the std140 layout form of this vector.
func (v Vector2i) AsStd140() std140.IVec2 {
	return std140.NewIVec2(v.X, v.Y)
}

// AsStd140 returns the std140 layout form of this vector.
func (v Vector3i) AsStd140() std140.IVec3 {
	return std140.NewIVec3(v.X, v.Y, v.Z)
}

// AsStd140 returns the std140 layout form of this vector.
func (v Vector4i) AsStd140() std140.IVec4 {
	return std140.NewIVec4(v.X, v.Y, v.Z, v.W)
}

// AsStd140 returns the std140 layout form of this vector.
func (v Vector2u) AsStd140() std140.UVec2 {
	return std140.NewUVec2(v.X, v.Y)
}

// AsStd140 returns the std140 layout form of this vector.
func (v Vector3u) AsStd140() std140.UVec3 {
	return std140.NewUVec3(v.X, v.Y, v.Z)
}

// AsStd140 returns the std140 layout form of this vector.
func (v Vector4u) AsStd140() std140.UVec4 {
	return std140.NewUVec4(v.X, v.Y, v.Z, v.W)
}

// AsStd140 returns the std140 layout form of this matrix.
func (m ColumnMatrix2) AsStd140() std140.Mat2 {
	return std140.NewMat2(m.X.AsStd140(), m.Y.AsStd140())
}

// AsStd140 returns the std140 layout form of this matrix.
func (m ColumnMatrix3x2) AsStd140() std140.Mat3x2 {
	return std140.NewMat3x2(m.X.AsStd140(), m.Y.AsStd140(), m.Z.AsStd140())
}

// AsStd140 returns the std140 layout form of this matrix.
func (m ColumnMatrix4x2) AsStd140() std140.Mat4x2 {
	return std140.NewMat4x2(m.X.AsStd140(), m.Y.AsStd140(), m.Z.AsStd140(), m.W.AsStd140())
}

// AsStd140 returns the std140 layout form of this matrix.
func (m ColumnMatrix2x3) AsStd140() std140.Mat2x3 {
	return std140.NewMat2x3(m.X.AsStd140(), m.Y.AsStd140())
}

// AsStd140 returns the std140 layout form of this matrix.
func (m ColumnMatrix3) AsStd140() std140.Mat3 {
	return std140.NewMat3(m.X.AsStd140(), m.Y.AsStd140(), m.Z.AsStd140())
}

// AsStd140 returns the std140 layout form of this matrix.
func (m ColumnMatrix4x3) AsStd140() std140.Mat4x3 {
	return std140.NewMat4x3(m.X.AsStd140(), m.Y.AsStd140(), m.Z.AsStd140(), m.W.AsStd140())
}

// AsStd140 returns the std140 layout form of this matrix.
func (m ColumnMatrix2x4) AsStd140() std140.Mat2x4 {
	return std140.NewMat2x4(m.X.AsStd140(), m.Y.AsStd140())
}

// AsStd140 returns the std140 layout form of this matrix.
func (m ColumnMatrix3x4) AsStd140() std140.Mat3x4 {
	return std140.NewMat3x4(m.X.AsStd140(), m.Y.AsStd140(), m.Z.AsStd140())
}

// AsStd140 returns the std140 layout form of this matrix.
func (m ColumnMatrix4) AsStd140() std140.Mat4 {
	return std140.NewMat4(m.X.AsStd140(), m.Y.AsStd140(), m.Z.AsStd140(), m.W.AsStd140())
}
