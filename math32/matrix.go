package math32

// Column-major matrices with float32 columns. Names are columns×rows:
// ColumnMatrix2x3 has two columns, each a Vector3. The column fields X,
// Y, Z, W are the first through fourth columns, in that order.

// ColumnMatrix2 is a 2×2 column-major matrix.
type ColumnMatrix2 struct {
	X Vector2
	Y Vector2
}

// ColumnMatrix3x2 is a column-major matrix with 3 columns and 2 rows.
type ColumnMatrix3x2 struct {
	X Vector2
	Y Vector2
	Z Vector2
}

// ColumnMatrix4x2 is a column-major matrix with 4 columns and 2 rows.
type ColumnMatrix4x2 struct {
	X Vector2
	Y Vector2
	Z Vector2
	W Vector2
}

// ColumnMatrix2x3 is a column-major matrix with 2 columns and 3 rows.
type ColumnMatrix2x3 struct {
	X Vector3
	Y Vector3
}

// ColumnMatrix3 is a 3×3 column-major matrix.
type ColumnMatrix3 struct {
	X Vector3
	Y Vector3
	Z Vector3
}

// ColumnMatrix4x3 is a column-major matrix with 4 columns and 3 rows.
type ColumnMatrix4x3 struct {
	X Vector3
	Y Vector3
	Z Vector3
	W Vector3
}

// ColumnMatrix2x4 is a column-major matrix with 2 columns and 4 rows.
type ColumnMatrix2x4 struct {
	X Vector4
	Y Vector4
}

// ColumnMatrix3x4 is a column-major matrix with 3 columns and 4 rows.
type ColumnMatrix3x4 struct {
	X Vector4
	Y Vector4
	Z Vector4
}

// ColumnMatrix4 is a 4×4 column-major matrix.
type ColumnMatrix4 struct {
	X Vector4
	Y Vector4
	Z Vector4
	W Vector4
}
